package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/internal/service/followup"
)

// followUpService defines the minimal interface needed by FollowUpHandler.
type followUpService interface {
	ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.FollowUp, error)
	Post(ctx context.Context, input followup.PostInput) (int64, error)
}

// FollowUpHandler serves follow-up log endpoints.
type FollowUpHandler struct {
	svc followUpService
	log *slog.Logger
}

// NewFollowUpHandler creates a FollowUpHandler.
func NewFollowUpHandler(svc followUpService, logger *slog.Logger) *FollowUpHandler {
	return &FollowUpHandler{svc: svc, log: logger.With("handler", "followup")}
}

type postFollowUpRequest struct {
	EntityType   string     `json:"entity_type"`
	EntityID     int64      `json:"entity_id"`
	UserID       int64      `json:"user_id"`
	Method       string     `json:"method"`
	Content      string     `json:"content"`
	NextFollowAt *time.Time `json:"next_follow_at"`
}

type followUpResponse struct {
	ID           int64      `json:"id"`
	EntityType   string     `json:"entity_type"`
	EntityID     int64      `json:"entity_id"`
	UserID       int64      `json:"user_id"`
	Username     *string    `json:"username"`
	DisplayName  *string    `json:"display_name"`
	Method       string     `json:"method"`
	Content      string     `json:"content"`
	NextFollowAt *time.Time `json:"next_follow_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// List handles GET /api/follow-ups/{entityType}/{entityId}.
func (h *FollowUpHandler) List(w http.ResponseWriter, r *http.Request) {
	entityID, err := pathID(r, "entityId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListFor(r.Context(), r.PathValue("entityType"), entityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]followUpResponse, len(items))
	for i, f := range items {
		resp[i] = followUpResponse{
			ID:           f.ID,
			EntityType:   f.EntityType.String(),
			EntityID:     f.EntityID,
			UserID:       f.UserID,
			Username:     f.Username,
			DisplayName:  f.DisplayName,
			Method:       f.Method.String(),
			Content:      f.Content,
			NextFollowAt: f.NextFollowAt,
			CreatedAt:    f.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Post handles POST /api/follow-ups.
func (h *FollowUpHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req postFollowUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	id, err := h.svc.Post(r.Context(), followup.PostInput{
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		UserID:       req.UserID,
		Method:       req.Method,
		Content:      req.Content,
		NextFollowAt: req.NextFollowAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
