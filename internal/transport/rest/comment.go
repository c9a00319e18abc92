package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.Comment, error)
	Post(ctx context.Context, input comment.PostInput) (int64, error)
}

// CommentHandler serves comment thread endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type postCommentRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	UserID     int64  `json:"user_id"`
	Content    string `json:"content"`
	ParentID   *int64 `json:"parent_id"`
}

type commentResponse struct {
	ID          int64     `json:"id"`
	EntityType  string    `json:"entity_type"`
	EntityID    int64     `json:"entity_id"`
	UserID      int64     `json:"user_id"`
	Username    *string   `json:"username"`
	DisplayName *string   `json:"display_name"`
	Content     string    `json:"content"`
	ParentID    *int64    `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// List handles GET /api/comments/{entityType}/{entityId}.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	entityID, err := pathID(r, "entityId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments, err := h.svc.ListFor(r.Context(), r.PathValue("entityType"), entityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]commentResponse, len(comments))
	for i, c := range comments {
		resp[i] = commentResponse{
			ID:          c.ID,
			EntityType:  c.EntityType.String(),
			EntityID:    c.EntityID,
			UserID:      c.UserID,
			Username:    c.Username,
			DisplayName: c.DisplayName,
			Content:     c.Content,
			ParentID:    c.ParentID,
			CreatedAt:   c.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Post handles POST /api/comments.
func (h *CommentHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req postCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	id, err := h.svc.Post(r.Context(), comment.PostInput{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		UserID:     req.UserID,
		Content:    req.Content,
		ParentID:   req.ParentID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
