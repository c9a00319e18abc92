package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// userService defines the minimal interface needed by MeHandler.
type userService interface {
	Me(ctx context.Context) (*domain.Identity, error)
}

// MeHandler serves the current identity.
type MeHandler struct {
	svc userService
	log *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, log: logger.With("handler", "me")}
}

type roleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Level       int             `json:"level"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
}

type meResponse struct {
	ID          int64         `json:"id"`
	Username    string        `json:"username"`
	RealName    string        `json:"real_name"`
	DisplayName string        `json:"display_name"`
	Department  string        `json:"department"`
	RoleID      *int64        `json:"role_id"`
	Role        *roleResponse `json:"role"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Me handles GET /api/me.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u := identity.User
	resp := meResponse{
		ID:          u.ID,
		Username:    u.Username,
		RealName:    u.RealName,
		DisplayName: u.DisplayName(),
		Department:  u.Department,
		RoleID:      u.RoleID,
		CreatedAt:   u.CreatedAt,
	}
	if role := identity.Role; role != nil {
		resp.Role = &roleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Level:       role.Level,
			Permissions: role.Permissions,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
