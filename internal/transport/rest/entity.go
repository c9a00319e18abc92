package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// entityService defines the minimal interface needed by EntityHandler.
type entityService interface {
	List(ctx context.Context, module string, f domain.ListFilter) ([]domain.Record, error)
	Get(ctx context.Context, module string, id int64) (domain.Record, error)
	Create(ctx context.Context, module string, payload map[string]any) (int64, error)
	Update(ctx context.Context, module string, id int64, payload map[string]any) error
	SoftDelete(ctx context.Context, module string, id int64) error
	Restore(ctx context.Context, module string, id int64) error
}

// EntityHandler serves the generic /api/{module} endpoints.
type EntityHandler struct {
	svc entityService
	log *slog.Logger
}

// NewEntityHandler creates an EntityHandler.
func NewEntityHandler(svc entityService, logger *slog.Logger) *EntityHandler {
	return &EntityHandler{svc: svc, log: logger.With("handler", "entity")}
}

// List handles GET /api/{module}.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.List(r.Context(), r.PathValue("module"), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Get handles GET /api/{module}/{id}.
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), r.PathValue("module"), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Create handles POST /api/{module}.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeObject(w, r)
	if err != nil {
		if !writeBodyError(w, err) {
			handleError(h.log, w, r, err)
		}
		return
	}

	id, err := h.svc.Create(r.Context(), r.PathValue("module"), payload)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

// Update handles PUT /api/{module}/{id}.
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	payload, err := decodeObject(w, r)
	if err != nil {
		if !writeBodyError(w, err) {
			handleError(h.log, w, r, err)
		}
		return
	}

	if err := h.svc.Update(r.Context(), r.PathValue("module"), id, payload); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/{module}/{id}.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SoftDelete(r.Context(), r.PathValue("module"), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Restore handles POST /api/{module}/{id}/restore.
func (h *EntityHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Restore(r.Context(), r.PathValue("module"), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
