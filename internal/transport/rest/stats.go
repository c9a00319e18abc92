package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// reportService defines the minimal interface needed by StatsHandler.
type reportService interface {
	OpportunityStageSummary(ctx context.Context) ([]domain.StageSummary, error)
}

// StatsHandler serves aggregate reports.
type StatsHandler struct {
	svc reportService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc reportService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type stageSummaryResponse struct {
	Stage       string      `json:"stage"`
	Count       int64       `json:"count"`
	TotalAmount json.Number `json:"totalAmount"`
}

// Opportunities handles GET /api/stats/opportunities.
func (h *StatsHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.OpportunityStageSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]stageSummaryResponse, len(summary))
	for i, s := range summary {
		resp[i] = stageSummaryResponse{
			Stage:       s.Stage,
			Count:       s.Count,
			TotalAmount: json.Number(s.TotalAmount.String()),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
