// Package report computes aggregate views over module records.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

type statsRepo interface {
	OpportunityStages(ctx context.Context) ([]domain.StageSummary, error)
}

// Service provides reporting operations.
type Service struct {
	stats statsRepo
	log   *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, stats statsRepo) *Service {
	return &Service{
		stats: stats,
		log:   log.With("service", "report"),
	}
}

// OpportunityStageSummary groups live opportunities by stage with their
// count and summed amount, in order of first appearance.
func (s *Service) OpportunityStageSummary(ctx context.Context) ([]domain.StageSummary, error) {
	summary, err := s.stats.OpportunityStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("opportunity stages: %w", err)
	}
	if summary == nil {
		summary = []domain.StageSummary{}
	}
	return summary, nil
}
