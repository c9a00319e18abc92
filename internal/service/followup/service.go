// Package followup manages the follow-up log kept against records.
package followup

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

type followUpRepo interface {
	ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.FollowUp, error)
	Create(ctx context.Context, f domain.FollowUp) (int64, error)
}

// Service provides follow-up operations.
type Service struct {
	followUps followUpRepo
	log       *slog.Logger
}

// NewService creates a new follow-up service.
func NewService(log *slog.Logger, followUps followUpRepo) *Service {
	return &Service{
		followUps: followUps,
		log:       log.With("service", "followup"),
	}
}
