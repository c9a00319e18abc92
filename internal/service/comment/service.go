// Package comment manages the immutable comment threads attached to records.
package comment

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

type commentRepo interface {
	ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (int64, error)
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo) *Service {
	return &Service{
		comments: comments,
		log:      log.With("service", "comment"),
	}
}
