package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetIdentity(ctx context.Context, userID int64) (*domain.Identity, error)
}

// Service implements identity lookups for the fixed acting account.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
