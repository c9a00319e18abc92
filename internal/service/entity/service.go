// Package entity implements the generic record engine: module resolution,
// payload binding and soft-delete semantics over every module table.
package entity

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

type recordRepo interface {
	List(ctx context.Context, s *domain.Schema, f domain.ListFilter) ([]domain.Record, error)
	Get(ctx context.Context, s *domain.Schema, id int64) (domain.Record, error)
	Create(ctx context.Context, s *domain.Schema, fields domain.Fields) (int64, error)
	Update(ctx context.Context, s *domain.Schema, id int64, fields domain.Fields) error
	SoftDelete(ctx context.Context, s *domain.Schema, id int64) error
	Restore(ctx context.Context, s *domain.Schema, id int64) error
	PurgeDeleted(ctx context.Context, s *domain.Schema, olderThan time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides record operations for every registered module.
type Service struct {
	records recordRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new entity service.
func NewService(log *slog.Logger, records recordRepo, tx txManager) *Service {
	return &Service{
		records: records,
		tx:      tx,
		log:     log.With("service", "entity"),
	}
}

// schemaFor resolves a request-supplied module name. It never touches storage.
func schemaFor(module string) (*domain.Schema, error) {
	m, err := domain.ParseModule(module)
	if err != nil {
		return nil, err
	}
	return domain.SchemaOf(m), nil
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return nil
}
