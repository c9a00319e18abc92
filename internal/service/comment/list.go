package comment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// ListFor returns the comments of one record, newest first.
func (s *Service) ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.Comment, error) {
	m, err := domain.ParseModule(entityType)
	if err != nil {
		return nil, err
	}
	if entityID <= 0 {
		return nil, domain.NewValidationError("entity_id", "must be a positive integer")
	}

	comments, err := s.comments.ListFor(ctx, m, entityID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
