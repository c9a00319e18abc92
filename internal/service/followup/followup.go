package followup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

// ListFor returns the follow-ups of one record, newest first.
func (s *Service) ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.FollowUp, error) {
	m, err := domain.ParseModule(entityType)
	if err != nil {
		return nil, err
	}
	if entityID <= 0 {
		return nil, domain.NewValidationError("entity_id", "must be a positive integer")
	}

	items, err := s.followUps.ListFor(ctx, m, entityID)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	return items, nil
}

// Post stores a follow-up entry and returns its id.
func (s *Service) Post(ctx context.Context, input PostInput) (int64, error) {
	m, err := domain.ParseModule(input.EntityType)
	if err != nil {
		return 0, err
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	userID := input.UserID
	if userID == 0 {
		var ok bool
		if userID, ok = ctxutil.UserIDFromCtx(ctx); !ok {
			return 0, domain.ErrUnauthorized
		}
	}

	method := domain.FollowUpMethod(strings.TrimSpace(input.Method))
	if method == "" {
		method = domain.FollowUpOther
	}

	id, err := s.followUps.Create(ctx, domain.FollowUp{
		EntityType:   m,
		EntityID:     input.EntityID,
		UserID:       userID,
		Method:       method,
		Content:      input.Content,
		NextFollowAt: input.NextFollowAt,
	})
	if err != nil {
		return 0, fmt.Errorf("create follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "follow-up logged",
		slog.Int64("follow_up_id", id),
		slog.String("entity_type", m.String()),
		slog.Int64("entity_id", input.EntityID),
		slog.String("method", method.String()),
	)

	return id, nil
}
