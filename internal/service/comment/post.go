package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

// Post stores a new comment and returns its id. A parent, when given, must be
// a comment of the same record.
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

	id, err := s.comments.Create(ctx, domain.Comment{
		EntityType: m,
		EntityID:   input.EntityID,
		UserID:     userID,
		Content:    input.Content,
		ParentID:   input.ParentID,
	})
	if err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment posted",
		slog.Int64("comment_id", id),
		slog.String("entity_type", m.String()),
		slog.Int64("entity_id", input.EntityID),
		slog.Int64("user_id", userID),
	)

	return id, nil
}
