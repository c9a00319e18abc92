package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

// Me returns the acting user joined with its role.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.Identity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	identity, err := s.users.GetIdentity(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	return identity, nil
}

// ResolveID returns the id of the account every request acts as.
func (s *Service) ResolveID(ctx context.Context, username string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, domain.NewValidationError("username", "required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("user.ResolveID %s: %w", username, err)
	}

	s.log.InfoContext(ctx, "identity resolved",
		slog.String("username", u.Username),
		slog.Int64("user_id", u.ID))

	return u.ID, nil
}
