package user

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/pkg/ctxutil"
)

func TestMe_Success(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		GetIdentityFunc: func(ctx context.Context, userID int64) (*domain.Identity, error) {
			return &domain.Identity{
				User: domain.User{ID: userID, Username: "admin", RealName: "系统管理员"},
				Role: &domain.Role{ID: 1, Name: "超级管理员", Level: 1},
			}, nil
		},
	}
	svc := NewService(slog.Default(), repo)
	ctx := ctxutil.WithUserID(context.Background(), 1)

	got, err := svc.Me(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.User.ID != 1 || got.Role == nil || got.Role.Name != "超级管理员" {
		t.Errorf("unexpected identity: %+v", got)
	}
	if len(repo.GetIdentityCalls()) != 1 {
		t.Errorf("GetIdentity calls: got %d, want 1", len(repo.GetIdentityCalls()))
	}
}

func TestMe_NoIdentity(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &userRepoMock{})

	_, err := svc.Me(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMe_UserGone(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		GetIdentityFunc: func(ctx context.Context, userID int64) (*domain.Identity, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(slog.Default(), repo)

	_, err := svc.Me(ctxutil.WithUserID(context.Background(), 5))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMe_StorageError(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		GetIdentityFunc: func(ctx context.Context, userID int64) (*domain.Identity, error) {
			return nil, domain.ErrStorageUnavailable
		},
	}
	svc := NewService(slog.Default(), repo)

	_, err := svc.Me(ctxutil.WithUserID(context.Background(), 5))
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestResolveID(t *testing.T) {
	t.Parallel()

	repo := &userRepoMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "admin" {
				return nil, domain.ErrNotFound
			}
			return &domain.User{ID: 1, Username: "admin"}, nil
		},
	}
	svc := NewService(slog.Default(), repo)

	id, err := svc.ResolveID(context.Background(), " admin ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id: got %d, want 1", id)
	}

	if _, err := svc.ResolveID(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ResolveID(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
