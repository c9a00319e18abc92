package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	GetIdentityFunc   func(ctx context.Context, userID int64) (*domain.Identity, error)

	calls struct {
		GetByUsername []struct{ Username string }
		GetIdentity   []struct{ UserID int64 }
	}
	lockGetByUsername sync.RWMutex
	lockGetIdentity   sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct{ Username string }{username})
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct{ Username string } {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) GetIdentity(ctx context.Context, userID int64) (*domain.Identity, error) {
	if mock.GetIdentityFunc == nil {
		panic("userRepoMock.GetIdentityFunc: method is nil but userRepo.GetIdentity was just called")
	}
	mock.lockGetIdentity.Lock()
	mock.calls.GetIdentity = append(mock.calls.GetIdentity, struct{ UserID int64 }{userID})
	mock.lockGetIdentity.Unlock()
	return mock.GetIdentityFunc(ctx, userID)
}

func (mock *userRepoMock) GetIdentityCalls() []struct{ UserID int64 } {
	mock.lockGetIdentity.RLock()
	calls := mock.calls.GetIdentity
	mock.lockGetIdentity.RUnlock()
	return calls
}
