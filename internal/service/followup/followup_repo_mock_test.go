package followup

import (
	"context"
	"sync"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var _ followUpRepo = &followUpRepoMock{}

type followUpRepoMock struct {
	ListForFunc func(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.FollowUp, error)
	CreateFunc  func(ctx context.Context, f domain.FollowUp) (int64, error)

	calls struct {
		ListFor []struct {
			EntityType domain.Module
			EntityID   int64
		}
		Create []struct {
			FollowUp domain.FollowUp
		}
	}
	lockListFor sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *followUpRepoMock) ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.FollowUp, error) {
	if mock.ListForFunc == nil {
		panic("followUpRepoMock.ListForFunc: method is nil but followUpRepo.ListFor was just called")
	}
	callInfo := struct {
		EntityType domain.Module
		EntityID   int64
	}{EntityType: entityType, EntityID: entityID}
	mock.lockListFor.Lock()
	mock.calls.ListFor = append(mock.calls.ListFor, callInfo)
	mock.lockListFor.Unlock()
	return mock.ListForFunc(ctx, entityType, entityID)
}

func (mock *followUpRepoMock) Create(ctx context.Context, f domain.FollowUp) (int64, error) {
	if mock.CreateFunc == nil {
		panic("followUpRepoMock.CreateFunc: method is nil but followUpRepo.Create was just called")
	}
	callInfo := struct{ FollowUp domain.FollowUp }{FollowUp: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *followUpRepoMock) CreateCalls() []struct{ FollowUp domain.FollowUp } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
