package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListForFunc func(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.Comment, error)
	CreateFunc  func(ctx context.Context, c domain.Comment) (int64, error)

	calls struct {
		ListFor []struct {
			EntityType domain.Module
			EntityID   int64
		}
		Create []struct {
			Comment domain.Comment
		}
	}
	lockListFor sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *commentRepoMock) ListFor(ctx context.Context, entityType domain.Module, entityID int64) ([]domain.Comment, error) {
	if mock.ListForFunc == nil {
		panic("commentRepoMock.ListForFunc: method is nil but commentRepo.ListFor was just called")
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

func (mock *commentRepoMock) ListForCalls() []struct {
	EntityType domain.Module
	EntityID   int64
} {
	mock.lockListFor.RLock()
	calls := mock.calls.ListFor
	mock.lockListFor.RUnlock()
	return calls
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (int64, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct{ Comment domain.Comment }{Comment: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct{ Comment domain.Comment } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
