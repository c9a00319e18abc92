package entity

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	ListFunc         func(ctx context.Context, s *domain.Schema, f domain.ListFilter) ([]domain.Record, error)
	GetFunc          func(ctx context.Context, s *domain.Schema, id int64) (domain.Record, error)
	CreateFunc       func(ctx context.Context, s *domain.Schema, fields domain.Fields) (int64, error)
	UpdateFunc       func(ctx context.Context, s *domain.Schema, id int64, fields domain.Fields) error
	SoftDeleteFunc   func(ctx context.Context, s *domain.Schema, id int64) error
	RestoreFunc      func(ctx context.Context, s *domain.Schema, id int64) error
	PurgeDeletedFunc func(ctx context.Context, s *domain.Schema, olderThan time.Time) (int64, error)

	mu    sync.RWMutex
	calls struct {
		List []struct {
			Schema *domain.Schema
			Filter domain.ListFilter
		}
		Get []struct {
			Schema *domain.Schema
			ID     int64
		}
		Create []struct {
			Schema *domain.Schema
			Fields domain.Fields
		}
		Update []struct {
			Schema *domain.Schema
			ID     int64
			Fields domain.Fields
		}
		SoftDelete []struct {
			Schema *domain.Schema
			ID     int64
		}
		Restore []struct {
			Schema *domain.Schema
			ID     int64
		}
		PurgeDeleted []struct {
			Schema    *domain.Schema
			OlderThan time.Time
		}
	}
}

func (mock *recordRepoMock) List(ctx context.Context, s *domain.Schema, f domain.ListFilter) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Schema *domain.Schema
		Filter domain.ListFilter
	}{s, f})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, s, f)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Schema *domain.Schema
	Filter domain.ListFilter
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *recordRepoMock) Get(ctx context.Context, s *domain.Schema, id int64) (domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordRepoMock.GetFunc: method is nil but recordRepo.Get was just called")
	}
	mock.mu.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Schema *domain.Schema
		ID     int64
	}{s, id})
	mock.mu.Unlock()
	return mock.GetFunc(ctx, s, id)
}

func (mock *recordRepoMock) GetCalls() []struct {
	Schema *domain.Schema
	ID     int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Get
}

func (mock *recordRepoMock) Create(ctx context.Context, s *domain.Schema, fields domain.Fields) (int64, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Schema *domain.Schema
		Fields domain.Fields
	}{s, fields})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, s, fields)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Schema *domain.Schema
	Fields domain.Fields
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *recordRepoMock) Update(ctx context.Context, s *domain.Schema, id int64, fields domain.Fields) error {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		Schema *domain.Schema
		ID     int64
		Fields domain.Fields
	}{s, id, fields})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, s, id, fields)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Schema *domain.Schema
	ID     int64
	Fields domain.Fields
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *recordRepoMock) SoftDelete(ctx context.Context, s *domain.Schema, id int64) error {
	if mock.SoftDeleteFunc == nil {
		panic("recordRepoMock.SoftDeleteFunc: method is nil but recordRepo.SoftDelete was just called")
	}
	mock.mu.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct {
		Schema *domain.Schema
		ID     int64
	}{s, id})
	mock.mu.Unlock()
	return mock.SoftDeleteFunc(ctx, s, id)
}

func (mock *recordRepoMock) SoftDeleteCalls() []struct {
	Schema *domain.Schema
	ID     int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SoftDelete
}

func (mock *recordRepoMock) Restore(ctx context.Context, s *domain.Schema, id int64) error {
	if mock.RestoreFunc == nil {
		panic("recordRepoMock.RestoreFunc: method is nil but recordRepo.Restore was just called")
	}
	mock.mu.Lock()
	mock.calls.Restore = append(mock.calls.Restore, struct {
		Schema *domain.Schema
		ID     int64
	}{s, id})
	mock.mu.Unlock()
	return mock.RestoreFunc(ctx, s, id)
}

func (mock *recordRepoMock) RestoreCalls() []struct {
	Schema *domain.Schema
	ID     int64
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Restore
}

func (mock *recordRepoMock) PurgeDeleted(ctx context.Context, s *domain.Schema, olderThan time.Time) (int64, error) {
	if mock.PurgeDeletedFunc == nil {
		panic("recordRepoMock.PurgeDeletedFunc: method is nil but recordRepo.PurgeDeleted was just called")
	}
	mock.mu.Lock()
	mock.calls.PurgeDeleted = append(mock.calls.PurgeDeleted, struct {
		Schema    *domain.Schema
		OlderThan time.Time
	}{s, olderThan})
	mock.mu.Unlock()
	return mock.PurgeDeletedFunc(ctx, s, olderThan)
}

func (mock *recordRepoMock) PurgeDeletedCalls() []struct {
	Schema    *domain.Schema
	OlderThan time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.PurgeDeleted
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	mu    sync.RWMutex
	calls int
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.mu.Lock()
	mock.calls++
	mock.mu.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls
}
