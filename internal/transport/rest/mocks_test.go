package rest

import (
	"context"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
	"github.com/heartmarshall/bizcrm-backend/internal/service/comment"
	"github.com/heartmarshall/bizcrm-backend/internal/service/followup"
)

type entityServiceMock struct {
	ListFunc       func(ctx context.Context, module string, f domain.ListFilter) ([]domain.Record, error)
	GetFunc        func(ctx context.Context, module string, id int64) (domain.Record, error)
	CreateFunc     func(ctx context.Context, module string, payload map[string]any) (int64, error)
	UpdateFunc     func(ctx context.Context, module string, id int64, payload map[string]any) error
	SoftDeleteFunc func(ctx context.Context, module string, id int64) error
	RestoreFunc    func(ctx context.Context, module string, id int64) error
}

func (m *entityServiceMock) List(ctx context.Context, module string, f domain.ListFilter) ([]domain.Record, error) {
	if m.ListFunc == nil {
		panic("entityServiceMock.ListFunc: method is nil but entityService.List was just called")
	}
	return m.ListFunc(ctx, module, f)
}

func (m *entityServiceMock) Get(ctx context.Context, module string, id int64) (domain.Record, error) {
	if m.GetFunc == nil {
		panic("entityServiceMock.GetFunc: method is nil but entityService.Get was just called")
	}
	return m.GetFunc(ctx, module, id)
}

func (m *entityServiceMock) Create(ctx context.Context, module string, payload map[string]any) (int64, error) {
	if m.CreateFunc == nil {
		panic("entityServiceMock.CreateFunc: method is nil but entityService.Create was just called")
	}
	return m.CreateFunc(ctx, module, payload)
}

func (m *entityServiceMock) Update(ctx context.Context, module string, id int64, payload map[string]any) error {
	if m.UpdateFunc == nil {
		panic("entityServiceMock.UpdateFunc: method is nil but entityService.Update was just called")
	}
	return m.UpdateFunc(ctx, module, id, payload)
}

func (m *entityServiceMock) SoftDelete(ctx context.Context, module string, id int64) error {
	if m.SoftDeleteFunc == nil {
		panic("entityServiceMock.SoftDeleteFunc: method is nil but entityService.SoftDelete was just called")
	}
	return m.SoftDeleteFunc(ctx, module, id)
}

func (m *entityServiceMock) Restore(ctx context.Context, module string, id int64) error {
	if m.RestoreFunc == nil {
		panic("entityServiceMock.RestoreFunc: method is nil but entityService.Restore was just called")
	}
	return m.RestoreFunc(ctx, module, id)
}

type commentServiceMock struct {
	ListForFunc func(ctx context.Context, entityType string, entityID int64) ([]domain.Comment, error)
	PostFunc    func(ctx context.Context, input comment.PostInput) (int64, error)
}

func (m *commentServiceMock) ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.Comment, error) {
	if m.ListForFunc == nil {
		panic("commentServiceMock.ListForFunc: method is nil but commentService.ListFor was just called")
	}
	return m.ListForFunc(ctx, entityType, entityID)
}

func (m *commentServiceMock) Post(ctx context.Context, input comment.PostInput) (int64, error) {
	if m.PostFunc == nil {
		panic("commentServiceMock.PostFunc: method is nil but commentService.Post was just called")
	}
	return m.PostFunc(ctx, input)
}

type followUpServiceMock struct {
	ListForFunc func(ctx context.Context, entityType string, entityID int64) ([]domain.FollowUp, error)
	PostFunc    func(ctx context.Context, input followup.PostInput) (int64, error)
}

func (m *followUpServiceMock) ListFor(ctx context.Context, entityType string, entityID int64) ([]domain.FollowUp, error) {
	if m.ListForFunc == nil {
		panic("followUpServiceMock.ListForFunc: method is nil but followUpService.ListFor was just called")
	}
	return m.ListForFunc(ctx, entityType, entityID)
}

func (m *followUpServiceMock) Post(ctx context.Context, input followup.PostInput) (int64, error) {
	if m.PostFunc == nil {
		panic("followUpServiceMock.PostFunc: method is nil but followUpService.Post was just called")
	}
	return m.PostFunc(ctx, input)
}

type reportServiceMock struct {
	OpportunityStageSummaryFunc func(ctx context.Context) ([]domain.StageSummary, error)
}

func (m *reportServiceMock) OpportunityStageSummary(ctx context.Context) ([]domain.StageSummary, error) {
	if m.OpportunityStageSummaryFunc == nil {
		panic("reportServiceMock.OpportunityStageSummaryFunc: method is nil but reportService.OpportunityStageSummary was just called")
	}
	return m.OpportunityStageSummaryFunc(ctx)
}

type userServiceMock struct {
	MeFunc func(ctx context.Context) (*domain.Identity, error)
}

func (m *userServiceMock) Me(ctx context.Context) (*domain.Identity, error) {
	if m.MeFunc == nil {
		panic("userServiceMock.MeFunc: method is nil but userService.Me was just called")
	}
	return m.MeFunc(ctx)
}
