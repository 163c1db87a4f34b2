package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/service/similar"
	"sync"
)

var _ similarService = &similarServiceMock{}

type similarServiceMock struct {
	ClearFunc  func(ctx context.Context, recordID uuid.UUID) (int64, error)
	ListFunc   func(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error)
	SaveFunc   func(ctx context.Context, input similar.SaveInput) (*domain.SimilarExpression, error)
	SearchFunc func(ctx context.Context, recordID uuid.UUID) (*similar.SearchResult, error)

	calls struct {
		Clear []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		Save []struct {
			Ctx   context.Context
			Input similar.SaveInput
		}
		Search []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
	}
	lockClear  sync.RWMutex
	lockList   sync.RWMutex
	lockSave   sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *similarServiceMock) Clear(ctx context.Context, recordID uuid.UUID) (int64, error) {
	if mock.ClearFunc == nil {
		panic("similarServiceMock.ClearFunc: method is nil but similarService.Clear was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, recordID)
}

func (mock *similarServiceMock) ClearCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}

func (mock *similarServiceMock) List(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error) {
	if mock.ListFunc == nil {
		panic("similarServiceMock.ListFunc: method is nil but similarService.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, recordID)
}

func (mock *similarServiceMock) ListCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *similarServiceMock) Save(ctx context.Context, input similar.SaveInput) (*domain.SimilarExpression, error) {
	if mock.SaveFunc == nil {
		panic("similarServiceMock.SaveFunc: method is nil but similarService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input similar.SaveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *similarServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input similar.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *similarServiceMock) Search(ctx context.Context, recordID uuid.UUID) (*similar.SearchResult, error) {
	if mock.SearchFunc == nil {
		panic("similarServiceMock.SearchFunc: method is nil but similarService.Search was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, recordID)
}

func (mock *similarServiceMock) SearchCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
