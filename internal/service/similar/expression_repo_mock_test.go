package similar

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"sync"
)

var _ expressionRepo = &expressionRepoMock{}

type expressionRepoMock struct {
	CreateFunc           func(ctx context.Context, e domain.SimilarExpression) (*domain.SimilarExpression, error)
	DeleteByRecordFunc   func(ctx context.Context, recordID uuid.UUID) (int64, error)
	ListByRecordFunc     func(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error)
	ReplaceForRecordFunc func(ctx context.Context, recordID uuid.UUID, items []domain.SimilarExpression) ([]domain.SimilarExpression, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.SimilarExpression
		}
		DeleteByRecord []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		ListByRecord []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
		ReplaceForRecord []struct {
			Ctx      context.Context
			RecordID uuid.UUID
			Items    []domain.SimilarExpression
		}
	}
	lockCreate           sync.RWMutex
	lockDeleteByRecord   sync.RWMutex
	lockListByRecord     sync.RWMutex
	lockReplaceForRecord sync.RWMutex
}

func (mock *expressionRepoMock) Create(ctx context.Context, e domain.SimilarExpression) (*domain.SimilarExpression, error) {
	if mock.CreateFunc == nil {
		panic("expressionRepoMock.CreateFunc: method is nil but expressionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.SimilarExpression
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *expressionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.SimilarExpression
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *expressionRepoMock) DeleteByRecord(ctx context.Context, recordID uuid.UUID) (int64, error) {
	if mock.DeleteByRecordFunc == nil {
		panic("expressionRepoMock.DeleteByRecordFunc: method is nil but expressionRepo.DeleteByRecord was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockDeleteByRecord.Lock()
	mock.calls.DeleteByRecord = append(mock.calls.DeleteByRecord, callInfo)
	mock.lockDeleteByRecord.Unlock()
	return mock.DeleteByRecordFunc(ctx, recordID)
}

func (mock *expressionRepoMock) DeleteByRecordCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockDeleteByRecord.RLock()
	calls := mock.calls.DeleteByRecord
	mock.lockDeleteByRecord.RUnlock()
	return calls
}

func (mock *expressionRepoMock) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error) {
	if mock.ListByRecordFunc == nil {
		panic("expressionRepoMock.ListByRecordFunc: method is nil but expressionRepo.ListByRecord was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
	}{
		Ctx:      ctx,
		RecordID: recordID,
	}
	mock.lockListByRecord.Lock()
	mock.calls.ListByRecord = append(mock.calls.ListByRecord, callInfo)
	mock.lockListByRecord.Unlock()
	return mock.ListByRecordFunc(ctx, recordID)
}

func (mock *expressionRepoMock) ListByRecordCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
} {
	mock.lockListByRecord.RLock()
	calls := mock.calls.ListByRecord
	mock.lockListByRecord.RUnlock()
	return calls
}

func (mock *expressionRepoMock) ReplaceForRecord(ctx context.Context, recordID uuid.UUID, items []domain.SimilarExpression) ([]domain.SimilarExpression, error) {
	if mock.ReplaceForRecordFunc == nil {
		panic("expressionRepoMock.ReplaceForRecordFunc: method is nil but expressionRepo.ReplaceForRecord was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
		Items    []domain.SimilarExpression
	}{
		Ctx:      ctx,
		RecordID: recordID,
		Items:    items,
	}
	mock.lockReplaceForRecord.Lock()
	mock.calls.ReplaceForRecord = append(mock.calls.ReplaceForRecord, callInfo)
	mock.lockReplaceForRecord.Unlock()
	return mock.ReplaceForRecordFunc(ctx, recordID, items)
}

func (mock *expressionRepoMock) ReplaceForRecordCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
	Items    []domain.SimilarExpression
} {
	mock.lockReplaceForRecord.RLock()
	calls := mock.calls.ReplaceForRecord
	mock.lockReplaceForRecord.RUnlock()
	return calls
}
