package writing

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ expressionRepo = &expressionRepoMock{}

type expressionRepoMock struct {
	DeleteByRecordFunc func(ctx context.Context, recordID uuid.UUID) (int64, error)

	calls struct {
		DeleteByRecord []struct {
			Ctx      context.Context
			RecordID uuid.UUID
		}
	}
	lockDeleteByRecord sync.RWMutex
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
