package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/linglual-backend/internal/service/writing"
	"sync"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	CreateRecordFunc func(ctx context.Context, input writing.CreateRecordInput) (*writing.RecordView, error)
	DeleteRecordFunc func(ctx context.Context, id uuid.UUID) error
	GetRecordFunc    func(ctx context.Context, id uuid.UUID) (*writing.RecordView, error)
	ListRecordsFunc  func(ctx context.Context) ([]*writing.RecordView, error)
	TopicHintsFunc   func(ctx context.Context, topic string) (*writing.TopicHints, error)
	UpdateRecordFunc func(ctx context.Context, input writing.UpdateRecordInput) (*writing.RecordView, error)

	calls struct {
		CreateRecord []struct {
			Ctx   context.Context
			Input writing.CreateRecordInput
		}
		DeleteRecord []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetRecord []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListRecords []struct {
			Ctx context.Context
		}
		TopicHints []struct {
			Ctx   context.Context
			Topic string
		}
		UpdateRecord []struct {
			Ctx   context.Context
			Input writing.UpdateRecordInput
		}
	}
	lockCreateRecord sync.RWMutex
	lockDeleteRecord sync.RWMutex
	lockGetRecord    sync.RWMutex
	lockListRecords  sync.RWMutex
	lockTopicHints   sync.RWMutex
	lockUpdateRecord sync.RWMutex
}

func (mock *recordServiceMock) CreateRecord(ctx context.Context, input writing.CreateRecordInput) (*writing.RecordView, error) {
	if mock.CreateRecordFunc == nil {
		panic("recordServiceMock.CreateRecordFunc: method is nil but recordService.CreateRecord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input writing.CreateRecordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateRecord.Lock()
	mock.calls.CreateRecord = append(mock.calls.CreateRecord, callInfo)
	mock.lockCreateRecord.Unlock()
	return mock.CreateRecordFunc(ctx, input)
}

func (mock *recordServiceMock) CreateRecordCalls() []struct {
	Ctx   context.Context
	Input writing.CreateRecordInput
} {
	mock.lockCreateRecord.RLock()
	calls := mock.calls.CreateRecord
	mock.lockCreateRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteRecordFunc == nil {
		panic("recordServiceMock.DeleteRecordFunc: method is nil but recordService.DeleteRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteRecord.Lock()
	mock.calls.DeleteRecord = append(mock.calls.DeleteRecord, callInfo)
	mock.lockDeleteRecord.Unlock()
	return mock.DeleteRecordFunc(ctx, id)
}

func (mock *recordServiceMock) DeleteRecordCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteRecord.RLock()
	calls := mock.calls.DeleteRecord
	mock.lockDeleteRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) GetRecord(ctx context.Context, id uuid.UUID) (*writing.RecordView, error) {
	if mock.GetRecordFunc == nil {
		panic("recordServiceMock.GetRecordFunc: method is nil but recordService.GetRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetRecord.Lock()
	mock.calls.GetRecord = append(mock.calls.GetRecord, callInfo)
	mock.lockGetRecord.Unlock()
	return mock.GetRecordFunc(ctx, id)
}

func (mock *recordServiceMock) GetRecordCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetRecord.RLock()
	calls := mock.calls.GetRecord
	mock.lockGetRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) ListRecords(ctx context.Context) ([]*writing.RecordView, error) {
	if mock.ListRecordsFunc == nil {
		panic("recordServiceMock.ListRecordsFunc: method is nil but recordService.ListRecords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, callInfo)
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx)
}

func (mock *recordServiceMock) ListRecordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRecords.RLock()
	calls := mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

func (mock *recordServiceMock) TopicHints(ctx context.Context, topic string) (*writing.TopicHints, error) {
	if mock.TopicHintsFunc == nil {
		panic("recordServiceMock.TopicHintsFunc: method is nil but recordService.TopicHints was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic string
	}{
		Ctx:   ctx,
		Topic: topic,
	}
	mock.lockTopicHints.Lock()
	mock.calls.TopicHints = append(mock.calls.TopicHints, callInfo)
	mock.lockTopicHints.Unlock()
	return mock.TopicHintsFunc(ctx, topic)
}

func (mock *recordServiceMock) TopicHintsCalls() []struct {
	Ctx   context.Context
	Topic string
} {
	mock.lockTopicHints.RLock()
	calls := mock.calls.TopicHints
	mock.lockTopicHints.RUnlock()
	return calls
}

func (mock *recordServiceMock) UpdateRecord(ctx context.Context, input writing.UpdateRecordInput) (*writing.RecordView, error) {
	if mock.UpdateRecordFunc == nil {
		panic("recordServiceMock.UpdateRecordFunc: method is nil but recordService.UpdateRecord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input writing.UpdateRecordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateRecord.Lock()
	mock.calls.UpdateRecord = append(mock.calls.UpdateRecord, callInfo)
	mock.lockUpdateRecord.Unlock()
	return mock.UpdateRecordFunc(ctx, input)
}

func (mock *recordServiceMock) UpdateRecordCalls() []struct {
	Ctx   context.Context
	Input writing.UpdateRecordInput
} {
	mock.lockUpdateRecord.RLock()
	calls := mock.calls.UpdateRecord
	mock.lockUpdateRecord.RUnlock()
	return calls
}
