package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/service/vocabulary"
	"sync"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	AddWordFunc    func(ctx context.Context, input vocabulary.AddWordInput) (*domain.Word, error)
	DeleteWordFunc func(ctx context.Context, id uuid.UUID) error
	ListWordsFunc  func(ctx context.Context) ([]*domain.Word, error)
	LookupWordFunc func(ctx context.Context, word string) (*domain.WordInfo, error)

	calls struct {
		AddWord []struct {
			Ctx   context.Context
			Input vocabulary.AddWordInput
		}
		DeleteWord []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListWords []struct {
			Ctx context.Context
		}
		LookupWord []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockAddWord    sync.RWMutex
	lockDeleteWord sync.RWMutex
	lockListWords  sync.RWMutex
	lockLookupWord sync.RWMutex
}

func (mock *vocabularyServiceMock) AddWord(ctx context.Context, input vocabulary.AddWordInput) (*domain.Word, error) {
	if mock.AddWordFunc == nil {
		panic("vocabularyServiceMock.AddWordFunc: method is nil but vocabularyService.AddWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.AddWordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, callInfo)
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *vocabularyServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input vocabulary.AddWordInput
} {
	mock.lockAddWord.RLock()
	calls := mock.calls.AddWord
	mock.lockAddWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("vocabularyServiceMock.DeleteWordFunc: method is nil but vocabularyService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, id)
}

func (mock *vocabularyServiceMock) DeleteWordCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ListWords(ctx context.Context) ([]*domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("vocabularyServiceMock.ListWordsFunc: method is nil but vocabularyService.ListWords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx)
}

func (mock *vocabularyServiceMock) ListWordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) LookupWord(ctx context.Context, word string) (*domain.WordInfo, error) {
	if mock.LookupWordFunc == nil {
		panic("vocabularyServiceMock.LookupWordFunc: method is nil but vocabularyService.LookupWord was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{
		Ctx:  ctx,
		Word: word,
	}
	mock.lockLookupWord.Lock()
	mock.calls.LookupWord = append(mock.calls.LookupWord, callInfo)
	mock.lockLookupWord.Unlock()
	return mock.LookupWordFunc(ctx, word)
}

func (mock *vocabularyServiceMock) LookupWordCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookupWord.RLock()
	calls := mock.calls.LookupWord
	mock.lockLookupWord.RUnlock()
	return calls
}
