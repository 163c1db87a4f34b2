package similar

import (
	"context"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"sync"
)

var _ searcher = &searcherMock{}

type searcherMock struct {
	SearchFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *searcherMock) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if mock.SearchFunc == nil {
		panic("searcherMock.SearchFunc: method is nil but searcher.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{
		Ctx:   ctx,
		Query: query,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *searcherMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
