// Package writing implements evaluation and storage of writing records.
package writing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

type recordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
	Create(ctx context.Context, rec domain.Record) (*domain.Record, error)
	Update(ctx context.Context, rec domain.Record) (*domain.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expressionRepo interface {
	DeleteByRecord(ctx context.Context, recordID uuid.UUID) (int64, error)
}

type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service evaluates writing with the language model and stores the results.
type Service struct {
	log         *slog.Logger
	records     recordRepo
	expressions expressionRepo
	llm         completer
	tx          txManager
	limits      config.WritingConfig
	now         func() time.Time
}

// NewService creates a writing service.
func NewService(
	logger *slog.Logger,
	records recordRepo,
	expressions expressionRepo,
	llm completer,
	tx txManager,
	limits config.WritingConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "writing"),
		records:     records,
		expressions: expressions,
		llm:         llm,
		tx:          tx,
		limits:      limits,
		now:         time.Now,
	}
}

// today is the calendar date of t in UTC.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
