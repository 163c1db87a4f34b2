// Package similar finds alternative expressions for a record's text using web
// search results and the language model.
package similar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/feedback"
	"github.com/heartmarshall/linglual-backend/internal/prompt"
	"github.com/heartmarshall/linglual-backend/internal/provider"
	"github.com/heartmarshall/linglual-backend/internal/validate"
)

type recordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
}

type expressionRepo interface {
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error)
	Create(ctx context.Context, e domain.SimilarExpression) (*domain.SimilarExpression, error)
	DeleteByRecord(ctx context.Context, recordID uuid.UUID) (int64, error)
	ReplaceForRecord(ctx context.Context, recordID uuid.UUID, items []domain.SimilarExpression) ([]domain.SimilarExpression, error)
}

type searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// Service implements the similar-expression business logic.
type Service struct {
	log         *slog.Logger
	records     recordRepo
	expressions expressionRepo
	web         searcher
	llm         completer
	now         func() time.Time
}

// NewService creates a similar-expression service.
func NewService(
	logger *slog.Logger,
	records recordRepo,
	expressions expressionRepo,
	web searcher,
	llm completer,
) *Service {
	return &Service{
		log:         logger.With("service", "similar"),
		records:     records,
		expressions: expressions,
		web:         web,
		llm:         llm,
		now:         time.Now,
	}
}

// SearchResult is the outcome of one similar-expression search.
type SearchResult struct {
	Query       string
	Sources     []domain.SearchResult
	Text        string
	Expressions []domain.SimilarExpression
}

// Search looks up writing examples for the record, asks the model for
// alternatives and replaces the record's stored batch with them. A reply
// without usable blocks leaves the record with no expressions.
func (s *Service) Search(ctx context.Context, recordID uuid.UUID) (*SearchResult, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	query := prompt.SearchQuery(rec.SearchKeywords, rec.Topic)
	sources, err := s.web.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search examples: %w", err)
	}

	reply, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: prompt.SimilarSystem,
		Prompt: prompt.Similar(rec.Content, sources),
	})
	if err != nil {
		return nil, fmt.Errorf("generate alternatives: %w", err)
	}

	alts := feedback.ParseAlternatives(reply)
	stored, err := s.expressions.ReplaceForRecord(ctx, recordID, s.batch(recordID, alts))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "similar expressions replaced",
		slog.String("record_id", recordID.String()),
		slog.String("query", query),
		slog.Int("sources", len(sources)),
		slog.Int("expressions", len(stored)),
	)

	return &SearchResult{
		Query:       query,
		Sources:     sources,
		Text:        reply,
		Expressions: stored,
	}, nil
}

// batch builds rows for alts. Each row is stamped one microsecond earlier
// than the previous one so newest-first listing keeps generation order.
func (s *Service) batch(recordID uuid.UUID, alts []feedback.Alternative) []domain.SimilarExpression {
	now := s.now()
	out := make([]domain.SimilarExpression, len(alts))
	for i, a := range alts {
		out[i] = domain.SimilarExpression{
			ID:              uuid.New(),
			RecordID:        recordID,
			OriginalText:    a.Original,
			AlternativeText: a.Alternative,
			Explanation:     a.Explanation,
			CreatedAt:       now.Add(-time.Duration(i) * time.Microsecond),
		}
	}
	return out
}

// List returns the stored expressions of a record, newest first.
func (s *Service) List(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error) {
	return s.expressions.ListByRecord(ctx, recordID)
}

// SaveInput is a manually saved alternative expression.
type SaveInput struct {
	RecordID        uuid.UUID `json:"recordId" validate:"required"`
	OriginalText    string    `json:"originalText" validate:"notblank,max=2000"`
	AlternativeText string    `json:"alternativeText" validate:"notblank,max=2000"`
	Explanation     string    `json:"explanation" validate:"max=4000"`
}

// Save stores a single expression. An unknown record yields domain.ErrNotFound.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.SimilarExpression, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	created, err := s.expressions.Create(ctx, domain.SimilarExpression{
		ID:              uuid.New(),
		RecordID:        input.RecordID,
		OriginalText:    strings.TrimSpace(input.OriginalText),
		AlternativeText: strings.TrimSpace(input.AlternativeText),
		Explanation:     strings.TrimSpace(input.Explanation),
		CreatedAt:       s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save similar expression: %w", err)
	}
	return created, nil
}

// Clear removes every expression of a record and reports how many were removed.
func (s *Service) Clear(ctx context.Context, recordID uuid.UUID) (int64, error) {
	n, err := s.expressions.DeleteByRecord(ctx, recordID)
	if err != nil {
		return 0, err
	}
	s.log.InfoContext(ctx, "similar expressions cleared",
		slog.String("record_id", recordID.String()),
		slog.Int64("removed", n),
	)
	return n, nil
}
