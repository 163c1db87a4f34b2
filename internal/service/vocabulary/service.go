// Package vocabulary manages saved words and model-backed word lookups.
package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/prompt"
	"github.com/heartmarshall/linglual-backend/internal/provider"
	"github.com/heartmarshall/linglual-backend/internal/validate"
)

type wordRepo interface {
	List(ctx context.Context) ([]*domain.Word, error)
	Create(ctx context.Context, w domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// Service implements the vocabulary business logic.
type Service struct {
	log   *slog.Logger
	words wordRepo
	llm   completer
	now   func() time.Time
}

// NewService creates a vocabulary service.
func NewService(logger *slog.Logger, words wordRepo, llm completer) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		words: words,
		llm:   llm,
		now:   time.Now,
	}
}

// AddWordInput is a word to save. RecordID links it to the record it was
// found in and must reference an existing record.
type AddWordInput struct {
	Word     string     `json:"word" validate:"notblank,max=100"`
	Meaning  string     `json:"meaning" validate:"notblank,max=500"`
	Example  *string    `json:"example" validate:"omitempty,max=1000"`
	RecordID *uuid.UUID `json:"recordId"`
}

// AddWord saves a word. An unknown RecordID yields domain.ErrNotFound.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.Word, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	w := domain.Word{
		ID:        uuid.New(),
		Text:      domain.CleanText(input.Word),
		Meaning:   strings.TrimSpace(input.Meaning),
		RecordID:  input.RecordID,
		CreatedAt: s.now(),
	}
	if input.Example != nil {
		if ex := strings.TrimSpace(*input.Example); ex != "" {
			w.Example = &ex
		}
	}

	created, err := s.words.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("add word: %w", err)
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("word_id", created.ID.String()),
		slog.String("word", created.Text),
	)
	return created, nil
}

// ListWords returns saved words, newest first.
func (s *Service) ListWords(ctx context.Context) ([]*domain.Word, error) {
	return s.words.List(ctx)
}

// DeleteWord removes a saved word.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if err := s.words.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}

type wordReply struct {
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// LookupWord asks the model for a Korean meaning and an example sentence.
func (s *Service) LookupWord(ctx context.Context, word string) (*domain.WordInfo, error) {
	word = domain.CleanText(word)
	if err := validate.Field("word", word, "notblank,max=100"); err != nil {
		return nil, err
	}

	reply, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: prompt.WordSystem,
		Prompt: word,
		JSON:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	raw, err := provider.ExtractJSON(reply)
	if err != nil {
		return nil, domain.NewUpstreamError("llm", "word lookup", err)
	}
	var parsed wordReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, domain.NewUpstreamError("llm", "word lookup", err)
	}
	if strings.TrimSpace(parsed.Meaning) == "" {
		return nil, domain.NewUpstreamError("llm", "word lookup", fmt.Errorf("empty meaning for %q", word))
	}

	return &domain.WordInfo{
		Word:    word,
		Meaning: strings.TrimSpace(parsed.Meaning),
		Example: strings.TrimSpace(parsed.Example),
	}, nil
}
