package writing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/feedback"
	"github.com/heartmarshall/linglual-backend/internal/observability"
	"github.com/heartmarshall/linglual-backend/internal/prompt"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

// RecordView is a record with its feedback blob parsed.
type RecordView struct {
	Record   *domain.Record
	Feedback feedback.Feedback
}

// CreateRecord evaluates the submission and stores it dated today.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*RecordView, error) {
	input.trim()
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	analysis, err := s.analyze(ctx, input.Content)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := domain.Record{
		ID:        uuid.New(),
		Date:      today(now),
		Content:   input.Content,
		Topic:     input.Topic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	rec.Apply(analysis)

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	view := s.view(created)
	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", created.ID.String()),
		slog.String("level", levelString(created.Level)),
		slog.Int("corrections", len(view.Feedback.Corrections)),
	)

	return view, nil
}

// UpdateRecord replaces content and topic, re-evaluates the text and moves
// the record to today.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateRecordInput) (*RecordView, error) {
	input.trim()
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	rec, err := s.records.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyze(ctx, input.Content)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec.Content = input.Content
	rec.Topic = input.Topic
	rec.Date = today(now)
	rec.UpdatedAt = now
	rec.Apply(analysis)

	updated, err := s.records.Update(ctx, *rec)
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.InfoContext(ctx, "record re-analyzed",
		slog.String("record_id", updated.ID.String()),
		slog.String("level", levelString(updated.Level)),
	)

	return s.view(updated), nil
}

// GetRecord returns a record with its stored feedback parsed.
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*RecordView, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(rec), nil
}

// ListRecords returns every record, newest writing date first.
func (s *Service) ListRecords(ctx context.Context) ([]*RecordView, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*RecordView, len(recs))
	for i, rec := range recs {
		out[i] = s.view(rec)
	}
	return out, nil
}

// DeleteRecord removes a record together with its similar expressions.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	var removed int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.expressions.DeleteByRecord(ctx, id)
		if err != nil {
			return fmt.Errorf("delete similar expressions: %w", err)
		}
		removed = n
		return s.records.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("record_id", id.String()),
		slog.Int64("expressions", removed),
	)
	return nil
}

// analyze asks the model for an evaluation of content and serializes it.
func (s *Service) analyze(ctx context.Context, content string) (domain.RecordAnalysis, error) {
	reply, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: prompt.AnalysisSystem,
		Prompt: content,
		JSON:   true,
	})
	if err != nil {
		return domain.RecordAnalysis{}, fmt.Errorf("analyze: %w", err)
	}

	a, err := feedback.DecodeAnalysis(reply)
	if err != nil {
		s.log.WarnContext(ctx, "unusable analysis reply", slog.String("error", err.Error()))
		return domain.RecordAnalysis{}, domain.NewUpstreamError("llm", "analysis", err)
	}

	fb := a.Structured()
	return domain.RecordAnalysis{
		Level:          fb.Level,
		Summary:        fb.Summary,
		Feedback:       feedback.Serialize(fb),
		SearchKeywords: a.Keywords(),
	}, nil
}

func (s *Service) view(rec *domain.Record) *RecordView {
	fb := feedback.Parse(rec.Feedback)
	fb.Level = rec.Level
	fb.Summary = rec.Summary
	if len(fb.Corrections) == 1 && fb.Corrections[0].IsPlaceholder() {
		observability.FeedbackPlaceholderTotal.Inc()
	}
	return &RecordView{Record: rec, Feedback: fb}
}

func levelString(l *domain.Level) string {
	if l == nil {
		return ""
	}
	return l.String()
}
