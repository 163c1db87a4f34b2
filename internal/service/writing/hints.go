package writing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/linglual-backend/internal/feedback"
	"github.com/heartmarshall/linglual-backend/internal/prompt"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

// TopicHints is the model's list of useful expressions for a topic.
// Text is the raw reply; Hints holds the numbered lines that could be parsed.
type TopicHints struct {
	Topic string
	Text  string
	Hints []feedback.Hint
}

// TopicHints suggests expressions for writing about topic.
func (s *Service) TopicHints(ctx context.Context, topic string) (*TopicHints, error) {
	topic = strings.TrimSpace(topic)
	if err := validateTopic(topic, s.limits); err != nil {
		return nil, err
	}

	reply, err := s.llm.Complete(ctx, provider.CompletionRequest{
		System: prompt.HintSystem(s.limits.HintCount),
		Prompt: prompt.Hint(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("topic hints: %w", err)
	}

	hints := feedback.ParseHints(reply)
	s.log.DebugContext(ctx, "topic hints generated",
		slog.String("topic", topic),
		slog.Int("hints", len(hints)),
	)

	return &TopicHints{Topic: topic, Text: reply, Hints: hints}, nil
}
