// Package claude adapts the Anthropic Messages API to the completion
// interface used by the services.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/observability"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

const name = "claude"

// Client sends single-turn completions to Claude.
type Client struct {
	client      anthropic.Client
	model       string
	maxTokens   int
	temperature float64
	log         *slog.Logger
}

// New creates a Client from cfg. Extra options are appended after the ones
// derived from cfg.
func New(cfg config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:      anthropic.NewClient(append(base, opts...)...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         logger.With("adapter", name),
	}
}

// Complete returns the concatenated text blocks of the reply.
// Claude has no native JSON mode; req.JSON only affects the prompt.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (text string, err error) {
	start := time.Now()
	defer func() { observability.ObserveAI(name, "messages", start, err) }()

	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "claude request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(name, "complete", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", domain.NewUpstreamError(name, "complete", errors.New("empty response"))
	}

	c.log.DebugContext(ctx, "claude response",
		slog.String("model", c.model),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		c.log.WarnContext(ctx, "claude reply truncated", slog.Int("max_tokens", maxTokens))
	}

	return b.String(), nil
}

// String identifies the adapter in logs.
func (c *Client) String() string {
	return fmt.Sprintf("%s(%s)", name, c.model)
}
