// Package openai talks to any OpenAI-compatible chat completions endpoint
// through the eino ChatModel.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/observability"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

const (
	name           = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
)

// Client wraps two eino chat models (plain text and JSON mode) with
// exponential backoff on 429, 5xx and network errors.
type Client struct {
	baseURL    string
	modelName  string
	maxTokens  int
	maxRetries int
	text       model.BaseChatModel
	json       model.BaseChatModel
	newBackOff func() backoff.BackOff
	log        *slog.Logger
}

// New creates a Client from cfg.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: statusTransport{next: http.DefaultTransport},
	}
	temperature := float32(cfg.Temperature)
	maxTokens := cfg.MaxTokens

	base := einoopenai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     baseURL,
		Model:       cfg.Model,
		HTTPClient:  httpClient,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	text, err := einoopenai.NewChatModel(ctx, &base)
	if err != nil {
		return nil, fmt.Errorf("openai: create chat model: %w", err)
	}

	jsonCfg := base
	jsonCfg.ResponseFormat = &einoopenai.ChatCompletionResponseFormat{
		Type: einoopenai.ChatCompletionResponseFormatTypeJSONObject,
	}
	jsonModel, err := einoopenai.NewChatModel(ctx, &jsonCfg)
	if err != nil {
		return nil, fmt.Errorf("openai: create json chat model: %w", err)
	}

	c := &Client{
		baseURL:    baseURL,
		modelName:  cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: cfg.MaxRetries,
		text:       text,
		json:       jsonModel,
		log:        logger.With("adapter", name),
	}
	c.newBackOff = func() backoff.BackOff {
		return backoff.NewExponentialBackOff()
	}
	return c, nil
}

// Complete returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, req provider.CompletionRequest) (text string, err error) {
	start := time.Now()
	defer func() { observability.ObserveAI(name, "chat", start, err) }()

	chat := c.text
	if req.JSON {
		chat = c.json
	}

	messages := make([]*schema.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, schema.SystemMessage(req.System))
	}
	messages = append(messages, schema.UserMessage(req.Prompt))

	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	var resp *schema.Message
	op := func() error {
		status := new(int)
		out, err := chat.Generate(withStatus(ctx, status), messages, model.WithMaxTokens(maxTokens))
		if err == nil {
			resp = out
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		if !retryable(*status) {
			c.log.WarnContext(ctx, "openai request rejected",
				slog.Int("status", *status),
				slog.String("model", c.modelName),
				slog.String("error", err.Error()),
			)
			return backoff.Permanent(err)
		}
		c.log.WarnContext(ctx, "openai retry", slog.Int("status", *status), slog.String("error", err.Error()))
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		c.log.ErrorContext(ctx, "openai request failed", slog.String("model", c.modelName), slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(name, "complete", err)
	}

	if resp == nil || resp.Content == "" {
		return "", domain.NewUpstreamError(name, "complete", errors.New("empty response"))
	}

	if resp.ResponseMeta != nil {
		c.log.DebugContext(ctx, "openai response",
			slog.String("model", c.modelName),
			slog.String("finish_reason", resp.ResponseMeta.FinishReason),
		)
	}

	return resp.Content, nil
}

// retryable reports whether a failed call should be attempted again.
// Status 0 means the request never got an HTTP response.
func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

// String identifies the adapter in logs.
func (c *Client) String() string {
	return fmt.Sprintf("%s(%s)", name, c.modelName)
}
