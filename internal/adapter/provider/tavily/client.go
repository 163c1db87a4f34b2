// Package tavily is a web search client for the Tavily search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/observability"
)

const name = "tavily"

// Client searches the web for writing examples.
type Client struct {
	baseURL    string
	apiKey     string
	depth      string
	maxResults int
	httpClient *http.Client
	newBackOff func() backoff.BackOff
	log        *slog.Logger
}

// New creates a Client from cfg.
func New(cfg config.SearchConfig, logger *slog.Logger) *Client {
	maxElapsed := cfg.RetryMaxElapsed
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		depth:      cfg.Depth,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		newBackOff: func() backoff.BackOff {
			expo := backoff.NewExponentialBackOff()
			expo.MaxElapsedTime = maxElapsed
			return expo
		},
		log: logger.With("adapter", name),
	}
}

type searchRequest struct {
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

type searchResponse struct {
	Query   string `json:"query"`
	Answer  string `json:"answer"`
	Results []struct {
		Title   string  `json:"title"`
		Content string  `json:"content"`
		URL     string  `json:"url"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// Search runs query and returns the hits in the order Tavily ranked them.
// The result is never nil.
func (c *Client) Search(ctx context.Context, query string) (results []domain.SearchResult, err error) {
	defer func() { observability.ObserveSearch(name, err) }()

	body, err := json.Marshal(searchRequest{
		Query:         query,
		SearchDepth:   c.depth,
		IncludeAnswer: true,
		MaxResults:    c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("tavily: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "tavily request", slog.String("query", query))
	start := time.Now()

	var parsed searchResponse
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			c.log.WarnContext(ctx, "tavily retry", slog.String("reason", "network error"))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			c.log.WarnContext(ctx, "tavily retry", slog.Int("status", resp.StatusCode))
			return fmt.Errorf("search status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			c.log.WarnContext(ctx, "tavily 4xx", slog.Int("status", resp.StatusCode), slog.String("body", string(snippet)))
			return backoff.Permanent(fmt.Errorf("search status %d", resp.StatusCode))
		}

		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		c.log.ErrorContext(ctx, "tavily request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(name, "search", err)
	}

	results = make([]domain.SearchResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, domain.SearchResult{
			Title:   r.Title,
			Content: r.Content,
			URL:     r.URL,
			Score:   r.Score,
		})
	}

	c.log.DebugContext(ctx, "tavily response",
		slog.String("query", query),
		slog.Int("results", len(results)),
		slog.Duration("took", time.Since(start)),
	)

	return results, nil
}
