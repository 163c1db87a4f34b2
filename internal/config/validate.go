package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := c.Writing.validate(); err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderClaude, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", l.Provider, ProviderClaude, ProviderOpenAI)
	}
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if s.Depth != "basic" && s.Depth != "advanced" {
		return fmt.Errorf("depth must be basic or advanced (got %q)", s.Depth)
	}
	if s.MaxResults < 1 || s.MaxResults > 20 {
		return fmt.Errorf("max_results must be within [1, 20] (got %d)", s.MaxResults)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	return nil
}

func (w *WritingConfig) validate() error {
	if w.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be > 0 (got %d)", w.MaxContentLength)
	}
	if w.MaxTopicLength <= 0 {
		return fmt.Errorf("max_topic_length must be > 0 (got %d)", w.MaxTopicLength)
	}
	if w.HintCount < 1 || w.HintCount > 30 {
		return fmt.Errorf("hint_count must be within [1, 30] (got %d)", w.HintCount)
	}
	return nil
}
