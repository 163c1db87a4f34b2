// Package provider holds the request types and helpers shared by the language
// model and web search adapters.
package provider

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when a model reply contains no JSON object.
var ErrNoJSON = errors.New("no JSON object found in response")

// CompletionRequest is a single-turn request to a language model.
type CompletionRequest struct {
	System string
	Prompt string
	// JSON asks the model for a single JSON object. Adapters with a native
	// JSON mode enable it; the others rely on the prompt.
	JSON bool
	// MaxTokens overrides the adapter default when > 0.
	MaxTokens int
}

// ExtractJSON returns the text between the first '{' and the last '}' of s.
// Models often wrap JSON in prose or markdown fences.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}
