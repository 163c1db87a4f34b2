package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/linglual-backend/internal/domain"
	"github.com/heartmarshall/linglual-backend/internal/provider"
)

// Analysis is the JSON document the model returns for an evaluation request.
type Analysis struct {
	Level          string           `json:"level"`
	Summary        text             `json:"summary"`
	Feedback       analysisFeedback `json:"feedback"`
	SearchKeywords []string         `json:"searchKeywords"`
}

type analysisFeedback struct {
	Strengths    text                 `json:"strengths"`
	Improvements text                 `json:"improvements"`
	Corrections  []analysisCorrection `json:"corrections"`
}

type analysisCorrection struct {
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Explanation string `json:"explanation"`
}

// text accepts either a JSON string or an array of strings. Models asked for
// "2-3 strengths" regularly answer with a list.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("expected string or string array: %w", err)
	}
	*t = text(strings.Join(list, "\n"))
	return nil
}

// DecodeAnalysis extracts and decodes the evaluation JSON from a model reply.
func DecodeAnalysis(reply string) (*Analysis, error) {
	raw, err := provider.ExtractJSON(reply)
	if err != nil {
		return nil, err
	}

	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	return &a, nil
}

// Structured converts the model document into a Feedback. An unknown level
// is left nil. Corrections are copied in order and may be empty.
func (a *Analysis) Structured() Feedback {
	fb := Feedback{
		Summary:      strings.TrimSpace(string(a.Summary)),
		Strengths:    strings.TrimSpace(string(a.Feedback.Strengths)),
		Improvements: strings.TrimSpace(string(a.Feedback.Improvements)),
		Corrections:  make([]Correction, 0, len(a.Feedback.Corrections)),
	}
	if lvl, ok := domain.ParseLevel(a.Level); ok {
		fb.Level = &lvl
	}
	for _, c := range a.Feedback.Corrections {
		fb.Corrections = append(fb.Corrections, Correction{
			Original:    strings.TrimSpace(c.Original),
			Suggestion:  strings.TrimSpace(c.Suggestion),
			Explanation: strings.TrimSpace(c.Explanation),
		})
	}
	return fb
}

// Keywords returns the non-empty search keywords, trimmed.
func (a *Analysis) Keywords() []string {
	out := make([]string, 0, len(a.SearchKeywords))
	for _, k := range a.SearchKeywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
