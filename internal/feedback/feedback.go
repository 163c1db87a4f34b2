// Package feedback holds the structured form of a writing evaluation and the
// text grammar used to store it.
//
// A stored feedback blob looks like this:
//
//	강점:
//	<strengths>
//
//	개선점:
//	<improvements>
//
//	수정 제안:
//	• <original> → <suggestion>
//	   <explanation>
//
// Serialize and Parse are inverse for content that contains none of the
// grammar tokens. Parse, ParseAlternatives and ParseHints are total: any
// input yields a value and none of them returns an error.
package feedback

import "github.com/heartmarshall/linglual-backend/internal/domain"

// Grammar tokens of the stored feedback blob.
const (
	LabelStrengths    = "강점:"
	LabelImprovements = "개선점:"
	LabelCorrections  = "수정 제안:"
	Bullet            = "•"
	Separator         = "→"

	explanationIndent = "   "
)

// Placeholder texts shown while an evaluation is missing or incomplete.
const (
	PlaceholderText        = "분석 중..."
	PlaceholderSuggestion  = "분석이 완료되면 수정 제안이 표시됩니다."
	PlaceholderExplanation = "잠시만 기다려주세요."
)

// Feedback is a structured writing evaluation.
// Level and Summary are stored in their own record columns; the text blob
// only carries Strengths, Improvements and Corrections.
type Feedback struct {
	Level        *domain.Level
	Summary      string
	Strengths    string
	Improvements string
	Corrections  []Correction
}

// Correction is one suggested rewrite of a fragment of the source text.
type Correction struct {
	Original    string
	Suggestion  string
	Explanation string
}

// PlaceholderCorrection is substituted when no correction could be parsed.
func PlaceholderCorrection() Correction {
	return Correction{
		Original:    PlaceholderText,
		Suggestion:  PlaceholderSuggestion,
		Explanation: PlaceholderExplanation,
	}
}

// IsPlaceholder reports whether c is the placeholder correction.
func (c Correction) IsPlaceholder() bool {
	return c == PlaceholderCorrection()
}
