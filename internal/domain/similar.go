package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimilarExpression is an alternative phrasing stored for a record.
type SimilarExpression struct {
	ID              uuid.UUID
	RecordID        uuid.UUID
	OriginalText    string
	AlternativeText string
	Explanation     string
	CreatedAt       time.Time
}

// SearchResult is one web search hit used as material for alternatives.
type SearchResult struct {
	Title   string
	Content string
	URL     string
	Score   float64
}
