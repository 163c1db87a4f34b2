package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single writing submission together with its stored evaluation.
// Feedback holds the serialized feedback blob; it is parsed on every read.
type Record struct {
	ID             uuid.UUID
	Date           time.Time
	Content        string
	Topic          string
	Level          *Level
	Summary        string
	Feedback       string
	SearchKeywords []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecordAnalysis is the evaluation portion of a record written on create and
// on every re-analysis.
type RecordAnalysis struct {
	Level          *Level
	Summary        string
	Feedback       string
	SearchKeywords []string
}

// Apply copies the analysis onto the record.
func (r *Record) Apply(a RecordAnalysis) {
	r.Level = a.Level
	r.Summary = a.Summary
	r.Feedback = a.Feedback
	r.SearchKeywords = a.SearchKeywords
}
