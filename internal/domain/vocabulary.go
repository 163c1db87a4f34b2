package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a saved vocabulary item, optionally tied to the record it came from.
type Word struct {
	ID        uuid.UUID
	Text      string
	Meaning   string
	Example   *string
	RecordID  *uuid.UUID
	CreatedAt time.Time
}

// WordInfo is the model's answer to a word lookup.
type WordInfo struct {
	Word    string
	Meaning string
	Example string
}
