package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText prepares user-entered text for storage:
//   - applies Unicode NFC composition
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case, diacritics, hyphens, and apostrophes are preserved.
func CleanText(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}
