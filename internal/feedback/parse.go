package feedback

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var sectionLabels = []string{LabelStrengths, LabelImprovements, LabelCorrections}

// Parse rebuilds a Feedback from a stored blob or from arbitrary text.
//
// A missing strengths or improvements label yields PlaceholderText for that
// section. Corrections come from the lines after the first line containing
// LabelCorrections; when none are found the result holds exactly one
// PlaceholderCorrection, so Corrections is never empty.
//
// Labels match in any Unicode normalization form. Section content is
// returned with the bytes it was written with.
func Parse(text string) Feedback {
	lines := splitLines(text)

	fb := Feedback{
		Strengths:    section(lines, LabelStrengths),
		Improvements: section(lines, LabelImprovements),
		Corrections:  corrections(lines),
	}
	if len(fb.Corrections) == 0 {
		fb.Corrections = []Correction{PlaceholderCorrection()}
	}

	return fb
}

// line keeps an input line next to its trimmed NFC form. Label lookups use
// key, content comes from raw.
type line struct {
	raw string
	key string
}

// splitLines returns the non-blank lines of text.
func splitLines(text string) []line {
	raw := strings.Split(text, "\n")
	lines := make([]line, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		t := strings.TrimSpace(l)
		if t == "" {
			continue
		}
		lines = append(lines, line{raw: l, key: norm.NFC.String(t)})
	}
	return lines
}

// trimLabel strips label from the front of raw, where raw may spell the
// label in decomposed form.
func trimLabel(raw, label string) string {
	var composed strings.Builder
	for i := 0; i < len(raw); {
		n := norm.NFC.NextBoundaryInString(raw[i:], true)
		if n <= 0 {
			break
		}
		composed.WriteString(norm.NFC.String(raw[i : i+n]))
		i += n
		if composed.String() == label {
			return raw[i:]
		}
		if composed.Len() >= len(label) {
			break
		}
	}
	return strings.TrimPrefix(raw, label)
}

// section returns the body under label: any text after the label on its own
// line, then every following line up to the next section label.
func section(lines []line, label string) string {
	start := -1
	for i, l := range lines {
		if strings.HasPrefix(l.key, label) {
			start = i
			break
		}
	}
	if start < 0 {
		return PlaceholderText
	}

	var body []string
	if rest := strings.TrimSpace(trimLabel(strings.TrimSpace(lines[start].raw), label)); rest != "" {
		body = append(body, rest)
	}
	for _, l := range lines[start+1:] {
		if isSectionLabel(l.key) {
			break
		}
		body = append(body, l.raw)
	}

	return strings.TrimSpace(strings.Join(body, "\n"))
}

func isSectionLabel(key string) bool {
	for _, label := range sectionLabels {
		if strings.HasPrefix(key, label) {
			return true
		}
	}
	return false
}

// corrections scans the lines after the corrections label. A bullet line
// opens a new Correction; any other line replaces the explanation of the
// open one. Lines before the first bullet are ignored.
func corrections(lines []line) []Correction {
	start := -1
	for i, l := range lines {
		if strings.Contains(l.key, LabelCorrections) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var (
		out  []Correction
		open *Correction
	)
	for _, l := range lines[start+1:] {
		t := strings.TrimSpace(l.raw)
		if strings.HasPrefix(t, Bullet) {
			if open != nil {
				out = append(out, *open)
			}
			c := splitCorrection(strings.TrimPrefix(t, Bullet))
			open = &c
			continue
		}
		if open != nil {
			open.Explanation = t
		}
	}
	if open != nil {
		out = append(out, *open)
	}

	return out
}

// splitCorrection splits a bullet body on every Separator. The first part is
// the original, the second the suggestion; anything after a second
// Separator is dropped.
func splitCorrection(s string) Correction {
	parts := strings.Split(s, Separator)
	c := Correction{Original: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		c.Suggestion = strings.TrimSpace(parts[1])
	}
	return c
}
