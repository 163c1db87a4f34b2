package feedback

import "strings"

// Serialize flattens fb into the stored blob. Level and Summary are not part
// of the blob. Content is written verbatim: a Separator or Bullet inside a
// correction makes the result ambiguous for Parse.
func Serialize(fb Feedback) string {
	var b strings.Builder

	writeSection(&b, LabelStrengths, fb.Strengths)
	b.WriteString("\n")
	writeSection(&b, LabelImprovements, fb.Improvements)
	b.WriteString("\n")

	b.WriteString(LabelCorrections)
	b.WriteString("\n")
	for i, c := range fb.Corrections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		writeCorrection(&b, c)
	}
	if len(fb.Corrections) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func writeSection(b *strings.Builder, label, body string) {
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

func writeCorrection(b *strings.Builder, c Correction) {
	b.WriteString(Bullet)
	b.WriteString(" ")
	b.WriteString(c.Original)
	b.WriteString(" ")
	b.WriteString(Separator)
	b.WriteString(" ")
	b.WriteString(c.Suggestion)
	b.WriteString("\n")
	b.WriteString(explanationIndent)
	b.WriteString(c.Explanation)
}
