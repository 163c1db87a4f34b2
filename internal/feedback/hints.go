package feedback

import (
	"regexp"
	"strings"
)

// Hint is one expression suggested for writing about a topic.
type Hint struct {
	Expression  string
	Explanation string
}

var numberedLine = regexp.MustCompile(`^\s*\d+\s*[.)]\s*(.+)$`)

// ParseHints extracts numbered "N. expression - explanation" lines from the
// model's hint text. Unnumbered lines are skipped; a line without the dash
// becomes an expression with an empty explanation. Square brackets around
// either part are removed.
func ParseHints(text string) []Hint {
	out := []Hint{}

	for _, l := range strings.Split(text, "\n") {
		m := numberedLine.FindStringSubmatch(strings.TrimRight(l, "\r"))
		if m == nil {
			continue
		}

		expr, expl, _ := strings.Cut(m[1], " - ")
		h := Hint{
			Expression:  unbracket(expr),
			Explanation: unbracket(expl),
		}
		if h.Expression == "" {
			continue
		}
		out = append(out, h)
	}

	return out
}

func unbracket(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
