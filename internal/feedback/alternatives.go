package feedback

import "strings"

// Alternative is one alternative phrasing produced by the model.
type Alternative struct {
	Original    string
	Alternative string
	Explanation string
}

// ParseAlternatives reads blocks separated by blank lines. The first three
// non-blank lines of a block are taken as original, alternative and
// explanation; blocks with fewer than three lines are dropped.
// The result is never nil.
func ParseAlternatives(text string) []Alternative {
	out := []Alternative{}

	var block []string
	flush := func() {
		if len(block) >= 3 {
			out = append(out, Alternative{
				Original:    block[0],
				Alternative: block[1],
				Explanation: block[2],
			})
		}
		block = block[:0]
	}

	for _, l := range strings.Split(text, "\n") {
		t := strings.TrimSpace(l)
		if t == "" {
			flush()
			continue
		}
		block = append(block, t)
	}
	flush()

	return out
}
