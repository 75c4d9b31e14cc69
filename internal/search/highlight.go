package search

import "strings"

// ANSI sequences wrapped around every keyword occurrence.
const (
	HighlightStart = "\x1b[1;31m"
	HighlightReset = "\x1b[0m"
)

// Highlight wraps every non-overlapping occurrence of keyword in line with the
// highlight sequences. When enabled is false or keyword is empty the line is
// returned unchanged.
func Highlight(line, keyword string, enabled bool) string {
	if !enabled || keyword == "" || !strings.Contains(line, keyword) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + 16)

	rest := line
	for {
		idx := strings.Index(rest, keyword)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(HighlightStart)
		b.WriteString(keyword)
		b.WriteString(HighlightReset)
		rest = rest[idx+len(keyword):]
	}
	b.WriteString(rest)

	return b.String()
}
