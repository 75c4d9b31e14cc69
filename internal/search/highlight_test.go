package search

import "testing"

func TestHighlight(t *testing.T) {
	const (
		on  = HighlightStart
		off = HighlightReset
	)

	tests := []struct {
		name    string
		line    string
		keyword string
		enabled bool
		want    string
	}{
		{"single occurrence", "// TODO: fix", "TODO", true, "// " + on + "TODO" + off + ": fix"},
		{"multiple occurrences", "TODO and TODO", "TODO", true, on + "TODO" + off + " and " + on + "TODO" + off},
		{"adjacent occurrences", "TODOTODO", "TODO", true, on + "TODO" + off + on + "TODO" + off},
		{"non-overlapping", "aaa", "aa", true, on + "aa" + off + "a"},
		{"no occurrence", "nothing here", "TODO", true, "nothing here"},
		{"case-sensitive", "todo", "TODO", true, "todo"},
		{"disabled", "TODO", "TODO", false, "TODO"},
		{"empty keyword", "line", "", true, "line"},
		{"unicode", "héllo wörld", "wö", true, "héllo " + on + "wö" + off + "rld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.line, tt.keyword, tt.enabled); got != tt.want {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tt.line, tt.keyword, got, tt.want)
			}
		})
	}
}
