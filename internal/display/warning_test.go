package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningDisplay(t *testing.T) {
	tests := []struct {
		name string
		w    Warning
		want string
	}{
		{
			name: "title only",
			w:    Warning{Title: "report not written"},
			want: "warning: report not written\n",
		},
		{
			name: "all parts",
			w: Warning{
				Title:  "history not written",
				Detail: "database is locked",
				Paths:  []string{"/tmp/runs.db"},
				Hint:   "retry later",
			},
			want: "warning: history not written\n" +
				"  database is locked\n" +
				"    /tmp/runs.db\n" +
				"  hint: retry later\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.w.Display(&buf, false)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWarningDisplay_Color(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "x"}.Display(&buf, true)

	out := buf.String()
	assert.Contains(t, out, "\x1b[33;1mwarning:")
	assert.Contains(t, out, " x\n")
}

func TestWarnUnreadableDirs(t *testing.T) {
	one := WarnUnreadableDirs([]string{"/a"})
	assert.Equal(t, "1 directory could not be read", one.Title)

	two := WarnUnreadableDirs([]string{"/a", "/b"})
	assert.Equal(t, "2 directories could not be read", two.Title)
	assert.Equal(t, []string{"/a", "/b"}, two.Paths)

	var buf bytes.Buffer
	two.Display(&buf, false)
	assert.Equal(t, "warning: 2 directories could not be read\n"+
		"    /a\n"+
		"    /b\n"+
		"  hint: check permissions or exclude them with --exclude-dir\n", buf.String())
}

func TestWarnOutputFailed(t *testing.T) {
	w := WarnOutputFailed("Report", errors.New("permission denied"))
	assert.Equal(t, "Report not written", w.Title)
	assert.Equal(t, "permission denied", w.Detail)
}
