package display

import (
	"bytes"
	"testing"
)

func TestProgressIndicator_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 2, false)

	p.Start("/src")
	p.Step("/src/a.c")
	p.Step("/src/b.h")
	p.Complete()

	want := "Eligible files under /src:\n" +
		"  [1/2] /src/a.c\n" +
		"  [2/2] /src/b.h\n" +
		"✓ 2 files would be searched\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
}

func TestProgressIndicator_Color(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 1, true)

	p.Step("a.txt")
	p.Complete()

	want := "\x1b[36m  [1/1] a.txt\x1b[0m\n" +
		"\x1b[32m✓\x1b[0m 1 files would be searched\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
}
