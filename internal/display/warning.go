package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning is a non-fatal problem reported on stderr after a run.
type Warning struct {
	Title  string   // One-line summary
	Detail string   // Underlying error text (optional)
	Paths  []string // Paths the warning is about (optional)
	Hint   string   // What the user can do about it (optional)
}

// Display writes the warning as a single block:
//
//	warning: 2 directories could not be read
//	    /srv/a
//	    /srv/b
//	  hint: check permissions or exclude them with --exclude-dir
//
// Only the "warning:" label is coloured, and only when colorize is true.
func (w Warning) Display(out io.Writer, colorize bool) {
	label := color.New(color.FgYellow, color.Bold)
	if colorize {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", label.Sprint("warning:"), w.Title)
	if w.Detail != "" {
		fmt.Fprintf(&b, "  %s\n", w.Detail)
	}
	for _, path := range w.Paths {
		fmt.Fprintf(&b, "    %s\n", path)
	}
	if w.Hint != "" {
		fmt.Fprintf(&b, "  hint: %s\n", w.Hint)
	}

	io.WriteString(out, b.String())
}

// WarnUnreadableDirs reports directories whose subtrees were not searched.
func WarnUnreadableDirs(dirs []string) Warning {
	noun := "directories"
	if len(dirs) == 1 {
		noun = "directory"
	}
	return Warning{
		Title: fmt.Sprintf("%d %s could not be read", len(dirs), noun),
		Paths: dirs,
		Hint:  "check permissions or exclude them with --exclude-dir",
	}
}

// WarnOutputFailed reports a side output (report, history) that could not be
// written after the search itself succeeded.
func WarnOutputFailed(what string, err error) Warning {
	return Warning{
		Title:  fmt.Sprintf("%s not written", what),
		Detail: err.Error(),
	}
}
