package display

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/search"
)

// TimeLayout is the modification time format used in match blocks.
const TimeLayout = "2006-01-02 15:04:05"

const rule = "========================================"

// Printer serialises run output. It is safe for concurrent use.
type Printer struct {
	mu        sync.Mutex
	out       io.Writer
	keyword   string
	highlight bool
	header    *color.Color
	label     *color.Color
}

// NewPrinter creates a Printer writing to out. When highlight is true, keyword
// occurrences and summary headings carry ANSI colour sequences.
func NewPrinter(out io.Writer, keyword string, highlight bool) *Printer {
	header := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)
	if highlight {
		header.EnableColor()
		label.EnableColor()
	} else {
		header.DisableColor()
		label.DisableColor()
	}

	return &Printer{
		out:       out,
		keyword:   keyword,
		highlight: highlight,
		header:    header,
		label:     label,
	}
}

// PrintBlock writes one match block. Blocks without matching lines are ignored.
func (p *Printer) PrintBlock(block *models.MatchBlock) error {
	if !block.Matched() {
		return nil
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n[Thread %d] match: %s\n", block.WorkerID, block.Path)
	fmt.Fprintf(&buf, "  size: %d bytes\n", block.Size)
	fmt.Fprintf(&buf, "  modified: %s\n", block.ModTime.Format(TimeLayout))
	for _, line := range block.Lines {
		fmt.Fprintf(&buf, "  %4d: %s\n", line.Number, search.Highlight(line.Text, p.keyword, p.highlight))
	}

	return p.write(buf.Bytes())
}

// PrintBanner writes the run header shown before any match block.
func (p *Printer) PrintBanner(root string, workers int) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "=== minigrep ===\n")
	fmt.Fprintf(&buf, "%s %s\n", p.label.Sprint("root:"), root)
	fmt.Fprintf(&buf, "%s %q\n", p.label.Sprint("keyword:"), p.keyword)
	fmt.Fprintf(&buf, "%s %d\n\n", p.label.Sprint("workers:"), workers)
	fmt.Fprintf(&buf, "searching...\n")
	return p.write(buf.Bytes())
}

// PrintSummary writes the final statistics block.
func (p *Printer) PrintSummary(summary models.RunSummary) error {
	s := summary.Stats

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s\n", rule)
	fmt.Fprintf(&buf, "%s\n", p.header.Sprint("search complete"))
	fmt.Fprintf(&buf, "scanned %d files, matched %d files\n", s.Scanned, s.Matched)
	fmt.Fprintf(&buf, "matching lines: %d, skipped files: %d\n", s.Lines, s.Skipped)
	fmt.Fprintf(&buf, "elapsed: %.3fs\n", summary.ElapsedSeconds())
	fmt.Fprintf(&buf, "%s\n", rule)
	return p.write(buf.Bytes())
}

func (p *Printer) write(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return nil
	}
	_, err := p.out.Write(b)
	return err
}
