package display

import (
	"fmt"
	"io"
)

// ProgressIndicator prints a numbered list of files, one step at a time.
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
	color      bool
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int, color bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
		current:    0,
		color:      color,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(root string) {
	fmt.Fprintf(p.writer, "Eligible files under %s:\n", root)
}

// Step displays progress for current item: [N/Total] path (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	if p.color {
		fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalFiles, path)
		return
	}
	fmt.Fprintf(p.writer, "  [%d/%d] %s\n", p.current, p.totalFiles, path)
}

// Complete displays the closing line with a green checkmark
func (p *ProgressIndicator) Complete() {
	if p.color {
		fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m %d files would be searched\n", p.totalFiles)
		return
	}
	fmt.Fprintf(p.writer, "✓ %d files would be searched\n", p.totalFiles)
}
