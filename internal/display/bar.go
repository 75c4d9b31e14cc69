package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// RatioBar renders a fixed-width ASCII bar for a part/whole ratio, such as
// matched files out of scanned files in the history listing.
type RatioBar struct {
	part  int64
	whole int64
	width int
	bar   *color.Color
	mu    sync.RWMutex
}

// NewRatioBar creates a bar of the given width. Widths below 1 fall back to 10.
func NewRatioBar(width int, enableColor bool) *RatioBar {
	if width < 1 {
		width = 10
	}
	c := color.New(color.FgCyan)
	if enableColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &RatioBar{width: width, bar: c}
}

// Update sets the ratio to part/whole.
func (rb *RatioBar) Update(part, whole int64) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.part = part
	rb.whole = whole
}

// Percentage returns the ratio as a percentage clamped to 0-100.
func (rb *RatioBar) Percentage() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.percentage()
}

func (rb *RatioBar) percentage() int {
	if rb.whole <= 0 || rb.part <= 0 {
		return 0
	}
	perc := int(rb.part * 100 / rb.whole)
	if perc > 100 {
		perc = 100
	}
	return perc
}

// Render returns the bar, e.g. "[===       ] 3/10 (30%)".
func (rb *RatioBar) Render() string {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	perc := rb.percentage()
	filled := perc * rb.width / 100

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", rb.width-filled) + "]"
	return fmt.Sprintf("%s %d/%d (%d%%)", rb.bar.Sprint(bar), rb.part, rb.whole, perc)
}
