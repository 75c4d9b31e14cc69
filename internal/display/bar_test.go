package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioBar(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int64
		wantPerc    int
		wantRender  string
	}{
		{"empty run", 0, 0, 0, "[          ] 0/0 (0%)"},
		{"none matched", 0, 5, 0, "[          ] 0/5 (0%)"},
		{"partial", 3, 10, 30, "[===       ] 3/10 (30%)"},
		{"all matched", 4, 4, 100, "[==========] 4/4 (100%)"},
		{"clamped", 12, 4, 100, "[==========] 12/4 (100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRatioBar(10, false)
			rb.Update(tt.part, tt.whole)
			assert.Equal(t, tt.wantPerc, rb.Percentage())
			assert.Equal(t, tt.wantRender, rb.Render())
		})
	}
}

func TestRatioBar_DefaultWidthAndColor(t *testing.T) {
	rb := NewRatioBar(0, true)
	rb.Update(1, 2)
	out := rb.Render()
	assert.Contains(t, out, "\x1b[36m[=====     ]")
	assert.Contains(t, out, "1/2 (50%)")
}
