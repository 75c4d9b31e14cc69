package models

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPath(t *testing.T) {
	tests := []struct {
		task Task
		want string
	}{
		{"dir/a.txt", "dir/a.txt"},
		{"dir//sub/./b.c", "dir/sub/b.c"},
		{"dir/sub/../c.h", "dir/c.h"},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Task(filepath.FromSlash(string(tt.task))).Path())
		})
	}
}

func TestMatchBlockMatched(t *testing.T) {
	var nilBlock *MatchBlock
	assert.False(t, nilBlock.Matched())
	assert.False(t, (&MatchBlock{Path: "a.txt"}).Matched())
	assert.True(t, (&MatchBlock{Lines: []MatchLine{{Number: 1, Text: "TODO"}}}).Matched())
}

func TestRunSummaryElapsedSeconds(t *testing.T) {
	r := RunSummary{Elapsed: 1500 * time.Millisecond}
	assert.InDelta(t, 1.5, r.ElapsedSeconds(), 1e-9)
}
