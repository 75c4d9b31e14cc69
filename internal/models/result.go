package models

import "time"

// MatchLine is a single source line containing the keyword.
type MatchLine struct {
	Number int    // 1-based line number
	Text   string // Line content without the trailing newline
}

// MatchBlock is everything reported for one searched file.
// A block with no Lines means the file was searched and nothing matched.
type MatchBlock struct {
	Path     string      // Path as pushed by the producer
	Size     int64       // File size in bytes
	ModTime  time.Time   // Last modification time
	WorkerID int         // Ordinal of the worker that searched the file
	Lines    []MatchLine // Matching lines in file order
}

// Matched reports whether at least one line contained the keyword.
func (b *MatchBlock) Matched() bool {
	return b != nil && len(b.Lines) > 0
}

// Stats is a point-in-time copy of the shared run counters.
type Stats struct {
	Scanned int64 `json:"scanned" yaml:"scanned"` // Files that passed the extension filter
	Matched int64 `json:"matched" yaml:"matched"` // Files with at least one matching line
	Lines   int64 `json:"lines" yaml:"lines"`     // Matching lines across all files
	Skipped int64 `json:"skipped" yaml:"skipped"` // Files that could not be opened or stat-ed
}

// RunSummary describes a completed search run.
type RunSummary struct {
	ID        string        `json:"id" yaml:"id"`
	Root      string        `json:"root" yaml:"root"`
	Keyword   string        `json:"keyword" yaml:"keyword"`
	Workers   int           `json:"workers" yaml:"workers"`
	Stats     Stats         `json:"stats" yaml:"stats"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// ElapsedSeconds returns the run duration in seconds.
func (r RunSummary) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}
