package pipeline

import (
	"sync"

	"github.com/harrison/minigrep/internal/models"
)

// SharedStats holds the run counters updated by the producer and the workers.
// Every counter only ever grows. All fields are guarded by one mutex so a
// snapshot is always internally consistent.
type SharedStats struct {
	mu    sync.Mutex
	stats models.Stats
}

// NewSharedStats returns zeroed counters.
func NewSharedStats() *SharedStats {
	return &SharedStats{}
}

// AddScanned records one file pushed for searching.
func (s *SharedStats) AddScanned() {
	s.mu.Lock()
	s.stats.Scanned++
	s.mu.Unlock()
}

// AddMatched records one matching file with the given number of matching lines.
func (s *SharedStats) AddMatched(lines int) {
	s.mu.Lock()
	s.stats.Matched++
	s.stats.Lines += int64(lines)
	s.mu.Unlock()
}

// AddSkipped records one file that could not be opened or stat-ed.
func (s *SharedStats) AddSkipped() {
	s.mu.Lock()
	s.stats.Skipped++
	s.mu.Unlock()
}

// Snapshot returns a copy of the counters.
func (s *SharedStats) Snapshot() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
