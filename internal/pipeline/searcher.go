// Package pipeline wires the directory producer, the task queue and the
// worker pool into a single search run.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/minigrep/internal/fileutil"
	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/queue"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 8

// ErrEmptyKeyword is returned when a run is started without a keyword.
var ErrEmptyKeyword = errors.New("keyword must not be empty")

// Options configures a Searcher.
type Options struct {
	// RunID names the run in logs, reports and history. A random UUID is
	// generated per run when empty.
	RunID         string
	Workers       int
	QueueCapacity int
	Scan          fileutil.ScanOptions
}

// RunResult is the outcome of a completed run.
type RunResult struct {
	Summary        models.RunSummary
	UnreadableDirs []string
}

// Searcher runs concurrent keyword searches over directory trees.
type Searcher struct {
	opts     Options
	searcher FileSearcher
	printer  BlockPrinter
	logger   Logger
	now      func() time.Time
	newID    func() string
}

// NewSearcher constructs a Searcher. printer and logger may be nil.
func NewSearcher(opts Options, searcher FileSearcher, printer BlockPrinter, logger Logger) *Searcher {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if opts.QueueCapacity < 1 {
		opts.QueueCapacity = queue.DefaultCapacity
	}
	return &Searcher{
		opts:     opts,
		searcher: searcher,
		printer:  printer,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Workers returns the effective worker count.
func (s *Searcher) Workers() int {
	return s.opts.Workers
}

// Run searches every eligible file under root for keyword.
//
// The root is validated before any worker starts. Workers are started first,
// then the tree is walked on the calling goroutine; Run returns after every
// worker has exited, so the returned stats are final.
func (s *Searcher) Run(root, keyword string) (*RunResult, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	if err := fileutil.ValidateRoot(root); err != nil {
		return nil, err
	}

	started := s.now()
	s.logRunStart(root, keyword)

	q := queue.New(s.opts.QueueCapacity)
	stats := NewSharedStats()

	pool := NewWorkerPool(s.opts.Workers, q, keyword, s.searcher, s.printer, stats, s.logger)
	pool.Start()

	producer := NewProducer(q, s.opts.Scan, stats, s.logger)
	unreadable, walkErr := producer.Run(root)

	pool.Wait()

	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}

	id := s.opts.RunID
	if id == "" {
		id = s.newID()
	}

	result := &RunResult{
		Summary: models.RunSummary{
			ID:        id,
			Root:      root,
			Keyword:   keyword,
			Workers:   s.opts.Workers,
			Stats:     stats.Snapshot(),
			StartedAt: started,
			Elapsed:   s.now().Sub(started),
		},
		UnreadableDirs: unreadable,
	}

	if s.logger != nil {
		s.logger.LogRunComplete(result.Summary)
	}

	return result, nil
}

// ListFiles returns every file a run over root would search, in walk order,
// along with the directories that could not be read. Nothing is opened.
func (s *Searcher) ListFiles(root string) (*fileutil.ScanResult, error) {
	result, err := fileutil.ScanDirectory(root, s.opts.Scan)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		for _, dirErr := range result.Errors {
			s.logger.LogWarn(dirErr.Error())
		}
	}
	return result, nil
}

func (s *Searcher) logRunStart(root, keyword string) {
	if s.logger == nil {
		return
	}
	s.logger.LogRunStart(root, keyword, s.opts.Workers)
	if exts := s.opts.Scan.Extensions; len(exts) > 0 {
		s.logger.LogDebug("extensions: " + strings.Join(exts, " "))
	}
}
