package pipeline

import (
	"fmt"
	"sync"

	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/queue"
)

// FileSearcher scans one file for a keyword.
type FileSearcher interface {
	Search(path, keyword string) (*models.MatchBlock, error)
}

// BlockPrinter emits a match block as one uninterrupted unit.
type BlockPrinter interface {
	PrintBlock(block *models.MatchBlock) error
}

// Logger captures the diagnostics emitted during a run.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogRunStart(root, keyword string, workers int)
	LogRunComplete(summary models.RunSummary)
}

// WorkerPool runs a fixed number of workers draining a task queue.
// Workers exit once the queue is empty and exhausted.
type WorkerPool struct {
	size     int
	queue    *queue.TaskQueue
	keyword  string
	searcher FileSearcher
	printer  BlockPrinter
	stats    *SharedStats
	logger   Logger

	wg      sync.WaitGroup
	started bool
}

// NewWorkerPool constructs a pool of size workers. The logger may be nil.
func NewWorkerPool(size int, q *queue.TaskQueue, keyword string, searcher FileSearcher, printer BlockPrinter, stats *SharedStats, logger Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{
		size:     size,
		queue:    q,
		keyword:  keyword,
		searcher: searcher,
		printer:  printer,
		stats:    stats,
		logger:   logger,
	}
}

// Start launches the workers. Worker ids are 1-based. Calling Start twice panics.
func (p *WorkerPool) Start() {
	if p.started {
		panic("pipeline: worker pool started twice")
	}
	p.started = true

	for id := 1; id <= p.size; id++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.work(id)
		}(id)
	}
}

// Wait blocks until every worker has exited.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) work(id int) {
	p.debug(fmt.Sprintf("worker %d started", id))

	processed := 0
	for {
		task, ok := p.queue.Pop()
		if !ok {
			break
		}
		processed++
		p.process(id, task)
	}

	p.debug(fmt.Sprintf("worker %d exiting after %d files", id, processed))
}

func (p *WorkerPool) process(id int, task models.Task) {
	block, err := p.searcher.Search(task.Path(), p.keyword)
	if block == nil {
		// Open or stat failed: the file is skipped without affecting the run.
		p.stats.AddSkipped()
		if err != nil {
			p.debug(fmt.Sprintf("worker %d skipped %s: %v", id, task, err))
		}
		return
	}
	if err != nil {
		p.debug(fmt.Sprintf("worker %d: partial read of %s: %v", id, task, err))
	}

	if !block.Matched() {
		return
	}

	block.WorkerID = id
	p.stats.AddMatched(len(block.Lines))

	if p.printer != nil {
		if err := p.printer.PrintBlock(block); err != nil {
			p.debug(fmt.Sprintf("worker %d: failed to print %s: %v", id, task, err))
		}
	}
}

func (p *WorkerPool) debug(message string) {
	if p.logger != nil {
		p.logger.LogDebug(message)
	}
}
