package pipeline

import (
	"fmt"

	"github.com/harrison/minigrep/internal/fileutil"
	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/queue"
)

// Producer walks a directory tree and feeds eligible files to the queue.
type Producer struct {
	queue  *queue.TaskQueue
	opts   fileutil.ScanOptions
	stats  *SharedStats
	logger Logger
}

// NewProducer creates a Producer. The logger may be nil.
func NewProducer(q *queue.TaskQueue, opts fileutil.ScanOptions, stats *SharedStats, logger Logger) *Producer {
	return &Producer{
		queue:  q,
		opts:   opts,
		stats:  stats,
		logger: logger,
	}
}

// Run walks root on the calling goroutine, counting and pushing each eligible
// file. It returns the directories that could not be read. The queue is marked
// exhausted exactly once when Run returns, whether or not the walk succeeded.
func (p *Producer) Run(root string) ([]string, error) {
	defer p.queue.MarkExhausted()

	var unreadable []string
	err := fileutil.Walk(root, p.opts,
		func(path string) {
			p.stats.AddScanned()
			p.queue.Push(models.Task(path))
			if p.logger != nil {
				p.logger.LogTrace("queued " + path)
			}
		},
		func(path string, err error) {
			unreadable = append(unreadable, path)
			if p.logger != nil {
				p.logger.LogWarn(fmt.Sprintf("cannot open directory %s: %v", path, err))
			}
		},
	)
	if err != nil {
		return nil, err
	}

	return unreadable, nil
}
