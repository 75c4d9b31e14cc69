// Package search scans a single file for lines containing a literal keyword.
package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrison/minigrep/internal/models"
)

// Executor searches files line by line. It holds no state between calls and is
// safe for concurrent use by any number of workers.
type Executor struct{}

// NewExecutor returns a ready Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Search reads path sequentially and returns a block listing every line that
// contains keyword. A file without matches yields a block with no lines.
//
// If the file cannot be opened or stat-ed, Search returns a nil block and an
// error. A read error part-way through returns the lines found so far together
// with the error.
func (e *Executor) Search(path, keyword string) (*models.MatchBlock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	block := &models.MatchBlock{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}

	reader := bufio.NewReader(f)
	lineNum := 0
	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			lineNum++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if strings.Contains(line, keyword) {
				block.Lines = append(block.Lines, models.MatchLine{Number: lineNum, Text: line})
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return block, nil
			}
			return block, fmt.Errorf("read %s: %w", path, readErr)
		}
	}
}
