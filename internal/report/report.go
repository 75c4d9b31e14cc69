// Package report writes a machine-readable summary of a search run.
//
// The format follows the file extension: .json for JSON, .yaml or .yml for
// YAML. Writes hold an advisory lock next to the target and replace the file
// atomically, so concurrent runs pointed at the same report never leave a
// half-written file behind.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/harrison/minigrep/internal/models"
	"gopkg.in/yaml.v3"
)

// Format identifies a report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report is the document written to disk.
type Report struct {
	ID             string       `json:"id" yaml:"id"`
	Root           string       `json:"root" yaml:"root"`
	Keyword        string       `json:"keyword" yaml:"keyword"`
	Workers        int          `json:"workers" yaml:"workers"`
	StartedAt      time.Time    `json:"started_at" yaml:"started_at"`
	ElapsedSeconds float64      `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Stats          models.Stats `json:"stats" yaml:"stats"`
	UnreadableDirs []string     `json:"unreadable_dirs,omitempty" yaml:"unreadable_dirs,omitempty"`
}

// New builds a Report from a run summary.
func New(summary models.RunSummary, unreadableDirs []string) *Report {
	return &Report{
		ID:             summary.ID,
		Root:           summary.Root,
		Keyword:        summary.Keyword,
		Workers:        summary.Workers,
		StartedAt:      summary.StartedAt,
		ElapsedSeconds: summary.ElapsedSeconds(),
		Stats:          summary.Stats,
		UnreadableDirs: unreadableDirs,
	}
}

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Marshal encodes the report in the given format.
func (r *Report) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Write encodes the report according to path's extension and replaces path
// with it while holding path+".lock".
func (r *Report) Write(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := r.Marshal(format)
	if err != nil {
		return err
	}
	return lockAndWrite(path, data)
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var r Report
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &r)
	case FormatYAML:
		err = yaml.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &r, nil
}

// lockAndWrite serialises writers on a sibling lock file, then writes atomically.
func lockAndWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// atomicWrite writes to a temp file in the target directory and renames it
// over path. On failure the previous file, if any, is left untouched.
func atomicWrite(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			tmp.Close()
		}
		os.Remove(tmpPath)
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}
