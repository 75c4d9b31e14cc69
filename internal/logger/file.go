package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/minigrep/internal/models"
)

// FileLogger logs run diagnostics to a timestamped file in a log directory
// and maintains a latest.log symlink pointing to the most recent run.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger under logDir.
// It creates the log directory if it doesn't exist, opens a timestamped
// run log file (run-YYYYMMDD-HHMMSS.log), and creates/updates latest.log.
// runID is written to the log header so the file can be matched with
// report and history entries.
func NewFileLogger(logDir, logLevel, runID string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	started := time.Now()
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", started.Format("20060102-150405")))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")

	// Remove existing symlink if it exists
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}

	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	logger.writeRunLog("=== minigrep run log ===\n")
	if runID != "" {
		logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	}
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", started.Format(time.RFC3339)))

	return logger, nil
}

// Path returns the path of the run log file.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// LogRunStart records the run parameters at INFO level.
func (fl *FileLogger) LogRunStart(root, keyword string, workers int) {
	fl.logWithLevel("INFO", fmt.Sprintf("Searching %s for %q with %d workers", root, keyword, workers))
}

// LogRunComplete writes the final counters as a summary section.
func (fl *FileLogger) LogRunComplete(summary models.RunSummary) {
	if !allowed(fl.logLevel, "info") {
		return
	}

	s := summary.Stats
	var sb strings.Builder
	sb.WriteString("\n=== Summary ===\n")
	sb.WriteString(fmt.Sprintf("Scanned files: %d\n", s.Scanned))
	sb.WriteString(fmt.Sprintf("Matched files: %d\n", s.Matched))
	sb.WriteString(fmt.Sprintf("Matching lines: %d\n", s.Lines))
	sb.WriteString(fmt.Sprintf("Skipped files: %d\n", s.Skipped))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(summary.Elapsed)))

	fl.writeRunLog(sb.String())
}

// Close syncs and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return nil
	}
	if err := fl.runLog.Sync(); err != nil {
		fl.runLog.Close()
		fl.runLog = nil
		return fmt.Errorf("failed to sync run log: %w", err)
	}
	err := fl.runLog.Close()
	fl.runLog = nil
	return err
}

func (fl *FileLogger) logWithLevel(level, message string) {
	if !allowed(fl.logLevel, strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// writeRunLog appends to the run log and syncs so the file is readable
// while the run is still in progress.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return
	}
	fl.runLog.WriteString(message)
	fl.runLog.Sync()
}
