// Package logger provides the diagnostic loggers used during a search run.
//
// Diagnostics (unreadable directories, skipped files, worker lifecycle) are
// kept apart from search results: results go to stdout through the display
// package, log lines go to stderr and optionally to a run log file.
// Implementations are thread-safe.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/minigrep/internal/models"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger logs diagnostics to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w is a file attached to a terminal.
// Only the file descriptor is inspected; no environment variable is read.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogRunStart records the parameters of a run at DEBUG level.
// The banner on stdout already shows them, so they stay quiet by default.
func (cl *ConsoleLogger) LogRunStart(root, keyword string, workers int) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("run started: root=%s keyword=%q workers=%d", root, keyword, workers))
}

// LogRunComplete records the final counters at DEBUG level.
func (cl *ConsoleLogger) LogRunComplete(summary models.RunSummary) {
	s := summary.Stats
	cl.logWithLevel("DEBUG", fmt.Sprintf("run complete: scanned=%d matched=%d lines=%d skipped=%d elapsed=%s",
		s.Scanned, s.Matched, s.Lines, s.Skipped, formatDuration(summary.Elapsed)))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !allowed(cl.logLevel, strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string

	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// levelColors are forced on: the decision was already made per writer, so
// the package-wide color.NoColor default must not override it.
var levelColors = map[string]*color.Color{
	"TRACE": forced(color.FgHiBlack),
	"DEBUG": forced(color.FgCyan),
	"INFO":  forced(color.FgBlue),
	"WARN":  forced(color.FgYellow),
	"ERROR": forced(color.FgRed),
}

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// formatWithColor formats a log message with a coloured level.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	coloredLevel := level
	if c, ok := levelColors[strings.ToUpper(level)]; ok {
		coloredLevel = c.Sprint(level)
	}
	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string with
// millisecond precision below one minute.
// Examples: "0.042s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}
