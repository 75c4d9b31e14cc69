// Package config holds minigrep run settings: built-in defaults, an optional
// YAML file named with --config, and CLI flag overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrison/minigrep/internal/logger"
	"gopkg.in/yaml.v3"
)

// Colour modes accepted by Color.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// DefaultExtensions is the extension allow-list used when none is configured.
var DefaultExtensions = []string{".c", ".txt", ".h", ".py", ".md"}

// Config represents minigrep configuration options
type Config struct {
	// Workers is the number of search workers (>= 1)
	Workers int `yaml:"workers"`

	// Extensions is the allow-list of file extensions to search
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names that are never descended
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// MaxDepth limits directory recursion (0 = unlimited, 1 = root only)
	MaxDepth int `yaml:"max_depth"`

	// QueueCapacity is the initial task queue capacity
	QueueCapacity int `yaml:"queue_capacity"`

	// Color selects highlight output: always, never or auto
	Color string `yaml:"color"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir, when set, receives a per-run log file
	LogDir string `yaml:"log_dir"`

	// ReportPath, when set, receives a JSON or YAML run report
	ReportPath string `yaml:"report"`

	// HistoryDB, when set, is the SQLite database runs are appended to
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Workers:       8,
		Extensions:    append([]string(nil), DefaultExtensions...),
		ExcludeDirs:   nil,
		MaxDepth:      0, // Unlimited
		QueueCapacity: 1024,
		Color:         ColorAlways,
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from the specified file path on top of the
// defaults. Keys absent from the file keep their default value.
// Unlike a discovered config file, an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell an absent key apart from an explicit zero value
	type yamlConfig struct {
		Workers       *int      `yaml:"workers"`
		Extensions    *[]string `yaml:"extensions"`
		ExcludeDirs   *[]string `yaml:"exclude_dirs"`
		MaxDepth      *int      `yaml:"max_depth"`
		QueueCapacity *int      `yaml:"queue_capacity"`
		Color         *string   `yaml:"color"`
		LogLevel      *string   `yaml:"log_level"`
		LogDir        *string   `yaml:"log_dir"`
		ReportPath    *string   `yaml:"report"`
		HistoryDB     *string   `yaml:"history_db"`
	}

	var yamlCfg yamlConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF and means "all defaults"
	if err := decoder.Decode(&yamlCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.MergeWithFlags(FlagOverrides{
		Workers:       yamlCfg.Workers,
		Extensions:    yamlCfg.Extensions,
		ExcludeDirs:   yamlCfg.ExcludeDirs,
		MaxDepth:      yamlCfg.MaxDepth,
		QueueCapacity: yamlCfg.QueueCapacity,
		Color:         yamlCfg.Color,
		LogLevel:      yamlCfg.LogLevel,
		LogDir:        yamlCfg.LogDir,
		ReportPath:    yamlCfg.ReportPath,
		HistoryDB:     yamlCfg.HistoryDB,
	})

	return cfg, nil
}

// FlagOverrides carries CLI values that were explicitly set.
// A nil field leaves the configured value untouched.
type FlagOverrides struct {
	Workers       *int
	Extensions    *[]string
	ExcludeDirs   *[]string
	MaxDepth      *int
	QueueCapacity *int
	Color         *string
	LogLevel      *string
	LogDir        *string
	ReportPath    *string
	HistoryDB     *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.Extensions != nil {
		c.Extensions = append([]string(nil), (*f.Extensions)...)
	}
	if f.ExcludeDirs != nil {
		c.ExcludeDirs = append([]string(nil), (*f.ExcludeDirs)...)
	}
	if f.MaxDepth != nil {
		c.MaxDepth = *f.MaxDepth
	}
	if f.QueueCapacity != nil {
		c.QueueCapacity = *f.QueueCapacity
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.LogDir != nil {
		c.LogDir = *f.LogDir
	}
	if f.ReportPath != nil {
		c.ReportPath = *f.ReportPath
	}
	if f.HistoryDB != nil {
		c.HistoryDB = *f.HistoryDB
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}

	if c.QueueCapacity < 1 {
		return fmt.Errorf("queue_capacity must be >= 1, got %d", c.QueueCapacity)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions cannot be empty")
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" || strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	switch c.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		return fmt.Errorf("invalid color %q, must be one of: always, never, auto", c.Color)
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	return nil
}
