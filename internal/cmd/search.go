package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/fileutil"
	"github.com/harrison/minigrep/internal/history"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/pipeline"
	"github.com/harrison/minigrep/internal/report"
	"github.com/harrison/minigrep/internal/search"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, args []string) error {
	root, keyword := args[0], args[1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if keyword == "" {
		return pipeline.ErrEmptyKeyword
	}
	if err := fileutil.ValidateRoot(root); err != nil {
		if errors.Is(err, fileutil.ErrNotDirectory) {
			return fmt.Errorf("invalid root path: %w", err)
		}
		return fmt.Errorf("invalid root path %s: %w", root, err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	runID := uuid.NewString()

	log, closeLog, err := newRunLogger(errOut, cfg, runID)
	if err != nil {
		return err
	}
	defer closeLog()

	highlight := useColor(cfg.Color, out)
	warnColor := useColor(cfg.Color, errOut)
	printer := display.NewPrinter(out, keyword, highlight)

	searcher := pipeline.NewSearcher(pipeline.Options{
		RunID:         runID,
		Workers:       cfg.Workers,
		QueueCapacity: cfg.QueueCapacity,
		Scan: fileutil.ScanOptions{
			Extensions:  cfg.Extensions,
			ExcludeDirs: cfg.ExcludeDirs,
			MaxDepth:    cfg.MaxDepth,
		},
	}, search.NewExecutor(), printer, log)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		return listFiles(searcher, root, out, errOut, highlight, warnColor)
	}

	if err := printer.PrintBanner(root, searcher.Workers()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	result, err := searcher.Run(root, keyword)
	if err != nil {
		return err
	}

	if err := printer.PrintSummary(result.Summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if len(result.UnreadableDirs) > 0 {
		display.WarnUnreadableDirs(result.UnreadableDirs).Display(errOut, warnColor)
	}

	// The search itself succeeded; output failures below only warn.
	if cfg.ReportPath != "" {
		if err := report.New(result.Summary, result.UnreadableDirs).Write(cfg.ReportPath); err != nil {
			log.LogError(fmt.Sprintf("report %s: %v", cfg.ReportPath, err))
			display.WarnOutputFailed("Report", err).Display(errOut, warnColor)
		} else {
			log.LogInfo(fmt.Sprintf("report written to %s", cfg.ReportPath))
		}
	}

	if cfg.HistoryDB != "" {
		if err := recordHistory(cmd, cfg.HistoryDB, result.Summary); err != nil {
			log.LogError(fmt.Sprintf("history %s: %v", cfg.HistoryDB, err))
			display.WarnOutputFailed("History", err).Display(errOut, warnColor)
		}
	}

	return nil
}

// loadConfig applies defaults, then the --config file if given, then every
// flag the user explicitly set, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	var overrides config.FlagOverrides

	if flags.Changed("workers") {
		v, _ := flags.GetInt("workers")
		overrides.Workers = &v
	}
	if flags.Changed("ext") {
		v, _ := flags.GetStringSlice("ext")
		overrides.Extensions = &v
	}
	if flags.Changed("exclude-dir") {
		v, _ := flags.GetStringSlice("exclude-dir")
		overrides.ExcludeDirs = &v
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		overrides.MaxDepth = &v
	}
	if flags.Changed("queue-capacity") {
		v, _ := flags.GetInt("queue-capacity")
		overrides.QueueCapacity = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		overrides.Color = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		overrides.LogDir = &v
	}
	if flags.Changed("report") {
		v, _ := flags.GetString("report")
		overrides.ReportPath = &v
	}
	if flags.Changed("history-db") {
		v, _ := flags.GetString("history-db")
		overrides.HistoryDB = &v
	}

	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newRunLogger builds the console logger and, with a log directory, a file
// logger alongside it. The returned func closes any opened log file.
func newRunLogger(errOut io.Writer, cfg *config.Config, runID string) (pipeline.Logger, func(), error) {
	console := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	console.LogDebug(fmt.Sprintf("logging to %s", fileLog.Path()))

	return &multiLogger{loggers: []pipeline.Logger{console, fileLog}}, func() { fileLog.Close() }, nil
}

// useColor resolves the --color mode. auto enables colour only when out is a terminal.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

func listFiles(searcher *pipeline.Searcher, root string, out, errOut io.Writer, color, warnColor bool) error {
	result, err := searcher.ListFiles(root)
	if err != nil {
		return err
	}

	progress := display.NewProgressIndicator(out, len(result.Files), color)
	progress.Start(root)
	for _, path := range result.Files {
		progress.Step(path)
	}
	progress.Complete()

	if len(result.Errors) > 0 {
		dirs := make([]string, 0, len(result.Errors))
		for _, dirErr := range result.Errors {
			dirs = append(dirs, dirErr.Error())
		}
		display.WarnUnreadableDirs(dirs).Display(errOut, warnColor)
	}

	return nil
}

func recordHistory(cmd *cobra.Command, dbPath string, summary models.RunSummary) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(cmd.Context(), summary)
}

// multiLogger fans every log call out to several loggers.
type multiLogger struct {
	loggers []pipeline.Logger
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogTrace forwards to all loggers
func (ml *multiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogError forwards to all loggers
func (ml *multiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogRunStart forwards to all loggers
func (ml *multiLogger) LogRunStart(root, keyword string, workers int) {
	for _, l := range ml.loggers {
		l.LogRunStart(root, keyword, workers)
	}
}

// LogRunComplete forwards to all loggers
func (ml *multiLogger) LogRunComplete(summary models.RunSummary) {
	for _, l := range ml.loggers {
		l.LogRunComplete(summary)
	}
}
