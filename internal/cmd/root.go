package cmd

import (
	"fmt"

	"github.com/harrison/minigrep/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep.
// The root command is the search itself; history is a subcommand.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep [flags] <root-path> <keyword>",
		Short: "Multithreaded recursive keyword search",
		Long: `minigrep walks a directory tree and searches every file with a
recognised extension for lines containing a literal keyword.

Files are discovered by a single directory walker and searched by a fixed
pool of workers. Each matching file is printed as one block with the keyword
highlighted, followed by run statistics.`,
		Example: `  minigrep ./src TODO
  minigrep -w 16 --ext .go,.md --exclude-dir vendor . "context.Context"
  minigrep --dry-run ./docs anything`,
		Version: Version,
		Args:    searchArgs,
		RunE:    runSearch,
		// Errors are printed once by main; usage only for argument errors
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addSearchFlags(cmd)

	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

// searchArgs requires exactly a root path and a keyword.
func searchArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <root-path> <keyword>, got %d argument(s)\nUsage: %s", len(args), cmd.UseLine())
	}
	return nil
}

func addSearchFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()

	cmd.Flags().String("config", "", "Path to a YAML config file (no file is read unless given)")
	cmd.Flags().IntP("workers", "w", defaults.Workers, "Number of search workers")
	cmd.Flags().StringSlice("ext", defaults.Extensions, "Comma-separated file extensions to search")
	cmd.Flags().StringSlice("exclude-dir", nil, "Directory names to skip (repeatable)")
	cmd.Flags().Int("max-depth", defaults.MaxDepth, "Maximum directory depth (0 = unlimited, 1 = root only)")
	cmd.Flags().Int("queue-capacity", defaults.QueueCapacity, "Initial task queue capacity")
	cmd.Flags().String("color", defaults.Color, "Highlight matches: always, never or auto")
	cmd.Flags().String("log-level", defaults.LogLevel, "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for per-run log files")
	cmd.Flags().String("report", "", "Write a run report (.json, .yaml or .yml)")
	cmd.Flags().String("history-db", "", "Append the run to this SQLite history database")
	cmd.Flags().Bool("dry-run", false, "List the files that would be searched without searching them")
}
