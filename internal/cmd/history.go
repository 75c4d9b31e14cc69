package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/minigrep/internal/display"
	"github.com/harrison/minigrep/internal/history"
	"github.com/harrison/minigrep/internal/models"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history subcommand
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or export recorded search runs",
		Long: `List runs recorded with --history-db, newest first, or export them
as a Markdown table (.md) or rendered HTML page (.html).`,
		Example: `  minigrep history --history-db runs.db
  minigrep history --history-db runs.db --limit 5 --export runs.html`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().String("history-db", "", "SQLite history database to read (required)")
	cmd.Flags().Int("limit", 20, "Maximum number of runs to show (0 = all)")
	cmd.Flags().String("export", "", "Write the runs to a .md or .html file instead of listing them")
	cmd.Flags().String("color", "auto", "Colour the match ratio bar: always, never or auto")
	cmd.MarkFlagRequired("history-db")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	limit, _ := cmd.Flags().GetInt("limit")
	exportPath, _ := cmd.Flags().GetString("export")
	colorMode, _ := cmd.Flags().GetString("color")

	if limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", limit)
	}

	// Reading must not create an empty database as a side effect
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if exportPath != "" {
		data, err := history.Export(exportPath, runs)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(out, "Exported %d run(s) to %s\n", len(runs), exportPath)
		return nil
	}

	printRuns(out, runs, useColor(colorMode, out))
	return nil
}

// printRuns lists runs with a matched/scanned ratio bar per run.
func printRuns(out io.Writer, runs []models.RunSummary, color bool) {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return
	}

	bar := display.NewRatioBar(20, color)
	for _, run := range runs {
		bar.Update(run.Stats.Matched, run.Stats.Scanned)
		fmt.Fprintf(out, "%s  %s  %q in %s\n",
			run.StartedAt.Local().Format(display.TimeLayout), run.ID, run.Keyword, run.Root)
		fmt.Fprintf(out, "    %s  lines: %d  skipped: %d  workers: %d  elapsed: %.3fs\n",
			bar.Render(), run.Stats.Lines, run.Stats.Skipped, run.Workers, run.ElapsedSeconds())
	}
}
