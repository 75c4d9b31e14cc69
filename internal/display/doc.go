// Package display renders everything minigrep writes for the user to read.
//
// # Match Blocks
//
// Printer owns the print lock for a run. Each worker hands it a complete
// models.MatchBlock; the block is rendered into a buffer first and written
// with a single locked write, so output from two files never interleaves
// inside a block:
//
//	[Thread 3] match: src/main.c
//	  size: 1024 bytes
//	  modified: 2024-03-09 14:05:06
//	    12: // TODO: remove
//
// Keyword occurrences are wrapped in the search.HighlightStart and
// search.HighlightReset sequences when highlighting is enabled.
//
// # Run Banner and Summary
//
//	printer.PrintBanner(root, workers)
//	...
//	printer.PrintSummary(summary)
//
// # File Listing
//
// ProgressIndicator prints the numbered file list for --dry-run:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(files), true)
//	progress.Start(root)
//	for _, file := range files {
//	    progress.Step(file)
//	}
//	progress.Complete()
//
// # Warning Messages
//
//	warning := display.Warning{
//	    Title:      "Report not written",
//	    Message:    err.Error(),
//	    Suggestion: "Check that the report directory is writable",
//	}
//	warning.Display(os.Stderr)
//
// All functions accept io.Writer interfaces for testability.
package display
