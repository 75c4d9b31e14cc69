package history

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/minigrep/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// timeLayout is used for run start times in exports.
const timeLayout = "2006-01-02 15:04:05"

// Markdown renders runs as a Markdown document with one table row per run.
func Markdown(runs []models.RunSummary) []byte {
	var buf bytes.Buffer
	buf.WriteString("# minigrep run history\n\n")

	if len(runs) == 0 {
		buf.WriteString("No runs recorded.\n")
		return buf.Bytes()
	}

	buf.WriteString("| Started | Root | Keyword | Workers | Scanned | Matched | Lines | Skipped | Elapsed |\n")
	buf.WriteString("|---|---|---|---:|---:|---:|---:|---:|---:|\n")
	for _, run := range runs {
		fmt.Fprintf(&buf, "| %s | %s | %s | %d | %d | %d | %d | %d | %.3fs |\n",
			run.StartedAt.Local().Format(timeLayout),
			escapeCell(run.Root),
			escapeCell(run.Keyword),
			run.Workers,
			run.Stats.Scanned,
			run.Stats.Matched,
			run.Stats.Lines,
			run.Stats.Skipped,
			run.ElapsedSeconds(),
		)
	}
	return buf.Bytes()
}

// HTML renders the Markdown export to a standalone HTML page.
func HTML(runs []models.RunSummary) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert(Markdown(runs), &body); err != nil {
		return nil, fmt.Errorf("render history: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>minigrep run history</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// Export renders runs in the format implied by the output file extension:
// .md/.markdown for Markdown, .html/.htm for HTML.
func Export(path string, runs []models.RunSummary) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return Markdown(runs), nil
	case ".html", ".htm":
		return HTML(runs)
	default:
		return nil, fmt.Errorf("unsupported export format %q (use .md or .html)", filepath.Ext(path))
	}
}

// escapeCell renders a value as a code span that stays inside its table cell.
// Pipes must still be escaped inside code spans in GFM tables.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return "`" + strings.ReplaceAll(s, "`", "'") + "`"
}
