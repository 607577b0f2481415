package main

import (
	"encoding/json"
	"fmt"
	"io"

	"tidy/internal/organizer"
)

const dryRunHeader = "[DRY RUN] No changes will be made."

// reportPrinter streams one line per decided file. The dry-run header is
// written lazily so an empty directory only prints the empty notice.
type reportPrinter struct {
	out           io.Writer
	colorize      bool
	dryRun        bool
	headerWritten bool
	err           error
}

func (p *reportPrinter) result(r organizer.Result) {
	if p.dryRun && !p.headerWritten {
		p.println(paint(dryRunHeader, ansiBlue, p.colorize))
		p.println("")
		p.headerWritten = true
	}
	p.println(renderResultLine(r, p.colorize))
}

func (p *reportPrinter) summary(report *organizer.Report) {
	if report.Empty() {
		p.println(fmt.Sprintf("No files to organize in: %s", report.Root))
		return
	}
	p.println("")
	p.println(renderSummaryLine(report))
}

func (p *reportPrinter) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.out, line)
}

func renderResultLine(r organizer.Result, colorize bool) string {
	switch r.Outcome {
	case organizer.OutcomeDryRun:
		return fmt.Sprintf("  %s → %s/", r.Name, r.Category)
	case organizer.OutcomeMoved:
		return paint(fmt.Sprintf("Move: %s → %s/", r.Name, r.Category), ansiGreen, colorize)
	case organizer.OutcomeSkipped:
		return paint(fmt.Sprintf("Skip (exists): %s → %s/", r.Name, r.Category), ansiYellow, colorize)
	case organizer.OutcomeOverwritten:
		return paint(fmt.Sprintf("Overwrite: %s → %s/", r.Name, r.Category), ansiBlue, colorize)
	default:
		return paint(fmt.Sprintf("Error moving %s: %s", r.Name, r.Reason), ansiRed, colorize)
	}
}

func renderSummaryLine(report *organizer.Report) string {
	s := report.Summary
	if report.DryRun {
		return fmt.Sprintf("Dry run complete. %d %s would be organized under: %s", s.Previewed, pluralize(s.Previewed, "file", "files"), report.Root)
	}
	return fmt.Sprintf(
		"Done. %d moved, %d skipped, %d overwritten, %d failed. Files organized under: %s",
		s.Moved, s.Skipped, s.Overwritten, s.Failed, report.Root,
	)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// writeJSON emits v as indented JSON. Used by --json on the organize run and
// the categories listing.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
