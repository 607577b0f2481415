package main

import (
	"bytes"
	"testing"

	"tidy/internal/organizer"
)

func TestRenderResultLine(t *testing.T) {
	tests := []struct {
		name   string
		result organizer.Result
		want   string
	}{
		{"dry run", organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeDryRun}, "  a.png → Images/"},
		{"moved", organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeMoved}, "Move: a.png → Images/"},
		{"skipped", organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeSkipped}, "Skip (exists): a.png → Images/"},
		{"overwritten", organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeOverwritten}, "Overwrite: a.png → Images/"},
		{"error", organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeError, Reason: "permission denied"}, "Error moving a.png: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderResultLine(tt.result, false); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderResultLineColorize(t *testing.T) {
	got := renderResultLine(organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeMoved}, true)
	if got != ansiGreen+"Move: a.png → Images/"+ansiReset {
		t.Fatalf("unexpected colorized line %q", got)
	}
}

func TestRenderSummaryLine(t *testing.T) {
	live := &organizer.Report{Root: "/d", Summary: organizer.Summary{Moved: 2, Skipped: 1, Failed: 1}}
	if got := renderSummaryLine(live); got != "Done. 2 moved, 1 skipped, 0 overwritten, 1 failed. Files organized under: /d" {
		t.Fatalf("unexpected live summary %q", got)
	}
	dry := &organizer.Report{Root: "/d", DryRun: true, Summary: organizer.Summary{Previewed: 1}}
	if got := renderSummaryLine(dry); got != "Dry run complete. 1 file would be organized under: /d" {
		t.Fatalf("unexpected dry summary %q", got)
	}
}

func TestReportPrinterWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	p := &reportPrinter{out: &buf, dryRun: true}
	p.result(organizer.Result{Name: "a.png", Category: "Images", Outcome: organizer.OutcomeDryRun})
	p.result(organizer.Result{Name: "b.txt", Category: "Documents", Outcome: organizer.OutcomeDryRun})

	want := "[DRY RUN] No changes will be made.\n\n  a.png → Images/\n  b.txt → Documents/\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
