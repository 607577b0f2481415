package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandlerFormatsComponentAndRunID(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	logger = NewComponentLogger(logger, "organizer").With(String(FieldRunID, "0123456789abcdef"))
	logger.Info("moved file", String("file", "a b.png"), Int("count", 2))

	line := buf.String()
	for _, want := range []string{"INFO [organizer] run 01234567 – moved file", `file="a b.png"`, "count=2"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "component=") || strings.Contains(line, "run_id=") {
		t.Fatalf("component and run id belong in the header: %q", line)
	}
}

func TestPrettyHandlerFlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newPrettyHandler(&buf, new(slog.LevelVar), false))

	logger.Info("summary", slog.Group("counts", slog.Int("moved", 3), slog.Int("skipped", 1)))

	line := buf.String()
	if !strings.Contains(line, "counts.moved=3") || !strings.Contains(line, "counts.skipped=1") {
		t.Fatalf("expected flattened group keys, got %q", line)
	}
}

func TestNoopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("no-op logger should never be enabled")
	}
}
