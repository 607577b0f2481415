package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNewTeeHandlerWithoutFileReturnsConsole(t *testing.T) {
	var buf bytes.Buffer
	console := slog.NewJSONHandler(&buf, nil)

	if h := newTeeHandler(console, nil); h != console {
		t.Fatalf("expected console handler unwrapped, got %T", h)
	}
	if _, ok := newTeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when both sinks are nil")
	}
}

func TestTeeHandlerWritesConsoleAndFile(t *testing.T) {
	var console, file bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	h := newTeeHandler(newPrettyHandler(&console, level, false), newJSONHandler(&file, level, false))
	logger := slog.New(h).With(slog.String(FieldComponent, "organizer"))

	logger.Info("file moved", slog.String("file", "a.png"))

	if !strings.Contains(console.String(), "[organizer]") || !strings.Contains(console.String(), "file=a.png") {
		t.Fatalf("unexpected console output: %q", console.String())
	}
	if !strings.Contains(file.String(), `"file":"a.png"`) || !strings.Contains(file.String(), `"component":"organizer"`) {
		t.Fatalf("unexpected file output: %q", file.String())
	}
}

func TestTeeHandlerRespectsEachLevel(t *testing.T) {
	var console, file bytes.Buffer
	h := newTeeHandler(
		slog.NewJSONHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected tee to be enabled when the file accepts the level")
	}

	slog.New(h).Debug("file classified")

	if file.Len() == 0 {
		t.Error("expected debug record in file")
	}
	if console.Len() != 0 {
		t.Error("warn console should not receive debug records")
	}
}

func TestTeeHandlerWithGroup(t *testing.T) {
	var console, file bytes.Buffer
	h := newTeeHandler(slog.NewJSONHandler(&console, nil), slog.NewJSONHandler(&file, nil))

	slog.New(h.WithGroup("summary")).Info("run completed", slog.Int("moved", 3))

	for name, buf := range map[string]*bytes.Buffer{"console": &console, "file": &file} {
		if !bytes.Contains(buf.Bytes(), []byte(`"summary":{"moved":3}`)) {
			t.Errorf("%s missing group: %q", name, buf.String())
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("console closed") }

func TestTeeHandlerKeepsFileRecordWhenConsoleFails(t *testing.T) {
	var file bytes.Buffer
	h := newTeeHandler(slog.NewJSONHandler(failingWriter{}, nil), slog.NewJSONHandler(&file, nil))

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "file relocation failed", 0)
	if err := h.Handle(context.Background(), record); err == nil {
		t.Fatal("expected console error to surface")
	}
	if !strings.Contains(file.String(), "file relocation failed") {
		t.Fatalf("file record missing: %q", file.String())
	}
}
