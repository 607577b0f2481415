package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler mirrors every record the console handler sees into the log file
// handler. Each side applies its own level check.
type teeHandler struct {
	console slog.Handler
	file    slog.Handler
}

// newTeeHandler returns console unchanged when no file sink is configured.
func newTeeHandler(console, file slog.Handler) slog.Handler {
	switch {
	case file == nil && console == nil:
		return NoopHandler{}
	case file == nil:
		return console
	case console == nil:
		return file
	}
	return &teeHandler{console: console, file: file}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

// Handle writes to the file first so a failing console write never costs the
// persisted record.
func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var fileErr, consoleErr error
	if h.file.Enabled(ctx, record.Level) {
		fileErr = h.file.Handle(ctx, record.Clone())
	}
	if h.console.Enabled(ctx, record.Level) {
		consoleErr = h.console.Handle(ctx, record)
	}
	return errors.Join(consoleErr, fileErr)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}
