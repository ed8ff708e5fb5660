package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the structured logging surface the services depend on.
// Keeping it an interface lets tests swap in a silent implementation.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	With(args ...any) Logger
}

type slogAdapter struct {
	l *slog.Logger
}

// New builds a JSON logger writing to stdout at the given level.
// Unknown level strings fall back to info rather than failing startup.
func New(level string) Logger {
	return newWithWriter(os.Stdout, level)
}

func newWithWriter(w io.Writer, level string) Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return &slogAdapter{l: slog.New(h)}
}

// Default returns an info-level logger for callers that have no config
// in hand, mostly tests.
func Default() Logger {
	return New("info")
}

func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }

// With returns a child logger carrying the given key/value pairs on
// every record.
func (a *slogAdapter) With(args ...any) Logger {
	return &slogAdapter{l: a.l.With(args...)}
}
