package command

import (
	"log/slog"
	"os"

	"github.com/openshelf/circulation-ledger-go/circulation"
)

// slogLogger bridges log/slog to the dependency-free circulation.Logger
// interface.
type slogLogger struct {
	inner *slog.Logger
}

func newLogger() circulation.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slogLogger{inner: slog.New(handler)}
}

func (l slogLogger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, args...)
}

func (l slogLogger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l slogLogger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, args...)
}

func (l slogLogger) Error(msg string, args ...any) {
	l.inner.Error(msg, args...)
}
