// Package logging holds the process-wide logger.
//
// Structured calls go through Logger(). NewLog keeps the short
// "print a line" form used around window and context setup.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the process logger. A nil logger silences output.
func SetLogger(l *slog.Logger) {

	if l == nil {
		l = slog.New(nopHandler{})
	}

	loggerPtr.Store(l)

}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// NewStderrLogger builds a text logger writing to stderr at the given level.
func NewStderrLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParseLevel accepts debug, info, warn and error. Anything else is an error.
func ParseLevel(name string) (slog.Level, error) {

	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil

}

// NewLog writes its arguments as one info line, separated by spaces.
func NewLog(args ...any) {

	msg := strings.TrimSpace(fmt.Sprintln(args...))

	Logger().Info(msg)

}
