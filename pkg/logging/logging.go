// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup("site")                          // level from LOG_LEVEL, default info
//	logging.SetupWithLevel("sheet", slog.LevelDebug)
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs the default logger for service at the level named by LOG_LEVEL.
func Setup(service string) {
	SetupWithLevel(service, ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel installs the default logger for service at the given level.
func SetupWithLevel(service string, level slog.Level) {
	slog.SetDefault(New(os.Stderr, service, level))
}

// New returns a tint logger writing to w. Every record carries the service name.
func New(w io.Writer, service string, level slog.Level) *slog.Logger {
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    !isTerminal(w),
	}))
	if service != "" {
		logger = logger.With("service", service)
	}
	return logger
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
