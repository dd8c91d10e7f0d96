// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(slog.LevelWarn)              // stderr, given level
//	logging.SetupWriter(w, slog.LevelDebug)    // explicit destination
//
// Logs never go to stdout, which belongs to the console prompts.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging to stderr at the given level.
func Setup(level slog.Level) {
	SetupWriter(os.Stderr, level)
}

// SetupWriter configures logging to w at the given level and returns the
// logger it installed as the default.
func SetupWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level <= slog.LevelDebug,
			NoColor:    !isTerminal(w),
		}),
	)
	slog.SetDefault(logger)
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
