// Package logger exposes the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

// Logger writes text records to stderr. Info by default, Debug when the
// verbose flag is set.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

// SetVerbose switches the log level between Debug and Info.
func SetVerbose(on bool) {
	if on {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}
