package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. JSON output so log
// aggregation stays trivial; level is controlled by LOANFLOW_LOG_LEVEL.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOANFLOW_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
