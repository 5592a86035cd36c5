package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger used across the service. JSON output so
// log pipelines can index request_id and candidate/industry ids.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
