package bitpos

import (
	"log/slog"
	"os"

	"github.com/hupe1980/bitpos/metric"
)

// Logger wraps slog.Logger with bitpos-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogScan logs the end of a scan. Failures are logged at warn level,
// normal exhaustion at debug level.
func (l *Logger) LogScan(stats metric.ScanStats, err error) {
	if err != nil {
		l.Warn("bitmap scan stopped",
			"kind", string(stats.Kind),
			"words", stats.Words,
			"positions", stats.Positions,
			"error", err,
		)
		return
	}
	l.Debug("bitmap scan finished",
		"kind", string(stats.Kind),
		"words", stats.Words,
		"groups_scanned", stats.GroupsScanned,
		"groups_skipped", stats.GroupsSkipped,
		"positions", stats.Positions,
	)
}
