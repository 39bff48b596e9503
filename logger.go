package gridstore

import (
	"errors"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gridstore-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimensions adds a dimensions field to the logger.
func (l *Logger) WithDimensions(dims int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimensions", dims),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogInsert logs an insert operation.
// Rejected indices are logged as warnings, other failures as errors.
func (l *Logger) LogInsert(index any, merged bool, err error) {
	switch {
	case err == nil:
		l.Debug("insert completed",
			"index", index,
			"merged", merged,
		)
	case errors.Is(err, ErrInvalidIndex), errors.Is(err, ErrDuplicateIndex):
		l.Warn("insert rejected",
			"index", index,
			"error", err,
		)
	default:
		l.Error("insert failed",
			"index", index,
			"error", err,
		)
	}
}

// LogGet logs a lookup.
func (l *Logger) LogGet(index any, found bool, err error) {
	if err != nil {
		l.Warn("get rejected",
			"index", index,
			"error", err,
		)
	} else {
		l.Debug("get completed",
			"index", index,
			"found", found,
		)
	}
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(discarded int) {
	l.Debug("storage cleared",
		"discarded", discarded,
	)
}

// LogConfigure logs a backend configuration command.
func (l *Logger) LogConfigure(command any, err error) {
	if err != nil {
		l.Error("configure failed",
			"command", command,
			"error", err,
		)
	} else {
		l.Info("backend configured",
			"command", command,
		)
	}
}
