// Package logging builds the service's structured logger and carries the
// request-scoped child logger through context.
//
// Construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The logging middleware stores a child logger enriched with request_id and
// correlation_id; downstream code retrieves it with FromContext:
//
//	ctx = logging.WithLogger(ctx, child)
//	logging.FromContext(ctx).InfoContext(ctx, "list created", slog.String("list_id", id))
//
// Store and service failures are logged with the operation, the list and item
// identifiers involved, and the full error chain:
//
//	logger.ErrorContext(ctx, "list operation failed",
//	    slog.String("operation", "ToggleItem"),
//	    slog.String("list_id", listID),
//	    slog.String("item_id", itemID),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates a configured *slog.Logger writing to w.
//
// level accepts anything slog.Level.UnmarshalText understands ("debug",
// "INFO", "warn+2"); unrecognized values fall back to info. Debug output
// includes the source location.
//
// format "text" selects slog's text handler; any other value selects JSON.
// Both handlers run every attribute through the masq redactor.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default()
// when ctx carries none.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored by WithLogger, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
