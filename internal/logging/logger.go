// Package logging wraps log/slog with the playground's field names and
// operation helpers.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with playground-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at INFO is used.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// LogLibraryOpen logs the outcome of opening a dynamic library. Failures are
// logged at DEBUG because the caller reports the returned error itself.
func (l *Logger) LogLibraryOpen(ctx context.Context, path string, err error) {
	if err != nil {
		l.DebugContext(ctx, "dynamic library open failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "dynamic library opened",
		"path", path,
	)
}

// LogSymbolFallback logs a symbol that could not be bound from a library.
func (l *Logger) LogSymbolFallback(ctx context.Context, library, symbol string, reason error) {
	l.WarnContext(ctx, "symbol unavailable, using built-in implementation",
		"library", library,
		"symbol", symbol,
		"reason", reason,
	)
}

// LogResolution logs which implementation serves an operation.
func (l *Logger) LogResolution(ctx context.Context, op, source string) {
	l.DebugContext(ctx, "operation resolved",
		"op", op,
		"source", source,
	)
}

// LogFeatures logs the CPU details used for selection.
func (l *Logger) LogFeatures(ctx context.Context, arch, simd string, forceGeneric bool) {
	l.DebugContext(ctx, "cpu features",
		"arch", arch,
		"simd", simd,
		"force_generic", forceGeneric,
	)
}

// LogLibraryClose logs the release of a dynamic library handle.
func (l *Logger) LogLibraryClose(ctx context.Context, path string, err error) {
	if err != nil {
		l.WarnContext(ctx, "dynamic library close failed",
			"path", path,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "dynamic library closed",
		"path", path,
	)
}

// LogProvider logs a registered implementation entry.
func (l *Logger) LogProvider(ctx context.Context, name string, priority int, simd string) {
	l.DebugContext(ctx, "provider registered",
		"name", name,
		"priority", priority,
		"simd", simd,
	)
}
