// Package logging defines the structured-logging interface used across
// recipeshare, with slog and zap backed implementations.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "recipes fetched", "count", n)
//
// A request id stored with WithRequestID is attached automatically.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the API request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// Format selects the logger implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatZap  Format = "zap"
)

// New builds a Logger writing to w. Level is one of debug, info, warn, error.
func New(format Format, level string, w io.Writer) (Logger, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatText, "":
		return NewSlogText(w, level)
	case FormatJSON:
		return NewSlogJSON(w, level)
	case FormatZap:
		return NewZapLogger(w, level)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
