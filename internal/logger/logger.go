package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	runIDKey     ctxKey = "runID"
)

// InitLogger installs a logger built from config as the slog default, writing to stdout
func InitLogger(config Config) *slog.Logger {
	return InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs a logger built from config as the slog default
func InitLoggerWithWriter(config Config, w io.Writer) *slog.Logger {
	l := New(config, w)
	slog.SetDefault(l)
	return l
}

// New builds a logger from config without touching the slog default
func New(config Config, w io.Writer) *slog.Logger {
	opts := config.handlerOptions()

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(config.Service.attrs()))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateRunID creates a new UUID identifying one background loop.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, requestIDKey)
}

// GetRequestID returns the request ID or "" when absent.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// RunIDFromContext extracts the run ID from the context, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, runIDKey)
}

func stringFromContext(ctx context.Context, key ctxKey) (string, bool) {
	v := ctx.Value(key)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns the default logger with request_id and run_id attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	return With(ctx, slog.Default())
}

// With decorates l with the request_id and run_id found in ctx.
func With(ctx context.Context, l *slog.Logger) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		l = l.With(AttrKeyRequestID, id)
	}
	if id, ok := RunIDFromContext(ctx); ok {
		l = l.With(AttrKeyRunID, id)
	}
	return l
}

// Info logs at info level on the default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}
