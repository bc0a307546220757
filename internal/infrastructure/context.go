package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

// runIDContextKey is the key for storing the run ID in context.
const runIDContextKey contextKey = "run_id"

// GenerateRunID creates a new unique run ID using UUID v4.
func GenerateRunID() string {
	return uuid.New().String()
}

// WithRunID stores runID in the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDContextKey, runID)
}

// GetRunID extracts the run ID from the context, or "" when absent.
func GetRunID(ctx context.Context) string {
	if v, ok := ctx.Value(runIDContextKey).(string); ok {
		return v
	}
	return ""
}

// LoggerWithContext returns the global logger with the context's run ID
// attached, when present.
func LoggerWithContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}
