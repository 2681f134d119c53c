package logger

import (
	"context"
)

// Logger defines the interface for logging.
// Handlers, services and adapters depend on this rather than on slog directly.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
