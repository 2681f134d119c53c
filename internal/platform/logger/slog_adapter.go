package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SlogAdapter implements the Logger interface using Go's standard slog library.
type SlogAdapter struct {
	logger *slog.Logger
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewSlogAdapter creates a logger writing to stdout.
func NewSlogAdapter(env string, level string) *SlogAdapter {
	return NewSlogAdapterWithWriter(os.Stdout, env, level)
}

// NewSlogAdapterWithWriter creates a logger writing to w. Development gets
// the human-readable text handler, everything else JSON.
func NewSlogAdapterWithWriter(w io.Writer, env string, level string) *SlogAdapter {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &SlogAdapter{
		logger: slog.New(handler),
	}
}

// With returns a logger that adds args to every record.
func (s *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: s.logger.With(args...)}
}

func (s *SlogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	s.logger.DebugContext(ctx, msg, args...)
}

func (s *SlogAdapter) Info(ctx context.Context, msg string, args ...any) {
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *SlogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	s.logger.WarnContext(ctx, msg, args...)
}

func (s *SlogAdapter) Error(ctx context.Context, msg string, args ...any) {
	s.logger.ErrorContext(ctx, msg, args...)
}
