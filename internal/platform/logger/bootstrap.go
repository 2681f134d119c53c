package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// BootstrapLogger is used during startup, before configuration is loaded
// and the real logger can be built.
type BootstrapLogger struct {
	logger *log.Logger
}

// NewBootstrapLogger creates a simple logger for bootstrap phase
func NewBootstrapLogger() *BootstrapLogger {
	return &BootstrapLogger{
		logger: log.New(os.Stderr, "[BOOTSTRAP] ", log.LstdFlags),
	}
}

func (b *BootstrapLogger) Debug(ctx context.Context, msg string, args ...any) {
	b.print("DEBUG", msg, args)
}

func (b *BootstrapLogger) Info(ctx context.Context, msg string, args ...any) {
	b.print("INFO", msg, args)
}

func (b *BootstrapLogger) Warn(ctx context.Context, msg string, args ...any) {
	b.print("WARN", msg, args)
}

func (b *BootstrapLogger) Error(ctx context.Context, msg string, args ...any) {
	b.print("ERROR", msg, args)
}

// print renders key/value pairs as key=value so bootstrap lines read like
// the text handler used later on.
func (b *BootstrapLogger) print(level, msg string, args []any) {
	var sb strings.Builder
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&sb, " %v", args[i])
		}
	}
	b.logger.Printf("%s: %s%s", level, msg, sb.String())
}

var _ Logger = (*BootstrapLogger)(nil)
