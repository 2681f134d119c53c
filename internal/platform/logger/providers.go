package logger

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the logger.
var ProviderSet = wire.NewSet(
	NewConfiguredLogger,
	wire.Bind(new(Logger), new(*SlogAdapter)),
)

// Config holds the values needed to configure the logger
type Config struct {
	Environment string
	LogLevel    string
	Service     string
}

// NewConfiguredLogger creates the main application logger from config
func NewConfiguredLogger(config Config) *SlogAdapter {
	l := NewSlogAdapter(config.Environment, config.LogLevel)
	if config.Service != "" {
		l = l.With("service", config.Service)
	}
	return l
}
