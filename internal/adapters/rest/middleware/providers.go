package middleware

import (
	"github.com/google/wire"
	"github.com/philly/spacetraveling/internal/platform/logger"
)

// ProviderSet is the wire provider set for middleware components
var ProviderSet = wire.NewSet(
	ProvidePreviewSession,
)

// ProvidePreviewSession creates the preview session manager from PreviewConfig
func ProvidePreviewSession(cfg PreviewConfig, log logger.Logger) (*PreviewSession, error) {
	return NewPreviewSession(cfg, log)
}
