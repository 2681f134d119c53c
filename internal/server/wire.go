//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"
	"github.com/philly/spacetraveling/internal/adapters/prismic"
	"github.com/philly/spacetraveling/internal/adapters/rest"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/adapters/richtext"
	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/staticgen"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		// Bootstrap phase
		logger.NewBootstrapLogger,
		LoadConfig,

		// Derived component settings
		configSet,

		// Main logger
		logger.ProviderSet,

		// CMS client and repository (includes interface binding)
		ConnectCMS,
		prismic.ProviderSet,

		// Application services
		application.ProviderSet,

		// Pages
		richtext.ProviderSet,
		web.ProviderSet,

		// REST handlers and preview session
		middleware.ProviderSet,
		rest.ProviderSet,

		// HTTP Server
		NewHTTPServer,

		// App
		NewApp,
	)

	return nil, nil, nil
}

// InitializeTooling creates the dependencies of the offline commands
func InitializeTooling(ctx context.Context) (*Tooling, error) {
	wire.Build(
		logger.NewBootstrapLogger,
		LoadConfig,
		configSet,
		logger.ProviderSet,
		ConnectCMS,
		prismic.ProviderSet,
		application.ProviderSet,
		richtext.ProviderSet,
		web.ProviderSet,
		staticgen.ProviderSet,
		NewTooling,
	)

	return nil, nil
}
