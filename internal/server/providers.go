package server

import (
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/philly/spacetraveling/internal/adapters/rest"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/staticgen"
)

// Version is the build version, set with -ldflags at release time
var Version = "dev"

// configSet derives every component's settings from Config
var configSet = wire.NewSet(
	provideLoggerConfig,
	providePreviewConfig,
	provideWebConfig,
	provideSite,
	provideStaticConfig,
	provideVersion,
)

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
		Service:     config.SiteName,
	}
}

func providePreviewConfig(config Config) middleware.PreviewConfig {
	return middleware.PreviewConfig{
		Secret: config.PreviewSecret,
		MaxAge: config.PreviewMaxAge,
		Secure: !config.IsDevelopment(),
	}
}

func provideWebConfig(config Config) web.Config {
	return web.Config{
		HomePageSize:    config.HomePageSize,
		RevalidateAfter: config.RevalidateAfter,
	}
}

func provideSite(config Config) (web.Site, error) {
	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return web.Site{}, fmt.Errorf("load timezone: %w", err)
	}
	return web.Site{Name: config.SiteName, Location: loc}, nil
}

func provideStaticConfig(config Config) staticgen.Config {
	return staticgen.Config{
		OutputDir:    config.OutputDir,
		PathsLimit:   config.StaticPathsLimit,
		HomePageSize: config.HomePageSize,
	}
}

// provideVersion provides the application version
func provideVersion() rest.Version {
	return rest.Version(Version)
}
