package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/spf13/viper"
)

type Config struct {
	PrismicEndpoint    string        `mapstructure:"PRISMIC_API_ENDPOINT"`
	PrismicAccessToken string        `mapstructure:"PRISMIC_ACCESS_TOKEN"`
	CMSTimeout         time.Duration `mapstructure:"CMS_TIMEOUT"`
	PreviewSecret      string        `mapstructure:"PREVIEW_SECRET"` // HMAC key of the preview cookie
	PreviewMaxAge      time.Duration `mapstructure:"PREVIEW_MAX_AGE"`
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	Environment        string        `mapstructure:"ENVIRONMENT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"` // Logging level (debug, info, warn, error)
	HomePageSize       int           `mapstructure:"HOME_PAGE_SIZE"`
	StaticPathsLimit   int           `mapstructure:"STATIC_PATHS_LIMIT"`
	RevalidateAfter    time.Duration `mapstructure:"REVALIDATE_AFTER"`
	OutputDir          string        `mapstructure:"OUTPUT_DIR"`
	Timezone           string        `mapstructure:"TIMEZONE"`
	SiteName           string        `mapstructure:"SITE_NAME"`
}

// IsDevelopment reports whether the app runs locally
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// Load .env file if it exists (godotenv will find it automatically)
	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	// Create a new Viper instance
	v := viper.New()

	// Set default values. Keys without a default are invisible to
	// Unmarshal, so required keys get an empty one.
	v.SetDefault("PRISMIC_API_ENDPOINT", "")
	v.SetDefault("PRISMIC_ACCESS_TOKEN", "")
	v.SetDefault("CMS_TIMEOUT", "30s")
	v.SetDefault("PREVIEW_SECRET", "")
	v.SetDefault("PREVIEW_MAX_AGE", "1h")
	v.SetDefault("SERVER_ADDRESS", ":3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HOME_PAGE_SIZE", 20)
	v.SetDefault("STATIC_PATHS_LIMIT", 4)
	v.SetDefault("REVALIDATE_AFTER", "24h")
	v.SetDefault("OUTPUT_DIR", "public")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("SITE_NAME", "spacetraveling")

	// Enable automatic environment variable reading
	// Viper will now see all environment variables, including those loaded by godotenv
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal the configuration into our struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		bootstrapLogger.Error(ctx, "failed to unmarshal configuration", "error", err)
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"server_address", config.ServerAddress,
		"prismic_endpoint", config.PrismicEndpoint,
	)

	if err := config.Validate(); err != nil {
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration validated successfully")
	return config, nil
}

// Validate checks the settings every command needs. The preview secret
// is only checked when the HTTP server is built.
func (c Config) Validate() error {
	if c.PrismicEndpoint == "" {
		return errors.New("PRISMIC_API_ENDPOINT is required")
	}
	if c.CMSTimeout <= 0 {
		return errors.New("CMS_TIMEOUT must be positive")
	}
	if c.HomePageSize <= 0 {
		return errors.New("HOME_PAGE_SIZE must be positive")
	}
	if c.StaticPathsLimit < 0 {
		return errors.New("STATIC_PATHS_LIMIT cannot be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}
