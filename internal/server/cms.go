package server

import (
	"context"
	"fmt"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/prismic"
	"github.com/philly/spacetraveling/internal/platform/logger"
)

// ConnectCMS creates the CMS client and checks the repository answers.
// An unreachable CMS is logged rather than fatal: the readiness probe
// reports it and pages fail with 502 until it recovers.
func ConnectCMS(ctx context.Context, config Config, log logger.Logger) (*prismic.Client, error) {
	log.Info(ctx, "connecting to CMS", "endpoint", config.PrismicEndpoint)

	client, err := prismic.NewClient(prismic.Config{
		Endpoint:    config.PrismicEndpoint,
		AccessToken: config.PrismicAccessToken,
		Timeout:     config.CMSTimeout,
	}, log)
	if err != nil {
		log.Error(ctx, "invalid CMS configuration", "error", err)
		return nil, fmt.Errorf("failed to create CMS client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		log.Warn(ctx, "CMS is not reachable yet", "error", err)
	} else {
		log.Info(ctx, "CMS connection established successfully")
	}

	return client, nil
}
