package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/staticgen"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server *http.Server
	config Config
	logger logger.Logger
}

func NewApp(server *http.Server, config Config, log logger.Logger) *App {
	return &App{
		server: server,
		config: config,
		logger: log,
	}
}

// Run starts the application and handles graceful shutdown
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "address", a.server.Addr, "environment", a.config.Environment)
		serverErrors <- a.server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	a.logger.Info(context.Background(), "server stopped")
	return nil
}

// Tooling is what the offline commands need
type Tooling struct {
	Config  Config
	Logger  logger.Logger
	Posts   *application.PostsService
	Builder *staticgen.Builder
}

func NewTooling(config Config, log logger.Logger, posts *application.PostsService, builder *staticgen.Builder) *Tooling {
	return &Tooling{
		Config:  config,
		Logger:  log,
		Posts:   posts,
		Builder: builder,
	}
}
