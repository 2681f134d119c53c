package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/philly/spacetraveling/internal/adapters/rest"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/platform/logger"
)

// NewHTTPServer creates and configures the HTTP server with all routes
func NewHTTPServer(
	config Config,
	api *rest.Server,
	pages *web.Handler,
	session *middleware.PreviewSession,
	log logger.Logger,
) *http.Server {
	return &http.Server{
		Addr:         config.ServerAddress,
		Handler:      NewRouter(api, pages, session, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: config.CMSTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewRouter mounts the JSON API and the pages behind the common middleware
func NewRouter(
	api *rest.Server,
	pages *web.Handler,
	session *middleware.PreviewSession,
	log logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(session.Middleware)

	api.Mount(r)
	pages.Mount(r)

	r.NotFound(pages.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowed)

	return r
}
