package rest

import (
	"github.com/go-chi/chi/v5"
)

// Server combines all JSON API handlers
type Server struct {
	*PostsHandler
	*PreviewHandler
	*HealthHandler
}

// NewServer creates the API server
func NewServer(
	postsHandler *PostsHandler,
	previewHandler *PreviewHandler,
	healthHandler *HealthHandler,
) *Server {
	return &Server{
		PostsHandler:   postsHandler,
		PreviewHandler: previewHandler,
		HealthHandler:  healthHandler,
	}
}

// Mount registers the API routes under /api
func (s *Server) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health/live", s.GetLiveness)
		r.Get("/health/ready", s.GetReadiness)

		r.Get("/preview", s.Preview)
		r.Get("/exit-preview", s.ExitPreview)

		r.Get("/posts", s.ListPosts)
		r.Get("/posts/next", s.NextPosts)
		r.Get("/posts/{slug}", s.GetPost)
	})
}
