// Package web serves the server-rendered pages of the site.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/platform/validator"
	"github.com/philly/spacetraveling/internal/posts/application"
)

// notFoundRevalidateAfter is the shared-cache TTL of 404 pages.
const notFoundRevalidateAfter = time.Minute

// Config holds the page settings
type Config struct {
	HomePageSize    int
	RevalidateAfter time.Duration
}

// Handler serves HTML pages
type Handler struct {
	posts  *application.PostsService
	pages  *Pages
	config Config
	logger logger.Logger
}

// NewHandler creates a new page handler
func NewHandler(posts *application.PostsService, pages *Pages, config Config, logger logger.Logger) *Handler {
	return &Handler{
		posts:  posts,
		pages:  pages,
		config: config,
		logger: logger,
	}
}

// Mount registers the page routes
func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/post/{slug}", h.Post)
}

// Home renders the first page of posts
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ref, preview := middleware.PreviewRef(r.Context())

	list, err := h.posts.LoadInitial(r.Context(), h.config.HomePageSize, ref)
	if err != nil {
		h.renderError(w, r, err, preview)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.RenderHome(&buf, list, preview); err != nil {
		h.renderError(w, r, err, preview)
		return
	}
	h.write(w, r, &buf, http.StatusOK, CacheControl(preview, h.config.RevalidateAfter))
}

// Post renders a single post
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	ref, preview := middleware.PreviewRef(r.Context())

	slug := chi.URLParam(r, "slug")
	if err := validator.ValidateSlug(slug); err != nil {
		h.renderNotFound(w, r, preview)
		return
	}

	view, err := h.posts.GetPostView(r.Context(), slug, ref)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			h.renderNotFound(w, r, preview)
			return
		}
		h.renderError(w, r, err, preview)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.RenderPost(&buf, view, preview); err != nil {
		h.renderError(w, r, err, preview)
		return
	}
	h.write(w, r, &buf, http.StatusOK, CacheControl(preview, h.config.RevalidateAfter))
}

// NotFound renders the 404 page for unmatched routes
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	_, preview := middleware.PreviewRef(r.Context())
	h.renderNotFound(w, r, preview)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, preview bool) {
	var buf bytes.Buffer
	if err := h.pages.RenderNotFound(&buf, preview); err != nil {
		h.logger.Error(r.Context(), "failed to render not found page", "error", err)
		http.NotFound(w, r)
		return
	}
	h.write(w, r, &buf, http.StatusNotFound, CacheControl(preview, notFoundRevalidateAfter))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error, preview bool) {
	h.logger.Error(r.Context(), "failed to render page", "path", r.URL.Path, "error", err)

	status := http.StatusInternalServerError
	if errors.Is(err, application.ErrCMSUnavailable) {
		status = http.StatusBadGateway
	}

	var buf bytes.Buffer
	if rerr := h.pages.RenderError(&buf, "Não foi possível carregar o conteúdo.", preview); rerr != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, buf *bytes.Buffer, status int, cacheControl string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn(r.Context(), "failed to write page", "path", r.URL.Path, "error", err)
	}
}

// CacheControl returns the Cache-Control value of a page. Published pages
// may be served stale while a fresh copy is generated; preview pages are
// never cached.
func CacheControl(preview bool, revalidateAfter time.Duration) string {
	if preview {
		return "private, no-store"
	}
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", int(revalidateAfter.Seconds()))
}
