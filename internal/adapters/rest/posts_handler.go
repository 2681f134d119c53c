package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/platform/apperror"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/posts/domain"
)

// PostsHandler serves the read-only posts API
type PostsHandler struct {
	*BaseHandler
	service *application.PostsService
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(base *BaseHandler, service *application.PostsService) *PostsHandler {
	return &PostsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListPosts returns the first page of posts
// GET /api/posts?page_size=N
func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	var pageSize *int
	if err := runtime.BindQueryParameter("form", true, false, "page_size", r.URL.Query(), &pageSize); err != nil {
		h.HandleError(w, r, invalidParameter("page_size", err))
		return
	}

	ref, _ := middleware.PreviewRef(r.Context())
	list, err := h.service.LoadInitial(r.Context(), optional(pageSize), ref)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, postListToAPI(list), http.StatusOK)
}

// NextPosts follows a pagination cursor
// GET /api/posts/next?cursor=C
func (h *PostsHandler) NextPosts(w http.ResponseWriter, r *http.Request) {
	var cursor *string
	if err := runtime.BindQueryParameter("form", true, false, "cursor", r.URL.Query(), &cursor); err != nil {
		h.HandleError(w, r, invalidParameter("cursor", err))
		return
	}

	list, err := h.service.LoadMore(r.Context(), domain.Cursor(optional(cursor)))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, postListToAPI(list), http.StatusOK)
}

// GetPost returns a post with reading time and neighbors
// GET /api/posts/{slug}
func (h *PostsHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.ParseSlug(w, r, chi.URLParam(r, "slug"), application.ErrPostNotFound)
	if !ok {
		return
	}

	ref, _ := middleware.PreviewRef(r.Context())
	view, err := h.service.GetPostView(r.Context(), slug, ref)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, postViewToAPI(view), http.StatusOK)
}

func invalidParameter(name string, err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"Invalid "+name,
		http.StatusBadRequest,
	)
}

// optional dereferences an optional query parameter
func optional[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
