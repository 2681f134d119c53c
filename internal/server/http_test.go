package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/rest"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/adapters/richtext"
	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyCMS struct{}

func (emptyCMS) ListSummaries(ctx context.Context, filter ports.ListFilter) (*domain.PostList, error) {
	return &domain.PostList{}, nil
}

func (emptyCMS) FetchPage(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error) {
	return nil, ports.ErrInvalidCursor
}

func (emptyCMS) FindByUID(ctx context.Context, uid string, ref string) (*domain.PostDetail, error) {
	return nil, ports.ErrPostNotFound
}

func (emptyCMS) ResolvePreview(ctx context.Context, token string, documentID string) (*domain.DocumentRef, error) {
	return nil, nil
}

func (emptyCMS) Ping(ctx context.Context) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	cms := emptyCMS{}
	posts := application.NewPostsService(cms, log)

	session, err := middleware.NewPreviewSession(middleware.PreviewConfig{Secret: "router-secret", MaxAge: time.Hour}, log)
	require.NoError(t, err)

	base := rest.NewBaseHandler(log)
	api := rest.NewServer(
		rest.NewPostsHandler(base, posts),
		rest.NewPreviewHandler(base, application.NewPreviewService(cms, log), session),
		rest.NewHealthHandler(base, "test", cms),
	)

	pages, err := web.NewPages(web.Site{Name: "spacetraveling", Location: time.UTC}, richtext.NewRenderer())
	require.NoError(t, err)
	handler := web.NewHandler(posts, pages, web.Config{HomePageSize: 20, RevalidateAfter: time.Hour}, log)

	return NewRouter(api, handler, session, log)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		method      string
		target      string
		wantStatus  int
		contentType string
	}{
		{name: "home page", method: http.MethodGet, target: "/", wantStatus: http.StatusOK, contentType: "text/html"},
		{name: "api list", method: http.MethodGet, target: "/api/posts", wantStatus: http.StatusOK, contentType: "application/json"},
		{name: "liveness", method: http.MethodGet, target: "/api/health/live", wantStatus: http.StatusOK, contentType: "application/json"},
		{name: "unknown path renders the not found page", method: http.MethodGet, target: "/nope/nope", wantStatus: http.StatusNotFound, contentType: "text/html"},
		{name: "unknown post", method: http.MethodGet, target: "/post/missing", wantStatus: http.StatusNotFound, contentType: "text/html"},
		{name: "wrong method", method: http.MethodPost, target: "/api/posts", wantStatus: http.StatusMethodNotAllowed, contentType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
		})
	}
}

func TestNewHTTPServer_WriteTimeoutCoversCMS(t *testing.T) {
	log := logger.NewSlogAdapterWithWriter(io.Discard, "test", "error")
	session, err := middleware.NewPreviewSession(middleware.PreviewConfig{Secret: "s"}, log)
	require.NoError(t, err)

	srv := NewHTTPServer(Config{ServerAddress: ":0", CMSTimeout: 30 * time.Second}, &rest.Server{}, &web.Handler{}, session, log)

	assert.Equal(t, ":0", srv.Addr)
	assert.Greater(t, srv.WriteTimeout, 30*time.Second)
}
