package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapterWithWriter(&buf, "production", "info")

	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/post/hooks", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"request completed"`)
	assert.Contains(t, out, `"path":"/post/hooks"`)
	assert.Contains(t, out, `"status":418`)
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewSlogAdapterWithWriter(&buf, "production", "info")

	handler := Recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrorCodeInternalServerError)
	assert.Contains(t, buf.String(), "panic recovered")
}
