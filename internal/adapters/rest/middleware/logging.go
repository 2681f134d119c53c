package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/philly/spacetraveling/internal/platform/logger"
)

// RequestLogger logs one line per request
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", chimiddleware.GetReqID(r.Context()),
			}
			if _, ok := PreviewRef(r.Context()); ok {
				args = append(args, "preview", true)
			}

			if status >= http.StatusInternalServerError {
				log.Warn(r.Context(), "request completed", args...)
				return
			}
			log.Info(r.Context(), "request completed", args...)
		})
	}
}

// Recoverer turns panics into a logged JSON 500
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error(r.Context(), "panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				WriteJSONError(w, r, ErrorCodeInternalServerError, "An internal error occurred", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
