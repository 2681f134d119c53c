package rest

import (
	"encoding/json"
	"net/http"

	"github.com/philly/spacetraveling/internal/platform/apperror"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/platform/validator"
)

// ErrorResponse is the body of every JSON error
type ErrorResponse struct {
	Error        string      `json:"error"`
	Message      string      `json:"message"`
	BusinessCode string      `json:"business_code,omitempty"`
	Context      interface{} `json:"context,omitempty"`
}

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes a JSON error response
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, code string, message string, statusCode int) {
	h.WriteJSONResponse(w, r, ErrorResponse{Error: code, Message: message}, statusCode)
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError maps an error to a JSON response. AppErrors carry their own
// status and codes; anything else is an internal error whose details are
// logged but not exposed.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		h.logger.Error(r.Context(), "unhandled error",
			"error", err,
			"path", r.URL.Path,
		)
		appErr = apperror.Internal(err, "An internal error occurred")
	} else if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed",
			"error", appErr,
			"path", r.URL.Path,
		)
	}

	h.WriteJSONResponse(w, r, ErrorResponse{
		Error:        string(appErr.Code),
		Message:      appErr.Message,
		BusinessCode: string(appErr.BusinessCode),
		Context:      appErr.Details,
	}, appErr.HTTPStatus)
}

// ParseSlug validates a slug path parameter. A malformed slug cannot name
// any post, so it is answered with the not-found error.
func (h *BaseHandler) ParseSlug(w http.ResponseWriter, r *http.Request, slug string, notFound error) (string, bool) {
	if err := validator.ValidateSlug(slug); err != nil {
		h.HandleError(w, r, notFound)
		return "", false
	}
	return slug, true
}
