package middleware

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Codes of errors answered by the router itself, before a REST handler
// runs. They use the same spelling as apperror codes.
const (
	ErrorCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// routerError has the shape of rest.ErrorResponse plus the request id,
// so clients parse every JSON error the same way.
type routerError struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSONError answers r with a JSON error. The request id comes from
// chi's RequestID middleware when it ran.
func WriteJSONError(w http.ResponseWriter, r *http.Request, code string, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(routerError{
		Error:     code,
		Message:   message,
		RequestID: chimiddleware.GetReqID(r.Context()),
	})
}

// MethodNotAllowed is the router's 405 handler
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, r, ErrorCodeMethodNotAllowed, "Method not allowed", http.StatusMethodNotAllowed)
}
