package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the custom error type for the application.
type AppError struct {
	Code         ErrorCode    // General system-level category (e.g., NOT_FOUND)
	BusinessCode BusinessCode // Specific business reason (e.g., POST_NOT_FOUND)
	Message      string       // Developer-facing message
	HTTPStatus   int          // HTTP status code
	Details      any          // Extra details (e.g., the offending cursor)
	Inner        error        // Wrapped underlying error
}

func (e *AppError) Error() string { return e.Message }
func (e *AppError) Unwrap() error { return e.Inner }

// WithDetails returns a copy of the error carrying details. Package-level
// sentinel errors are shared, so they are never mutated in place.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithInner returns a copy of the error wrapping inner.
func (e *AppError) WithInner(inner error) *AppError {
	cp := *e
	cp.Inner = inner
	return &cp
}

// New creates a new AppError.
func New(code ErrorCode, bizCode BusinessCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, BusinessCode: bizCode, Message: message, HTTPStatus: httpStatus}
}

// Wrap creates a new AppError that wraps an existing error.
func Wrap(inner error, code ErrorCode, bizCode BusinessCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, BusinessCode: bizCode, Message: message, HTTPStatus: httpStatus, Inner: inner}
}

// Internal wraps an unexpected failure as a 500 with the general business code.
func Internal(inner error, message string) *AppError {
	return Wrap(inner, CodeInternalError, BusinessCodeGeneral, message, http.StatusInternalServerError)
}

// As extracts an AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is allows errors.Is to work with AppError
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.BusinessCode == t.BusinessCode
}

// Format implements fmt.Formatter for better error output
func (e *AppError) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = fmt.Fprintf(f, "Code: %s, BusinessCode: %s, Message: %s, HTTPStatus: %d",
				e.Code, e.BusinessCode, e.Message, e.HTTPStatus)
			if e.Inner != nil {
				_, _ = fmt.Fprintf(f, "\nCaused by: %+v", e.Inner)
			}
			if e.Details != nil {
				_, _ = fmt.Fprintf(f, "\nDetails: %+v", e.Details)
			}
		} else {
			_, _ = fmt.Fprint(f, e.Message)
		}
	case 's':
		_, _ = fmt.Fprint(f, e.Message)
	}
}
