// Package apperror carries HTTP status and a stable code alongside errors,
// and renders them for both Echo and plain net/http handlers.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Error is an error with the status and code a client sees. Message is safe
// to show; Internal is logged only.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// with returns a modified copy; sentinels are never mutated.
func (e *Error) with(fn func(*Error)) *Error {
	cp := *e
	fn(&cp)
	return &cp
}

// WithInternal attaches the underlying cause.
func (e *Error) WithInternal(err error) *Error {
	return e.with(func(c *Error) { c.Internal = err })
}

// WithMessage replaces the client-facing message.
func (e *Error) WithMessage(message string) *Error {
	return e.with(func(c *Error) { c.Message = message })
}

// WithDetails attaches structured details to the JSON body.
func (e *Error) WithDetails(details map[string]any) *Error {
	return e.with(func(c *Error) { c.Details = details })
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrNotFound           = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrBadRequest         = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrInternal           = New(http.StatusInternalServerError, "internal_error", "Internal Server Error")
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "service_unavailable", "Service unavailable")

	// ErrPageRender is returned when the landing page fails to render.
	ErrPageRender = New(http.StatusInternalServerError, "render_failed", "The page could not be rendered")
)

// StatusError is implemented by errors that carry their own HTTP status.
type StatusError interface {
	error
	StatusCode() int
}

// Status reports the HTTP status err maps to, defaulting to 500.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	var se StatusError
	if errors.As(err, &se) {
		return se.StatusCode()
	}
	return http.StatusInternalServerError
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound names the missing thing, e.g. NewNotFound("asset", "js/x.js").
func NewNotFound(kind, name string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", kind, name))
}

func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}

// Respond writes err for net/http handlers with the same body and logging
// as HTTPErrorHandler.
func Respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp := toResponse(err)
	logError(log, r, resp.Status, err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)
	if r.Method != http.MethodHead {
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func logError(log *slog.Logger, r *http.Request, status int, err error) {
	attrs := []any{
		slog.Int("status", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request error", attrs...)
	} else {
		log.Warn("request error", attrs...)
	}
}
