package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the body written for every failed request.
type Response struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HTTPErrorHandler returns the catch-all Echo error handler. Every error is
// logged and rendered as {message, status}, using the error's own status
// when it has one and 500 otherwise.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := toResponse(err)

		logError(log, c.Request(), resp.Status, err)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.Status)
			return
		}
		_ = c.JSON(resp.Status, resp)
	}
}

func toResponse(err error) Response {
	var appErr *Error
	if errors.As(err, &appErr) {
		return Response{
			Message: appErr.Message,
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Details: appErr.Details,
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := Response{Status: he.Code, Code: codeForStatus(he.Code)}
		switch msg := he.Message.(type) {
		case string:
			resp.Message = msg
		case error:
			resp.Message = msg.Error()
		default:
			resp.Message = http.StatusText(he.Code)
		}
		return resp
	}

	status := Status(err)
	message := err.Error()
	if message == "" {
		message = http.StatusText(status)
	}
	return Response{Message: message, Status: status, Code: codeForStatus(status)}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "service_unavailable"
	}
	if status >= http.StatusInternalServerError {
		return "internal_error"
	}
	return ""
}
