package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "chronicle-service/app/utils/errors"
)

// newHTTPErrorHandler builds the catch-all error handler. Handlers answer
// their own domain errors inline; anything that escapes them (panics
// recovered by middleware, bad routes, stray AppErrors) lands here. The
// response stays in the status/message envelope the client parses, and
// internal causes are logged, never sent.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.StatusCode
			if code < http.StatusInternalServerError {
				message = appErr.Message
			}
			// Masked responses carry no detail, so the error itself must be
			// logged or the failure is invisible.
			if code >= http.StatusInternalServerError || appErr.Cause != nil {
				logger.Error("request failed", "code", appErr.Code, "error", appErr, "path", c.Path())
			}
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		default:
			logger.Error("unhandled error", "error", err, "path", c.Path())
		}

		body := map[string]string{"status": "Error", "message": message}
		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
