// Package middleware contains the echo middleware of the companion server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// The session is gone; the client is sent to the login screen rather than shown an error.
	if errors.IsAny(err, domainerrors.ErrAuthExpired, domainerrors.ErrNotAuthenticated) {
		m.redirectToLogin(c, err)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) redirectToLogin(c echo.Context, err error) {
	code := domainerrors.ErrNotAuthenticated.ErrorCode()
	message := domainerrors.ErrNotAuthenticated.Message()
	if errors.Is(err, domainerrors.ErrAuthExpired) {
		code = domainerrors.ErrAuthExpired.ErrorCode()
		message = domainerrors.ErrAuthExpired.Message()
	}

	if wantsHTML(c.Request()) {
		_ = c.Redirect(http.StatusSeeOther, string(entity.RouteLogin))

		return
	}

	_ = response.Redirect(c, http.StatusUnauthorized, code, message, entity.RouteLogin)
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMETextHTML) && !strings.Contains(accept, echo.MIMEApplicationJSON)
}
