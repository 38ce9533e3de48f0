// Package response renders the JSON envelope of the companion server.
package response

import (
	"net/http"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	// Redirect is the screen the client must show instead, e.g. "/login" after a 401.
	Redirect string `json:"redirect,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
	// Route is the screen the client is on after the request.
	Route entity.Route `json:"route,omitempty"`
	Flash string       `json:"flash,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Screen returns a successful response carrying the client location.
func Screen(c echo.Context, statusCode int, location entity.Location, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
			Route:     location.Route,
			Flash:     location.Flash,
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Redirect returns an error response that sends the client to route.
func Redirect(c echo.Context, statusCode int, errorCode, message string, route entity.Route) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:     errorCode,
			Message:  message,
			Redirect: string(route),
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
			Route:     route,
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses. Session errors and errors
// that are not AppErrors are passed on to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	if errors.IsAny(err, domainerrors.ErrAuthExpired, domainerrors.ErrNotAuthenticated) {
		return err
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HandleFailure is HandleAppError for actions with a known fallback message: an error
// that is not an AppError is rendered as a bad gateway carrying fallback.
func HandleFailure(c echo.Context, err error, fallback string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return HandleAppError(c, err)
	}
	if errors.Is(err, domainerrors.ErrAuthExpired) {
		return err
	}

	return Error(c, http.StatusBadGateway, "REQUEST_FAILED", fallback, nil)
}
