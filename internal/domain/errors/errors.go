package errors

import (
	"fmt"
	"net/http"
	"time"

	"growguard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so WithDetails copies still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrAuthExpired is the 401 signal handled globally by the gateway.
	ErrAuthExpired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_EXPIRED",
		"Session expired, please login again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please login to continue",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Flow errors
	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_TRANSITION",
		"This action is not available right now",
		"",
	)

	ErrRequestInFlight = NewBaseError(
		http.StatusConflict,
		"REQUEST_IN_FLIGHT",
		"A request is already in progress",
		"",
	)

	ErrIncompleteOTP = NewBaseError(
		http.StatusBadRequest,
		"OTP_INCOMPLETE",
		"Please enter all 4 digits",
		"",
	)

	ErrInvalidOTPDigit = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID_DIGIT",
		"Only a single digit is allowed",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusGone,
		"OTP_EXPIRED",
		"OTP expired, please resend",
		"",
	)

	ErrNoPendingVerification = NewBaseError(
		http.StatusConflict,
		"NO_PENDING_VERIFICATION",
		"No verification is pending",
		"",
	)

	// Report-related errors
	ErrNoCurrentReport = NewBaseError(
		http.StatusNotFound,
		"NO_CURRENT_REPORT",
		"No diagnosis report is open",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusConflict,
		"CONFIRMATION_REQUIRED",
		"Please confirm this action first",
		"",
	)

	ErrReportNotDurable = NewBaseError(
		http.StatusConflict,
		"REPORT_NOT_SAVED",
		"Save the report first",
		"",
	)

	// Camera-related errors
	ErrCameraPermissionDenied = NewBaseError(
		http.StatusServiceUnavailable,
		"CAMERA_PERMISSION_DENIED",
		"Camera permission denied. Using file picker instead.",
		"",
	)

	ErrCameraNotFound = NewBaseError(
		http.StatusServiceUnavailable,
		"CAMERA_NOT_FOUND",
		"No camera found. Using file picker instead.",
		"",
	)

	ErrCameraUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CAMERA_UNAVAILABLE",
		"Camera not available. Using file picker instead.",
		"",
	)

	ErrCameraNotOpen = NewBaseError(
		http.StatusConflict,
		"CAMERA_NOT_OPEN",
		"Camera is not open",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ValidationError is input rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for one field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }
func (e *ValidationError) HTTPCode() int        { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string    { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string      { return e.Reason }
func (e *ValidationError) Details() string      { return e.Field }

// NetworkError means no response was received.
type NetworkError struct {
	Op  string
	Err error
}

// NewNetworkError wraps a transport failure
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error     { return e.Err }
func (e *NetworkError) HTTPCode() int     { return http.StatusBadGateway }
func (e *NetworkError) ErrorCode() string { return "NETWORK_ERROR" }
func (e *NetworkError) Message() string {
	return "Network error, please check your connection and try again"
}
func (e *NetworkError) Details() string { return e.Op }

// TimeoutError means the request did not complete within the gateway timeout.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

// NewTimeoutError reports an exhausted request deadline
func NewTimeoutError(op string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{Op: op, Timeout: timeout}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s", e.Op, e.Timeout)
}

func (e *TimeoutError) HTTPCode() int     { return http.StatusGatewayTimeout }
func (e *TimeoutError) ErrorCode() string { return "TIMEOUT" }
func (e *TimeoutError) Message() string   { return "Request timed out, please try again" }
func (e *TimeoutError) Details() string   { return e.Op }

// HTTPError means the backend answered and rejected the request.
type HTTPError struct {
	Op     string
	Status int
	Msg    string
}

// NewHTTPError builds an HTTPError, defaulting the message to the status text
func NewHTTPError(op string, status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "Request failed"
	}

	return &HTTPError{Op: op, Status: status, Msg: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Status, e.Msg)
}

// Is lets a 401 match ErrAuthExpired.
func (e *HTTPError) Is(target error) bool {
	return target == ErrAuthExpired && e.Status == http.StatusUnauthorized
}

// HTTPCode keeps 4xx statuses and reports any other failure as a bad gateway.
func (e *HTTPError) HTTPCode() int {
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}

	return http.StatusBadGateway
}

func (e *HTTPError) ErrorCode() string { return "HTTP_ERROR" }
func (e *HTTPError) Message() string   { return e.Msg }
func (e *HTTPError) Details() string   { return e.Op }

// UserMessage returns the message to show for err, falling back to fallback for
// errors that are not AppErrors.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Message()
	}

	return fallback
}
