package errors

import (
	"context"
	"net/http"
	"testing"
	"time"

	"growguard/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_UnauthorizedMatchesAuthExpired(t *testing.T) {
	err := errors.Wrap(NewHTTPError("GET /user/profile", http.StatusUnauthorized, "Invalid token"), "load profile")

	assert.True(t, errors.Is(err, ErrAuthExpired))
	assert.False(t, errors.Is(NewHTTPError("op", http.StatusForbidden, ""), ErrAuthExpired))
}

func TestHTTPError_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewHTTPError("op", http.StatusBadRequest, "bad").HTTPCode())
	assert.Equal(t, http.StatusBadGateway, NewHTTPError("op", http.StatusInternalServerError, "").HTTPCode())
	assert.Equal(t, http.StatusBadGateway, NewHTTPError("op", http.StatusOK, "no token").HTTPCode())
	assert.Equal(t, "Internal Server Error", NewHTTPError("op", http.StatusInternalServerError, "").Message())
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	err := errors.WithStack(NewValidationError("mobileNumber", "Please enter a valid 10-digit mobile number"))

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Please enter a valid 10-digit mobile number", UserMessage(err, "fallback"))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrRequestInFlight.WithDetails("upload"), "scan")

	assert.True(t, errors.Is(err, ErrRequestInFlight))
	assert.False(t, errors.Is(err, ErrIllegalTransition))
}

func TestNetworkError_Unwraps(t *testing.T) {
	err := NewNetworkError("POST /scan/upload", context.Canceled)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "TIMEOUT", NewTimeoutError("op", 30*time.Second).ErrorCode())
}

func TestUserMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", UserMessage(errors.New("boom"), "fallback"))
	assert.Equal(t, "", UserMessage(nil, "fallback"))
}
