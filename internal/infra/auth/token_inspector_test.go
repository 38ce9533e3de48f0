package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return token
}

func TestTokenInspector_ExpiresAt(t *testing.T) {
	inspector := NewTokenInspector()
	exp := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)

	got := inspector.ExpiresAt(signed(t, jwt.MapClaims{"user_id": 7, "exp": exp.Unix()}))

	require.NotNil(t, got)
	assert.True(t, exp.Equal(*got))
}

func TestTokenInspector_NoExpiry(t *testing.T) {
	inspector := NewTokenInspector()

	assert.Nil(t, inspector.ExpiresAt(signed(t, jwt.MapClaims{"user_id": 7})))
	assert.Nil(t, inspector.ExpiresAt("opaque-session-token"))
	assert.Nil(t, inspector.ExpiresAt(""))
}
