// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"growguard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims of backend-issued JWTs. The client never holds the signing
// key, so tokens are parsed unverified and only used for display.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for jwtInspector.
func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of token, or nil when it is absent or the token is not a JWT.
func (i *jwtInspector) ExpiresAt(token string) *time.Time {
	if token == "" {
		return nil
	}

	parsed, _, err := i.parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time

	return &t
}
