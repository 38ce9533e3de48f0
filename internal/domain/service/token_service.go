package service

import "time"

// TokenInspector reads metadata from an opaque bearer token without verifying it.
type TokenInspector interface {
	// ExpiresAt returns the exp claim, or nil when the token carries none or is not a JWT.
	ExpiresAt(token string) *time.Time
}
