package entity

import "time"

// Session is the authenticated state: an opaque bearer token plus the cached profile.
type Session struct {
	Token string
	User  *User
	// ExpiresAt is read from the token when it carries an exp claim. Informational only.
	ExpiresAt *time.Time
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
