// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"growguard/internal/domain/entity"
	"growguard/internal/domain/service"
)

// SessionUsecase owns the authentication token and the cached profile. It is the only
// writer of the authToken and userData keys.
type SessionUsecase interface {
	service.SessionBinding

	// Current returns a copy of the session, or nil when unauthenticated.
	Current() *entity.Session
	IsAuthenticated() bool

	// Establish stores a new session and persists it.
	Establish(ctx context.Context, token string, user *entity.User) (*entity.Session, error)
	// UpdateUser replaces the cached profile of the current session.
	UpdateUser(ctx context.Context, user *entity.User) error
	// Logout clears the session and navigates to the login screen.
	Logout(ctx context.Context) error
}
