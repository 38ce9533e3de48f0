package usecase

import (
	"context"

	"growguard/internal/domain/entity"
)

// ProfileView is the profile screen: the loaded profile and whether it came from the cache.
type ProfileView struct {
	User      *entity.User `json:"user"`
	FromCache bool         `json:"fromCache"`
}

// UpdateProfileInput is the edit form of the profile screen.
type UpdateProfileInput struct {
	MobileNumber string `json:"mobileNumber" validate:"mobile"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
}

// ProfileUpdateResult reports how an update was handled.
type ProfileUpdateResult struct {
	User *entity.User `json:"user,omitempty"`
	// VerificationRequired is true when the mobile number changed and an OTP was sent to it.
	VerificationRequired bool `json:"verificationRequired"`
	// Err is the inline message when the OTP for a new number could not be sent.
	Err string `json:"error,omitempty"`
}

// ProfileUsecase loads and edits the signed-in profile.
type ProfileUsecase interface {
	Load(ctx context.Context) (*ProfileView, error)
	Update(ctx context.Context, input *UpdateProfileInput) (*ProfileUpdateResult, error)
}
