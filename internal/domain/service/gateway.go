package service

import (
	"context"

	"growguard/internal/domain/entity"
)

// OTPPurpose is the purpose sent to the resend endpoint.
type OTPPurpose string

const (
	OTPPurposeRegistration OTPPurpose = "registration"
	OTPPurposeLogin        OTPPurpose = "login"
)

// RegisterInput finalizes a registration.
type RegisterInput struct {
	entity.RegistrationDetails
	MobileNumber string `json:"mobileNumber"`
	OTPCode      string `json:"otpCode"`
}

// AuthResult is the session payload returned by register and login.
type AuthResult struct {
	Token   string
	User    *entity.User
	Message string
}

// ProfileUpdate is the body of PUT /user/profile. OTPCode is set only when the mobile number changes.
type ProfileUpdate struct {
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	MobileNumber string  `json:"mobileNumber,omitempty"`
	OTPCode      *string `json:"otpCode,omitempty"`
}

// HealthStatus is the backend liveness answer.
type HealthStatus struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Gateway is the single chokepoint for backend calls. Every method attaches the bearer
// token when a session exists and is attempted exactly once.
//
// Failures are reported as *errors.ValidationError, *errors.NetworkError,
// *errors.TimeoutError or *errors.HTTPError from the domain errors package; a 401 also
// matches errors.ErrAuthExpired and has already cleared the session when returned.
type Gateway interface {
	SendRegistrationOTP(ctx context.Context, mobile string) (message string, err error)
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	SendLoginOTP(ctx context.Context, mobile string) (message string, err error)
	Login(ctx context.Context, mobile, otpCode string) (*AuthResult, error)
	ResendOTP(ctx context.Context, mobile string, purpose OTPPurpose) (message string, err error)

	GetProfile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, update *ProfileUpdate) (*entity.User, error)

	UploadScan(ctx context.Context, image *entity.Image) (*entity.Report, error)
	ListReports(ctx context.Context) ([]*entity.Report, error)
	SaveReport(ctx context.Context, report *entity.Report) (*entity.Report, error)
	GetReport(ctx context.Context, id string) (*entity.Report, error)
	DeleteReport(ctx context.Context, id string) error
	DeleteAllReports(ctx context.Context) error

	SubmitRating(ctx context.Context, rating *entity.Rating) error
	Health(ctx context.Context) (*HealthStatus, error)

	// ImageURL derives the public URL of an image from any path the backend returned.
	ImageURL(path string) string
	// FetchImage downloads an uploaded image by filename.
	FetchImage(ctx context.Context, filename string) (data []byte, contentType string, err error)
}

// SessionBinding connects the gateway to the session store.
type SessionBinding interface {
	// Token returns the bearer token of the current session, empty when none.
	Token() string

	// Expire handles an authorization failure for a request sent with token: it clears the
	// session and forces navigation to login, but only if the session still holds token.
	// It reports whether this call performed the clear.
	Expire(ctx context.Context, token string) bool
}
