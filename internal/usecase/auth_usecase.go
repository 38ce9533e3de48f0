package usecase

import (
	"context"
	"time"

	"growguard/internal/domain/entity"
	"growguard/internal/domain/flow"
)

// AuthUsecase drives the registration, login and profile mobile-change flow.
//
// Every method returns the state after the event and any effects it triggered have been
// handled. The error is the rejection of the event itself (validation, illegal
// transition, request in flight); a failed backend call is reported in the state's
// inline message instead.
type AuthUsecase interface {
	State() flow.State
	// Remaining is the OTP validity left, zero when no verification is pending.
	Remaining() time.Duration

	Begin(ctx context.Context, purpose flow.Purpose) (flow.State, error)
	SubmitMobile(ctx context.Context, mobile string) (flow.State, error)
	SubmitDetails(ctx context.Context, details entity.RegistrationDetails) (flow.State, error)
	EnterDigit(ctx context.Context, index int, value string) (flow.State, error)
	SubmitOTP(ctx context.Context) (flow.State, error)
	Resend(ctx context.Context) (flow.State, error)
	BeginProfileChange(ctx context.Context, change flow.ProfileChange) (flow.State, error)
	Abandon(ctx context.Context) flow.State
}
