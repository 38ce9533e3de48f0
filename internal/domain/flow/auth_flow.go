// Package flow models the registration, login and profile mobile-change flows as one
// explicit state machine. Transition is pure: it never performs I/O and takes the
// current time from the events that need it. Side effects are returned as Effects for
// the caller to run, and their outcomes are fed back as events.
package flow

import (
	"fmt"
	"time"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
)

// Purpose distinguishes the flows that share the mobile and OTP states.
type Purpose string

const (
	PurposeRegistration        Purpose = "registration"
	PurposeLogin               Purpose = "login"
	PurposeProfileMobileChange Purpose = "profile-mobile-change"
)

// OTPPurpose maps a flow purpose to the purpose the backend knows.
// A mobile change is verified with a login OTP sent to the new number.
func (p Purpose) OTPPurpose() service.OTPPurpose {
	if p == PurposeRegistration {
		return service.OTPPurposeRegistration
	}

	return service.OTPPurposeLogin
}

const (
	// RegistrationSuccessMessage is flashed on the login screen after registering.
	RegistrationSuccessMessage = "Registration successful! Please login."
	// OTPResentMessage is shown after a successful resend.
	OTPResentMessage = "OTP Resent Successfully"
	// InvalidMobileMessage is attached when a mobile number is not exactly 10 digits.
	InvalidMobileMessage = "Please enter a valid 10-digit mobile number"
)

// ProfileChange is the profile update waiting on OTP verification of a new mobile number.
type ProfileChange struct {
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// Verification is the single pending OTP of a flow instance.
type Verification struct {
	Mobile   string                      `json:"mobile"`
	Purpose  Purpose                     `json:"purpose"`
	Details  *entity.RegistrationDetails `json:"details,omitempty"`
	Change   *ProfileChange              `json:"change,omitempty"`
	Deadline time.Time                   `json:"deadline"`
	// Resending is true while a resend request is outstanding.
	Resending bool `json:"resending"`
}

// Remaining returns the validity left at now, never negative.
func (v Verification) Remaining(now time.Time) time.Duration {
	if d := v.Deadline.Sub(now); d > 0 {
		return d
	}

	return 0
}

// Expired reports whether the countdown has run out at now.
func (v Verification) Expired(now time.Time) bool {
	return !now.Before(v.Deadline)
}

// State is one variant of the flow.
type State interface {
	Name() string
	isState()
}

// Unauthenticated is the idle state: no flow is in progress.
type Unauthenticated struct{}

// MobileEntered is the mobile-entry step. Sending is true while the OTP request is out.
// For a profile change the step is entered with Sending already set and Change attached.
type MobileEntered struct {
	Purpose Purpose        `json:"purpose"`
	Mobile  string         `json:"mobile"`
	Change  *ProfileChange `json:"change,omitempty"`
	Sending bool           `json:"sending"`
	Err     string         `json:"error,omitempty"`
}

// RegistrationDetailsEntered collects the profile fields of a new user.
type RegistrationDetailsEntered struct {
	Mobile  string                     `json:"mobile"`
	Details entity.RegistrationDetails `json:"details"`
	Sending bool                       `json:"sending"`
	Err     string                     `json:"error,omitempty"`
}

// OtpRequested waits for the user to enter the OTP of a registration or login.
type OtpRequested struct {
	Verification Verification    `json:"verification"`
	Input        entity.OTPInput `json:"-"`
	Err          string          `json:"error,omitempty"`
	Notice       string          `json:"notice,omitempty"`
}

// ProfileMobileChangePending waits for the OTP sent to a new mobile number.
type ProfileMobileChangePending struct {
	Verification Verification    `json:"verification"`
	Input        entity.OTPInput `json:"-"`
	Err          string          `json:"error,omitempty"`
	Notice       string          `json:"notice,omitempty"`
}

// OtpVerifying holds the submitted code while the backend checks it.
type OtpVerifying struct {
	Verification Verification `json:"verification"`
	Code         string       `json:"-"`
}

// Authenticated is terminal: the session payload was received.
type Authenticated struct {
	Session entity.Session `json:"-"`
	Next    entity.Route   `json:"next"`
	Flash   string         `json:"flash,omitempty"`
}

func (Unauthenticated) Name() string            { return "Unauthenticated" }
func (MobileEntered) Name() string              { return "MobileEntered" }
func (RegistrationDetailsEntered) Name() string { return "RegistrationDetailsEntered" }
func (OtpRequested) Name() string               { return "OtpRequested" }
func (ProfileMobileChangePending) Name() string { return "ProfileMobileChangePending" }
func (OtpVerifying) Name() string               { return "OtpVerifying" }
func (Authenticated) Name() string              { return "Authenticated" }

func (Unauthenticated) isState()            {}
func (MobileEntered) isState()              {}
func (RegistrationDetailsEntered) isState() {}
func (OtpRequested) isState()               {}
func (ProfileMobileChangePending) isState() {}
func (OtpVerifying) isState()               {}
func (Authenticated) isState()              {}

// Event is an input to Transition.
type Event interface {
	isEvent()
}

type (
	// Begin starts a registration or login at the mobile-entry step.
	Begin struct{ Purpose Purpose }
	// BeginProfileChange starts verification of a new mobile number and sends its OTP.
	BeginProfileChange struct{ Change ProfileChange }
	// SubmitMobile submits the mobile-entry step.
	SubmitMobile struct{ Mobile string }
	// SubmitDetails submits already validated registration details.
	SubmitDetails struct{ Details entity.RegistrationDetails }
	// OTPSent reports a successful OTP request at Now with the countdown to apply.
	OTPSent struct {
		Now       time.Time
		Countdown time.Duration
	}
	// OTPSendFailed reports a failed OTP request.
	OTPSendFailed struct{ Message string }
	// EnterDigit sets one OTP slot. An empty value clears it.
	EnterDigit struct {
		Index int
		Value string
	}
	// SubmitOTP submits the entered code at Now.
	SubmitOTP struct{ Now time.Time }
	// Verified reports that the backend accepted the code.
	Verified struct{ Session entity.Session }
	// VerifyFailed reports that the backend rejected the code or could not be reached.
	VerifyFailed struct{ Message string }
	// Resend asks for a new OTP for the same mobile and purpose.
	Resend struct{}
	// Resent reports a successful resend at Now.
	Resent struct {
		Now       time.Time
		Countdown time.Duration
	}
	// ResendFailed reports a failed resend.
	ResendFailed struct{ Message string }
	// Abandon leaves the flow; any pending verification is discarded.
	Abandon struct{}
)

func (Begin) isEvent()              {}
func (BeginProfileChange) isEvent() {}
func (SubmitMobile) isEvent()       {}
func (SubmitDetails) isEvent()      {}
func (OTPSent) isEvent()            {}
func (OTPSendFailed) isEvent()      {}
func (EnterDigit) isEvent()         {}
func (SubmitOTP) isEvent()          {}
func (Verified) isEvent()           {}
func (VerifyFailed) isEvent()       {}
func (Resend) isEvent()             {}
func (Resent) isEvent()             {}
func (ResendFailed) isEvent()       {}
func (Abandon) isEvent()            {}

// Effect is work the caller must perform after a transition.
type Effect interface {
	isEffect()
}

type (
	// SendOTP issues the first OTP of a verification.
	SendOTP struct {
		Mobile  string
		Purpose Purpose
	}
	// ResendOTP reissues the OTP of the pending verification.
	ResendOTP struct {
		Mobile  string
		Purpose Purpose
	}
	// VerifyOTP submits the code for the pending verification.
	VerifyOTP struct {
		Verification Verification
		Code         string
	}
)

func (SendOTP) isEffect()   {}
func (ResendOTP) isEffect() {}
func (VerifyOTP) isEffect() {}

// Transition computes the next state. On error no effects are returned and the state is
// either s unchanged or s carrying the inline error message to render.
func Transition(s State, e Event) (State, []Effect, error) {
	if s == nil {
		s = Unauthenticated{}
	}

	switch ev := e.(type) {
	case Begin:
		if ev.Purpose != PurposeRegistration && ev.Purpose != PurposeLogin {
			return s, nil, illegal(s, e)
		}

		return MobileEntered{Purpose: ev.Purpose}, nil, nil
	case BeginProfileChange:
		return beginProfileChange(s, ev)
	case Abandon:
		return Unauthenticated{}, nil, nil
	}

	switch st := s.(type) {
	case MobileEntered:
		return fromMobileEntered(st, e)
	case RegistrationDetailsEntered:
		return fromDetails(st, e)
	case OtpRequested:
		next, effects, err := fromPending(st.Verification, st.Input, e)
		if err != nil {
			return s, nil, err
		}

		return next, effects, nil
	case ProfileMobileChangePending:
		next, effects, err := fromPending(st.Verification, st.Input, e)
		if err != nil {
			return s, nil, err
		}

		return next, effects, nil
	case OtpVerifying:
		return fromVerifying(st, e)
	}

	return s, nil, illegal(s, e)
}

func beginProfileChange(s State, ev BeginProfileChange) (State, []Effect, error) {
	if _, busy := s.(OtpVerifying); busy {
		return s, nil, illegal(s, ev)
	}
	if !entity.IsCompleteMobile(ev.Change.MobileNumber) {
		return s, nil, errors.WithStack(domainerrors.NewValidationError("mobileNumber", InvalidMobileMessage))
	}

	change := ev.Change
	next := MobileEntered{
		Purpose: PurposeProfileMobileChange,
		Mobile:  change.MobileNumber,
		Change:  &change,
		Sending: true,
	}

	return next, []Effect{SendOTP{Mobile: change.MobileNumber, Purpose: PurposeProfileMobileChange}}, nil
}

func fromMobileEntered(st MobileEntered, e Event) (State, []Effect, error) {
	switch ev := e.(type) {
	case SubmitMobile:
		if st.Purpose == PurposeProfileMobileChange {
			return st, nil, illegal(st, e)
		}
		if st.Sending {
			return st, nil, errors.WithStack(domainerrors.ErrRequestInFlight)
		}
		if !entity.IsCompleteMobile(ev.Mobile) {
			st.Mobile = ev.Mobile
			st.Err = InvalidMobileMessage

			return st, nil, errors.WithStack(domainerrors.NewValidationError("mobileNumber", InvalidMobileMessage))
		}
		st.Mobile = ev.Mobile
		st.Sending = true
		st.Err = ""

		return st, []Effect{SendOTP{Mobile: ev.Mobile, Purpose: st.Purpose}}, nil

	case OTPSent:
		if !st.Sending {
			return st, nil, illegal(st, e)
		}

		switch st.Purpose {
		case PurposeRegistration:
			return RegistrationDetailsEntered{Mobile: st.Mobile}, nil, nil
		case PurposeProfileMobileChange:
			return ProfileMobileChangePending{Verification: Verification{
				Mobile:   st.Mobile,
				Purpose:  st.Purpose,
				Change:   st.Change,
				Deadline: ev.Now.Add(ev.Countdown),
			}}, nil, nil
		default:
			return OtpRequested{Verification: Verification{
				Mobile:   st.Mobile,
				Purpose:  st.Purpose,
				Deadline: ev.Now.Add(ev.Countdown),
			}}, nil, nil
		}

	case OTPSendFailed:
		if !st.Sending {
			return st, nil, illegal(st, e)
		}
		st.Sending = false
		st.Err = ev.Message

		return st, nil, nil
	}

	return st, nil, illegal(st, e)
}

func fromDetails(st RegistrationDetailsEntered, e Event) (State, []Effect, error) {
	switch ev := e.(type) {
	case SubmitDetails:
		if st.Sending {
			return st, nil, errors.WithStack(domainerrors.ErrRequestInFlight)
		}
		st.Details = ev.Details
		st.Sending = true
		st.Err = ""

		return st, []Effect{SendOTP{Mobile: st.Mobile, Purpose: PurposeRegistration}}, nil

	case OTPSent:
		if !st.Sending {
			return st, nil, illegal(st, e)
		}
		details := st.Details

		return OtpRequested{Verification: Verification{
			Mobile:   st.Mobile,
			Purpose:  PurposeRegistration,
			Details:  &details,
			Deadline: ev.Now.Add(ev.Countdown),
		}}, nil, nil

	case OTPSendFailed:
		if !st.Sending {
			return st, nil, illegal(st, e)
		}
		st.Sending = false
		st.Err = ev.Message

		return st, nil, nil
	}

	return st, nil, illegal(st, e)
}

// fromPending handles OtpRequested and ProfileMobileChangePending, which differ only in
// the purpose their verification carries.
func fromPending(v Verification, input entity.OTPInput, e Event) (State, []Effect, error) {
	switch ev := e.(type) {
	case EnterDigit:
		next, ok := input.Set(ev.Index, ev.Value)
		if !ok {
			return nil, nil, errors.WithStack(domainerrors.ErrInvalidOTPDigit)
		}

		return pending(v, next, "", ""), nil, nil

	case SubmitOTP:
		if v.Resending {
			return nil, nil, errors.WithStack(domainerrors.ErrRequestInFlight)
		}
		if !input.Complete() {
			return nil, nil, errors.WithStack(domainerrors.ErrIncompleteOTP)
		}
		if v.Expired(ev.Now) {
			return nil, nil, errors.WithStack(domainerrors.ErrOTPExpired)
		}
		code := input.Code()

		return OtpVerifying{Verification: v, Code: code}, []Effect{VerifyOTP{Verification: v, Code: code}}, nil

	case Resend:
		if v.Resending {
			return pending(v, input, "", ""), nil, nil
		}
		v.Resending = true

		return pending(v, input, "", ""), []Effect{ResendOTP{Mobile: v.Mobile, Purpose: v.Purpose}}, nil

	case Resent:
		if !v.Resending {
			return nil, nil, errors.WithStack(domainerrors.ErrIllegalTransition.WithDetails("no resend in flight"))
		}
		v.Resending = false
		v.Deadline = ev.Now.Add(ev.Countdown)

		return pending(v, entity.OTPInput{}, "", OTPResentMessage), nil, nil

	case ResendFailed:
		if !v.Resending {
			return nil, nil, errors.WithStack(domainerrors.ErrIllegalTransition.WithDetails("no resend in flight"))
		}
		v.Resending = false

		return pending(v, input, ev.Message, ""), nil, nil
	}

	return nil, nil, errors.WithStack(domainerrors.ErrIllegalTransition.WithDetails(fmt.Sprintf("%T while awaiting OTP", e)))
}

func fromVerifying(st OtpVerifying, e Event) (State, []Effect, error) {
	switch ev := e.(type) {
	case Verified:
		if !ev.Session.Authenticated() {
			return st, nil, errors.WithStack(domainerrors.ErrIllegalTransition.WithDetails("verified without a session"))
		}

		switch st.Verification.Purpose {
		case PurposeRegistration:
			return Authenticated{Session: ev.Session, Next: entity.RouteLogin, Flash: RegistrationSuccessMessage}, nil, nil
		default:
			return Authenticated{Session: ev.Session, Next: entity.RouteDashboard}, nil, nil
		}

	case VerifyFailed:
		// Digits are cleared so the user starts again from the first slot.
		return pending(st.Verification, entity.OTPInput{}, ev.Message, ""), nil, nil
	}

	return st, nil, illegal(st, e)
}

func pending(v Verification, input entity.OTPInput, errMsg, notice string) State {
	if v.Purpose == PurposeProfileMobileChange {
		return ProfileMobileChangePending{Verification: v, Input: input, Err: errMsg, Notice: notice}
	}

	return OtpRequested{Verification: v, Input: input, Err: errMsg, Notice: notice}
}

// PendingVerification returns the verification of s, if any.
func PendingVerification(s State) (Verification, bool) {
	switch st := s.(type) {
	case OtpRequested:
		return st.Verification, true
	case ProfileMobileChangePending:
		return st.Verification, true
	case OtpVerifying:
		return st.Verification, true
	}

	return Verification{}, false
}

// OTPInputOf returns the entered digits of s, if s accepts digits.
func OTPInputOf(s State) (entity.OTPInput, bool) {
	switch st := s.(type) {
	case OtpRequested:
		return st.Input, true
	case ProfileMobileChangePending:
		return st.Input, true
	}

	return entity.OTPInput{}, false
}

// CanVerify reports whether the verify action is enabled in s.
func CanVerify(s State) bool {
	input, ok := OTPInputOf(s)
	if !ok || !input.Complete() {
		return false
	}
	v, pending := PendingVerification(s)

	return !pending || !v.Resending
}

func illegal(s State, e Event) error {
	return errors.WithStack(domainerrors.ErrIllegalTransition.WithDetails(fmt.Sprintf("%T in %s", e, s.Name())))
}
