package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"growguard/config"
	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/flow"
	"growguard/internal/domain/i18n"
	"growguard/internal/domain/service"
	"growguard/internal/usecase"

	"go.uber.org/fx"
)

const (
	sendOTPFailedMessage      = "Failed to send OTP. Please try again."
	resendOTPFailedMessage    = "Failed to resend OTP. Please try again."
	registrationFailedMessage = "Registration failed. Please try again."
	loginFailedMessage        = "Login failed. Please try again."
	profileFailedMessage      = "Failed to update profile. Please try again."
)

// AuthServiceParams holds dependencies for the auth flow, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config    *config.Config
	Gateway   service.Gateway
	Session   usecase.SessionUsecase
	Navigator usecase.NavigatorUsecase
	Language  usecase.LanguageUsecase
	Texts     *i18n.Table
	Validator service.Validator
	Clock     service.Clock
	Logger    *slog.Logger
}

// authService implements the AuthUsecase interface around the pure flow.Transition.
type authService struct {
	gateway   service.Gateway
	session   usecase.SessionUsecase
	navigator usecase.NavigatorUsecase
	language  usecase.LanguageUsecase
	texts     *i18n.Table
	validator service.Validator
	clock     service.Clock
	logger    *slog.Logger

	loginCountdown        time.Duration
	registrationCountdown time.Duration

	mu    sync.Mutex
	state flow.State
	// epoch changes whenever a flow is started or abandoned; outcomes of effects issued
	// under an older epoch are discarded.
	epoch uint64
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		gateway:               params.Gateway,
		session:               params.Session,
		navigator:             params.Navigator,
		language:              params.Language,
		texts:                 params.Texts,
		validator:             params.Validator,
		clock:                 params.Clock,
		logger:                params.Logger,
		loginCountdown:        180 * time.Second,
		registrationCountdown: 30 * time.Second,
		state:                 flow.Unauthenticated{},
	}
	if cfg := params.Config.OTP; cfg != nil {
		if cfg.LoginCountdown > 0 {
			srv.loginCountdown = cfg.LoginCountdown
		}
		if cfg.RegistrationCountdown > 0 {
			srv.registrationCountdown = cfg.RegistrationCountdown
		}
	}
	if srv.clock == nil {
		srv.clock = time.Now
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) State() flow.State {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

func (srv *authService) Remaining() time.Duration {
	v, ok := flow.PendingVerification(srv.State())
	if !ok {
		return 0
	}

	return v.Remaining(srv.clock())
}

func (srv *authService) Begin(ctx context.Context, purpose flow.Purpose) (flow.State, error) {
	return srv.apply(ctx, flow.Begin{Purpose: purpose})
}

func (srv *authService) SubmitMobile(ctx context.Context, mobile string) (flow.State, error) {
	return srv.apply(ctx, flow.SubmitMobile{Mobile: entity.SanitizeMobile(mobile)})
}

func (srv *authService) SubmitDetails(ctx context.Context, details entity.RegistrationDetails) (flow.State, error) {
	if err := srv.validator.Validate(&details); err != nil {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		if st, ok := srv.state.(flow.RegistrationDetailsEntered); ok && !st.Sending {
			st.Details = details
			st.Err = domainerrors.UserMessage(err, "Please check your details")
			srv.state = st
		}

		return srv.state, err
	}

	return srv.apply(ctx, flow.SubmitDetails{Details: details})
}

func (srv *authService) EnterDigit(ctx context.Context, index int, value string) (flow.State, error) {
	return srv.apply(ctx, flow.EnterDigit{Index: index, Value: value})
}

func (srv *authService) SubmitOTP(ctx context.Context) (flow.State, error) {
	return srv.apply(ctx, flow.SubmitOTP{Now: srv.clock()})
}

func (srv *authService) Resend(ctx context.Context) (flow.State, error) {
	return srv.apply(ctx, flow.Resend{})
}

func (srv *authService) BeginProfileChange(ctx context.Context, change flow.ProfileChange) (flow.State, error) {
	return srv.apply(ctx, flow.BeginProfileChange{Change: change})
}

func (srv *authService) Abandon(ctx context.Context) flow.State {
	state, _ := srv.apply(ctx, flow.Abandon{})

	return state
}

// apply transitions on e, then runs the resulting effects one by one, feeding each
// outcome back. The lock is not held while the backend is called.
func (srv *authService) apply(ctx context.Context, e flow.Event) (flow.State, error) {
	srv.mu.Lock()
	next, effects, err := flow.Transition(srv.state, e)
	srv.state = next
	if err != nil {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Flow event rejected", slog.String("state", next.Name()), slog.Any("error", err))

		return next, err
	}
	switch e.(type) {
	case flow.Begin, flow.BeginProfileChange, flow.Abandon:
		srv.epoch++
	}
	epoch := srv.epoch
	srv.mu.Unlock()

	for _, effect := range effects {
		outcome := srv.run(ctx, effect)
		if !srv.feed(ctx, epoch, outcome) {
			break
		}
	}

	return srv.State(), nil
}

// feed applies the outcome of an effect. It reports false when the outcome was stale.
func (srv *authService) feed(ctx context.Context, epoch uint64, outcome flow.Event) bool {
	srv.mu.Lock()
	if epoch != srv.epoch {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Discarding outcome of an abandoned flow", slog.String("outcome", eventName(outcome)))

		return false
	}

	next, _, err := flow.Transition(srv.state, outcome)
	if err != nil {
		srv.mu.Unlock()
		srv.log(ctx).Warn("Flow outcome rejected", slog.String("outcome", eventName(outcome)), slog.Any("error", err))

		return false
	}
	srv.state = next
	srv.mu.Unlock()

	srv.navigateFor(next, outcome)

	return true
}

// navigateFor moves the client to the screen of the state an outcome led to.
func (srv *authService) navigateFor(state flow.State, outcome flow.Event) {
	if _, sent := outcome.(flow.OTPSent); !sent {
		if st, ok := state.(flow.Authenticated); ok {
			srv.navigator.Navigate(st.Next, st.Flash)
		}

		return
	}

	switch st := state.(type) {
	case flow.RegistrationDetailsEntered:
		srv.navigator.Navigate(entity.RouteDetails, "")
	case flow.OtpRequested:
		if st.Verification.Purpose == flow.PurposeRegistration {
			srv.navigator.Navigate(entity.RouteRegisterOTP, "")
		} else {
			srv.navigator.Navigate(entity.RouteLoginOTP, "")
		}
	case flow.ProfileMobileChangePending:
		srv.navigator.Navigate(entity.RouteLoginOTP, "")
	}
}

func (srv *authService) run(ctx context.Context, effect flow.Effect) flow.Event {
	switch eff := effect.(type) {
	case flow.SendOTP:
		var err error
		if eff.Purpose == flow.PurposeRegistration {
			_, err = srv.gateway.SendRegistrationOTP(ctx, eff.Mobile)
		} else {
			_, err = srv.gateway.SendLoginOTP(ctx, eff.Mobile)
		}
		if err != nil {
			srv.log(ctx).Warn("Failed to send OTP", slog.String("purpose", string(eff.Purpose)), slog.Any("error", err))

			return flow.OTPSendFailed{Message: srv.failureMessage(err, sendOTPFailedMessage)}
		}

		return flow.OTPSent{Now: srv.clock(), Countdown: srv.countdown(eff.Purpose)}

	case flow.ResendOTP:
		if _, err := srv.gateway.ResendOTP(ctx, eff.Mobile, eff.Purpose.OTPPurpose()); err != nil {
			srv.log(ctx).Warn("Failed to resend OTP", slog.String("purpose", string(eff.Purpose)), slog.Any("error", err))

			return flow.ResendFailed{Message: srv.failureMessage(err, resendOTPFailedMessage)}
		}

		return flow.Resent{Now: srv.clock(), Countdown: srv.countdown(eff.Purpose)}

	case flow.VerifyOTP:
		return srv.verify(ctx, eff)
	}

	return flow.VerifyFailed{Message: "Unsupported action"}
}

func (srv *authService) verify(ctx context.Context, eff flow.VerifyOTP) flow.Event {
	v := eff.Verification

	switch v.Purpose {
	case flow.PurposeRegistration:
		if v.Details == nil {
			return flow.VerifyFailed{Message: registrationFailedMessage}
		}
		result, err := srv.gateway.Register(ctx, &service.RegisterInput{
			RegistrationDetails: *v.Details,
			MobileNumber:        v.Mobile,
			OTPCode:             eff.Code,
		})
		if err != nil {
			return flow.VerifyFailed{Message: srv.failureMessage(err, registrationFailedMessage)}
		}

		return srv.establish(ctx, result)

	case flow.PurposeProfileMobileChange:
		if v.Change == nil {
			return flow.VerifyFailed{Message: profileFailedMessage}
		}
		code := eff.Code
		user, err := srv.gateway.UpdateProfile(ctx, &service.ProfileUpdate{
			Email:        v.Change.Email,
			Address:      v.Change.Address,
			MobileNumber: v.Change.MobileNumber,
			OTPCode:      &code,
		})
		if err != nil {
			return flow.VerifyFailed{Message: srv.failureMessage(err, profileFailedMessage)}
		}
		if err := srv.session.UpdateUser(ctx, user); err != nil {
			srv.log(ctx).Error("Failed to store updated profile", slog.Any("error", err))
		}
		current := srv.session.Current()
		if current == nil {
			return flow.VerifyFailed{Message: domainerrors.ErrNotAuthenticated.Message()}
		}

		return flow.Verified{Session: *current}

	default:
		result, err := srv.gateway.Login(ctx, v.Mobile, eff.Code)
		if err != nil {
			return flow.VerifyFailed{Message: srv.failureMessage(err, loginFailedMessage)}
		}

		return srv.establish(ctx, result)
	}
}

func (srv *authService) establish(ctx context.Context, result *service.AuthResult) flow.Event {
	session, err := srv.session.Establish(ctx, result.Token, result.User)
	if err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("error", err))
	}
	if session == nil {
		return flow.VerifyFailed{Message: loginFailedMessage}
	}

	return flow.Verified{Session: *session}
}

func (srv *authService) countdown(purpose flow.Purpose) time.Duration {
	if purpose == flow.PurposeRegistration {
		return srv.registrationCountdown
	}

	return srv.loginCountdown
}

// failureMessage is the inline message for a failed call. A duplicate registration is
// shown in the current language.
func (srv *authService) failureMessage(err error, fallback string) string {
	msg := domainerrors.UserMessage(err, fallback)
	if strings.Contains(strings.ToLower(msg), "already registered") {
		return srv.texts.Get("register", "alreadyRegistered", srv.language.Get())
	}

	return msg
}

func eventName(e flow.Event) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "flow.")
}
