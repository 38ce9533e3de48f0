// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/flow"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"go.uber.org/fx"
)

// ProfileServiceParams holds dependencies for the profile screen, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Gateway   service.Gateway
	Session   usecase.SessionUsecase
	Auth      usecase.AuthUsecase
	Navigator usecase.NavigatorUsecase
	Validator service.Validator
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	gateway   service.Gateway
	session   usecase.SessionUsecase
	auth      usecase.AuthUsecase
	navigator usecase.NavigatorUsecase
	validator service.Validator
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		gateway:   params.Gateway,
		session:   params.Session,
		auth:      params.Auth,
		navigator: params.Navigator,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load fetches the profile, refreshing the cached copy. When the backend cannot be
// reached the cached profile is shown instead.
func (srv *profileService) Load(ctx context.Context) (*usecase.ProfileView, error) {
	current := srv.session.Current()
	if !current.Authenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	user, err := srv.gateway.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAuthExpired) || current.User == nil {
			return nil, errors.Wrap(err, "failed to load profile")
		}
		srv.log(ctx).Warn("Showing cached profile", slog.Any("error", err))

		return &usecase.ProfileView{User: current.User, FromCache: true}, nil
	}

	if err := srv.session.UpdateUser(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store profile", slog.Any("error", err))
	}

	return &usecase.ProfileView{User: user.Clone()}, nil
}

// Update saves email and address directly. A new mobile number must first be verified,
// so an OTP is sent to it and the change completes on the OTP screen.
func (srv *profileService) Update(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileUpdateResult, error) {
	input.MobileNumber = entity.SanitizeMobile(input.MobileNumber)
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	current := srv.session.Current()
	if !current.Authenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	if current.User == nil || current.User.MobileNumber != input.MobileNumber {
		return srv.changeMobile(ctx, input)
	}

	user, err := srv.gateway.UpdateProfile(ctx, &service.ProfileUpdate{
		Email:   input.Email,
		Address: input.Address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	if err := srv.session.UpdateUser(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store profile", slog.Any("error", err))
	}
	srv.log(ctx).Info("Profile updated")
	srv.navigator.Navigate(entity.RouteDashboard, "")

	return &usecase.ProfileUpdateResult{User: user.Clone()}, nil
}

func (srv *profileService) changeMobile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileUpdateResult, error) {
	state, err := srv.auth.BeginProfileChange(ctx, flow.ProfileChange{
		MobileNumber: input.MobileNumber,
		Email:        input.Email,
		Address:      input.Address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start mobile verification")
	}

	switch st := state.(type) {
	case flow.ProfileMobileChangePending:
		return &usecase.ProfileUpdateResult{VerificationRequired: true}, nil
	case flow.MobileEntered:
		return &usecase.ProfileUpdateResult{Err: st.Err}, nil
	}

	return &usecase.ProfileUpdateResult{}, nil
}
