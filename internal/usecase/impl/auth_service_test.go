package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/flow"
	"growguard/internal/domain/i18n"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/infra/validation"
	mockService "growguard/internal/mocks/service"
	"growguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMobile = "3001234567"

// authServiceFixtures holds all test dependencies for auth flow tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	gateway   *mockService.MockGateway
	session   usecase.SessionUsecase
	navigator usecase.NavigatorUsecase
	texts     *i18n.Table
	clock     *fakeClock
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	gateway := mockService.NewMockGateway(t)
	store := newMemStore(t)
	logger := newDiscardLogger()
	navigator := NewNavigatorService(logger)
	session := newTestSession(t, store, navigator)
	texts := newTestTable(t)
	clock := newFakeClock()
	cfg := newTestConfig()

	srv := NewAuthService(AuthServiceParams{
		Config:    cfg,
		Gateway:   gateway,
		Session:   session,
		Navigator: navigator,
		Language:  NewLanguageService(cfg, store, logger),
		Texts:     texts,
		Validator: validation.New(),
		Clock:     clock.Now,
		Logger:    logger,
	})

	return authServiceFixtures{
		service:   srv,
		gateway:   gateway,
		session:   session,
		navigator: navigator,
		texts:     texts,
		clock:     clock,
	}
}

func enterCode(t *testing.T, srv usecase.AuthUsecase, code string) {
	t.Helper()

	for i, d := range code {
		_, err := srv.EnterDigit(context.Background(), i, string(d))
		require.NoError(t, err)
	}
}

func validDetails() entity.RegistrationDetails {
	return entity.RegistrationDetails{
		Name:     "Ali",
		Surname:  "Khan",
		Province: "Punjab",
		District: "Lahore",
		Tehsil:   "Model Town",
		Village:  "Green Village",
	}
}

func TestAuthService_Registration_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeRegistration)
	require.NoError(t, err)

	fx.gateway.EXPECT().SendRegistrationOTP(mock.Anything, testMobile).Return("OTP sent", nil).Twice()

	state, err := fx.service.SubmitMobile(ctx, "300-123-4567")
	require.NoError(t, err)
	assert.IsType(t, flow.RegistrationDetailsEntered{}, state)
	assert.Equal(t, entity.RouteDetails, fx.navigator.Current().Route)

	state, err = fx.service.SubmitDetails(ctx, validDetails())
	require.NoError(t, err)
	requested, ok := state.(flow.OtpRequested)
	require.True(t, ok, "got %s", state.Name())
	assert.Equal(t, fx.clock.Now().Add(30*time.Second), requested.Verification.Deadline)
	assert.Equal(t, entity.RouteRegisterOTP, fx.navigator.Current().Route)

	user := &entity.User{ID: 7, Name: "Ali", MobileNumber: testMobile}
	fx.gateway.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *service.RegisterInput) bool {
			return in.OTPCode == "1234" && in.MobileNumber == testMobile && in.Name == "Ali"
		})).
		Return(&service.AuthResult{Token: "token-7", User: user}, nil).
		Once()

	enterCode(t, fx.service, "1234")
	state, err = fx.service.SubmitOTP(ctx)
	require.NoError(t, err)

	assert.IsType(t, flow.Authenticated{}, state)
	assert.Equal(t, "token-7", fx.session.Token())
	assert.Equal(t, entity.Location{Route: entity.RouteLogin, Flash: flow.RegistrationSuccessMessage}, fx.navigator.Current())
}

func TestAuthService_Registration_AlreadyRegisteredIsTranslated(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeRegistration)
	require.NoError(t, err)

	fx.gateway.EXPECT().
		SendRegistrationOTP(mock.Anything, testMobile).
		Return("", domainerrors.NewHTTPError("POST /auth/send-registration-otp", http.StatusBadRequest, "Mobile number already registered")).
		Once()

	state, err := fx.service.SubmitMobile(ctx, testMobile)
	require.NoError(t, err)

	entered, ok := state.(flow.MobileEntered)
	require.True(t, ok)
	assert.False(t, entered.Sending)
	assert.Equal(t, fx.texts.Get("register", "alreadyRegistered", entity.LanguageEnglish), entered.Err)
}

func TestAuthService_SubmitDetails_ValidationFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeRegistration)
	require.NoError(t, err)
	fx.gateway.EXPECT().SendRegistrationOTP(mock.Anything, testMobile).Return("OTP sent", nil).Once()
	_, err = fx.service.SubmitMobile(ctx, testMobile)
	require.NoError(t, err)

	details := validDetails()
	details.Name = ""
	state, err := fx.service.SubmitDetails(ctx, details)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	entered, ok := state.(flow.RegistrationDetailsEntered)
	require.True(t, ok)
	assert.Equal(t, "Please fill in all required fields", entered.Err)
}

func TestAuthService_SubmitMobile_InvalidMakesNoCall(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeLogin)
	require.NoError(t, err)

	state, err := fx.service.SubmitMobile(ctx, "12345")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, flow.InvalidMobileMessage, state.(flow.MobileEntered).Err)
}

func loginUntilOTP(t *testing.T, fx authServiceFixtures) {
	t.Helper()
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeLogin)
	require.NoError(t, err)
	fx.gateway.EXPECT().SendLoginOTP(mock.Anything, testMobile).Return("OTP sent", nil).Once()

	state, err := fx.service.SubmitMobile(ctx, testMobile)
	require.NoError(t, err)
	require.IsType(t, flow.OtpRequested{}, state)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	assert.Equal(t, entity.RouteLoginOTP, fx.navigator.Current().Route)
	assert.Equal(t, 180*time.Second, fx.service.Remaining())

	fx.clock.Advance(time.Minute)
	assert.Equal(t, 120*time.Second, fx.service.Remaining())

	fx.gateway.EXPECT().
		Login(mock.Anything, testMobile, "4321").
		Return(&service.AuthResult{Token: "token-1", User: &entity.User{ID: 1, MobileNumber: testMobile}}, nil).
		Once()

	enterCode(t, fx.service, "4321")
	state, err := fx.service.SubmitOTP(ctx)
	require.NoError(t, err)

	assert.IsType(t, flow.Authenticated{}, state)
	assert.True(t, fx.session.IsAuthenticated())
	assert.Equal(t, entity.RouteDashboard, fx.navigator.Current().Route)
	assert.Zero(t, fx.service.Remaining())
}

func TestAuthService_Login_RejectedCodeClearsDigits(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	fx.gateway.EXPECT().
		Login(mock.Anything, testMobile, "1111").
		Return(nil, domainerrors.NewHTTPError("POST /auth/login", http.StatusBadRequest, "Invalid OTP")).
		Once()

	enterCode(t, fx.service, "1111")
	state, err := fx.service.SubmitOTP(ctx)
	require.NoError(t, err)

	requested, ok := state.(flow.OtpRequested)
	require.True(t, ok)
	assert.Equal(t, "Invalid OTP", requested.Err)
	assert.Equal(t, entity.OTPInput{}, requested.Input)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_NetworkFailureUsesFallback(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	fx.gateway.EXPECT().
		Login(mock.Anything, testMobile, "1111").
		Return(nil, errors.New("connection reset")).
		Once()

	enterCode(t, fx.service, "1111")
	state, err := fx.service.SubmitOTP(ctx)
	require.NoError(t, err)
	assert.Equal(t, loginFailedMessage, state.(flow.OtpRequested).Err)
}

func TestAuthService_SubmitOTP_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	enterCode(t, fx.service, "1234")
	fx.clock.Advance(181 * time.Second)

	_, err := fx.service.SubmitOTP(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPExpired))
}

func TestAuthService_SubmitOTP_Incomplete(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	enterCode(t, fx.service, "12")

	_, err := fx.service.SubmitOTP(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncompleteOTP))
}

func TestAuthService_Resend_RestartsCountdown(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	enterCode(t, fx.service, "12")
	fx.clock.Advance(100 * time.Second)

	fx.gateway.EXPECT().ResendOTP(mock.Anything, testMobile, service.OTPPurposeLogin).Return("OTP resent", nil).Once()

	state, err := fx.service.Resend(ctx)
	require.NoError(t, err)

	requested := state.(flow.OtpRequested)
	assert.Equal(t, flow.OTPResentMessage, requested.Notice)
	assert.Equal(t, entity.OTPInput{}, requested.Input)
	assert.Equal(t, 180*time.Second, fx.service.Remaining())
}

func TestAuthService_Resend_FailureKeepsDeadline(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	loginUntilOTP(t, fx)
	fx.clock.Advance(100 * time.Second)

	fx.gateway.EXPECT().
		ResendOTP(mock.Anything, testMobile, service.OTPPurposeLogin).
		Return("", errors.New("boom")).
		Once()

	state, err := fx.service.Resend(ctx)
	require.NoError(t, err)
	assert.Equal(t, resendOTPFailedMessage, state.(flow.OtpRequested).Err)
	assert.Equal(t, 80*time.Second, fx.service.Remaining())
}

func TestAuthService_AbandonDuringSendDiscardsOutcome(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, flow.PurposeLogin)
	require.NoError(t, err)

	fx.gateway.EXPECT().
		SendLoginOTP(mock.Anything, testMobile).
		Run(func(ctx context.Context, mobile string) {
			fx.service.Abandon(ctx)
		}).
		Return("OTP sent", nil).
		Once()

	state, err := fx.service.SubmitMobile(ctx, testMobile)
	require.NoError(t, err)
	assert.IsType(t, flow.Unauthenticated{}, state)
	assert.NotEqual(t, entity.RouteLoginOTP, fx.navigator.Current().Route)
}

func TestAuthService_ProfileMobileChange_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.session.Establish(ctx, "token-1", &entity.User{ID: 1, MobileNumber: testMobile, Email: "old@example.com"})
	require.NoError(t, err)

	const newMobile = "3119876543"
	fx.gateway.EXPECT().SendLoginOTP(mock.Anything, newMobile).Return("OTP sent", nil).Once()

	state, err := fx.service.BeginProfileChange(ctx, flow.ProfileChange{MobileNumber: newMobile, Email: "new@example.com"})
	require.NoError(t, err)
	require.IsType(t, flow.ProfileMobileChangePending{}, state)
	assert.Equal(t, entity.RouteLoginOTP, fx.navigator.Current().Route)

	fx.gateway.EXPECT().
		UpdateProfile(mock.Anything, mock.MatchedBy(func(u *service.ProfileUpdate) bool {
			return u.OTPCode != nil && *u.OTPCode == "9999" && u.MobileNumber == newMobile && u.Email == "new@example.com"
		})).
		Return(&entity.User{ID: 1, MobileNumber: newMobile, Email: "new@example.com"}, nil).
		Once()

	enterCode(t, fx.service, "9999")
	state, err = fx.service.SubmitOTP(ctx)
	require.NoError(t, err)

	assert.IsType(t, flow.Authenticated{}, state)
	assert.Equal(t, newMobile, fx.session.Current().User.MobileNumber)
	assert.Equal(t, "token-1", fx.session.Token())
	assert.Equal(t, entity.RouteDashboard, fx.navigator.Current().Route)
}
