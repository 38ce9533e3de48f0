package handler

import (
	"time"

	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	"growguard/internal/domain/flow"
	"growguard/internal/usecase"
	"growguard/internal/util"

	"github.com/labstack/echo/v4"
)

// FlowView is the registration, login and mobile verification screens.
type FlowView struct {
	State     string                      `json:"state"`
	Purpose   flow.Purpose                `json:"purpose,omitempty"`
	Mobile    string                      `json:"mobile,omitempty"`
	Sending   bool                        `json:"sending"`
	Details   *entity.RegistrationDetails `json:"details,omitempty"`
	Provinces []string                    `json:"provinces,omitempty"`
	Digits    []string                    `json:"digits,omitempty"`
	CanVerify bool                        `json:"canVerify"`
	Resending bool                        `json:"resending"`
	Countdown string                      `json:"countdown,omitempty"`
	Expired   bool                        `json:"expired"`
	Err       string                      `json:"error,omitempty"`
	Notice    string                      `json:"notice,omitempty"`
}

type mobileRequest struct {
	MobileNumber string `json:"mobileNumber" form:"mobileNumber"`
}

type digitRequest struct {
	Index int    `json:"index" form:"index"`
	Value string `json:"value" form:"value"`
}

type verifyRequest struct {
	// Code optionally fills every slot at once, e.g. from a pasted OTP.
	Code string `json:"code" form:"code"`
}

// AuthHandler serves the registration and login screens.
type AuthHandler struct {
	auth      usecase.AuthUsecase
	navigator usecase.NavigatorUsecase
	screens   *ScreenRenderer
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, navigator usecase.NavigatorUsecase, screens *ScreenRenderer) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		navigator: navigator,
		screens:   screens,
	}
}

// ShowMobile renders the mobile-entry screen of purpose, starting a new flow unless one is
// already on that step.
func (h *AuthHandler) ShowMobile(purpose flow.Purpose) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.ensureMobile(c, purpose); err != nil {
			return response.HandleAppError(c, err)
		}

		return h.render(c)
	}
}

// SubmitMobile handles the mobile-entry form of purpose.
func (h *AuthHandler) SubmitMobile(purpose flow.Purpose) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req mobileRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid mobile number input")
		}

		if err := h.ensureMobile(c, purpose); err != nil {
			return response.HandleAppError(c, err)
		}
		if _, err := h.auth.SubmitMobile(c.Request().Context(), req.MobileNumber); err != nil {
			return h.reject(c, err)
		}

		return h.render(c)
	}
}

// ShowDetails renders the registration details screen.
func (h *AuthHandler) ShowDetails(c echo.Context) error {
	if _, ok := h.auth.State().(flow.RegistrationDetailsEntered); !ok {
		return h.restart(c, flow.PurposeRegistration)
	}

	return h.render(c)
}

// SubmitDetails handles the registration details form and sends the registration OTP.
func (h *AuthHandler) SubmitDetails(c echo.Context) error {
	var details entity.RegistrationDetails
	if err := c.Bind(&details); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration details")
	}

	if _, err := h.auth.SubmitDetails(c.Request().Context(), details); err != nil {
		return h.reject(c, err)
	}

	return h.render(c)
}

// ShowOTP renders the OTP screen of purpose. Without a pending verification the client
// is sent back to the mobile-entry step.
func (h *AuthHandler) ShowOTP(purpose flow.Purpose) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := flow.PendingVerification(h.auth.State()); !ok {
			return h.restart(c, purpose)
		}

		return h.render(c)
	}
}

// EnterDigit sets one slot of the OTP entry.
func (h *AuthHandler) EnterDigit(c echo.Context) error {
	var req digitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP digit")
	}

	if _, err := h.auth.EnterDigit(c.Request().Context(), req.Index, req.Value); err != nil {
		return h.reject(c, err)
	}

	return h.render(c)
}

// Verify submits the entered OTP. A full code in the body replaces the entered digits.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP input")
	}

	ctx := c.Request().Context()
	for i := 0; i < len(req.Code); i++ {
		if _, err := h.auth.EnterDigit(ctx, i, req.Code[i:i+1]); err != nil {
			return h.reject(c, err)
		}
	}

	if _, err := h.auth.SubmitOTP(ctx); err != nil {
		return h.reject(c, err)
	}

	return h.render(c)
}

// Resend asks for a new OTP. A resend already in flight is not repeated.
func (h *AuthHandler) Resend(c echo.Context) error {
	if _, err := h.auth.Resend(c.Request().Context()); err != nil {
		return h.reject(c, err)
	}

	return h.render(c)
}

// Back leaves the OTP screen. A pending mobile change returns to the profile, anything
// else to the mobile-entry step of purpose.
func (h *AuthHandler) Back(purpose flow.Purpose) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if _, changing := h.auth.State().(flow.ProfileMobileChangePending); changing {
			h.auth.Abandon(ctx)
			h.navigator.Navigate(entity.RouteProfile, "")

			return h.render(c)
		}

		h.auth.Abandon(ctx)

		return h.restart(c, purpose)
	}
}

func (h *AuthHandler) ensureMobile(c echo.Context, purpose flow.Purpose) error {
	if st, ok := h.auth.State().(flow.MobileEntered); ok && st.Purpose == purpose {
		return nil
	}
	_, err := h.auth.Begin(c.Request().Context(), purpose)

	return err
}

func (h *AuthHandler) restart(c echo.Context, purpose flow.Purpose) error {
	if _, err := h.auth.Begin(c.Request().Context(), purpose); err != nil {
		return response.HandleAppError(c, err)
	}
	h.navigator.Navigate(mobileRoute(purpose), "")

	return h.render(c)
}

// reject answers a refused event. Failed backend calls never get here; the flow keeps
// their message inline.
func (h *AuthHandler) reject(c echo.Context, err error) error {
	return response.HandleAppError(c, err)
}

func (h *AuthHandler) render(c echo.Context) error {
	return h.screens.Render(c, flowView(h.auth.State(), h.auth.Remaining()))
}

func mobileRoute(purpose flow.Purpose) entity.Route {
	if purpose == flow.PurposeRegistration {
		return entity.RouteRegister
	}

	return entity.RouteLogin
}

func displayMobile(mobile string) string {
	if mobile == "" {
		return ""
	}

	return entity.CountryPrefix + mobile
}

func flowView(state flow.State, remaining time.Duration) *FlowView {
	view := &FlowView{State: state.Name()}

	switch st := state.(type) {
	case flow.MobileEntered:
		view.Purpose = st.Purpose
		view.Mobile = displayMobile(st.Mobile)
		view.Sending = st.Sending
		view.Err = st.Err
	case flow.RegistrationDetailsEntered:
		details := st.Details
		view.Purpose = flow.PurposeRegistration
		view.Mobile = displayMobile(st.Mobile)
		view.Sending = st.Sending
		view.Details = &details
		view.Provinces = entity.Provinces
		view.Err = st.Err
	case flow.OtpRequested:
		view.Err = st.Err
		view.Notice = st.Notice
	case flow.ProfileMobileChangePending:
		view.Err = st.Err
		view.Notice = st.Notice
	case flow.OtpVerifying:
		view.Sending = true
	case flow.Authenticated:
		view.Notice = st.Flash
	}

	if v, ok := flow.PendingVerification(state); ok {
		view.Purpose = v.Purpose
		view.Mobile = displayMobile(v.Mobile)
		view.Resending = v.Resending
		view.Countdown = util.FormatCountdown(remaining)
		view.Expired = remaining <= 0
	}
	if input, ok := flow.OTPInputOf(state); ok {
		view.Digits = input.Slots()
		view.CanVerify = flow.CanVerify(state)
	}

	return view
}
