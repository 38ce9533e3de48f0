package handler

import (
	"growguard/internal/delivery/http/response"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	loadProfileFailedMessage   = "Failed to load profile. Please try again."
	updateProfileFailedMessage = "Failed to update profile. Please try again."
)

// ProfileHandler serves the profile screen.
type ProfileHandler struct {
	profile usecase.ProfileUsecase
	screens *ScreenRenderer
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profile usecase.ProfileUsecase, screens *ScreenRenderer) *ProfileHandler {
	return &ProfileHandler{
		profile: profile,
		screens: screens,
	}
}

// Show loads the profile, falling back to the cached copy when the backend is unreachable.
func (h *ProfileHandler) Show(c echo.Context) error {
	view, err := h.profile.Load(c.Request().Context())
	if err != nil {
		return response.HandleFailure(c, err, loadProfileFailedMessage)
	}

	return h.screens.Render(c, view)
}

// Update saves the edit form. A changed mobile number continues on the OTP screen.
func (h *ProfileHandler) Update(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	result, err := h.profile.Update(c.Request().Context(), &input)
	if err != nil {
		if rejected(err) {
			return response.HandleAppError(c, err)
		}

		return response.HandleFailure(c, err, updateProfileFailedMessage)
	}

	return h.screens.Render(c, result)
}
