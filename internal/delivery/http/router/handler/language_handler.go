package handler

import (
	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LanguageView is the language selection screen.
type LanguageView struct {
	Selected  entity.Language   `json:"selected"`
	Available []entity.Language `json:"available"`
}

type languageRequest struct {
	Language entity.Language `json:"language" form:"language" validate:"required,language"`
}

// LanguageHandler serves the language selection screen and the header toggle.
type LanguageHandler struct {
	language  usecase.LanguageUsecase
	navigator usecase.NavigatorUsecase
	screens   *ScreenRenderer
}

// NewLanguageHandler is the constructor for LanguageHandler, injected by Fx.
func NewLanguageHandler(language usecase.LanguageUsecase, navigator usecase.NavigatorUsecase, screens *ScreenRenderer) *LanguageHandler {
	return &LanguageHandler{
		language:  language,
		navigator: navigator,
		screens:   screens,
	}
}

// Show renders the language selection screen.
func (h *LanguageHandler) Show(c echo.Context) error {
	return h.screens.Render(c, h.view())
}

// Select stores the chosen language and continues to registration.
func (h *LanguageHandler) Select(c echo.Context) error {
	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.language.Set(c.Request().Context(), req.Language); err != nil {
		return errors.Wrap(err, "set language")
	}
	h.navigator.Navigate(entity.RouteRegister, "")

	return h.screens.Render(c, h.view())
}

// Toggle flips the display language and re-renders the current screen's labels.
func (h *LanguageHandler) Toggle(c echo.Context) error {
	if _, err := h.language.Toggle(c.Request().Context()); err != nil {
		return errors.Wrap(err, "toggle language")
	}

	return h.screens.Render(c, h.view())
}

func (h *LanguageHandler) view() *LanguageView {
	return &LanguageView{
		Selected:  h.language.Get(),
		Available: []entity.Language{entity.LanguageEnglish, entity.LanguageUrdu},
	}
}
