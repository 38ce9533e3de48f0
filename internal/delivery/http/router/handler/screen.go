// Package handler contains the screen handlers of the companion server.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/i18n"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// sections maps each screen to its translation section.
var sections = map[entity.Route]string{
	entity.RouteLanguageSelection: "languageSelection",
	entity.RouteRegister:          "register",
	entity.RouteDetails:           "details",
	entity.RouteRegisterOTP:       "registerOtp",
	entity.RouteLogin:             "login",
	entity.RouteLoginOTP:          "loginOtp",
	entity.RouteDashboard:         "dashboard",
	entity.RouteProfile:           "profile",
	entity.RouteScanPlant:         "scan",
	entity.RouteDiagnosisReport:   "diagnosisReport",
	entity.RouteAllReports:        "allReports",
}

// ScreenData is the body of every screen response.
type ScreenData struct {
	Language entity.Language   `json:"language"`
	Labels   map[string]string `json:"labels"`
	Common   map[string]string `json:"common"`
	View     any               `json:"view"`
}

// ScreenRendererParams holds dependencies for ScreenRenderer, injected by Fx.
type ScreenRendererParams struct {
	fx.In

	Navigator usecase.NavigatorUsecase
	Language  usecase.LanguageUsecase
	Texts     *i18n.Table
	Logger    *slog.Logger
}

// ScreenRenderer renders views with the client location and the labels of a screen.
type ScreenRenderer struct {
	navigator usecase.NavigatorUsecase
	language  usecase.LanguageUsecase
	texts     *i18n.Table
	logger    *slog.Logger
}

// NewScreenRenderer is the constructor for ScreenRenderer.
func NewScreenRenderer(params ScreenRendererParams) *ScreenRenderer {
	return &ScreenRenderer{
		navigator: params.Navigator,
		language:  params.Language,
		texts:     params.Texts,
		logger:    params.Logger,
	}
}

// Render responds with view, labelled for the screen the client is on in the current
// language. A pending flash is delivered once.
func (r *ScreenRenderer) Render(c echo.Context, view any) error {
	lang := r.language.Get()
	location := r.navigator.Current()
	if location.Flash != "" {
		r.navigator.TakeFlash()
	}

	return response.Screen(c, http.StatusOK, location, ScreenData{
		Language: lang,
		Labels:   r.texts.Section(sections[location.Route], lang),
		Common:   r.texts.Section("common", lang),
		View:     view,
	})
}

// Text returns one label in the current language.
func (r *ScreenRenderer) Text(section, key string) string {
	return r.texts.Get(section, key, r.language.Get())
}

// Translate renders diagnosis content in the current language. Phrases without a
// translation are shown in English and logged.
func (r *ScreenRenderer) Translate(c echo.Context, report *entity.Report) *entity.Report {
	lang := r.language.Get()
	out := report.Clone()
	if out == nil || lang == entity.LanguageEnglish {
		return out
	}

	out.DiseaseName = r.texts.DiseaseName(report.DiseaseName, lang)

	var missing, missingTips []string
	out.DiagnosisPoints, missing = r.texts.DiagnosisContentList(report.DiagnosisPoints, lang)
	out.TipsPoints, missingTips = r.texts.DiagnosisContentList(report.TipsPoints, lang)
	missing = append(missing, missingTips...)

	if len(missing) > 0 {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), r.logger).Debug("Missing translations",
			slog.String("language", lang.String()),
			slog.Any("phrases", missing),
		)
	}

	return out
}

// rejected reports whether err refuses the action itself rather than reporting a failed
// backend call. Refusals are answered with an error body; failures are shown inline.
func rejected(err error) bool {
	return errors.IsAny(err,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrIllegalTransition,
		domainerrors.ErrRequestInFlight,
		domainerrors.ErrIncompleteOTP,
		domainerrors.ErrInvalidOTPDigit,
		domainerrors.ErrOTPExpired,
		domainerrors.ErrNoPendingVerification,
		domainerrors.ErrNoCurrentReport,
		domainerrors.ErrConfirmationRequired,
		domainerrors.ErrReportNotDurable,
		domainerrors.ErrCameraNotOpen,
	)
}

// sessionLost reports whether err ended the session. The error handler redirects to login.
func sessionLost(err error) bool {
	return errors.IsAny(err, domainerrors.ErrAuthExpired, domainerrors.ErrNotAuthenticated)
}
