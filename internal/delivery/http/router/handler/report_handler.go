package handler

import (
	"net/http"

	"growguard/internal/delivery/http/response"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	loadReportFailedMessage = "Failed to load report. Please try again."
	shareCodeFailedMessage  = "Failed to create share code. Please try again."
)

// ReportHandler serves the diagnosis report and all-reports screens.
type ReportHandler struct {
	reports usecase.ReportUsecase
	screens *ScreenRenderer
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(reports usecase.ReportUsecase, screens *ScreenRenderer) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		screens: screens,
	}
}

// ShowCurrent renders the report that is open.
func (h *ReportHandler) ShowCurrent(c echo.Context) error {
	view, err := h.reports.Current()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, reportScreen(c, h.screens, view))
}

// Save persists the open report. Saving it again changes nothing.
func (h *ReportHandler) Save(c echo.Context) error {
	return h.renderResult(c, func() (*usecase.ReportView, error) {
		return h.reports.Save(c.Request().Context())
	})
}

// RequestDelete asks for confirmation before deleting the open report.
func (h *ReportHandler) RequestDelete(c echo.Context) error {
	return h.renderResult(c, h.reports.RequestDelete)
}

// CancelDelete dismisses the delete confirmation.
func (h *ReportHandler) CancelDelete(c echo.Context) error {
	return h.renderResult(c, h.reports.CancelDelete)
}

// ConfirmDelete deletes the open report and shows the list.
func (h *ReportHandler) ConfirmDelete(c echo.Context) error {
	if err := h.reports.ConfirmDelete(c.Request().Context()); err != nil {
		if rejected(err) || sessionLost(err) {
			return response.HandleAppError(c, err)
		}

		// The report stays open with the failure shown inline.
		return h.renderResult(c, h.reports.Current)
	}

	return h.screens.Render(c, h.reports.List())
}

// ShareCode responds with a PNG QR code linking to the open report.
func (h *ReportHandler) ShareCode(c echo.Context) error {
	png, err := h.reports.ShareCode(c.Request().Context())
	if err != nil {
		return response.HandleFailure(c, err, shareCodeFailedMessage)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ShowAll renders the saved reports, loading them from the backend.
func (h *ReportHandler) ShowAll(c echo.Context) error {
	return h.renderList(c, func() (*usecase.ReportListView, error) {
		return h.reports.Refresh(c.Request().Context())
	})
}

// Open fetches one saved report and shows it.
func (h *ReportHandler) Open(c echo.Context) error {
	view, err := h.reports.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleFailure(c, err, loadReportFailedMessage)
	}

	return h.screens.Render(c, reportScreen(c, h.screens, view))
}

// RequestDeleteAll asks for confirmation before deleting every report.
func (h *ReportHandler) RequestDeleteAll(c echo.Context) error {
	return h.screens.Render(c, h.reports.RequestDeleteAll())
}

// CancelDeleteAll dismisses the delete-all confirmation.
func (h *ReportHandler) CancelDeleteAll(c echo.Context) error {
	return h.screens.Render(c, h.reports.CancelDeleteAll())
}

// ConfirmDeleteAll deletes every saved report.
func (h *ReportHandler) ConfirmDeleteAll(c echo.Context) error {
	return h.renderList(c, func() (*usecase.ReportListView, error) {
		return h.reports.ConfirmDeleteAll(c.Request().Context())
	})
}

// renderResult renders a report view. A failed backend call that still produced a view
// is shown inline; anything else is an error response.
func (h *ReportHandler) renderResult(c echo.Context, fn func() (*usecase.ReportView, error)) error {
	view, err := fn()
	if err != nil && (view == nil || rejected(err) || sessionLost(err)) {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, reportScreen(c, h.screens, view))
}

func (h *ReportHandler) renderList(c echo.Context, fn func() (*usecase.ReportListView, error)) error {
	view, err := fn()
	if err != nil && (view == nil || rejected(err) || sessionLost(err)) {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, view)
}

// reportScreen translates the report and points its image at the local image route.
func reportScreen(c echo.Context, screens *ScreenRenderer, view *usecase.ReportView) *usecase.ReportView {
	if view == nil {
		return nil
	}

	out := *view
	out.Report = screens.Translate(c, view.Report)
	if out.Report != nil {
		if filename := out.Report.ImageFilename(); filename != "" {
			out.ImageURL = imagePath(filename)
		}
	}

	return &out
}

func imagePath(filename string) string {
	return "/images/" + filename
}
