package handler

import (
	"io"
	"strings"

	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"
	"growguard/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// ScanHandler serves the plant scan screen.
type ScanHandler struct {
	diagnosis usecase.DiagnosisUsecase
	reports   usecase.ReportUsecase
	screens   *ScreenRenderer
}

// NewScanHandler is the constructor for ScanHandler, injected by Fx.
func NewScanHandler(diagnosis usecase.DiagnosisUsecase, reports usecase.ReportUsecase, screens *ScreenRenderer) *ScanHandler {
	return &ScanHandler{
		diagnosis: diagnosis,
		reports:   reports,
		screens:   screens,
	}
}

// Show renders the scan screen.
func (h *ScanHandler) Show(c echo.Context) error {
	return h.screens.Render(c, h.diagnosis.View())
}

// OpenCamera acquires the camera. When it is unavailable the screen switches to the
// file picker and shows why.
func (h *ScanHandler) OpenCamera(c echo.Context) error {
	view, err := h.diagnosis.OpenCamera(c.Request().Context())
	if err != nil && rejected(err) {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, view)
}

// CloseCamera releases the camera.
func (h *ScanHandler) CloseCamera(c echo.Context) error {
	if err := h.diagnosis.CloseCamera(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return h.screens.Render(c, h.diagnosis.View())
}

// Capture takes a frame from the open camera and submits it.
func (h *ScanHandler) Capture(c echo.Context) error {
	if _, err := h.diagnosis.Capture(c.Request().Context()); err != nil {
		return h.failed(c, err)
	}

	return h.renderReport(c)
}

// Upload submits an image picked from the device, sent as the multipart field "image".
func (h *ScanHandler) Upload(c echo.Context) error {
	image, err := readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.diagnosis.Upload(c.Request().Context(), image); err != nil {
		return h.failed(c, err)
	}

	return h.renderReport(c)
}

func (h *ScanHandler) failed(c echo.Context, err error) error {
	if rejected(err) {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, h.diagnosis.View())
}

func (h *ScanHandler) renderReport(c echo.Context) error {
	view, err := h.reports.Current()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.screens.Render(c, reportScreen(c, h.screens, view))
}

func readImage(c echo.Context) (*entity.Image, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewValidationError("image", "Please select an image"))
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded image")
	}

	contentType := mimetype.Detect(data).String()
	if len(data) > 0 && !strings.HasPrefix(contentType, "image/") {
		return nil, errors.WithStack(domainerrors.NewValidationError("image", "Please select an image file"))
	}

	return &entity.Image{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
