package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "growguard/internal/delivery/context"
	"growguard/internal/delivery/http/response"
	"growguard/internal/domain/service"
	"growguard/internal/infra/metrics"
	"growguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthView reports the companion server and backend liveness.
type HealthView struct {
	Status  string                `json:"status"`
	Backend *service.HealthStatus `json:"backend,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// SystemHandler serves health, metrics, report images and the client location.
type SystemHandler struct {
	gateway   service.Gateway
	images    service.ImageSource
	navigator usecase.NavigatorUsecase
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(
	gateway service.Gateway,
	images service.ImageSource,
	navigator usecase.NavigatorUsecase,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *SystemHandler {
	return &SystemHandler{
		gateway:   gateway,
		images:    images,
		navigator: navigator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Health checks the backend. An unreachable backend answers 503.
func (h *SystemHandler) Health(c echo.Context) error {
	status, err := h.gateway.Health(c.Request().Context())
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Backend health check failed",
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusServiceUnavailable, &HealthView{Status: "degraded", Error: err.Error()})
	}

	return response.Success(c, http.StatusOK, &HealthView{Status: "ok", Backend: status})
}

// Metrics exposes the Prometheus registry.
func (h *SystemHandler) Metrics() echo.HandlerFunc {
	return echo.WrapHandler(h.metrics.Handler())
}

// Image serves an uploaded report image through the image cache.
func (h *SystemHandler) Image(c echo.Context) error {
	image, err := h.images.Image(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return response.HandleFailure(c, err, "Failed to load image")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=600")

	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}

// Location reports the screen the client should show, delivering a pending flash once.
func (h *SystemHandler) Location(c echo.Context) error {
	location := h.navigator.Current()
	if location.Flash != "" {
		h.navigator.TakeFlash()
	}

	return response.Screen(c, http.StatusOK, location, location)
}
