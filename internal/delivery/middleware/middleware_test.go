package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"growguard/config"
	deliverycontext "growguard/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var seen string
	handler := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "ui-action-1")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, "ui-action-1", seen)
	assert.Equal(t, "ui-action-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	handler := mw.Process(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 100))
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	id := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.Len(t, id, 36)
}

func TestLoggerMiddleware_QuietPathsOnlyLogFailures(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
	e := echo.New()

	ok := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), httptest.NewRecorder())))
	assert.Empty(t, buf.String())

	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), httptest.NewRecorder())))
	assert.Contains(t, buf.String(), "HTTP Request")
}

func TestLoggerMiddleware_LogsServerErrorsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})
	e := echo.New()

	failing := mw.Handle(func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) })
	err := failing(e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), httptest.NewRecorder()))

	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=502")
}
