// Package gateway is the HTTP client of the GrowGuard backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"growguard/config"
	deliverycontext "growguard/internal/delivery/context"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/domain/service"
	"growguard/internal/errors"
	"growguard/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Params are the dependencies of the gateway.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Session service.SessionBinding
	Metrics *metrics.Metrics
}

type client struct {
	baseURL    string
	uploadsURL string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	session    service.SessionBinding
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New creates the backend gateway.
func New(p Params) service.Gateway {
	cfg := p.Config.API
	if cfg == nil {
		cfg = &config.APIConfig{}
	}

	limit := rate.Inf
	burst := cfg.RateLimit.Burst
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		if burst <= 0 {
			burst = 1
		}
	}

	m := p.Metrics
	if m == nil {
		m = metrics.New()
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		uploadsURL: strings.TrimRight(cfg.UploadsURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		session:    p.Session,
		metrics:    m,
		logger:     logger,
	}
}

// apiResponse is the union of every backend response body.
type apiResponse struct {
	Success       *bool            `json:"success"`
	Message       string           `json:"message"`
	Token         string           `json:"token"`
	User          json.RawMessage  `json:"user"`
	DiagnosisData *diagnosisData   `json:"diagnosisData"`
	Reports       []reportListItem `json:"reports"`
	Database      string           `json:"database"`
}

// request is one backend call. endpoint is the route template used for metrics.
type request struct {
	method      string
	endpoint    string
	path        string
	body        io.Reader
	contentType string
}

func (c *client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func jsonRequest(method, endpoint, path string, payload any) (*request, error) {
	req := &request{method: method, endpoint: endpoint, path: path}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		req.body = bytes.NewReader(data)
		req.contentType = "application/json"
	}

	return req, nil
}

// do sends r once and decodes the JSON body. Non-2xx answers and success:false become
// HTTPErrors; a 401 first expires the session bound to the token that was sent.
func (c *client) do(ctx context.Context, r *request) (*apiResponse, error) {
	op := r.method + " " + r.endpoint

	resp, token, err := c.send(ctx, c.baseURL+r.path, r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out apiResponse
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewNetworkError(op, err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &out); err != nil && resp.StatusCode < 300 {
			return nil, errors.WithStack(domainerrors.NewHTTPError(op, resp.StatusCode, "Unexpected response from server"))
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.expire(ctx, op, token)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.WithStack(domainerrors.NewHTTPError(op, resp.StatusCode, out.Message))
	}
	if out.Success != nil && !*out.Success {
		return nil, errors.WithStack(domainerrors.NewHTTPError(op, resp.StatusCode, out.Message))
	}

	return &out, nil
}

// send performs the round trip, attaching the bearer token and request id, and reports
// the token that was attached.
func (c *client) send(ctx context.Context, url string, r *request) (*http.Response, string, error) {
	op := r.method + " " + r.endpoint

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", errors.Wrap(err, op)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, r.body)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	var token string
	if c.session != nil {
		token = c.session.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(r.method, r.endpoint, 0, time.Since(start))

		return nil, token, c.transportError(ctx, op, err)
	}
	c.metrics.ObserveBackend(r.method, r.endpoint, resp.StatusCode, time.Since(start))

	c.log(ctx).Debug("Backend request completed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
		slog.String("request_id", requestID),
	)

	return resp, token, nil
}

func (c *client) transportError(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return errors.Wrap(ctx.Err(), op)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errors.WithStack(domainerrors.NewTimeoutError(op, c.timeout))
	}

	return errors.WithStack(domainerrors.NewNetworkError(op, err))
}

func (c *client) expire(ctx context.Context, op, token string) {
	if token == "" || c.session == nil {
		return
	}
	if c.session.Expire(ctx, token) {
		c.metrics.SessionExpiries.Inc()
		c.log(ctx).Warn("Session expired, redirecting to login", slog.String("op", op))
	}
}
