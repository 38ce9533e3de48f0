// Package metrics holds the Prometheus collectors of the client.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "growguard"

// Metrics groups the collectors on a private registry, so tests can build fresh ones.
type Metrics struct {
	registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
	SessionExpiries prometheus.Counter
	ImageCacheHits  *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Backend requests by endpoint and outcome.",
		}, []string{"method", "endpoint", "outcome"}),
		BackendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Backend request latencies in seconds.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "endpoint"}),
		SessionExpiries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "expired_total",
			Help:      "Sessions cleared after an authorization failure.",
		}),
		ImageCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "image_cache",
			Name:      "lookups_total",
			Help:      "Image cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.BackendRequests,
		m.BackendLatency,
		m.SessionExpiries,
		m.ImageCacheHits,
		collectors.NewGoCollector(),
	)

	return m
}

// ObserveBackend records one backend call. status is 0 when no response arrived.
func (m *Metrics) ObserveBackend(method, endpoint string, status int, elapsed time.Duration) {
	m.BackendRequests.WithLabelValues(method, endpoint, Outcome(status)).Inc()
	m.BackendLatency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Outcome buckets a status code: "error" without a response, otherwise "2xx", "4xx", ...
func Outcome(status int) string {
	if status <= 0 {
		return "error"
	}

	return strconv.Itoa(status/100) + "xx"
}
