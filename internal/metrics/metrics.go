package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	kindLabel   = "kind"
	methodLabel = "method"
	routeLabel  = "route"
	statusLabel = "status"
)

// Metrics defines the Prometheus collectors for the random value API.
type Metrics struct {
	Registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestsTimer    *prometheus.HistogramVec
	generated        *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randomapi_http_requests_total",
			Help: "Count of HTTP requests by route, method and status code.",
		}, []string{routeLabel, methodLabel, statusLabel}),
		requestsTimer: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "randomapi_http_request_duration_seconds",
			Help:    "Seconds spent serving HTTP requests.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{routeLabel, methodLabel}),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randomapi_values_generated_total",
			Help: "Count of random values produced by kind.",
		}, []string{kindLabel}),
		validationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "randomapi_validation_errors_total",
			Help: "Count of rejected generation requests by kind.",
		}, []string{kindLabel}),
	}

	reg.MustRegister(
		m.requests,
		m.requestsTimer,
		m.generated,
		m.validationErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordRequest tracks a finished HTTP request.
func (m *Metrics) RecordRequest(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestsTimer.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordGenerated(kind string) {
	m.generated.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordValidationError(kind string) {
	m.validationErrors.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
