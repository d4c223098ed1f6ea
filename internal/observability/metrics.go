package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors, registered on their
// own registry rather than the global default.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	EventsCreated      *prometheus.CounterVec
	EventsDeleted      prometheus.Counter
	ValidationFailures prometheus.Counter
	EventsStored       prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "drcal_http_requests_total",
			Help: "HTTP requests processed, by method, route pattern and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "drcal_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		EventsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "drcal_events_created_total",
			Help: "Events created, by schedule type.",
		}, []string{"type"}),
		EventsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "drcal_events_deleted_total",
			Help: "Events deleted.",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "drcal_validation_failures_total",
			Help: "Creation requests rejected by field validation.",
		}),
		EventsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "drcal_events_stored",
			Help: "Events currently held in the store.",
		}),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncEventsCreated(eventType string) {
	m.EventsCreated.WithLabelValues(eventType).Inc()
}

func (m *Metrics) IncEventsDeleted() {
	m.EventsDeleted.Inc()
}

func (m *Metrics) IncValidationFailures() {
	m.ValidationFailures.Inc()
}

func (m *Metrics) SetEventsStored(n int) {
	m.EventsStored.Set(float64(n))
}

// Handler returns the exposition endpoint for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
