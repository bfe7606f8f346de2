// Package metrics holds the Prometheus collectors of the catalog server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Catalog Metrics
	MediaMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_media_mutations_total",
			Help: "Successful media mutations by operation",
		},
		[]string{"operation"}, // create, update, patch, delete
	)

	// Lookup Metrics
	LookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookup_requests_total",
			Help: "Metadata lookups by outcome",
		},
		[]string{"outcome"}, // success, error, cache_hit, empty
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_lookup_duration_seconds",
			Help:    "Duration of metadata provider calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Event Metrics
	EventsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_events_forwarded_total",
			Help: "Catalog events forwarded to the integration broker",
		},
		[]string{"broker", "event_type", "result"},
	)
)

// RecordAPIRequest records API request metrics.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordMutation counts a successful catalog mutation.
func RecordMutation(operation string) {
	MediaMutations.WithLabelValues(operation).Inc()
}

// RecordLookup records a lookup outcome and, for provider calls, its latency.
func RecordLookup(outcome string, duration time.Duration) {
	LookupRequests.WithLabelValues(outcome).Inc()
	if duration > 0 {
		LookupDuration.Observe(duration.Seconds())
	}
}

// RecordBreakerTransition updates breaker state metrics.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordEventForwarded counts a forwarded event.
func RecordEventForwarded(broker, eventType string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsForwarded.WithLabelValues(broker, eventType, result).Inc()
}

// Middleware records request count and latency labelled by the chi route
// pattern, so ids do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RecordAPIRequest(r.Method, endpoint, strconv.Itoa(status), time.Since(start))
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
