// Package metrics provides Prometheus instrumentation for the StreamSphere
// server. Mount Handler at GET /metrics and wrap the router with Middleware.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequests counts HTTP requests by method, path, and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

// HTTPDuration tracks HTTP request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "streamsphere_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path"})

// AuthEvents counts auth events (login, register) by result.
var AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_auth_events_total",
	Help: "Auth events by type.",
}, []string{"event", "result"})

// PlayerResolves counts playback resolutions by resulting mode.
var PlayerResolves = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_player_resolves_total",
	Help: "Playback resolutions by source and mode.",
}, []string{"source", "mode"})

// CatalogErrors counts failed metadata API fetches by endpoint.
var CatalogErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamsphere_catalog_errors_total",
	Help: "Failed catalog fetches by endpoint.",
}, []string{"endpoint"})

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware wraps an HTTP handler to record request counts and latency.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		dur := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		HTTPRequests.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		HTTPDuration.WithLabelValues(r.Method, r.URL.Path).Observe(dur)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
