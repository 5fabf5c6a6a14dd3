// Package metrics implements ports.Instrumentation on Prometheus
// collectors. Mostly useful in watch mode, where the process lives long
// enough to scrape.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ppalog/internal/core/ports"
)

type Recorder struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	staleDrops   *prometheus.CounterVec
	breakerMoves *prometheus.CounterVec
}

// Ensure Recorder implements ports.Instrumentation.
var _ ports.Instrumentation = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppalog_api_requests_total",
			Help: "Backend API requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ppalog_api_request_duration_seconds",
			Help:    "Backend API request latency by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		staleDrops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppalog_stale_responses_dropped_total",
			Help: "Superseded load responses discarded, by query slot.",
		}, []string{"scope"}),
		breakerMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ppalog_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions.",
		}, []string{"name", "from", "to"}),
	}

	r.registry.MustRegister(r.requests, r.durations, r.staleDrops, r.breakerMoves)
	return r
}

func (r *Recorder) RequestObserved(op, outcome string, elapsed time.Duration) {
	r.requests.WithLabelValues(op, outcome).Inc()
	r.durations.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (r *Recorder) StaleResponseDropped(scope string) {
	r.staleDrops.WithLabelValues(scope).Inc()
}

func (r *Recorder) BreakerStateChanged(name, from, to string) {
	r.breakerMoves.WithLabelValues(name, from, to).Inc()
}

// Handler exposes the registry for scraping.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
