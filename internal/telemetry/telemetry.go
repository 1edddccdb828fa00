package telemetry

import (
	"net/http"
	"time"

	"github.com/agentscope-ai/agentscope/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry exposes dispatch and evaluation metrics on a private
// prometheus registry so tests never collide on the default one.
type Telemetry struct {
	config   config.TelemetryConfig
	registry *prometheus.Registry

	dispatches       *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	batchSize        prometheus.Histogram
	evaluations      prometheus.Counter
}

// New creates a telemetry instance and registers its collectors.
func New(cfg config.TelemetryConfig) *Telemetry {
	registry := prometheus.NewRegistry()
	t := &Telemetry{
		config:   cfg,
		registry: registry,
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agentscope_dispatches_total",
			Help: "Pipeline dispatches by category, variant and outcome.",
		}, []string{"category", "variant", "outcome"}),
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agentscope_dispatch_duration_seconds",
			Help:    "Wall-clock duration of individual pipeline runs.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}, []string{"category"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "agentscope_batch_size",
			Help:    "Number of requests per dispatched batch.",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agentscope_evaluations_total",
			Help: "Content evaluations produced.",
		}),
	}
	registry.MustRegister(t.dispatches, t.dispatchDuration, t.batchSize, t.evaluations)
	return t
}

// Handler serves the metrics endpoint for this instance's registry.
func (t *Telemetry) Handler() http.Handler {
	if t == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}

// RecordDispatch records one pipeline run outcome.
func (t *Telemetry) RecordDispatch(category, variant, outcome string, elapsed time.Duration) {
	if t == nil || !t.config.Enabled {
		return
	}
	t.dispatches.WithLabelValues(category, variant, outcome).Inc()
	t.dispatchDuration.WithLabelValues(category).Observe(elapsed.Seconds())
}

// RecordBatch records the size of a dispatched batch.
func (t *Telemetry) RecordBatch(size int) {
	if t == nil || !t.config.Enabled {
		return
	}
	t.batchSize.Observe(float64(size))
}

// RecordEvaluations counts emitted content evaluations.
func (t *Telemetry) RecordEvaluations(n int) {
	if t == nil || !t.config.Enabled {
		return
	}
	t.evaluations.Add(float64(n))
}
