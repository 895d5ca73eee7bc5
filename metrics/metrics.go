// Package metrics holds the Prometheus collectors for the sort service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// traces counts completed traces.
	// Labels: algorithm (the algorithm that actually ran)
	traces = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stepsort",
		Subsystem: "engine",
		Name:      "traces_total",
		Help:      "Total sort traces produced",
	}, []string{"algorithm"})

	// fallbacks counts requests naming an unknown algorithm.
	fallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stepsort",
		Subsystem: "engine",
		Name:      "fallbacks_total",
		Help:      "Total requests for an unknown algorithm that fell back to the default",
	})

	// traceSteps tracks how many snapshots each trace holds.
	// Labels: algorithm
	traceSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stepsort",
		Subsystem: "engine",
		Name:      "trace_steps",
		Help:      "Number of snapshots per trace",
		Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
	}, []string{"algorithm"})

	// traceDuration measures the time taken to produce a trace.
	// Labels: algorithm
	traceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stepsort",
		Subsystem: "engine",
		Name:      "trace_duration_seconds",
		Help:      "Time to produce a trace in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"algorithm"})

	// rejected counts requests refused before reaching the engine.
	// Labels: endpoint, reason (decode, validate, range)
	rejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stepsort",
		Subsystem: "api",
		Name:      "rejected_total",
		Help:      "Total requests rejected before tracing",
	}, []string{"endpoint", "reason"})
)

// ObserveTrace records a completed trace.
func ObserveTrace(algorithm string, fellBack bool, steps int, elapsed time.Duration) {
	traces.WithLabelValues(algorithm).Inc()
	traceSteps.WithLabelValues(algorithm).Observe(float64(steps))
	traceDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if fellBack {
		fallbacks.Inc()
	}
}

// ObserveRejected records a request refused with the given reason.
func ObserveRejected(endpoint, reason string) {
	rejected.WithLabelValues(endpoint, reason).Inc()
}

// Handler serves the metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
