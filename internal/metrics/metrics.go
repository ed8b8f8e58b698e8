// Package metrics exposes Prometheus instrumentation for lookup requests
// and upstream calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numlookup_requests_total",
			Help: "Total lookup requests by outcome",
		},
		[]string{"outcome"},
	)

	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numlookup_upstream_requests_total",
			Help: "Total upstream calls by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "numlookup_upstream_request_duration_seconds",
			Help:    "Upstream call latency by tier",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tier"},
	)
)

// RecordLookup counts a handled lookup request. Outcome is "ok",
// "missing_number" or "invalid_number".
func RecordLookup(outcome string) {
	lookupRequests.WithLabelValues(outcome).Inc()
}

// RecordUpstream counts an upstream call and observes its latency.
// Outcome is "ok" or a normalized error kind.
func RecordUpstream(tier, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(tier, outcome).Inc()
	upstreamDuration.WithLabelValues(tier).Observe(elapsed.Seconds())
}
