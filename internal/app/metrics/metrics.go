// Package metrics registers the service's Prometheus collectors. Collectors
// live on the default registry and are exposed via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebridge_http_requests_total",
			Help: "HTTP requests processed, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration observes HTTP request latency by route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voicebridge_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ProviderAttempts counts remote provider calls by capability and outcome.
	ProviderAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebridge_provider_attempts_total",
			Help: "Remote provider calls, by capability and outcome.",
		},
		[]string{"capability", "outcome"},
	)

	// ProviderFallbacks counts how often the bounded fallback path was taken.
	ProviderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voicebridge_provider_fallbacks_total",
			Help: "Fallback retries after a failed primary provider attempt.",
		},
		[]string{"capability"},
	)
)
