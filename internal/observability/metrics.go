// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"route", "method"},
	)

	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of language model requests by provider, operation and outcome",
		},
		[]string{"provider", "operation", "outcome"},
	)
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Language model request duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"provider", "operation"},
	)

	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of web search requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	FeedbackPlaceholderTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_placeholder_total",
			Help: "Stored feedback blobs that parsed to the placeholder correction",
		},
	)
)

// MustRegister registers every collector of the package with reg.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		AIRequestsTotal,
		AIRequestDuration,
		SearchRequestsTotal,
		FeedbackPlaceholderTotal,
	)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveAI records one language model call started at start.
func ObserveAI(provider, operation string, start time.Time, err error) {
	AIRequestsTotal.WithLabelValues(provider, operation, outcome(err)).Inc()
	AIRequestDuration.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
}

// ObserveSearch records one web search call.
func ObserveSearch(provider string, err error) {
	SearchRequestsTotal.WithLabelValues(provider, outcome(err)).Inc()
}
