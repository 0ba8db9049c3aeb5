// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RelayDuration tracks end-to-end relay call duration by outcome.
	RelayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_duration_seconds",
			Help:    "Chat relay duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"outcome"},
	)

	// RelayFailuresTotal tracks relay failures by kind.
	RelayFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_failures_total",
			Help: "Total relay failures by failure kind",
		},
		[]string{"kind"},
	)

	// CompletionTokensTotal tracks completion provider tokens processed.
	CompletionTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_tokens_total",
			Help: "Total completion provider tokens processed",
		},
		[]string{"model", "direction"},
	)

	// RecommendationsTotal tracks quiz recommendations by destination.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total quiz recommendations computed",
		},
		[]string{"destination"},
	)

	// SessionsActive tracks live chat sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_sessions_active",
			Help: "Number of active chat sessions",
		},
	)

	// SessionMessagesTotal tracks messages appended to sessions.
	SessionMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_session_messages_total",
			Help: "Total messages appended to chat sessions",
		},
		[]string{"role"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordRelay records metrics for a relay attempt.
func RecordRelay(outcome string, duration float64) {
	RelayDuration.WithLabelValues(outcome).Observe(duration)
}

// RecordRelayFailure records a relay failure by kind.
func RecordRelayFailure(kind string) {
	RelayFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordCompletionTokens records provider token usage.
func RecordCompletionTokens(model string, tokensIn, tokensOut int) {
	CompletionTokensTotal.WithLabelValues(model, "in").Add(float64(tokensIn))
	CompletionTokensTotal.WithLabelValues(model, "out").Add(float64(tokensOut))
}

// RecordRecommendation records a computed recommendation.
func RecordRecommendation(destination string) {
	RecommendationsTotal.WithLabelValues(destination).Inc()
}
