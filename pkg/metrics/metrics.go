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

	// AssistantRequestsTotal tracks assistant gateway calls by operation and
	// outcome. Fallback outcomes count failures that were converted into
	// user-facing fallback values.
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total assistant gateway requests",
		},
		[]string{"operation", "status"},
	)

	// AssistantDuration tracks assistant gateway call duration.
	AssistantDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_request_duration_seconds",
			Help:    "Assistant gateway request duration",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"operation", "status"},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"model", "direction"},
	)

	// MessagesTotal tracks conversation messages appended by role.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_messages_total",
			Help: "Total conversation messages appended",
		},
		[]string{"role"},
	)

	// ViewSwitchesTotal tracks view selector changes.
	ViewSwitchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_switches_total",
			Help: "Total view selector changes",
		},
		[]string{"view"},
	)

	// LocaleSwitchesTotal tracks locale changes.
	LocaleSwitchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_switches_total",
			Help: "Total locale changes",
		},
		[]string{"locale"},
	)

	// StaleCompletionsTotal counts assistant completions discarded because
	// their view instance was torn down before the response arrived.
	StaleCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_stale_completions_total",
			Help: "Assistant completions discarded after view teardown",
		},
	)

	// VoiceSessionsActive tracks listening voice-input sessions.
	VoiceSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "voice_sessions_active",
			Help: "Number of active voice input sessions",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordAssistantCall records metrics for one assistant gateway call.
func RecordAssistantCall(operation, status string, duration float64, tokensIn, tokensOut int, model string) {
	AssistantRequestsTotal.WithLabelValues(operation, status).Inc()
	AssistantDuration.WithLabelValues(operation, status).Observe(duration)
	if model != "" {
		LLMTokensTotal.WithLabelValues(model, "in").Add(float64(tokensIn))
		LLMTokensTotal.WithLabelValues(model, "out").Add(float64(tokensOut))
	}
}
