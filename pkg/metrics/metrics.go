// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration on the ledger service.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests on the ledger service.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// XPClaimsTotal tracks XP claim requests by outcome.
	XPClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xp_claims_total",
			Help: "Total XP claim requests",
		},
		[]string{"outcome"},
	)

	// XPAwardedTotal tracks the total amount of XP handed out.
	XPAwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_awarded_total",
			Help: "Total XP awarded across all users",
		},
	)

	// BotCommandsTotal tracks bot commands by command name and outcome.
	BotCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total bot commands handled",
		},
		[]string{"command", "outcome"},
	)

	// TaskAPIDuration tracks outbound task-service call duration.
	TaskAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "task_api_request_duration_seconds",
			Help:    "Task service request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "outcome"},
	)

	// DialogSessionsActive tracks in-progress task-creation dialogues.
	DialogSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dialog_sessions_active",
			Help: "Number of active task-creation dialogues",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordClaim records an XP claim and the amount awarded.
func RecordClaim(outcome string, awarded int64) {
	XPClaimsTotal.WithLabelValues(outcome).Inc()
	if awarded > 0 {
		XPAwardedTotal.Add(float64(awarded))
	}
}

// RecordCommand records a handled bot command.
func RecordCommand(command, outcome string) {
	BotCommandsTotal.WithLabelValues(command, outcome).Inc()
}

// RecordTaskAPICall records an outbound task-service call.
func RecordTaskAPICall(endpoint, outcome string, duration float64) {
	TaskAPIDuration.WithLabelValues(endpoint, outcome).Observe(duration)
}
