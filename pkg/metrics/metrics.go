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
			Name:    "assistant_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// IntentsTotal tracks classified intents by name and audience.
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intents_total",
			Help: "Total intents classified",
		},
		[]string{"intent", "audience"},
	)

	// PendingOperationsActive tracks users awaiting edit confirmation.
	PendingOperationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_pending_operations_active",
			Help: "Users with an unconfirmed label edit proposal",
		},
	)

	// LabelEditsApplied tracks confirmed label edits by outcome.
	LabelEditsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_label_edits_total",
			Help: "Confirmed label edit operations",
		},
		[]string{"outcome"},
	)

	// SSEConnectionsActive tracks active event stream connections.
	SSEConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_sse_connections_active",
			Help: "Number of active event stream connections",
		},
	)

	// HeartbeatsTotal tracks heartbeat events sent on streams.
	HeartbeatsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_stream_heartbeats_total",
			Help: "Heartbeat events emitted on event streams",
		},
	)

	// ProviderStreamDuration tracks completion provider stream duration.
	ProviderStreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_provider_stream_duration_seconds",
			Help:    "Completion provider streaming response duration",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"provider", "status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordIntent records a classified intent.
func RecordIntent(intent, audience string) {
	IntentsTotal.WithLabelValues(intent, audience).Inc()
}

// RecordProviderStream records a completion provider streaming call.
func RecordProviderStream(provider, status string, duration float64) {
	ProviderStreamDuration.WithLabelValues(provider, status).Observe(duration)
}

// IncrementSSEConnections increments the active stream connection count.
func IncrementSSEConnections() {
	SSEConnectionsActive.Inc()
}

// DecrementSSEConnections decrements the active stream connection count.
func DecrementSSEConnections() {
	SSEConnectionsActive.Dec()
}
