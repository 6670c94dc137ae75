// Package metrics holds the portal's prometheus collectors. They register with the
// default registry and are served on /metrics by the portal API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToastsEnqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_toasts_enqueued_total",
		Help: "Total number of toasts enqueued, by kind.",
	},
		[]string{"kind"},
	)

	ToastsEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_toasts_evicted_total",
		Help: "Total number of expired toasts removed from the queue.",
	})

	SessionEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_session_events_total",
		Help: "Total number of session events, by event and outcome.",
	},
		[]string{"event", "outcome"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_backend_requests_total",
		Help: "Total number of requests issued to the logistics backend.",
	},
		[]string{"operation", "code"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_backend_request_duration_seconds",
		Help:    "Duration of requests issued to the logistics backend.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"operation"},
	)

	OrdersSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_orders_submitted_total",
		Help: "Total number of order submissions, by kind and outcome.",
	},
		[]string{"kind", "outcome"},
	)

	WorkflowTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_workflow_transitions_total",
		Help: "Total number of workflow state transitions, by target state.",
	},
		[]string{"state"},
	)

	OpenWorkflows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "portal_open_workflows",
		Help: "Current number of open workflow instances.",
	})
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
