// Package metrics defines and registers all custom Prometheus metrics for the
// agency platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PermissionDenialsTotal counts requests rejected by the permission guard.
// Label:
//   - permission: the permission token that was required (e.g. "approve_content")
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of requests denied by the permission guard, by required permission.",
	},
	[]string{"permission"},
)

// ApprovalsDecidedTotal counts approval decisions applied.
// Label:
//   - decision: "approved", "rejected", or "changes_requested"
var ApprovalsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approvals_decided_total",
		Help:      "Total number of approval decisions applied, by decision.",
	},
	[]string{"decision"},
)

// NotificationQueueDepth tracks notification events currently queued across
// all dispatcher workers.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notification events pending in the dispatcher.",
	},
)

// MockFailuresTotal counts simulated upstream failures injected by the mock
// data layer.
var MockFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_failures_total",
		Help:      "Total number of simulated upstream failures returned by the mock data layer.",
	},
)
