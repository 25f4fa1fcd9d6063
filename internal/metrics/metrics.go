// Package metrics defines and registers all custom Prometheus metrics for the
// portal. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry on import and
// exposed by the host under /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Content API client ────────────────────────────────────────────────────────

// APIRequestsTotal counts requests issued to the content backend.
// Labels:
//   - resource: first path segment of the endpoint (e.g. "artists", "auth")
//   - method:   HTTP method
//   - code:     response status code, or "error" when the request never completed
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of requests sent to the content backend.",
	},
	[]string{"resource", "method", "code"},
)

// APIRequestDuration measures the round trip of a backend request, headers only.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of content backend requests until response headers arrive.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session ───────────────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session state changes.
// Label:
//   - state: "authenticated" or "unauthenticated"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions, by target state.",
	},
	[]string{"state"},
)

// ── Resources ─────────────────────────────────────────────────────────────────

// ResourceFetchesTotal counts settled resource fetches.
// Labels:
//   - resource: "artists" or "products"
//   - result:   "ok", "error", or "discarded" (resolved after teardown)
var ResourceFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_fetches_total",
		Help:      "Total number of settled resource fetches, by outcome.",
	},
	[]string{"resource", "result"},
)

// ── Notifications ─────────────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notifications pushed into the hub.
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications dispatched, by type.",
	},
	[]string{"type"},
)

// NotificationsDroppedTotal counts deliveries skipped because a subscriber's
// buffer was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notification deliveries dropped for slow subscribers.",
	},
)
