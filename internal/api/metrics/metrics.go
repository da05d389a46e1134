// Package metrics defines and registers all custom Prometheus metrics for the
// video platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vidtube"

// TogglesTotal counts toggle operations by resource kind and resulting state.
// Labels:
//   - kind: "video", "comment", "tweet" or "subscription"
//   - state: the resulting state (e.g. "liked", "unsubscribed")
var TogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toggles_total",
		Help:      "Total number of toggle operations, by kind and resulting state.",
	},
	[]string{"kind", "state"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: short description of the rejection (e.g. "missing_token", "invalid_token", "user_gone")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// UploadsTotal counts media files accepted into the object store.
// Label:
//   - kind: "avatar", "cover_image", "video" or "thumbnail"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of media files uploaded, by kind.",
	},
	[]string{"kind"},
)

// WatchEventsQueueDepth tracks the current number of watch events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WatchEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watch_events_queue_depth",
		Help:      "Current number of watch events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
