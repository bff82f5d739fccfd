// Package metrics defines and registers all custom Prometheus metrics for the
// song catalog API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "bad_credential", or "unknown_user"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersWrittenTotal counts identity mutations.
// Label:
//   - op: "create", "change_password", or "delete"
var UsersWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_written_total",
		Help:      "Total number of identity writes, labelled by operation.",
	},
	[]string{"op"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SongsWrittenTotal counts catalog mutations.
// Label:
//   - op: "create", "update", or "delete"
var SongsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "songs_written_total",
		Help:      "Total number of catalog writes, labelled by operation.",
	},
	[]string{"op"},
)

// ── Recommendation metrics ────────────────────────────────────────────────────

// RecommendationsTotal counts recommendation requests.
// Label:
//   - result: "ok", "out_of_range", or "cache_hit"
var RecommendationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation requests, labelled by result.",
	},
	[]string{"result"},
)

// ── Reseed metrics ────────────────────────────────────────────────────────────

// ReseedRunsTotal counts reconciliation ticks.
// Label:
//   - result: "ok" or "error"
var ReseedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reseed_runs_total",
		Help:      "Total number of reconciliation runs, labelled by result.",
	},
	[]string{"result"},
)

// ReseedDuration measures how long a full wipe-and-reseed run takes.
var ReseedDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reseed_duration_seconds",
		Help:      "Duration of a full wipe-and-reseed run.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
