// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings. Collectors self-register via promauto; HTTP-level metrics
// come from the echoprometheus middleware and live elsewhere.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// SnapshotsCapturedTotal counts snapshots appended to the ledger.
var SnapshotsCapturedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_captured_total",
		Help:      "Total number of portfolio snapshots captured.",
	},
)

// PriceUpsertsTotal counts price registry writes.
// Label:
//   - symbol: the upserted symbol (bounded by the 2-10 char format)
var PriceUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_upserts_total",
		Help:      "Total number of price upserts, by symbol.",
	},
	[]string{"symbol"},
)

// PriceCacheTotal counts price list cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var PriceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_cache_total",
		Help:      "Total number of price list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ValuationDuration measures how long a single total-value computation takes,
// including both store reads.
var ValuationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "valuation_duration_seconds",
		Help:      "Duration of portfolio total-value computations.",
		Buckets:   prometheus.DefBuckets,
	},
)
