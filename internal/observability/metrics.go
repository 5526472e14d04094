package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "habitloop_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CheckInsRecorded counts check-in mutations by outcome (recorded, duplicate, removed).
	CheckInsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitloop_checkins_total",
		Help: "Total number of check-in mutations by outcome",
	}, []string{"outcome"})

	// StreakComputations counts streak snapshot computations by source (cache, db).
	StreakComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitloop_streak_computations_total",
		Help: "Total number of streak snapshot computations by source",
	}, []string{"source"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
