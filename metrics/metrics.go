// File: metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MoodsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soulsync_moods_classified_total",
			Help: "Chat messages classified, by detected mood",
		},
		[]string{"mood"},
	)

	// outcome is one of augmented, fallback, skipped.
	GenerationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soulsync_generation_outcomes_total",
			Help: "Reply generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	GenerationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "soulsync_generation_duration_seconds",
			Help:    "Latency of text generation calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soulsync_persistence_failures_total",
			Help: "Best-effort writes that failed and were swallowed",
		},
		[]string{"store"},
	)

	TherapistSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soulsync_therapist_searches_total",
			Help: "Therapist directory searches, by whether an origin was known",
		},
		[]string{"origin"},
	)
)
