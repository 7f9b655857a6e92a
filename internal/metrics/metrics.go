// Package metrics holds the Prometheus collectors shared by the adapters.
// They are registered on the default registry and exposed by promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adsync"

var (
	// AdmissionDecisions counts admission checks by policy and outcome
	// (allowed, denied, store_error).
	AdmissionDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admission_decisions_total",
		Help:      "Admission checks by policy and outcome.",
	}, []string{"policy", "outcome"})

	// SyncItems counts reconciled campaigns by outcome (synced, failed).
	SyncItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_items_total",
		Help:      "Campaigns processed by the reconciler by outcome.",
	}, []string{"outcome"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of full reconciliation runs.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	// UpstreamErrors counts failed platform calls by operation and kind
	// (unavailable, rejected, failed, denied).
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Failed calls to the advertising platform.",
	}, []string{"op", "kind"})

	DuplicateCopies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_copies_total",
		Help:      "Campaign copies attempted by outcome.",
	}, []string{"outcome"})
)
