// AngelaMos | 2026
// metrics.go

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	SentimentClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Review texts classified, by resulting label",
		},
		[]string{"label"},
	)

	RankingRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_ranking_runs_total",
			Help: "Recommendation ranking runs, by outcome",
		},
		[]string{"outcome"},
	)

	RankingCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_ranking_candidates",
			Help:    "Number of candidate products per ranking run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Product catalog requests, by result (success, failure, rejected)",
		},
		[]string{"result"},
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_circuit_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	TierFilterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tier_filter_requests_total",
			Help: "Tiered review filter calls, by branch",
		},
		[]string{"branch"},
	)
)
