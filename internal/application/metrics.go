package application

import "github.com/prometheus/client_golang/prometheus"

var (
	// searchAttempts counts provider page requests by outcome: ok, rate_limited, error
	searchAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelink_search_requests_total",
			Help: "Search provider page requests by outcome.",
		},
		[]string{"outcome"},
	)

	// searchOutcomes counts finished executor runs: found, empty, exhausted, failed
	searchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelink_searches_total",
			Help: "Link searches by final outcome.",
		},
		[]string{"outcome"},
	)

	// backoffSeconds records every delay applied before a search attempt
	backoffSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamelink_search_backoff_seconds",
			Help:    "Delay applied before search attempts.",
			Buckets: []float64{0.5, 1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	// cacheLookups counts result cache lookups: hit, miss, error
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelink_result_cache_lookups_total",
			Help: "Result cache lookups by outcome.",
		},
		[]string{"result"},
	)

	// matchDecisions counts orchestrator routing after fuzzy matching
	matchDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelink_match_decisions_total",
			Help: "Fuzzy match decisions: rejected, ambiguous, exact.",
		},
		[]string{"decision"},
	)
)

func init() {
	prometheus.MustRegister(searchAttempts, searchOutcomes, backoffSeconds, cacheLookups, matchDecisions)
}
