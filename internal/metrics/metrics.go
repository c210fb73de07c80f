package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Shopping assistant metrics - using explicit registration
var (
	// Conversation turns by dialogue action
	TurnsTotal *prometheus.CounterVec

	// Catalog searches by outcome (match, no_match)
	SearchesTotal *prometheus.CounterVec

	// Number of rows returned by successful searches
	SearchResults prometheus.Histogram

	// Comparison requests by outcome
	ComparisonsTotal *prometheus.CounterVec

	// Back-in-stock requests by outcome (created, in_stock, prompt)
	AlertsTotal *prometheus.CounterVec

	// Rows in the loaded catalog
	CatalogRows prometheus.Gauge

	// Whether the demo catalog is being served
	CatalogDegraded prometheus.Gauge

	// HTTP request duration
	RequestDuration *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	TurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Subsystem: "dialogue",
			Name:      "turns_total",
			Help:      "Total conversation turns by resulting action",
		},
		[]string{"action"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Subsystem: "catalog",
			Name:      "searches_total",
			Help:      "Total catalog searches by outcome",
		},
		[]string{"outcome"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shopassist",
			Subsystem: "catalog",
			Name:      "search_results",
			Help:      "Rows returned by successful searches",
			Buckets:   []float64{1, 2, 3, 5, 10},
		},
	)

	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Subsystem: "compare",
			Name:      "requests_total",
			Help:      "Total product comparisons by outcome",
		},
		[]string{"outcome"},
	)

	AlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopassist",
			Subsystem: "alerts",
			Name:      "requests_total",
			Help:      "Total back-in-stock requests by outcome",
		},
		[]string{"outcome"},
	)

	CatalogRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shopassist",
			Subsystem: "catalog",
			Name:      "rows",
			Help:      "Rows in the loaded catalog",
		},
	)

	CatalogDegraded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shopassist",
			Subsystem: "catalog",
			Name:      "degraded",
			Help:      "1 when the built-in demo catalog is served",
		},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shopassist",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	prometheus.MustRegister(
		TurnsTotal,
		SearchesTotal,
		SearchResults,
		ComparisonsTotal,
		AlertsTotal,
		CatalogRows,
		CatalogDegraded,
		RequestDuration,
	)
}

// RecordCatalog publishes the catalog size and degraded flag
func RecordCatalog(rows int, degraded bool) {
	CatalogRows.Set(float64(rows))
	if degraded {
		CatalogDegraded.Set(1)
	} else {
		CatalogDegraded.Set(0)
	}
}
