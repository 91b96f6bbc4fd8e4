// Package metrics exposes Prometheus instrumentation for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_events_scraped_total",
		Help: "Unified events produced per provider.",
	}, []string{"provider"})

	ScrapeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "valuebet_scrape_errors_total",
		Help: "Failed provider fetches.",
	}, []string{"provider"})

	ScrapeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valuebet_scrape_duration_seconds",
		Help:    "Wall time of one provider's full fetch.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"provider"})

	MatchedPairs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "valuebet_matched_pairs",
		Help: "Anchor/soft event pairs matched in the last run.",
	})

	ValueBetsDetected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "valuebet_bets_detected",
		Help: "Value bets found in the last run.",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "valuebet_run_duration_seconds",
		Help:    "End-to-end pipeline run duration.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)
