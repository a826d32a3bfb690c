// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "result" label.
const (
	ResultOK           = "ok"
	ResultNoMatch      = "no_match"
	ResultEmptyMood    = "empty_mood"
	ResultEmptyCatalog = "empty_catalog"
	ResultInvalidInput = "invalid_input"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Mood Analysis Metrics
	MoodAnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mood_analyses_total",
			Help: "Total number of mood texts analyzed",
		},
	)

	MoodAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_analysis_duration_seconds",
			Help:    "Time spent extracting a mood profile",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	MoodConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_confidence_score",
			Help:    "Distribution of mood profile confidence scores",
			Buckets: []float64{45, 50, 60, 70, 80, 90, 100},
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"result"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent on a full extract, score and select pipeline",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	RecommendationEligible = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_eligible_games",
			Help:    "Number of games above the eligibility threshold per request",
			Buckets: []float64{0, 1, 3, 6, 10, 25, 50, 100, 250},
		},
	)

	// Catalog Metrics
	CatalogGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_games",
			Help: "Number of games in the active catalog snapshot",
		},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_version",
			Help: "Version of the active catalog snapshot",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"source", "result"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "stats", "similar"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordMoodAnalysis records one extraction.
func RecordMoodAnalysis(duration time.Duration, confidence int) {
	MoodAnalysesTotal.Inc()
	MoodAnalysisDuration.Observe(duration.Seconds())
	MoodConfidence.Observe(float64(confidence))
}

// RecordRecommendation records the outcome of one Recommend call. eligible
// is ignored for failed requests.
func RecordRecommendation(result string, duration time.Duration, eligible int) {
	RecommendationsTotal.WithLabelValues(result).Inc()
	if result == ResultOK || result == ResultNoMatch {
		RecommendationDuration.Observe(duration.Seconds())
		RecommendationEligible.Observe(float64(eligible))
	}
}

// RecordCatalogLoad records a load attempt. Gauges only move on success.
func RecordCatalogLoad(source string, games int, version uint64, err error) {
	if err != nil {
		CatalogLoads.WithLabelValues(source, "error").Inc()
		return
	}
	CatalogLoads.WithLabelValues(source, "success").Inc()
	CatalogGames.Set(float64(games))
	CatalogVersion.Set(float64(version))
}

// RecordCacheLookup counts a hit or a miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
