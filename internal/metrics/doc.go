// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package metrics provides Prometheus collectors for the recommendation service.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics.

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Analysis and recommendation:
  - mood_analyses_total, mood_analysis_duration_seconds, mood_confidence_score
  - recommendations_total{result}: ok, no_match, empty_mood, empty_catalog, invalid_input
  - recommendation_duration_seconds, recommendation_eligible_games

Catalog:
  - catalog_games, catalog_snapshot_version
  - catalog_loads_total{source, result}

Caches:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}

System:
  - app_info{version, go_version}, app_uptime_seconds

Mood text never appears in labels.
*/
package metrics
