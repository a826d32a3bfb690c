// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ludomood/internal/metrics"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status          string    `json:"status"`
	Version         string    `json:"version"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
	CatalogGames    int       `json:"catalog_games"`
	CatalogVersion  uint64    `json:"catalog_version"`
	CatalogSource   string    `json:"catalog_source"`
	CatalogLoadedAt time.Time `json:"catalog_loaded_at"`
	Scorer          string    `json:"scorer"`
	CacheHitRate    float64   `json:"cache_hit_rate"`
}

// Version is reported by /health. It is set at build time.
var Version = "dev"

// Health reports liveness and catalog state. An empty catalog is degraded
// but still answers 200 so orchestrators do not restart a server waiting
// for its first reload.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	metrics.UpdateUptime(h.startTime)

	snap := h.store.Snapshot()
	status := HealthStatus{
		Status:          "healthy",
		Version:         Version,
		UptimeSeconds:   time.Since(h.startTime).Seconds(),
		CatalogGames:    snap.Len(),
		CatalogVersion:  snap.Version,
		CatalogSource:   snap.Source,
		CatalogLoadedAt: snap.LoadedAt,
		Scorer:          h.engine.ScorerName(),
	}
	if snap.Len() == 0 {
		status.Status = "degraded"
	}
	if h.cache != nil {
		status.CacheHitRate = h.cache.HitRate()
	}
	respondOK(w, r, start, status, Metadata{CatalogVersion: snap.Version})
}
