// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package services

import (
	"context"
	"time"

	"github.com/tomtom215/ludomood/internal/metrics"
)

// UptimeService refreshes the uptime gauge on a fixed interval so scrapes
// see a current value without a request hitting /health.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService reports uptime since start. A non-positive interval
// means 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	metrics.UpdateUptime(u.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(u.start)
		}
	}
}

func (u *UptimeService) String() string {
	return "uptime-reporter"
}
