// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/ludomood/internal/logging"
)

// DefaultSlowRequest is the latency above which a request is logged at
// warn level.
const DefaultSlowRequest = 500 * time.Millisecond

// AccessLog logs one line per request through logging.Ctx, so the line
// carries the request and correlation IDs. Requests slower than slow are
// logged at warn level, the rest at debug. Bodies and query strings are
// never logged.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case sw.status >= http.StatusInternalServerError:
				event = logger.Error()
			case elapsed > slow:
				event = logger.Warn().Dur("threshold", slow)
			}
			event.
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", sw.status).
				Dur("duration", elapsed).
				Msg("HTTP request")
		})
	}
}
