// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package middleware provides HTTP middleware shared by the API router.
//
// The router installs them in this order:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.PrometheusMetrics)
//	r.Use(middleware.AccessLog(middleware.DefaultSlowRequest))
//
// RequestID must come first so the other two can log with its IDs.
package middleware
