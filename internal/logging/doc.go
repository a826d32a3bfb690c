// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package logging provides the zerolog-based global logger.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Request failed")
//
// Components take a zerolog.Logger by value and derive a child with a
// component field. Ctx adds the request_id and correlation_id set by the
// HTTP middleware. SlogHandler lets slog-only libraries, such as the
// supervisor's event hook, write through the same logger.
//
// Mood descriptions are free text written by users. Log them only through
// MoodText, which keeps the text itself out of anything above debug level.
package logging
