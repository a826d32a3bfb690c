// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package supervisor runs the long-lived parts of the server under a suture
// supervision tree. Failed services restart with backoff; suture events are
// logged through the zerolog-backed slog adapter.
package supervisor
