// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package scoring rates a board game against a mood profile.
//
// Two scorers exist and are never blended; configuration picks one.
//
// The canonical "attribute" scorer adds independent terms:
//
//	energy      max(0, (2 - |Δ|) * 15)
//	social      max(0, (2 - |Δ|) * 15)
//	luck        max(0, (2 - |Δ|) * 10)
//	duration    +20 inside [min, max], +10 within 15 minutes of it
//	players     +15 when min <= ideal <= max
//	complexity  +10 when |Δ| <= 0.5
//	tags        +10 per distinct matching tag, at most 5
//
// Its raw score is bounded by MaxRawScore (175) and Percent is
// round(raw / 175 * 100).
//
// The "tagweighted" scorer reads the profile's tag affinity: each game tag
// contributes its affinity times ln(frequency+1), synonyms at 0.9, with small
// bonuses for priority tags, cooperative/competitive markers, coarse
// complexity, duration and player range. It has no natural bound, so its
// Percent is min(100, round(raw)).
package scoring
