// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/mood"
	"github.com/tomtom215/ludomood/internal/scoring"
)

// Options tunes one Recommend call.
type Options struct {
	// Count is the shortlist size. Zero means the configured default.
	Count int

	// LibraryOnly restricts scoring to RestrictToIDs, even when that list
	// is empty.
	LibraryOnly bool

	// RestrictToIDs limits the catalog to these game ids. A non-empty list
	// implies LibraryOnly.
	RestrictToIDs []int
}

func (o Options) restricted() bool {
	return o.LibraryOnly || len(o.RestrictToIDs) > 0
}

// ScoredGame pairs a game with its compatibility result.
type ScoredGame struct {
	Game   catalog.Game   `json:"game"`
	Result scoring.Result `json:"result"`
}

// Response is the outcome of a Recommend call.
type Response struct {
	Profile         mood.Profile   `json:"mood_analysis"`
	Recommendations []ScoredGame   `json:"recommendations"`
	Explanations    []string       `json:"global_explanations"`
	Suggestions     []string       `json:"suggestions"`
	Metadata        SearchMetadata `json:"search_metadata"`
}

// SearchMetadata describes the scored pool.
type SearchMetadata struct {
	TotalGamesAnalyzed  int    `json:"total_games_analyzed"`
	GamesAboveThreshold int    `json:"games_above_threshold"`
	AnalysisConfidence  int    `json:"analysis_confidence"`
	LibraryOnly         bool   `json:"library_only"`
	LibraryGamesCount   int    `json:"library_games_count"`
	Scorer              string `json:"scorer"`
}
