// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/ludomood/internal/catalog"
)

// SimilarGame is a catalog game with its similarity to a target game.
type SimilarGame struct {
	Game       catalog.Game `json:"game"`
	Similarity int          `json:"similarity_score"`
}

// Similarity rates how close b is to a: +20 for the same primary type,
// max(0, (2-Δcomplexity)*10), max(0, (60-Δminutes)/3) and +5 per shared
// mechanic, rounded.
func Similarity(a, b *catalog.Game) int {
	var s float64
	if a.PrimaryType != "" && a.PrimaryType == b.PrimaryType {
		s += 20
	}
	s += math.Max(0, (2-math.Abs(a.Complexity-b.Complexity))*10)
	s += math.Max(0, (60-math.Abs(float64(a.AverageDuration-b.AverageDuration)))/3)
	for _, m := range b.Mechanics {
		if a.HasMechanic(m) {
			s += 5
		}
	}
	return int(math.Round(s))
}

// Similar returns up to limit games from games most similar to target,
// excluding target itself and anything at or below threshold.
func Similar(target *catalog.Game, games []catalog.Game, limit, threshold int) []SimilarGame {
	out := []SimilarGame{}
	for i := range games {
		if games[i].ID == target.ID {
			continue
		}
		if s := Similarity(target, &games[i]); s > threshold {
			out = append(out, SimilarGame{Game: games[i], Similarity: s})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Game.ID < out[j].Game.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
