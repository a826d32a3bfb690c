// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import "sort"

// ComplexityBand is a coarse complexity bucket used only for diversity.
type ComplexityBand string

// Complexity bands, in the order the completeness pass looks for them.
const (
	BandSimple   ComplexityBand = "simple"
	BandModerate ComplexityBand = "moderate"
	BandComplex  ComplexityBand = "complex"
)

var allBands = [...]ComplexityBand{BandSimple, BandModerate, BandComplex}

// BandOf buckets a 1-5 complexity: simple <= 2, moderate <= 3.5, complex
// above.
func BandOf(complexity float64) ComplexityBand {
	switch {
	case complexity <= 2:
		return BandSimple
	case complexity <= 3.5:
		return BandModerate
	default:
		return BandComplex
	}
}

type bucket struct {
	primaryType string
	band        ComplexityBand
}

// Select picks at most count games from scored:
//
//  1. keep games whose percent score is above threshold
//  2. sort by score, highest first (ties by id)
//  3. drop later games sharing a name with an earlier one
//  4. take the best game of each (primary type, complexity band) bucket
//  5. if short, add the best game of each complexity band still missing
//  6. if still short, backfill with the best remaining games
//
// The result is ordered by score. scored is not modified.
func Select(scored []ScoredGame, count, threshold int) []ScoredGame {
	if count <= 0 {
		return []ScoredGame{}
	}

	eligible := make([]ScoredGame, 0, len(scored))
	for _, sg := range scored {
		if sg.Result.Percent > threshold {
			eligible = append(eligible, sg)
		}
	}
	sortByScore(eligible)

	unique := eligible[:0]
	seenNames := make(map[string]struct{}, len(eligible))
	for _, sg := range eligible {
		if _, dup := seenNames[sg.Game.Name]; dup {
			continue
		}
		seenNames[sg.Game.Name] = struct{}{}
		unique = append(unique, sg)
	}

	taken := make([]bool, len(unique))
	picked := 0
	take := func(i int) {
		taken[i] = true
		picked++
	}

	// Diversity pass.
	usedBuckets := make(map[bucket]struct{})
	usedBands := make(map[ComplexityBand]struct{})
	for i, sg := range unique {
		if picked >= count {
			break
		}
		b := bucket{primaryType: sg.Game.PrimaryType, band: BandOf(sg.Game.Complexity)}
		if _, used := usedBuckets[b]; used {
			continue
		}
		usedBuckets[b] = struct{}{}
		usedBands[b.band] = struct{}{}
		take(i)
	}

	// Complexity completeness pass.
	for _, band := range allBands {
		if picked >= count {
			break
		}
		if _, ok := usedBands[band]; ok {
			continue
		}
		for i, sg := range unique {
			if !taken[i] && BandOf(sg.Game.Complexity) == band {
				usedBands[band] = struct{}{}
				take(i)
				break
			}
		}
	}

	// Backfill pass.
	for i := range unique {
		if picked >= count {
			break
		}
		if !taken[i] {
			take(i)
		}
	}

	out := make([]ScoredGame, 0, picked)
	for i, sg := range unique {
		if taken[i] {
			out = append(out, sg)
		}
	}
	return out
}

func sortByScore(games []ScoredGame) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i].Result, games[j].Result
		if a.Raw != b.Raw {
			return a.Raw > b.Raw
		}
		return games[i].Game.ID < games[j].Game.ID
	})
}
