// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package mood

import (
	"math"

	"github.com/tomtom215/ludomood/internal/lexicon"
)

// normalize clamps every value into range and produces the final Profile.
// Duration bounds are clamped before the min/max swap so the swap always
// leaves them ordered.
func (s *state) normalize() Profile {
	minDur := clampInt(roundInt(s.attrs[lexicon.MinDuration]), MinDuration, MaxDuration)
	maxDur := clampInt(roundInt(s.attrs[lexicon.MaxDuration]), MinDuration, MaxDuration)
	if minDur > maxDur {
		minDur, maxDur = maxDur, minDur
	}

	avg := roundInt(float64(minDur+maxDur) / 2)
	if s.explicitAverage != nil {
		avg = clampInt(roundInt(*s.explicitAverage), MinDuration, MaxDuration)
	}

	return Profile{
		Energy:        clampAttr(s.attrs[lexicon.Energy]),
		Social:        clampAttr(s.attrs[lexicon.Social]),
		Luck:          clampAttr(s.attrs[lexicon.Luck]),
		Tension:       clampAttr(s.attrs[lexicon.Tension]),
		Complexity:    clampAttr(s.attrs[lexicon.Complexity]),
		LearningCurve: clampAttr(s.attrs[lexicon.LearningCurve]),
		Replayability: clampAttr(s.attrs[lexicon.Replayability]),
		Conflict:      clampAttr(s.attrs[lexicon.Conflict]),

		MinDuration:     minDur,
		MaxDuration:     maxDur,
		AverageDuration: avg,

		IdealPlayers: clampInt(roundInt(s.attrs[lexicon.IdealPlayers]), MinPlayers, MaxPlayers),
		MinimumAge:   clampInt(roundInt(s.attrs[lexicon.MinimumAge]), MinAge, MaxAge),

		DetectedMoods:       dedupe(s.moods),
		DetectedTags:        dedupe(s.tags),
		DetectedExpressions: dedupe(s.expressions),
	}
}

func clampAttr(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultAttribute
	}
	return math.Max(MinAttribute, math.Min(MaxAttribute, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundInt rounds half away from zero and saturates instead of overflowing.
func roundInt(v float64) int {
	r := math.Round(v)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return int(r)
}

// dedupe keeps the first occurrence of each value, never returning nil.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
