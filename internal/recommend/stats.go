// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/ludomood/internal/catalog"
)

const topTagCount = 10

// CatalogStats summarizes a catalog.
type CatalogStats struct {
	TotalGames      int            `json:"total_games"`
	ByType          map[string]int `json:"by_type"`
	ByComplexity    map[string]int `json:"by_complexity"`
	ByDuration      map[string]int `json:"by_duration"`
	AverageDuration int            `json:"average_duration"`
	ComplexityRange FloatRange     `json:"complexity_range"`
	DurationRange   IntRange       `json:"duration_range"`
	TopTags         []TagCount     `json:"top_tags"`
}

// FloatRange is an inclusive [min, max].
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IntRange is an inclusive [min, max].
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TagCount is a mood tag and the number of games carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DurationBucket names the length class of an average duration.
func DurationBucket(minutes int) string {
	switch {
	case minutes <= 30:
		return "court"
	case minutes <= 60:
		return "moyen"
	case minutes <= 120:
		return "long"
	default:
		return "très long"
	}
}

// Stats computes catalog statistics. Complexity is grouped by its integer
// part.
func Stats(games []catalog.Game) CatalogStats {
	st := CatalogStats{
		TotalGames:   len(games),
		ByType:       map[string]int{},
		ByComplexity: map[string]int{},
		ByDuration:   map[string]int{},
		TopTags:      []TagCount{},
	}
	if len(games) == 0 {
		return st
	}

	st.ComplexityRange = FloatRange{Min: math.Inf(1), Max: math.Inf(-1)}
	st.DurationRange = IntRange{Min: math.MaxInt, Max: math.MinInt}
	tags := make(map[string]int)
	total := 0

	for i := range games {
		g := &games[i]
		st.ByType[g.PrimaryType]++
		st.ByComplexity[strconv.Itoa(int(math.Floor(g.Complexity)))]++
		st.ByDuration[DurationBucket(g.AverageDuration)]++

		total += g.AverageDuration
		st.ComplexityRange.Min = math.Min(st.ComplexityRange.Min, g.Complexity)
		st.ComplexityRange.Max = math.Max(st.ComplexityRange.Max, g.Complexity)
		st.DurationRange.Min = min(st.DurationRange.Min, g.AverageDuration)
		st.DurationRange.Max = max(st.DurationRange.Max, g.AverageDuration)

		for _, t := range g.MoodTags {
			tags[strings.ToLower(t)]++
		}
	}
	st.AverageDuration = int(math.Round(float64(total) / float64(len(games))))

	for tag, n := range tags {
		st.TopTags = append(st.TopTags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(st.TopTags, func(i, j int) bool {
		if st.TopTags[i].Count != st.TopTags[j].Count {
			return st.TopTags[i].Count > st.TopTags[j].Count
		}
		return st.TopTags[i].Tag < st.TopTags[j].Tag
	})
	if len(st.TopTags) > topTagCount {
		st.TopTags = st.TopTags[:topTagCount]
	}
	return st
}
