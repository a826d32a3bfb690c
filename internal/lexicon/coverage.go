// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package lexicon

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// nearestThreshold is the minimum Jaro-Winkler similarity for a key to be
// proposed as a mapping target.
const nearestThreshold = 0.82

// CoverageReport describes how much of a catalog's tag vocabulary the
// lexicon understands. It is an authoring diagnostic, not used at runtime.
type CoverageReport struct {
	TotalTags       int                 `json:"total_tags"`
	CoveredTags     int                 `json:"covered_tags"`
	UncoveredTags   []string            `json:"uncovered_tags"`
	CoveragePercent float64             `json:"coverage_percent"`
	Improvements    []string            `json:"improvements"`
	Nearest         map[string][]string `json:"nearest,omitempty"`
}

// AnalyzeCoverage checks every distinct tag in tags.
func (l *Lexicon) AnalyzeCoverage(tags []string) CoverageReport {
	all := make(map[string]struct{})
	var uncovered []string

	for _, raw := range tags {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, seen := all[tag]; seen {
			continue
		}
		all[tag] = struct{}{}
		if !l.IsTagCovered(tag) {
			uncovered = append(uncovered, tag)
		}
	}
	sort.Strings(uncovered)

	report := CoverageReport{
		TotalTags:     len(all),
		CoveredTags:   len(all) - len(uncovered),
		UncoveredTags: uncovered,
		Improvements:  l.SuggestCoverageImprovements(uncovered),
		Nearest:       make(map[string][]string, len(uncovered)),
	}
	if report.TotalTags > 0 {
		pct := float64(report.CoveredTags) / float64(report.TotalTags) * 100
		report.CoveragePercent = math.Round(pct*100) / 100
	}
	for _, tag := range uncovered {
		if keys := l.NearestKeys(tag, 3); len(keys) > 0 {
			report.Nearest[tag] = keys
		}
	}
	return report
}

// IsTagCovered reports whether tag is ignored, belongs to a catalog tag
// cluster, or reaches one through the synonym table.
func (l *Lexicon) IsTagCovered(tag string) bool {
	current := strings.ToLower(strings.TrimSpace(tag))
	visited := make(map[string]struct{})

	for depth := 0; depth <= l.opts.MaxSynonymDepth; depth++ {
		if l.IsIgnored(current) {
			return true
		}
		if _, ok := l.clusterTags[current]; ok {
			return true
		}
		visited[current] = struct{}{}

		next, ok := l.synonyms[current]
		if !ok {
			return false
		}
		if _, loop := visited[next]; loop {
			return false
		}
		current = next
	}
	return false
}

// SuggestCoverageImprovements lists frequent uncovered tags first, then the
// obvious one-to-one mappings configured in the lexicon.
func (l *Lexicon) SuggestCoverageImprovements(uncovered []string) []string {
	var improvements []string

	var frequent []string
	for _, tag := range uncovered {
		if l.HasFrequency(tag) && l.Frequency(tag) >= 2 {
			frequent = append(frequent, tag)
		}
	}
	if len(frequent) > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Tags fréquents à mapper en priorité: %s", strings.Join(frequent, ", ")))
	}

	for _, tag := range uncovered {
		if target, ok := l.doc.ObviousMappings[strings.ToLower(tag)]; ok {
			improvements = append(improvements, fmt.Sprintf("Mapper %q vers %q", tag, target))
		}
	}
	return improvements
}

// NearestKeys returns up to n lexicon vocabulary entries closest to tag by
// Jaro-Winkler similarity.
func (l *Lexicon) NearestKeys(tag string, n int) []string {
	type candidate struct {
		key   string
		score float64
	}

	needle := l.Normalize(tag)
	var candidates []candidate
	for _, key := range l.vocabulary() {
		score := matchr.JaroWinkler(needle, l.Normalize(key), false)
		if score >= nearestThreshold && key != tag {
			candidates = append(candidates, candidate{key: key, score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].key < candidates[j].key
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.key
	}
	return out
}

// vocabulary lists every tag the lexicon can resolve, sorted.
func (l *Lexicon) vocabulary() []string {
	set := make(map[string]struct{}, len(l.clusterTags)+len(l.synonyms))
	for tag := range l.clusterTags {
		set[tag] = struct{}{}
	}
	for from := range l.synonyms {
		set[from] = struct{}{}
	}
	for _, rule := range l.doc.Keywords {
		set[strings.ToLower(rule.Mood)] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
