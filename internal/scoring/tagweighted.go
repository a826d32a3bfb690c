// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/mood"
)

// Tag-weighted scorer constants.
const (
	synonymPenalty      = 0.9
	highPriorityBonus   = 5.0
	coalitionBonus      = 3.0
	complexityExact     = 5.0
	complexityNear      = 2.0
	playersOverlapBonus = 3.0
	playersExactBonus   = 2.0
)

// TagWeightedScorer ranks games by how strongly their mood tags match the
// profile's tag affinity, weighting each tag by ln(frequency+1). Its scale
// is unbounded and clipped at 100.
type TagWeightedScorer struct {
	lex *lexicon.Lexicon
}

// NewTagWeightedScorer creates the alternate scorer.
func NewTagWeightedScorer(lex *lexicon.Lexicon) *TagWeightedScorer {
	return &TagWeightedScorer{lex: lex}
}

// Name implements Scorer.
func (s *TagWeightedScorer) Name() string {
	return NameTagWeighted
}

// Score implements Scorer.
func (s *TagWeightedScorer) Score(p *mood.Profile, g *catalog.Game) Result {
	var (
		d     Details
		bonus float64
	)
	a := p.Affinity
	matched := make(map[string]struct{})

	for _, raw := range g.MoodTags {
		tag := strings.ToLower(strings.TrimSpace(raw))
		weight := s.lex.WeightOf(tag)

		if score := a.TagScores[tag]; score > 0 {
			d.Tags += score * weight
			matched[tag] = struct{}{}
		}
		if effective, ok := s.lex.Synonym(tag); ok && effective != tag {
			if score := a.TagScores[effective]; score > 0 {
				d.Tags += score * weight * synonymPenalty
				matched[effective] = struct{}{}
			}
		}

		if a.TagScores[tag] > 0 {
			if s.lex.IsHighPriority(tag) {
				bonus += highPriorityBonus
			}
			if s.lex.IsCoalition(tag) {
				bonus += coalitionBonus
			}
		}
	}

	switch diff := absInt(coarseComplexity(g.Complexity) - a.Complexity); diff {
	case 0:
		d.Complexity = complexityExact
	case 1:
		d.Complexity = complexityNear
	}

	switch diff := absInt(g.AverageDuration - a.Duration); {
	case diff <= 15:
		d.Duration = 4
		d.InDuration = true
	case diff <= 30:
		d.Duration = 2
	case diff <= 60:
		d.Duration = 1
	}

	if g.MinPlayers <= a.PlayersMax && g.MaxPlayers >= a.PlayersMin {
		d.Players = playersOverlapBonus
		d.FitsPlayers = true
		if g.MinPlayers == a.PlayersMin && g.MaxPlayers == a.PlayersMax {
			d.Players += playersExactBonus
		}
	}

	d.Bonus = bonus
	d.TagMatches = sortedKeys(matched)

	explanations := []string{}
	if len(d.TagMatches) > 0 {
		explanations = append(explanations, "Correspond à vos envies : "+strings.Join(d.TagMatches, ", "))
	}
	if d.InDuration {
		explanations = append(explanations, fmt.Sprintf("Durée parfaite : %d minutes", g.AverageDuration))
	}
	if d.FitsPlayers {
		explanations = append(explanations, fmt.Sprintf("Se joue de %d à %d joueurs", g.MinPlayers, g.MaxPlayers))
	}

	raw := d.Tags + d.Bonus + d.Complexity + d.Duration + d.Players
	percent := 0
	if raw > 0 {
		percent = int(math.Min(100, math.Round(raw)))
	}
	return Result{
		GameID:       g.ID,
		Raw:          raw,
		Percent:      percent,
		Explanations: explanations,
		Details:      d,
	}
}

// coarseComplexity maps the 1-5 scale onto the 1-3 scale of the tag
// affinity.
func coarseComplexity(c float64) int {
	switch {
	case c <= 2:
		return 1
	case c <= 3.5:
		return 2
	default:
		return 3
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
