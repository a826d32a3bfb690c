// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/mood"
)

// Attribute scorer weights.
const (
	energyWeight = 15.0
	socialWeight = 15.0
	luckWeight   = 10.0
	maxDistance  = 2.0

	explainThreshold = 10.0

	durationFull    = 20.0
	durationPartial = 10.0
	durationSlack   = 15

	playersBonus = 15.0

	complexityBonus     = 10.0
	complexityTolerance = 0.5

	tagBonus      = 10.0
	maxTagMatches = 5
)

// MaxRawScore is the highest raw score the attribute scorer can produce.
const MaxRawScore = maxDistance*energyWeight + maxDistance*socialWeight + maxDistance*luckWeight +
	durationFull + playersBonus + complexityBonus + maxTagMatches*tagBonus

// AttributeScorer is the canonical scorer: independent distance terms over
// the mood attributes plus a capped tag bonus.
type AttributeScorer struct {
	lex *lexicon.Lexicon
}

// NewAttributeScorer creates the canonical scorer.
func NewAttributeScorer(lex *lexicon.Lexicon) *AttributeScorer {
	return &AttributeScorer{lex: lex}
}

// Name implements Scorer.
func (s *AttributeScorer) Name() string {
	return NameAttribute
}

// Score implements Scorer.
func (s *AttributeScorer) Score(p *mood.Profile, g *catalog.Game) Result {
	var (
		d            Details
		explanations []string
	)

	d.Energy = distanceScore(p.Energy, g.EnergyRequired, energyWeight)
	if d.Energy > explainThreshold {
		explanations = append(explanations, fmt.Sprintf("Niveau d'énergie parfaitement adapté (%s/5)", formatScale(g.EnergyRequired)))
	}

	d.Social = distanceScore(p.Social, g.SocialLevel, socialWeight)
	if d.Social > explainThreshold {
		explanations = append(explanations, fmt.Sprintf("Interaction sociale idéale (%s/5)", formatScale(g.SocialLevel)))
	}

	d.Luck = distanceScore(p.Luck, g.LuckFactor, luckWeight)

	switch {
	case g.AverageDuration >= p.MinDuration && g.AverageDuration <= p.MaxDuration:
		d.Duration = durationFull
		d.InDuration = true
		explanations = append(explanations, fmt.Sprintf("Durée parfaite : %d minutes", g.AverageDuration))
	case g.AverageDuration >= p.MinDuration-durationSlack && g.AverageDuration <= p.MaxDuration+durationSlack:
		d.Duration = durationPartial
	}

	if g.MinPlayers <= p.IdealPlayers && p.IdealPlayers <= g.MaxPlayers {
		d.Players = playersBonus
		d.FitsPlayers = true
		explanations = append(explanations, fmt.Sprintf("Parfait pour %d joueurs", p.IdealPlayers))
	}

	if math.Abs(p.Complexity-g.Complexity) <= complexityTolerance {
		d.Complexity = complexityBonus
		explanations = append(explanations, fmt.Sprintf("Complexité adaptée (%s/5)", formatScale(g.Complexity)))
	}

	d.TagMatches = s.matchTags(p.DetectedTags, g.MoodTags)
	d.Tags = float64(len(d.TagMatches)) * tagBonus
	if len(d.TagMatches) > 0 {
		explanations = append(explanations, "Correspond à vos envies : "+strings.Join(d.TagMatches, ", "))
	}

	raw := d.Energy + d.Social + d.Luck + d.Duration + d.Players + d.Complexity + d.Tags
	if explanations == nil {
		explanations = []string{}
	}
	return Result{
		GameID:       g.ID,
		Raw:          raw,
		Percent:      percentOf(raw, MaxRawScore),
		Explanations: explanations,
		Details:      d,
	}
}

// matchTags returns the distinct profile tags that a game tag reaches,
// directly or through its canonical form, capped at maxTagMatches.
func (s *AttributeScorer) matchTags(detected, gameTags []string) []string {
	matches := []string{}
	if len(detected) == 0 {
		return matches
	}

	wanted := make(map[string]struct{}, len(detected))
	for _, t := range detected {
		wanted[strings.ToLower(t)] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, raw := range gameTags {
		if len(matches) == maxTagMatches {
			break
		}
		if s.lex.IsIgnored(raw) {
			continue
		}
		tag := strings.ToLower(strings.TrimSpace(raw))
		for _, candidate := range [2]string{tag, s.lex.Canonicalize(tag)} {
			if _, ok := wanted[candidate]; !ok {
				continue
			}
			if _, dup := seen[candidate]; !dup {
				seen[candidate] = struct{}{}
				matches = append(matches, candidate)
			}
			break
		}
	}
	return matches
}

func distanceScore(want, have, weight float64) float64 {
	return math.Max(0, (maxDistance-math.Abs(want-have))*weight)
}

// formatScale prints 3 as "3" and 2.5 as "2.5".
func formatScale(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*10)/10)
}
