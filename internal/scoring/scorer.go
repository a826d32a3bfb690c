// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/mood"
)

// Scorer names accepted by New.
const (
	NameAttribute   = "attribute"
	NameTagWeighted = "tagweighted"
)

// ErrUnknownScorer is returned by New for an unregistered name.
var ErrUnknownScorer = errors.New("unknown scorer")

// Scorer rates one game against one mood profile. Implementations are pure
// and safe for concurrent use.
type Scorer interface {
	Name() string
	Score(p *mood.Profile, g *catalog.Game) Result
}

// Result is the compatibility of one game with one profile.
type Result struct {
	GameID int `json:"game_id"`

	// Raw is the additive score before scaling.
	Raw float64 `json:"raw_score"`

	// Percent is Raw mapped onto [0, 100] by the scorer's bound.
	Percent int `json:"compatibility_score"`

	Explanations []string `json:"explanations"`
	Details      Details  `json:"compatibility_details"`
}

// Details breaks the raw score down per term. Terms a scorer does not use
// stay zero.
type Details struct {
	Energy      float64  `json:"energy_match"`
	Social      float64  `json:"social_match"`
	Luck        float64  `json:"luck_match"`
	Duration    float64  `json:"duration_match"`
	Players     float64  `json:"player_match"`
	Complexity  float64  `json:"complexity_match"`
	Tags        float64  `json:"tag_score"`
	Bonus       float64  `json:"bonus,omitempty"`
	TagMatches  []string `json:"tag_matches"`
	InDuration  bool     `json:"in_duration_window"`
	FitsPlayers bool     `json:"fits_player_count"`
}

// New returns the scorer registered under name.
func New(name string, lex *lexicon.Lexicon) (Scorer, error) {
	switch name {
	case NameAttribute, "":
		return NewAttributeScorer(lex), nil
	case NameTagWeighted:
		return NewTagWeightedScorer(lex), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}
}

// Names lists the registered scorers.
func Names() []string {
	return []string{NameAttribute, NameTagWeighted}
}

func percentOf(raw, maxRaw float64) int {
	if raw <= 0 {
		return 0
	}
	p := int(math.Round(raw / maxRaw * 100))
	if p > 100 {
		return 100
	}
	return p
}
