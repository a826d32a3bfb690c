// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import "strings"

// Game is one catalog record. Records are immutable once loaded: the store
// hands out copies and a reload swaps whole snapshots.
type Game struct {
	// ID is the stable catalog identifier, unique within a catalog.
	ID int `json:"id" validate:"gt=0"`

	// Name is the display name. The selector deduplicates on it.
	Name string `json:"name" validate:"required,notblank"`

	EnglishName      string `json:"english_name,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	LongDescription  string `json:"long_description,omitempty"`

	// Player range, 1 <= min <= ideal <= max.
	MinPlayers   int `json:"min_players" validate:"gte=1"`
	IdealPlayers int `json:"ideal_players" validate:"gtefield=MinPlayers,ltefield=MaxPlayers"`
	MaxPlayers   int `json:"max_players" validate:"gtefield=MinPlayers"`

	// Duration in minutes, 0 < min <= average <= max.
	MinDuration     int `json:"min_duration" validate:"gt=0"`
	AverageDuration int `json:"average_duration" validate:"gtefield=MinDuration,ltefield=MaxDuration"`
	MaxDuration     int `json:"max_duration" validate:"gtefield=MinDuration"`

	MinimumAge   int     `json:"minimum_age,omitempty" validate:"gte=0,lte=99"`
	AveragePrice float64 `json:"average_price,omitempty" validate:"gte=0"`

	// PrimaryType buckets games for diversity ("stratégie", "ambiance", ...).
	PrimaryType string   `json:"primary_type"`
	Mechanics   []string `json:"mechanics"`
	Themes      []string `json:"themes"`

	// Mood attributes on the shared 1-5 scale.
	EnergyRequired float64 `json:"energy_required" validate:"gte=1,lte=5"`
	SocialLevel    float64 `json:"social_level" validate:"gte=1,lte=5"`
	LuckFactor     float64 `json:"luck_factor" validate:"gte=1,lte=5"`
	TensionLevel   float64 `json:"tension_level" validate:"gte=1,lte=5"`
	Complexity     float64 `json:"complexity" validate:"gte=1,lte=5"`
	LearningCurve  float64 `json:"learning_curve" validate:"gte=1,lte=5"`
	Replayability  float64 `json:"replayability" validate:"gte=1,lte=5"`
	ConflictLevel  float64 `json:"conflict_level" validate:"gte=1,lte=5"`

	// MoodTags join the catalog to the lexicon.
	MoodTags       []string `json:"mood_tags"`
	SuitedContexts []string `json:"suited_contexts"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`

	HostingTip string   `json:"hosting_tip,omitempty"`
	SimilarTo  []string `json:"similar_to,omitempty"`
	IfYouLike  []string `json:"if_you_like,omitempty"`
}

// HasMechanic reports whether g lists mechanic m, ignoring case.
func (g *Game) HasMechanic(m string) bool {
	for _, own := range g.Mechanics {
		if strings.EqualFold(own, m) {
			return true
		}
	}
	return false
}

// fillDefaults completes optional fields the source may omit. It never
// repairs inconsistent values; validation rejects those.
func (g *Game) fillDefaults() {
	if g.IdealPlayers == 0 && g.MinPlayers > 0 && g.MaxPlayers >= g.MinPlayers {
		g.IdealPlayers = (g.MinPlayers + g.MaxPlayers) / 2
	}
	if g.AverageDuration > 0 {
		if g.MinDuration == 0 {
			g.MinDuration = g.AverageDuration
		}
		if g.MaxDuration == 0 {
			g.MaxDuration = g.AverageDuration
		}
	}
	for _, list := range []*[]string{&g.Mechanics, &g.Themes, &g.MoodTags, &g.SuitedContexts, &g.Strengths, &g.Weaknesses} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// clone copies g so callers cannot alias snapshot slices.
func (g *Game) clone() Game {
	c := *g
	c.Mechanics = cloneStrings(g.Mechanics)
	c.Themes = cloneStrings(g.Themes)
	c.MoodTags = cloneStrings(g.MoodTags)
	c.SuitedContexts = cloneStrings(g.SuitedContexts)
	c.Strengths = cloneStrings(g.Strengths)
	c.Weaknesses = cloneStrings(g.Weaknesses)
	c.SimilarTo = cloneStrings(g.SimilarTo)
	c.IfYouLike = cloneStrings(g.IfYouLike)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
