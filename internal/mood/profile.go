// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package mood

// Neutral profile values used before any signal is applied.
const (
	DefaultAttribute       = 3.0
	DefaultMinDuration     = 30
	DefaultMaxDuration     = 90
	DefaultAverageDuration = 60
	DefaultIdealPlayers    = 4
	DefaultMinimumAge      = 10

	// ConfidenceFloor is the lowest confidence ever reported.
	ConfidenceFloor = 45
	// ConfidenceCeiling is the highest confidence ever reported.
	ConfidenceCeiling = 100

	// NeutralTag marks a profile built from empty text.
	NeutralTag = "neutre"
)

// Attribute and duration bounds enforced by normalization.
const (
	MinAttribute = 1.0
	MaxAttribute = 5.0
	MinDuration  = 5
	MaxDuration  = 300
	MinPlayers   = 1
	MaxPlayers   = 10
	MinAge       = 3
	MaxAge       = 18
)

// Profile is the structured target derived from one mood description.
// Every scale attribute lies in [1,5] once returned by Extract.
type Profile struct {
	Energy        float64 `json:"energy"`
	Social        float64 `json:"social"`
	Luck          float64 `json:"luck"`
	Tension       float64 `json:"tension"`
	Complexity    float64 `json:"complexity"`
	LearningCurve float64 `json:"learning_curve"`
	Replayability float64 `json:"replayability"`
	Conflict      float64 `json:"conflict"`

	MinDuration     int `json:"min_duration"`
	MaxDuration     int `json:"max_duration"`
	AverageDuration int `json:"average_duration"`

	IdealPlayers int `json:"ideal_players"`
	MinimumAge   int `json:"minimum_age"`

	DetectedMoods       []string `json:"detected_moods"`
	DetectedTags        []string `json:"detected_tags"`
	DetectedExpressions []string `json:"detected_expressions"`

	Confidence int `json:"confidence"`

	// Affinity feeds the tag-weighted scorer only.
	Affinity Affinity `json:"affinity"`
}

// Affinity is the coarse, tag-oriented reading of the same text.
type Affinity struct {
	// TagScores maps catalog tags to how strongly the text asks for them.
	TagScores  map[string]float64 `json:"tag_scores,omitempty"`
	Complexity int                `json:"complexity"` // 1-3
	Duration   int                `json:"duration"`   // 30, 60 or 120 minutes
	PlayersMin int                `json:"players_min"`
	PlayersMax int                `json:"players_max"`
}

// Neutral returns the profile of a text carrying no signal.
func Neutral() Profile {
	return Profile{
		Energy:              DefaultAttribute,
		Social:              DefaultAttribute,
		Luck:                DefaultAttribute,
		Tension:             DefaultAttribute,
		Complexity:          DefaultAttribute,
		LearningCurve:       DefaultAttribute,
		Replayability:       DefaultAttribute,
		Conflict:            DefaultAttribute,
		MinDuration:         DefaultMinDuration,
		MaxDuration:         DefaultMaxDuration,
		AverageDuration:     DefaultAverageDuration,
		IdealPlayers:        DefaultIdealPlayers,
		MinimumAge:          DefaultMinimumAge,
		DetectedMoods:       []string{},
		DetectedTags:        []string{},
		DetectedExpressions: []string{},
		Confidence:          ConfidenceFloor,
		Affinity:            neutralAffinity(),
	}
}

func neutralAffinity() Affinity {
	return Affinity{
		TagScores:  map[string]float64{},
		Complexity: 2,
		Duration:   60,
		PlayersMin: 2,
		PlayersMax: 8,
	}
}

// HasSignal reports whether anything at all was recognized.
func (p Profile) HasSignal() bool {
	return len(p.DetectedMoods) > 0 || len(p.DetectedExpressions) > 0 || len(p.DetectedTags) > 0
}
