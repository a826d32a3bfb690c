// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package mood

import (
	"strings"

	"github.com/tomtom215/ludomood/internal/lexicon"
)

// Merge weights: a signal pulls the running value 40% of the way to its target.
const (
	keepWeight   = 0.6
	signalWeight = 0.4
)

// Confidence scoring constants.
const (
	pointsPerMatch      = 12
	pointsPerExpression = 20
	expressionMatches   = 2
	moodBonus           = 15
	tagBonus            = 10
	playersBonus        = 10
)

// Extractor turns free text into a Profile. It holds only compiled,
// read-only data and is safe for concurrent use.
type Extractor struct {
	lex      *lexicon.Lexicon
	contexts contextPatterns
}

// NewExtractor builds an extractor over lex.
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{
		lex:      lex,
		contexts: compileContextPatterns(lex),
	}
}

// Lexicon returns the lexicon the extractor reads.
func (e *Extractor) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Extract never fails: empty text yields the neutral profile tagged
// "neutre", unrecognized text the neutral profile without tags. The result
// depends only on text.
func (e *Extractor) Extract(text string) Profile {
	normalized := e.lex.Normalize(text)
	if strings.TrimSpace(normalized) == "" {
		p := Neutral()
		p.DetectedTags = []string{NeutralTag}
		return p
	}

	s := newState()

	for _, expr := range e.lex.MatchExpressions(normalized) {
		s.apply(expr.Adjust)
		s.expressions = append(s.expressions, expr.Name)
		s.tags = append(s.tags, expr.Tags...)
		s.matchCount += expressionMatches
	}

	for _, hit := range e.lex.LookupKeywords(normalized) {
		s.moods = append(s.moods, hit.Rule.Mood)
		s.apply(hit.Rule.Adjust)
		s.tags = append(s.tags, hit.Rule.Tags...)
		s.matchCount += len(hit.Matched)
	}

	e.contexts.apply(normalized, s)

	confidence := s.confidence()
	p := s.normalize()
	p.Confidence = confidence
	p.Affinity = e.affinity(normalized)
	return p
}

// state is the mutable working copy used during one extraction.
type state struct {
	attrs           map[lexicon.Attribute]float64
	explicitAverage *float64
	moods           []string
	tags            []string
	expressions     []string
	matchCount      int
}

func newState() *state {
	attrs := make(map[lexicon.Attribute]float64, 12)
	for _, a := range lexicon.ScaleAttributes {
		attrs[a] = DefaultAttribute
	}
	attrs[lexicon.MinDuration] = DefaultMinDuration
	attrs[lexicon.MaxDuration] = DefaultMaxDuration
	attrs[lexicon.IdealPlayers] = DefaultIdealPlayers
	attrs[lexicon.MinimumAge] = DefaultMinimumAge
	return &state{attrs: attrs}
}

// apply blends every target of adj into the running values.
func (s *state) apply(adj lexicon.Adjustment) {
	adj.Each(func(attr lexicon.Attribute, target float64) {
		s.attrs[attr] = s.attrs[attr]*keepWeight + target*signalWeight
	})
}

// ceil lowers attr to limit if it is above it.
func (s *state) ceil(attr lexicon.Attribute, limit float64) {
	if s.attrs[attr] > limit {
		s.attrs[attr] = limit
	}
}

// floor raises attr to limit if it is below it.
func (s *state) floor(attr lexicon.Attribute, limit float64) {
	if s.attrs[attr] < limit {
		s.attrs[attr] = limit
	}
}

func (s *state) confidence() int {
	score := s.matchCount*pointsPerMatch + len(s.expressions)*pointsPerExpression

	if len(s.moods) > 0 {
		score += moodBonus
	}
	if len(s.tags) > 0 {
		score += tagBonus
	}
	if s.attrs[lexicon.IdealPlayers] != DefaultIdealPlayers {
		score += playersBonus
	}

	return clampInt(score, ConfidenceFloor, ConfidenceCeiling)
}
