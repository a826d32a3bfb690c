// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package mood

import (
	"regexp"
	"strconv"

	"github.com/tomtom215/ludomood/internal/lexicon"
)

// Ceilings applied by negation guards.
const (
	negatedComplexityCeiling = 2.0
	negatedDurationCeiling   = 60
	negatedConflictCeiling   = 2.0
)

type durationKind int

const (
	durationMax durationKind = iota
	durationMin
	durationAverage
)

// playerPattern either captures a number or implies a fixed count.
type playerPattern struct {
	re    *regexp.Regexp
	value int // used when re has no capture group
}

type durationPattern struct {
	re   *regexp.Regexp
	kind durationKind
}

type negation struct {
	re    *regexp.Regexp
	apply func(*state)
}

// contextPatterns are the detectors run after the lexicon passes.
type contextPatterns struct {
	players   []playerPattern
	durations []durationPattern
	negations []negation
}

func compileContextPatterns(lex *lexicon.Lexicon) contextPatterns {
	compile := func(pattern string) *regexp.Regexp {
		return regexp.MustCompile("(?i)" + lex.Normalize(pattern))
	}

	return contextPatterns{
		players: []playerPattern{
			{re: compile(`(?:à|pour|avec)\s*(\d+)\s*joueurs?`)},
			{re: compile(`(?:nous sommes|on est|à)\s*(\d+)`)},
			{re: compile(`(?:seul|solo|solitaire)`), value: 1},
			{re: compile(`(?:en couple|à deux|duo)`), value: 2},
			{re: compile(`(?:en trio|à trois)`), value: 3},
			{re: compile(`(?:nombreux|beaucoup|groupe|bande)`), value: 6},
		},
		durations: []durationPattern{
			{re: compile(`(\d+)\s*(?:min|minutes?)`), kind: durationMax},
			{re: compile(`(?:moins de|maximum)\s*(\d+)`), kind: durationMax},
			{re: compile(`(?:plus de|minimum)\s*(\d+)`), kind: durationMin},
			{re: compile(`(?:environ|autour de)\s*(\d+)`), kind: durationAverage},
		},
		negations: []negation{
			{
				re: compile(`(?:pas|plus|jamais).{0,15}(?:complexe|compliqué|dur)`),
				apply: func(s *state) {
					s.ceil(lexicon.Complexity, negatedComplexityCeiling)
					s.ceil(lexicon.LearningCurve, negatedComplexityCeiling)
				},
			},
			{
				re: compile(`(?:pas|plus|jamais).{0,15}(?:long|éternel|infini)`),
				apply: func(s *state) {
					s.ceil(lexicon.MaxDuration, negatedDurationCeiling)
				},
			},
			{
				re: compile(`(?:pas|plus|jamais).{0,15}(?:conflit|conflict|guerre|agressif)`),
				apply: func(s *state) {
					s.ceil(lexicon.Conflict, negatedConflictCeiling)
				},
			},
		},
	}
}

// apply runs the player, duration and negation detectors in that order.
// Negations come last so they act as hard ceilings over every merge.
func (c contextPatterns) apply(text string, s *state) {
	c.detectPlayers(text, s)
	c.detectDurations(text, s)
	for _, n := range c.negations {
		if n.re.MatchString(text) {
			n.apply(s)
		}
	}
}

// detectPlayers stops at the first pattern that yields a count.
func (c contextPatterns) detectPlayers(text string, s *state) {
	for _, p := range c.players {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			s.attrs[lexicon.IdealPlayers] = float64(n)
			return
		}
		s.attrs[lexicon.IdealPlayers] = float64(p.value)
		return
	}
}

// detectDurations applies the first match of every duration pattern.
func (c contextPatterns) detectDurations(text string, s *state) {
	for _, p := range c.durations {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		v := float64(minutes)

		switch p.kind {
		case durationMax:
			s.ceil(lexicon.MaxDuration, v)
		case durationMin:
			s.floor(lexicon.MinDuration, v)
		case durationAverage:
			s.explicitAverage = &v
		}
	}
}
