// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package mood

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Affinity scoring points.
const (
	moodMentionPoints = 3
	tokenPoints       = 1
	specificPoints    = 2

	// Tokens shorter than this never fuzzy-match a mood key.
	minAffinityToken = 3
)

// affinity computes the tag-oriented reading used by the tag-weighted scorer.
func (e *Extractor) affinity(text string) Affinity {
	a := neutralAffinity()
	tokens := tokenize(text)

	for _, rule := range e.lex.Rules() {
		if len(rule.CatalogTags) == 0 {
			continue
		}
		key := e.lex.Normalize(rule.Mood)

		if strings.Contains(text, key) {
			for _, tag := range rule.CatalogTags {
				a.TagScores[strings.ToLower(tag)] += moodMentionPoints
			}
		}

		for _, token := range tokens {
			if strings.Contains(token, key) || strings.Contains(key, token) {
				for _, tag := range rule.CatalogTags {
					a.TagScores[strings.ToLower(tag)] += tokenPoints
				}
			}
		}
	}

	for category, words := range e.lex.Specific() {
		for _, w := range words {
			if strings.Contains(text, e.lex.Normalize(w)) {
				a.TagScores[strings.ToLower(category)] += specificPoints
			}
		}
	}

	cw := e.lex.ComplexityWords()
	low, high := e.countWords(text, cw.Low), e.countWords(text, cw.High)
	switch {
	case low > high:
		a.Complexity = 1
	case high > low:
		a.Complexity = 3
	}

	dw := e.lex.DurationWords()
	short, long := e.countWords(text, dw.Short), e.countWords(text, dw.Long)
	switch {
	case short > long:
		a.Duration = 30
	case long > short:
		a.Duration = 120
	}

	for _, pr := range e.lex.PlayerRanges() {
		if e.countWords(text, pr.Triggers) > 0 {
			a.PlayersMin, a.PlayersMax = pr.Min, pr.Max
			break
		}
	}

	return a
}

func (e *Extractor) countWords(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, e.lex.Normalize(w)) {
			n++
		}
	}
	return n
}

// tokenize splits on anything that is not a letter or digit and drops
// tokens too short to carry meaning.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minAffinityToken {
			out = append(out, f)
		}
	}
	return out
}
