// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package logging

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// maxDebugMoodRunes bounds how much mood text a debug line may carry.
const maxDebugMoodRunes = 80

// MoodText adds a description of free mood text to event. Only the rune
// and word counts are logged unless the debug level is enabled, in which
// case a truncated copy is added as well. Mood text can be personal and
// never reaches info-level logs.
func MoodText(event *zerolog.Event, text string) *zerolog.Event {
	event = event.
		Int("mood_runes", utf8.RuneCountInString(text)).
		Int("mood_words", len(strings.Fields(text)))
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		event = event.Str("mood_text", Truncate(text, maxDebugMoodRunes))
	}
	return event
}

// Truncate cuts s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
