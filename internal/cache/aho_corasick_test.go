// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package cache

import (
	"sync"
	"testing"
)

func TestAhoCorasick_BasicOperations(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("he", nil)
	ac.AddPattern("she", nil)
	ac.AddPattern("his", nil)
	ac.AddPattern("hers", nil)
	ac.Build()

	matches := ac.Search("ushers")
	found := map[string]bool{}
	for _, m := range matches {
		found[m.Pattern] = true
	}
	for _, want := range []string{"she", "he", "hers"} {
		if !found[want] {
			t.Errorf("expected to find %q in %v", want, matches)
		}
	}
}

func TestAhoCorasick_CaseInsensitive(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("Détendu", nil)
	ac.AddPattern("amis", nil)
	ac.Build()

	for _, text := range []string{"détendu entre amis", "DÉTENDU ENTRE AMIS", "Détendu Entre Amis"} {
		if got := len(ac.Search(text)); got != 2 {
			t.Errorf("Search(%q) = %d matches, want 2", text, got)
		}
	}
}

func TestAhoCorasick_CaseSensitive(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasickCaseSensitive()
	ac.AddPattern("Zen", nil)
	ac.Build()

	if ac.Contains("zen") {
		t.Error("case-sensitive automaton matched different case")
	}
	if !ac.Contains("Zen") {
		t.Error("case-sensitive automaton missed exact case")
	}
}

func TestAhoCorasick_MultibytePositions(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("épuisé", "fatigue")
	ac.AddPattern("entre amis", "amis")
	ac.Build()

	text := "très épuisé, entre amis"
	matches := ac.Search(text)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	for _, m := range matches {
		if got := text[m.Start:m.End]; got != m.Pattern {
			t.Errorf("text[%d:%d] = %q, want %q", m.Start, m.End, got, m.Pattern)
		}
	}
}

func TestAhoCorasick_WordStart(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick().WithWordStart()
	ac.AddPattern("las", "fatigué")
	ac.AddPattern("fatigué", "fatigué")
	ac.AddPattern("con", "bad")
	ac.Build()

	tests := []struct {
		text string
		want int
	}{
		{"un jeu classique", 0},
		{"je suis las", 1},
		{"lassé", 1},
		{"elle est fatiguée", 1},
		{"un jeu convivial", 1}, // starts a word, may end mid-word
		{"seconde partie", 0},
		{"(las)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			if got := len(ac.Search(tt.text)); got != tt.want {
				t.Errorf("Search(%q) = %d matches, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAhoCorasick_SearchFirst(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("rapide", 1)
	ac.AddPattern("court", 2)
	ac.Build()

	m, ok := ac.SearchFirst("un jeu court et rapide")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Pattern != "court" || m.Data != 2 {
		t.Errorf("SearchFirst = %+v, want court/2", m)
	}

	if _, ok := ac.SearchFirst("rien ici"); ok {
		t.Error("expected no match")
	}
}

func TestAhoCorasick_EmptyAndUnbuilt(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("", nil)
	ac.AddPattern("   ", nil)
	if ac.PatternCount() != 0 {
		t.Errorf("PatternCount() = %d, want 0", ac.PatternCount())
	}

	ac.AddPattern("zen", nil)
	if ac.Contains("zen") {
		t.Error("unbuilt automaton should not match")
	}

	ac.Build()
	if !ac.Contains("zen") {
		t.Error("built automaton should match")
	}
}

func TestAhoCorasick_Rebuild(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("calme", nil)
	ac.Build()
	ac.AddPattern("serein", nil)
	ac.Build()

	if got := len(ac.Search("calme et serein")); got != 2 {
		t.Errorf("got %d matches after rebuild, want 2", got)
	}
}

func TestAhoCorasick_OverlappingPatterns(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("détendre", "a")
	ac.AddPattern("se détendre", "b")
	ac.AddPattern("nous détendre", "c")
	ac.Build()

	matches := ac.Search("on veut se détendre")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
}

func TestAhoCorasick_Concurrent(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPatterns([]string{"calme", "zen", "amis"}, "x")
	ac.Build()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := len(ac.Search("calme et zen entre amis")); got != 3 {
				t.Errorf("got %d matches, want 3", got)
			}
		}()
	}
	wg.Wait()
}
