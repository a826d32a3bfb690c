// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/mood"
	"github.com/tomtom215/ludomood/internal/scoring"
)

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	lex, err := lexicon.Default(lexicon.Options{})
	if err != nil {
		t.Fatalf("lexicon.Default() error = %v", err)
	}
	e, err := NewEngine(cfg, lex, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func neutralGame(id int) catalog.Game {
	return catalog.Game{
		ID:              id,
		Name:            fmt.Sprintf("Jeu %d", id),
		PrimaryType:     "familial",
		MinPlayers:      2,
		IdealPlayers:    4,
		MaxPlayers:      6,
		MinDuration:     45,
		AverageDuration: 60,
		MaxDuration:     75,
		EnergyRequired:  3,
		SocialLevel:     3,
		LuckFactor:      3,
		TensionLevel:    3,
		Complexity:      3,
		LearningCurve:   3,
		Replayability:   3,
		ConflictLevel:   3,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero default count", func(c *Config) { c.DefaultCount = 0 }, true},
		{"max below default", func(c *Config) { c.MaxCount = 2 }, true},
		{"threshold above 100", func(c *Config) { c.EligibilityThreshold = 101 }, true},
		{"unknown scorer", func(c *Config) { c.Scorer = "blend" }, true},
		{"tag weighted scorer", func(c *Config) { c.Scorer = scoring.NameTagWeighted }, false},
		{"negative similar threshold", func(c *Config) { c.SimilarThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommend_Errors(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	games := []catalog.Game{neutralGame(1), neutralGame(2)}

	tests := []struct {
		name  string
		text  string
		games []catalog.Game
		opts  Options
		want  error
	}{
		{"blank text", "  \n", games, Options{}, ErrEmptyMood},
		{"invalid utf8", "fatigu\xe9", games, Options{}, ErrInvalidInput},
		{"negative count", "calme", games, Options{Count: -1}, ErrInvalidInput},
		{"count above max", "calme", games, Options{Count: 21}, ErrInvalidInput},
		{"non-positive id", "calme", games, Options{RestrictToIDs: []int{1, 0}}, ErrInvalidInput},
		{"empty catalog", "calme", nil, Options{}, ErrEmptyCatalog},
		{"library only without ids", "calme", games, Options{LibraryOnly: true}, ErrEmptyCatalog},
		{"unknown ids", "calme", games, Options{RestrictToIDs: []int{99}}, ErrEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := e.Recommend(context.Background(), tt.text, tt.games, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Recommend() error = %v, want %v", err, tt.want)
			}
			if resp != nil {
				t.Errorf("Recommend() response = %+v, want nil", resp)
			}
		})
	}
}

func TestRecommend_CanceledContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recommend(ctx, "calme", []catalog.Game{neutralGame(1)}, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestRecommend_NothingSpecial(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	resp, err := e.Recommend(context.Background(), "rien de spécial", []catalog.Game{neutralGame(1)}, Options{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("len(Recommendations) = %d, want 1", len(resp.Recommendations))
	}
	if got := resp.Recommendations[0].Result.Percent; got <= DefaultConfig().EligibilityThreshold {
		t.Errorf("Percent = %d, want above threshold", got)
	}
	if resp.Metadata.TotalGamesAnalyzed != 1 || resp.Metadata.GamesAboveThreshold != 1 {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
	if resp.Metadata.Scorer != scoring.NameAttribute {
		t.Errorf("Scorer = %q", resp.Metadata.Scorer)
	}
	if len(resp.Explanations) == 0 {
		t.Error("Explanations is empty")
	}
}

func TestRecommend_Restriction(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	games := make([]catalog.Game, 10)
	for i := range games {
		games[i] = neutralGame(i + 1)
	}

	resp, err := e.Recommend(context.Background(), "une soirée calme", games, Options{RestrictToIDs: []int{3, 7}})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) > 2 {
		t.Errorf("len(Recommendations) = %d, want <= 2", len(resp.Recommendations))
	}
	for _, r := range resp.Recommendations {
		if r.Game.ID != 3 && r.Game.ID != 7 {
			t.Errorf("recommended game %d outside restriction", r.Game.ID)
		}
	}
	if !resp.Metadata.LibraryOnly || resp.Metadata.LibraryGamesCount != 2 || resp.Metadata.TotalGamesAnalyzed != 2 {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
}

func TestRecommend_NoMatchIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.EligibilityThreshold = 100
	e := newTestEngine(t, cfg)

	resp, err := e.Recommend(context.Background(), "calme", []catalog.Game{neutralGame(1)}, Options{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("len(Recommendations) = %d, want 0", len(resp.Recommendations))
	}
	if !slices.Contains(resp.Explanations, msgNoMatch) {
		t.Errorf("Explanations = %v, want no-match message", resp.Explanations)
	}
	if !slices.Contains(resp.Suggestions, suggestBroaden) {
		t.Errorf("Suggestions = %v, want broaden hint", resp.Suggestions)
	}
}

func TestRecommend_SeedCatalog(t *testing.T) {
	t.Parallel()

	games, err := catalog.Seed()
	if err != nil {
		t.Fatalf("catalog.Seed() error = %v", err)
	}

	for _, scorer := range scoring.Names() {
		t.Run(scorer, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			cfg.Scorer = scorer
			e := newTestEngine(t, cfg)

			resp, err := e.Recommend(context.Background(),
				"on est crevés, un jeu rapide et drôle entre amis", games, Options{Count: 5})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(resp.Recommendations) == 0 || len(resp.Recommendations) > 5 {
				t.Fatalf("len(Recommendations) = %d, want 1-5", len(resp.Recommendations))
			}
			for i := 1; i < len(resp.Recommendations); i++ {
				if resp.Recommendations[i].Result.Raw > resp.Recommendations[i-1].Result.Raw {
					t.Errorf("recommendations not ordered by score at %d", i)
				}
			}
		})
	}
}

func TestAnalyzeMood(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	p := e.AnalyzeMood("je suis crevé")
	if p.Energy >= mood.DefaultAttribute {
		t.Errorf("Energy = %v, want below neutral", p.Energy)
	}
}

func TestGlobalExplanations(t *testing.T) {
	t.Parallel()

	low := mood.Neutral()
	low.Energy, low.Social, low.MaxDuration = 1.5, 4.5, 30
	low.DetectedTags = []string{"calme", "rapide", "party", "bluff"}
	low.Confidence = 80

	recs := []ScoredGame{{Result: scoring.Result{Percent: 80}}, {Result: scoring.Result{Percent: 70}}}

	tests := []struct {
		name string
		p    mood.Profile
		recs []ScoredGame
		want []string
	}{
		{
			name: "vague with no match",
			p:    mood.Neutral(),
			want: []string{msgLowConfidence, msgNoMatch},
		},
		{
			name: "tired sociable short",
			p:    low,
			recs: recs,
			want: []string{msgLowEnergy, msgHighSocial, msgShortGames, msgTagsPrefix + "calme, rapide, party", msgExcellent},
		},
		{
			name: "partial",
			p:    mood.Profile{Energy: 3, Social: 3, MinDuration: 30, MaxDuration: 90, Confidence: 90},
			recs: []ScoredGame{{Result: scoring.Result{Percent: 20}}},
			want: []string{msgPartial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := globalExplanations(&tt.p, tt.recs, DefaultConfig().LowConfidence)
			if !slices.Equal(got, tt.want) {
				t.Errorf("globalExplanations() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	p := mood.Neutral()
	p.Complexity = 1.5
	complexGame := neutralGame(1)
	complexGame.Complexity = 4.5

	got := Suggestions(&p, []ScoredGame{{Game: complexGame}})
	want := []string{suggestBeSpecific, suggestSimpler}
	if !slices.Equal(got, want) {
		t.Errorf("Suggestions() = %q, want %q", got, want)
	}

	p.DetectedMoods = []string{"fatigué"}
	if got := Suggestions(&p, []ScoredGame{{Game: neutralGame(2)}}); len(got) != 0 {
		t.Errorf("Suggestions() = %q, want none", got)
	}
}
