// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func testGame(id int, name string) Game {
	return Game{
		ID:              id,
		Name:            name,
		MinPlayers:      2,
		IdealPlayers:    4,
		MaxPlayers:      6,
		MinDuration:     30,
		AverageDuration: 45,
		MaxDuration:     60,
		PrimaryType:     "familial",
		EnergyRequired:  3,
		SocialLevel:     3,
		LuckFactor:      3,
		TensionLevel:    3,
		Complexity:      2,
		LearningCurve:   2,
		Replayability:   3,
		ConflictLevel:   2,
		MoodTags:        []string{"familial", "rapide"},
		SuitedContexts:  []string{"famille"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(g []Game)
		field  string
	}{
		{"valid", func([]Game) {}, ""},
		{"duplicate id", func(g []Game) { g[1].ID = g[0].ID }, "id"},
		{"blank name", func(g []Game) { g[0].Name = "  " }, "name"},
		{"min above max players", func(g []Game) { g[0].MinPlayers = 7 }, "max_players"},
		{"ideal outside range", func(g []Game) { g[0].IdealPlayers = 9 }, "ideal_players"},
		{"zero duration", func(g []Game) { g[0].MinDuration = 0 }, "min_duration"},
		{"average above max", func(g []Game) { g[0].AverageDuration = 90 }, "average_duration"},
		{"attribute above scale", func(g []Game) { g[1].TensionLevel = 5.5 }, "tension_level"},
		{"attribute below scale", func(g []Game) { g[1].Complexity = 0 }, "complexity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			games := []Game{testGame(1, "Azul"), testGame(2, "Patchwork")}
			tt.mutate(games)
			err := Validate(games)

			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			found := false
			for _, p := range verr.Problems {
				if p.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("problems = %+v, want field %q", verr.Problems, tt.field)
			}
		})
	}
}

func TestValidationError_Truncates(t *testing.T) {
	t.Parallel()

	games := make([]Game, 8)
	for i := range games {
		games[i] = testGame(i+1, "")
	}
	err := Validate(games)
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	if !strings.Contains(err.Error(), "and 3 more") {
		t.Errorf("Error() = %q, want truncation", err.Error())
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "object form",
			input: `{"games": [{"id": 1, "name": "Azul", "min_players": 2, "max_players": 4, "average_duration": 40, "energy_required": 2, "social_level": 2, "luck_factor": 1.5, "tension_level": 2, "complexity": 1.8, "learning_curve": 1.5, "replayability": 4, "conflict_level": 2}]}`,
			want:  1,
		},
		{
			name:  "bare array",
			input: `[{"id": 7, "name": "Dobble", "min_players": 2, "ideal_players": 4, "max_players": 8, "min_duration": 10, "average_duration": 15, "max_duration": 15, "energy_required": 4, "social_level": 3.5, "luck_factor": 2, "tension_level": 3.5, "complexity": 1, "learning_curve": 1, "replayability": 3, "conflict_level": 2}]`,
			want:  1,
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "scalar", input: `42`, wantErr: true},
		{name: "malformed", input: `{"games": [`, wantErr: true},
		{
			name:    "invalid record",
			input:   `[{"id": 1, "name": "Broken", "min_players": 5, "max_players": 2, "average_duration": 30, "energy_required": 3, "social_level": 3, "luck_factor": 3, "tension_level": 3, "complexity": 3, "learning_curve": 3, "replayability": 3, "conflict_level": 3}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			games, err := Decode([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(games) != tt.want {
				t.Errorf("len = %d, want %d", len(games), tt.want)
			}
		})
	}
}

func TestDecode_FillsDefaults(t *testing.T) {
	t.Parallel()

	games, err := Decode([]byte(`[{"id": 1, "name": "Azul", "min_players": 2, "max_players": 4, "average_duration": 40, "energy_required": 2, "social_level": 2, "luck_factor": 1.5, "tension_level": 2, "complexity": 1.8, "learning_curve": 1.5, "replayability": 4, "conflict_level": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	g := games[0]
	if g.IdealPlayers != 3 {
		t.Errorf("IdealPlayers = %d, want 3", g.IdealPlayers)
	}
	if g.MinDuration != 40 || g.MaxDuration != 40 {
		t.Errorf("durations = %d-%d, want 40-40", g.MinDuration, g.MaxDuration)
	}
	if g.MoodTags == nil || g.Mechanics == nil {
		t.Error("list fields should never be nil after decode")
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	games, err := Seed()
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if len(games) < 20 {
		t.Errorf("len(Seed()) = %d, want at least 20", len(games))
	}

	round, err := Encode(games)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Decode(round)
	if err != nil {
		t.Fatalf("Decode(Encode(seed)) error = %v", err)
	}
	if len(again) != len(games) {
		t.Errorf("round trip len = %d, want %d", len(again), len(games))
	}
}

func newTestStore(t *testing.T, games ...Game) *Store {
	t.Helper()
	s := NewStore(zerolog.Nop())
	if _, err := s.Replace(games, "test"); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	return s
}

func TestStore_ReplaceKeepsPreviousOnError(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, testGame(1, "Azul"))
	before := s.Snapshot()
	if before.Version != 1 {
		t.Errorf("Version = %d, want 1", before.Version)
	}

	bad := testGame(2, "Broken")
	bad.MaxPlayers = 1
	if _, err := s.Replace([]Game{bad}, "test"); err == nil {
		t.Fatal("Replace(invalid) = nil error")
	}
	if s.Snapshot() != before {
		t.Error("failed Replace swapped the snapshot")
	}

	next, err := s.Replace([]Game{testGame(3, "Hanabi")}, "test")
	if err != nil {
		t.Fatal(err)
	}
	if next.Version != 2 {
		t.Errorf("Version = %d, want 2", next.Version)
	}
	if before.Len() != 1 {
		t.Error("old snapshot changed after swap")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	t.Parallel()

	a := testGame(1, "Azul")
	a.PrimaryType = "Familial"
	a.Complexity = 1.8
	a.Replayability = 4

	b := testGame(2, "Root")
	b.PrimaryType = "expert"
	b.MoodTags = []string{"asymétrie", "conquête"}
	b.SuitedContexts = []string{"joueurs confirmés"}
	b.Replayability = 4.5

	c := testGame(3, "Kingdomino")
	c.Complexity = 1.2
	c.Replayability = 3.5

	snap := newTestStore(t, a, b, c).Snapshot()

	t.Run("by id", func(t *testing.T) {
		g, err := snap.Game(2)
		if err != nil || g.Name != "Root" {
			t.Errorf("Game(2) = %v, %v", g.Name, err)
		}
		if _, err := snap.Game(99); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("Game(99) error = %v, want ErrGameNotFound", err)
		}
	})

	t.Run("by type sorted by complexity", func(t *testing.T) {
		got := names(snap.ByType("familial"))
		if strings.Join(got, ",") != "Kingdomino,Azul" {
			t.Errorf("ByType = %v", got)
		}
	})

	t.Run("by context", func(t *testing.T) {
		got := names(snap.ByContext("Famille"))
		if strings.Join(got, ",") != "Azul,Kingdomino" {
			t.Errorf("ByContext = %v", got)
		}
	})

	t.Run("search tags", func(t *testing.T) {
		got := names(snap.SearchTags([]string{"conquê", " "}, 10))
		if strings.Join(got, ",") != "Root" {
			t.Errorf("SearchTags = %v", got)
		}
		if len(snap.SearchTags([]string{""}, 10)) != 0 {
			t.Error("blank tags should match nothing")
		}
		if len(snap.SearchTags([]string{"rapide"}, 1)) != 1 {
			t.Error("limit not applied")
		}
	})

	t.Run("restrict", func(t *testing.T) {
		got := names(snap.Restrict([]int{3, 1, 42}))
		if strings.Join(got, ",") != "Azul,Kingdomino" {
			t.Errorf("Restrict = %v", got)
		}
	})

	t.Run("copies do not alias", func(t *testing.T) {
		g, _ := snap.Game(1)
		g.MoodTags[0] = "mutated"
		again, _ := snap.Game(1)
		if again.MoodTags[0] == "mutated" {
			t.Error("Game() returned an aliased slice")
		}
	})
}

func TestStore_ConcurrentReadsDuringReplace(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, testGame(1, "Azul"), testGame(2, "Patchwork"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := s.Snapshot()
				if n := len(snap.Games()); n != snap.Len() {
					t.Errorf("snapshot inconsistent: %d vs %d", n, snap.Len())
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		games := []Game{testGame(1, "Azul")}
		if i%2 == 0 {
			games = append(games, testGame(2, "Patchwork"))
		}
		if _, err := s.Replace(games, "test"); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
}

func TestJSONSource(t *testing.T) {
	t.Parallel()

	src := JSONSource{}
	if src.Name() != "embedded" {
		t.Errorf("Name() = %q", src.Name())
	}
	games, err := src.Load(context.Background())
	if err != nil || len(games) == 0 {
		t.Fatalf("Load() = %d games, %v", len(games), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load(cancelled) error = %v", err)
	}

	if _, err := (JSONSource{Path: "/does/not/exist.json"}).Load(context.Background()); err == nil {
		t.Error("Load(missing file) = nil error")
	}
}

func names(games []Game) []string {
	out := make([]string, len(games))
	for i := range games {
		out[i] = games[i].Name
	}
	return out
}
