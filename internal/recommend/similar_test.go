// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"testing"

	"github.com/tomtom215/ludomood/internal/catalog"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	target := neutralGame(1)
	target.PrimaryType = "stratégie"
	target.Mechanics = []string{"draft", "placement"}

	tests := []struct {
		name   string
		modify func(*catalog.Game)
		want   int
	}{
		{"twin", func(g *catalog.Game) {
			g.PrimaryType = "stratégie"
			g.Mechanics = []string{"Draft"}
		}, 65},
		{"other type", func(g *catalog.Game) { g.PrimaryType = "ambiance" }, 40},
		{"half a point apart", func(g *catalog.Game) {
			g.PrimaryType = "ambiance"
			g.Complexity = 3.5
			g.AverageDuration = 90
		}, 25},
		{"nothing in common", func(g *catalog.Game) {
			g.PrimaryType = "party"
			g.Complexity = 5
			g.AverageDuration = 180
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := neutralGame(2)
			tt.modify(&g)
			if got := Similarity(&target, &g); got != tt.want {
				t.Errorf("Similarity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSimilar(t *testing.T) {
	t.Parallel()

	games, err := catalog.Seed()
	if err != nil {
		t.Fatalf("catalog.Seed() error = %v", err)
	}
	target := games[0]

	got := Similar(&target, games, 5, 15)
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("len(Similar()) = %d, want 1-5", len(got))
	}
	for i, sg := range got {
		if sg.Game.ID == target.ID {
			t.Error("Similar() returned the target itself")
		}
		if sg.Similarity <= 15 {
			t.Errorf("Similar()[%d].Similarity = %d, want > 15", i, sg.Similarity)
		}
		if i > 0 && sg.Similarity > got[i-1].Similarity {
			t.Errorf("Similar() out of order at %d", i)
		}
	}
}
