// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteSource {
	t.Helper()
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestSQLiteSource_ImportAndLoad(t *testing.T) {
	t.Parallel()

	src := openTestSQLite(t)
	ctx := context.Background()

	empty, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on fresh database error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("fresh database has %d games", len(empty))
	}

	seed, err := Seed()
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Import(ctx, seed); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != len(seed) {
		t.Fatalf("Load() = %d games, want %d", len(loaded), len(seed))
	}

	byID := make(map[int]Game, len(loaded))
	for _, g := range loaded {
		byID[g.ID] = g
	}
	for _, want := range seed {
		got, ok := byID[want.ID]
		if !ok {
			t.Errorf("game %d missing after import", want.ID)
			continue
		}
		if got.Name != want.Name || got.Complexity != want.Complexity || got.AverageDuration != want.AverageDuration {
			t.Errorf("game %d = %+v, want %+v", want.ID, got, want)
		}
		if !reflect.DeepEqual(got.MoodTags, want.MoodTags) || !reflect.DeepEqual(got.Mechanics, want.Mechanics) {
			t.Errorf("game %d list columns differ: %v / %v", want.ID, got.MoodTags, want.MoodTags)
		}
	}
}

func TestSQLiteSource_ImportRejectsInvalid(t *testing.T) {
	t.Parallel()

	src := openTestSQLite(t)
	ctx := context.Background()

	if err := src.Import(ctx, []Game{testGame(1, "Azul")}); err != nil {
		t.Fatal(err)
	}

	bad := testGame(2, "Broken")
	bad.LuckFactor = 9
	err := src.Import(ctx, []Game{testGame(3, "Hanabi"), bad})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Import(invalid) error = %v, want *ValidationError", err)
	}

	games, err := src.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].Name != "Azul" {
		t.Errorf("catalog changed after rejected import: %v", names(games))
	}
}

func TestSQLiteSource_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Import(ctx, []Game{testGame(1, "Azul")}); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	store := newTestStore(t)
	snap, err := store.Reload(ctx, second)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Len() != 1 || snap.Source != "sqlite" {
		t.Errorf("snapshot = %d games from %q", snap.Len(), snap.Source)
	}
}
