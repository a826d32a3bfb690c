// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeCatalog(t *testing.T, path string, games []Game) {
	t.Helper()
	data, err := Encode(games)
	if err != nil {
		t.Fatal(err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func waitReload(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return nil
	}
}

func TestWatcher_Reloads(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.json")
	writeCatalog(t, path, []Game{testGame(1, "Azul")})

	store := NewStore(zerolog.Nop())
	if _, err := store.Reload(context.Background(), JSONSource{Path: path}); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(store, path, 20*time.Millisecond, zerolog.Nop())
	w.reloaded = make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()
	defer func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	writeCatalog(t, path, []Game{testGame(1, "Azul"), testGame(2, "Hanabi")})
	if err := waitReload(t, w.reloaded); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if got := store.Snapshot().Len(); got != 2 {
		t.Errorf("after reload Len() = %d, want 2", got)
	}
	good := store.Snapshot()

	if err := os.WriteFile(path, []byte(`{"games": [{"id": 1}]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := waitReload(t, w.reloaded); err == nil {
		t.Fatal("invalid catalog reloaded without error")
	}
	if store.Snapshot() != good {
		t.Error("invalid catalog replaced the serving snapshot")
	}
}

func TestWatcher_String(t *testing.T) {
	t.Parallel()

	w := NewWatcher(NewStore(zerolog.Nop()), "games.json", 0, zerolog.Nop())
	if w.String() != "catalog-watcher" {
		t.Errorf("String() = %q", w.String())
	}
	if w.debounce != DefaultReloadDebounce {
		t.Errorf("debounce = %v, want default", w.debounce)
	}
}
