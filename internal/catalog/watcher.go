// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultReloadDebounce is the quiet period after the last file event before
// a reload runs.
const DefaultReloadDebounce = 500 * time.Millisecond

// Watcher reloads a JSON catalog file into a Store whenever it changes. It
// implements suture.Service.
//
// The parent directory is watched rather than the file so that editors and
// deploy tools replacing the file through a rename are still seen. A reload
// that fails validation is logged and the previous snapshot keeps serving.
type Watcher struct {
	store    *Store
	source   JSONSource
	debounce time.Duration
	limiter  *rate.Limiter
	logger   zerolog.Logger

	// reloaded is signalled after every reload attempt; tests use it.
	reloaded chan error
}

// NewWatcher creates a watcher for path. Reloads are debounced and limited
// to one per debounce interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWatcher(store *Store, path string, debounce time.Duration, logger zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	return &Watcher{
		store:    store,
		source:   JSONSource{Path: path},
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Every(debounce), 1),
		logger:   logger.With().Str("component", "catalog-watcher").Str("path", path).Logger(),
	}
}

// String implements fmt.Stringer for suture logging.
func (w *Watcher) String() string {
	return "catalog-watcher"
}

// Serve watches until ctx is cancelled.
func (w *Watcher) Serve(ctx context.Context) (err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if closeErr := fw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	target := filepath.Clean(w.source.Path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	w.logger.Info().Msg("watching catalog file")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			if filepath.Clean(event.Name) != target || !relevant(event.Op) {
				continue
			}
			timer.Reset(w.debounce)

		case werr, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			w.logger.Warn().Err(werr).Msg("file watcher error")

		case <-timer.C:
			if err := w.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	snap, err := w.store.Reload(ctx, w.source)
	if err != nil {
		w.logger.Error().Err(err).
			Uint64("serving_version", w.store.Snapshot().Version).
			Msg("catalog reload failed, keeping previous snapshot")
	} else {
		w.logger.Info().Uint64("version", snap.Version).Int("games", snap.Len()).Msg("catalog reloaded")
	}

	if w.reloaded != nil {
		select {
		case w.reloaded <- err:
		default:
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
