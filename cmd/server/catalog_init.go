// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/config"
	"github.com/tomtom215/ludomood/internal/logging"
)

// nopCloser is returned when the catalog source holds no resources.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadCatalog performs the first catalog load into store. The returned
// closer releases the source's resources at shutdown.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, store *catalog.Store) (io.Closer, error) {
	jsonSrc := catalog.JSONSource{Path: cfg.Path}

	if cfg.Source != config.SourceSQLite {
		if _, err := store.Reload(ctx, jsonSrc); err != nil {
			return nil, fmt.Errorf("load catalog from %s: %w", jsonSrc.Name(), err)
		}
		return nopCloser{}, nil
	}

	db, err := catalog.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	games, err := db.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if len(games) == 0 {
		logging.Info().Str("from", jsonSrc.Name()).Msg("SQLite catalog is empty, importing")
		seed, err := jsonSrc.Load(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("load catalog to import: %w", err)
		}
		if err := db.Import(ctx, seed); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if _, err := store.Reload(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load catalog from %s: %w", db.Name(), err)
	}
	return db, nil
}
