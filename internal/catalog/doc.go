// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package catalog loads, validates and serves the board game catalog.

A catalog comes from a Source: a JSON file (object form {"games": [...]} or
a bare array), the embedded seed catalog, or a SQLite database whose schema
is managed by embedded golang-migrate migrations. Every source validates
the whole catalog before it is used: unique ids, non-blank names,
1 <= min <= ideal <= max players, 0 < min <= average <= max minutes and
every mood attribute in [1, 5]. One bad record rejects the catalog with a
*ValidationError listing every problem.

# Snapshots

Store publishes immutable Snapshots through an atomic pointer. Replace
builds a complete snapshot and swaps it in, so a request that captured a
snapshot keeps a consistent view while a reload happens:

	store := catalog.NewStore(logger)
	if _, err := store.Reload(ctx, catalog.JSONSource{Path: path}); err != nil {
	    return err
	}
	snap := store.Snapshot()
	games := snap.Restrict(ids)

Watcher is a supervised service that reloads a JSON file on change and
keeps the previous snapshot when the new file does not validate.
*/
package catalog
