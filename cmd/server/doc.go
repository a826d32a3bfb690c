// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package main is the entry point for the Ludomood server.
//
// Ludomood reads a free-text mood description in French ("je suis crevé,
// un truc rapide entre amis") and recommends board games from a catalog.
//
// # Startup
//
//  1. Configuration: defaults, then config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog, json or console
//  3. Lexicon: embedded default or LEXICON_OVERRIDE_PATH (YAML or TOML)
//  4. Catalog: JSON file (embedded seed when CATALOG_PATH is empty) or SQLite
//  5. Engine, response cache and HTTP router
//  6. Supervisor tree: catalog watcher, cache janitor, uptime, HTTP server
//
// # Example Usage
//
//	export CATALOG_PATH=/data/games.json
//	export CATALOG_WATCH=true
//	export LOG_FORMAT=console
//	./ludomood
//
// SQLite catalog, imported from the JSON file on first start:
//
//	export CATALOG_SOURCE=sqlite
//	export CATALOG_DATABASE_PATH=/data/ludomood.db
//	./ludomood
//
// The server stops gracefully on SIGINT and SIGTERM.
package main
