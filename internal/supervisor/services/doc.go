// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package services adapts blocking components to suture.Service. The catalog
// watcher and the response cache already implement Serve and String and are
// added to the tree directly.
package services
