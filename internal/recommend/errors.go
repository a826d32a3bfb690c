// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import "errors"

var (
	// ErrInvalidInput rejects a malformed request before any processing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyMood is returned for empty or whitespace-only mood text.
	ErrEmptyMood = errors.New("empty mood description")

	// ErrEmptyCatalog is returned when no game is left to score, for
	// example after a restriction to an empty or unknown id list. It is
	// distinct from a request that ran and matched nothing.
	ErrEmptyCatalog = errors.New("empty catalog")
)
