// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package recommend turns a mood description into a ranked, diverse
// shortlist of board games.
//
// # Pipeline
//
// A Recommend call runs these steps in order:
//
//  1. reject malformed input (ErrInvalidInput) and blank text (ErrEmptyMood)
//  2. restrict the catalog to the requested ids, failing with
//     ErrEmptyCatalog when nothing is left
//  3. extract a mood.Profile from the text
//  4. score every game with the configured scoring.Scorer
//  5. Select a shortlist: eligibility threshold, name dedupe, one game per
//     (primary type, complexity band) bucket, missing bands, backfill
//  6. attach global explanations, suggestions and search metadata
//
// Running out of eligible games is a normal outcome, not an error.
//
// # Thread Safety
//
// Engine is immutable after NewEngine and safe for concurrent use. Callers
// pass the game slice on every call, typically from a catalog.Snapshot, so
// a catalog reload never races with a running request.
//
// # Example
//
//	engine, err := recommend.NewEngine(nil, lexicon.MustDefault(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, "crevé, un truc rapide entre amis",
//	    store.Snapshot().Games(), recommend.Options{Count: 5})
package recommend
