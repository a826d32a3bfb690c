// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/ludomood/internal/logging"
	"github.com/tomtom215/ludomood/internal/mood"
	"github.com/tomtom215/ludomood/internal/recommend"
)

// batchWorkers bounds concurrent extractions for one batch request.
const batchWorkers = 4

// BatchItem is one analyzed entry of a batch, in request order.
type BatchItem struct {
	Index   int          `json:"index"`
	Profile mood.Profile `json:"mood_analysis"`
}

// AnalyzeMood extracts a mood profile without scoring any game. Blank text
// yields the neutral profile.
func (h *Handler) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req AnalyzeRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	logging.MoodText(logging.Ctx(r.Context()).Debug(), req.Mood).Msg("Analyzing mood")
	respondOK(w, r, start, h.engine.AnalyzeMood(req.Mood), Metadata{})
}

// AnalyzeBatch extracts up to MaxBatchMoods profiles concurrently.
func (h *Handler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req BatchAnalyzeRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	items, err := h.analyzeBatch(r.Context(), req.Moods)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeInternal, "Batch analysis interrupted", err)
		return
	}
	respondOK(w, r, start, items, Metadata{})
}

func (h *Handler) analyzeBatch(ctx context.Context, moods []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(moods))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, text := range moods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = BatchItem{Index: i, Profile: h.engine.AnalyzeMood(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// Recommend analyzes a mood and returns a diversified shortlist.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req RecommendRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	snap := h.store.Snapshot()
	resp, err := h.engine.Recommend(r.Context(), req.Mood, snap.Games(), recommend.Options{
		Count:         req.Count,
		LibraryOnly:   req.LibraryOnly,
		RestrictToIDs: req.GameIDs,
	})
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}
	respondOK(w, r, start, resp, Metadata{CatalogVersion: snap.Version})
}

func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrEmptyMood):
		respondError(w, r, http.StatusBadRequest, ErrCodeEmptyMood, "Mood description is required", nil)
	case errors.Is(err, recommend.ErrEmptyCatalog):
		respondError(w, r, http.StatusUnprocessableEntity, ErrCodeEmptyCatalog,
			"No game available to score; check game_ids or the loaded catalog", nil)
	case errors.Is(err, recommend.ErrInvalidInput):
		respondAPIError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: "Invalid recommendation request",
			Details: map[string]any{"reason": err.Error()},
		}, nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeInternal, "Request interrupted", err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
	}
}
