// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/ludomood/internal/cache"
	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/recommend"
)

// GameList is the payload of every list endpoint.
type GameList struct {
	Games []catalog.Game `json:"games"`
	Total int            `json:"total"`
}

// SimilarResult is the payload of GET /games/{id}/similar.
type SimilarResult struct {
	Game    catalog.Game            `json:"game"`
	Similar []recommend.SimilarGame `json:"similar_games"`
}

// TagSuggestion is one autocomplete entry.
type TagSuggestion struct {
	Tag   string `json:"tag"`
	Games int    `json:"games"`
}

func newGameList(games []catalog.Game) GameList {
	if games == nil {
		games = []catalog.Game{}
	}
	return GameList{Games: games, Total: len(games)}
}

// Games lists the whole catalog.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.store.Snapshot()
	respondOK(w, r, start, newGameList(snap.Games()), Metadata{CatalogVersion: snap.Version})
}

// Game returns one game by id.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	game, err := snap.Game(id)
	if err != nil {
		respondNotFound(w, r, err)
		return
	}
	respondOK(w, r, start, game, Metadata{CatalogVersion: snap.Version})
}

// SimilarGames lists games resembling the one named in the path.
func (h *Handler) SimilarGames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	game, err := snap.Game(id)
	if err != nil {
		respondNotFound(w, r, err)
		return
	}

	cfg := h.engine.Config()
	key := cache.GenerateKey(cacheSimilar, []uint64{snap.Version, uint64(id)})
	v, hit := h.cached(cacheSimilar, key, func() any {
		return SimilarResult{
			Game:    game,
			Similar: recommend.Similar(&game, snap.Games(), cfg.SimilarLimit, cfg.SimilarThreshold),
		}
	})
	respondOK(w, r, start, v, Metadata{CatalogVersion: snap.Version, Cached: hit})
}

// GamesByType lists games of one primary type, simplest first.
func (h *Handler) GamesByType(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.store.Snapshot()
	games := snap.ByType(chi.URLParam(r, "type"))
	respondOK(w, r, start, newGameList(games), Metadata{CatalogVersion: snap.Version})
}

// GamesByContext lists games suited to a context, most replayable first.
func (h *Handler) GamesByContext(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.store.Snapshot()
	games := snap.ByContext(chi.URLParam(r, "context"))
	respondOK(w, r, start, newGameList(games), Metadata{CatalogVersion: snap.Version})
}

// Stats returns aggregate catalog statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.store.Snapshot()
	key := cache.GenerateKey(cacheStats, snap.Version)
	v, hit := h.cached(cacheStats, key, func() any {
		return recommend.Stats(snap.Games())
	})
	respondOK(w, r, start, v, Metadata{CatalogVersion: snap.Version, Cached: hit})
}

// SearchTags finds games carrying any of the requested mood tags.
func (h *Handler) SearchTags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req TagSearchRequest
	if apiErr := decodeBody(w, r, &req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	snap := h.store.Snapshot()
	respondOK(w, r, start, newGameList(snap.SearchTags(req.Tags, req.Limit)), Metadata{CatalogVersion: snap.Version})
}

// SuggestTags autocompletes a mood tag prefix, most used first.
func (h *Handler) SuggestTags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	prefix := strings.TrimSpace(r.URL.Query().Get("prefix"))
	if prefix == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "prefix is required", nil)
		return
	}
	limit, apiErr := queryInt(r, "limit", 10, maxTagSuggestions)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	snap := h.store.Snapshot()
	results := h.tagTrie(snap).AutocompleteWithLimit(prefix, limit)
	out := make([]TagSuggestion, 0, len(results))
	for _, res := range results {
		out = append(out, TagSuggestion{Tag: res.Value, Games: res.Count})
	}
	respondOK(w, r, start, out, Metadata{CatalogVersion: snap.Version})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondAPIError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: "id must be a positive integer",
			Details: map[string]any{"field": "id", "value": raw},
		}, nil)
		return 0, false
	}
	return id, true
}

func respondNotFound(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrGameNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Game not found", nil)
		return
	}
	respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to load game", err)
}
