// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ludomood/internal/cache"
	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/metrics"
	"github.com/tomtom215/ludomood/internal/recommend"
)

// Cache labels reported to metrics.
const (
	cacheStats   = "stats"
	cacheSimilar = "similar"
)

// maxTagSuggestions bounds /tags/suggest.
const maxTagSuggestions = 20

// Handler serves the HTTP API over one engine and one catalog store.
type Handler struct {
	engine    *recommend.Engine
	store     *catalog.Store
	cache     *cache.Cache
	startTime time.Time
	logger    zerolog.Logger

	tagsMu      sync.Mutex
	tags        *cache.Trie
	tagsVersion uint64
}

// NewHandler creates a Handler. c may be nil to disable response caching.
func NewHandler(engine *recommend.Engine, store *catalog.Store, c *cache.Cache, logger zerolog.Logger) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("api: engine is required")
	}
	if store == nil {
		return nil, errors.New("api: catalog store is required")
	}
	return &Handler{
		engine:    engine,
		store:     store,
		cache:     c,
		startTime: time.Now(),
		logger:    logger.With().Str("component", "api").Logger(),
	}, nil
}

// cached returns the value stored under key or computes and stores it.
// Keys must embed the catalog version so a reload never serves stale data.
func (h *Handler) cached(cacheType, key string, compute func() any) (any, bool) {
	if h.cache == nil {
		return compute(), false
	}
	if v, ok := h.cache.Get(key); ok {
		metrics.RecordCacheLookup(cacheType, true)
		return v, true
	}
	metrics.RecordCacheLookup(cacheType, false)
	v := compute()
	h.cache.Set(key, v)
	return v, false
}

// tagTrie returns the autocomplete index for snap, rebuilding it when the
// catalog version moved.
func (h *Handler) tagTrie(snap *catalog.Snapshot) *cache.Trie {
	h.tagsMu.Lock()
	defer h.tagsMu.Unlock()

	if h.tags != nil && h.tagsVersion == snap.Version {
		return h.tags
	}

	trie := cache.NewTrieWithOptions(false, maxTagSuggestions)
	for tag, n := range snap.Tags() {
		for range n {
			trie.Insert(tag)
		}
	}
	h.tags, h.tagsVersion = trie, snap.Version
	h.logger.Debug().Uint64("catalog_version", snap.Version).Int("tags", trie.Size()).Msg("Rebuilt tag index")
	return trie
}
