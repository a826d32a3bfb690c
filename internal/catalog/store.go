// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ludomood/internal/metrics"
)

// ErrGameNotFound is returned when an id is not in the snapshot.
var ErrGameNotFound = errors.New("game not found")

// Snapshot is an immutable view of one loaded catalog.
type Snapshot struct {
	// Version increases by one on every successful replace.
	Version  uint64
	LoadedAt time.Time
	Source   string

	games []Game
	byID  map[int]int
}

func newSnapshot(games []Game, version uint64, source string) *Snapshot {
	s := &Snapshot{
		Version:  version,
		LoadedAt: time.Now().UTC(),
		Source:   source,
		games:    make([]Game, len(games)),
		byID:     make(map[int]int, len(games)),
	}
	for i := range games {
		s.games[i] = games[i].clone()
		s.byID[games[i].ID] = i
	}
	return s
}

// Len returns the number of games.
func (s *Snapshot) Len() int {
	return len(s.games)
}

// Games returns a copy of every game in catalog order.
func (s *Snapshot) Games() []Game {
	out := make([]Game, len(s.games))
	for i := range s.games {
		out[i] = s.games[i].clone()
	}
	return out
}

// Game returns the game with the given id.
func (s *Snapshot) Game(id int) (Game, error) {
	i, ok := s.byID[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %d", ErrGameNotFound, id)
	}
	return s.games[i].clone(), nil
}

// Restrict returns the games whose id is in ids, in catalog order.
// Unknown ids are ignored.
func (s *Snapshot) Restrict(ids []int) []Game {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return s.filter(func(g *Game) bool {
		_, ok := want[g.ID]
		return ok
	})
}

// ByType returns games whose primary type equals t ignoring case, simplest
// first.
func (s *Snapshot) ByType(t string) []Game {
	out := s.filter(func(g *Game) bool {
		return strings.EqualFold(g.PrimaryType, t)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Complexity < out[j].Complexity
	})
	return out
}

// ByContext returns games with a suited context containing ctx, most
// replayable first.
func (s *Snapshot) ByContext(ctx string) []Game {
	needle := strings.ToLower(strings.TrimSpace(ctx))
	out := s.filter(func(g *Game) bool {
		return anyContains(g.SuitedContexts, needle)
	})
	sortByReplayability(out)
	return out
}

// SearchTags returns up to limit games having a mood tag that contains any
// of tags, most replayable first. limit <= 0 means no limit.
func (s *Snapshot) SearchTags(tags []string, limit int) []Game {
	needles := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			needles = append(needles, t)
		}
	}
	if len(needles) == 0 {
		return []Game{}
	}

	out := s.filter(func(g *Game) bool {
		for _, n := range needles {
			if anyContains(g.MoodTags, n) {
				return true
			}
		}
		return false
	})
	sortByReplayability(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Tags returns every mood tag with its occurrence count.
func (s *Snapshot) Tags() map[string]int {
	counts := make(map[string]int)
	for i := range s.games {
		for _, t := range s.games[i].MoodTags {
			counts[strings.ToLower(t)]++
		}
	}
	return counts
}

func (s *Snapshot) filter(keep func(*Game) bool) []Game {
	out := []Game{}
	for i := range s.games {
		if keep(&s.games[i]) {
			out = append(out, s.games[i].clone())
		}
	}
	return out
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func sortByReplayability(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Replayability > games[j].Replayability
	})
}

// Store publishes catalog snapshots. Readers never block: a reload builds a
// complete snapshot and swaps the pointer.
type Store struct {
	current atomic.Pointer[Snapshot]
	writeMu sync.Mutex
	version uint64
	logger  zerolog.Logger
}

// NewStore creates a store holding an empty version 0 snapshot.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(logger zerolog.Logger) *Store {
	s := &Store{logger: logger.With().Str("component", "catalog").Logger()}
	s.current.Store(newSnapshot(nil, 0, "none"))
	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace validates games and swaps them in. On error the current snapshot
// stays in place.
func (s *Store) Replace(games []Game, source string) (*Snapshot, error) {
	if err := Validate(games); err != nil {
		metrics.RecordCatalogLoad(source, 0, 0, err)
		return nil, err
	}

	s.writeMu.Lock()
	s.version++
	snap := newSnapshot(games, s.version, source)
	s.current.Store(snap)
	s.writeMu.Unlock()

	metrics.RecordCatalogLoad(source, snap.Len(), snap.Version, nil)

	s.logger.Info().
		Str("source", source).
		Int("games", snap.Len()).
		Uint64("version", snap.Version).
		Msg("catalog loaded")
	return snap, nil
}

// Reload loads src and replaces the snapshot with its games.
func (s *Store) Reload(ctx context.Context, src Source) (*Snapshot, error) {
	games, err := src.Load(ctx)
	if err != nil {
		metrics.RecordCatalogLoad(src.Name(), 0, 0, err)
		return nil, err
	}
	return s.Replace(games, src.Name())
}
