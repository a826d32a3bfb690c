// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

//go:embed seed/games.json
var seedCatalog []byte

// ErrEmptyDocument is returned for a catalog file with no content.
var ErrEmptyDocument = errors.New("catalog: empty document")

// Source produces a full, validated catalog.
type Source interface {
	Load(ctx context.Context) ([]Game, error)
	// Name labels the source in logs and metrics.
	Name() string
}

// document is the object form of a catalog file.
type document struct {
	Games []Game `json:"games"`
}

// Decode parses a catalog in either {"games": [...]} or bare array form,
// fills optional fields and validates the result.
func Decode(data []byte) ([]Game, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}

	var games []Game
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &games); err != nil {
			return nil, fmt.Errorf("decode catalog array: %w", err)
		}
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog document: %w", err)
		}
		games = doc.Games
	default:
		return nil, fmt.Errorf("decode catalog: unexpected leading %q", trimmed[0])
	}

	for i := range games {
		games[i].fillDefaults()
	}
	if err := Validate(games); err != nil {
		return nil, err
	}
	return games, nil
}

// Encode writes games in the object form Decode accepts.
func Encode(games []Game) ([]byte, error) {
	return json.MarshalIndent(document{Games: games}, "", "  ")
}

// Seed returns the embedded catalog.
func Seed() ([]Game, error) {
	games, err := Decode(seedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return games, nil
}

// JSONSource reads a catalog file. An empty Path serves the embedded seed.
type JSONSource struct {
	Path string
}

// Name implements Source.
func (s JSONSource) Name() string {
	if s.Path == "" {
		return "embedded"
	}
	return "json"
}

// Load implements Source.
func (s JSONSource) Load(ctx context.Context) ([]Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return Seed()
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	games, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", s.Path, err)
	}
	return games, nil
}
