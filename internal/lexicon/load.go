// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package lexicon

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML lexicon and compiles it. Unknown keys are rejected so
// typos in hand-edited files surface at startup.
func Parse(data []byte, opts Options) (*Lexicon, error) {
	doc, err := DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Compile(doc, opts)
}

// ParseTOML decodes a TOML lexicon and compiles it. Numeric attribute targets
// must be written as floats (5.0, not 5).
func ParseTOML(data []byte, opts Options) (*Lexicon, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %v", ErrInvalidLexicon, err)
	}
	return Compile(doc, opts)
}

// DecodeYAML reads a lexicon document without compiling it.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidLexicon, err)
	}
	return doc, nil
}

// LoadFile reads a lexicon override from disk. The format follows the file
// extension: .yaml/.yml or .toml. The file replaces the embedded default.
func LoadFile(path string, opts Options) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %q: %w", path, err)
	}

	var lex *Lexicon
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		lex, err = Parse(data, opts)
	case ".toml":
		lex, err = ParseTOML(data, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidLexicon, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("lexicon: load %q: %w", path, err)
	}
	return lex, nil
}

// Load returns the override at path when set, the embedded default otherwise.
func Load(path string, opts Options) (*Lexicon, error) {
	if path == "" {
		return Default(opts)
	}
	return LoadFile(path, opts)
}
