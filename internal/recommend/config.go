// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"fmt"
	"slices"

	"github.com/tomtom215/ludomood/internal/scoring"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultCount is the shortlist size when a request names none.
	// Default: 6.
	DefaultCount int `json:"default_count"`

	// MaxCount bounds the shortlist size a request may ask for.
	// Default: 20.
	MaxCount int `json:"max_count"`

	// EligibilityThreshold is the percent score a game must exceed to be
	// recommended at all.
	// Default: 15.
	EligibilityThreshold int `json:"eligibility_threshold"`

	// Scorer names the scoring function: "attribute" or "tagweighted".
	// Default: "attribute".
	Scorer string `json:"scorer"`

	// LowConfidence is the confidence below which the response hints that
	// the description was vague.
	// Default: 50.
	LowConfidence int `json:"low_confidence"`

	// SimilarLimit is the number of similar games returned.
	// Default: 5.
	SimilarLimit int `json:"similar_limit"`

	// SimilarThreshold is the similarity a game must exceed to be listed.
	// Default: 15.
	SimilarThreshold int `json:"similar_threshold"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultCount:         6,
		MaxCount:             20,
		EligibilityThreshold: 15,
		Scorer:               scoring.NameAttribute,
		LowConfidence:        50,
		SimilarLimit:         5,
		SimilarThreshold:     15,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultCount < 1 {
		return fmt.Errorf("default_count must be positive, got %d", c.DefaultCount)
	}
	if c.MaxCount < c.DefaultCount {
		return fmt.Errorf("max_count must be >= default_count (%d), got %d", c.DefaultCount, c.MaxCount)
	}
	if c.EligibilityThreshold < 0 || c.EligibilityThreshold > 100 {
		return fmt.Errorf("eligibility_threshold must be in [0, 100], got %d", c.EligibilityThreshold)
	}
	if !slices.Contains(scoring.Names(), c.Scorer) {
		return fmt.Errorf("scorer must be one of %v, got %q", scoring.Names(), c.Scorer)
	}
	if c.LowConfidence < 0 || c.LowConfidence > 100 {
		return fmt.Errorf("low_confidence must be in [0, 100], got %d", c.LowConfidence)
	}
	if c.SimilarLimit < 1 {
		return fmt.Errorf("similar_limit must be positive, got %d", c.SimilarLimit)
	}
	if c.SimilarThreshold < 0 {
		return fmt.Errorf("similar_threshold must be non-negative, got %d", c.SimilarThreshold)
	}
	return nil
}
