// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/ludomood/internal/logging"
	"github.com/tomtom215/ludomood/internal/scoring"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateLexicon,
		c.validateRecommend,
		c.validateSecurity,
		c.validateLogging,
		c.validateCache,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceJSON:
	case SourceSQLite:
		if c.Catalog.DatabasePath == "" {
			return fmt.Errorf("catalog.database_path is required when catalog.source=sqlite")
		}
		if c.Catalog.Watch {
			return fmt.Errorf("catalog.watch is only supported for catalog.source=json")
		}
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q", SourceJSON, SourceSQLite, c.Catalog.Source)
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		return fmt.Errorf("catalog.watch requires catalog.path")
	}
	if c.Catalog.ReloadDebounce < 0 {
		return fmt.Errorf("catalog.reload_debounce must be non-negative, got %v", c.Catalog.ReloadDebounce)
	}
	return nil
}

func (c *Config) validateLexicon() error {
	if c.Lexicon.MaxSynonymDepth < 1 {
		return fmt.Errorf("lexicon.max_synonym_depth must be positive, got %d", c.Lexicon.MaxSynonymDepth)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultCount < 1 {
		return fmt.Errorf("recommend.default_count must be positive, got %d", r.DefaultCount)
	}
	if r.MaxCount < r.DefaultCount {
		return fmt.Errorf("recommend.max_count must be >= recommend.default_count (%d), got %d", r.DefaultCount, r.MaxCount)
	}
	if r.EligibilityThreshold < 0 || r.EligibilityThreshold > 100 {
		return fmt.Errorf("recommend.eligibility_threshold must be in [0, 100], got %d", r.EligibilityThreshold)
	}
	if !slices.Contains(scoring.Names(), r.Scorer) {
		return fmt.Errorf("recommend.scorer must be one of %s, got %q", strings.Join(scoring.Names(), ", "), r.Scorer)
	}
	if r.LowConfidence < 0 || r.LowConfidence > 100 {
		return fmt.Errorf("recommend.low_confidence must be in [0, 100], got %d", r.LowConfidence)
	}
	if r.SimilarLimit < 1 {
		return fmt.Errorf("recommend.similar_limit must be positive, got %d", r.SimilarLimit)
	}
	if r.SimilarThreshold < 0 {
		return fmt.Errorf("recommend.similar_threshold must be non-negative, got %d", r.SimilarThreshold)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitRequests < 1 {
		return fmt.Errorf("security.rate_limit_requests must be positive, got %d", c.Security.RateLimitRequests)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	}
	return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	return nil
}
