// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package config

import "time"

// Catalog source kinds.
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Lexicon   LexiconConfig   `koanf:"lexicon"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Cache     CacheConfig     `koanf:"cache"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig selects where games are loaded from.
//
// Environment Variables:
//   - CATALOG_SOURCE: json or sqlite (default: json)
//   - CATALOG_PATH: JSON catalog file; empty serves the embedded seed
//   - CATALOG_DATABASE_PATH: SQLite database file
//   - CATALOG_WATCH: reload the JSON file when it changes (default: false)
//   - CATALOG_RELOAD_DEBOUNCE: quiet period before a reload (default: 500ms)
type CatalogConfig struct {
	Source         string        `koanf:"source"`
	Path           string        `koanf:"path"`
	DatabasePath   string        `koanf:"database_path"`
	Watch          bool          `koanf:"watch"`
	ReloadDebounce time.Duration `koanf:"reload_debounce"`
}

// LexiconConfig controls keyword matching.
type LexiconConfig struct {
	// OverridePath replaces the embedded lexicon with a YAML or TOML file.
	OverridePath string `koanf:"override_path"`

	// FoldAccents makes "epuise" match "épuisé".
	// Default: false
	FoldAccents bool `koanf:"fold_accents"`

	// MaxSynonymDepth bounds synonym chain resolution.
	// Default: 8
	MaxSynonymDepth int `koanf:"max_synonym_depth"`
}

// RecommendConfig mirrors recommend.Config.
type RecommendConfig struct {
	DefaultCount         int    `koanf:"default_count"`
	MaxCount             int    `koanf:"max_count"`
	EligibilityThreshold int    `koanf:"eligibility_threshold"`
	Scorer               string `koanf:"scorer"`
	LowConfidence        int    `koanf:"low_confidence"`
	SimilarLimit         int    `koanf:"similar_limit"`
	SimilarThreshold     int    `koanf:"similar_threshold"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CacheConfig controls the HTTP response cache.
type CacheConfig struct {
	// TTL is how long stats and similar-game responses are kept.
	// Default: 5m
	TTL time.Duration `koanf:"ttl"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
