// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/ludomood/internal/scoring"
)

// DefaultConfigPaths lists the config files searched, first found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/ludomood/config.yaml",
	"/etc/ludomood/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8642,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:         SourceJSON,
			Path:           "",
			DatabasePath:   "/data/ludomood.db",
			Watch:          false,
			ReloadDebounce: 500 * time.Millisecond,
		},
		Lexicon: LexiconConfig{
			MaxSynonymDepth: 8,
		},
		Recommend: RecommendConfig{
			DefaultCount:         6,
			MaxCount:             20,
			EligibilityThreshold: 15,
			Scorer:               scoring.NameAttribute,
			LowConfidence:        50,
			SimilarLimit:         5,
			SimilarThreshold:     15,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
	}
}

// Load reads configuration in three layers, later layers winning:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables listed in envMappings
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice keys.
// Values already parsed as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

var envMappings = map[string]string{
	"http_host":                       "server.host",
	"http_port":                       "server.port",
	"http_timeout":                    "server.timeout",
	"http_shutdown_timeout":           "server.shutdown_timeout",
	"catalog_source":                  "catalog.source",
	"catalog_path":                    "catalog.path",
	"catalog_database_path":           "catalog.database_path",
	"catalog_watch":                   "catalog.watch",
	"catalog_reload_debounce":         "catalog.reload_debounce",
	"lexicon_override_path":           "lexicon.override_path",
	"lexicon_fold_accents":            "lexicon.fold_accents",
	"lexicon_max_synonym_depth":       "lexicon.max_synonym_depth",
	"recommend_default_count":         "recommend.default_count",
	"recommend_max_count":             "recommend.max_count",
	"recommend_eligibility_threshold": "recommend.eligibility_threshold",
	"recommend_scorer":                "recommend.scorer",
	"recommend_low_confidence":        "recommend.low_confidence",
	"recommend_similar_limit":         "recommend.similar_limit",
	"recommend_similar_threshold":     "recommend.similar_threshold",
	"cors_origins":                    "security.cors_origins",
	"rate_limit_requests":             "security.rate_limit_requests",
	"rate_limit_window":               "security.rate_limit_window",
	"disable_rate_limit":              "security.rate_limit_disabled",
	"log_level":                       "logging.level",
	"log_format":                      "logging.format",
	"log_caller":                      "logging.caller",
	"cache_ttl":                       "cache.ttl",
}

// envTransformFunc maps environment variable names to config keys.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_SOURCE -> catalog.source
//   - RECOMMEND_SCORER -> recommend.scorer
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
