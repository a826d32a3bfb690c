// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package config loads the service configuration with koanf.

Sources are layered, later ones winning:

 1. defaults built into defaultConfig
 2. an optional YAML file: $CONFIG_PATH, config.yaml, config.yml or
    /etc/ludomood/config.yaml
 3. environment variables with an explicit mapping (HTTP_PORT,
    CATALOG_SOURCE, RECOMMEND_SCORER, LOG_LEVEL, ...); anything unmapped is
    ignored

Example config.yaml:

	server:
	  port: 8642
	catalog:
	  source: json
	  path: /data/games.json
	  watch: true
	recommend:
	  scorer: attribute
	  default_count: 6
	security:
	  cors_origins: ["https://ludomood.example"]

Load validates the result and returns a descriptive error naming the
offending key.
*/
package config
