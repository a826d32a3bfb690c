// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package api exposes the recommendation engine and the game catalog over HTTP.

Every JSON response uses one envelope:

	{
	  "status":   "success" | "error",
	  "data":     ...,
	  "metadata": {"timestamp", "query_time_ms", "request_id", "catalog_version", "cached"},
	  "error":    {"code", "message", "details"}
	}

Error codes are VALIDATION_ERROR, EMPTY_MOOD, EMPTY_CATALOG, NOT_FOUND,
TOO_MANY_REQUESTS, METHOD_NOT_ALLOWED and INTERNAL_ERROR.

Routes:

	GET  /api/v1/health
	GET  /metrics
	GET  /api/v1/games
	GET  /api/v1/games/{id}
	GET  /api/v1/games/{id}/similar
	GET  /api/v1/games/type/{type}
	GET  /api/v1/games/context/{context}
	GET  /api/v1/stats
	POST /api/v1/search/tags        {"tags": [...], "limit": n}
	GET  /api/v1/tags/suggest?prefix=&limit=
	POST /api/v1/analyze/mood       {"mood": "..."}
	POST /api/v1/analyze/batch      {"moods": [...]}
	POST /api/v1/recommend          {"mood": "...", "count": n, "library_only": b, "game_ids": [...]}

Each handler takes one catalog snapshot at entry, so a reload during a
request never mixes two catalog versions. Stats and similar-game payloads are
cached under keys that include the catalog version.
*/
package api
