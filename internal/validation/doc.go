// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Package validation wraps go-playground/validator with a shared instance and
// readable error messages.
//
// Field names in messages are the struct's JSON names, so a rejected catalog
// entry or request body reports the key the client actually sent:
//
//	type Game struct {
//	    MinPlayers   int `json:"min_players" validate:"gte=1"`
//	    MaxPlayers   int `json:"max_players" validate:"gtefield=MinPlayers"`
//	}
//
//	if verr := validation.ValidateStruct(&g); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
//
// Besides the built-in tags the package registers "notblank", which rejects
// strings made only of whitespace.
package validation
