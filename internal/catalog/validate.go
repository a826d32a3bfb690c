// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package catalog

import (
	"fmt"
	"strings"

	"github.com/tomtom215/ludomood/internal/validation"
)

// Problem is one invalid field on one record.
type Problem struct {
	Index   int    `json:"index"`
	GameID  int    `json:"game_id"`
	Name    string `json:"name"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a catalog. A catalog with
// any problem is rejected as a whole.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	const shown = 5

	var b strings.Builder
	fmt.Fprintf(&b, "catalog: %d invalid field(s)", len(e.Problems))
	for i, p := range e.Problems {
		if i == shown {
			fmt.Fprintf(&b, "; and %d more", len(e.Problems)-shown)
			break
		}
		fmt.Fprintf(&b, "; game #%d %q: %s", p.GameID, p.Name, p.Message)
	}
	return b.String()
}

// Validate checks every record and the unique-id constraint.
func Validate(games []Game) error {
	var problems []Problem
	seen := make(map[int]int, len(games))

	for i := range games {
		g := &games[i]

		if verr := validation.ValidateStruct(g); verr != nil {
			for _, fe := range verr.Errors() {
				problems = append(problems, Problem{
					Index:   i,
					GameID:  g.ID,
					Name:    g.Name,
					Field:   fe.Field(),
					Message: fe.Error(),
				})
			}
		}

		if first, dup := seen[g.ID]; dup {
			problems = append(problems, Problem{
				Index:   i,
				GameID:  g.ID,
				Name:    g.Name,
				Field:   "id",
				Message: fmt.Sprintf("id %d already used by record %d", g.ID, first),
			})
			continue
		}
		seen[g.ID] = i
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
