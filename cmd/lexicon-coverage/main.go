// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

// Command lexicon-coverage reports which catalog mood tags the lexicon does
// not understand, with the nearest known keys for each.
//
//	lexicon-coverage -catalog games.json [-lexicon lexicon.yaml] [-json]
//
// An empty -catalog checks the embedded seed catalog. The exit status is 1
// when any tag is uncovered and -strict is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/logging"
)

func main() {
	catalogPath := flag.String("catalog", "", "catalog JSON file (empty: embedded seed)")
	lexiconPath := flag.String("lexicon", "", "lexicon override, YAML or TOML (empty: embedded default)")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	fold := flag.Bool("fold-accents", false, "fold accents before matching")
	strict := flag.Bool("strict", false, "exit 1 when any tag is uncovered")
	flag.Parse()

	logging.Init(logging.Config{Level: "warn", Format: "console", Output: os.Stderr})

	lex, err := lexicon.Load(*lexiconPath, lexicon.Options{FoldAccents: *fold})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load lexicon")
	}
	games, err := catalog.JSONSource{Path: *catalogPath}.Load(context.Background())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	report := lex.AnalyzeCoverage(catalogTags(games))
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logging.Fatal().Err(err).Msg("Failed to encode report")
		}
	} else {
		printReport(os.Stdout, lex, report)
	}

	if *strict && len(report.UncoveredTags) > 0 {
		os.Exit(1)
	}
}

// catalogTags returns every mood tag occurrence, so frequent tags weigh more.
func catalogTags(games []catalog.Game) []string {
	var tags []string
	for i := range games {
		tags = append(tags, games[i].MoodTags...)
	}
	return tags
}

func printReport(w io.Writer, lex *lexicon.Lexicon, r lexicon.CoverageReport) {
	fmt.Fprintf(w, "Tags:       %d\n", r.TotalTags)
	fmt.Fprintf(w, "Covered:    %d\n", r.CoveredTags)
	fmt.Fprintf(w, "Uncovered:  %d\n", len(r.UncoveredTags))
	fmt.Fprintf(w, "Coverage:   %.2f%%\n", r.CoveragePercent)

	var priority []string
	for _, tag := range r.UncoveredTags {
		if lex.Frequency(tag) >= 2 {
			priority = append(priority, tag)
		}
	}
	if len(priority) > 0 {
		fmt.Fprintf(w, "\nPriority (frequency >= 2): %s\n", strings.Join(priority, ", "))
	}

	if len(r.UncoveredTags) > 0 {
		fmt.Fprintln(w, "\nUncovered tags:")
		for _, tag := range r.UncoveredTags {
			if near := r.Nearest[tag]; len(near) > 0 {
				fmt.Fprintf(w, "  %-24s -> %s\n", tag, strings.Join(near, ", "))
			} else {
				fmt.Fprintf(w, "  %s\n", tag)
			}
		}
	}

	if len(r.Improvements) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range r.Improvements {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
