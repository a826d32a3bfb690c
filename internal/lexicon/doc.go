// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package lexicon holds the static vocabulary that turns French mood
descriptions into attribute adjustments and links catalog tags to moods.

# Data

The default tables are embedded from default.yaml. A deployment may replace
them wholesale with a YAML or TOML file (lexicon.override_path); there is no
merging with the defaults. The schema is Document:

  - keywords: mood rules with literal triggers, an Adjustment, provenance
    tags and a catalog tag cluster
  - expressions: ordered regular expressions for multi-word phrases such as
    "envie de rigoler" or "on a 20 minutes"
  - frequency, synonyms, ignored: catalog tag weighting and resolution
  - specific, complexity_words, duration_words, player_ranges,
    high_priority, coalition: inputs of the tag-weighted scorer

# Matching

Triggers are compiled into one Aho-Corasick automaton (internal/cache) with
word-start matching: a trigger must begin a word but may end inside one, so
"fatigué" matches "fatiguée" while "las" does not fire inside "classique".
Expressions are case-insensitive regular expressions applied to the same
normalized text. With Options.FoldAccents both sides are accent-folded.

# Tags

Canonicalize follows the synonym table recursively ("archéologie" ->
"découverte" -> "exploration"). Resolution stops on a cycle or after
Options.MaxSynonymDepth steps. WeightOf returns ln(frequency+1).

A compiled Lexicon is immutable and safe for concurrent use.
*/
package lexicon
