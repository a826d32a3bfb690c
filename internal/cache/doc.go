// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package cache provides the in-memory data structures shared by the lexicon,
the recommendation engine and the HTTP layer.

# Components

  - AhoCorasick: multi-pattern matcher used to find every keyword trigger of
    the mood lexicon in a description with one scan. Optional word-start
    matching keeps short triggers such as "las" from firing inside
    "classique".
  - Trie: prefix tree feeding tag autocompletion, ranked by how many games
    carry each tag.
  - Cache: TTL cache for catalog-derived responses. Keys embed the catalog
    version; Purge is called after each reload. Serve runs the periodic sweep
    and is registered with the supervisor tree.

# Usage Example

	ac := cache.NewAhoCorasick().WithWordStart()
	ac.AddPatterns([]string{"fatigué", "crevé", "épuisé"}, "fatigué")
	ac.Build()

	for _, m := range ac.Search("je suis crevé ce soir") {
	    fmt.Println(m.Data) // fatigué
	}

# Thread Safety

All types are safe for concurrent use. The automaton and trie take a read
lock while searching, so many requests can share one instance.
*/
package cache
