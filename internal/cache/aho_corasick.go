// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package cache

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// AhoCorasick finds every occurrence of a set of keyword triggers in a text
// in a single pass, in O(n + m + z) time where:
//   - n = length of text
//   - m = total length of all patterns
//   - z = number of matches
//
// The lexicon registers hundreds of French triggers ("fatigué", "entre amis",
// "sans prise de tête") and scans each mood description once instead of
// calling strings.Contains per trigger.
//
// Example:
//
//	ac := NewAhoCorasick()
//	ac.AddPattern("détendu", 0)
//	ac.AddPattern("entre amis", 1)
//	ac.Build()
//
//	matches := ac.Search("un moment détendu entre amis")
//	// matches[0] = Match{Pattern: "détendu", Data: 0, Start: 10, End: 18}
type AhoCorasick struct {
	mu            sync.RWMutex
	root          *acNode
	patterns      []Pattern
	built         bool
	caseSensitive bool
	wordStart     bool
}

type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int // indices of patterns ending here
	depth    int
}

// Pattern is a registered trigger with its payload.
type Pattern struct {
	Text string // trigger as registered
	key  string // normalized trigger used in the trie
	Data any
}

// Match is one trigger occurrence. Start and End are byte offsets into the
// normalized (lowercased unless case-sensitive) text.
type Match struct {
	Pattern string
	Data    any
	Start   int
	End     int
}

// NewAhoCorasick creates a case-insensitive automaton.
func NewAhoCorasick() *AhoCorasick {
	return &AhoCorasick{
		root: newACNode(0),
	}
}

// NewAhoCorasickCaseSensitive creates a case-sensitive automaton.
func NewAhoCorasickCaseSensitive() *AhoCorasick {
	return &AhoCorasick{
		root:          newACNode(0),
		caseSensitive: true,
	}
}

// WithWordStart makes the automaton reject matches that begin inside a word:
// "las" then matches "las" and "lassé" but not "classique". A trigger may
// still end mid-word so "fatigué" matches "fatiguée".
func (ac *AhoCorasick) WithWordStart() *AhoCorasick {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.wordStart = true
	return ac
}

func newACNode(depth int) *acNode {
	return &acNode{
		children: make(map[rune]*acNode),
		depth:    depth,
	}
}

func (ac *AhoCorasick) normalize(s string) string {
	if ac.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// AddPattern registers a trigger. Empty triggers are ignored.
// Adding after Build marks the automaton for rebuild.
func (ac *AhoCorasick) AddPattern(pattern string, data any) {
	if strings.TrimSpace(pattern) == "" {
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	ac.built = false
	ac.patterns = append(ac.patterns, Pattern{Text: pattern, key: ac.normalize(pattern), Data: data})
}

// AddPatterns registers several triggers sharing the same payload.
func (ac *AhoCorasick) AddPatterns(patterns []string, data any) {
	for _, p := range patterns {
		ac.AddPattern(p, data)
	}
}

// Build constructs the trie and failure links. Must be called after adding
// patterns and before searching.
func (ac *AhoCorasick) Build() {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	if ac.built {
		return
	}

	ac.root = newACNode(0)
	for i, p := range ac.patterns {
		node := ac.root
		for _, ch := range p.key {
			if node.children[ch] == nil {
				node.children[ch] = newACNode(node.depth + 1)
			}
			node = node.children[ch]
		}
		node.output = append(node.output, i)
	}

	ac.buildFailureLinks()
	ac.built = true
}

func (ac *AhoCorasick) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}

			if fail == nil {
				child.failure = ac.root
			} else {
				child.failure = fail.children[ch]
				child.output = append(child.output, child.failure.output...)
			}
		}
	}
}

// Search returns every match in text, ordered by end position.
func (ac *AhoCorasick) Search(text string) []Match {
	var matches []Match
	ac.scan(text, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	return matches
}

// SearchFirst returns the first match in text.
func (ac *AhoCorasick) SearchFirst(text string) (Match, bool) {
	var first Match
	found := false
	ac.scan(text, func(m Match) bool {
		first, found = m, true
		return false
	})
	return first, found
}

// Contains reports whether any trigger occurs in text.
func (ac *AhoCorasick) Contains(text string) bool {
	_, found := ac.SearchFirst(text)
	return found
}

// PatternCount returns the number of registered triggers.
func (ac *AhoCorasick) PatternCount() int {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return len(ac.patterns)
}

func (ac *AhoCorasick) scan(text string, emit func(Match) bool) {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	if !ac.built || len(ac.patterns) == 0 {
		return
	}

	searchText := ac.normalize(text)
	node := ac.root

	for i, ch := range searchText {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = ac.root
			continue
		}
		node = node.children[ch]

		end := i + utf8.RuneLen(ch)
		for _, idx := range node.output {
			p := ac.patterns[idx]
			start := end - len(p.key)
			if ac.wordStart && !isWordStart(searchText, start) {
				continue
			}
			if !emit(Match{Pattern: p.Text, Data: p.Data, Start: start, End: end}) {
				return
			}
		}
	}
}

// isWordStart reports whether the byte offset starts a word in s.
func isWordStart(s string, offset int) bool {
	if offset <= 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:offset])
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}
