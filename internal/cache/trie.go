// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package cache

import (
	"sort"
	"strings"
	"sync"
)

// TrieNode is one rune step in the Trie.
type TrieNode struct {
	children map[rune]*TrieNode
	isEnd    bool
	value    string // original spelling of the first insertion
	data     any
	count    int
}

// Trie is a thread-safe prefix tree backing tag autocompletion. Each catalog
// tag is inserted once per game carrying it, so Count doubles as the tag's
// popularity and suggestions come back most-used first.
type Trie struct {
	mu             sync.RWMutex
	root           *TrieNode
	size           int
	caseSensitive  bool
	maxSuggestions int
}

// TrieResult is one completion.
type TrieResult struct {
	Value string
	Data  any
	Count int
}

// NewTrie creates a case-insensitive trie returning at most 10 suggestions.
func NewTrie() *Trie {
	return NewTrieWithOptions(false, 10)
}

// NewTrieWithOptions creates a trie with custom settings.
func NewTrieWithOptions(caseSensitive bool, maxSuggestions int) *Trie {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	return &Trie{
		root:           newTrieNode(),
		caseSensitive:  caseSensitive,
		maxSuggestions: maxSuggestions,
	}
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[rune]*TrieNode)}
}

func (t *Trie) normalizeKey(key string) string {
	if t.caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

// Insert adds value or bumps its count. Reports whether value was new.
func (t *Trie) Insert(value string) bool {
	return t.InsertWithData(value, nil)
}

// InsertWithData adds value with a payload, or bumps its count and replaces
// the payload when it already exists.
func (t *Trie) InsertWithData(value string, data any) bool {
	if value == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range t.normalizeKey(value) {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}

	isNew := !node.isEnd
	if isNew {
		node.isEnd = true
		node.value = value
		t.size++
	}
	node.data = data
	node.count++
	return isNew
}

// Search looks up an exact value.
func (t *Trie) Search(value string) (any, bool) {
	if value == "" {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(t.normalizeKey(value))
	if node == nil || !node.isEnd {
		return nil, false
	}
	return node.data, true
}

// HasPrefix reports whether any stored value starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if prefix == "" {
		return t.size > 0
	}
	return t.find(t.normalizeKey(prefix)) != nil
}

// Autocomplete returns values starting with prefix, most counted first then
// alphabetically, capped at the configured maximum.
func (t *Trie) Autocomplete(prefix string) []TrieResult {
	return t.AutocompleteWithLimit(prefix, t.maxSuggestions)
}

// AutocompleteWithLimit is Autocomplete with an explicit cap.
func (t *Trie) AutocompleteWithLimit(prefix string, limit int) []TrieResult {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(t.normalizeKey(prefix))
	if node == nil {
		return nil
	}

	var results []TrieResult
	collectWords(node, &results)
	sortResults(results)

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Size returns the number of distinct values.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// GetAll returns every value, most counted first.
func (t *Trie) GetAll() []TrieResult {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var results []TrieResult
	collectWords(t.root, &results)
	sortResults(results)
	return results
}

func (t *Trie) find(key string) *TrieNode {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collectWords(node *TrieNode, results *[]TrieResult) {
	if node.isEnd {
		*results = append(*results, TrieResult{
			Value: node.value,
			Data:  node.data,
			Count: node.count,
		})
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}

func sortResults(results []TrieResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Value < results[j].Value
	})
}
