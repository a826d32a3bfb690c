// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/tomtom215/ludomood/internal/cache"
)

//go:embed default.yaml
var defaultLexicon []byte

// ErrInvalidLexicon is returned when lexicon data fails validation.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// DefaultMaxSynonymDepth bounds synonym resolution in Canonicalize.
const DefaultMaxSynonymDepth = 8

// Attribute names a profile field a rule can adjust.
type Attribute string

const (
	Energy        Attribute = "energy"
	Social        Attribute = "social"
	Luck          Attribute = "luck"
	Tension       Attribute = "tension"
	Complexity    Attribute = "complexity"
	LearningCurve Attribute = "learning_curve"
	Replayability Attribute = "replayability"
	Conflict      Attribute = "conflict"
	MinDuration   Attribute = "min_duration"
	MaxDuration   Attribute = "max_duration"
	IdealPlayers  Attribute = "ideal_players"
	MinimumAge    Attribute = "minimum_age"
)

// ScaleAttributes are the eight 1-5 attributes shared by games and profiles.
var ScaleAttributes = []Attribute{Energy, Social, Luck, Tension, Complexity, LearningCurve, Replayability, Conflict}

// adjustOrder fixes the order in which an adjustment is applied so results do
// not depend on map iteration.
var adjustOrder = []Attribute{
	Energy, Social, Luck, Tension, Complexity, LearningCurve, Replayability, Conflict,
	MinDuration, MaxDuration, IdealPlayers, MinimumAge,
}

// Adjustment maps attributes to the target value a signal pulls toward.
type Adjustment map[Attribute]float64

// Each calls fn for every set attribute in a fixed order.
func (a Adjustment) Each(fn func(Attribute, float64)) {
	for _, attr := range adjustOrder {
		if v, ok := a[attr]; ok {
			fn(attr, v)
		}
	}
}

// KeywordRule is one mood entry of the lexicon.
type KeywordRule struct {
	Mood        string     `yaml:"mood" toml:"mood"`
	Triggers    []string   `yaml:"triggers" toml:"triggers"`
	Adjust      Adjustment `yaml:"adjust" toml:"adjust"`
	Tags        []string   `yaml:"tags" toml:"tags"`
	CatalogTags []string   `yaml:"catalog_tags" toml:"catalog_tags"`
	CatalogOnly bool       `yaml:"catalog_only" toml:"catalog_only"`
}

// Expression is a multi-word pattern with a stronger adjustment than a keyword.
type Expression struct {
	Name    string     `yaml:"name" toml:"name"`
	Pattern string     `yaml:"pattern" toml:"pattern"`
	Adjust  Adjustment `yaml:"adjust" toml:"adjust"`
	Tags    []string   `yaml:"tags" toml:"tags"`

	re *regexp.Regexp
}

// PlayerRange maps coarse group-size words to a player range.
type PlayerRange struct {
	Triggers []string `yaml:"triggers" toml:"triggers"`
	Min      int      `yaml:"min" toml:"min"`
	Max      int      `yaml:"max" toml:"max"`
}

// ComplexityWords drives the coarse 1-3 complexity estimate.
type ComplexityWords struct {
	Low  []string `yaml:"low" toml:"low"`
	High []string `yaml:"high" toml:"high"`
}

// DurationWords drives the coarse 30/60/120 duration estimate.
type DurationWords struct {
	Short []string `yaml:"short" toml:"short"`
	Long  []string `yaml:"long" toml:"long"`
}

// Document is the on-disk lexicon schema.
type Document struct {
	Keywords        []KeywordRule       `yaml:"keywords" toml:"keywords"`
	Expressions     []Expression        `yaml:"expressions" toml:"expressions"`
	Specific        map[string][]string `yaml:"specific" toml:"specific"`
	ComplexityWords ComplexityWords     `yaml:"complexity_words" toml:"complexity_words"`
	DurationWords   DurationWords       `yaml:"duration_words" toml:"duration_words"`
	PlayerRanges    []PlayerRange       `yaml:"player_ranges" toml:"player_ranges"`
	HighPriority    []string            `yaml:"high_priority" toml:"high_priority"`
	Coalition       []string            `yaml:"coalition" toml:"coalition"`
	Frequency       map[string]int      `yaml:"frequency" toml:"frequency"`
	Ignored         []string            `yaml:"ignored" toml:"ignored"`
	Synonyms        map[string]string   `yaml:"synonyms" toml:"synonyms"`
	ObviousMappings map[string]string   `yaml:"obvious_mappings" toml:"obvious_mappings"`
}

// Options tune how a Document is compiled.
type Options struct {
	// FoldAccents strips diacritics from triggers, patterns and input text.
	FoldAccents bool
	// MaxSynonymDepth bounds Canonicalize; zero means DefaultMaxSynonymDepth.
	MaxSynonymDepth int
}

// KeywordHit is a rule whose triggers occur in a text.
type KeywordHit struct {
	Rule    *KeywordRule
	Matched []string // distinct triggers found, in rule order
}

// Lexicon is the compiled, read-only keyword and tag configuration. It is
// safe for concurrent use.
type Lexicon struct {
	doc          Document
	opts         Options
	automaton    *cache.AhoCorasick
	expressions  []Expression
	frequency    map[string]int
	synonyms     map[string]string
	ignored      map[string]struct{}
	highPriority map[string]struct{}
	coalition    map[string]struct{}
	clusterTags  map[string]struct{}
}

// Default compiles the embedded lexicon.
func Default(opts Options) (*Lexicon, error) {
	return Parse(defaultLexicon, opts)
}

// MustDefault is Default for callers that cannot proceed without it.
func MustDefault() *Lexicon {
	lex, err := Default(Options{})
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded default is invalid: %v", err))
	}
	return lex
}

// Compile validates doc and builds the matching structures.
func Compile(doc Document, opts Options) (*Lexicon, error) {
	if opts.MaxSynonymDepth <= 0 {
		opts.MaxSynonymDepth = DefaultMaxSynonymDepth
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	lex := &Lexicon{
		doc:          doc,
		opts:         opts,
		automaton:    cache.NewAhoCorasick().WithWordStart(),
		frequency:    make(map[string]int, len(doc.Frequency)),
		synonyms:     make(map[string]string, len(doc.Synonyms)),
		ignored:      toSet(doc.Ignored),
		highPriority: toSet(doc.HighPriority),
		coalition:    toSet(doc.Coalition),
		clusterTags:  make(map[string]struct{}),
	}

	for i := range lex.doc.Keywords {
		rule := &lex.doc.Keywords[i]
		if rule.CatalogOnly {
			for _, tag := range rule.CatalogTags {
				lex.clusterTags[strings.ToLower(tag)] = struct{}{}
			}
			continue
		}
		for _, trigger := range rule.Triggers {
			lex.automaton.AddPattern(lex.Normalize(trigger), i)
		}
		for _, tag := range rule.CatalogTags {
			lex.clusterTags[strings.ToLower(tag)] = struct{}{}
		}
	}
	lex.automaton.Build()

	for _, expr := range doc.Expressions {
		re, err := regexp.Compile("(?i)" + lex.Normalize(expr.Pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: expression %q: %v", ErrInvalidLexicon, expr.Name, err)
		}
		expr.re = re
		lex.expressions = append(lex.expressions, expr)
	}

	for tag, freq := range doc.Frequency {
		lex.frequency[strings.ToLower(tag)] = freq
	}
	for from, to := range doc.Synonyms {
		lex.synonyms[strings.ToLower(from)] = strings.ToLower(to)
	}

	return lex, nil
}

func validateDocument(doc *Document) error {
	var errs []error

	if len(doc.Keywords) == 0 {
		errs = append(errs, errors.New("no keyword rules"))
	}

	seen := make(map[string]struct{}, len(doc.Keywords))
	for i, rule := range doc.Keywords {
		if strings.TrimSpace(rule.Mood) == "" {
			errs = append(errs, fmt.Errorf("keywords[%d]: mood is required", i))
			continue
		}
		if _, dup := seen[rule.Mood]; dup {
			errs = append(errs, fmt.Errorf("keywords[%d]: duplicate mood %q", i, rule.Mood))
		}
		seen[rule.Mood] = struct{}{}

		if !rule.CatalogOnly && len(rule.Triggers) == 0 {
			errs = append(errs, fmt.Errorf("keywords[%d] (%s): at least one trigger is required", i, rule.Mood))
		}
		for _, trigger := range rule.Triggers {
			if strings.TrimSpace(trigger) == "" {
				errs = append(errs, fmt.Errorf("keywords[%d] (%s): empty trigger", i, rule.Mood))
			}
		}
		errs = append(errs, validateAdjustment(fmt.Sprintf("keywords[%d] (%s)", i, rule.Mood), rule.Adjust)...)
	}

	for i, expr := range doc.Expressions {
		if expr.Name == "" || expr.Pattern == "" {
			errs = append(errs, fmt.Errorf("expressions[%d]: name and pattern are required", i))
		}
		errs = append(errs, validateAdjustment(fmt.Sprintf("expressions[%d] (%s)", i, expr.Name), expr.Adjust)...)
	}

	for i, pr := range doc.PlayerRanges {
		if pr.Min < 1 || pr.Max < pr.Min {
			errs = append(errs, fmt.Errorf("player_ranges[%d]: invalid range %d-%d", i, pr.Min, pr.Max))
		}
	}

	for tag, freq := range doc.Frequency {
		if freq < 0 {
			errs = append(errs, fmt.Errorf("frequency[%s]: must not be negative, got %d", tag, freq))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLexicon, errors.Join(errs...))
	}
	return nil
}

func validateAdjustment(where string, adj Adjustment) []error {
	var errs []error
	for attr, v := range adj {
		switch attr {
		case Energy, Social, Luck, Tension, Complexity, LearningCurve, Replayability, Conflict:
			if v < 1 || v > 5 {
				errs = append(errs, fmt.Errorf("%s: %s must be in [1,5], got %v", where, attr, v))
			}
		case MinDuration, MaxDuration:
			if v < 5 || v > 300 {
				errs = append(errs, fmt.Errorf("%s: %s must be in [5,300], got %v", where, attr, v))
			}
		case IdealPlayers:
			if v < 1 || v > 10 {
				errs = append(errs, fmt.Errorf("%s: %s must be in [1,10], got %v", where, attr, v))
			}
		case MinimumAge:
			if v < 3 || v > 18 {
				errs = append(errs, fmt.Errorf("%s: %s must be in [3,18], got %v", where, attr, v))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: unknown attribute %q", where, attr))
		}
	}
	return errs
}

// Normalize lowercases text and, when enabled, folds accents. Input text and
// lexicon data go through the same normalization.
func (l *Lexicon) Normalize(text string) string {
	lowered := strings.ToLower(text)
	if l.opts.FoldAccents {
		return Fold(lowered)
	}
	return lowered
}

// LookupKeywords returns every mood rule with at least one trigger in the
// normalized text, in lexicon order. Catalog-only rules are never returned.
func (l *Lexicon) LookupKeywords(normalized string) []KeywordHit {
	matched := make(map[int][]string)
	for _, m := range l.automaton.Search(normalized) {
		idx := m.Data.(int)
		if !containsString(matched[idx], m.Pattern) {
			matched[idx] = append(matched[idx], m.Pattern)
		}
	}

	indices := make([]int, 0, len(matched))
	for idx := range matched {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	hits := make([]KeywordHit, 0, len(indices))
	for _, idx := range indices {
		rule := &l.doc.Keywords[idx]
		hits = append(hits, KeywordHit{Rule: rule, Matched: orderTriggers(rule.Triggers, matched[idx], l)})
	}
	return hits
}

// orderTriggers lists found triggers in the order the rule declares them.
func orderTriggers(declared, found []string, l *Lexicon) []string {
	out := make([]string, 0, len(found))
	for _, t := range declared {
		if containsString(found, l.Normalize(t)) && !containsString(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// MatchExpressions returns the expressions matching the normalized text, in
// lexicon order.
func (l *Lexicon) MatchExpressions(normalized string) []Expression {
	var out []Expression
	for _, expr := range l.expressions {
		if expr.re.MatchString(normalized) {
			out = append(out, expr)
		}
	}
	return out
}

// Canonicalize resolves tag through the synonym table until no mapping
// remains, a cycle is detected or the depth limit is reached.
func (l *Lexicon) Canonicalize(tag string) string {
	current := strings.ToLower(strings.TrimSpace(tag))
	visited := map[string]struct{}{current: {}}

	for depth := 0; depth < l.opts.MaxSynonymDepth; depth++ {
		next, ok := l.synonyms[current]
		if !ok {
			break
		}
		if _, loop := visited[next]; loop {
			break
		}
		visited[next] = struct{}{}
		current = next
	}
	return current
}

// Synonym returns the direct synonym mapping of tag, if any.
func (l *Lexicon) Synonym(tag string) (string, bool) {
	to, ok := l.synonyms[strings.ToLower(tag)]
	return to, ok
}

// Frequency returns the observed frequency of tag, 1 when unknown.
func (l *Lexicon) Frequency(tag string) int {
	if f, ok := l.frequency[strings.ToLower(tag)]; ok {
		return f
	}
	return 1
}

// HasFrequency reports whether tag has an explicit frequency entry.
func (l *Lexicon) HasFrequency(tag string) bool {
	_, ok := l.frequency[strings.ToLower(tag)]
	return ok
}

// WeightOf returns ln(frequency + 1), which is ln 2 for unknown tags.
func (l *Lexicon) WeightOf(tag string) float64 {
	return math.Log(float64(l.Frequency(tag)) + 1)
}

// IsIgnored reports whether tag is excluded from scoring.
func (l *Lexicon) IsIgnored(tag string) bool {
	_, ok := l.ignored[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// IsHighPriority reports whether tag earns the tag-weighted priority bonus.
func (l *Lexicon) IsHighPriority(tag string) bool {
	_, ok := l.highPriority[strings.ToLower(tag)]
	return ok
}

// IsCoalition reports whether tag is a cooperative/competitive marker.
func (l *Lexicon) IsCoalition(tag string) bool {
	_, ok := l.coalition[strings.ToLower(tag)]
	return ok
}

// Rules returns every keyword rule, including catalog-only clusters.
func (l *Lexicon) Rules() []KeywordRule {
	return l.doc.Keywords
}

// Expressions returns the compiled expressions in match order.
func (l *Lexicon) Expressions() []Expression {
	return l.expressions
}

// Specific returns the category -> extra trigger table.
func (l *Lexicon) Specific() map[string][]string {
	return l.doc.Specific
}

// ComplexityWords returns the coarse complexity word lists.
func (l *Lexicon) ComplexityWords() ComplexityWords {
	return l.doc.ComplexityWords
}

// DurationWords returns the coarse duration word lists.
func (l *Lexicon) DurationWords() DurationWords {
	return l.doc.DurationWords
}

// PlayerRanges returns the coarse player range table in priority order.
func (l *Lexicon) PlayerRanges() []PlayerRange {
	return l.doc.PlayerRanges
}

// Options returns the options the lexicon was compiled with.
func (l *Lexicon) Options() Options {
	return l.opts
}

// Stats summarizes the lexicon size for startup logs.
func (l *Lexicon) Stats() (rules, triggers, expressions, synonyms int) {
	return len(l.doc.Keywords), l.automaton.PatternCount(), len(l.expressions), len(l.synonyms)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
