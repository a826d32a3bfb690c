// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/metrics"
	"github.com/tomtom215/ludomood/internal/mood"
	"github.com/tomtom215/ludomood/internal/scoring"
)

// Engine turns mood descriptions into ranked shortlists. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	config    *Config
	lex       *lexicon.Lexicon
	extractor *mood.Extractor
	scorer    scoring.Scorer
	logger    zerolog.Logger
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, lex *lexicon.Lexicon, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if lex == nil {
		return nil, fmt.Errorf("lexicon is required")
	}

	scorer, err := scoring.New(cfg.Scorer, lex)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:    cfg,
		lex:       lex,
		extractor: mood.NewExtractor(lex),
		scorer:    scorer,
		logger:    logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration. Callers must not modify it.
func (e *Engine) Config() *Config {
	return e.config
}

// ScorerName returns the name of the active scoring function.
func (e *Engine) ScorerName() string {
	return e.scorer.Name()
}

// AnalyzeMood extracts a profile from text without scoring anything.
func (e *Engine) AnalyzeMood(text string) mood.Profile {
	start := time.Now()
	p := e.extractor.Extract(text)
	metrics.RecordMoodAnalysis(time.Since(start), p.Confidence)
	return p
}

// ScoreGame scores one game against a profile.
func (e *Engine) ScoreGame(p *mood.Profile, g *catalog.Game) ScoredGame {
	return ScoredGame{Game: *g, Result: e.scorer.Score(p, g)}
}

// Recommend analyzes text and returns the best games from games.
//
// ErrInvalidInput, ErrEmptyMood and ErrEmptyCatalog are returned before any
// scoring happens. A request that runs but finds nothing above the
// eligibility threshold is not an error: it returns an empty shortlist with
// explanations saying so.
func (e *Engine) Recommend(ctx context.Context, text string, games []catalog.Game, opts Options) (*Response, error) {
	start := time.Now()
	resp, err := e.recommend(ctx, text, games, opts)

	eligible := 0
	result := resultOf(err)
	if resp != nil {
		eligible = resp.Metadata.GamesAboveThreshold
		if len(resp.Recommendations) == 0 {
			result = metrics.ResultNoMatch
		}
	}
	metrics.RecordRecommendation(result, time.Since(start), eligible)
	return resp, err
}

func (e *Engine) recommend(ctx context.Context, text string, games []catalog.Game, opts Options) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count, err := e.checkOptions(text, opts)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMood
	}

	pool := games
	if opts.restricted() {
		pool = restrict(games, opts.RestrictToIDs)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyCatalog
	}

	profile := e.AnalyzeMood(text)

	scored := make([]ScoredGame, len(pool))
	above := 0
	for i := range pool {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		scored[i] = e.ScoreGame(&profile, &pool[i])
		if scored[i].Result.Percent > e.config.EligibilityThreshold {
			above++
		}
	}

	recs := Select(scored, count, e.config.EligibilityThreshold)

	e.logger.Debug().
		Int("pool", len(pool)).
		Int("above_threshold", above).
		Int("selected", len(recs)).
		Int("confidence", profile.Confidence).
		Msg("Recommendation computed")

	meta := SearchMetadata{
		TotalGamesAnalyzed:  len(pool),
		GamesAboveThreshold: above,
		AnalysisConfidence:  profile.Confidence,
		LibraryOnly:         opts.restricted(),
		Scorer:              e.scorer.Name(),
	}
	if meta.LibraryOnly {
		meta.LibraryGamesCount = len(pool)
	}

	return &Response{
		Profile:         profile,
		Recommendations: recs,
		Explanations:    globalExplanations(&profile, recs, e.config.LowConfidence),
		Suggestions:     Suggestions(&profile, recs),
		Metadata:        meta,
	}, nil
}

// checkOptions validates the request shape and resolves the shortlist size.
func (e *Engine) checkOptions(text string, opts Options) (int, error) {
	if !utf8.ValidString(text) {
		return 0, fmt.Errorf("%w: mood text is not valid UTF-8", ErrInvalidInput)
	}
	if opts.Count < 0 || opts.Count > e.config.MaxCount {
		return 0, fmt.Errorf("%w: count must be in [0, %d], got %d", ErrInvalidInput, e.config.MaxCount, opts.Count)
	}
	for _, id := range opts.RestrictToIDs {
		if id <= 0 {
			return 0, fmt.Errorf("%w: game id must be positive, got %d", ErrInvalidInput, id)
		}
	}
	if opts.Count == 0 {
		return e.config.DefaultCount, nil
	}
	return opts.Count, nil
}

func restrict(games []catalog.Game, ids []int) []catalog.Game {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]catalog.Game, 0, len(ids))
	for i := range games {
		if _, ok := want[games[i].ID]; ok {
			out = append(out, games[i])
		}
	}
	return out
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrEmptyMood):
		return metrics.ResultEmptyMood
	case errors.Is(err, ErrEmptyCatalog):
		return metrics.ResultEmptyCatalog
	default:
		return metrics.ResultInvalidInput
	}
}
