// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/tomtom215/ludomood/internal/api"
	"github.com/tomtom215/ludomood/internal/cache"
	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/config"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/logging"
	"github.com/tomtom215/ludomood/internal/metrics"
	"github.com/tomtom215/ludomood/internal/recommend"
	"github.com/tomtom215/ludomood/internal/supervisor"
	"github.com/tomtom215/ludomood/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stdout,
	})
	logger := logging.Logger()
	start := time.Now()

	logging.Info().Str("version", api.Version).Msg("Starting Ludomood")
	metrics.SetAppInfo(api.Version, runtime.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lex, err := lexicon.Load(cfg.Lexicon.OverridePath, lexicon.Options{
		FoldAccents:     cfg.Lexicon.FoldAccents,
		MaxSynonymDepth: cfg.Lexicon.MaxSynonymDepth,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load lexicon")
	}
	rules, triggers, expressions, synonyms := lex.Stats()
	logging.Info().
		Int("rules", rules).
		Int("triggers", triggers).
		Int("expressions", expressions).
		Int("synonyms", synonyms).
		Bool("fold_accents", cfg.Lexicon.FoldAccents).
		Msg("Lexicon loaded")

	store := catalog.NewStore(logger)
	closer, err := loadCatalog(ctx, cfg.Catalog, store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog source")
		}
	}()

	engine, err := recommend.NewEngine(engineConfig(cfg.Recommend), lex, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	responses := cache.New(cfg.Cache.TTL)
	handler, err := api.NewHandler(engine, store, responses, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if slices.Contains(cfg.Security.CORSOrigins, "*") {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins when exposed publicly")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Catalog.Watch {
		tree.AddCatalogService(catalog.NewWatcher(store, cfg.Catalog.Path, cfg.Catalog.ReloadDebounce, logger))
		logging.Info().Str("path", cfg.Catalog.Path).Msg("Catalog watcher added to supervisor tree")
	}
	tree.AddMaintenanceService(responses)
	tree.AddMaintenanceService(services.NewUptimeService(start, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

func engineConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		DefaultCount:         rc.DefaultCount,
		MaxCount:             rc.MaxCount,
		EligibilityThreshold: rc.EligibilityThreshold,
		Scorer:               rc.Scorer,
		LowConfidence:        rc.LowConfidence,
		SimilarLimit:         rc.SimilarLimit,
		SimilarThreshold:     rc.SimilarThreshold,
	}
}
