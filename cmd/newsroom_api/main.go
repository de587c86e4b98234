// Package main Newsroom API
// @title Newsroom API
// @version 1.0
// @description A small newsroom backend for browsing articles, authors and AI-generated summaries
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "newsroom/docs"
	"newsroom/internal/router"
	"newsroom/internal/seed"
	"newsroom/internal/server"
	"newsroom/internal/storage/pg"
	"newsroom/internal/summary"
	"newsroom/web"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	staticFS, err := web.StaticFS()
	if err != nil {
		slog.Error("Failed to load dashboard assets", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(context.Background(), pg.PoolConfig{ConnStr: cfg.DBUrl})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pg.NewHealthChecker(pool)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		SetupDashboard(staticFS)

	if cfg.Migrate {
		if err := pg.ApplyMigrations(s.Context(), pool.GetConn(), os.DirFS("db/migrations")); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Seed {
		if err := applySeed(s, pool, cfg.SeedPath); err != nil {
			slog.Error("Failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	summarizer := newSummarizer(cfg.SummaryConfig)

	articleRouter := router.NewArticleRouter(s.Echo, pg.NewArticleStore(pool.GetConn()), summarizer)
	articleRouter.Bind()

	authorRouter := router.NewAuthorRouter(s.Echo, pg.NewAuthorStore(pool.GetConn()))
	authorRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		pool.Close()
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func applySeed(s *server.Server, pool *pg.ConnectionPool, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fixture, err := seed.NewLoader(file).Load(true)
	if err != nil {
		return err
	}

	return seed.Apply(s.Context(), pool.GetConn(), fixture)
}

// newSummarizer wires the provider client only when an api key is
// present; otherwise the summarizer runs in fallback mode.
func newSummarizer(cfg *summary.Config) *summary.Summarizer {
	if cfg.APIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, summaries fall back to stored content")
		return summary.NewSummarizer(nil)
	}

	client, err := summary.NewOpenAIClient(cfg.BaseURL, cfg.APIKey)
	if err != nil {
		slog.Error("Failed to create summary client, falling back", "error", err)
		return summary.NewSummarizer(nil)
	}

	slog.Info("Summary client configured", "model", cfg.Model)
	return summary.NewSummarizer(client, summary.WithModel(cfg.Model))
}
