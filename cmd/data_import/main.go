// Command data_import applies the schema migrations and loads the YAML
// seed fixture into the configured database.
package main

import (
	"context"
	"log/slog"
	"os"

	"newsroom/internal/seed"
	"newsroom/internal/storage/pg"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.DBUrl})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.ApplyMigrations(ctx, pool.GetConn(), os.DirFS(cfg.MigrationsDir)); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	if cfg.SkipSeed {
		slog.Info("Skipping seed")
		return
	}

	file, err := os.Open(cfg.SeedPath)
	if err != nil {
		slog.Error("Failed to open seed file", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	loader := seed.NewLoader(file)

	fixture, err := loader.Load(true)
	if err != nil {
		slog.Error("Failed to load seed fixture", "error", err)
		os.Exit(1)
	}

	if err := seed.Apply(ctx, pool.GetConn(), fixture); err != nil {
		slog.Error("Failed to apply seed fixture", "error", err)
		os.Exit(1)
	}

	slog.Info("Data import finished")
}
