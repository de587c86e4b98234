package main

import (
	"fmt"
	"log/slog"
	"os"

	"newsroom/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENVIRONMENT"),
	}
}

type AppConfig struct {
	ENV string
}

type DataImportConfig struct {
	DBUrl         string
	MigrationsDir string
	SeedPath      string
	SkipSeed      bool
}

func (as *AppConfig) Load() (*DataImportConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/data_import/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		slog.Error("DB_URL environment variable is not set")
		return nil, fmt.Errorf("DB_URL environment variable is not set")
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "db/seeds/seed.yaml"
	}

	return &DataImportConfig{
		DBUrl:         dbUrl,
		MigrationsDir: migrationsDir,
		SeedPath:      seedPath,
		SkipSeed:      os.Getenv("SKIP_SEED") == "true",
	}, nil
}
