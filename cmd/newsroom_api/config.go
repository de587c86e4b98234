package main

import (
	"fmt"
	"log/slog"
	"os"

	"newsroom/internal/summary"
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

type ApiConfig struct {
	DBUrl    string
	Migrate  bool
	Seed     bool
	SeedPath string

	SummaryConfig *summary.Config
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/newsroom_api/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		slog.Error("DB_URL environment variable is not set")
		return nil, fmt.Errorf("DB_URL environment variable is not set")
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "db/seeds/seed.yaml"
	}

	cfg := &ApiConfig{
		DBUrl:         dbUrl,
		Migrate:       os.Getenv("DB_MIGRATE") == "true",
		Seed:          os.Getenv("DB_SEED") == "true",
		SeedPath:      seedPath,
		SummaryConfig: summary.LoadConfigFromEnv(),
	}

	return cfg, nil
}
