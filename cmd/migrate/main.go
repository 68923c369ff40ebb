// Command migrate applies the contact_submissions schema. The schema is
// a single idempotent CREATE TABLE IF NOT EXISTS, so the command can be
// run any number of times; the server also ensures it at startup.
package main

import (
	"context"
	"log/slog"

	"github.com/cortexa-ai/backend/internal/config"
	"github.com/cortexa-ai/backend/internal/logging"
	"github.com/cortexa-ai/backend/internal/repository"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup("cortexa-migrate")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	repo := repository.NewPgSubmissionRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logging.Fatal("migration failed", "error", err)
	}
	slog.Info("schema ensured", "table", "contact_submissions")
}
