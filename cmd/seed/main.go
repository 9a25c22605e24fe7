package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/joao-fontenele/salmo-storefront/internal/seed"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	postgresURL := os.Getenv("POSTGRES_URL")
	if postgresURL == "" {
		logger.Error("POSTGRES_URL environment variable is required")
		os.Exit(1)
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "catalog.json"
	}

	entries, err := seed.LoadCatalog(catalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", err, "path", catalogPath)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	created, err := seed.NewSeeder(db, logger).Seed(context.Background(), entries)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete", "entries", len(entries), "created", created)
}
