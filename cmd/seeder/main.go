// Command seeder applies the embedded migrations and fills an empty database
// with the baseline roles, administrator and sample records. Running it
// against a seeded database is a no-op.
//
// Flags:
//
//	--skip-migrate  do not apply migrations first
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/app"
	"github.com/heartmarshall/bizcrm-backend/internal/config"
)

func main() {
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply migrations first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	cfg.Database.AutoMigrate = !*skipMigrate
	cfg.Seed.Enabled = true
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid seed config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := app.Bootstrap(ctx, logger, cfg)
	if err != nil {
		logger.Error("bootstrap failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pool.Close()

	logger.Info("seeding completed")
}
