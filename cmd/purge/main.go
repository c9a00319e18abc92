// Command purge physically removes soft-deleted records of every module
// older than the configured retention period. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Flags:
//
//	--days  override retention.purge_after_days
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

	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/bizcrm-backend/internal/app"
	"github.com/heartmarshall/bizcrm-backend/internal/config"
	entitysvc "github.com/heartmarshall/bizcrm-backend/internal/service/entity"
)

func main() {
	daysFlag := flag.Int("days", 0, "retention in days (default: retention.purge_after_days)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *daysFlag > 0 {
		cfg.Retention.PurgeAfterDays = *daysFlag
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := entitysvc.NewService(logger, entity.New(pool), postgres.NewTxManager(pool))

	threshold := cfg.Retention.PurgeBefore(time.Now())

	purged, err := svc.PurgeDeleted(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	var total int64
	for module, n := range purged {
		total += n
		if n > 0 {
			logger.Info("module purged", slog.String("module", module.String()), slog.Int64("deleted", n))
		}
	}

	logger.Info("purge completed",
		slog.Int64("deleted", total),
		slog.Time("threshold", threshold),
	)
}
