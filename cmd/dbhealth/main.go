package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/internal/common"
	repo "github.com/paydocs/billscan/internal/repository"
)

// dbhealth verifies connectivity and prints a quick queue snapshot.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 1*time.Second, logger); err != nil {
		logger.Error("DB health: FAIL", "error", err)
		os.Exit(1)
	}
	logger.Info("DB health: OK")

	for _, status := range []string{"IN_PROGRESS", "NEEDS_REVIEW", "CONFIRMED", "REJECTED"} {
		n, err := entc.BillDocument.Query().
			Where(billdocument.Status(status)).
			Count(ctx)
		if err != nil {
			logger.Error("counting documents failed", "status", status, "error", err)
			os.Exit(1)
		}
		logger.Info("documents", "status", status, "count", n)
	}
}
