package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/joho/godotenv"

	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/extract"
	"github.com/paydocs/billscan/internal/llm/openai"
	"github.com/paydocs/billscan/internal/pipeline"
	repo "github.com/paydocs/billscan/internal/repository"
	"github.com/paydocs/billscan/internal/storage"
	"github.com/paydocs/billscan/internal/sweep"
)

// sweepd is a standalone recovery loop for deployments that want
// sweeping decoupled from the API daemon. It shares nothing with
// billscand at runtime; overlap is harmless because processing a
// finished document is a no-op.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env file")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		logger.Error("failed to create storage client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := gcsClient.Close(); cerr != nil {
			logger.Warn("storage client close failed", "error", cerr)
		}
	}()
	artifacts := storage.NewGCSStore(gcsClient, cfg.Storage.Bucket, logger)

	docsRepo := repo.NewDocumentRepository(entc, logger)

	runner := extract.NewExecRunner()
	preprocessor := extract.NewMagickPreprocessor(runner, cfg.Extract.Magick, logger)
	recognizer := extract.NewTesseractRecognizer(runner, extract.TesseractConfig{
		Binary:      cfg.Extract.Tesseract,
		Lang:        cfg.Extract.TesseractLang,
		TessdataDir: cfg.Extract.TessdataDir,
	}, logger)

	var matcher extract.TemplateMatcher
	if cfg.Extract.TemplateBaseURL != "" {
		matcher = extract.NewHTTPTemplateMatcher(extract.TemplateMatcherConfig{
			BaseURL: cfg.Extract.TemplateBaseURL,
			APIKey:  cfg.Extract.TemplateAPIKey,
			Timeout: cfg.Extract.Timeout,
		}, logger)
	} else {
		matcher = extract.DisabledTemplateMatcher{}
	}

	llmClient := openai.NewClient(openai.Config{
		Model:           cfg.LLM.Model,
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientOptional: true,
	}, logger)

	validator := pipeline.NewValidator(cfg.Pipeline.ConfidenceThreshold)
	engine := pipeline.NewEngine(logger, docsRepo, artifacts, preprocessor, matcher, recognizer, llmClient, validator)
	sweeper := sweep.NewSweeper(docsRepo, engine, logger)

	interval := cfg.Pipeline.SweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	logger.Info("sweepd running", "interval", interval, "limit", cfg.Pipeline.SweepLimit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("sweepd stopping")
			return
		case <-ticker.C:
			passCtx, cancel := context.WithTimeout(ctx, cfg.Pipeline.ProcessTimeout*time.Duration(sweep.MaxLimit))
			if _, err := sweeper.Sweep(passCtx, cfg.Pipeline.SweepLimit, nil); err != nil {
				logger.Error("sweep pass failed", "error", err)
			}
			cancel()
		}
	}
}
