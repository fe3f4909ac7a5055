package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	gcs "cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/confirm"
	"github.com/paydocs/billscan/internal/export"
	"github.com/paydocs/billscan/internal/extract"
	"github.com/paydocs/billscan/internal/llm/openai"
	"github.com/paydocs/billscan/internal/pipeline"
	repo "github.com/paydocs/billscan/internal/repository"
	svc "github.com/paydocs/billscan/internal/server"
	"github.com/paydocs/billscan/internal/storage"
	"github.com/paydocs/billscan/internal/sweep"
	"github.com/paydocs/billscan/internal/trigger"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development convenience; absence of a .env file is fine.
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
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

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
	companiesRepo := repo.NewCompanyRepository(entc, logger)

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
		logger.Warn("template recognition disabled, all documents will use the general track")
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

	queue := trigger.NewEngineQueue(engine, logger,
		trigger.WithWorkers(cfg.Pipeline.Workers),
		trigger.WithQueueSize(cfg.Pipeline.QueueSize),
		trigger.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)
	controller := trigger.NewController(docsRepo, queue, logger)
	sweeper := sweep.NewSweeper(docsRepo, engine, logger)
	confirmSvc := confirm.NewService(docsRepo, logger)
	exportSvc := export.NewService(docsRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.UnaryRequestIDInterceptor(logger)),
	)
	billsServer := svc.NewBillsServer(
		docsRepo, companiesRepo, artifacts,
		controller, confirmSvc, sweeper, exportSvc,
		cfg.Storage.SignedURLTTL, logger,
	)
	billspb.RegisterBillsServiceServer(grpcServer, billsServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("billscand listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
