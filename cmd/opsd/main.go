package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/dedup"
	"github.com/daydreamers/ops-backend/internal/export"
	"github.com/daydreamers/ops-backend/internal/importer"
	"github.com/daydreamers/ops-backend/internal/inventory"
	"github.com/daydreamers/ops-backend/internal/llm"
	"github.com/daydreamers/ops-backend/internal/llm/gemini"
	"github.com/daydreamers/ops-backend/internal/llm/openai"
	"github.com/daydreamers/ops-backend/internal/mapping"
	"github.com/daydreamers/ops-backend/internal/pipeline"
	"github.com/daydreamers/ops-backend/internal/repository"
	"github.com/daydreamers/ops-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
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
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	suppliers := repository.NewSupplierRepository(entc, logger)
	products := repository.NewProductRepository(entc, logger)
	transactions := repository.NewTransactionRepository(entc, logger)
	emails := repository.NewInvoiceEmailRepository(entc, logger)
	mappingStore := repository.NewSmartMappingRepository(entc, logger)
	inventoryStore := repository.NewInventoryRepository(entc, logger)

	// Services
	mappings := mapping.NewService(mappingStore, products, logger)
	reconciler := inventory.NewReconciler(inventoryStore, logger)
	dedupe := dedup.NewEngine(transactions, logger)
	parser := buildParser(cfg, logger)
	processor := pipeline.NewProcessor(emails, suppliers, transactions, products, inventoryStore, mappings, parser, logger)
	exports := export.NewService(transactions, reconciler, logger)
	imports := importer.New(products, mappings, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	opspb.RegisterSuppliersServiceServer(grpcServer, server.NewSuppliersService(suppliers, logger))
	opspb.RegisterPipelineServiceServer(grpcServer, server.NewPipelineService(emails, processor, mappings, logger))
	opspb.RegisterTransactionsServiceServer(grpcServer, server.NewTransactionsService(transactions, dedupe, logger))
	opspb.RegisterInventoryServiceServer(grpcServer, server.NewInventoryService(reconciler, logger))
	opspb.RegisterExportServiceServer(grpcServer, server.NewExportService(exports, imports, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc server listening", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

// buildParser wires the OpenAI chat parser with the Gemini fallback. Without
// an OpenAI key the pipeline runs pattern-only.
func buildParser(cfg *common.Config, logger *slog.Logger) llm.InvoiceParser {
	if cfg.LLM.APIKey == "" && os.Getenv("OPENAI_API_KEY") == "" {
		logger.Warn("no OpenAI key configured, AI parsing disabled")
		return nil
	}
	primary := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if cfg.LLM.GeminiAPIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		return primary
	}
	fallback := gemini.NewClient(gemini.Config{
		APIKey:   cfg.LLM.GeminiAPIKey,
		Models:   cfg.LLM.GeminiModels,
		Versions: cfg.LLM.GeminiVersions,
		Timeout:  cfg.LLM.Timeout,
	}, logger)
	return llm.NewParserWithFallback(primary, fallback, logger)
}
