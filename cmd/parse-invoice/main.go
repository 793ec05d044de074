package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/extraction"
	"github.com/daydreamers/ops-backend/internal/llm"
	"github.com/daydreamers/ops-backend/internal/llm/gemini"
	"github.com/daydreamers/ops-backend/internal/llm/openai"
)

// parse-invoice runs one email body through extraction without touching a
// database: patterns from a config file first, the AI parser when the total
// is missing or --ai is set. Useful for dialing in a supplier's
// parsing_config before saving it.
func main() {
	var (
		bodyPath = flag.String("body", "", "file containing the raw email body (required)")
		cfgPath  = flag.String("config", "", "JSON EmailParsingConfig file (optional)")
		supplier = flag.String("supplier", "", "supplier name for the AI prompt")
		useAI    = flag.Bool("ai", false, "always run the AI parser")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *bodyPath == "" {
		logger.Error("usage: parse-invoice --body email.html [--config parsing.json] [--ai]")
		os.Exit(2)
	}
	body, err := os.ReadFile(*bodyPath)
	if err != nil {
		logger.Error("read body", "path", *bodyPath, "error", err)
		os.Exit(1)
	}

	var cfg entity.EmailParsingConfig
	if *cfgPath != "" {
		raw, err := os.ReadFile(*cfgPath)
		if err != nil {
			logger.Error("read config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			logger.Error("parse config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
	}

	engine := extraction.NewEngine(logger)
	res := engine.Extract(string(body), cfg)
	for _, issue := range res.Issues {
		logger.Warn("rule issue", "field", issue.Field, "reason", issue.Reason)
	}

	out := map[string]any{"fields": res.Fields, "products": res.Products}

	_, hasTotal := res.Total()
	if *useAI || !hasTotal {
		fields, raw, err := runAI(string(body), *supplier, logger)
		if err != nil {
			logger.Error("ai parse failed", "error", err)
		} else {
			out["ai"] = fields
			out["ai_raw"] = string(raw)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}

func runAI(body, supplier string, logger *slog.Logger) (llm.InvoiceFields, []byte, error) {
	_ = godotenv.Load()
	appCfg := common.LoadConfig()
	if appCfg.LLM.APIKey == "" && os.Getenv("OPENAI_API_KEY") == "" {
		return llm.InvoiceFields{}, nil, fmt.Errorf("OPENAI_API_KEY is required for --ai")
	}

	primary := openai.NewClient(openai.Config{
		APIKey:      appCfg.LLM.APIKey,
		Model:       appCfg.LLM.Model,
		Temperature: appCfg.LLM.Temperature,
		Timeout:     appCfg.LLM.Timeout,
	}, logger)

	var parser llm.InvoiceParser = primary
	if appCfg.LLM.GeminiAPIKey != "" || os.Getenv("GEMINI_API_KEY") != "" {
		fallback := gemini.NewClient(gemini.Config{
			APIKey:   appCfg.LLM.GeminiAPIKey,
			Models:   appCfg.LLM.GeminiModels,
			Versions: appCfg.LLM.GeminiVersions,
			Timeout:  appCfg.LLM.Timeout,
		}, logger)
		parser = llm.NewParserWithFallback(primary, fallback, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	return parser.ParseInvoice(ctx, llm.ParseRequest{Body: body, SupplierName: supplier})
}
