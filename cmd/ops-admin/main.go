package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/dedup"
	"github.com/daydreamers/ops-backend/internal/export"
	"github.com/daydreamers/ops-backend/internal/importer"
	"github.com/daydreamers/ops-backend/internal/inventory"
	"github.com/daydreamers/ops-backend/internal/mapping"
	"github.com/daydreamers/ops-backend/internal/repository"
	"github.com/daydreamers/ops-backend/internal/utils"
)

const usage = `usage: ops-admin <command> [flags]

commands:
  dedupe-sweep      collapse duplicate platform transactions
  audit             report inventory drift across the catalog
  fix-stock         overwrite a product's counter with the ledger value
  adjust            append a manual inventory adjustment
  export-ledger     write the transaction ledger as XLSX
  export-inventory  write the inventory drift report as XLSX
  import-stock      resolve an operator stock sheet against the catalog
`

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

type app struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	reconciler   *inventory.Reconciler
	dedupe       *dedup.Engine
	exports      *export.Service
	imports      *importer.Importer
	logger       *slog.Logger
}

func main() {
	if len(os.Args) < 2 {
		printError(usage)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	transactions := repository.NewTransactionRepository(entc, logger)
	products := repository.NewProductRepository(entc, logger)
	inventoryStore := repository.NewInventoryRepository(entc, logger)
	mappings := mapping.NewService(repository.NewSmartMappingRepository(entc, logger), products, logger)
	reconciler := inventory.NewReconciler(inventoryStore, logger)

	a := &app{
		transactions: transactions,
		products:     products,
		reconciler:   reconciler,
		dedupe:       dedup.NewEngine(transactions, logger),
		exports:      export.NewService(transactions, reconciler, logger),
		imports:      importer.New(products, mappings, logger),
		logger:       logger,
	}

	var runErr error
	switch command {
	case "dedupe-sweep":
		runErr = a.dedupeSweep(ctx, args)
	case "audit":
		runErr = a.audit(ctx, args)
	case "fix-stock":
		runErr = a.fixStock(ctx, args)
	case "adjust":
		runErr = a.adjust(ctx, args)
	case "export-ledger":
		runErr = a.exportLedger(ctx, args)
	case "export-inventory":
		runErr = a.exportInventory(ctx, args)
	case "import-stock":
		runErr = a.importStock(ctx, args)
	default:
		printError("unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
	if runErr != nil {
		printError("Error: %v\n", runErr)
		os.Exit(1)
	}
}

func (a *app) dedupeSweep(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dedupe-sweep", flag.ExitOnError)
	platform := fs.String("platform", "", "platform to sweep (square | shopify) (required)")
	_ = fs.Parse(args)
	if *platform == "" {
		return fmt.Errorf("--platform is required")
	}

	summary, err := a.dedupe.Sweep(ctx, a.transactions, *platform)
	if err != nil {
		return err
	}
	fmt.Printf("swept %s: %d refs processed, %d collapsed, %d deleted, %d errored\n",
		*platform, summary.Processed, summary.Collapsed, summary.Deleted, summary.Errored)
	return nil
}

func (a *app) audit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	driftOnly := fs.Bool("drift-only", false, "only print products with drift")
	_ = fs.Parse(args)

	audits, errored, err := a.reconciler.AuditAll(ctx)
	if err != nil {
		return err
	}
	drifted := 0
	for _, audit := range audits {
		if audit.Difference != 0 {
			drifted++
		} else if *driftOnly {
			continue
		}
		fmt.Printf("%-40s stock=%-5d ledger=%-5d diff=%+d (events=%d)\n",
			audit.ProductName, audit.CurrentStock, audit.CalculatedStock, audit.Difference, audit.Events)
	}
	fmt.Printf("%d products audited, %d drifted, %d errored\n", len(audits), drifted, errored)
	return nil
}

func (a *app) fixStock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fix-stock", flag.ExitOnError)
	productID := fs.String("product", "", "product UUID (required)")
	_ = fs.Parse(args)

	id, err := utils.ParseUUID("product", *productID)
	if err != nil {
		return err
	}
	audit, err := a.reconciler.UpdateToCalculated(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s: stock set to %d (ledger value %d)\n",
		audit.ProductName, audit.CurrentStock, audit.CalculatedStock)
	return nil
}

func (a *app) adjust(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("adjust", flag.ExitOnError)
	productID := fs.String("product", "", "product UUID (required)")
	delta := fs.Int("delta", 0, "signed quantity change (required, non-zero)")
	reason := fs.String("reason", "", "why the adjustment is needed (required)")
	_ = fs.Parse(args)

	id, err := utils.ParseUUID("product", *productID)
	if err != nil {
		return err
	}
	if *reason == "" {
		return fmt.Errorf("--reason is required")
	}
	change, err := a.reconciler.CreateManualAdjustment(ctx, id, *delta, *reason)
	if err != nil {
		return err
	}
	fmt.Printf("adjustment %s recorded: %+d (%s)\n", change.ID, change.QuantityChange, change.Reason)
	return nil
}

func (a *app) exportLedger(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-ledger", flag.ExitOnError)
	out := fs.String("out", "transactions.xlsx", "output XLSX file path")
	fromStr := fs.String("from", "", "from date YYYY-MM-DD")
	toStr := fs.String("to", "", "to date YYYY-MM-DD")
	_ = fs.Parse(args)

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := utils.ParseYMD(*fromStr)
		if err != nil {
			return fmt.Errorf("invalid --from date, use YYYY-MM-DD: %w", err)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := utils.ParseYMD(*toStr)
		if err != nil {
			return fmt.Errorf("invalid --to date, use YYYY-MM-DD: %w", err)
		}
		to = &parsed
	}

	data, err := a.exports.ExportLedgerXLSX(ctx, from, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
	return nil
}

func (a *app) exportInventory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-inventory", flag.ExitOnError)
	out := fs.String("out", "inventory.xlsx", "output XLSX file path")
	_ = fs.Parse(args)

	data, err := a.exports.ExportInventoryXLSX(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
	return nil
}

func (a *app) importStock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import-stock", flag.ExitOnError)
	file := fs.String("file", "", "XLSX file to import (required)")
	_ = fs.Parse(args)
	if *file == "" {
		return fmt.Errorf("--file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	summary, err := a.imports.ImportWorkbook(ctx, data)
	if err != nil {
		return err
	}
	for _, r := range summary.Results {
		switch r.Status {
		case "matched":
			fmt.Printf("row %-4d matched   %q -> %s (qty %d)\n", r.Row, r.RawName, r.Product.Name, r.Quantity)
		case "suggested":
			fmt.Printf("row %-4d suggested %q (%d candidates)\n", r.Row, r.RawName, len(r.Suggestions))
		case "unmatched":
			fmt.Printf("row %-4d unmatched %q\n", r.Row, r.RawName)
		default:
			fmt.Printf("row %-4d error     %q: %s\n", r.Row, r.RawName, r.Reason)
		}
	}
	fmt.Printf("%d rows: %d matched, %d suggested, %d unmatched, %d errored\n",
		summary.Rows, summary.Matched, summary.Suggested, summary.Unmatched, summary.Errored)
	return nil
}
