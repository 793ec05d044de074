package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/extraction"
	"github.com/daydreamers/ops-backend/internal/llm"
)

var (
	// ErrNoSupplier means no supplier claimed the email; it stays pending for
	// operator attribution.
	ErrNoSupplier = errors.New("no supplier matched email")
	// ErrNoTotal means neither pattern extraction nor the AI parser produced
	// an order total; nothing is written.
	ErrNoTotal = errors.New("no order total extracted")
)

// Emails is the slice of the email store the processor needs.
type Emails interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceEmail, error)
	ListPending(ctx context.Context, limit int) ([]*entity.InvoiceEmail, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, supplierID, transactionID uuid.UUID) error
}

// Suppliers attributes emails and loads parsing configuration.
type Suppliers interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	MatchEmail(ctx context.Context, from, subject string) (*entity.Supplier, error)
}

// Ledger creates purchase transactions.
type Ledger interface {
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
}

// Catalog applies the per-product side effects of a processed purchase.
type Catalog interface {
	AppendCost(ctx context.Context, productID uuid.UUID, c entity.CostHistoryEntry) error
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (int, error)
}

// Changes appends inventory ledger events.
type Changes interface {
	AppendChange(ctx context.Context, ch *entity.InventoryChange) (*entity.InventoryChange, error)
}

// Resolver resolves raw invoice names to catalog products and reinforces the
// mappings that were used. Satisfied by *mapping.Service.
type Resolver interface {
	ResolveProduct(ctx context.Context, supplierID uuid.UUID, rawName string) (*entity.Product, error)
	RecordProductMapping(ctx context.Context, rawName string, product *entity.Product) (*entity.SmartMapping, error)
	RecordEmailSupplierMapping(ctx context.Context, fromAddress string, supplier *entity.Supplier) (*entity.SmartMapping, error)
}

// Options tweaks a single processing run.
type Options struct {
	// ForceAI skips the pattern-first short circuit and always consults the
	// AI parser.
	ForceAI bool
}

// ItemOutcome reports what happened to one invoice line item.
type ItemOutcome struct {
	Raw       string     `json:"raw"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Status    string     `json:"status"` // resolved | skipped | errored
	Reason    string     `json:"reason,omitempty"`
}

// EmailOutcome is the structured summary of one email run. Per-item failures
// land in Items and the counters; they never abort the email.
type EmailOutcome struct {
	EmailID       uuid.UUID     `json:"email_id"`
	Supplier      string        `json:"supplier"`
	TransactionID *uuid.UUID    `json:"transaction_id,omitempty"`
	UsedAI        bool          `json:"used_ai"`
	Total         float64       `json:"total"`
	Processed     int           `json:"processed"`
	Skipped       int           `json:"skipped"`
	Errored       int           `json:"errored"`
	Items         []ItemOutcome `json:"items,omitempty"`
}

// BatchOutcome summarizes a pending-queue run.
type BatchOutcome struct {
	Emails    int
	Processed int
	Failed    int
}

// Processor drives an invoice email through extraction, resolution and the
// ledger writes.
type Processor struct {
	emails    Emails
	suppliers Suppliers
	ledger    Ledger
	catalog   Catalog
	changes   Changes
	resolver  Resolver
	extractor *extraction.Engine
	parser    llm.InvoiceParser
	logger    *slog.Logger
}

func NewProcessor(
	emails Emails,
	suppliers Suppliers,
	ledger Ledger,
	catalog Catalog,
	changes Changes,
	resolver Resolver,
	parser llm.InvoiceParser,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		emails:    emails,
		suppliers: suppliers,
		ledger:    ledger,
		catalog:   catalog,
		changes:   changes,
		resolver:  resolver,
		extractor: extraction.NewEngine(logger),
		parser:    parser,
		logger:    logger,
	}
}

// ProcessInvoiceEmail runs one captured email end to end: attribute it to a
// supplier, extract fields (patterns first, AI when the total is missing or
// forced), resolve line items, write the purchase transaction and its
// inventory side effects, then mark the email processed. Re-running a
// processed email is a no-op.
func (p *Processor) ProcessInvoiceEmail(ctx context.Context, emailID uuid.UUID, opts Options) (*EmailOutcome, error) {
	email, err := p.emails.GetByID(ctx, emailID)
	if err != nil {
		return nil, err
	}
	if email.Status == constants.EmailProcessed {
		p.logger.Info("pipeline.email.already_processed", "email_id", emailID)
		return &EmailOutcome{EmailID: emailID, TransactionID: email.TransactionID}, nil
	}

	supplier, err := p.attribute(ctx, email)
	if err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.email.start",
		"email_id", emailID, "supplier", supplier.Name, "subject", email.Subject)

	fields, usedAI, err := p.extractFields(ctx, email, supplier, opts)
	if err != nil {
		return nil, err
	}
	if fields.OrderTotal == nil {
		return nil, fmt.Errorf("%w: email %s", ErrNoTotal, emailID)
	}

	outcome := &EmailOutcome{
		EmailID:  emailID,
		Supplier: supplier.Name,
		UsedAI:   usedAI,
		Total:    *fields.OrderTotal,
	}

	resolved := p.resolveProducts(ctx, supplier, fields.Products, outcome)

	tx, err := p.ledger.Create(ctx, p.buildTransaction(email, supplier, fields, resolved))
	if err != nil {
		return nil, err
	}
	txID := tx.ID
	outcome.TransactionID = &txID

	p.applyInventory(ctx, email, tx, resolved, outcome)

	if err := p.emails.MarkProcessed(ctx, emailID, supplier.ID, tx.ID); err != nil {
		return nil, err
	}
	if _, err := p.resolver.RecordEmailSupplierMapping(ctx, email.From, supplier); err != nil {
		p.logger.Warn("pipeline.mapping.supplier_failed", "email_id", emailID, "error", err)
	}

	p.logger.Info("pipeline.email.done",
		"email_id", emailID,
		"transaction_id", tx.ID,
		"total", outcome.Total,
		"used_ai", usedAI,
		"processed", outcome.Processed,
		"skipped", outcome.Skipped,
		"errored", outcome.Errored,
	)
	return outcome, nil
}

// ProcessPending drains the pending queue. One failing email is logged and
// counted, never fatal to the batch.
func (p *Processor) ProcessPending(ctx context.Context, limit int, opts Options) (*BatchOutcome, error) {
	pending, err := p.emails.ListPending(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := &BatchOutcome{Emails: len(pending)}
	for _, email := range pending {
		if _, err := p.ProcessInvoiceEmail(ctx, email.ID, opts); err != nil {
			p.logger.Warn("pipeline.batch.email_failed", "email_id", email.ID, "error", err)
			out.Failed++
			continue
		}
		out.Processed++
	}
	p.logger.Info("pipeline.batch.done",
		"emails", out.Emails, "processed", out.Processed, "failed", out.Failed)
	return out, nil
}

func (p *Processor) attribute(ctx context.Context, email *entity.InvoiceEmail) (*entity.Supplier, error) {
	if email.SupplierID != nil {
		return p.suppliers.GetByID(ctx, *email.SupplierID)
	}
	supplier, err := p.suppliers.MatchEmail(ctx, email.From, email.Subject)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: from %q", ErrNoSupplier, email.From)
	}
	return supplier, nil
}

// extractFields runs pattern extraction and falls back to the AI parser when
// the total is missing or the caller forced it. Pattern-extracted line items
// are kept when the AI returns none.
func (p *Processor) extractFields(ctx context.Context, email *entity.InvoiceEmail, supplier *entity.Supplier, opts Options) (llm.InvoiceFields, bool, error) {
	ext := p.extractor.Extract(email.Body, supplier.ParsingConfig)
	fields := fieldsFromExtraction(ext)

	if fields.OrderTotal != nil && !opts.ForceAI {
		return fields, false, nil
	}
	if p.parser == nil {
		return fields, false, nil
	}

	p.logger.Info("pipeline.ai.fallback",
		"email_id", email.ID, "forced", opts.ForceAI, "samples", len(supplier.TrainingSamples))
	// The parser gets the same bounds-stripped body the rules ran against,
	// not the raw email with its marketing pre/post content.
	aiFields, _, err := p.parser.ParseInvoice(ctx, llm.ParseRequest{
		Body:         ext.Body,
		SupplierName: supplier.Name,
		Samples:      supplier.TrainingSamples,
	})
	if err != nil {
		// A total from patterns still lets a forced run proceed.
		if fields.OrderTotal != nil {
			p.logger.Warn("pipeline.ai.failed_using_patterns", "email_id", email.ID, "error", err)
			return fields, false, nil
		}
		return fields, false, err
	}
	if len(aiFields.Products) == 0 {
		aiFields.Products = fields.Products
	}
	return aiFields, true, nil
}

// fieldsFromExtraction converts a pattern extraction into the shared invoice
// shape so both paths feed one downstream flow.
func fieldsFromExtraction(res *extraction.Result) llm.InvoiceFields {
	f := llm.InvoiceFields{}
	if v, ok := res.Total(); ok {
		f.OrderTotal = &v
	}
	if v, ok := res.OrderNumber(); ok {
		f.OrderNumber = v
	}
	for name, dst := range map[string]**float64{
		"subtotal": &f.Subtotal,
		"shipping": &f.Shipping,
		"tax":      &f.Tax,
		"discount": &f.Discount,
	} {
		if v, ok := res.Fields[name].(float64); ok {
			val := v
			*dst = &val
		}
	}
	for _, item := range res.Products {
		f.Products = append(f.Products, llm.InvoiceProduct{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: parsePrice(item.PriceText),
		})
	}
	return f
}

type resolvedItem struct {
	raw      string
	product  *entity.Product
	quantity int
	cost     float64 // line total after wholesale discount
}

// resolveProducts maps raw invoice names to catalog products. Unresolved
// names are skipped with a reason; resolution errors are counted and the rest
// of the items still run.
func (p *Processor) resolveProducts(ctx context.Context, supplier *entity.Supplier, items []llm.InvoiceProduct, outcome *EmailOutcome) []resolvedItem {
	discount := 0.0
	if pr := supplier.ParsingConfig.Products; pr != nil {
		discount = pr.WholesaleDiscount
	}

	var resolved []resolvedItem
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		product, err := p.resolver.ResolveProduct(ctx, supplier.ID, item.Name)
		if err != nil {
			p.logger.Warn("pipeline.resolve.error", "raw", item.Name, "error", err)
			outcome.Errored++
			outcome.Items = append(outcome.Items, ItemOutcome{
				Raw: item.Name, Quantity: qty, Status: "errored", Reason: err.Error(),
			})
			continue
		}
		if product == nil {
			outcome.Skipped++
			outcome.Items = append(outcome.Items, ItemOutcome{
				Raw: item.Name, Quantity: qty, Status: "skipped", Reason: "no confirmed product mapping",
			})
			continue
		}

		cost := item.LineTotal
		if discount > 0 {
			cost = cost * (1 - discount/100)
		}
		id := product.ID
		outcome.Processed++
		outcome.Items = append(outcome.Items, ItemOutcome{
			Raw: item.Name, ProductID: &id, Quantity: qty, Status: "resolved",
		})
		resolved = append(resolved, resolvedItem{raw: item.Name, product: product, quantity: qty, cost: cost})
	}
	return resolved
}

func (p *Processor) buildTransaction(email *entity.InvoiceEmail, supplier *entity.Supplier, fields llm.InvoiceFields, resolved []resolvedItem) *entity.Transaction {
	supplierID := supplier.ID
	tx := &entity.Transaction{
		Date:       email.Date,
		Type:       constants.TxTypePurchase,
		Amount:     *fields.OrderTotal,
		Source:     constants.SourceGmail,
		Status:     constants.TxStatusCompleted,
		SupplierID: &supplierID,
	}
	if fields.OrderNumber != "" {
		tx.PlatformMetadata = &entity.PlatformMetadata{
			Platform:  string(constants.SourceGmail),
			OrderID:   fields.OrderNumber,
			UpdatedAt: time.Now().UTC(),
		}
	}
	if fields.Subtotal != nil {
		tx.PreTaxAmount = fields.Subtotal
	}
	if fields.Tax != nil {
		tx.TaxAmount = fields.Tax
	}
	for _, item := range resolved {
		tx.Products = append(tx.Products, entity.TransactionProduct{
			ProductID:   item.product.ID,
			Name:        item.product.Name,
			Quantity:    item.quantity,
			TotalPrice:  item.cost,
			SupplierRaw: item.raw,
		})
	}
	return tx
}

// applyInventory writes the per-product side effects of the purchase: cost
// history, the stock counter, the inventory ledger event, and mapping
// reinforcement. Each product fails independently.
func (p *Processor) applyInventory(ctx context.Context, email *entity.InvoiceEmail, tx *entity.Transaction, resolved []resolvedItem, outcome *EmailOutcome) {
	txID := tx.ID
	for _, item := range resolved {
		unitCost := 0.0
		if item.quantity > 0 && item.cost > 0 {
			unitCost = item.cost / float64(item.quantity)
		}
		err := p.catalog.AppendCost(ctx, item.product.ID, entity.CostHistoryEntry{
			Date:      email.Date,
			Quantity:  float64(item.quantity),
			UnitCost:  unitCost,
			TotalCost: item.cost,
			Source:    "invoice:" + email.EmailID,
		})
		if err != nil {
			p.itemFailed(outcome, item, "cost history: "+err.Error())
			continue
		}
		if _, err := p.catalog.AdjustStock(ctx, item.product.ID, item.quantity); err != nil {
			p.itemFailed(outcome, item, "stock: "+err.Error())
			continue
		}
		_, err = p.changes.AppendChange(ctx, &entity.InventoryChange{
			ProductID:      item.product.ID,
			TransactionID:  &txID,
			QuantityChange: item.quantity,
			ChangeType:     constants.ChangeExpense,
			Source:         "invoice_email",
			Timestamp:      email.Date,
		})
		if err != nil {
			p.itemFailed(outcome, item, "inventory change: "+err.Error())
			continue
		}
		if _, err := p.resolver.RecordProductMapping(ctx, item.raw, item.product); err != nil {
			p.logger.Warn("pipeline.mapping.product_failed", "raw", item.raw, "error", err)
		}
	}
}

func (p *Processor) itemFailed(outcome *EmailOutcome, item resolvedItem, reason string) {
	p.logger.Error("pipeline.inventory.item_failed",
		"product_id", item.product.ID, "raw", item.raw, "reason", reason)
	outcome.Processed--
	outcome.Errored++
	for i := range outcome.Items {
		if outcome.Items[i].Raw == item.raw && outcome.Items[i].Status == "resolved" {
			outcome.Items[i].Status = "errored"
			outcome.Items[i].Reason = reason
			break
		}
	}
}

// parsePrice pulls a money amount out of display text like "$18.00". Zero
// when the text has no leading amount.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var v float64
	s = strings.TrimLeft(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0
	}
	return v
}
