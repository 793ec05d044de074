package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/llm"
)

type fakeEmails struct {
	byID      map[uuid.UUID]*entity.InvoiceEmail
	processed map[uuid.UUID]uuid.UUID // email -> transaction
}

func (f *fakeEmails) GetByID(_ context.Context, id uuid.UUID) (*entity.InvoiceEmail, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, errors.New("email not found")
	}
	return e, nil
}

func (f *fakeEmails) ListPending(_ context.Context, _ int) ([]*entity.InvoiceEmail, error) {
	var out []*entity.InvoiceEmail
	for _, e := range f.byID {
		if e.Status == constants.EmailPending {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmails) MarkProcessed(_ context.Context, id uuid.UUID, _, txID uuid.UUID) error {
	if f.processed == nil {
		f.processed = make(map[uuid.UUID]uuid.UUID)
	}
	f.processed[id] = txID
	f.byID[id].Status = constants.EmailProcessed
	return nil
}

type fakeSuppliers struct {
	supplier *entity.Supplier
}

func (f *fakeSuppliers) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if f.supplier != nil && f.supplier.ID == id {
		return f.supplier, nil
	}
	return nil, errors.New("supplier not found")
}

func (f *fakeSuppliers) MatchEmail(_ context.Context, from, _ string) (*entity.Supplier, error) {
	if f.supplier == nil {
		return nil, nil
	}
	return f.supplier, nil
}

type fakeLedger struct {
	created []*entity.Transaction
}

func (f *fakeLedger) Create(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	cp := *tx
	cp.ID = uuid.New()
	f.created = append(f.created, &cp)
	return &cp, nil
}

type fakeCatalog struct {
	costs  map[uuid.UUID][]entity.CostHistoryEntry
	stocks map[uuid.UUID]int
}

func (f *fakeCatalog) AppendCost(_ context.Context, id uuid.UUID, c entity.CostHistoryEntry) error {
	if f.costs == nil {
		f.costs = make(map[uuid.UUID][]entity.CostHistoryEntry)
	}
	f.costs[id] = append(f.costs[id], c)
	return nil
}

func (f *fakeCatalog) AdjustStock(_ context.Context, id uuid.UUID, delta int) (int, error) {
	if f.stocks == nil {
		f.stocks = make(map[uuid.UUID]int)
	}
	f.stocks[id] += delta
	return f.stocks[id], nil
}

type fakeChanges struct {
	appended []*entity.InventoryChange
}

func (f *fakeChanges) AppendChange(_ context.Context, ch *entity.InventoryChange) (*entity.InventoryChange, error) {
	cp := *ch
	cp.ID = uuid.New()
	f.appended = append(f.appended, &cp)
	return &cp, nil
}

type fakeResolver struct {
	products        map[string]*entity.Product // by raw name
	productRecords  []string
	supplierRecords []string
}

func (f *fakeResolver) ResolveProduct(_ context.Context, _ uuid.UUID, raw string) (*entity.Product, error) {
	return f.products[raw], nil
}

func (f *fakeResolver) RecordProductMapping(_ context.Context, raw string, p *entity.Product) (*entity.SmartMapping, error) {
	f.productRecords = append(f.productRecords, raw)
	return &entity.SmartMapping{}, nil
}

func (f *fakeResolver) RecordEmailSupplierMapping(_ context.Context, from string, _ *entity.Supplier) (*entity.SmartMapping, error) {
	f.supplierRecords = append(f.supplierRecords, from)
	return &entity.SmartMapping{}, nil
}

type stubParser struct {
	fields  llm.InvoiceFields
	err     error
	calls   int
	lastReq llm.ParseRequest
}

func (s *stubParser) ParseInvoice(_ context.Context, req llm.ParseRequest) (llm.InvoiceFields, []byte, error) {
	s.calls++
	s.lastReq = req
	return s.fields, nil, s.err
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func testSupplier() *entity.Supplier {
	return &entity.Supplier{
		ID:   uuid.New(),
		Name: "Canine Crunch Wholesale",
		ParsingConfig: entity.EmailParsingConfig{
			Fields: map[string]entity.FieldRule{
				"total": {Pattern: `Order Total:\s*\$?([0-9,.]+)`, Flags: "i", GroupIndex: 1, Transform: "parseFloat"},
			},
			Products: &entity.ProductsRule{
				ContainerSelector: "td.line-item",
			},
		},
	}
}

const invoiceBody = `
<html><body>
<p>Thanks for your order!</p>
<table>
<tr><td class="line-item">Beef Tendon x 3</td></tr>
<tr><td class="line-item">Duck Feet</td></tr>
</table>
<p>Order Total: $209.20</p>
</body></html>`

func newTestEmail(supplier *entity.Supplier) *entity.InvoiceEmail {
	return &entity.InvoiceEmail{
		ID:      uuid.New(),
		EmailID: "msg-1001",
		Date:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Subject: "Your order has shipped",
		From:    "orders@caninecrunch.example",
		Body:    invoiceBody,
		Status:  constants.EmailPending,
	}
}

func TestProcessInvoiceEmailPatternPath(t *testing.T) {
	supplier := testSupplier()
	email := newTestEmail(supplier)
	beef := &entity.Product{ID: uuid.New(), Name: "Beef Tendon", SKU: "CAN-001"}

	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}
	ledger := &fakeLedger{}
	catalog := &fakeCatalog{}
	changes := &fakeChanges{}
	resolver := &fakeResolver{products: map[string]*entity.Product{"Beef Tendon": beef}}
	parser := &stubParser{}

	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, ledger, catalog, changes, resolver, parser, discard())
	out, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{})
	if err != nil {
		t.Fatalf("ProcessInvoiceEmail: %v", err)
	}

	if out.UsedAI {
		t.Error("pattern extraction succeeded; AI should not have been used")
	}
	if parser.calls != 0 {
		t.Errorf("parser called %d times, want 0", parser.calls)
	}
	if out.Total != 209.20 {
		t.Errorf("total = %v, want 209.20", out.Total)
	}
	if out.Processed != 1 || out.Skipped != 1 || out.Errored != 0 {
		t.Errorf("counters = %d/%d/%d, want 1/1/0", out.Processed, out.Skipped, out.Errored)
	}

	if len(ledger.created) != 1 {
		t.Fatalf("transactions created = %d, want 1", len(ledger.created))
	}
	tx := ledger.created[0]
	if tx.Type != constants.TxTypePurchase || tx.Source != constants.SourceGmail {
		t.Errorf("transaction type/source = %s/%s", tx.Type, tx.Source)
	}
	if tx.Amount != 209.20 {
		t.Errorf("transaction amount = %v", tx.Amount)
	}
	if len(tx.Products) != 1 || tx.Products[0].ProductID != beef.ID || tx.Products[0].Quantity != 3 {
		t.Errorf("transaction products = %+v", tx.Products)
	}

	if catalog.stocks[beef.ID] != 3 {
		t.Errorf("stock delta = %d, want 3", catalog.stocks[beef.ID])
	}
	if len(changes.appended) != 1 || changes.appended[0].QuantityChange != 3 ||
		changes.appended[0].ChangeType != constants.ChangeExpense {
		t.Errorf("inventory changes = %+v", changes.appended)
	}
	if len(catalog.costs[beef.ID]) != 1 {
		t.Fatalf("cost entries = %d, want 1", len(catalog.costs[beef.ID]))
	}
	if _, ok := emails.processed[email.ID]; !ok {
		t.Error("email not marked processed")
	}
	if len(resolver.productRecords) != 1 || resolver.productRecords[0] != "Beef Tendon" {
		t.Errorf("product mappings recorded = %v", resolver.productRecords)
	}
}

func TestProcessInvoiceEmailAIFallback(t *testing.T) {
	supplier := testSupplier()
	// Break the total pattern so patterns come up empty.
	supplier.ParsingConfig.Fields = map[string]entity.FieldRule{
		"total": {Pattern: `Grand Total:\s*\$([0-9.]+)`, GroupIndex: 1, Transform: "parseFloat"},
	}
	supplier.TrainingSamples = []entity.TrainingSample{{Prompt: "body", Result: "{}"}}
	email := newTestEmail(supplier)
	beef := &entity.Product{ID: uuid.New(), Name: "Beef Tendon", SKU: "CAN-001"}

	total := 154.50
	parser := &stubParser{fields: llm.InvoiceFields{
		OrderTotal: &total,
		Products:   []llm.InvoiceProduct{{Name: "Beef Tendon", Quantity: 2, LineTotal: 36.00}},
	}}
	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}
	ledger := &fakeLedger{}
	resolver := &fakeResolver{products: map[string]*entity.Product{"Beef Tendon": beef}}

	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, ledger, &fakeCatalog{}, &fakeChanges{}, resolver, parser, discard())
	out, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{})
	if err != nil {
		t.Fatalf("ProcessInvoiceEmail: %v", err)
	}

	if !out.UsedAI {
		t.Error("expected AI fallback")
	}
	if parser.calls != 1 {
		t.Errorf("parser calls = %d, want 1", parser.calls)
	}
	if len(parser.lastReq.Samples) != 1 {
		t.Errorf("samples forwarded = %d, want 1", len(parser.lastReq.Samples))
	}
	if out.Total != 154.50 {
		t.Errorf("total = %v, want 154.50", out.Total)
	}
	if len(ledger.created) != 1 || ledger.created[0].Products[0].Quantity != 2 {
		t.Errorf("transaction = %+v", ledger.created)
	}
}

func TestProcessInvoiceEmailAIGetsBoundedBody(t *testing.T) {
	supplier := testSupplier()
	supplier.ParsingConfig.Bounds = &entity.ContentBounds{
		StartPattern: `--- invoice ---`,
		EndPattern:   `--- end ---`,
	}
	// No pattern produces a total, so the AI parser engages.
	supplier.ParsingConfig.Fields = map[string]entity.FieldRule{
		"total": {Pattern: `Grand Total:\s*\$([0-9.]+)`, GroupIndex: 1, Transform: "parseFloat"},
	}
	email := newTestEmail(supplier)
	email.Body = "WEEKLY DEALS you will love!\n--- invoice ---\nItems: stuff\n--- end ---\nUnsubscribe here"

	total := 42.00
	parser := &stubParser{fields: llm.InvoiceFields{OrderTotal: &total}}
	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}

	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, &fakeLedger{}, &fakeCatalog{}, &fakeChanges{}, &fakeResolver{}, parser, discard())
	if _, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{}); err != nil {
		t.Fatalf("ProcessInvoiceEmail: %v", err)
	}

	if parser.calls != 1 {
		t.Fatalf("parser calls = %d, want 1", parser.calls)
	}
	body := parser.lastReq.Body
	if strings.Contains(body, "WEEKLY DEALS") || strings.Contains(body, "Unsubscribe") {
		t.Errorf("parser body not bounds-stripped: %q", body)
	}
	if !strings.Contains(body, "Items: stuff") {
		t.Errorf("parser body lost the invoice section: %q", body)
	}
}

func TestProcessInvoiceEmailIdempotent(t *testing.T) {
	supplier := testSupplier()
	email := newTestEmail(supplier)
	txID := uuid.New()
	email.Status = constants.EmailProcessed
	email.TransactionID = &txID

	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}
	ledger := &fakeLedger{}

	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, ledger, &fakeCatalog{}, &fakeChanges{}, &fakeResolver{}, &stubParser{}, discard())
	out, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{})
	if err != nil {
		t.Fatalf("ProcessInvoiceEmail: %v", err)
	}
	if len(ledger.created) != 0 {
		t.Error("processed email must not create another transaction")
	}
	if out.TransactionID == nil || *out.TransactionID != txID {
		t.Errorf("outcome transaction id = %v, want %v", out.TransactionID, txID)
	}
}

func TestProcessInvoiceEmailNoSupplier(t *testing.T) {
	email := newTestEmail(nil)
	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}

	p := NewProcessor(emails, &fakeSuppliers{}, &fakeLedger{}, &fakeCatalog{}, &fakeChanges{}, &fakeResolver{}, &stubParser{}, discard())
	_, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{})
	if !errors.Is(err, ErrNoSupplier) {
		t.Fatalf("err = %v, want ErrNoSupplier", err)
	}
	if email.Status != constants.EmailPending {
		t.Errorf("email status = %s, want pending", email.Status)
	}
}

func TestProcessInvoiceEmailNoTotal(t *testing.T) {
	supplier := testSupplier()
	supplier.ParsingConfig.Fields = map[string]entity.FieldRule{
		"total": {Pattern: `Grand Total:\s*\$([0-9.]+)`, GroupIndex: 1, Transform: "parseFloat"},
	}
	email := newTestEmail(supplier)
	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{email.ID: email}}

	// Parser errors out (nil fields), so no total from either path.
	parser := &stubParser{err: errors.New("model unavailable")}
	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, &fakeLedger{}, &fakeCatalog{}, &fakeChanges{}, &fakeResolver{}, parser, discard())
	_, err := p.ProcessInvoiceEmail(context.Background(), email.ID, Options{})
	if err == nil {
		t.Fatal("expected error when no total could be extracted")
	}
	if email.Status != constants.EmailPending {
		t.Errorf("email status = %s, want pending", email.Status)
	}
}

func TestProcessPendingSurvivesFailures(t *testing.T) {
	supplier := testSupplier()
	good := newTestEmail(supplier)
	bad := newTestEmail(supplier)
	bad.Body = "<p>no totals here</p>"

	emails := &fakeEmails{byID: map[uuid.UUID]*entity.InvoiceEmail{good.ID: good, bad.ID: bad}}
	p := NewProcessor(emails, &fakeSuppliers{supplier: supplier}, &fakeLedger{}, &fakeCatalog{}, &fakeChanges{}, &fakeResolver{}, nil, discard())

	out, err := p.ProcessPending(context.Background(), 0, Options{})
	if err != nil {
		t.Fatalf("ProcessPending: %v", err)
	}
	if out.Emails != 2 || out.Processed != 1 || out.Failed != 1 {
		t.Errorf("batch = %+v, want 2 emails, 1 processed, 1 failed", out)
	}
}
