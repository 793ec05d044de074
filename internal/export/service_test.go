package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/inventory"
)

type fakeLedger struct {
	txs     []*entity.Transaction
	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeLedger) ListByDateRange(_ context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	f.gotFrom, f.gotTo = from, to
	return f.txs, nil
}

type fakeAuditor struct {
	audits []*inventory.Audit
}

func (f *fakeAuditor) AuditAll(_ context.Context) ([]*inventory.Audit, int, error) {
	return f.audits, 0, nil
}

func openSheet(t *testing.T, data []byte) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	return f, f.GetSheetList()[0]
}

func TestExportLedgerXLSX(t *testing.T) {
	pre := 45.00
	ledger := &fakeLedger{txs: []*entity.Transaction{
		{
			ID:           uuid.New(),
			Date:         time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
			Type:         constants.TxTypePurchase,
			Source:       constants.SourceGmail,
			Status:       constants.TxStatusCompleted,
			Amount:       209.20,
			PreTaxAmount: &pre,
			Products: []entity.TransactionProduct{
				{Name: "Beef Tendon", Quantity: 3},
			},
			PlatformMetadata: &entity.PlatformMetadata{Platform: "gmail", OrderID: "INV-88"},
		},
	}}

	svc := NewService(ledger, &fakeAuditor{}, slog.New(slog.DiscardHandler))
	from := time.Date(2025, 4, 1, 15, 30, 0, 0, time.UTC)
	data, err := svc.ExportLedgerXLSX(context.Background(), &from, nil)
	if err != nil {
		t.Fatalf("ExportLedgerXLSX: %v", err)
	}

	if ledger.gotFrom.Hour() != 0 {
		t.Errorf("from not normalized to start of day: %v", ledger.gotFrom)
	}
	if ledger.gotTo.IsZero() {
		t.Error("open to-date should default to today")
	}

	f, sheet := openSheet(t, data)
	defer func() { _ = f.Close() }()
	if sheet != "Transactions" {
		t.Errorf("sheet = %q, want Transactions", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "2025-04-02" || rows[1][1] != "purchase" {
		t.Errorf("row = %v", rows[1])
	}
	if rows[1][9] != "Beef Tendon x3" {
		t.Errorf("items column = %q", rows[1][9])
	}
	if rows[1][10] != "INV-88" {
		t.Errorf("order reference = %q", rows[1][10])
	}
}

func TestExportInventoryXLSX(t *testing.T) {
	auditor := &fakeAuditor{audits: []*inventory.Audit{
		{
			ProductID:       uuid.New(),
			ProductName:     "Duck Feet",
			CurrentStock:    17,
			CalculatedStock: 20,
			Difference:      3,
			TotalPurchases:  50,
			TotalSales:      30,
			Events:          12,
		},
	}}

	svc := NewService(&fakeLedger{}, auditor, slog.New(slog.DiscardHandler))
	data, err := svc.ExportInventoryXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportInventoryXLSX: %v", err)
	}

	f, sheet := openSheet(t, data)
	defer func() { _ = f.Close() }()
	if sheet != "Inventory Audit" {
		t.Errorf("sheet = %q", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	got := rows[1]
	if got[0] != "Duck Feet" || got[1] != "17" || got[2] != "20" || got[3] != "3" {
		t.Errorf("audit row = %v", got)
	}
}
