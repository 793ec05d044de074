package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/inventory"
)

// Ledger lists transactions for the export window.
type Ledger interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error)
}

// Auditor produces the inventory drift report.
type Auditor interface {
	AuditAll(ctx context.Context) ([]*inventory.Audit, int, error)
}

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ledger  Ledger
	auditor Auditor
	logger  *slog.Logger
}

func NewService(ledger Ledger, auditor Auditor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: ledger, auditor: auditor, logger: logger}
}

// ExportLedgerXLSX returns an XLSX workbook (as bytes) for the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> the whole ledger.
func (s *Service) ExportLedgerXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate time.Time
	if from != nil {
		fromDate = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to != nil {
		toDate = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
	}
	if from != nil && to == nil {
		today := time.Now().UTC()
		toDate = time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
	}

	txs, err := s.ledger.ListByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if err := renameActiveSheet(f, sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Date",
		"Type",
		"Source",
		"Status",
		"Amount",
		"Pre-Tax Amount",
		"Tax Amount",
		"Customer",
		"Payment Method",
		"Items",
		"Order Reference",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, tx := range txs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, tx.Date.Format("2006-01-02"))
		write(2, string(tx.Type))
		write(3, string(tx.Source))
		write(4, string(tx.Status))
		write(5, tx.Amount)
		if tx.PreTaxAmount != nil {
			write(6, *tx.PreTaxAmount)
		}
		if tx.TaxAmount != nil {
			write(7, *tx.TaxAmount)
		}
		write(8, tx.Customer)
		write(9, tx.PaymentMethod)
		write(10, itemSummary(tx))
		write(11, orderRef(tx))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.ledger.done",
		"transactions", len(txs),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportInventoryXLSX returns the drift report as an XLSX workbook: one row
// per product with the authoritative counter, the ledger-derived value and
// the difference.
func (s *Service) ExportInventoryXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	audits, errored, err := s.auditor.AuditAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit inventory: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Inventory Audit"
	if err := renameActiveSheet(f, sheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Product",
		"Current Stock",
		"Calculated Stock",
		"Difference",
		"Total Purchases",
		"Total Sales",
		"Ledger Events",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range audits {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, a.ProductName)
		write(2, a.CurrentStock)
		write(3, a.CalculatedStock)
		write(4, a.Difference)
		write(5, a.TotalPurchases)
		write(6, a.TotalSales)
		write(7, a.Events)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.inventory.done",
		"products", len(audits),
		"errored", errored,
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func renameActiveSheet(f *excelize.File, name string) error {
	current := f.GetSheetName(f.GetActiveSheetIndex())
	if current == name {
		return nil
	}
	return f.SetSheetName(current, name)
}

func itemSummary(tx *entity.Transaction) string {
	items := tx.Products
	if len(items) == 0 {
		items = tx.LineItems
	}
	out := ""
	for i, p := range items {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s x%d", p.Name, p.Quantity)
	}
	return out
}

func orderRef(tx *entity.Transaction) string {
	if tx.PlatformMetadata != nil && tx.PlatformMetadata.OrderID != "" {
		return tx.PlatformMetadata.OrderID
	}
	if tx.ExternalID != "" {
		return tx.ExternalID
	}
	return tx.ShopifyOrderID
}
