package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
)

// Store is the persistence the reconciler needs. Ledger rows are append-only;
// only the product's stock counter is ever rewritten, and only through
// UpdateStock.
type Store interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListChanges(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryChange, error)
	AppendChange(ctx context.Context, ch *entity.InventoryChange) (*entity.InventoryChange, error)
	UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error
}

// Audit is the drift report for one product. CalculatedStock is what the
// ledger says; CurrentStock is the authoritative counter; Difference is
// calculated minus current.
type Audit struct {
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	CurrentStock    int       `json:"current_stock"`
	CalculatedStock int       `json:"calculated_stock"`
	Difference      int       `json:"difference"`
	TotalPurchases  int       `json:"total_purchases"`
	TotalSales      int       `json:"total_sales"`
	Events          int       `json:"events"`
}

// Reconciler audits the authoritative stock counters against the
// inventory-change ledger. Reads never write; correcting drift is a separate
// explicit call.
type Reconciler struct {
	store  Store
	logger *slog.Logger
}

func NewReconciler(store Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{store: store, logger: logger}
}

// Tally folds a product's signed ledger events: positive changes accumulate
// into purchases, negative (absolute value) into sales.
func Tally(changes []*entity.InventoryChange) (purchases, sales int) {
	for _, ch := range changes {
		if ch.QuantityChange >= 0 {
			purchases += ch.QuantityChange
		} else {
			sales += -ch.QuantityChange
		}
	}
	return purchases, sales
}

// CalculateFromHistory recomputes a product's stock from its full event
// history and reports drift against the stored counter. Read-only.
func (r *Reconciler) CalculateFromHistory(ctx context.Context, productID uuid.UUID) (*Audit, error) {
	product, err := r.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: not found", productID)
	}
	changes, err := r.store.ListChanges(ctx, productID)
	if err != nil {
		return nil, err
	}

	purchases, sales := Tally(changes)
	audit := &Audit{
		ProductID:       product.ID,
		ProductName:     product.Name,
		CurrentStock:    product.Stock,
		CalculatedStock: purchases - sales,
		TotalPurchases:  purchases,
		TotalSales:      sales,
		Events:          len(changes),
	}
	audit.Difference = audit.CalculatedStock - audit.CurrentStock

	if audit.Difference != 0 {
		r.logger.Warn("inventory.audit.drift",
			"product_id", product.ID, "product", product.Name,
			"current", audit.CurrentStock, "calculated", audit.CalculatedStock,
			"difference", audit.Difference,
		)
	}
	return audit, nil
}

// AuditAll runs the drift calculation across the whole catalog, reporting
// per-product results; one broken product never fails the batch.
func (r *Reconciler) AuditAll(ctx context.Context) ([]*Audit, int, error) {
	products, err := r.store.ListProducts(ctx)
	if err != nil {
		return nil, 0, err
	}
	audits := make([]*Audit, 0, len(products))
	errored := 0
	for _, p := range products {
		a, err := r.CalculateFromHistory(ctx, p.ID)
		if err != nil {
			errored++
			r.logger.Error("inventory.audit.entry_failed", "product_id", p.ID, "error", err)
			continue
		}
		audits = append(audits, a)
	}
	return audits, errored, nil
}

// UpdateToCalculated overwrites the authoritative counter with the
// ledger-derived value, clamped to a non-negative floor. Never called
// automatically.
func (r *Reconciler) UpdateToCalculated(ctx context.Context, productID uuid.UUID) (*Audit, error) {
	audit, err := r.CalculateFromHistory(ctx, productID)
	if err != nil {
		return nil, err
	}
	stock := audit.CalculatedStock
	if stock < 0 {
		stock = 0
	}
	if err := r.store.UpdateStock(ctx, productID, stock); err != nil {
		return nil, err
	}
	r.logger.Info("inventory.update_to_calculated",
		"product_id", productID, "previous", audit.CurrentStock, "stock", stock)
	audit.CurrentStock = stock
	audit.Difference = audit.CalculatedStock - stock
	return audit, nil
}

// CreateManualAdjustment appends a signed adjustment event to the ledger so
// the correction itself stays auditable. The counter is not touched here.
func (r *Reconciler) CreateManualAdjustment(ctx context.Context, productID uuid.UUID, delta int, reason string) (*entity.InventoryChange, error) {
	if delta == 0 {
		return nil, fmt.Errorf("adjustment delta must be non-zero")
	}
	product, err := r.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: not found", productID)
	}
	ch := &entity.InventoryChange{
		ProductID:      productID,
		QuantityChange: delta,
		ChangeType:     constants.ChangeAdjustment,
		Source:         "manual",
		Reason:         reason,
		Timestamp:      time.Now().UTC(),
	}
	created, err := r.store.AppendChange(ctx, ch)
	if err != nil {
		return nil, err
	}
	r.logger.Info("inventory.adjustment.created",
		"product_id", productID, "delta", delta, "reason", reason)
	return created, nil
}
