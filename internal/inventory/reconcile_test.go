package inventory

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
)

type fakeStore struct {
	products map[uuid.UUID]*entity.Product
	changes  map[uuid.UUID][]*entity.InventoryChange
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[uuid.UUID]*entity.Product{},
		changes:  map[uuid.UUID][]*entity.InventoryChange{},
	}
}

func (f *fakeStore) GetProduct(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeStore) ListProducts(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) ListChanges(_ context.Context, productID uuid.UUID) ([]*entity.InventoryChange, error) {
	return f.changes[productID], nil
}

func (f *fakeStore) AppendChange(_ context.Context, ch *entity.InventoryChange) (*entity.InventoryChange, error) {
	ch.ID = uuid.New()
	f.changes[ch.ProductID] = append(f.changes[ch.ProductID], ch)
	return ch, nil
}

func (f *fakeStore) UpdateStock(_ context.Context, productID uuid.UUID, stock int) error {
	f.products[productID].Stock = stock
	return nil
}

func seedProduct(f *fakeStore, stock int, deltas ...int) *entity.Product {
	p := &entity.Product{ID: uuid.New(), Name: "Beef Tendon", Stock: stock}
	f.products[p.ID] = p
	for _, d := range deltas {
		ct := constants.ChangeExpense
		if d < 0 {
			ct = constants.ChangeSale
		}
		f.changes[p.ID] = append(f.changes[p.ID], &entity.InventoryChange{
			ID: uuid.New(), ProductID: p.ID, QuantityChange: d, ChangeType: ct,
		})
	}
	return p
}

func TestCalculateFromHistory(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, 17, 30, 20, -10, -20)
	r := NewReconciler(store, slog.New(slog.DiscardHandler))

	audit, err := r.CalculateFromHistory(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if audit.TotalPurchases != 50 || audit.TotalSales != 30 {
		t.Fatalf("tally: %+v", audit)
	}
	if audit.CalculatedStock != 20 {
		t.Fatalf("calculated stock = %d, want 20", audit.CalculatedStock)
	}
	if audit.Difference != 3 {
		t.Fatalf("difference = %d, want 3", audit.Difference)
	}
	if store.products[p.ID].Stock != 17 {
		t.Fatal("audit must be read-only")
	}
}

func TestUpdateToCalculatedClampsAtZero(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, 5, 2, -9) // ledger says -7
	r := NewReconciler(store, slog.New(slog.DiscardHandler))

	audit, err := r.UpdateToCalculated(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if store.products[p.ID].Stock != 0 {
		t.Fatalf("stock = %d, want clamp to 0", store.products[p.ID].Stock)
	}
	if audit.CalculatedStock != -7 {
		t.Fatalf("audit must keep the raw calculation: %+v", audit)
	}
}

func TestCreateManualAdjustmentAppendsOnly(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, 10, 10)
	r := NewReconciler(store, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	ch, err := r.CreateManualAdjustment(ctx, p.ID, -2, "breakage")
	if err != nil {
		t.Fatal(err)
	}
	if ch.ChangeType != constants.ChangeAdjustment || ch.QuantityChange != -2 {
		t.Fatalf("event: %+v", ch)
	}
	if store.products[p.ID].Stock != 10 {
		t.Fatal("adjustment must not touch the counter directly")
	}
	if len(store.changes[p.ID]) != 2 {
		t.Fatalf("ledger rows: %d", len(store.changes[p.ID]))
	}

	if _, err := r.CreateManualAdjustment(ctx, p.ID, 0, "noop"); err == nil {
		t.Fatal("zero delta must be rejected")
	}
}

func TestAuditAllSurvivesMissingHistory(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, 0)
	seedProduct(store, 4, 4)
	r := NewReconciler(store, slog.New(slog.DiscardHandler))

	audits, errored, err := r.AuditAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(audits) != 2 || errored != 0 {
		t.Fatalf("audits=%d errored=%d", len(audits), errored)
	}
}
