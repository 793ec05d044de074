package dedup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
)

type fakeStore struct {
	rows map[uuid.UUID]*entity.Transaction
}

func newFakeStore(rows ...*entity.Transaction) *fakeStore {
	f := &fakeStore{rows: map[uuid.UUID]*entity.Transaction{}}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeStore) FindByOrderRef(_ context.Context, orderID, platform string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.rows {
		if tx.PlatformMetadata != nil && tx.PlatformMetadata.Platform == platform && tx.PlatformMetadata.OrderID == orderID {
			out = append(out, tx)
			continue
		}
		if tx.ExternalID == platform+"_"+orderID || tx.ShopifyOrderID == orderID {
			out = append(out, tx)
			continue
		}
		if tx.PaymentProcessing != nil && tx.PaymentProcessing.TransactionID == orderID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeStore) FindManualByDateAmount(_ context.Context, ref *entity.Transaction) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.rows {
		if tx.Source == constants.SourceManual && tx.Amount == ref.Amount &&
			tx.Date.Truncate(24*time.Hour).Equal(ref.Date.Truncate(24*time.Hour)) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, tx *entity.Transaction) error {
	f.rows[tx.ID] = tx
	return nil
}

func (f *fakeStore) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int, error) {
	n := 0
	for _, id := range ids {
		if _, ok := f.rows[id]; ok {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func fptr(v float64) *float64 { return &v }

func txAt(created time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		Date:      created,
		Type:      constants.TxTypeSale,
		Source:    constants.SourceShopify,
		Status:    constants.TxStatusCompleted,
		Amount:    50,
		CreatedAt: created,
	}
}

func TestMergeDuplicatesFillsOnlyGaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	oldest := txAt(base)
	oldest.ShopifyOrderID = "1001"
	oldest.Tip = fptr(5)
	oldest.Customer = "Jess"
	oldest.Products = []entity.TransactionProduct{{Name: "Beef Tendon", Quantity: 2}}

	middle := txAt(base.Add(time.Hour))
	middle.ExternalID = "shopify_1001"
	middle.Tip = fptr(99) // newer duplicate; must lose to survivor's own value
	middle.PreTaxAmount = fptr(45)

	newest := txAt(base.Add(2 * time.Hour))
	newest.PlatformMetadata = &entity.PlatformMetadata{Platform: "shopify", OrderID: "1001"}
	newest.Tip = fptr(3)

	store := newFakeStore(oldest, middle, newest)
	eng := NewEngine(store, slog.New(slog.DiscardHandler))

	survivor, sum, err := eng.MergeDuplicates(context.Background(), "1001", "shopify")
	if err != nil {
		t.Fatal(err)
	}
	if survivor.ID != newest.ID {
		t.Fatalf("newest must survive, got %s", survivor.ID)
	}
	if sum.Matched != 3 || sum.Deleted != 2 {
		t.Fatalf("summary: %+v", sum)
	}
	if *survivor.Tip != 3 {
		t.Fatalf("existing survivor value overwritten: tip=%v", *survivor.Tip)
	}
	if survivor.PreTaxAmount == nil || *survivor.PreTaxAmount != 45 {
		t.Fatalf("missing pre-tax not filled from newest-of-the-rest: %+v", survivor.PreTaxAmount)
	}
	if survivor.Customer != "Jess" || len(survivor.Products) != 1 {
		t.Fatalf("fields from oldest duplicate lost: %+v", survivor)
	}
	if len(store.rows) != 1 {
		t.Fatalf("duplicates not deleted: %d rows", len(store.rows))
	}
}

func TestMergeDuplicatesIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := txAt(base)
	a.PlatformMetadata = &entity.PlatformMetadata{Platform: "square", OrderID: "SQ9"}
	b := txAt(base.Add(time.Minute))
	b.PaymentProcessing = &entity.PaymentProcessing{TransactionID: "SQ9"}

	store := newFakeStore(a, b)
	eng := NewEngine(store, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	first, sum1, err := eng.MergeDuplicates(ctx, "SQ9", "square")
	if err != nil || sum1.Deleted != 1 {
		t.Fatalf("first run: %+v %v", sum1, err)
	}

	second, sum2, err := eng.MergeDuplicates(ctx, "SQ9", "square")
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatalf("survivor changed across runs: %s vs %s", second.ID, first.ID)
	}
	if sum2.Deleted != 0 || sum2.Matched != 1 {
		t.Fatalf("second run must be a no-op: %+v", sum2)
	}
}

func TestMergeDuplicatesUnknownOrder(t *testing.T) {
	eng := NewEngine(newFakeStore(), slog.New(slog.DiscardHandler))
	survivor, sum, err := eng.MergeDuplicates(context.Background(), "nope", "shopify")
	if err != nil || survivor != nil || sum.Matched != 0 {
		t.Fatalf("unknown order must be nil/no-op: %v %+v %v", survivor, sum, err)
	}
}

func TestMergeManualDuplicates(t *testing.T) {
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	a := txAt(day)
	a.Source = constants.SourceManual
	a.Amount = 31.50
	a.PaymentMethod = "card"
	b := txAt(day.Add(3 * time.Hour))
	b.Source = constants.SourceManual
	b.Amount = 31.50

	store := newFakeStore(a, b)
	eng := NewEngine(store, slog.New(slog.DiscardHandler))

	survivor, sum, err := eng.MergeManualDuplicates(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	if survivor.ID != b.ID || sum.Deleted != 1 {
		t.Fatalf("manual merge: %+v %+v", survivor, sum)
	}
	if survivor.PaymentMethod != "card" {
		t.Fatalf("payment method not filled: %+v", survivor)
	}
}

type fakeLister struct{ refs []string }

func (f *fakeLister) ListOrderRefs(context.Context, string) ([]string, error) {
	return f.refs, nil
}

func TestSweep(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := txAt(base)
	a.PlatformMetadata = &entity.PlatformMetadata{Platform: "shopify", OrderID: "1"}
	b := txAt(base.Add(time.Minute))
	b.ExternalID = "shopify_1"
	c := txAt(base)
	c.PlatformMetadata = &entity.PlatformMetadata{Platform: "shopify", OrderID: "2"}

	store := newFakeStore(a, b, c)
	eng := NewEngine(store, slog.New(slog.DiscardHandler))

	sum, err := eng.Sweep(context.Background(), &fakeLister{refs: []string{"1", "2"}}, "shopify")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Processed != 2 || sum.Collapsed != 1 || sum.Deleted != 1 || sum.Errored != 0 {
		t.Fatalf("sweep summary: %+v", sum)
	}
}
