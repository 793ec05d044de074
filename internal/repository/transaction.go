package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/predicate"
	"github.com/daydreamers/ops-backend/gen/ent/transaction"
	"github.com/daydreamers/ops-backend/internal/dedup"
	"github.com/daydreamers/ops-backend/internal/entity"
)

// TransactionRepository is the ledger store. It satisfies dedup.Store and
// dedup.RefLister so the merge engine can work across every historical ID
// encoding a row may have been written under.
type TransactionRepository interface {
	dedup.Store
	dedup.RefLister
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error)
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{client: client, logger: logger}
}

func (r *transactionRepository) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	c := r.client.Transaction.Create().
		SetDate(t.Date).
		SetType(string(t.Type)).
		SetAmount(t.Amount).
		SetSource(string(t.Source)).
		SetStatus(string(t.Status)).
		SetProducts(t.Products).
		SetLineItems(t.LineItems).
		SetNillablePreTaxAmount(t.PreTaxAmount).
		SetNillableTaxAmount(t.TaxAmount).
		SetNillableTip(t.Tip).
		SetNillableIsTaxable(t.IsTaxable).
		SetNillableDraft(t.Draft).
		SetCustomer(t.Customer).
		SetEmail(t.Email).
		SetPaymentMethod(t.PaymentMethod).
		SetNillableSupplierID(t.SupplierID).
		SetExternalID(t.ExternalID).
		SetShopifyOrderID(t.ShopifyOrderID)
	if t.PlatformMetadata != nil {
		c.SetPlatformMetadata(t.PlatformMetadata)
	}
	if t.PaymentProcessing != nil {
		c.SetPaymentProcessing(t.PaymentProcessing)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create transaction", "source", t.Source, "error", err)
		return nil, err
	}
	return fromEntTransaction(row), nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	row, err := r.client.Transaction.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromEntTransaction(row), nil
}

func (r *transactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	q := r.client.Transaction.Query()
	if !from.IsZero() {
		q = q.Where(transaction.DateGTE(from))
	}
	if !to.IsZero() {
		q = q.Where(transaction.DateLTE(to))
	}
	rows, err := q.Order(transaction.ByDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list transactions", "error", err)
		return nil, err
	}
	return fromEntTransactions(rows), nil
}

// FindByOrderRef matches a platform order reference against every encoding
// rows have carried over time: the prefixed external_id, the legacy
// shopify_order_id column, the platform_metadata JSON document, and (for
// Square) the processor-side transaction id.
func (r *transactionRepository) FindByOrderRef(ctx context.Context, orderID, platform string) ([]*entity.Transaction, error) {
	preds := []predicate.Transaction{
		transaction.ExternalIDEQ(platform + "_" + orderID),
		jsonOrderRef(orderID, platform),
	}
	switch platform {
	case "shopify":
		preds = append(preds, transaction.ShopifyOrderIDEQ(orderID))
	case "square":
		preds = append(preds, predicate.Transaction(func(s *entsql.Selector) {
			s.Where(sqljson.ValueEQ(transaction.FieldPaymentProcessing, orderID, sqljson.Path("transactionId")))
		}))
	}
	rows, err := r.client.Transaction.Query().
		Where(transaction.Or(preds...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntTransactions(rows), nil
}

func jsonOrderRef(orderID, platform string) predicate.Transaction {
	return predicate.Transaction(func(s *entsql.Selector) {
		s.Where(entsql.And(
			sqljson.ValueEQ(transaction.FieldPlatformMetadata, platform, sqljson.Path("platform")),
			sqljson.ValueEQ(transaction.FieldPlatformMetadata, orderID, sqljson.Path("orderId")),
		))
	})
}

// FindManualByDateAmount finds manually entered rows on the same calendar day
// with the same amount. Cent-level equality only; same-day same-amount pairs
// are treated as one sale.
func (r *transactionRepository) FindManualByDateAmount(ctx context.Context, t *entity.Transaction) ([]*entity.Transaction, error) {
	dayStart := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, t.Date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	rows, err := r.client.Transaction.Query().
		Where(
			transaction.SourceEQ("manual"),
			transaction.AmountEQ(t.Amount),
			transaction.DateGTE(dayStart),
			transaction.DateLT(dayEnd),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return fromEntTransactions(rows), nil
}

func (r *transactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	u := r.client.Transaction.UpdateOneID(t.ID).
		SetDate(t.Date).
		SetType(string(t.Type)).
		SetAmount(t.Amount).
		SetSource(string(t.Source)).
		SetStatus(string(t.Status)).
		SetProducts(t.Products).
		SetLineItems(t.LineItems).
		SetNillablePreTaxAmount(t.PreTaxAmount).
		SetNillableTaxAmount(t.TaxAmount).
		SetNillableTip(t.Tip).
		SetNillableIsTaxable(t.IsTaxable).
		SetNillableDraft(t.Draft).
		SetCustomer(t.Customer).
		SetEmail(t.Email).
		SetPaymentMethod(t.PaymentMethod).
		SetNillableSupplierID(t.SupplierID).
		SetExternalID(t.ExternalID).
		SetShopifyOrderID(t.ShopifyOrderID)
	if t.PlatformMetadata != nil {
		u.SetPlatformMetadata(t.PlatformMetadata)
	}
	if t.PaymentProcessing != nil {
		u.SetPaymentProcessing(t.PaymentProcessing)
	}
	if err := u.Exec(ctx); err != nil {
		r.logger.Error("failed to update transaction", "transaction_id", t.ID, "error", err)
		return err
	}
	return nil
}

func (r *transactionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.client.Transaction.Delete().
		Where(transaction.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete transactions", "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}

// ListOrderRefs collects the distinct order references attributed to a
// platform, reading every encoding. Feeds the dedupe sweep.
func (r *transactionRepository) ListOrderRefs(ctx context.Context, platform string) ([]string, error) {
	preds := []predicate.Transaction{
		transaction.ExternalIDHasPrefix(platform + "_"),
		predicate.Transaction(func(s *entsql.Selector) {
			s.Where(sqljson.ValueEQ(transaction.FieldPlatformMetadata, platform, sqljson.Path("platform")))
		}),
	}
	if platform == "shopify" {
		preds = append(preds, transaction.ShopifyOrderIDNEQ(""))
	}
	rows, err := r.client.Transaction.Query().
		Where(transaction.Or(preds...)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	refs := make([]string, 0, len(rows))
	add := func(ref string) {
		if ref == "" {
			return
		}
		if _, ok := seen[ref]; ok {
			return
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	prefix := platform + "_"
	for _, row := range rows {
		if len(row.ExternalID) > len(prefix) && row.ExternalID[:len(prefix)] == prefix {
			add(row.ExternalID[len(prefix):])
		}
		if platform == "shopify" {
			add(row.ShopifyOrderID)
		}
		if row.PlatformMetadata != nil && row.PlatformMetadata.Platform == platform {
			add(row.PlatformMetadata.OrderID)
		}
	}
	return refs, nil
}
