package dedup

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/entity"
)

// Store is the transaction persistence the merge engine needs. FindByOrderRef
// must match every historical ID encoding: platform_metadata.orderId, the
// legacy prefixed external id (e.g. "shopify_<id>"), the oldest
// shopify_order_id column, and payment_processing.transactionId.
type Store interface {
	FindByOrderRef(ctx context.Context, orderID, platform string) ([]*entity.Transaction, error)
	FindManualByDateAmount(ctx context.Context, tx *entity.Transaction) ([]*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

// Summary reports what one merge pass did.
type Summary struct {
	Matched int
	Merged  int
	Deleted int
}

// Engine collapses duplicate transactions created by at-least-once webhook
// delivery racing the polling sync. It holds no lock: concurrent invocation
// degrades to redundant no-op deletes, which the store treats as success.
type Engine struct {
	store  Store
	logger *slog.Logger
}

func NewEngine(store Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, logger: logger}
}

// MergeDuplicates finds every transaction referencing the given external
// order, keeps the newest, fills its missing fields from the older
// duplicates, persists it and deletes the rest. Idempotent: a second run on
// the same order finds a single match and is a no-op. Returns the surviving
// transaction (nil when the order is unknown) and a summary.
func (e *Engine) MergeDuplicates(ctx context.Context, orderID, platform string) (*entity.Transaction, Summary, error) {
	matches, err := e.store.FindByOrderRef(ctx, orderID, platform)
	if err != nil {
		return nil, Summary{}, err
	}
	sum := Summary{Matched: len(matches)}

	if len(matches) == 0 {
		return nil, sum, nil
	}
	if len(matches) == 1 {
		return matches[0], sum, nil
	}

	survivor, rest := SelectSurvivor(matches)
	filled := MergeInto(survivor, rest)

	if err := e.store.Update(ctx, survivor); err != nil {
		return nil, sum, err
	}
	ids := make([]uuid.UUID, 0, len(rest))
	for _, tx := range rest {
		ids = append(ids, tx.ID)
	}
	deleted, err := e.store.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, sum, err
	}
	sum.Merged = filled
	sum.Deleted = deleted

	e.logger.Info("dedupe.merge.ok",
		"order_id", orderID, "platform", platform,
		"matched", sum.Matched, "fields_filled", sum.Merged, "deleted", sum.Deleted,
		"survivor", survivor.ID,
	)
	return survivor, sum, nil
}

// SelectSurvivor sorts by creation time descending and returns the newest
// plus the remainder in that same newest-first order.
func SelectSurvivor(matches []*entity.Transaction) (*entity.Transaction, []*entity.Transaction) {
	sorted := make([]*entity.Transaction, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted[0], sorted[1:]
}

// MergeInto copies into the survivor any field it is missing and a duplicate
// has. Existing survivor values are never overwritten; duplicates are scanned
// newest-first so the most recent non-empty value wins among them. Returns
// the number of fields filled.
func MergeInto(survivor *entity.Transaction, duplicates []*entity.Transaction) int {
	filled := 0
	for _, dup := range duplicates {
		if survivor.PlatformMetadata == nil && dup.PlatformMetadata != nil {
			survivor.PlatformMetadata = dup.PlatformMetadata
			filled++
		}
		if len(survivor.Products) == 0 && len(dup.Products) > 0 {
			survivor.Products = dup.Products
			filled++
		}
		if len(survivor.LineItems) == 0 && len(dup.LineItems) > 0 {
			survivor.LineItems = dup.LineItems
			filled++
		}
		if survivor.PreTaxAmount == nil && dup.PreTaxAmount != nil {
			survivor.PreTaxAmount = dup.PreTaxAmount
			filled++
		}
		if survivor.TaxAmount == nil && dup.TaxAmount != nil {
			survivor.TaxAmount = dup.TaxAmount
			filled++
		}
		if survivor.IsTaxable == nil && dup.IsTaxable != nil {
			survivor.IsTaxable = dup.IsTaxable
			filled++
		}
		if survivor.Draft == nil && dup.Draft != nil {
			survivor.Draft = dup.Draft
			filled++
		}
		if survivor.Customer == "" && dup.Customer != "" {
			survivor.Customer = dup.Customer
			filled++
		}
		if survivor.Email == "" && dup.Email != "" {
			survivor.Email = dup.Email
			filled++
		}
		if survivor.PaymentMethod == "" && dup.PaymentMethod != "" {
			survivor.PaymentMethod = dup.PaymentMethod
			filled++
		}
		if survivor.Tip == nil && dup.Tip != nil {
			survivor.Tip = dup.Tip
			filled++
		}
		if survivor.PaymentProcessing == nil && dup.PaymentProcessing != nil {
			survivor.PaymentProcessing = dup.PaymentProcessing
			filled++
		}
	}
	return filled
}
