package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/inventorychange"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/inventory"
)

// NewInventoryRepository returns the persistent inventory.Store backing the
// reconciler. Change rows are append-only; there is no update or delete path.
func NewInventoryRepository(client *ent.Client, logger *slog.Logger) inventory.Store {
	return &inventoryRepository{client: client, logger: logger}
}

type inventoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func (r *inventoryRepository) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := r.client.Product.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromEntProduct(row), nil
}

func (r *inventoryRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.client.Product.Query().Order(product.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(rows))
	for i, row := range rows {
		out[i] = fromEntProduct(row)
	}
	return out, nil
}

func (r *inventoryRepository) ListChanges(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryChange, error) {
	rows, err := r.client.InventoryChange.Query().
		Where(inventorychange.ProductIDEQ(productID)).
		Order(inventorychange.ByTimestamp()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.InventoryChange, len(rows))
	for i, row := range rows {
		out[i] = fromEntInventoryChange(row)
	}
	return out, nil
}

func (r *inventoryRepository) AppendChange(ctx context.Context, ch *entity.InventoryChange) (*entity.InventoryChange, error) {
	c := r.client.InventoryChange.Create().
		SetProductID(ch.ProductID).
		SetNillableTransactionID(ch.TransactionID).
		SetQuantityChange(ch.QuantityChange).
		SetChangeType(string(ch.ChangeType)).
		SetSource(ch.Source).
		SetReason(ch.Reason)
	if !ch.Timestamp.IsZero() {
		c.SetTimestamp(ch.Timestamp)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append inventory change",
			"product_id", ch.ProductID, "quantity_change", ch.QuantityChange, "error", err)
		return nil, err
	}
	return fromEntInventoryChange(row), nil
}

func (r *inventoryRepository) UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error {
	return r.client.Product.UpdateOneID(productID).SetStock(stock).Exec(ctx)
}
