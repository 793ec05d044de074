package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/product"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/mapping"
)

// ProductRepository is the catalog store. It satisfies mapping.Catalog so the
// smart-mapping service can resolve aliases and fuzzy candidates against it.
type ProductRepository interface {
	mapping.Catalog
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	// RegisterAlias binds a supplier's invoice name to the product. Adding an
	// alias that is already present is a no-op; the check and the append run
	// in one transaction.
	RegisterAlias(ctx context.Context, productID uuid.UUID, alias entity.SupplierAlias) error
	// AppendCost records a purchase observation and recomputes the running
	// totals: averageCost = totalSpent / totalPurchased.
	AppendCost(ctx context.Context, productID uuid.UUID, c entity.CostHistoryEntry) error
	UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error
	// AdjustStock moves the authoritative counter by delta inside a
	// transaction and returns the new level.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (int, error)
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := r.client.Product.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return fromEntProduct(row), nil
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	row, err := r.client.Product.Query().Where(product.SkuEQ(sku)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return fromEntProduct(row), nil
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.client.Product.Query().Order(product.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, err
	}
	out := make([]*entity.Product, len(rows))
	for i, row := range rows {
		out[i] = fromEntProduct(row)
	}
	return out, nil
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	variant := p.VariantName
	if variant == "" {
		variant = "Default"
	}
	row, err := r.client.Product.Create().
		SetBaseProductName(p.BaseProductName).
		SetVariantName(variant).
		SetName(entity.DisplayName(p.BaseProductName, variant)).
		SetSku(p.SKU).
		SetPrice(p.Price).
		SetStock(p.Stock).
		SetAverageCost(p.AverageCost).
		SetTotalSpent(p.TotalSpent).
		SetTotalPurchased(p.TotalPurchased).
		SetCostHistory(p.CostHistory).
		SetPlatformSyncs(p.PlatformSyncs).
		SetSupplierAliases(p.SupplierAliases).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product", "sku", p.SKU, "error", err)
		return nil, err
	}
	return fromEntProduct(row), nil
}

func (r *productRepository) SearchByName(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.client.Product.Query().
		Where(product.NameContainsFold(query)).
		Order(product.ByName()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(rows))
	for i, row := range rows {
		out[i] = fromEntProduct(row)
	}
	return out, nil
}

// FindByAlias scans products carrying aliases in memory. The catalog is small
// and JSON containment predicates are not portable across the sqlite dev
// dialect.
func (r *productRepository) FindByAlias(ctx context.Context, supplierID uuid.UUID, nameInInvoice string) (*entity.Product, error) {
	rows, err := r.client.Product.Query().
		Where(product.SupplierAliasesNotNil()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	want := mapping.Normalize(nameInInvoice)
	for _, row := range rows {
		for _, a := range row.SupplierAliases {
			if a.SupplierID == supplierID && mapping.Normalize(a.NameInInvoice) == want {
				return fromEntProduct(row), nil
			}
		}
	}
	return nil, nil
}

func (r *productRepository) RegisterAlias(ctx context.Context, productID uuid.UUID, alias entity.SupplierAlias) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	row, err := tx.Product.Get(ctx, productID)
	if err != nil {
		return rollback(tx, err)
	}
	want := mapping.Normalize(alias.NameInInvoice)
	for _, a := range row.SupplierAliases {
		if a.SupplierID == alias.SupplierID && mapping.Normalize(a.NameInInvoice) == want {
			return tx.Commit()
		}
	}
	aliases := append(row.SupplierAliases, alias)
	if err := tx.Product.UpdateOneID(productID).SetSupplierAliases(aliases).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("supplier alias registered",
		"product_id", productID, "supplier_id", alias.SupplierID, "alias", alias.NameInInvoice)
	return nil
}

func (r *productRepository) AppendCost(ctx context.Context, productID uuid.UUID, c entity.CostHistoryEntry) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	row, err := tx.Product.Get(ctx, productID)
	if err != nil {
		return rollback(tx, err)
	}
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	history := append(row.CostHistory, c)
	totalSpent := row.TotalSpent + c.TotalCost
	totalPurchased := row.TotalPurchased + c.Quantity
	avg := row.AverageCost
	if totalPurchased > 0 {
		avg = totalSpent / totalPurchased
	}
	err = tx.Product.UpdateOneID(productID).
		SetCostHistory(history).
		SetTotalSpent(totalSpent).
		SetTotalPurchased(totalPurchased).
		SetAverageCost(avg).
		Exec(ctx)
	if err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Debug("cost history appended",
		"product_id", productID, "quantity", c.Quantity, "unit_cost", c.UnitCost, "average_cost", avg)
	return nil
}

func (r *productRepository) UpdateStock(ctx context.Context, productID uuid.UUID, stock int) error {
	return r.client.Product.UpdateOneID(productID).SetStock(stock).Exec(ctx)
}

func (r *productRepository) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}
	row, err := tx.Product.Get(ctx, productID)
	if err != nil {
		return 0, rollback(tx, err)
	}
	next := row.Stock + delta
	if err := tx.Product.UpdateOneID(productID).SetStock(next).Exec(ctx); err != nil {
		return 0, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return next, nil
}
