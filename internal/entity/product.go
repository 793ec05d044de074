package entity

import (
	"time"

	"github.com/google/uuid"
)

// CostHistoryEntry records one purchase-derived unit cost observation.
type CostHistoryEntry struct {
	Date      time.Time `json:"date"`
	Quantity  float64   `json:"quantity"`
	UnitCost  float64   `json:"unitCost"`
	TotalCost float64   `json:"totalCost"`
	Source    string    `json:"source,omitempty"` // invoice email id, sync job, manual
}

// SupplierAlias binds the name a supplier prints on invoices to this product.
type SupplierAlias struct {
	SupplierID    uuid.UUID `json:"supplierId"`
	NameInInvoice string    `json:"nameInInvoice"`
}

// PlatformSync is a per-platform sync record (Square/Shopify catalog ids).
type PlatformSync struct {
	Platform   string    `json:"platform"`
	ExternalID string    `json:"externalId,omitempty"`
	SyncStatus string    `json:"syncStatus,omitempty"`
	LastSynced time.Time `json:"lastSynced,omitzero"`
}

// Product is a canonical catalog entity. Stock is the authoritative running
// counter; the inventory-change ledger audits it but never drives it.
type Product struct {
	ID              uuid.UUID          `json:"id"`
	BaseProductName string             `json:"base_product_name"`
	VariantName     string             `json:"variant_name"`
	Name            string             `json:"name"` // derived, see DisplayName
	SKU             string             `json:"sku"`
	Price           float64            `json:"price"`
	Stock           int                `json:"stock"`
	AverageCost     float64            `json:"average_cost"`
	TotalSpent      float64            `json:"total_spent"`
	TotalPurchased  float64            `json:"total_purchased"`
	CostHistory     []CostHistoryEntry `json:"cost_history,omitempty"`
	PlatformSyncs   []PlatformSync     `json:"platform_syncs,omitempty"`
	SupplierAliases []SupplierAlias    `json:"supplier_aliases,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// DisplayName derives the canonical product name from its base and variant
// parts. The "Default" variant collapses to the bare base name.
func DisplayName(base, variant string) string {
	if variant == "" || variant == "Default" {
		return base
	}
	return base + " - " + variant
}
