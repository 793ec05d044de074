package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
)

// TransactionProduct is one resolved line item on a ledger entry.
type TransactionProduct struct {
	ProductID   uuid.UUID `json:"productId,omitzero"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice,omitempty"`
	TotalPrice  float64   `json:"totalPrice,omitempty"`
	IsTaxable   bool      `json:"isTaxable,omitempty"`
	SupplierRaw string    `json:"supplierRaw,omitempty"` // name as printed on the invoice
}

// PlatformMetadata identifies the origin order in an external system.
type PlatformMetadata struct {
	Platform   string    `json:"platform,omitempty"`
	OrderID    string    `json:"orderId,omitempty"`
	SyncStatus string    `json:"syncStatus,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// PaymentProcessing carries processor-side identifiers; older Square rows
// stored the order reference here instead of in PlatformMetadata.
type PaymentProcessing struct {
	TransactionID string  `json:"transactionId,omitempty"`
	Fee           float64 `json:"fee,omitempty"`
}

// Transaction is the unified ledger entry. Field presence varies by source
// and by the historical shape a row was written under; the merge engine in
// internal/dedup is the single place that reconciles those shapes.
type Transaction struct {
	ID                uuid.UUID                   `json:"id"`
	Date              time.Time                   `json:"date"`
	Type              constants.TransactionType   `json:"type"`
	Amount            float64                     `json:"amount"`
	Source            constants.TransactionSource `json:"source"`
	Status            constants.TransactionStatus `json:"status"`
	Products          []TransactionProduct        `json:"products,omitempty"`
	LineItems         []TransactionProduct        `json:"line_items,omitempty"` // legacy Shopify shape
	PreTaxAmount      *float64                    `json:"pre_tax_amount,omitempty"`
	TaxAmount         *float64                    `json:"tax_amount,omitempty"`
	Tip               *float64                    `json:"tip,omitempty"`
	IsTaxable         *bool                       `json:"is_taxable,omitempty"`
	Draft             *bool                       `json:"draft,omitempty"`
	Customer          string                      `json:"customer,omitempty"`
	Email             string                      `json:"email,omitempty"`
	PaymentMethod     string                      `json:"payment_method,omitempty"`
	SupplierID        *uuid.UUID                  `json:"supplier_id,omitempty"`
	ExternalID        string                      `json:"external_id,omitempty"` // legacy prefixed id, e.g. "shopify_123"
	ShopifyOrderID    string                      `json:"shopify_order_id,omitempty"`
	PlatformMetadata  *PlatformMetadata           `json:"platform_metadata,omitempty"`
	PaymentProcessing *PaymentProcessing          `json:"payment_processing,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}
