package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
)

// InventoryChange is one immutable, signed ledger event for a product.
// Purchases are positive, sales negative. Rows are never mutated after
// creation; they exist so the authoritative Product.Stock counter can be
// audited.
type InventoryChange struct {
	ID             uuid.UUID            `json:"id"`
	ProductID      uuid.UUID            `json:"product_id"`
	TransactionID  *uuid.UUID           `json:"transaction_id,omitempty"`
	QuantityChange int                  `json:"quantity_change"`
	ChangeType     constants.ChangeType `json:"change_type"`
	Source         string               `json:"source,omitempty"`
	Reason         string               `json:"reason,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
}
