package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
)

// InvoiceEmail is a captured supplier email awaiting (or done with)
// extraction. EmailID is the provider-side message id and is unique.
type InvoiceEmail struct {
	ID            uuid.UUID             `json:"id"`
	EmailID       string                `json:"email_id"`
	Date          time.Time             `json:"date"`
	Subject       string                `json:"subject"`
	From          string                `json:"from"`
	Body          string                `json:"body"`
	Status        constants.EmailStatus `json:"status"`
	SupplierID    *uuid.UUID            `json:"supplier_id,omitempty"`
	TransactionID *uuid.UUID            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
