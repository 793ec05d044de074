package llm

import (
	"context"

	"github.com/daydreamers/ops-backend/internal/entity"
)

// InvoiceProduct is one line item as the model reports it.
type InvoiceProduct struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal,omitempty"`
}

// InvoiceFields is the structured shape we want from the LLM. Optional money
// fields are pointers so callers can tell "absent" from zero; no validation
// beyond the JSON schema is performed here — callers handle missing fields.
type InvoiceFields struct {
	OrderNumber string           `json:"orderNumber,omitempty"`
	Subtotal    *float64         `json:"subtotal,omitempty"`
	Shipping    *float64         `json:"shipping,omitempty"`
	Tax         *float64         `json:"tax,omitempty"`
	Discount    *float64         `json:"discount,omitempty"`
	OrderTotal  *float64         `json:"orderTotal,omitempty"`
	Products    []InvoiceProduct `json:"products,omitempty"`
}

// ParseRequest carries a stripped email body plus the supplier's stored
// few-shot samples, most-recent-first.
type ParseRequest struct {
	Body         string
	SupplierName string
	Samples      []entity.TrainingSample
}

// InvoiceParser is the interface the pipeline depends on. The raw JSON the
// provider produced is returned alongside the decoded fields for audit
// storage and operator correction.
type InvoiceParser interface {
	ParseInvoice(ctx context.Context, req ParseRequest) (InvoiceFields, []byte, error)
}
