package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldRule is one operator-configured extraction rule: a regex applied to the
// email body, a capture group to keep, and an optional coercion.
type FieldRule struct {
	Pattern    string `json:"pattern"`
	Flags      string `json:"flags,omitempty"`      // subset of "ims"
	GroupIndex int    `json:"groupIndex,omitempty"` // 0 keeps the whole match
	Transform  string `json:"transform,omitempty"`  // "parseFloat", "parseInt" or empty
}

// ContentBounds trims an email body to the invoice section before field
// extraction. Either side may be empty, leaving that side unbounded.
type ContentBounds struct {
	StartPattern string `json:"startPattern,omitempty"`
	EndPattern   string `json:"endPattern,omitempty"`
}

// ProductsRule describes how to locate repeated line-item blocks in the HTML
// body. Selectors are CSS; QuantityPattern splits a trailing "x N" suffix off
// the raw name text.
type ProductsRule struct {
	ContainerSelector string  `json:"containerSelector"`
	NameSelector      string  `json:"nameSelector,omitempty"`
	PriceSelector     string  `json:"priceSelector,omitempty"`
	QuantityPattern   string  `json:"quantityPattern,omitempty"`
	WholesaleDiscount float64 `json:"wholesaleDiscount,omitempty"` // percent
}

// EmailParsingConfig is a supplier's full extraction configuration: one rule
// per scalar field plus the optional line-item sub-config.
type EmailParsingConfig struct {
	Fields   map[string]FieldRule `json:"fields,omitempty"` // total, subtotal, shipping, tax, discount, orderNumber
	Products *ProductsRule        `json:"products,omitempty"`
	Bounds   *ContentBounds       `json:"bounds,omitempty"`
}

// TrainingSample is one stored few-shot pair for the AI parser: the raw email
// body the operator corrected and the structured result they approved.
type TrainingSample struct {
	Prompt string    `json:"prompt"`
	Result string    `json:"result"` // JSON-encoded InvoiceFields
	Added  time.Time `json:"added"`
}

// Supplier is an external vendor whose invoice emails are parsed for
// purchase data.
type Supplier struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Aliases         []string           `json:"aliases,omitempty"`
	InvoiceEmail    string             `json:"invoice_email,omitempty"`
	InvoiceSubject  string             `json:"invoice_subject,omitempty"` // regex against the subject line
	SKUPrefix       string             `json:"sku_prefix,omitempty"`
	ParsingConfig   EmailParsingConfig `json:"parsing_config"`
	TrainingSamples []TrainingSample   `json:"training_samples,omitempty"` // most-recent-first
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
