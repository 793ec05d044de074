package llm

import (
	"context"
	"log/slog"
)

// ParserWithFallback routes a parse to the primary provider and, strictly on
// quota-class failure, to the secondary. Any non-quota primary error
// propagates verbatim: the fallback is a capacity workaround, not a general
// reliability mechanism.
type ParserWithFallback struct {
	primary  InvoiceParser
	fallback InvoiceParser
	logger   *slog.Logger
}

func NewParserWithFallback(primary, fallback InvoiceParser, logger *slog.Logger) *ParserWithFallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserWithFallback{primary: primary, fallback: fallback, logger: logger}
}

func (p *ParserWithFallback) ParseInvoice(ctx context.Context, req ParseRequest) (InvoiceFields, []byte, error) {
	fields, raw, err := p.primary.ParseInvoice(ctx, req)
	if err == nil {
		return fields, raw, nil
	}
	if !IsQuota(err) || p.fallback == nil {
		return InvoiceFields{}, raw, err
	}
	p.logger.Warn("llm.parse.fallback", "supplier", req.SupplierName, "primary_error", err)
	return p.fallback.ParseInvoice(ctx, req)
}
