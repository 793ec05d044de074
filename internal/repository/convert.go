package repository

import (
	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/internal/entity"
)

func fromEntSupplier(s *ent.Supplier) *entity.Supplier {
	if s == nil {
		return nil
	}
	return &entity.Supplier{
		ID:              s.ID,
		Name:            s.Name,
		Aliases:         s.Aliases,
		InvoiceEmail:    s.InvoiceEmail,
		InvoiceSubject:  s.InvoiceSubject,
		SKUPrefix:       s.SkuPrefix,
		ParsingConfig:   s.ParsingConfig,
		TrainingSamples: s.TrainingSamples,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func fromEntProduct(p *ent.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		ID:              p.ID,
		BaseProductName: p.BaseProductName,
		VariantName:     p.VariantName,
		Name:            entity.DisplayName(p.BaseProductName, p.VariantName),
		SKU:             p.Sku,
		Price:           p.Price,
		Stock:           p.Stock,
		AverageCost:     p.AverageCost,
		TotalSpent:      p.TotalSpent,
		TotalPurchased:  p.TotalPurchased,
		CostHistory:     p.CostHistory,
		PlatformSyncs:   p.PlatformSyncs,
		SupplierAliases: p.SupplierAliases,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func fromEntTransaction(t *ent.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		ID:                t.ID,
		Date:              t.Date,
		Type:              constants.TransactionType(t.Type),
		Amount:            t.Amount,
		Source:            constants.TransactionSource(t.Source),
		Status:            constants.TransactionStatus(t.Status),
		Products:          t.Products,
		LineItems:         t.LineItems,
		PreTaxAmount:      t.PreTaxAmount,
		TaxAmount:         t.TaxAmount,
		Tip:               t.Tip,
		IsTaxable:         t.IsTaxable,
		Draft:             t.Draft,
		Customer:          t.Customer,
		Email:             t.Email,
		PaymentMethod:     t.PaymentMethod,
		SupplierID:        t.SupplierID,
		ExternalID:        t.ExternalID,
		ShopifyOrderID:    t.ShopifyOrderID,
		PlatformMetadata:  t.PlatformMetadata,
		PaymentProcessing: t.PaymentProcessing,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func fromEntTransactions(rows []*ent.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromEntTransaction(r))
	}
	return out
}

func fromEntInvoiceEmail(e *ent.InvoiceEmail) *entity.InvoiceEmail {
	if e == nil {
		return nil
	}
	return &entity.InvoiceEmail{
		ID:            e.ID,
		EmailID:       e.EmailID,
		Date:          e.Date,
		Subject:       e.Subject,
		From:          e.From,
		Body:          e.Body,
		Status:        constants.EmailStatus(e.Status),
		SupplierID:    e.SupplierID,
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func fromEntSmartMapping(m *ent.SmartMapping) *entity.SmartMapping {
	if m == nil {
		return nil
	}
	return &entity.SmartMapping{
		ID:         m.ID,
		Type:       constants.MappingType(m.MappingType),
		Source:     m.Source,
		Target:     m.Target,
		TargetID:   m.TargetID,
		Confidence: m.Confidence,
		UsageCount: m.UsageCount,
		Score:      m.Score,
		Metadata:   m.Metadata,
		LastUsed:   m.LastUsed,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromEntInventoryChange(c *ent.InventoryChange) *entity.InventoryChange {
	if c == nil {
		return nil
	}
	return &entity.InventoryChange{
		ID:             c.ID,
		ProductID:      c.ProductID,
		TransactionID:  c.TransactionID,
		QuantityChange: c.QuantityChange,
		ChangeType:     constants.ChangeType(c.ChangeType),
		Source:         c.Source,
		Reason:         c.Reason,
		Timestamp:      c.Timestamp,
	}
}
