package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/inventory"
	"github.com/daydreamers/ops-backend/internal/mapping"
	"github.com/daydreamers/ops-backend/internal/pipeline"
)

func ToPBSupplier(s *entity.Supplier) *opspb.Supplier {
	cfg, _ := json.Marshal(s.ParsingConfig)
	return &opspb.Supplier{
		Id:                s.ID.String(),
		Name:              s.Name,
		Aliases:           s.Aliases,
		InvoiceEmail:      s.InvoiceEmail,
		InvoiceSubject:    s.InvoiceSubject,
		SkuPrefix:         s.SKUPrefix,
		ParsingConfigJson: string(cfg),
		TrainingSamples:   int32(len(s.TrainingSamples)),
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBAudit(a *inventory.Audit) *opspb.InventoryAudit {
	return &opspb.InventoryAudit{
		ProductId:       a.ProductID.String(),
		ProductName:     a.ProductName,
		CurrentStock:    int32(a.CurrentStock),
		CalculatedStock: int32(a.CalculatedStock),
		Difference:      int32(a.Difference),
		TotalPurchases:  int32(a.TotalPurchases),
		TotalSales:      int32(a.TotalSales),
		Events:          int32(a.Events),
	}
}

func ToPBSuggestion(s mapping.Suggestion) *opspb.MappingSuggestion {
	out := &opspb.MappingSuggestion{
		Target:     s.Target,
		Score:      int32(s.Score),
		UsageCount: int32(s.UsageCount),
		Origin:     s.Origin,
	}
	if s.TargetID != nil {
		out.TargetId = s.TargetID.String()
	}
	return out
}

func ToPBItemOutcome(it pipeline.ItemOutcome) *opspb.ItemOutcome {
	out := &opspb.ItemOutcome{
		Raw:      it.Raw,
		Quantity: int32(it.Quantity),
		Status:   it.Status,
		Reason:   it.Reason,
	}
	if it.ProductID != nil {
		out.ProductId = it.ProductID.String()
	}
	return out
}

// ParseYMD parses a date-only value to midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseUUID wraps uuid.Parse with a field name for error messages.
func ParseUUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID: %w", field, err)
	}
	return id, nil
}

// FormatMoney renders a float money value the way exports and responses show
// it.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
