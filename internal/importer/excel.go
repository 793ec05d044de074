package importer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/mapping"
)

// Products is the catalog lookup the importer needs; satisfied by
// repository.ProductRepository.
type Products interface {
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}

// RowResult reports the resolution of one spreadsheet row. Suggested rows
// carry ranked candidates for operator confirmation.
type RowResult struct {
	Row         int                  `json:"row"`
	RawName     string               `json:"raw_name"`
	SKU         string               `json:"sku,omitempty"`
	Quantity    int                  `json:"quantity"`
	Price       float64              `json:"price,omitempty"`
	Status      string               `json:"status"` // matched | suggested | unmatched | error
	Product     *entity.Product      `json:"product,omitempty"`
	Suggestions []mapping.Suggestion `json:"suggestions,omitempty"`
	Reason      string               `json:"reason,omitempty"`
}

// Summary is the whole-workbook result. Rows fail independently.
type Summary struct {
	Rows      int         `json:"rows"`
	Matched   int         `json:"matched"`
	Suggested int         `json:"suggested"`
	Unmatched int         `json:"unmatched"`
	Errored   int         `json:"errored"`
	Results   []RowResult `json:"results"`
}

// Importer reads operator-supplied XLSX stock sheets and resolves each row to
// a catalog product: exact SKU first, then learned name mappings, then
// advisory suggestions. It never writes; callers apply confirmed rows.
type Importer struct {
	products Products
	mappings *mapping.Service
	logger   *slog.Logger
}

func New(products Products, mappings *mapping.Service, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{products: products, mappings: mappings, logger: logger}
}

// canonicalColumns maps normalized header synonyms to the fields we read.
var canonicalColumns = map[string]string{
	"name":         "name",
	"product":      "name",
	"product name": "name",
	"item":         "name",
	"description":  "name",
	"sku":          "sku",
	"item code":    "sku",
	"code":         "sku",
	"qty":          "quantity",
	"quantity":     "quantity",
	"stock":        "quantity",
	"count":        "quantity",
	"price":        "price",
	"unit price":   "price",
	"cost":         "price",
}

// ImportWorkbook parses the first sheet of the workbook. The first row is the
// header; unknown headers are first checked against learned excel_column
// mappings, then ignored.
func (im *Importer) ImportWorkbook(ctx context.Context, data []byte) (*Summary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Summary{}, nil
	}

	columns := im.mapColumns(ctx, rows[0])
	if _, ok := columns["name"]; !ok {
		if _, ok := columns["sku"]; !ok {
			return nil, fmt.Errorf("no name or sku column recognized in header %v", rows[0])
		}
	}

	summary := &Summary{}
	for i, row := range rows[1:] {
		res := im.resolveRow(ctx, i+2, row, columns)
		if res == nil {
			continue // blank row
		}
		summary.Rows++
		switch res.Status {
		case "matched":
			summary.Matched++
		case "suggested":
			summary.Suggested++
		case "unmatched":
			summary.Unmatched++
		default:
			summary.Errored++
		}
		summary.Results = append(summary.Results, *res)
	}

	im.logger.Info("import.workbook.done",
		"sheet", sheets[0],
		"rows", summary.Rows,
		"matched", summary.Matched,
		"suggested", summary.Suggested,
		"unmatched", summary.Unmatched,
		"errored", summary.Errored,
	)
	return summary, nil
}

// mapColumns resolves header cells to canonical field names. Headers outside
// the synonym table consult learned excel_column mappings so operator
// corrections stick across uploads.
func (im *Importer) mapColumns(ctx context.Context, header []string) map[string]int {
	columns := make(map[string]int)
	for idx, cell := range header {
		key := mapping.Normalize(cell)
		if key == "" {
			continue
		}
		field, ok := canonicalColumns[key]
		if !ok {
			suggestions, err := im.mappings.Suggest(ctx, constants.MappingExcelColumn, key, nil)
			if err != nil || len(suggestions) == 0 || !suggestions[0].AutoApplicable() {
				im.logger.Debug("import.column.ignored", "header", cell)
				continue
			}
			field = suggestions[0].Target
		}
		if _, taken := columns[field]; !taken {
			columns[field] = idx
		}
	}
	return columns
}

// LearnColumn records an operator's header correction so the next upload maps
// it automatically.
func (im *Importer) LearnColumn(ctx context.Context, header, field string) error {
	if _, ok := map[string]bool{"name": true, "sku": true, "quantity": true, "price": true}[field]; !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	_, err := im.mappings.Record(ctx, constants.MappingExcelColumn, header, field, nil, nil)
	return err
}

func (im *Importer) resolveRow(ctx context.Context, rowNum int, row []string, columns map[string]int) *RowResult {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := cell("name")
	sku := cell("sku")
	if name == "" && sku == "" {
		return nil
	}

	res := &RowResult{Row: rowNum, RawName: name, SKU: sku, Quantity: 1}
	if q := cell("quantity"); q != "" {
		if v, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && v >= 0 {
			res.Quantity = v
		}
	}
	if pr := cell("price"); pr != "" {
		cleaned := strings.ReplaceAll(strings.TrimLeft(pr, "$"), ",", "")
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			res.Price = v
		}
	}

	if sku != "" {
		p, err := im.products.GetBySKU(ctx, sku)
		if err != nil {
			res.Status = "error"
			res.Reason = err.Error()
			return res
		}
		if p != nil {
			res.Status = "matched"
			res.Product = p
			return res
		}
	}

	if name == "" {
		res.Status = "unmatched"
		res.Reason = "sku not in catalog"
		return res
	}

	suggestions, err := im.mappings.Suggest(ctx, constants.MappingProduct, name, nil)
	if err != nil {
		res.Status = "error"
		res.Reason = err.Error()
		return res
	}
	if len(suggestions) == 0 {
		res.Status = "unmatched"
		return res
	}
	res.Suggestions = suggestions
	if top := suggestions[0]; top.AutoApplicable() && top.TargetID != nil {
		res.Status = "matched"
		res.Product = &entity.Product{ID: *top.TargetID, Name: top.Target}
		return res
	}
	res.Status = "suggested"
	return res
}
