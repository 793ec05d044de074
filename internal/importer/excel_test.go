package importer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/mapping"
)

type fakeProducts struct {
	bySKU map[string]*entity.Product
}

func (f *fakeProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

type fakeStore struct {
	byKey map[string]*entity.SmartMapping
}

func (f *fakeStore) Get(_ context.Context, mtype constants.MappingType, source string) (*entity.SmartMapping, error) {
	return f.byKey[string(mtype)+"|"+source], nil
}

func (f *fakeStore) Create(_ context.Context, m *entity.SmartMapping) (*entity.SmartMapping, error) {
	if f.byKey == nil {
		f.byKey = make(map[string]*entity.SmartMapping)
	}
	m.ID = uuid.New()
	f.byKey[string(m.Type)+"|"+m.Source] = m
	return m, nil
}

func (f *fakeStore) Update(_ context.Context, m *entity.SmartMapping) error {
	f.byKey[string(m.Type)+"|"+m.Source] = m
	return nil
}

func (f *fakeStore) ListByType(_ context.Context, mtype constants.MappingType) ([]*entity.SmartMapping, error) {
	var out []*entity.SmartMapping
	for _, m := range f.byKey {
		if m.Type == mtype {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	products []*entity.Product
}

func (f *fakeCatalog) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) FindByAlias(_ context.Context, _ uuid.UUID, _ string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalog) SearchByName(_ context.Context, query string, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if len(query) > 0 && p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newImporter(products *fakeProducts, store *fakeStore, catalog *fakeCatalog) *Importer {
	logger := slog.New(slog.DiscardHandler)
	svc := mapping.NewService(store, catalog, logger)
	return New(products, svc, logger)
}

func TestImportWorkbookSKUMatch(t *testing.T) {
	beef := &entity.Product{ID: uuid.New(), Name: "Beef Tendon", SKU: "CAN-001"}
	data := buildWorkbook(t, [][]any{
		{"SKU", "Product Name", "Qty", "Unit Price"},
		{"CAN-001", "Beef Tendon Chews", 12, "$4.50"},
	})

	im := newImporter(&fakeProducts{bySKU: map[string]*entity.Product{"CAN-001": beef}}, &fakeStore{}, &fakeCatalog{})
	sum, err := im.ImportWorkbook(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.Rows != 1 || sum.Matched != 1 {
		t.Fatalf("summary = %+v, want 1 row matched", sum)
	}
	r := sum.Results[0]
	if r.Product == nil || r.Product.ID != beef.ID {
		t.Errorf("row product = %+v, want %v", r.Product, beef.ID)
	}
	if r.Quantity != 12 {
		t.Errorf("quantity = %d, want 12", r.Quantity)
	}
	if r.Price != 4.50 {
		t.Errorf("price = %v, want 4.50", r.Price)
	}
}

func TestImportWorkbookLearnedNameMapping(t *testing.T) {
	duck := &entity.Product{ID: uuid.New(), Name: "Duck Feet", SKU: "CAN-002"}
	store := &fakeStore{byKey: map[string]*entity.SmartMapping{}}
	catalog := &fakeCatalog{products: []*entity.Product{duck}}

	// Pre-learn the mapping past the auto-confirm thresholds.
	id := duck.ID
	store.byKey["product|dehydrated duck feet"] = &entity.SmartMapping{
		ID: uuid.New(), Type: constants.MappingProduct,
		Source: "dehydrated duck feet", Target: "Duck Feet", TargetID: &id,
		Confidence: 85, UsageCount: 4, Score: 85,
	}

	data := buildWorkbook(t, [][]any{
		{"Item", "Stock"},
		{"Dehydrated Duck Feet", 6},
	})
	im := newImporter(&fakeProducts{}, store, catalog)
	sum, err := im.ImportWorkbook(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.Matched != 1 {
		t.Fatalf("summary = %+v, want learned match", sum)
	}
	if got := sum.Results[0].Product; got == nil || got.ID != duck.ID {
		t.Errorf("resolved product = %+v", got)
	}
}

func TestImportWorkbookLowUsageMappingStaysSuggested(t *testing.T) {
	duck := &entity.Product{ID: uuid.New(), Name: "Duck Feet", SKU: "CAN-002"}
	store := &fakeStore{byKey: map[string]*entity.SmartMapping{}}

	// Confident but only seen twice: below the usage floor, so the row must
	// come back for review instead of silently matching.
	id := duck.ID
	store.byKey["product|dehydrated duck feet"] = &entity.SmartMapping{
		ID: uuid.New(), Type: constants.MappingProduct,
		Source: "dehydrated duck feet", Target: "Duck Feet", TargetID: &id,
		Confidence: 85, UsageCount: 2, Score: 85,
	}

	data := buildWorkbook(t, [][]any{
		{"Item", "Stock"},
		{"Dehydrated Duck Feet", 6},
	})
	im := newImporter(&fakeProducts{}, store, &fakeCatalog{})
	sum, err := im.ImportWorkbook(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.Matched != 0 || sum.Suggested != 1 {
		t.Fatalf("summary = %+v, want the under-used mapping demoted to suggested", sum)
	}
	if got := sum.Results[0]; got.Status != "suggested" || len(got.Suggestions) == 0 {
		t.Errorf("row = %+v, want suggested with candidates attached", got)
	}
}

func TestImportWorkbookFuzzyHitStaysSuggested(t *testing.T) {
	duck := &entity.Product{ID: uuid.New(), Name: "Duck Feet", SKU: "CAN-002"}
	data := buildWorkbook(t, [][]any{
		{"Item", "Stock"},
		{"Duck Feet", 6},
	})
	im := newImporter(&fakeProducts{}, &fakeStore{byKey: map[string]*entity.SmartMapping{}}, &fakeCatalog{products: []*entity.Product{duck}})
	sum, err := im.ImportWorkbook(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	// An exact catalog-name hit scores high but is still a guess; it never
	// bypasses review.
	if sum.Matched != 0 || sum.Suggested != 1 {
		t.Fatalf("summary = %+v, want fuzzy hit left as suggested", sum)
	}
}

func TestImportColumnMappingNeedsUsage(t *testing.T) {
	store := &fakeStore{byKey: map[string]*entity.SmartMapping{}}
	store.byKey["excel_column|artikelname"] = &entity.SmartMapping{
		ID: uuid.New(), Type: constants.MappingExcelColumn,
		Source: "artikelname", Target: "name",
		Confidence: 80, UsageCount: 1, Score: 80,
	}

	data := buildWorkbook(t, [][]any{
		{"Artikelname", "Qty"},
		{"Duck Feet", 2},
	})
	im := newImporter(&fakeProducts{}, store, &fakeCatalog{})
	if _, err := im.ImportWorkbook(context.Background(), data); err == nil {
		t.Fatal("once-seen column mapping must not be applied unattended")
	}

	store.byKey["excel_column|artikelname"].Confidence = 85
	store.byKey["excel_column|artikelname"].UsageCount = 3
	if _, err := im.ImportWorkbook(context.Background(), data); err != nil {
		t.Fatalf("ImportWorkbook after reinforcement: %v", err)
	}
}

func TestImportWorkbookUnknownRowsSuggested(t *testing.T) {
	duck := &entity.Product{ID: uuid.New(), Name: "Duck Feet", SKU: "CAN-002"}
	data := buildWorkbook(t, [][]any{
		{"Item", "Stock"},
		{"Mystery Treats", 3},
	})
	im := newImporter(&fakeProducts{}, &fakeStore{byKey: map[string]*entity.SmartMapping{}}, &fakeCatalog{products: []*entity.Product{duck}})
	sum, err := im.ImportWorkbook(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if sum.Suggested != 1 {
		t.Fatalf("summary = %+v, want 1 suggested", sum)
	}
	if len(sum.Results[0].Suggestions) == 0 {
		t.Error("expected advisory suggestions for unknown name")
	}
}

func TestImportWorkbookNoUsableHeader(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Foo", "Bar"},
		{"a", "b"},
	})
	im := newImporter(&fakeProducts{}, &fakeStore{byKey: map[string]*entity.SmartMapping{}}, &fakeCatalog{})
	if _, err := im.ImportWorkbook(context.Background(), data); err == nil {
		t.Fatal("expected error for header without name or sku column")
	}
}

func TestLearnColumn(t *testing.T) {
	store := &fakeStore{byKey: map[string]*entity.SmartMapping{}}
	im := newImporter(&fakeProducts{}, store, &fakeCatalog{})

	if err := im.LearnColumn(context.Background(), "Artikelname", "name"); err != nil {
		t.Fatalf("LearnColumn: %v", err)
	}
	if got := store.byKey["excel_column|artikelname"]; got == nil || got.Target != "name" {
		t.Errorf("learned mapping = %+v", got)
	}
	if err := im.LearnColumn(context.Background(), "Whatever", "nope"); err == nil {
		t.Error("expected error for unknown field")
	}
}
