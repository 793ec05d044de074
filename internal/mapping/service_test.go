package mapping

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
)

type fakeStore struct {
	byKey map[string]*entity.SmartMapping
}

func newFakeStore() *fakeStore {
	return &fakeStore{byKey: map[string]*entity.SmartMapping{}}
}

func (f *fakeStore) key(mtype constants.MappingType, source string) string {
	return string(mtype) + "|" + source
}

func (f *fakeStore) Get(_ context.Context, mtype constants.MappingType, source string) (*entity.SmartMapping, error) {
	return f.byKey[f.key(mtype, source)], nil
}

func (f *fakeStore) Create(_ context.Context, m *entity.SmartMapping) (*entity.SmartMapping, error) {
	m.ID = uuid.New()
	f.byKey[f.key(m.Type, m.Source)] = m
	return m, nil
}

func (f *fakeStore) Update(_ context.Context, m *entity.SmartMapping) error {
	f.byKey[f.key(m.Type, m.Source)] = m
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
	aliases  map[string]*entity.Product // supplierID|normalized name
}

func (f *fakeCatalog) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) FindByAlias(_ context.Context, supplierID uuid.UUID, name string) (*entity.Product, error) {
	return f.aliases[supplierID.String()+"|"+Normalize(name)], nil
}

func (f *fakeCatalog) SearchByName(_ context.Context, query string, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if strings.Contains(Normalize(p.Name), query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestComputeScore(t *testing.T) {
	cases := []struct {
		confidence, usage, want int
	}{
		{80, 1, 80},
		{85, 2, 85},
		{85, 5, 86},
		{85, 100, 100},
		{100, 500, 100},
	}
	for _, tc := range cases {
		if got := ComputeScore(tc.confidence, tc.usage); got != tc.want {
			t.Fatalf("ComputeScore(%d, %d) = %d, want %d", tc.confidence, tc.usage, got, tc.want)
		}
	}
}

func TestRecordTrustProgression(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeCatalog{}, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	pid := uuid.New()

	var last *entity.SmartMapping
	prevScore := 0
	for k := 1; k <= 12; k++ {
		m, err := svc.Record(ctx, constants.MappingProduct, "  Beef Tendon 6in  ", "Beef Tendon - 6 inch", &pid, nil)
		if err != nil {
			t.Fatalf("record %d: %v", k, err)
		}
		if m.UsageCount != k {
			t.Fatalf("after %d recordings usage = %d", k, m.UsageCount)
		}
		switch {
		case k == 1 && m.Confidence != constants.InitialConfidence:
			t.Fatalf("initial confidence = %d", m.Confidence)
		case k >= 2 && m.Confidence != constants.RepeatConfidence:
			t.Fatalf("confidence after %d uses = %d, want 85", k, m.Confidence)
		}
		if m.Score < prevScore {
			t.Fatalf("score regressed at k=%d: %d < %d", k, m.Score, prevScore)
		}
		if m.Score > 100 {
			t.Fatalf("score above cap: %d", m.Score)
		}
		prevScore = m.Score
		last = m
	}
	if last.Source != "beef tendon 6in" {
		t.Fatalf("source not normalized: %q", last.Source)
	}
}

func TestAutoConfirmedThresholds(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCatalog{}, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	pid := uuid.New()

	// One use: confidence 80, below both thresholds.
	if _, err := svc.Record(ctx, constants.MappingProduct, "new thing", "Thing", &pid, nil); err != nil {
		t.Fatal(err)
	}
	// Three uses: confidence 85, usage 3 — auto-confirmable.
	for i := 0; i < 3; i++ {
		if _, err := svc.Record(ctx, constants.MappingProduct, "trusted thing", "Thing", &pid, nil); err != nil {
			t.Fatal(err)
		}
	}

	confirmed, err := svc.AutoConfirmed(ctx, constants.MappingProduct, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(confirmed) != 1 || confirmed[0].Source != "trusted thing" {
		t.Fatalf("auto-confirmed set: %+v", confirmed)
	}
}

func TestSuggestionAutoApplicable(t *testing.T) {
	cases := []struct {
		name string
		s    Suggestion
		want bool
	}{
		{"alias", Suggestion{Origin: "alias", Score: 100, Confidence: 100}, true},
		{"confirmed mapping", Suggestion{Origin: "mapping", Score: 85, Confidence: 85, UsageCount: 3}, true},
		{"under-used mapping", Suggestion{Origin: "mapping", Score: 85, Confidence: 85, UsageCount: 2}, false},
		{"low-confidence mapping", Suggestion{Origin: "mapping", Score: 84, Confidence: 80, UsageCount: 5}, false},
		{"fuzzy", Suggestion{Origin: "fuzzy", Score: 90}, false},
	}
	for _, tc := range cases {
		if got := tc.s.AutoApplicable(); got != tc.want {
			t.Errorf("%s: AutoApplicable() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSuggestRanking(t *testing.T) {
	store := newFakeStore()
	supplierID := uuid.New()
	tendon := &entity.Product{ID: uuid.New(), Name: "Beef Tendon - 6 inch"}
	trachea := &entity.Product{ID: uuid.New(), Name: "Beef Trachea"}
	catalog := &fakeCatalog{
		products: []*entity.Product{tendon, trachea},
		aliases: map[string]*entity.Product{
			supplierID.String() + "|" + Normalize("beef tendon 6in"): tendon,
		},
	}
	svc := NewService(store, catalog, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	// Learned mapping for a different variant spelling.
	tid := trachea.ID
	for i := 0; i < 4; i++ {
		if _, err := svc.Record(ctx, constants.MappingProduct, "beef tendon 6in pack", "Beef Trachea", &tid, nil); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.Suggest(ctx, constants.MappingProduct, "Beef Tendon 6in", &supplierID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("no suggestions")
	}
	if got[0].Origin != "alias" || got[0].Target != tendon.Name || got[0].Score != 100 {
		t.Fatalf("alias match must rank first: %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score && got[i-1].Origin != "alias" {
			t.Fatalf("non-alias suggestions out of order: %+v", got)
		}
	}
}

func TestResolveProduct(t *testing.T) {
	store := newFakeStore()
	supplierID := uuid.New()
	tendon := &entity.Product{ID: uuid.New(), Name: "Beef Tendon - 6 inch"}
	catalog := &fakeCatalog{products: []*entity.Product{tendon}, aliases: map[string]*entity.Product{}}
	svc := NewService(store, catalog, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	// Unknown name, no mapping: unresolved, not an error.
	p, err := svc.ResolveProduct(ctx, supplierID, "Mystery Chew")
	if err != nil || p != nil {
		t.Fatalf("want unresolved nil/nil, got %v %v", p, err)
	}

	// Low-usage mapping stays advisory.
	tid := tendon.ID
	if _, err := svc.Record(ctx, constants.MappingProduct, "Mystery Chew", "Beef Tendon - 6 inch", &tid, nil); err != nil {
		t.Fatal(err)
	}
	if p, _ := svc.ResolveProduct(ctx, supplierID, "Mystery Chew"); p != nil {
		t.Fatalf("single-use mapping must not auto-apply: %+v", p)
	}

	// Enough reinforcement: auto-applies.
	for i := 0; i < 2; i++ {
		if _, err := svc.Record(ctx, constants.MappingProduct, "Mystery Chew", "Beef Tendon - 6 inch", &tid, nil); err != nil {
			t.Fatal(err)
		}
	}
	p, err = svc.ResolveProduct(ctx, supplierID, "Mystery Chew")
	if err != nil || p == nil || p.ID != tendon.ID {
		t.Fatalf("auto-confirmed mapping must resolve: %v %v", p, err)
	}
}
