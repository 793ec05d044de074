package extraction

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/daydreamers/ops-backend/internal/entity"
)

func TestExtractFieldTotal(t *testing.T) {
	body := "Thanks for your order!\nTotal: $209.20\nSee you soon."
	rule := entity.FieldRule{Pattern: `Total:\s*\$([\d.]+)`, Flags: "m", GroupIndex: 1, Transform: TransformFloat}

	val, reason := ExtractField(body, rule)
	if reason != "" {
		t.Fatalf("unexpected config error: %s", reason)
	}
	f, ok := val.(float64)
	if !ok || f != 209.20 {
		t.Fatalf("want 209.20 (float64), got %#v", val)
	}
}

func TestExtractFieldNoMatch(t *testing.T) {
	rule := entity.FieldRule{Pattern: `Total:\s*\$([\d.]+)`, GroupIndex: 1}
	val, reason := ExtractField("no totals here", rule)
	if val != nil || reason != "" {
		t.Fatalf("want nil/no-reason on non-matching body, got %#v %q", val, reason)
	}
}

func TestExtractFieldGroupZeroKeepsWholeMatch(t *testing.T) {
	rule := entity.FieldRule{Pattern: `Total:\s*\$[\d.]+`}
	val, reason := ExtractField("Total: $10.00", rule)
	if reason != "" {
		t.Fatalf("unexpected config error: %s", reason)
	}
	if val != "Total: $10.00" {
		t.Fatalf("group 0 must yield the whole match, got %#v", val)
	}
}

func TestExtractFieldGroupIndexOutOfRange(t *testing.T) {
	rule := entity.FieldRule{Pattern: `Total:\s*\$([\d.]+)`, GroupIndex: 5}
	val, reason := ExtractField("Total: $10.00", rule)
	if val != nil || reason != "" {
		t.Fatalf("out-of-range group must be a miss, got %#v %q", val, reason)
	}
}

func TestExtractFieldTransforms(t *testing.T) {
	cases := []struct {
		name      string
		transform string
		body      string
		pattern   string
		want      any
	}{
		{"identity", NoTransform, "Order #A-9921", `Order #(\S+)`, "A-9921"},
		{"parseInt", TransformInt, "Qty: 12 units", `Qty:\s*(\d+)`, 12},
		{"parseFloat currency", TransformFloat, "Shipping: $1,204.50", `Shipping:\s*(\S+)`, 1204.50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			val, reason := ExtractField(tc.body, entity.FieldRule{Pattern: tc.pattern, GroupIndex: 1, Transform: tc.transform})
			if reason != "" {
				t.Fatalf("config error: %s", reason)
			}
			if val != tc.want {
				t.Fatalf("want %#v, got %#v", tc.want, val)
			}
		})
	}
}

func TestExtractFieldCaseInsensitiveFlag(t *testing.T) {
	rule := entity.FieldRule{Pattern: `order number:\s*(\w+)`, Flags: "i", GroupIndex: 1}
	val, _ := ExtractField("ORDER NUMBER: X77", rule)
	if val != "X77" {
		t.Fatalf("want X77, got %#v", val)
	}
}

func TestExtractFieldMalformedPattern(t *testing.T) {
	rule := entity.FieldRule{Pattern: `Total: ([`, GroupIndex: 1}
	val, reason := ExtractField("Total: 5", rule)
	if val != nil || reason == "" {
		t.Fatalf("malformed pattern must report a reason, got %#v %q", val, reason)
	}
}

func TestApplyContentBounds(t *testing.T) {
	body := "MARKETING NOISE\n--- invoice ---\nTotal: $5.00\n--- end ---\nFOOTER NOISE"

	t.Run("both bounds", func(t *testing.T) {
		got := ApplyContentBounds(body, &entity.ContentBounds{StartPattern: `--- invoice ---`, EndPattern: `--- end ---`})
		if !strings.Contains(got, "Total: $5.00") {
			t.Fatalf("invoice section lost: %q", got)
		}
		if strings.Contains(got, "MARKETING") || strings.Contains(got, "FOOTER") {
			t.Fatalf("bounds not applied: %q", got)
		}
		if !strings.Contains(body, got) {
			t.Fatalf("result must be a substring of the input")
		}
	})

	t.Run("absent bounds", func(t *testing.T) {
		if got := ApplyContentBounds(body, nil); got != body {
			t.Fatalf("nil bounds must leave body unchanged")
		}
		if got := ApplyContentBounds(body, &entity.ContentBounds{}); got != body {
			t.Fatalf("empty bounds must leave body unchanged")
		}
	})

	t.Run("non-matching bound leaves side open", func(t *testing.T) {
		got := ApplyContentBounds(body, &entity.ContentBounds{StartPattern: `NOT PRESENT`})
		if got != body {
			t.Fatalf("non-matching start bound must be a no-op")
		}
	})
}

func TestEngineSiblingFieldsSurviveBadRule(t *testing.T) {
	eng := NewEngine(slog.New(slog.DiscardHandler))
	cfg := entity.EmailParsingConfig{
		Fields: map[string]entity.FieldRule{
			"total":    {Pattern: `Total:\s*\$([\d.]+)`, GroupIndex: 1, Transform: TransformFloat},
			"shipping": {Pattern: `Ship(`, GroupIndex: 1},
		},
	}
	res := eng.Extract("Total: $42.10", cfg)
	if v, ok := res.Total(); !ok || v != 42.10 {
		t.Fatalf("total lost to sibling failure: %#v", res.Fields)
	}
	if len(res.Issues) != 1 || res.Issues[0].Field != "shipping" {
		t.Fatalf("want a single shipping issue, got %+v", res.Issues)
	}
}

func TestEngineWithBoundsAndProducts(t *testing.T) {
	eng := NewEngine(slog.New(slog.DiscardHandler))
	body := `<p>Weekly deals you will love!</p>
<div id="invoice">
<table>
<tr class="item"><td class="n">Beef Tendon x 3</td><td class="p">$18.00</td></tr>
<tr class="item"><td class="n">Duck Feet</td><td class="p">$9.50</td></tr>
</table>
<p>Total: $27.50</p>
</div>
<p>Unsubscribe</p>`
	cfg := entity.EmailParsingConfig{
		Bounds: &entity.ContentBounds{StartPattern: `<div id="invoice">`, EndPattern: `</div>`},
		Fields: map[string]entity.FieldRule{
			"total": {Pattern: `Total:\s*\$([\d.]+)`, GroupIndex: 1, Transform: TransformFloat},
		},
		Products: &entity.ProductsRule{
			ContainerSelector: "tr.item",
			NameSelector:      "td.n",
			PriceSelector:     "td.p",
		},
	}
	res := eng.Extract(body, cfg)
	if v, ok := res.Total(); !ok || v != 27.50 {
		t.Fatalf("total: %#v", res.Fields)
	}
	if len(res.Products) != 2 {
		t.Fatalf("want 2 line items, got %+v", res.Products)
	}
	if res.Products[0].Name != "Beef Tendon" || res.Products[0].Quantity != 3 {
		t.Fatalf("quantity suffix not split: %+v", res.Products[0])
	}
	if res.Products[1].Name != "Duck Feet" || res.Products[1].Quantity != 1 {
		t.Fatalf("default quantity: %+v", res.Products[1])
	}
	if res.Products[0].PriceText != "$18.00" {
		t.Fatalf("price text: %+v", res.Products[0])
	}
	if strings.Contains(res.Body, "Weekly deals") || strings.Contains(res.Body, "Unsubscribe") {
		t.Fatalf("result body must be the bounded text: %q", res.Body)
	}
}
