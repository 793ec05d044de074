package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/daydreamers/ops-backend/internal/entity"
)

// LineItem is one product row pulled from an invoice email's HTML table.
// PriceText is recorded for display only: unit cost is re-derived from the
// canonical Product record, never trusted from invoice formatting.
type LineItem struct {
	Name      string
	RawName   string
	Quantity  int
	PriceText string
}

// ExtractLineItems iterates the container selector's matches in the HTML
// body and pulls a name, quantity and price text out of each. Rows with an
// empty name are skipped. Returns an error only for a malformed selector or
// quantity pattern; an HTML body with zero matches is a valid empty result.
func ExtractLineItems(html string, rule entity.ProductsRule) ([]LineItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	qtyPattern := rule.QuantityPattern
	if qtyPattern == "" {
		qtyPattern = quantitySuffixRe
	}
	qtyRe, err := Compile(qtyPattern, "")
	if err != nil {
		return nil, fmt.Errorf("quantity pattern: %w", err)
	}

	var items []LineItem
	doc.Find(rule.ContainerSelector).Each(func(_ int, sel *goquery.Selection) {
		raw := sel.Text()
		if rule.NameSelector != "" {
			if name := sel.Find(rule.NameSelector).First(); name.Length() > 0 {
				raw = name.Text()
			}
		}
		raw = normalizeSpaces(raw)
		if raw == "" {
			return
		}

		name, qty := splitQuantity(raw, qtyRe)
		item := LineItem{Name: name, RawName: raw, Quantity: qty}

		if rule.PriceSelector != "" {
			if price := sel.Find(rule.PriceSelector).First(); price.Length() > 0 {
				item.PriceText = normalizeSpaces(price.Text())
			}
		}
		items = append(items, item)
	})
	return items, nil
}

// splitQuantity strips a trailing quantity suffix ("Widget x 3" -> "Widget",
// 3) using the supplied pattern. Rows without a suffix keep the full name and
// default to quantity 1.
func splitQuantity(raw string, qtyRe *regexp.Regexp) (string, int) {
	loc := qtyRe.FindStringSubmatchIndex(raw)
	if loc == nil || len(loc) < 4 {
		return raw, defaultQuantity
	}
	qty, ok := parseLeadingInt(raw[loc[2]:loc[3]])
	if !ok || qty <= 0 {
		return raw, defaultQuantity
	}
	name := strings.TrimSpace(raw[:loc[0]])
	if name == "" {
		return raw, defaultQuantity
	}
	return name, qty
}
