package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StripCodeFence removes a leading/trailing markdown fence from provider
// output. The fallback provider wraps JSON in ``` blocks even when asked not
// to; the primary never does, so a clean body passes through unchanged.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// language tag, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		first := strings.TrimSpace(s[:nl])
		if first == "" || isIdent(first) {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isIdent(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

var moneyFields = []string{"subtotal", "shipping", "tax", "discount", "orderTotal"}

// SanitizeInvoiceJSON normalizes near-miss provider output so it can validate:
// renames known synonyms, drops nulls and unknown keys, and coerces numeric
// strings ("$209.20") into numbers. Returns the cleaned document plus the
// list of keys it touched.
func SanitizeInvoiceJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var touched []string
	rename := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			touched = append(touched, from+"->"+to)
		}
	}
	rename("total", "orderTotal")
	rename("order_total", "orderTotal")
	rename("order_number", "orderNumber")
	rename("items", "products")
	rename("lineItems", "products")

	for _, k := range moneyFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			// already what the schema wants
		case string:
			if f, ok := parseMoneyString(t); ok {
				m[k] = f
				touched = append(touched, k)
			} else {
				delete(m, k)
				touched = append(touched, k+"(unparseable)")
			}
		case nil:
			delete(m, k)
			touched = append(touched, k+"(null)")
		default:
			delete(m, k)
			touched = append(touched, k+"(type)")
		}
	}

	if v, ok := m["products"]; ok {
		if arr, ok := v.([]any); ok {
			m["products"] = sanitizeProducts(arr, &touched)
		} else {
			delete(m, "products")
			touched = append(touched, "products(type)")
		}
	}

	allowed := map[string]struct{}{
		"orderNumber": {}, "subtotal": {}, "shipping": {}, "tax": {},
		"discount": {}, "orderTotal": {}, "products": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			touched = append(touched, k+"(unknown)")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, touched, nil
}

func sanitizeProducts(arr []any, touched *[]string) []any {
	out := make([]any, 0, len(arr))
	for _, el := range arr {
		p, ok := el.(map[string]any)
		if !ok {
			*touched = append(*touched, "products[](type)")
			continue
		}
		clean := map[string]any{}
		if name, ok := p["name"].(string); ok && strings.TrimSpace(name) != "" {
			clean["name"] = strings.TrimSpace(name)
		} else {
			*touched = append(*touched, "products[](name)")
			continue
		}
		switch q := p["quantity"].(type) {
		case float64:
			if q < 1 {
				clean["quantity"] = 1
			} else {
				clean["quantity"] = int(q)
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(q)); err == nil && n >= 1 {
				clean["quantity"] = n
			} else {
				clean["quantity"] = 1
			}
		default:
			clean["quantity"] = 1
		}
		for _, key := range []string{"lineTotal", "line_total", "total", "price"} {
			if v, ok := p[key]; ok {
				switch t := v.(type) {
				case float64:
					clean["lineTotal"] = t
				case string:
					if f, ok := parseMoneyString(t); ok {
						clean["lineTotal"] = f
					}
				}
				break
			}
		}
		out = append(out, clean)
	}
	return out
}

func parseMoneyString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
