package extraction

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/daydreamers/ops-backend/internal/entity"
)

// Issue reports a per-field configuration failure. Issues never abort
// extraction of sibling fields.
type Issue struct {
	Field  string
	Reason string
}

// Result is a partial extraction: absent fields are missing keys, not errors.
// Values are string, float64 or int depending on the rule's transform. Body is
// the content-bounds-stripped text every rule ran against; downstream parsers
// work on it, never on the raw email.
type Result struct {
	Body     string
	Fields   map[string]any
	Products []LineItem
	Issues   []Issue
}

// Total returns the extracted order total, if any.
func (r *Result) Total() (float64, bool) {
	v, ok := r.Fields["total"].(float64)
	return v, ok
}

// OrderNumber returns the extracted order number, if any.
func (r *Result) OrderNumber() (string, bool) {
	v, ok := r.Fields["orderNumber"].(string)
	return v, ok
}

// Engine applies a supplier's extraction configuration to a raw email body.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// ExtractField applies one rule to the body. A non-matching body or a group
// index past the pattern's capture groups yields (nil, ""); a malformed rule
// yields a non-empty reason. Callers treat missing fields as recoverable.
func ExtractField(body string, rule entity.FieldRule) (any, string) {
	re, err := Compile(rule.Pattern, rule.Flags)
	if err != nil {
		return nil, err.Error()
	}
	m := re.FindStringSubmatch(clampWindow(body))
	if m == nil {
		return nil, ""
	}
	idx := rule.GroupIndex
	if idx < 0 || idx >= len(m) {
		return nil, ""
	}
	raw := m[idx]
	switch rule.Transform {
	case TransformFloat:
		if v, ok := parseLeadingFloat(raw); ok {
			return v, ""
		}
		return nil, ""
	case TransformInt:
		if v, ok := parseLeadingInt(raw); ok {
			return v, ""
		}
		return nil, ""
	case NoTransform:
		return raw, ""
	default:
		return nil, "unknown transform " + rule.Transform
	}
}

// ApplyContentBounds restricts the search window before field extraction: if
// the start pattern matches, everything before the match start is dropped; if
// the end pattern matches, everything after the match end is dropped. A
// malformed or non-matching bound leaves that side open. The result is always
// a substring of the input.
func ApplyContentBounds(body string, bounds *entity.ContentBounds) string {
	if bounds == nil {
		return body
	}
	out := body
	if bounds.StartPattern != "" {
		if re, err := Compile(bounds.StartPattern, "s"); err == nil {
			if loc := re.FindStringIndex(out); loc != nil {
				out = out[loc[0]:]
			}
		}
	}
	if bounds.EndPattern != "" {
		if re, err := Compile(bounds.EndPattern, "s"); err == nil {
			if loc := re.FindStringIndex(out); loc != nil {
				out = out[:loc[1]]
			}
		}
	}
	return out
}

// Extract runs the full configuration against the body: content bounds, then
// every scalar field rule, then line items when a products sub-config is
// present. Field rules run in sorted key order so issue reporting is stable.
func (e *Engine) Extract(body string, cfg entity.EmailParsingConfig) *Result {
	res := &Result{Fields: make(map[string]any)}

	bounded := ApplyContentBounds(body, cfg.Bounds)
	res.Body = bounded

	names := make([]string, 0, len(cfg.Fields))
	for name := range cfg.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		val, reason := ExtractField(bounded, cfg.Fields[name])
		if reason != "" {
			e.logger.Warn("extraction.field.config_error", "field", name, "reason", reason)
			res.Issues = append(res.Issues, Issue{Field: name, Reason: reason})
			continue
		}
		if val != nil {
			res.Fields[name] = val
		}
	}

	if cfg.Products != nil && cfg.Products.ContainerSelector != "" {
		items, err := ExtractLineItems(bounded, *cfg.Products)
		if err != nil {
			e.logger.Warn("extraction.products.config_error", "reason", err.Error())
			res.Issues = append(res.Issues, Issue{Field: "products", Reason: err.Error()})
		} else {
			res.Products = items
		}
	}

	e.logger.Info("extraction.done",
		"fields", len(res.Fields),
		"products", len(res.Products),
		"issues", len(res.Issues),
		"bounded_bytes", len(bounded),
	)
	return res
}

// normalizeSpaces collapses runs of whitespace into single spaces.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
