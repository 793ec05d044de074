package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is embedded in the prompt and used locally to validate
// provider output before decoding.
func BuildInvoiceJSONSchema() map[string]any {
	product := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":      map[string]any{"type": "string", "minLength": 1},
			"quantity":  map[string]any{"type": "integer", "minimum": 1},
			"lineTotal": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"name", "quantity"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"orderNumber": map[string]any{"type": "string"},
			"subtotal":    map[string]any{"type": "number"},
			"shipping":    map[string]any{"type": "number"},
			"tax":         map[string]any{"type": "number"},
			"discount":    map[string]any{"type": "number"},
			"orderTotal":  map[string]any{"type": "number"},
			"products":    map[string]any{"type": "array", "items": product},
		},
		// products stays optional: an invoice whose line items the model
		// cannot read still yields a usable totals-only transaction.
		"required": []string{"orderTotal"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
