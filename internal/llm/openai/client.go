package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/llm"
)

// ParseInvoice implements llm.InvoiceParser using chat/completions with
// forced JSON-object output at temperature 0.
func (c *Client) ParseInvoice(ctx context.Context, req llm.ParseRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.parse.start",
		"req_id", rid,
		"provider", "openai",
		"model", c.cfg.Model,
		"supplier", req.SupplierName,
		"body_len", len(req.Body),
		"samples", len(req.Samples),
	)

	schema := llm.BuildInvoiceJSONSchema()
	msgs := llm.BuildMessages(req, schema)
	wire := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		wire = append(wire, map[string]any{"role": m.Role, "content": m.Content})
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        wire,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.parse.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.parse.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.parse.no_choices", "req_id", rid, "raw", string(raw))
		return llm.InvoiceFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, touched, sErr := llm.SanitizeInvoiceJSON(content)
		if sErr != nil {
			c.log.Error("llm.parse.sanitize_failed", "req_id", rid, "error", sErr)
			return llm.InvoiceFields{}, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.parse.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(content))
			return llm.InvoiceFields{}, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.parse.sanitize_applied", "req_id", rid, "touched", touched)
		content = cleaned
	}

	var out llm.InvoiceFields
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("llm.parse.unmarshal_failed", "req_id", rid, "error", err)
		return llm.InvoiceFields{}, content, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("llm.parse.ok",
		"req_id", rid,
		"order_number", out.OrderNumber,
		"products", len(out.Products),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, llm.NewProviderError("openai", resp.StatusCode, string(raw))
	}
	return raw, nil
}
