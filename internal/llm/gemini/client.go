package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/llm"
)

// Config for the Gemini fallback client. Candidate model/version pairs are
// probed in order: availability of a given model under a given API version is
// not guaranteed, so an unavailable-class failure advances to the next
// candidate and any other failure is fatal.
type Config struct {
	APIKey   string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL  string        // default https://generativelanguage.googleapis.com
	Models   []string      // default gemini-1.5-flash, gemini-1.5-pro
	Versions []string      // default v1, v1beta
	Timeout  time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []string{"gemini-1.5-flash", "gemini-1.5-pro"}
	}
	if len(cfg.Versions) == 0 {
		cfg.Versions = []string{"v1", "v1beta"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// ParseInvoice implements llm.InvoiceParser over the prompt-completion API.
// Gemini has no chat roles for few-shot pairs, so the samples are flattened
// into one text prompt. Output may arrive wrapped in a markdown code fence.
func (c *Client) ParseInvoice(ctx context.Context, req llm.ParseRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	prompt := llm.FlattenPrompt(req)
	schema := llm.BuildInvoiceJSONSchema()

	var lastErr error
	for _, version := range c.cfg.Versions {
		for _, model := range c.cfg.Models {
			c.log.Info("llm.parse.fallback_attempt",
				"req_id", rid, "provider", "gemini",
				"version", version, "model", model,
				"supplier", req.SupplierName,
			)
			content, err := c.generate(ctx, version, model, prompt)
			if err != nil {
				if llm.IsUnavailable(err) {
					c.log.Warn("llm.parse.candidate_unavailable",
						"req_id", rid, "version", version, "model", model, "error", err)
					lastErr = err
					continue
				}
				return llm.InvoiceFields{}, nil, err
			}

			cleaned := []byte(llm.StripCodeFence(content))
			if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
				sanitized, touched, sErr := llm.SanitizeInvoiceJSON(cleaned)
				if sErr != nil || llm.ValidateJSONAgainstSchema(schema, sanitized) != nil {
					return llm.InvoiceFields{}, cleaned, fmt.Errorf("gemini schema validation failed: %w", err)
				}
				c.log.Warn("llm.parse.sanitize_applied", "req_id", rid, "touched", touched)
				cleaned = sanitized
			}

			var out llm.InvoiceFields
			if err := json.Unmarshal(cleaned, &out); err != nil {
				return llm.InvoiceFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
			}
			c.log.Info("llm.parse.ok",
				"req_id", rid, "provider", "gemini",
				"version", version, "model", model,
				"products", len(out.Products),
			)
			return out, cleaned, nil
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no gemini candidates configured")
	}
	return llm.InvoiceFields{}, nil, fmt.Errorf("all gemini candidates exhausted: %w", lastErr)
}

func (c *Client) generate(ctx context.Context, version, model, prompt string) (string, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"role": "user", "parts": []map[string]any{{"text": prompt}}},
		},
		"generationConfig": map[string]any{"temperature": 0},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), version, model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("gemini response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", llm.NewProviderError("gemini", resp.StatusCode, string(raw))
	}

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
