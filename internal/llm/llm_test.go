package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/daydreamers/ops-backend/internal/entity"
)

func TestClassifyHTTP(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   Kind
	}{
		{429, "slow down", KindQuota},
		{400, `{"error":{"code":"insufficient_quota"}}`, KindQuota},
		{500, "Rate limit reached for requests", KindQuota},
		{404, "", KindUnavailable},
		{400, "model gemini-9 not found", KindUnavailable},
		{400, "this API version is unsupported", KindUnavailable},
		{400, "bad request body", KindInvalid},
		{503, "upstream sad", KindUnknown},
	}
	for _, tc := range cases {
		if got := ClassifyHTTP(tc.status, tc.body); got != tc.want {
			t.Fatalf("ClassifyHTTP(%d, %q) = %s, want %s", tc.status, tc.body, got, tc.want)
		}
	}
}

func TestIsQuotaUnwraps(t *testing.T) {
	err := NewProviderError("openai", 429, "rate limit")
	wrapped := errors.Join(errors.New("outer"), err)
	if !IsQuota(wrapped) {
		t.Fatal("IsQuota must see through wrapping")
	}
	if IsQuota(errors.New("plain")) {
		t.Fatal("plain errors are not quota-class")
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := StripCodeFence(tc.in); got != tc.want {
			t.Fatalf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeInvoiceJSON(t *testing.T) {
	raw := []byte(`{
		"order_number": "A1",
		"total": "$209.20",
		"tax": null,
		"vendor": "who knows",
		"products": [
			{"name": " Beef Tendon ", "quantity": "3", "price": "$18.00"},
			{"name": "", "quantity": 2},
			{"name": "Duck Feet"}
		]
	}`)
	cleaned, touched, err := SanitizeInvoiceJSON(raw)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(touched) == 0 {
		t.Fatal("expected touched keys")
	}
	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), cleaned); err != nil {
		t.Fatalf("cleaned doc must validate: %v\n%s", err, cleaned)
	}

	var out InvoiceFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.OrderNumber != "A1" {
		t.Fatalf("order_number not renamed: %+v", out)
	}
	if out.OrderTotal == nil || *out.OrderTotal != 209.20 {
		t.Fatalf("total not coerced: %+v", out)
	}
	if out.Tax != nil {
		t.Fatalf("null tax must be dropped: %+v", out)
	}
	if len(out.Products) != 2 {
		t.Fatalf("nameless product must be dropped: %+v", out.Products)
	}
	if out.Products[0].Name != "Beef Tendon" || out.Products[0].Quantity != 3 || out.Products[0].LineTotal != 18 {
		t.Fatalf("product row: %+v", out.Products[0])
	}
	if out.Products[1].Quantity != 1 {
		t.Fatalf("missing quantity must default to 1: %+v", out.Products[1])
	}
}

func TestSchemaAcceptsTotalsOnlyResult(t *testing.T) {
	doc := []byte(`{"orderNumber":"A1","orderTotal":209.20}`)
	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), doc); err != nil {
		t.Fatalf("totals-only result must validate: %v", err)
	}

	var out InvoiceFields
	if err := json.Unmarshal(doc, &out); err != nil {
		t.Fatal(err)
	}
	if out.OrderTotal == nil || *out.OrderTotal != 209.20 || len(out.Products) != 0 {
		t.Fatalf("fields: %+v", out)
	}

	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), []byte(`{"products":[]}`)); err == nil {
		t.Fatal("a result without orderTotal must still be rejected")
	}
}

func TestBuildMessagesCapsSamples(t *testing.T) {
	samples := make([]entity.TrainingSample, 14)
	for i := range samples {
		samples[i] = entity.TrainingSample{Prompt: "p", Result: "{}"}
	}
	msgs := BuildMessages(ParseRequest{Body: "body", Samples: samples}, BuildInvoiceJSONSchema())
	// 2 system turns + 10 capped pairs + final user turn
	if len(msgs) != 2+10*2+1 {
		t.Fatalf("want 23 messages, got %d", len(msgs))
	}
	last := msgs[len(msgs)-1]
	if last.Role != "user" || !strings.Contains(last.Content, "body") {
		t.Fatalf("final turn must carry the email body: %+v", last)
	}
}

type stubParser struct {
	fields InvoiceFields
	err    error
	calls  int
}

func (s *stubParser) ParseInvoice(context.Context, ParseRequest) (InvoiceFields, []byte, error) {
	s.calls++
	return s.fields, nil, s.err
}

func TestFallbackOnQuotaOnly(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	total := 10.0

	t.Run("quota triggers fallback", func(t *testing.T) {
		primary := &stubParser{err: NewProviderError("openai", 429, "insufficient_quota")}
		secondary := &stubParser{fields: InvoiceFields{OrderTotal: &total}}
		p := NewParserWithFallback(primary, secondary, logger)
		out, _, err := p.ParseInvoice(context.Background(), ParseRequest{})
		if err != nil {
			t.Fatalf("fallback should have rescued: %v", err)
		}
		if secondary.calls != 1 || out.OrderTotal == nil {
			t.Fatalf("secondary not used: calls=%d", secondary.calls)
		}
	})

	t.Run("non-quota propagates", func(t *testing.T) {
		primary := &stubParser{err: NewProviderError("openai", 400, "bad request")}
		secondary := &stubParser{}
		p := NewParserWithFallback(primary, secondary, logger)
		if _, _, err := p.ParseInvoice(context.Background(), ParseRequest{}); err == nil {
			t.Fatal("want primary error to propagate")
		}
		if secondary.calls != 0 {
			t.Fatalf("fallback must not run on non-quota errors, ran %d times", secondary.calls)
		}
	})
}
