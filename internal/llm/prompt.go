package llm

import (
	"encoding/json"
	"strings"

	"github.com/daydreamers/ops-backend/constants"
)

// Message is a provider-neutral chat turn.
type Message struct {
	Role    string // system | user | assistant
	Content string
}

const maxBodyBytes = 12000

// BuildSystemPrompt composes the fixed extraction instruction. The output
// schema is spelled out inline so prompt-completion fallbacks that cannot
// carry a separate schema turn still see it.
func BuildSystemPrompt() string {
	parts := []string{
		"You are an invoice parser for a pet-supply retailer. You receive the body of a supplier invoice email and return ONLY JSON matching the provided JSON Schema.",
		"Fields: orderNumber (string), subtotal, shipping, tax, discount, orderTotal (numbers), products (array of {name, quantity, lineTotal}).",
		"Quantities are whole numbers; a product listed without an explicit quantity is quantity 1.",
		"Product names should be the clean catalog-style name with any trailing quantity suffix (e.g. \"x 3\") removed.",
		"Amounts are plain numbers without currency symbols.",
		"Never output null. If a field is not present in the email, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildMessages assembles the deterministic chat request: system instruction,
// up to the configured cap of stored few-shot pairs (most-recent-first, as
// stored), then the actual email body as the final user turn.
func BuildMessages(req ParseRequest, schema map[string]any) []Message {
	msgs := []Message{{Role: "system", Content: BuildSystemPrompt()}}
	if b, err := json.MarshalIndent(schema, "", "  "); err == nil {
		msgs = append(msgs, Message{Role: "system", Content: "JSON Schema:\n" + string(b)})
	}

	samples := req.Samples
	if len(samples) > constants.MaxTrainingSamples {
		samples = samples[:constants.MaxTrainingSamples]
	}
	for _, s := range samples {
		msgs = append(msgs,
			Message{Role: "user", Content: truncate(s.Prompt, maxBodyBytes)},
			Message{Role: "assistant", Content: s.Result},
		)
	}

	msgs = append(msgs, Message{Role: "user", Content: truncate(req.Body, maxBodyBytes) + "\n\nReturn ONLY JSON that matches the provided schema."})
	return msgs
}

// FlattenPrompt folds the few-shot pairs into a single text block for
// providers without chat roles.
func FlattenPrompt(req ParseRequest) string {
	var b strings.Builder
	b.WriteString(BuildSystemPrompt())
	b.WriteString("\n\n")

	samples := req.Samples
	if len(samples) > constants.MaxTrainingSamples {
		samples = samples[:constants.MaxTrainingSamples]
	}
	for _, s := range samples {
		b.WriteString("Example input:\n")
		b.WriteString(truncate(s.Prompt, maxBodyBytes))
		b.WriteString("\nExample output:\n")
		b.WriteString(s.Result)
		b.WriteString("\n\n")
	}

	b.WriteString("Email body:\n")
	b.WriteString(truncate(req.Body, maxBodyBytes))
	b.WriteString("\n\nReturn ONLY the JSON object.")
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n…(truncated)"
}
