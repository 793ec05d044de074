package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is the closed set of provider error classes. Provider adapters map
// their wire-level failures into a Kind at the boundary so core logic never
// inspects provider-specific shapes.
type Kind string

const (
	KindQuota       Kind = "quota"       // capacity/rate limiting; the only class that triggers fallback
	KindUnavailable Kind = "unavailable" // model or API version absent on this provider
	KindInvalid     Kind = "invalid"     // the request itself was rejected
	KindUnknown     Kind = "unknown"
)

// ProviderError is a classified provider failure.
type ProviderError struct {
	Provider string
	Kind     Kind
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, e.Message)
}

// ClassifyHTTP maps an HTTP status plus response text onto a Kind. Substring
// checks mirror the error strings the providers actually emit.
func ClassifyHTTP(status int, body string) Kind {
	lower := strings.ToLower(body)
	switch {
	case status == http.StatusTooManyRequests,
		strings.Contains(lower, "insufficient_quota"),
		strings.Contains(lower, "rate limit"):
		return KindQuota
	case status == http.StatusNotFound,
		strings.Contains(lower, "not found"),
		strings.Contains(lower, "unsupported"):
		return KindUnavailable
	case status >= 400 && status < 500:
		return KindInvalid
	default:
		return KindUnknown
	}
}

// NewProviderError classifies and wraps a provider failure.
func NewProviderError(provider string, status int, body string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ClassifyHTTP(status, body), Status: status, Message: body}
}

// IsQuota reports whether err carries the quota class.
func IsQuota(err error) bool { return kindOf(err) == KindQuota }

// IsUnavailable reports whether err carries the unavailable class.
func IsUnavailable(err error) bool { return kindOf(err) == KindUnavailable }

func kindOf(err error) Kind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}
