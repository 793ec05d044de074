package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern compilation limits. Go's regexp is RE2 (no catastrophic
// backtracking), but operator-configured patterns still get a size cap and a
// bounded search window so a broken configuration cannot stall a batch.
const (
	maxPatternLen    = 2000
	maxSearchWindow  = 512 * 1024
	defaultQuantity  = 1
	quantitySuffixRe = `(?i)\s*x\s*(\d+)\s*$`
)

// NoTransform, TransformFloat and TransformInt are the accepted values for
// FieldRule.Transform.
const (
	NoTransform    = ""
	TransformFloat = "parseFloat"
	TransformInt   = "parseInt"
)

// Compile builds a regexp from an operator-stored pattern and flag string.
// Flags follow the stored configuration dialect: "i" (case-insensitive),
// "m" (multiline anchors), "s" (dot matches newline); "g" is accepted and
// ignored since all matching here is first-match.
func Compile(pattern, flags string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	if len(pattern) > maxPatternLen {
		return nil, fmt.Errorf("pattern exceeds %d bytes", maxPatternLen)
	}
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'g':
			// whole-body scans are first-match here
		default:
			return nil, fmt.Errorf("unsupported flag %q", string(f))
		}
	}
	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + pattern
	}
	return regexp.Compile(pattern)
}

// clampWindow bounds the text a configured pattern may scan.
func clampWindow(body string) string {
	if len(body) > maxSearchWindow {
		return body[:maxSearchWindow]
	}
	return body
}

// parseLeadingFloat mimics the stored configs' parseFloat transform: strip
// currency noise, then take the longest numeric prefix. Returns false when no
// digits lead the value.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	end := 0
	seenDot := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '-' && i == 0 {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = i + 1
			continue
		}
		break
	}
	prefix := strings.TrimSuffix(s[:end], ".")
	if prefix == "" || prefix == "-" {
		return 0, false
	}
	var v float64
	if _, err := fmt.Sscanf(prefix, "%f", &v); err != nil {
		return 0, false
	}
	return v, true
}

func parseLeadingInt(s string) (int, bool) {
	f, ok := parseLeadingFloat(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}
