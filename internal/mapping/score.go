package mapping

import "strings"

// Normalize produces the lookup key for a mapping source: lowercase, trimmed,
// inner whitespace collapsed.
func Normalize(source string) string {
	return strings.ToLower(strings.Join(strings.Fields(source), " "))
}

// ComputeScore derives a mapping's ranking score from its confidence and
// usage count: min(100, confidence + min(20, usageCount/5)). Monotonically
// non-decreasing in usage and capped at 100.
func ComputeScore(confidence, usageCount int) int {
	bonus := usageCount / 5
	if bonus > 20 {
		bonus = 20
	}
	score := confidence + bonus
	if score > 100 {
		score = 100
	}
	return score
}
