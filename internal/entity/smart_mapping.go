package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
)

// SmartMapping is a learned association between a free-text source string and
// a canonical target entity. Source is stored normalized (lowercase, trimmed)
// and is the lookup key together with Type.
type SmartMapping struct {
	ID         uuid.UUID             `json:"id"`
	Type       constants.MappingType `json:"type"`
	Source     string                `json:"source"`
	Target     string                `json:"target"`
	TargetID   *uuid.UUID            `json:"target_id,omitempty"`
	Confidence int                   `json:"confidence"` // 0..100
	UsageCount int                   `json:"usage_count"`
	Score      int                   `json:"score"` // derived, see mapping.ComputeScore
	Metadata   map[string]string     `json:"metadata,omitempty"`
	LastUsed   time.Time             `json:"last_used"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// AutoConfirmed reports whether this mapping is safe to apply without
// operator review under the given thresholds.
func (m *SmartMapping) AutoConfirmed(confidenceThreshold, minUsage int) bool {
	return m.Confidence >= confidenceThreshold && m.UsageCount >= minUsage
}
