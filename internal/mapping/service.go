package mapping

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/internal/entity"
)

// Store is the persistence the service needs for learned mappings. A nil
// mapping with a nil error means "no such mapping".
type Store interface {
	Get(ctx context.Context, mtype constants.MappingType, source string) (*entity.SmartMapping, error)
	Create(ctx context.Context, m *entity.SmartMapping) (*entity.SmartMapping, error)
	Update(ctx context.Context, m *entity.SmartMapping) error
	ListByType(ctx context.Context, mtype constants.MappingType) ([]*entity.SmartMapping, error)
}

// Catalog resolves canonical products for alias and fuzzy suggestions.
type Catalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByAlias(ctx context.Context, supplierID uuid.UUID, nameInInvoice string) (*entity.Product, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*entity.Product, error)
}

// Suggestion is one ranked resolution candidate. Origin "alias" candidates
// always sort ahead of learned and fuzzy ones.
type Suggestion struct {
	Target     string
	TargetID   *uuid.UUID
	Score      int
	Confidence int
	UsageCount int
	Origin     string // alias | mapping | fuzzy
}

// AutoApplicable reports whether the candidate may be applied without
// operator review. Aliases are registered by an operator, so they always
// qualify; learned mappings must clear both the confidence and usage
// thresholds; fuzzy catalog matches never qualify.
func (sg Suggestion) AutoApplicable() bool {
	switch sg.Origin {
	case "alias":
		return true
	case "mapping":
		return sg.Confidence >= constants.AutoConfirmThreshold &&
			sg.UsageCount >= constants.AutoConfirmMinUsage
	default:
		return false
	}
}

// Service is the learned-matching layer: repeated operator corrections
// accumulate into mappings that are advisory at first and auto-applied once
// confidence and usage clear the configured thresholds.
type Service struct {
	store   Store
	catalog Catalog
	logger  *slog.Logger
}

func NewService(store Store, catalog Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, catalog: catalog, logger: logger}
}

// Record creates or reinforces the mapping for (mtype, source). First
// recording seeds confidence 80 / usage 1; each repeat increments usage,
// steps confidence to 85 once usage reaches 2, and recomputes the score.
func (s *Service) Record(ctx context.Context, mtype constants.MappingType, source, target string, targetID *uuid.UUID, meta map[string]string) (*entity.SmartMapping, error) {
	key := Normalize(source)
	existing, err := s.store.Get(ctx, mtype, key)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if existing == nil {
		m := &entity.SmartMapping{
			Type:       mtype,
			Source:     key,
			Target:     target,
			TargetID:   targetID,
			Confidence: constants.InitialConfidence,
			UsageCount: 1,
			Score:      ComputeScore(constants.InitialConfidence, 1),
			Metadata:   meta,
			LastUsed:   now,
		}
		created, err := s.store.Create(ctx, m)
		if err != nil {
			return nil, err
		}
		s.logger.Info("mapping.record.created", "type", mtype, "source", key, "target", target)
		return created, nil
	}

	existing.UsageCount++
	if existing.UsageCount >= 2 && existing.Confidence < constants.RepeatConfidence {
		existing.Confidence = constants.RepeatConfidence
	}
	existing.Score = ComputeScore(existing.Confidence, existing.UsageCount)
	existing.Target = target
	existing.TargetID = targetID
	existing.LastUsed = now
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.logger.Info("mapping.record.reinforced",
		"type", mtype, "source", key,
		"usage", existing.UsageCount, "confidence", existing.Confidence, "score", existing.Score,
	)
	return existing, nil
}

// RecordProductMapping is the typed convenience for invoice/Excel product
// name resolution.
func (s *Service) RecordProductMapping(ctx context.Context, rawName string, product *entity.Product) (*entity.SmartMapping, error) {
	id := product.ID
	return s.Record(ctx, constants.MappingProduct, rawName, product.Name, &id, map[string]string{"sku": product.SKU})
}

// RecordEmailSupplierMapping learns which supplier a sender address belongs to.
func (s *Service) RecordEmailSupplierMapping(ctx context.Context, fromAddress string, supplier *entity.Supplier) (*entity.SmartMapping, error) {
	id := supplier.ID
	return s.Record(ctx, constants.MappingEmailSupplier, fromAddress, supplier.Name, &id, nil)
}

// Suggest returns ranked candidates for a free-text source: exact supplier
// alias matches first, then learned mappings and substring catalog matches,
// ordered by score then usage count descending.
func (s *Service) Suggest(ctx context.Context, mtype constants.MappingType, source string, supplierID *uuid.UUID) ([]Suggestion, error) {
	key := Normalize(source)
	var aliases, rest []Suggestion

	if mtype == constants.MappingProduct && supplierID != nil {
		if p, err := s.catalog.FindByAlias(ctx, *supplierID, source); err != nil {
			return nil, err
		} else if p != nil {
			id := p.ID
			aliases = append(aliases, Suggestion{Target: p.Name, TargetID: &id, Score: 100, Confidence: 100, Origin: "alias"})
		}
	}

	learned, err := s.store.ListByType(ctx, mtype)
	if err != nil {
		return nil, err
	}
	for _, m := range learned {
		if m.Source == key || strings.Contains(m.Source, key) || strings.Contains(key, m.Source) {
			rest = append(rest, Suggestion{
				Target:     m.Target,
				TargetID:   m.TargetID,
				Score:      m.Score,
				Confidence: m.Confidence,
				UsageCount: m.UsageCount,
				Origin:     "mapping",
			})
		}
	}

	if mtype == constants.MappingProduct {
		prods, err := s.catalog.SearchByName(ctx, key, 10)
		if err != nil {
			return nil, err
		}
		for _, p := range prods {
			if hasSuggestion(rest, p.Name) || hasSuggestion(aliases, p.Name) {
				continue
			}
			id := p.ID
			rest = append(rest, Suggestion{Target: p.Name, TargetID: &id, Score: fuzzyScore(key, p.Name), Origin: "fuzzy"})
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].Score != rest[j].Score {
			return rest[i].Score > rest[j].Score
		}
		return rest[i].UsageCount > rest[j].UsageCount
	})
	return append(aliases, rest...), nil
}

// AutoConfirmed returns the mappings safe to apply without review during
// imports: confidence and usage both at or above the thresholds.
func (s *Service) AutoConfirmed(ctx context.Context, mtype constants.MappingType, confidenceThreshold, minUsage int) ([]*entity.SmartMapping, error) {
	if confidenceThreshold <= 0 {
		confidenceThreshold = constants.AutoConfirmThreshold
	}
	if minUsage <= 0 {
		minUsage = constants.AutoConfirmMinUsage
	}
	all, err := s.store.ListByType(ctx, mtype)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SmartMapping, 0, len(all))
	for _, m := range all {
		if m.AutoConfirmed(confidenceThreshold, minUsage) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ResolveProduct resolves an invoice line-item name to a canonical product.
// Resolution order: registered supplier alias, then auto-confirmed learned
// mapping. A nil product with nil error means unresolved (advisory
// suggestions remain available through Suggest).
func (s *Service) ResolveProduct(ctx context.Context, supplierID uuid.UUID, rawName string) (*entity.Product, error) {
	if p, err := s.catalog.FindByAlias(ctx, supplierID, rawName); err != nil {
		return nil, err
	} else if p != nil {
		return p, nil
	}

	m, err := s.store.Get(ctx, constants.MappingProduct, Normalize(rawName))
	if err != nil {
		return nil, err
	}
	if m == nil || m.TargetID == nil || !m.AutoConfirmed(constants.AutoConfirmThreshold, constants.AutoConfirmMinUsage) {
		return nil, nil
	}
	return s.catalog.GetByID(ctx, *m.TargetID)
}

func hasSuggestion(list []Suggestion, target string) bool {
	for _, s := range list {
		if s.Target == target {
			return true
		}
	}
	return false
}

// fuzzyScore is a coarse substring-overlap score for catalog candidates; it
// only orders advisory suggestions, so precision matters less than stability.
func fuzzyScore(query, name string) int {
	n := Normalize(name)
	switch {
	case n == query:
		return 90
	case strings.Contains(n, query) || strings.Contains(query, n):
		return 70
	default:
		shared := 0
		for _, tok := range strings.Fields(query) {
			if strings.Contains(n, tok) {
				shared++
			}
		}
		return 40 + min(shared*5, 25)
	}
}
