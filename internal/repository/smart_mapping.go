package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/smartmapping"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/mapping"
)

// NewSmartMappingRepository returns the persistent mapping.Store used by the
// smart-mapping service. Sources are assumed already normalized by the
// service layer.
func NewSmartMappingRepository(client *ent.Client, logger *slog.Logger) mapping.Store {
	return &smartMappingRepository{client: client, logger: logger}
}

type smartMappingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func (r *smartMappingRepository) Get(ctx context.Context, mtype constants.MappingType, source string) (*entity.SmartMapping, error) {
	row, err := r.client.SmartMapping.Query().
		Where(
			smartmapping.MappingTypeEQ(string(mtype)),
			smartmapping.SourceEQ(source),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return fromEntSmartMapping(row), nil
}

func (r *smartMappingRepository) Create(ctx context.Context, m *entity.SmartMapping) (*entity.SmartMapping, error) {
	row, err := r.client.SmartMapping.Create().
		SetMappingType(string(m.Type)).
		SetSource(m.Source).
		SetTarget(m.Target).
		SetNillableTargetID(m.TargetID).
		SetConfidence(m.Confidence).
		SetUsageCount(m.UsageCount).
		SetScore(m.Score).
		SetMetadata(m.Metadata).
		SetLastUsed(m.LastUsed).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create mapping", "type", m.Type, "source", m.Source, "error", err)
		return nil, err
	}
	return fromEntSmartMapping(row), nil
}

func (r *smartMappingRepository) Update(ctx context.Context, m *entity.SmartMapping) error {
	err := r.client.SmartMapping.UpdateOneID(m.ID).
		SetTarget(m.Target).
		SetNillableTargetID(m.TargetID).
		SetConfidence(m.Confidence).
		SetUsageCount(m.UsageCount).
		SetScore(m.Score).
		SetMetadata(m.Metadata).
		SetLastUsed(m.LastUsed).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update mapping", "mapping_id", m.ID, "error", err)
	}
	return err
}

func (r *smartMappingRepository) ListByType(ctx context.Context, mtype constants.MappingType) ([]*entity.SmartMapping, error) {
	rows, err := r.client.SmartMapping.Query().
		Where(smartmapping.MappingTypeEQ(string(mtype))).
		Order(smartmapping.ByScore(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SmartMapping, len(rows))
	for i, row := range rows {
		out[i] = fromEntSmartMapping(row)
	}
	return out, nil
}
