package repository

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/supplier"
	"github.com/daydreamers/ops-backend/internal/entity"
)

type SupplierRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	UpdateParsingConfig(ctx context.Context, id uuid.UUID, cfg entity.EmailParsingConfig) error
	// PushTrainingSample prepends a few-shot sample and trims the list to its
	// cap, dropping the oldest entries.
	PushTrainingSample(ctx context.Context, id uuid.UUID, sample entity.TrainingSample) error
	// MatchEmail attributes an inbound email to a supplier by sender address
	// first, then by the subject-line regex. Returns nil, nil when no supplier
	// claims it.
	MatchEmail(ctx context.Context, from, subject string) (*entity.Supplier, error)
}

type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) SupplierRepository {
	return &supplierRepository{client: client, logger: logger}
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromEntSupplier(row), nil
}

func (r *supplierRepository) GetByName(ctx context.Context, name string) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Query().Where(supplier.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return fromEntSupplier(row), nil
}

func (r *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.client.Supplier.Query().Order(supplier.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list suppliers", "error", err)
		return nil, err
	}
	out := make([]*entity.Supplier, len(rows))
	for i, row := range rows {
		out[i] = fromEntSupplier(row)
	}
	return out, nil
}

func (r *supplierRepository) Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Create().
		SetName(s.Name).
		SetAliases(s.Aliases).
		SetInvoiceEmail(s.InvoiceEmail).
		SetInvoiceSubject(s.InvoiceSubject).
		SetSkuPrefix(s.SKUPrefix).
		SetParsingConfig(s.ParsingConfig).
		SetTrainingSamples(s.TrainingSamples).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create supplier", "name", s.Name, "error", err)
		return nil, err
	}
	r.logger.Info("supplier created", "supplier_id", row.ID, "name", row.Name)
	return fromEntSupplier(row), nil
}

func (r *supplierRepository) UpdateParsingConfig(ctx context.Context, id uuid.UUID, cfg entity.EmailParsingConfig) error {
	return r.client.Supplier.UpdateOneID(id).SetParsingConfig(cfg).Exec(ctx)
}

func (r *supplierRepository) PushTrainingSample(ctx context.Context, id uuid.UUID, sample entity.TrainingSample) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	row, err := tx.Supplier.Get(ctx, id)
	if err != nil {
		return rollback(tx, err)
	}
	if sample.Added.IsZero() {
		sample.Added = time.Now()
	}
	samples := pushTrimSamples(row.TrainingSamples, sample, constants.MaxTrainingSamples)
	if err := tx.Supplier.UpdateOneID(id).SetTrainingSamples(samples).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("training sample stored", "supplier_id", id, "samples", len(samples))
	return nil
}

// pushTrimSamples keeps the list most-recent-first and bounded.
func pushTrimSamples(existing []entity.TrainingSample, sample entity.TrainingSample, max int) []entity.TrainingSample {
	out := make([]entity.TrainingSample, 0, len(existing)+1)
	out = append(out, sample)
	out = append(out, existing...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

func (r *supplierRepository) MatchEmail(ctx context.Context, from, subject string) (*entity.Supplier, error) {
	rows, err := r.client.Supplier.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	from = strings.ToLower(from)
	for _, row := range rows {
		if row.InvoiceEmail != "" && strings.Contains(from, strings.ToLower(row.InvoiceEmail)) {
			return fromEntSupplier(row), nil
		}
	}
	for _, row := range rows {
		if row.InvoiceSubject == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + row.InvoiceSubject)
		if err != nil {
			r.logger.Warn("invalid supplier subject pattern", "supplier_id", row.ID, "error", err)
			continue
		}
		if re.MatchString(subject) {
			return fromEntSupplier(row), nil
		}
	}
	return nil, nil
}

// rollback reverts tx and returns err; a failed revert is noted without
// masking the original cause.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
