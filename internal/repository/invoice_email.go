package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	"github.com/daydreamers/ops-backend/gen/ent"
	"github.com/daydreamers/ops-backend/gen/ent/invoiceemail"
	"github.com/daydreamers/ops-backend/internal/entity"
)

type InvoiceEmailRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceEmail, error)
	// Ingest stores a captured email, keyed by the provider message id.
	// Re-ingesting a known message returns the existing row untouched.
	Ingest(ctx context.Context, e *entity.InvoiceEmail) (*entity.InvoiceEmail, error)
	ListPending(ctx context.Context, limit int) ([]*entity.InvoiceEmail, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, supplierID, transactionID uuid.UUID) error
	MarkIgnored(ctx context.Context, id uuid.UUID) error
}

type invoiceEmailRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceEmailRepository(client *ent.Client, logger *slog.Logger) InvoiceEmailRepository {
	return &invoiceEmailRepository{client: client, logger: logger}
}

func (r *invoiceEmailRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceEmail, error) {
	row, err := r.client.InvoiceEmail.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromEntInvoiceEmail(row), nil
}

func (r *invoiceEmailRepository) Ingest(ctx context.Context, e *entity.InvoiceEmail) (*entity.InvoiceEmail, error) {
	existing, err := r.client.InvoiceEmail.Query().
		Where(invoiceemail.EmailIDEQ(e.EmailID)).
		Only(ctx)
	if err == nil {
		r.logger.Debug("email already ingested", "email_id", e.EmailID)
		return fromEntInvoiceEmail(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	status := e.Status
	if status == "" {
		status = constants.EmailPending
	}
	row, err := r.client.InvoiceEmail.Create().
		SetEmailID(e.EmailID).
		SetDate(e.Date).
		SetSubject(e.Subject).
		SetFrom(e.From).
		SetBody(e.Body).
		SetStatus(string(status)).
		SetNillableSupplierID(e.SupplierID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to ingest email", "email_id", e.EmailID, "error", err)
		return nil, err
	}
	r.logger.Info("email ingested", "email_id", e.EmailID, "subject", e.Subject)
	return fromEntInvoiceEmail(row), nil
}

func (r *invoiceEmailRepository) ListPending(ctx context.Context, limit int) ([]*entity.InvoiceEmail, error) {
	q := r.client.InvoiceEmail.Query().
		Where(invoiceemail.StatusEQ(string(constants.EmailPending))).
		Order(invoiceemail.ByDate())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.InvoiceEmail, len(rows))
	for i, row := range rows {
		out[i] = fromEntInvoiceEmail(row)
	}
	return out, nil
}

func (r *invoiceEmailRepository) MarkProcessed(ctx context.Context, id uuid.UUID, supplierID, transactionID uuid.UUID) error {
	u := r.client.InvoiceEmail.UpdateOneID(id).
		SetStatus(string(constants.EmailProcessed)).
		SetTransactionID(transactionID)
	if supplierID != uuid.Nil {
		u.SetSupplierID(supplierID)
	}
	return u.Exec(ctx)
}

func (r *invoiceEmailRepository) MarkIgnored(ctx context.Context, id uuid.UUID) error {
	return r.client.InvoiceEmail.UpdateOneID(id).
		SetStatus(string(constants.EmailIgnored)).
		Exec(ctx)
}
