package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/constants"
	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/mapping"
	"github.com/daydreamers/ops-backend/internal/pipeline"
	"github.com/daydreamers/ops-backend/internal/repository"
	"github.com/daydreamers/ops-backend/internal/utils"
)

type PipelineService struct {
	opspb.UnimplementedPipelineServiceServer
	emails    repository.InvoiceEmailRepository
	processor *pipeline.Processor
	mappings  *mapping.Service
	logger    *slog.Logger
}

func NewPipelineService(
	emails repository.InvoiceEmailRepository,
	processor *pipeline.Processor,
	mappings *mapping.Service,
	logger *slog.Logger,
) *PipelineService {
	return &PipelineService{
		emails:    emails,
		processor: processor,
		mappings:  mappings,
		logger:    logger,
	}
}

func (s *PipelineService) IngestEmail(ctx context.Context, req *opspb.IngestEmailRequest) (*opspb.IngestEmailResponse, error) {
	if strings.TrimSpace(req.GetEmailId()) == "" {
		return nil, common.InvalidArgumentError("email_id is required")
	}
	date := time.Now().UTC()
	if d := strings.TrimSpace(req.GetDate()); d != "" {
		parsed, err := time.Parse(time.RFC3339, d)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("date invalid (RFC3339): %v", err)
		}
		date = parsed
	}

	email, err := s.emails.Ingest(ctx, &entity.InvoiceEmail{
		EmailID: req.GetEmailId(),
		Date:    date,
		Subject: req.GetSubject(),
		From:    req.GetFrom(),
		Body:    req.GetBody(),
	})
	if err != nil {
		s.logger.Error("failed to ingest email", "email_id", req.GetEmailId(), "error", err)
		return nil, common.InternalErrorf("ingest email: %v", err)
	}
	return &opspb.IngestEmailResponse{Id: email.ID.String(), Status: string(email.Status)}, nil
}

func (s *PipelineService) ProcessEmail(ctx context.Context, req *opspb.ProcessEmailRequest) (*opspb.ProcessEmailResponse, error) {
	id, err := utils.ParseUUID("id", req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	outcome, err := s.processor.ProcessInvoiceEmail(ctx, id, pipeline.Options{ForceAI: req.GetForceAi()})
	if err != nil {
		s.logger.Error("failed to process email", "id", id, "error", err)
		if errors.Is(err, pipeline.ErrNoSupplier) || errors.Is(err, pipeline.ErrNoTotal) {
			return nil, common.FailedPreconditionErrorf("process email: %v", err)
		}
		return nil, common.InternalErrorf("process email: %v", err)
	}

	resp := &opspb.ProcessEmailResponse{
		Supplier:  outcome.Supplier,
		UsedAi:    outcome.UsedAI,
		Total:     utils.FormatMoney(outcome.Total),
		Processed: int32(outcome.Processed),
		Skipped:   int32(outcome.Skipped),
		Errored:   int32(outcome.Errored),
	}
	if outcome.TransactionID != nil {
		resp.TransactionId = outcome.TransactionID.String()
	}
	for _, it := range outcome.Items {
		resp.Items = append(resp.Items, utils.ToPBItemOutcome(it))
	}
	return resp, nil
}

func (s *PipelineService) ProcessPending(ctx context.Context, req *opspb.ProcessPendingRequest) (*opspb.ProcessPendingResponse, error) {
	out, err := s.processor.ProcessPending(ctx, int(req.GetLimit()), pipeline.Options{ForceAI: req.GetForceAi()})
	if err != nil {
		s.logger.Error("failed to process pending emails", "error", err)
		return nil, common.InternalErrorf("process pending: %v", err)
	}
	return &opspb.ProcessPendingResponse{
		Emails:    int32(out.Emails),
		Processed: int32(out.Processed),
		Failed:    int32(out.Failed),
	}, nil
}

func (s *PipelineService) IgnoreEmail(ctx context.Context, req *opspb.IgnoreEmailRequest) (*opspb.IgnoreEmailResponse, error) {
	id, err := utils.ParseUUID("id", req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	email, err := s.emails.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundErrorf("email %s: %v", id, err)
	}
	if email.Status == constants.EmailProcessed {
		return nil, common.FailedPreconditionErrorf("email %s already processed", id)
	}
	if err := s.emails.MarkIgnored(ctx, id); err != nil {
		s.logger.Error("failed to ignore email", "id", id, "error", err)
		return nil, common.InternalErrorf("ignore email: %v", err)
	}
	return &opspb.IgnoreEmailResponse{Status: string(constants.EmailIgnored)}, nil
}

func (s *PipelineService) SuggestMappings(ctx context.Context, req *opspb.SuggestMappingsRequest) (*opspb.SuggestMappingsResponse, error) {
	mtype, err := parseMappingType(req.GetMappingType())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetSource()) == "" {
		return nil, common.InvalidArgumentError("source is required")
	}
	var supplierID *uuid.UUID
	if raw := strings.TrimSpace(req.GetSupplierId()); raw != "" {
		id, err := utils.ParseUUID("supplier_id", raw)
		if err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		supplierID = &id
	}

	suggestions, err := s.mappings.Suggest(ctx, mtype, req.GetSource(), supplierID)
	if err != nil {
		return nil, common.InternalErrorf("suggest mappings: %v", err)
	}
	out := make([]*opspb.MappingSuggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		out = append(out, utils.ToPBSuggestion(sg))
	}
	return &opspb.SuggestMappingsResponse{Suggestions: out}, nil
}

func (s *PipelineService) RecordMapping(ctx context.Context, req *opspb.RecordMappingRequest) (*opspb.RecordMappingResponse, error) {
	mtype, err := parseMappingType(req.GetMappingType())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetSource()) == "" || strings.TrimSpace(req.GetTarget()) == "" {
		return nil, common.InvalidArgumentError("source and target are required")
	}
	var targetID *uuid.UUID
	if raw := strings.TrimSpace(req.GetTargetId()); raw != "" {
		id, err := utils.ParseUUID("target_id", raw)
		if err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		targetID = &id
	}

	m, err := s.mappings.Record(ctx, mtype, req.GetSource(), req.GetTarget(), targetID, nil)
	if err != nil {
		s.logger.Error("failed to record mapping", "type", mtype, "source", req.GetSource(), "error", err)
		return nil, common.InternalErrorf("record mapping: %v", err)
	}
	return &opspb.RecordMappingResponse{
		Confidence: int32(m.Confidence),
		UsageCount: int32(m.UsageCount),
		Score:      int32(m.Score),
	}, nil
}

func parseMappingType(raw string) (constants.MappingType, error) {
	switch constants.MappingType(strings.TrimSpace(raw)) {
	case constants.MappingProduct:
		return constants.MappingProduct, nil
	case constants.MappingEmailSupplier:
		return constants.MappingEmailSupplier, nil
	case constants.MappingExcelColumn:
		return constants.MappingExcelColumn, nil
	default:
		return "", statusMappingTypeErr(raw)
	}
}

func statusMappingTypeErr(raw string) error {
	return common.InvalidArgumentErrorf(
		"mapping_type %q invalid (product | email_supplier | excel_column)", raw)
}
