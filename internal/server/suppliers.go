package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/entity"
	"github.com/daydreamers/ops-backend/internal/repository"
	"github.com/daydreamers/ops-backend/internal/utils"
)

type SuppliersService struct {
	opspb.UnimplementedSuppliersServiceServer
	suppliers repository.SupplierRepository
	logger    *slog.Logger
}

func NewSuppliersService(suppliers repository.SupplierRepository, logger *slog.Logger) *SuppliersService {
	return &SuppliersService{suppliers: suppliers, logger: logger}
}

func (s *SuppliersService) CreateSupplier(ctx context.Context, req *opspb.CreateSupplierRequest) (*opspb.CreateSupplierResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	var cfg entity.EmailParsingConfig
	if raw := strings.TrimSpace(req.GetParsingConfigJson()); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			s.logger.Error("invalid parsing config", "name", name, "error", err)
			return nil, common.InvalidArgumentErrorf("parsing_config_json invalid: %v", err)
		}
	}

	created, err := s.suppliers.Create(ctx, &entity.Supplier{
		Name:           name,
		Aliases:        req.GetAliases(),
		InvoiceEmail:   req.GetInvoiceEmail(),
		InvoiceSubject: req.GetInvoiceSubject(),
		SKUPrefix:      req.GetSkuPrefix(),
		ParsingConfig:  cfg,
	})
	if err != nil {
		s.logger.Error("failed to create supplier", "name", name, "error", err)
		return nil, common.InternalErrorf("create supplier: %v", err)
	}
	return &opspb.CreateSupplierResponse{Supplier: utils.ToPBSupplier(created)}, nil
}

func (s *SuppliersService) ListSuppliers(ctx context.Context, _ *opspb.ListSuppliersRequest) (*opspb.ListSuppliersResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list suppliers: %v", err)
	}
	out := make([]*opspb.Supplier, 0, len(suppliers))
	for _, sup := range suppliers {
		out = append(out, utils.ToPBSupplier(sup))
	}
	return &opspb.ListSuppliersResponse{Suppliers: out}, nil
}

func (s *SuppliersService) UpdateParsingConfig(ctx context.Context, req *opspb.UpdateParsingConfigRequest) (*opspb.UpdateParsingConfigResponse, error) {
	id, err := utils.ParseUUID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	var cfg entity.EmailParsingConfig
	if err := json.Unmarshal([]byte(req.GetParsingConfigJson()), &cfg); err != nil {
		return nil, common.InvalidArgumentErrorf("parsing_config_json invalid: %v", err)
	}

	if err := s.suppliers.UpdateParsingConfig(ctx, id, cfg); err != nil {
		s.logger.Error("failed to update parsing config", "supplier_id", id, "error", err)
		return nil, common.InternalErrorf("update parsing config: %v", err)
	}
	updated, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("reload supplier: %v", err)
	}
	s.logger.Info("parsing config updated", "supplier_id", id)
	return &opspb.UpdateParsingConfigResponse{Supplier: utils.ToPBSupplier(updated)}, nil
}

func (s *SuppliersService) AddTrainingSample(ctx context.Context, req *opspb.AddTrainingSampleRequest) (*opspb.AddTrainingSampleResponse, error) {
	id, err := utils.ParseUUID("supplier_id", req.GetSupplierId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	if strings.TrimSpace(req.GetPrompt()) == "" || strings.TrimSpace(req.GetResultJson()) == "" {
		return nil, common.InvalidArgumentError("prompt and result_json are required")
	}
	if !json.Valid([]byte(req.GetResultJson())) {
		return nil, common.InvalidArgumentError("result_json must be valid JSON")
	}

	err = s.suppliers.PushTrainingSample(ctx, id, entity.TrainingSample{
		Prompt: req.GetPrompt(),
		Result: req.GetResultJson(),
		Added:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to store training sample", "supplier_id", id, "error", err)
		return nil, common.InternalErrorf("store training sample: %v", err)
	}
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("reload supplier: %v", err)
	}
	return &opspb.AddTrainingSampleResponse{TrainingSamples: int32(len(sup.TrainingSamples))}, nil
}
