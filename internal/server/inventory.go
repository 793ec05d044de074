package server

import (
	"context"
	"log/slog"
	"strings"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/inventory"
	"github.com/daydreamers/ops-backend/internal/utils"
)

type InventoryService struct {
	opspb.UnimplementedInventoryServiceServer
	reconciler *inventory.Reconciler
	logger     *slog.Logger
}

func NewInventoryService(reconciler *inventory.Reconciler, logger *slog.Logger) *InventoryService {
	return &InventoryService{reconciler: reconciler, logger: logger}
}

func (s *InventoryService) AuditProduct(ctx context.Context, req *opspb.AuditProductRequest) (*opspb.AuditProductResponse, error) {
	id, err := utils.ParseUUID("product_id", req.GetProductId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	audit, err := s.reconciler.CalculateFromHistory(ctx, id)
	if err != nil {
		s.logger.Error("audit product failed", "product_id", id, "error", err)
		return nil, common.InternalErrorf("audit product: %v", err)
	}
	return &opspb.AuditProductResponse{Audit: utils.ToPBAudit(audit)}, nil
}

func (s *InventoryService) AuditInventory(ctx context.Context, _ *opspb.AuditInventoryRequest) (*opspb.AuditInventoryResponse, error) {
	audits, errored, err := s.reconciler.AuditAll(ctx)
	if err != nil {
		s.logger.Error("inventory audit failed", "error", err)
		return nil, common.InternalErrorf("audit inventory: %v", err)
	}
	out := make([]*opspb.InventoryAudit, 0, len(audits))
	for _, a := range audits {
		out = append(out, utils.ToPBAudit(a))
	}
	return &opspb.AuditInventoryResponse{Audits: out, Errored: int32(errored)}, nil
}

func (s *InventoryService) UpdateToCalculated(ctx context.Context, req *opspb.UpdateToCalculatedRequest) (*opspb.UpdateToCalculatedResponse, error) {
	id, err := utils.ParseUUID("product_id", req.GetProductId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	audit, err := s.reconciler.UpdateToCalculated(ctx, id)
	if err != nil {
		s.logger.Error("update to calculated failed", "product_id", id, "error", err)
		return nil, common.InternalErrorf("update to calculated: %v", err)
	}
	return &opspb.UpdateToCalculatedResponse{Audit: utils.ToPBAudit(audit)}, nil
}

func (s *InventoryService) CreateAdjustment(ctx context.Context, req *opspb.CreateAdjustmentRequest) (*opspb.CreateAdjustmentResponse, error) {
	id, err := utils.ParseUUID("product_id", req.GetProductId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	if req.GetDelta() == 0 {
		return nil, common.InvalidArgumentError("delta must be non-zero")
	}
	reason := strings.TrimSpace(req.GetReason())
	if reason == "" {
		return nil, common.InvalidArgumentError("reason is required")
	}

	change, err := s.reconciler.CreateManualAdjustment(ctx, id, int(req.GetDelta()), reason)
	if err != nil {
		s.logger.Error("create adjustment failed", "product_id", id, "error", err)
		return nil, common.InternalErrorf("create adjustment: %v", err)
	}
	return &opspb.CreateAdjustmentResponse{ChangeId: change.ID.String()}, nil
}
