package server

import (
	"context"
	"log/slog"
	"strings"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/dedup"
	"github.com/daydreamers/ops-backend/internal/repository"
	"github.com/daydreamers/ops-backend/internal/utils"
)

type TransactionsService struct {
	opspb.UnimplementedTransactionsServiceServer
	transactions repository.TransactionRepository
	engine       *dedup.Engine
	logger       *slog.Logger
}

func NewTransactionsService(transactions repository.TransactionRepository, engine *dedup.Engine, logger *slog.Logger) *TransactionsService {
	return &TransactionsService{transactions: transactions, engine: engine, logger: logger}
}

func (s *TransactionsService) DedupeOrder(ctx context.Context, req *opspb.DedupeOrderRequest) (*opspb.DedupeOrderResponse, error) {
	orderID := strings.TrimSpace(req.GetOrderId())
	platform := strings.TrimSpace(req.GetPlatform())
	if orderID == "" || platform == "" {
		return nil, common.InvalidArgumentError("order_id and platform are required")
	}

	_, summary, err := s.engine.MergeDuplicates(ctx, orderID, platform)
	if err != nil {
		s.logger.Error("dedupe order failed", "order_id", orderID, "platform", platform, "error", err)
		return nil, common.InternalErrorf("dedupe order: %v", err)
	}
	return &opspb.DedupeOrderResponse{
		Matched: int32(summary.Matched),
		Merged:  int32(summary.Merged),
		Deleted: int32(summary.Deleted),
	}, nil
}

func (s *TransactionsService) DedupeSweep(ctx context.Context, req *opspb.DedupeSweepRequest) (*opspb.DedupeSweepResponse, error) {
	platform := strings.TrimSpace(req.GetPlatform())
	if platform == "" {
		return nil, common.InvalidArgumentError("platform is required")
	}

	summary, err := s.engine.Sweep(ctx, s.transactions, platform)
	if err != nil {
		s.logger.Error("dedupe sweep failed", "platform", platform, "error", err)
		return nil, common.InternalErrorf("dedupe sweep: %v", err)
	}
	return &opspb.DedupeSweepResponse{
		Processed: int32(summary.Processed),
		Collapsed: int32(summary.Collapsed),
		Deleted:   int32(summary.Deleted),
		Errored:   int32(summary.Errored),
	}, nil
}

func (s *TransactionsService) MergeManual(ctx context.Context, req *opspb.MergeManualRequest) (*opspb.MergeManualResponse, error) {
	id, err := utils.ParseUUID("transaction_id", req.GetTransactionId())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundErrorf("transaction %s: %v", id, err)
	}
	_, summary, err := s.engine.MergeManualDuplicates(ctx, tx)
	if err != nil {
		s.logger.Error("manual merge failed", "transaction_id", id, "error", err)
		return nil, common.InternalErrorf("merge manual: %v", err)
	}
	return &opspb.MergeManualResponse{
		Matched: int32(summary.Matched),
		Merged:  int32(summary.Merged),
		Deleted: int32(summary.Deleted),
	}, nil
}
