package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	opspb "github.com/daydreamers/ops-backend/gen/proto/ops/v1"
	"github.com/daydreamers/ops-backend/internal/common"
	"github.com/daydreamers/ops-backend/internal/export"
	"github.com/daydreamers/ops-backend/internal/importer"
	"github.com/daydreamers/ops-backend/internal/utils"
)

type ExportService struct {
	opspb.UnimplementedExportServiceServer
	exports  *export.Service
	importer *importer.Importer
	logger   *slog.Logger
}

func NewExportService(exports *export.Service, imp *importer.Importer, logger *slog.Logger) *ExportService {
	return &ExportService{exports: exports, importer: imp, logger: logger}
}

func (s *ExportService) ExportLedger(ctx context.Context, req *opspb.ExportLedgerRequest) (*opspb.ExportLedgerResponse, error) {
	var from, to *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}

	data, err := s.exports.ExportLedgerXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("ledger export failed", "error", err)
		return nil, common.InternalErrorf("export ledger: %v", err)
	}
	return &opspb.ExportLedgerResponse{Xlsx: data}, nil
}

func (s *ExportService) ExportInventory(ctx context.Context, _ *opspb.ExportInventoryRequest) (*opspb.ExportInventoryResponse, error) {
	data, err := s.exports.ExportInventoryXLSX(ctx)
	if err != nil {
		s.logger.Error("inventory export failed", "error", err)
		return nil, common.InternalErrorf("export inventory: %v", err)
	}
	return &opspb.ExportInventoryResponse{Xlsx: data}, nil
}

func (s *ExportService) ImportWorkbook(ctx context.Context, req *opspb.ImportWorkbookRequest) (*opspb.ImportWorkbookResponse, error) {
	if len(req.GetXlsx()) == 0 {
		return nil, common.InvalidArgumentError("xlsx payload is required")
	}

	summary, err := s.importer.ImportWorkbook(ctx, req.GetXlsx())
	if err != nil {
		s.logger.Error("workbook import failed", "error", err)
		return nil, common.InvalidArgumentErrorf("import workbook: %v", err)
	}

	resp := &opspb.ImportWorkbookResponse{
		Rows:      int32(summary.Rows),
		Matched:   int32(summary.Matched),
		Suggested: int32(summary.Suggested),
		Unmatched: int32(summary.Unmatched),
		Errored:   int32(summary.Errored),
	}
	for _, r := range summary.Results {
		row := &opspb.ImportRow{
			Row:      int32(r.Row),
			RawName:  r.RawName,
			Sku:      r.SKU,
			Quantity: int32(r.Quantity),
			Status:   r.Status,
			Reason:   r.Reason,
		}
		if r.Product != nil {
			row.ProductId = r.Product.ID.String()
		}
		for _, sg := range r.Suggestions {
			row.Suggestions = append(row.Suggestions, utils.ToPBSuggestion(sg))
		}
		resp.Results = append(resp.Results, row)
	}
	return resp, nil
}
