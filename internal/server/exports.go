package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
)

func (s *BillsServer) ExportBills(ctx context.Context, req *billspb.ExportBillsRequest) (*billspb.ExportBillsResponse, error) {
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportBillsXLSX(ctx, companyID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "company_id", companyID, "error", err)
		return nil, toStatus(err)
	}

	filename := fmt.Sprintf("bills_%s_%s.xlsx", companyID, time.Now().UTC().Format("20060102"))
	return &billspb.ExportBillsResponse{Xlsx: xlsx, Filename: filename}, nil
}
