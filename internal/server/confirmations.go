package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
	"github.com/paydocs/billscan/internal/confirm"
	"github.com/paydocs/billscan/internal/utils"
)

func (s *BillsServer) ConfirmDocument(ctx context.Context, req *billspb.ConfirmDocumentRequest) (*billspb.ConfirmDocumentResponse, error) {
	documentID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}

	doc, rejected, err := s.confirm.Confirm(ctx, documentID, companyID, confirm.Input{
		Vendor:         req.GetVendor(),
		BillType:       req.GetBillType(),
		AmountDue:      req.GetAmountDue(),
		DueDate:        req.GetDueDate(),
		PeriodStart:    req.GetPeriodStart(),
		PeriodEnd:      req.GetPeriodEnd(),
		CustomerNumber: req.GetCustomerNumber(),
		PaymentAccount: req.GetPaymentAccount(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &billspb.ConfirmDocumentResponse{
		Document:       utils.ToPBDocument(doc),
		RejectedFields: rejected,
	}, nil
}
