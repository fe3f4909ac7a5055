package confirm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository"
)

// Input carries the free-form correction fields as submitted. Empty
// strings mean "leave the stored value alone".
type Input struct {
	Vendor         string
	BillType       string
	AmountDue      string
	DueDate        string
	PeriodStart    string
	PeriodEnd      string
	CustomerNumber string
	PaymentAccount string
}

// Service applies human confirmations to a document.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// Confirm normalizes the submitted fields, writes the valid ones and
// sets the document CONFIRMED. Unparseable fields are dropped from the
// patch and reported back; they never corrupt the stored record.
func (s *Service) Confirm(ctx context.Context, documentID, callerID uuid.UUID, in Input) (*entity.BillDocument, []string, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, common.WrapError(err, "load document")
	}
	if doc.CompanyID != callerID {
		return nil, nil, common.ErrUnauthorized
	}

	var patch repository.FieldPatch
	var rejected []string

	if v := strings.TrimSpace(in.Vendor); v != "" {
		patch.Vendor = &v
	}
	if v := strings.TrimSpace(in.BillType); v != "" {
		if t, ok := constants.CanonicalBillType(v); ok {
			ts := string(t)
			patch.BillType = &ts
		} else {
			rejected = append(rejected, "bill_type")
		}
	}
	if in.AmountDue != "" {
		if amt, err := ParseAmount(in.AmountDue); err == nil && amt >= 0 {
			patch.AmountDue = &amt
		} else {
			s.logger.Warn("confirm.amount_rejected", "document_id", documentID, "value", in.AmountDue)
			rejected = append(rejected, "amount_due")
		}
	}
	if in.DueDate != "" {
		if d, err := ParseDate(in.DueDate); err == nil {
			patch.DueDate = &d
		} else {
			s.logger.Warn("confirm.date_rejected", "document_id", documentID, "field", "due_date", "error", err)
			rejected = append(rejected, "due_date")
		}
	}
	if in.PeriodStart != "" {
		if d, err := ParseDate(in.PeriodStart); err == nil {
			patch.PeriodStart = &d
		} else {
			rejected = append(rejected, "period_start")
		}
	}
	if in.PeriodEnd != "" {
		if d, err := ParseDate(in.PeriodEnd); err == nil {
			patch.PeriodEnd = &d
		} else {
			rejected = append(rejected, "period_end")
		}
	}
	if v := strings.TrimSpace(in.CustomerNumber); v != "" {
		patch.CustomerNumber = &v
	}
	if v := strings.TrimSpace(in.PaymentAccount); v != "" {
		patch.PaymentAccount = &v
	}

	updated, err := s.docs.ApplyConfirmation(ctx, documentID, patch)
	if err != nil {
		return nil, rejected, common.WrapError(err, "apply confirmation")
	}
	s.logger.Info("confirm.applied",
		"document_id", documentID,
		"rejected_fields", len(rejected),
	)
	return updated, rejected, nil
}
