package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paydocs/billscan/internal/repository"
)

// Service is a tiny façade over the document repository that produces
// XLSX bytes for confirmed-bill exports.
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

// ExportBillsXLSX returns an XLSX workbook (as bytes) containing the
// company's confirmed bills in the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all confirmed bills for the company.
func (s *Service) ExportBillsXLSX(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	bills, err := s.docs.ListConfirmed(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query confirmed bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Due Date",
		"Vendor",
		"Bill Type",
		"Amount Due",
		"Billing Period Start",
		"Billing Period End",
		"Customer Number",
		"Payment Account",
		"Track",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if b.DueDate != nil {
			write(1, b.DueDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, strOr(b.Vendor, "—"))
		write(3, strOr(b.BillType, ""))
		if b.AmountDue != nil {
			write(4, *b.AmountDue)
		} else {
			write(4, "")
		}
		if b.PeriodStart != nil {
			write(5, b.PeriodStart.Format("2006-01-02"))
		}
		if b.PeriodEnd != nil {
			write(6, b.PeriodEnd.Format("2006-01-02"))
		}
		write(7, strOr(b.CustomerNumber, ""))
		write(8, strOr(b.PaymentAccount, ""))
		write(9, strOr(b.Track, ""))
		if b.Confidence != nil {
			write(10, fmt.Sprintf("%.2f", *b.Confidence))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // due date
	_ = f.SetColWidth(sheet, "B", "B", 28) // vendor
	_ = f.SetColWidth(sheet, "C", "C", 16) // type
	_ = f.SetColWidth(sheet, "D", "D", 14) // amount
	_ = f.SetColWidth(sheet, "E", "F", 16) // period
	_ = f.SetColWidth(sheet, "G", "H", 24) // identifiers
	_ = f.SetColWidth(sheet, "I", "J", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.bills.done",
		"company_id", companyID,
		"rows", len(bills),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
