package utils

import (
	"time"

	"github.com/paydocs/billscan/gen/ent"
	billspb "github.com/paydocs/billscan/gen/proto/bills/v1"
	"github.com/paydocs/billscan/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

// ToBillDocument converts a persistence row into the transfer entity.
func ToBillDocument(d *ent.BillDocument) *entity.BillDocument {
	return &entity.BillDocument{
		ID:             d.ID,
		CompanyID:      d.CompanyID,
		SiteID:         d.SiteID,
		Vendor:         d.Vendor,
		BillType:       d.BillType,
		AmountDue:      d.AmountDue,
		DueDate:        d.DueDate,
		PeriodStart:    d.PeriodStart,
		PeriodEnd:      d.PeriodEnd,
		CustomerNumber: d.CustomerNumber,
		PaymentAccount: d.PaymentAccount,
		Status:         d.Status,
		Stage:          d.Stage,
		Track:          d.Track,
		Confidence:     d.Confidence,
		ErrorCode:      d.ErrorCode,
		ErrorMessage:   d.ErrorMessage,
		ExtractedJSON:  d.ExtractedJSON,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func ToCompany(c *ent.Company) *entity.Company {
	return &entity.Company{
		ID:              c.ID,
		Name:            c.Name,
		DefaultCurrency: c.DefaultCurrency,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToPBDocument converts the transfer entity into its wire shape.
func ToPBDocument(d *entity.BillDocument) *billspb.BillDocument {
	pb := &billspb.BillDocument{
		Id:             d.ID.String(),
		CompanyId:      d.CompanyID.String(),
		SiteId:         strOrEmpty(d.SiteID),
		Vendor:         strOrEmpty(d.Vendor),
		BillType:       strOrEmpty(d.BillType),
		DueDate:        dateOrEmpty(d.DueDate),
		PeriodStart:    dateOrEmpty(d.PeriodStart),
		PeriodEnd:      dateOrEmpty(d.PeriodEnd),
		CustomerNumber: strOrEmpty(d.CustomerNumber),
		PaymentAccount: strOrEmpty(d.PaymentAccount),
		Status:         d.Status,
		Stage:          d.Stage,
		Track:          strOrEmpty(d.Track),
		ErrorCode:      strOrEmpty(d.ErrorCode),
		ErrorMessage:   strOrEmpty(d.ErrorMessage),
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.AmountDue != nil {
		pb.AmountDue = d.AmountDue
	}
	if d.Confidence != nil {
		pb.Confidence = d.Confidence
	}
	return pb
}
