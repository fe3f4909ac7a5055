package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BillDocument carries document state between layers without binding
// callers to the generated persistence types.
type BillDocument struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	SiteID    *string   `json:"site_id,omitempty"`

	Vendor   *string `json:"vendor,omitempty"`
	BillType *string `json:"bill_type,omitempty"`

	AmountDue      *int64     `json:"amount_due,omitempty"` // minor units
	DueDate        *time.Time `json:"due_date,omitempty"`
	PeriodStart    *time.Time `json:"period_start,omitempty"`
	PeriodEnd      *time.Time `json:"period_end,omitempty"`
	CustomerNumber *string    `json:"customer_number,omitempty"`
	PaymentAccount *string    `json:"payment_account,omitempty"`

	Status string  `json:"status"`
	Stage  string  `json:"stage"`
	Track  *string `json:"track,omitempty"`

	Confidence   *float32 `json:"confidence,omitempty"`
	ErrorCode    *string  `json:"error_code,omitempty"`
	ErrorMessage *string  `json:"error_message,omitempty"`

	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
