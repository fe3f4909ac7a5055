// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/gen/ent/company"
)

// BillDocument is the model entity for the BillDocument schema.
type BillDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID *string `json:"site_id,omitempty"`
	// Vendor holds the value of the "vendor" field.
	Vendor *string `json:"vendor,omitempty"`
	// BillType holds the value of the "bill_type" field.
	BillType *string `json:"bill_type,omitempty"`
	// AmountDue holds the value of the "amount_due" field.
	AmountDue *int64 `json:"amount_due,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart *time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd *time.Time `json:"period_end,omitempty"`
	// CustomerNumber holds the value of the "customer_number" field.
	CustomerNumber *string `json:"customer_number,omitempty"`
	// PaymentAccount holds the value of the "payment_account" field.
	PaymentAccount *string `json:"payment_account,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// Track holds the value of the "track" field.
	Track *string `json:"track,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillDocumentQuery when eager-loading is set.
	Edges        BillDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillDocumentEdges holds the relations/edges for other nodes in the graph.
type BillDocumentEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BillDocumentEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billdocument.FieldExtractedJSON:
			values[i] = new([]byte)
		case billdocument.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case billdocument.FieldAmountDue:
			values[i] = new(sql.NullInt64)
		case billdocument.FieldSiteID, billdocument.FieldVendor, billdocument.FieldBillType, billdocument.FieldCustomerNumber, billdocument.FieldPaymentAccount, billdocument.FieldStatus, billdocument.FieldStage, billdocument.FieldTrack, billdocument.FieldErrorCode, billdocument.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case billdocument.FieldDueDate, billdocument.FieldPeriodStart, billdocument.FieldPeriodEnd, billdocument.FieldCreatedAt, billdocument.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case billdocument.FieldID, billdocument.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillDocument fields.
func (_m *BillDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billdocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case billdocument.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case billdocument.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = new(string)
				*_m.SiteID = value.String
			}
		case billdocument.FieldVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor", values[i])
			} else if value.Valid {
				_m.Vendor = new(string)
				*_m.Vendor = value.String
			}
		case billdocument.FieldBillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_type", values[i])
			} else if value.Valid {
				_m.BillType = new(string)
				*_m.BillType = value.String
			}
		case billdocument.FieldAmountDue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_due", values[i])
			} else if value.Valid {
				_m.AmountDue = new(int64)
				*_m.AmountDue = value.Int64
			}
		case billdocument.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case billdocument.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = new(time.Time)
				*_m.PeriodStart = value.Time
			}
		case billdocument.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = new(time.Time)
				*_m.PeriodEnd = value.Time
			}
		case billdocument.FieldCustomerNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_number", values[i])
			} else if value.Valid {
				_m.CustomerNumber = new(string)
				*_m.CustomerNumber = value.String
			}
		case billdocument.FieldPaymentAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_account", values[i])
			} else if value.Valid {
				_m.PaymentAccount = new(string)
				*_m.PaymentAccount = value.String
			}
		case billdocument.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case billdocument.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case billdocument.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = new(string)
				*_m.Track = value.String
			}
		case billdocument.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case billdocument.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case billdocument.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case billdocument.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case billdocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case billdocument.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillDocument.
// This includes values selected through modifiers, order, etc.
func (_m *BillDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the BillDocument entity.
func (_m *BillDocument) QueryCompany() *CompanyQuery {
	return NewBillDocumentClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this BillDocument.
// Note that you need to call BillDocument.Unwrap() before calling this method if this BillDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillDocument) Update() *BillDocumentUpdateOne {
	return NewBillDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillDocument) Unwrap() *BillDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillDocument) String() string {
	var builder strings.Builder
	builder.WriteString("BillDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	if v := _m.SiteID; v != nil {
		builder.WriteString("site_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Vendor; v != nil {
		builder.WriteString("vendor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BillType; v != nil {
		builder.WriteString("bill_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AmountDue; v != nil {
		builder.WriteString("amount_due=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PeriodStart; v != nil {
		builder.WriteString("period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PeriodEnd; v != nil {
		builder.WriteString("period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CustomerNumber; v != nil {
		builder.WriteString("customer_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentAccount; v != nil {
		builder.WriteString("payment_account=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	if v := _m.Track; v != nil {
		builder.WriteString("track=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillDocuments is a parsable slice of BillDocument.
type BillDocuments []*BillDocument
