// Code generated by ent, DO NOT EDIT.

package billdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/paydocs/billscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCompanyID, v))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldSiteID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldVendor, v))
}

// BillType applies equality check predicate on the "bill_type" field. It's identical to BillTypeEQ.
func BillType(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldBillType, v))
}

// AmountDue applies equality check predicate on the "amount_due" field. It's identical to AmountDueEQ.
func AmountDue(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldAmountDue, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldDueDate, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPeriodEnd, v))
}

// CustomerNumber applies equality check predicate on the "customer_number" field. It's identical to CustomerNumberEQ.
func CustomerNumber(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCustomerNumber, v))
}

// PaymentAccount applies equality check predicate on the "payment_account" field. It's identical to PaymentAccountEQ.
func PaymentAccount(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPaymentAccount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldStatus, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldStage, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldTrack, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldConfidence, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldCompanyID, vs...))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDIsNil applies the IsNil predicate on the "site_id" field.
func SiteIDIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldSiteID))
}

// SiteIDNotNil applies the NotNil predicate on the "site_id" field.
func SiteIDNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldSiteID))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldSiteID, v))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorIsNil applies the IsNil predicate on the "vendor" field.
func VendorIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldVendor))
}

// VendorNotNil applies the NotNil predicate on the "vendor" field.
func VendorNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldVendor))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldVendor, v))
}

// BillTypeEQ applies the EQ predicate on the "bill_type" field.
func BillTypeEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldBillType, v))
}

// BillTypeNEQ applies the NEQ predicate on the "bill_type" field.
func BillTypeNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldBillType, v))
}

// BillTypeIn applies the In predicate on the "bill_type" field.
func BillTypeIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldBillType, vs...))
}

// BillTypeNotIn applies the NotIn predicate on the "bill_type" field.
func BillTypeNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldBillType, vs...))
}

// BillTypeGT applies the GT predicate on the "bill_type" field.
func BillTypeGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldBillType, v))
}

// BillTypeGTE applies the GTE predicate on the "bill_type" field.
func BillTypeGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldBillType, v))
}

// BillTypeLT applies the LT predicate on the "bill_type" field.
func BillTypeLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldBillType, v))
}

// BillTypeLTE applies the LTE predicate on the "bill_type" field.
func BillTypeLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldBillType, v))
}

// BillTypeContains applies the Contains predicate on the "bill_type" field.
func BillTypeContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldBillType, v))
}

// BillTypeHasPrefix applies the HasPrefix predicate on the "bill_type" field.
func BillTypeHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldBillType, v))
}

// BillTypeHasSuffix applies the HasSuffix predicate on the "bill_type" field.
func BillTypeHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldBillType, v))
}

// BillTypeIsNil applies the IsNil predicate on the "bill_type" field.
func BillTypeIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldBillType))
}

// BillTypeNotNil applies the NotNil predicate on the "bill_type" field.
func BillTypeNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldBillType))
}

// BillTypeEqualFold applies the EqualFold predicate on the "bill_type" field.
func BillTypeEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldBillType, v))
}

// BillTypeContainsFold applies the ContainsFold predicate on the "bill_type" field.
func BillTypeContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldBillType, v))
}

// AmountDueEQ applies the EQ predicate on the "amount_due" field.
func AmountDueEQ(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldAmountDue, v))
}

// AmountDueNEQ applies the NEQ predicate on the "amount_due" field.
func AmountDueNEQ(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldAmountDue, v))
}

// AmountDueIn applies the In predicate on the "amount_due" field.
func AmountDueIn(vs ...int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldAmountDue, vs...))
}

// AmountDueNotIn applies the NotIn predicate on the "amount_due" field.
func AmountDueNotIn(vs ...int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldAmountDue, vs...))
}

// AmountDueGT applies the GT predicate on the "amount_due" field.
func AmountDueGT(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldAmountDue, v))
}

// AmountDueGTE applies the GTE predicate on the "amount_due" field.
func AmountDueGTE(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldAmountDue, v))
}

// AmountDueLT applies the LT predicate on the "amount_due" field.
func AmountDueLT(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldAmountDue, v))
}

// AmountDueLTE applies the LTE predicate on the "amount_due" field.
func AmountDueLTE(v int64) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldAmountDue, v))
}

// AmountDueIsNil applies the IsNil predicate on the "amount_due" field.
func AmountDueIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldAmountDue))
}

// AmountDueNotNil applies the NotNil predicate on the "amount_due" field.
func AmountDueNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldAmountDue))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldDueDate))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodStartIsNil applies the IsNil predicate on the "period_start" field.
func PeriodStartIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldPeriodStart))
}

// PeriodStartNotNil applies the NotNil predicate on the "period_start" field.
func PeriodStartNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldPeriodStart))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldPeriodEnd, v))
}

// PeriodEndIsNil applies the IsNil predicate on the "period_end" field.
func PeriodEndIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldPeriodEnd))
}

// PeriodEndNotNil applies the NotNil predicate on the "period_end" field.
func PeriodEndNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldPeriodEnd))
}

// CustomerNumberEQ applies the EQ predicate on the "customer_number" field.
func CustomerNumberEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCustomerNumber, v))
}

// CustomerNumberNEQ applies the NEQ predicate on the "customer_number" field.
func CustomerNumberNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldCustomerNumber, v))
}

// CustomerNumberIn applies the In predicate on the "customer_number" field.
func CustomerNumberIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldCustomerNumber, vs...))
}

// CustomerNumberNotIn applies the NotIn predicate on the "customer_number" field.
func CustomerNumberNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldCustomerNumber, vs...))
}

// CustomerNumberGT applies the GT predicate on the "customer_number" field.
func CustomerNumberGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldCustomerNumber, v))
}

// CustomerNumberGTE applies the GTE predicate on the "customer_number" field.
func CustomerNumberGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldCustomerNumber, v))
}

// CustomerNumberLT applies the LT predicate on the "customer_number" field.
func CustomerNumberLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldCustomerNumber, v))
}

// CustomerNumberLTE applies the LTE predicate on the "customer_number" field.
func CustomerNumberLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldCustomerNumber, v))
}

// CustomerNumberContains applies the Contains predicate on the "customer_number" field.
func CustomerNumberContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldCustomerNumber, v))
}

// CustomerNumberHasPrefix applies the HasPrefix predicate on the "customer_number" field.
func CustomerNumberHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldCustomerNumber, v))
}

// CustomerNumberHasSuffix applies the HasSuffix predicate on the "customer_number" field.
func CustomerNumberHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldCustomerNumber, v))
}

// CustomerNumberIsNil applies the IsNil predicate on the "customer_number" field.
func CustomerNumberIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldCustomerNumber))
}

// CustomerNumberNotNil applies the NotNil predicate on the "customer_number" field.
func CustomerNumberNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldCustomerNumber))
}

// CustomerNumberEqualFold applies the EqualFold predicate on the "customer_number" field.
func CustomerNumberEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldCustomerNumber, v))
}

// CustomerNumberContainsFold applies the ContainsFold predicate on the "customer_number" field.
func CustomerNumberContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldCustomerNumber, v))
}

// PaymentAccountEQ applies the EQ predicate on the "payment_account" field.
func PaymentAccountEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldPaymentAccount, v))
}

// PaymentAccountNEQ applies the NEQ predicate on the "payment_account" field.
func PaymentAccountNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldPaymentAccount, v))
}

// PaymentAccountIn applies the In predicate on the "payment_account" field.
func PaymentAccountIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldPaymentAccount, vs...))
}

// PaymentAccountNotIn applies the NotIn predicate on the "payment_account" field.
func PaymentAccountNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldPaymentAccount, vs...))
}

// PaymentAccountGT applies the GT predicate on the "payment_account" field.
func PaymentAccountGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldPaymentAccount, v))
}

// PaymentAccountGTE applies the GTE predicate on the "payment_account" field.
func PaymentAccountGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldPaymentAccount, v))
}

// PaymentAccountLT applies the LT predicate on the "payment_account" field.
func PaymentAccountLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldPaymentAccount, v))
}

// PaymentAccountLTE applies the LTE predicate on the "payment_account" field.
func PaymentAccountLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldPaymentAccount, v))
}

// PaymentAccountContains applies the Contains predicate on the "payment_account" field.
func PaymentAccountContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldPaymentAccount, v))
}

// PaymentAccountHasPrefix applies the HasPrefix predicate on the "payment_account" field.
func PaymentAccountHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldPaymentAccount, v))
}

// PaymentAccountHasSuffix applies the HasSuffix predicate on the "payment_account" field.
func PaymentAccountHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldPaymentAccount, v))
}

// PaymentAccountIsNil applies the IsNil predicate on the "payment_account" field.
func PaymentAccountIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldPaymentAccount))
}

// PaymentAccountNotNil applies the NotNil predicate on the "payment_account" field.
func PaymentAccountNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldPaymentAccount))
}

// PaymentAccountEqualFold applies the EqualFold predicate on the "payment_account" field.
func PaymentAccountEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldPaymentAccount, v))
}

// PaymentAccountContainsFold applies the ContainsFold predicate on the "payment_account" field.
func PaymentAccountContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldPaymentAccount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldStatus, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldStage, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackIsNil applies the IsNil predicate on the "track" field.
func TrackIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldTrack))
}

// TrackNotNil applies the NotNil predicate on the "track" field.
func TrackNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldTrack))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldTrack, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldConfidence))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotNull(FieldExtractedJSON))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BillDocument {
	return predicate.BillDocument(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.BillDocument {
	return predicate.BillDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.BillDocument {
	return predicate.BillDocument(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillDocument) predicate.BillDocument {
	return predicate.BillDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillDocument) predicate.BillDocument {
	return predicate.BillDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillDocument) predicate.BillDocument {
	return predicate.BillDocument(sql.NotPredicates(p))
}
