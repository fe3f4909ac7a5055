// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/gen/ent/predicate"
)

// BillDocumentUpdate is the builder for updating BillDocument entities.
type BillDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *BillDocumentMutation
}

// Where appends a list predicates to the BillDocumentUpdate builder.
func (_u *BillDocumentUpdate) Where(ps ...predicate.BillDocument) *BillDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *BillDocumentUpdate) SetSiteID(v string) *BillDocumentUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableSiteID(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *BillDocumentUpdate) ClearSiteID() *BillDocumentUpdate {
	_u.mutation.ClearSiteID()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillDocumentUpdate) SetVendor(v string) *BillDocumentUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableVendor(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *BillDocumentUpdate) ClearVendor() *BillDocumentUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// SetBillType sets the "bill_type" field.
func (_u *BillDocumentUpdate) SetBillType(v string) *BillDocumentUpdate {
	_u.mutation.SetBillType(v)
	return _u
}

// SetNillableBillType sets the "bill_type" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableBillType(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetBillType(*v)
	}
	return _u
}

// ClearBillType clears the value of the "bill_type" field.
func (_u *BillDocumentUpdate) ClearBillType() *BillDocumentUpdate {
	_u.mutation.ClearBillType()
	return _u
}

// SetAmountDue sets the "amount_due" field.
func (_u *BillDocumentUpdate) SetAmountDue(v int64) *BillDocumentUpdate {
	_u.mutation.ResetAmountDue()
	_u.mutation.SetAmountDue(v)
	return _u
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableAmountDue(v *int64) *BillDocumentUpdate {
	if v != nil {
		_u.SetAmountDue(*v)
	}
	return _u
}

// AddAmountDue adds value to the "amount_due" field.
func (_u *BillDocumentUpdate) AddAmountDue(v int64) *BillDocumentUpdate {
	_u.mutation.AddAmountDue(v)
	return _u
}

// ClearAmountDue clears the value of the "amount_due" field.
func (_u *BillDocumentUpdate) ClearAmountDue() *BillDocumentUpdate {
	_u.mutation.ClearAmountDue()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillDocumentUpdate) SetDueDate(v time.Time) *BillDocumentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableDueDate(v *time.Time) *BillDocumentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillDocumentUpdate) ClearDueDate() *BillDocumentUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *BillDocumentUpdate) SetPeriodStart(v time.Time) *BillDocumentUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillablePeriodStart(v *time.Time) *BillDocumentUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *BillDocumentUpdate) ClearPeriodStart() *BillDocumentUpdate {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *BillDocumentUpdate) SetPeriodEnd(v time.Time) *BillDocumentUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillablePeriodEnd(v *time.Time) *BillDocumentUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *BillDocumentUpdate) ClearPeriodEnd() *BillDocumentUpdate {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *BillDocumentUpdate) SetCustomerNumber(v string) *BillDocumentUpdate {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableCustomerNumber(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *BillDocumentUpdate) ClearCustomerNumber() *BillDocumentUpdate {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetPaymentAccount sets the "payment_account" field.
func (_u *BillDocumentUpdate) SetPaymentAccount(v string) *BillDocumentUpdate {
	_u.mutation.SetPaymentAccount(v)
	return _u
}

// SetNillablePaymentAccount sets the "payment_account" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillablePaymentAccount(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetPaymentAccount(*v)
	}
	return _u
}

// ClearPaymentAccount clears the value of the "payment_account" field.
func (_u *BillDocumentUpdate) ClearPaymentAccount() *BillDocumentUpdate {
	_u.mutation.ClearPaymentAccount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillDocumentUpdate) SetStatus(v string) *BillDocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableStatus(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *BillDocumentUpdate) SetStage(v string) *BillDocumentUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableStage(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *BillDocumentUpdate) SetTrack(v string) *BillDocumentUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableTrack(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// ClearTrack clears the value of the "track" field.
func (_u *BillDocumentUpdate) ClearTrack() *BillDocumentUpdate {
	_u.mutation.ClearTrack()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillDocumentUpdate) SetConfidence(v float32) *BillDocumentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableConfidence(v *float32) *BillDocumentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillDocumentUpdate) AddConfidence(v float32) *BillDocumentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *BillDocumentUpdate) ClearConfidence() *BillDocumentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *BillDocumentUpdate) SetErrorCode(v string) *BillDocumentUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableErrorCode(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *BillDocumentUpdate) ClearErrorCode() *BillDocumentUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BillDocumentUpdate) SetErrorMessage(v string) *BillDocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BillDocumentUpdate) SetNillableErrorMessage(v *string) *BillDocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BillDocumentUpdate) ClearErrorMessage() *BillDocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *BillDocumentUpdate) SetExtractedJSON(v json.RawMessage) *BillDocumentUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *BillDocumentUpdate) AppendExtractedJSON(v json.RawMessage) *BillDocumentUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *BillDocumentUpdate) ClearExtractedJSON() *BillDocumentUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillDocumentUpdate) SetUpdatedAt(v time.Time) *BillDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BillDocumentMutation object of the builder.
func (_u *BillDocumentUpdate) Mutation() *BillDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := billdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillDocumentUpdate) check() error {
	if v, ok := _u.mutation.BillType(); ok {
		if err := billdocument.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "BillDocument.bill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := billdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillDocument.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := billdocument.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "BillDocument.stage": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillDocument.company"`)
	}
	return nil
}

func (_u *BillDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billdocument.Table, billdocument.Columns, sqlgraph.NewFieldSpec(billdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(billdocument.FieldSiteID, field.TypeString, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(billdocument.FieldSiteID, field.TypeString)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(billdocument.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(billdocument.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.BillType(); ok {
		_spec.SetField(billdocument.FieldBillType, field.TypeString, value)
	}
	if _u.mutation.BillTypeCleared() {
		_spec.ClearField(billdocument.FieldBillType, field.TypeString)
	}
	if value, ok := _u.mutation.AmountDue(); ok {
		_spec.SetField(billdocument.FieldAmountDue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountDue(); ok {
		_spec.AddField(billdocument.FieldAmountDue, field.TypeInt64, value)
	}
	if _u.mutation.AmountDueCleared() {
		_spec.ClearField(billdocument.FieldAmountDue, field.TypeInt64)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(billdocument.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(billdocument.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(billdocument.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(billdocument.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(billdocument.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(billdocument.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(billdocument.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(billdocument.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentAccount(); ok {
		_spec.SetField(billdocument.FieldPaymentAccount, field.TypeString, value)
	}
	if _u.mutation.PaymentAccountCleared() {
		_spec.ClearField(billdocument.FieldPaymentAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(billdocument.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(billdocument.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(billdocument.FieldTrack, field.TypeString, value)
	}
	if _u.mutation.TrackCleared() {
		_spec.ClearField(billdocument.FieldTrack, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(billdocument.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(billdocument.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(billdocument.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(billdocument.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(billdocument.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(billdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(billdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(billdocument.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, billdocument.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(billdocument.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(billdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillDocumentUpdateOne is the builder for updating a single BillDocument entity.
type BillDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillDocumentMutation
}

// SetSiteID sets the "site_id" field.
func (_u *BillDocumentUpdateOne) SetSiteID(v string) *BillDocumentUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableSiteID(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// ClearSiteID clears the value of the "site_id" field.
func (_u *BillDocumentUpdateOne) ClearSiteID() *BillDocumentUpdateOne {
	_u.mutation.ClearSiteID()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *BillDocumentUpdateOne) SetVendor(v string) *BillDocumentUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableVendor(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *BillDocumentUpdateOne) ClearVendor() *BillDocumentUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// SetBillType sets the "bill_type" field.
func (_u *BillDocumentUpdateOne) SetBillType(v string) *BillDocumentUpdateOne {
	_u.mutation.SetBillType(v)
	return _u
}

// SetNillableBillType sets the "bill_type" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableBillType(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetBillType(*v)
	}
	return _u
}

// ClearBillType clears the value of the "bill_type" field.
func (_u *BillDocumentUpdateOne) ClearBillType() *BillDocumentUpdateOne {
	_u.mutation.ClearBillType()
	return _u
}

// SetAmountDue sets the "amount_due" field.
func (_u *BillDocumentUpdateOne) SetAmountDue(v int64) *BillDocumentUpdateOne {
	_u.mutation.ResetAmountDue()
	_u.mutation.SetAmountDue(v)
	return _u
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableAmountDue(v *int64) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetAmountDue(*v)
	}
	return _u
}

// AddAmountDue adds value to the "amount_due" field.
func (_u *BillDocumentUpdateOne) AddAmountDue(v int64) *BillDocumentUpdateOne {
	_u.mutation.AddAmountDue(v)
	return _u
}

// ClearAmountDue clears the value of the "amount_due" field.
func (_u *BillDocumentUpdateOne) ClearAmountDue() *BillDocumentUpdateOne {
	_u.mutation.ClearAmountDue()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillDocumentUpdateOne) SetDueDate(v time.Time) *BillDocumentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableDueDate(v *time.Time) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BillDocumentUpdateOne) ClearDueDate() *BillDocumentUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *BillDocumentUpdateOne) SetPeriodStart(v time.Time) *BillDocumentUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillablePeriodStart(v *time.Time) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// ClearPeriodStart clears the value of the "period_start" field.
func (_u *BillDocumentUpdateOne) ClearPeriodStart() *BillDocumentUpdateOne {
	_u.mutation.ClearPeriodStart()
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *BillDocumentUpdateOne) SetPeriodEnd(v time.Time) *BillDocumentUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillablePeriodEnd(v *time.Time) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (_u *BillDocumentUpdateOne) ClearPeriodEnd() *BillDocumentUpdateOne {
	_u.mutation.ClearPeriodEnd()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *BillDocumentUpdateOne) SetCustomerNumber(v string) *BillDocumentUpdateOne {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableCustomerNumber(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *BillDocumentUpdateOne) ClearCustomerNumber() *BillDocumentUpdateOne {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetPaymentAccount sets the "payment_account" field.
func (_u *BillDocumentUpdateOne) SetPaymentAccount(v string) *BillDocumentUpdateOne {
	_u.mutation.SetPaymentAccount(v)
	return _u
}

// SetNillablePaymentAccount sets the "payment_account" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillablePaymentAccount(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetPaymentAccount(*v)
	}
	return _u
}

// ClearPaymentAccount clears the value of the "payment_account" field.
func (_u *BillDocumentUpdateOne) ClearPaymentAccount() *BillDocumentUpdateOne {
	_u.mutation.ClearPaymentAccount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BillDocumentUpdateOne) SetStatus(v string) *BillDocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableStatus(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *BillDocumentUpdateOne) SetStage(v string) *BillDocumentUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableStage(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *BillDocumentUpdateOne) SetTrack(v string) *BillDocumentUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableTrack(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// ClearTrack clears the value of the "track" field.
func (_u *BillDocumentUpdateOne) ClearTrack() *BillDocumentUpdateOne {
	_u.mutation.ClearTrack()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BillDocumentUpdateOne) SetConfidence(v float32) *BillDocumentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableConfidence(v *float32) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BillDocumentUpdateOne) AddConfidence(v float32) *BillDocumentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *BillDocumentUpdateOne) ClearConfidence() *BillDocumentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *BillDocumentUpdateOne) SetErrorCode(v string) *BillDocumentUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableErrorCode(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *BillDocumentUpdateOne) ClearErrorCode() *BillDocumentUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BillDocumentUpdateOne) SetErrorMessage(v string) *BillDocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BillDocumentUpdateOne) SetNillableErrorMessage(v *string) *BillDocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BillDocumentUpdateOne) ClearErrorMessage() *BillDocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *BillDocumentUpdateOne) SetExtractedJSON(v json.RawMessage) *BillDocumentUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *BillDocumentUpdateOne) AppendExtractedJSON(v json.RawMessage) *BillDocumentUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *BillDocumentUpdateOne) ClearExtractedJSON() *BillDocumentUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillDocumentUpdateOne) SetUpdatedAt(v time.Time) *BillDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BillDocumentMutation object of the builder.
func (_u *BillDocumentUpdateOne) Mutation() *BillDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillDocumentUpdate builder.
func (_u *BillDocumentUpdateOne) Where(ps ...predicate.BillDocument) *BillDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillDocumentUpdateOne) Select(field string, fields ...string) *BillDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillDocument entity.
func (_u *BillDocumentUpdateOne) Save(ctx context.Context) (*BillDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillDocumentUpdateOne) SaveX(ctx context.Context) *BillDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := billdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.BillType(); ok {
		if err := billdocument.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "BillDocument.bill_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := billdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillDocument.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := billdocument.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "BillDocument.stage": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BillDocument.company"`)
	}
	return nil
}

func (_u *BillDocumentUpdateOne) sqlSave(ctx context.Context) (_node *BillDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billdocument.Table, billdocument.Columns, sqlgraph.NewFieldSpec(billdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billdocument.FieldID)
		for _, f := range fields {
			if !billdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SiteID(); ok {
		_spec.SetField(billdocument.FieldSiteID, field.TypeString, value)
	}
	if _u.mutation.SiteIDCleared() {
		_spec.ClearField(billdocument.FieldSiteID, field.TypeString)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(billdocument.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(billdocument.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.BillType(); ok {
		_spec.SetField(billdocument.FieldBillType, field.TypeString, value)
	}
	if _u.mutation.BillTypeCleared() {
		_spec.ClearField(billdocument.FieldBillType, field.TypeString)
	}
	if value, ok := _u.mutation.AmountDue(); ok {
		_spec.SetField(billdocument.FieldAmountDue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountDue(); ok {
		_spec.AddField(billdocument.FieldAmountDue, field.TypeInt64, value)
	}
	if _u.mutation.AmountDueCleared() {
		_spec.ClearField(billdocument.FieldAmountDue, field.TypeInt64)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(billdocument.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(billdocument.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(billdocument.FieldPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PeriodStartCleared() {
		_spec.ClearField(billdocument.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(billdocument.FieldPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PeriodEndCleared() {
		_spec.ClearField(billdocument.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(billdocument.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(billdocument.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentAccount(); ok {
		_spec.SetField(billdocument.FieldPaymentAccount, field.TypeString, value)
	}
	if _u.mutation.PaymentAccountCleared() {
		_spec.ClearField(billdocument.FieldPaymentAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(billdocument.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(billdocument.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(billdocument.FieldTrack, field.TypeString, value)
	}
	if _u.mutation.TrackCleared() {
		_spec.ClearField(billdocument.FieldTrack, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(billdocument.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(billdocument.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(billdocument.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(billdocument.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(billdocument.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(billdocument.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(billdocument.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(billdocument.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, billdocument.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(billdocument.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(billdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BillDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
