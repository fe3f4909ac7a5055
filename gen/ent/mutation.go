// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/gen/ent/company"
	"github.com/paydocs/billscan/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBillDocument = "BillDocument"
	TypeCompany      = "Company"
)

// BillDocumentMutation represents an operation that mutates the BillDocument nodes in the graph.
type BillDocumentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	site_id              *string
	vendor               *string
	bill_type            *string
	amount_due           *int64
	addamount_due        *int64
	due_date             *time.Time
	period_start         *time.Time
	period_end           *time.Time
	customer_number      *string
	payment_account      *string
	status               *string
	stage                *string
	track                *string
	confidence           *float32
	addconfidence        *float32
	error_code           *string
	error_message        *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	company              *uuid.UUID
	clearedcompany       bool
	done                 bool
	oldValue             func(context.Context) (*BillDocument, error)
	predicates           []predicate.BillDocument
}

var _ ent.Mutation = (*BillDocumentMutation)(nil)

// billdocumentOption allows management of the mutation configuration using functional options.
type billdocumentOption func(*BillDocumentMutation)

// newBillDocumentMutation creates new mutation for the BillDocument entity.
func newBillDocumentMutation(c config, op Op, opts ...billdocumentOption) *BillDocumentMutation {
	m := &BillDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeBillDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillDocumentID sets the ID field of the mutation.
func withBillDocumentID(id uuid.UUID) billdocumentOption {
	return func(m *BillDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *BillDocument
		)
		m.oldValue = func(ctx context.Context) (*BillDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillDocument sets the old BillDocument of the mutation.
func withBillDocument(node *BillDocument) billdocumentOption {
	return func(m *BillDocumentMutation) {
		m.oldValue = func(context.Context) (*BillDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BillDocument entities.
func (m *BillDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *BillDocumentMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BillDocumentMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BillDocumentMutation) ResetCompanyID() {
	m.company = nil
}

// SetSiteID sets the "site_id" field.
func (m *BillDocumentMutation) SetSiteID(s string) {
	m.site_id = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *BillDocumentMutation) SiteID() (r string, exists bool) {
	v := m.site_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldSiteID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ClearSiteID clears the value of the "site_id" field.
func (m *BillDocumentMutation) ClearSiteID() {
	m.site_id = nil
	m.clearedFields[billdocument.FieldSiteID] = struct{}{}
}

// SiteIDCleared returns if the "site_id" field was cleared in this mutation.
func (m *BillDocumentMutation) SiteIDCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldSiteID]
	return ok
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *BillDocumentMutation) ResetSiteID() {
	m.site_id = nil
	delete(m.clearedFields, billdocument.FieldSiteID)
}

// SetVendor sets the "vendor" field.
func (m *BillDocumentMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *BillDocumentMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldVendor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ClearVendor clears the value of the "vendor" field.
func (m *BillDocumentMutation) ClearVendor() {
	m.vendor = nil
	m.clearedFields[billdocument.FieldVendor] = struct{}{}
}

// VendorCleared returns if the "vendor" field was cleared in this mutation.
func (m *BillDocumentMutation) VendorCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldVendor]
	return ok
}

// ResetVendor resets all changes to the "vendor" field.
func (m *BillDocumentMutation) ResetVendor() {
	m.vendor = nil
	delete(m.clearedFields, billdocument.FieldVendor)
}

// SetBillType sets the "bill_type" field.
func (m *BillDocumentMutation) SetBillType(s string) {
	m.bill_type = &s
}

// BillType returns the value of the "bill_type" field in the mutation.
func (m *BillDocumentMutation) BillType() (r string, exists bool) {
	v := m.bill_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBillType returns the old "bill_type" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldBillType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillType: %w", err)
	}
	return oldValue.BillType, nil
}

// ClearBillType clears the value of the "bill_type" field.
func (m *BillDocumentMutation) ClearBillType() {
	m.bill_type = nil
	m.clearedFields[billdocument.FieldBillType] = struct{}{}
}

// BillTypeCleared returns if the "bill_type" field was cleared in this mutation.
func (m *BillDocumentMutation) BillTypeCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldBillType]
	return ok
}

// ResetBillType resets all changes to the "bill_type" field.
func (m *BillDocumentMutation) ResetBillType() {
	m.bill_type = nil
	delete(m.clearedFields, billdocument.FieldBillType)
}

// SetAmountDue sets the "amount_due" field.
func (m *BillDocumentMutation) SetAmountDue(i int64) {
	m.amount_due = &i
	m.addamount_due = nil
}

// AmountDue returns the value of the "amount_due" field in the mutation.
func (m *BillDocumentMutation) AmountDue() (r int64, exists bool) {
	v := m.amount_due
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountDue returns the old "amount_due" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldAmountDue(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountDue: %w", err)
	}
	return oldValue.AmountDue, nil
}

// AddAmountDue adds i to the "amount_due" field.
func (m *BillDocumentMutation) AddAmountDue(i int64) {
	if m.addamount_due != nil {
		*m.addamount_due += i
	} else {
		m.addamount_due = &i
	}
}

// AddedAmountDue returns the value that was added to the "amount_due" field in this mutation.
func (m *BillDocumentMutation) AddedAmountDue() (r int64, exists bool) {
	v := m.addamount_due
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountDue clears the value of the "amount_due" field.
func (m *BillDocumentMutation) ClearAmountDue() {
	m.amount_due = nil
	m.addamount_due = nil
	m.clearedFields[billdocument.FieldAmountDue] = struct{}{}
}

// AmountDueCleared returns if the "amount_due" field was cleared in this mutation.
func (m *BillDocumentMutation) AmountDueCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldAmountDue]
	return ok
}

// ResetAmountDue resets all changes to the "amount_due" field.
func (m *BillDocumentMutation) ResetAmountDue() {
	m.amount_due = nil
	m.addamount_due = nil
	delete(m.clearedFields, billdocument.FieldAmountDue)
}

// SetDueDate sets the "due_date" field.
func (m *BillDocumentMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *BillDocumentMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *BillDocumentMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[billdocument.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *BillDocumentMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *BillDocumentMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, billdocument.FieldDueDate)
}

// SetPeriodStart sets the "period_start" field.
func (m *BillDocumentMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *BillDocumentMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *BillDocumentMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[billdocument.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *BillDocumentMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *BillDocumentMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, billdocument.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *BillDocumentMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *BillDocumentMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *BillDocumentMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[billdocument.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *BillDocumentMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *BillDocumentMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, billdocument.FieldPeriodEnd)
}

// SetCustomerNumber sets the "customer_number" field.
func (m *BillDocumentMutation) SetCustomerNumber(s string) {
	m.customer_number = &s
}

// CustomerNumber returns the value of the "customer_number" field in the mutation.
func (m *BillDocumentMutation) CustomerNumber() (r string, exists bool) {
	v := m.customer_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerNumber returns the old "customer_number" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldCustomerNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerNumber: %w", err)
	}
	return oldValue.CustomerNumber, nil
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (m *BillDocumentMutation) ClearCustomerNumber() {
	m.customer_number = nil
	m.clearedFields[billdocument.FieldCustomerNumber] = struct{}{}
}

// CustomerNumberCleared returns if the "customer_number" field was cleared in this mutation.
func (m *BillDocumentMutation) CustomerNumberCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldCustomerNumber]
	return ok
}

// ResetCustomerNumber resets all changes to the "customer_number" field.
func (m *BillDocumentMutation) ResetCustomerNumber() {
	m.customer_number = nil
	delete(m.clearedFields, billdocument.FieldCustomerNumber)
}

// SetPaymentAccount sets the "payment_account" field.
func (m *BillDocumentMutation) SetPaymentAccount(s string) {
	m.payment_account = &s
}

// PaymentAccount returns the value of the "payment_account" field in the mutation.
func (m *BillDocumentMutation) PaymentAccount() (r string, exists bool) {
	v := m.payment_account
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentAccount returns the old "payment_account" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldPaymentAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentAccount: %w", err)
	}
	return oldValue.PaymentAccount, nil
}

// ClearPaymentAccount clears the value of the "payment_account" field.
func (m *BillDocumentMutation) ClearPaymentAccount() {
	m.payment_account = nil
	m.clearedFields[billdocument.FieldPaymentAccount] = struct{}{}
}

// PaymentAccountCleared returns if the "payment_account" field was cleared in this mutation.
func (m *BillDocumentMutation) PaymentAccountCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldPaymentAccount]
	return ok
}

// ResetPaymentAccount resets all changes to the "payment_account" field.
func (m *BillDocumentMutation) ResetPaymentAccount() {
	m.payment_account = nil
	delete(m.clearedFields, billdocument.FieldPaymentAccount)
}

// SetStatus sets the "status" field.
func (m *BillDocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BillDocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BillDocumentMutation) ResetStatus() {
	m.status = nil
}

// SetStage sets the "stage" field.
func (m *BillDocumentMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *BillDocumentMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *BillDocumentMutation) ResetStage() {
	m.stage = nil
}

// SetTrack sets the "track" field.
func (m *BillDocumentMutation) SetTrack(s string) {
	m.track = &s
}

// Track returns the value of the "track" field in the mutation.
func (m *BillDocumentMutation) Track() (r string, exists bool) {
	v := m.track
	if v == nil {
		return
	}
	return *v, true
}

// OldTrack returns the old "track" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldTrack(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrack: %w", err)
	}
	return oldValue.Track, nil
}

// ClearTrack clears the value of the "track" field.
func (m *BillDocumentMutation) ClearTrack() {
	m.track = nil
	m.clearedFields[billdocument.FieldTrack] = struct{}{}
}

// TrackCleared returns if the "track" field was cleared in this mutation.
func (m *BillDocumentMutation) TrackCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldTrack]
	return ok
}

// ResetTrack resets all changes to the "track" field.
func (m *BillDocumentMutation) ResetTrack() {
	m.track = nil
	delete(m.clearedFields, billdocument.FieldTrack)
}

// SetConfidence sets the "confidence" field.
func (m *BillDocumentMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BillDocumentMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BillDocumentMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BillDocumentMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *BillDocumentMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[billdocument.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *BillDocumentMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BillDocumentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, billdocument.FieldConfidence)
}

// SetErrorCode sets the "error_code" field.
func (m *BillDocumentMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *BillDocumentMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *BillDocumentMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[billdocument.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *BillDocumentMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *BillDocumentMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, billdocument.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *BillDocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BillDocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BillDocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[billdocument.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BillDocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BillDocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, billdocument.FieldErrorMessage)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *BillDocumentMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *BillDocumentMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *BillDocumentMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *BillDocumentMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *BillDocumentMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[billdocument.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *BillDocumentMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[billdocument.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *BillDocumentMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, billdocument.FieldExtractedJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BillDocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BillDocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BillDocument entity.
// If the BillDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillDocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BillDocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *BillDocumentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[billdocument.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *BillDocumentMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *BillDocumentMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *BillDocumentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the BillDocumentMutation builder.
func (m *BillDocumentMutation) Where(ps ...predicate.BillDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillDocument).
func (m *BillDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillDocumentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.company != nil {
		fields = append(fields, billdocument.FieldCompanyID)
	}
	if m.site_id != nil {
		fields = append(fields, billdocument.FieldSiteID)
	}
	if m.vendor != nil {
		fields = append(fields, billdocument.FieldVendor)
	}
	if m.bill_type != nil {
		fields = append(fields, billdocument.FieldBillType)
	}
	if m.amount_due != nil {
		fields = append(fields, billdocument.FieldAmountDue)
	}
	if m.due_date != nil {
		fields = append(fields, billdocument.FieldDueDate)
	}
	if m.period_start != nil {
		fields = append(fields, billdocument.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, billdocument.FieldPeriodEnd)
	}
	if m.customer_number != nil {
		fields = append(fields, billdocument.FieldCustomerNumber)
	}
	if m.payment_account != nil {
		fields = append(fields, billdocument.FieldPaymentAccount)
	}
	if m.status != nil {
		fields = append(fields, billdocument.FieldStatus)
	}
	if m.stage != nil {
		fields = append(fields, billdocument.FieldStage)
	}
	if m.track != nil {
		fields = append(fields, billdocument.FieldTrack)
	}
	if m.confidence != nil {
		fields = append(fields, billdocument.FieldConfidence)
	}
	if m.error_code != nil {
		fields = append(fields, billdocument.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, billdocument.FieldErrorMessage)
	}
	if m.extracted_json != nil {
		fields = append(fields, billdocument.FieldExtractedJSON)
	}
	if m.created_at != nil {
		fields = append(fields, billdocument.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, billdocument.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billdocument.FieldCompanyID:
		return m.CompanyID()
	case billdocument.FieldSiteID:
		return m.SiteID()
	case billdocument.FieldVendor:
		return m.Vendor()
	case billdocument.FieldBillType:
		return m.BillType()
	case billdocument.FieldAmountDue:
		return m.AmountDue()
	case billdocument.FieldDueDate:
		return m.DueDate()
	case billdocument.FieldPeriodStart:
		return m.PeriodStart()
	case billdocument.FieldPeriodEnd:
		return m.PeriodEnd()
	case billdocument.FieldCustomerNumber:
		return m.CustomerNumber()
	case billdocument.FieldPaymentAccount:
		return m.PaymentAccount()
	case billdocument.FieldStatus:
		return m.Status()
	case billdocument.FieldStage:
		return m.Stage()
	case billdocument.FieldTrack:
		return m.Track()
	case billdocument.FieldConfidence:
		return m.Confidence()
	case billdocument.FieldErrorCode:
		return m.ErrorCode()
	case billdocument.FieldErrorMessage:
		return m.ErrorMessage()
	case billdocument.FieldExtractedJSON:
		return m.ExtractedJSON()
	case billdocument.FieldCreatedAt:
		return m.CreatedAt()
	case billdocument.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billdocument.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case billdocument.FieldSiteID:
		return m.OldSiteID(ctx)
	case billdocument.FieldVendor:
		return m.OldVendor(ctx)
	case billdocument.FieldBillType:
		return m.OldBillType(ctx)
	case billdocument.FieldAmountDue:
		return m.OldAmountDue(ctx)
	case billdocument.FieldDueDate:
		return m.OldDueDate(ctx)
	case billdocument.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case billdocument.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case billdocument.FieldCustomerNumber:
		return m.OldCustomerNumber(ctx)
	case billdocument.FieldPaymentAccount:
		return m.OldPaymentAccount(ctx)
	case billdocument.FieldStatus:
		return m.OldStatus(ctx)
	case billdocument.FieldStage:
		return m.OldStage(ctx)
	case billdocument.FieldTrack:
		return m.OldTrack(ctx)
	case billdocument.FieldConfidence:
		return m.OldConfidence(ctx)
	case billdocument.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case billdocument.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case billdocument.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case billdocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case billdocument.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billdocument.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case billdocument.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case billdocument.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case billdocument.FieldBillType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillType(v)
		return nil
	case billdocument.FieldAmountDue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountDue(v)
		return nil
	case billdocument.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case billdocument.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case billdocument.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case billdocument.FieldCustomerNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerNumber(v)
		return nil
	case billdocument.FieldPaymentAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentAccount(v)
		return nil
	case billdocument.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case billdocument.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case billdocument.FieldTrack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrack(v)
		return nil
	case billdocument.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case billdocument.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case billdocument.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case billdocument.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case billdocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case billdocument.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addamount_due != nil {
		fields = append(fields, billdocument.FieldAmountDue)
	}
	if m.addconfidence != nil {
		fields = append(fields, billdocument.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billdocument.FieldAmountDue:
		return m.AddedAmountDue()
	case billdocument.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billdocument.FieldAmountDue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountDue(v)
		return nil
	case billdocument.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BillDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billdocument.FieldSiteID) {
		fields = append(fields, billdocument.FieldSiteID)
	}
	if m.FieldCleared(billdocument.FieldVendor) {
		fields = append(fields, billdocument.FieldVendor)
	}
	if m.FieldCleared(billdocument.FieldBillType) {
		fields = append(fields, billdocument.FieldBillType)
	}
	if m.FieldCleared(billdocument.FieldAmountDue) {
		fields = append(fields, billdocument.FieldAmountDue)
	}
	if m.FieldCleared(billdocument.FieldDueDate) {
		fields = append(fields, billdocument.FieldDueDate)
	}
	if m.FieldCleared(billdocument.FieldPeriodStart) {
		fields = append(fields, billdocument.FieldPeriodStart)
	}
	if m.FieldCleared(billdocument.FieldPeriodEnd) {
		fields = append(fields, billdocument.FieldPeriodEnd)
	}
	if m.FieldCleared(billdocument.FieldCustomerNumber) {
		fields = append(fields, billdocument.FieldCustomerNumber)
	}
	if m.FieldCleared(billdocument.FieldPaymentAccount) {
		fields = append(fields, billdocument.FieldPaymentAccount)
	}
	if m.FieldCleared(billdocument.FieldTrack) {
		fields = append(fields, billdocument.FieldTrack)
	}
	if m.FieldCleared(billdocument.FieldConfidence) {
		fields = append(fields, billdocument.FieldConfidence)
	}
	if m.FieldCleared(billdocument.FieldErrorCode) {
		fields = append(fields, billdocument.FieldErrorCode)
	}
	if m.FieldCleared(billdocument.FieldErrorMessage) {
		fields = append(fields, billdocument.FieldErrorMessage)
	}
	if m.FieldCleared(billdocument.FieldExtractedJSON) {
		fields = append(fields, billdocument.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillDocumentMutation) ClearField(name string) error {
	switch name {
	case billdocument.FieldSiteID:
		m.ClearSiteID()
		return nil
	case billdocument.FieldVendor:
		m.ClearVendor()
		return nil
	case billdocument.FieldBillType:
		m.ClearBillType()
		return nil
	case billdocument.FieldAmountDue:
		m.ClearAmountDue()
		return nil
	case billdocument.FieldDueDate:
		m.ClearDueDate()
		return nil
	case billdocument.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case billdocument.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case billdocument.FieldCustomerNumber:
		m.ClearCustomerNumber()
		return nil
	case billdocument.FieldPaymentAccount:
		m.ClearPaymentAccount()
		return nil
	case billdocument.FieldTrack:
		m.ClearTrack()
		return nil
	case billdocument.FieldConfidence:
		m.ClearConfidence()
		return nil
	case billdocument.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case billdocument.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case billdocument.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown BillDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillDocumentMutation) ResetField(name string) error {
	switch name {
	case billdocument.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case billdocument.FieldSiteID:
		m.ResetSiteID()
		return nil
	case billdocument.FieldVendor:
		m.ResetVendor()
		return nil
	case billdocument.FieldBillType:
		m.ResetBillType()
		return nil
	case billdocument.FieldAmountDue:
		m.ResetAmountDue()
		return nil
	case billdocument.FieldDueDate:
		m.ResetDueDate()
		return nil
	case billdocument.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case billdocument.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case billdocument.FieldCustomerNumber:
		m.ResetCustomerNumber()
		return nil
	case billdocument.FieldPaymentAccount:
		m.ResetPaymentAccount()
		return nil
	case billdocument.FieldStatus:
		m.ResetStatus()
		return nil
	case billdocument.FieldStage:
		m.ResetStage()
		return nil
	case billdocument.FieldTrack:
		m.ResetTrack()
		return nil
	case billdocument.FieldConfidence:
		m.ResetConfidence()
		return nil
	case billdocument.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case billdocument.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case billdocument.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case billdocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case billdocument.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BillDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, billdocument.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case billdocument.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, billdocument.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case billdocument.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillDocumentMutation) ClearEdge(name string) error {
	switch name {
	case billdocument.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown BillDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillDocumentMutation) ResetEdge(name string) error {
	switch name {
	case billdocument.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown BillDocument edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	default_currency *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *CompanyMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *CompanyMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *CompanyMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the BillDocument entity by ids.
func (m *CompanyMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the BillDocument entity.
func (m *CompanyMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the BillDocument entity was cleared.
func (m *CompanyMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the BillDocument entity by IDs.
func (m *CompanyMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the BillDocument entity.
func (m *CompanyMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CompanyMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CompanyMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.default_currency != nil {
		fields = append(fields, company.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documents != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddocuments != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocuments {
		edges = append(edges, company.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}
