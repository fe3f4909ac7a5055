// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/gen/ent/company"
)

// BillDocumentCreate is the builder for creating a BillDocument entity.
type BillDocumentCreate struct {
	config
	mutation *BillDocumentMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *BillDocumentCreate) SetCompanyID(v uuid.UUID) *BillDocumentCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetSiteID sets the "site_id" field.
func (_c *BillDocumentCreate) SetSiteID(v string) *BillDocumentCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableSiteID(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetSiteID(*v)
	}
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *BillDocumentCreate) SetVendor(v string) *BillDocumentCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableVendor(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetVendor(*v)
	}
	return _c
}

// SetBillType sets the "bill_type" field.
func (_c *BillDocumentCreate) SetBillType(v string) *BillDocumentCreate {
	_c.mutation.SetBillType(v)
	return _c
}

// SetNillableBillType sets the "bill_type" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableBillType(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetBillType(*v)
	}
	return _c
}

// SetAmountDue sets the "amount_due" field.
func (_c *BillDocumentCreate) SetAmountDue(v int64) *BillDocumentCreate {
	_c.mutation.SetAmountDue(v)
	return _c
}

// SetNillableAmountDue sets the "amount_due" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableAmountDue(v *int64) *BillDocumentCreate {
	if v != nil {
		_c.SetAmountDue(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *BillDocumentCreate) SetDueDate(v time.Time) *BillDocumentCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableDueDate(v *time.Time) *BillDocumentCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *BillDocumentCreate) SetPeriodStart(v time.Time) *BillDocumentCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillablePeriodStart(v *time.Time) *BillDocumentCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *BillDocumentCreate) SetPeriodEnd(v time.Time) *BillDocumentCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillablePeriodEnd(v *time.Time) *BillDocumentCreate {
	if v != nil {
		_c.SetPeriodEnd(*v)
	}
	return _c
}

// SetCustomerNumber sets the "customer_number" field.
func (_c *BillDocumentCreate) SetCustomerNumber(v string) *BillDocumentCreate {
	_c.mutation.SetCustomerNumber(v)
	return _c
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableCustomerNumber(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetCustomerNumber(*v)
	}
	return _c
}

// SetPaymentAccount sets the "payment_account" field.
func (_c *BillDocumentCreate) SetPaymentAccount(v string) *BillDocumentCreate {
	_c.mutation.SetPaymentAccount(v)
	return _c
}

// SetNillablePaymentAccount sets the "payment_account" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillablePaymentAccount(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetPaymentAccount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BillDocumentCreate) SetStatus(v string) *BillDocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableStatus(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *BillDocumentCreate) SetStage(v string) *BillDocumentCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableStage(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetTrack sets the "track" field.
func (_c *BillDocumentCreate) SetTrack(v string) *BillDocumentCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableTrack(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetTrack(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BillDocumentCreate) SetConfidence(v float32) *BillDocumentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableConfidence(v *float32) *BillDocumentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *BillDocumentCreate) SetErrorCode(v string) *BillDocumentCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableErrorCode(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BillDocumentCreate) SetErrorMessage(v string) *BillDocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableErrorMessage(v *string) *BillDocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *BillDocumentCreate) SetExtractedJSON(v json.RawMessage) *BillDocumentCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillDocumentCreate) SetCreatedAt(v time.Time) *BillDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableCreatedAt(v *time.Time) *BillDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillDocumentCreate) SetUpdatedAt(v time.Time) *BillDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableUpdatedAt(v *time.Time) *BillDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillDocumentCreate) SetID(v uuid.UUID) *BillDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillDocumentCreate) SetNillableID(v *uuid.UUID) *BillDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *BillDocumentCreate) SetCompany(v *Company) *BillDocumentCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the BillDocumentMutation object of the builder.
func (_c *BillDocumentCreate) Mutation() *BillDocumentMutation {
	return _c.mutation
}

// Save creates the BillDocument in the database.
func (_c *BillDocumentCreate) Save(ctx context.Context) (*BillDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillDocumentCreate) SaveX(ctx context.Context) *BillDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillDocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := billdocument.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := billdocument.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := billdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := billdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillDocumentCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "BillDocument.company_id"`)}
	}
	if v, ok := _c.mutation.BillType(); ok {
		if err := billdocument.BillTypeValidator(v); err != nil {
			return &ValidationError{Name: "bill_type", err: fmt.Errorf(`ent: validator failed for field "BillDocument.bill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BillDocument.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := billdocument.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillDocument.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "BillDocument.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := billdocument.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "BillDocument.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BillDocument.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "BillDocument.company"`)}
	}
	return nil
}

func (_c *BillDocumentCreate) sqlSave(ctx context.Context) (*BillDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillDocumentCreate) createSpec() (*BillDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &BillDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billdocument.Table, sqlgraph.NewFieldSpec(billdocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SiteID(); ok {
		_spec.SetField(billdocument.FieldSiteID, field.TypeString, value)
		_node.SiteID = &value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(billdocument.FieldVendor, field.TypeString, value)
		_node.Vendor = &value
	}
	if value, ok := _c.mutation.BillType(); ok {
		_spec.SetField(billdocument.FieldBillType, field.TypeString, value)
		_node.BillType = &value
	}
	if value, ok := _c.mutation.AmountDue(); ok {
		_spec.SetField(billdocument.FieldAmountDue, field.TypeInt64, value)
		_node.AmountDue = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(billdocument.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(billdocument.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(billdocument.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := _c.mutation.CustomerNumber(); ok {
		_spec.SetField(billdocument.FieldCustomerNumber, field.TypeString, value)
		_node.CustomerNumber = &value
	}
	if value, ok := _c.mutation.PaymentAccount(); ok {
		_spec.SetField(billdocument.FieldPaymentAccount, field.TypeString, value)
		_node.PaymentAccount = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(billdocument.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(billdocument.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(billdocument.FieldTrack, field.TypeString, value)
		_node.Track = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(billdocument.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(billdocument.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(billdocument.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(billdocument.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(billdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   billdocument.CompanyTable,
			Columns: []string{billdocument.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillDocumentCreateBulk is the builder for creating many BillDocument entities in bulk.
type BillDocumentCreateBulk struct {
	config
	err      error
	builders []*BillDocumentCreate
}

// Save creates the BillDocument entities in the database.
func (_c *BillDocumentCreateBulk) Save(ctx context.Context) ([]*BillDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillDocumentCreateBulk) SaveX(ctx context.Context) []*BillDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
