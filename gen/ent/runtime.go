// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/paydocs/billscan/db/ent/schema"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/gen/ent/company"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billdocumentFields := schema.BillDocument{}.Fields()
	_ = billdocumentFields
	// billdocumentDescBillType is the schema descriptor for bill_type field.
	billdocumentDescBillType := billdocumentFields[4].Descriptor()
	// billdocument.BillTypeValidator is a validator for the "bill_type" field. It is called by the builders before save.
	billdocument.BillTypeValidator = billdocumentDescBillType.Validators[0].(func(string) error)
	// billdocumentDescStatus is the schema descriptor for status field.
	billdocumentDescStatus := billdocumentFields[11].Descriptor()
	// billdocument.DefaultStatus holds the default value on creation for the status field.
	billdocument.DefaultStatus = billdocumentDescStatus.Default.(string)
	// billdocument.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	billdocument.StatusValidator = billdocumentDescStatus.Validators[0].(func(string) error)
	// billdocumentDescStage is the schema descriptor for stage field.
	billdocumentDescStage := billdocumentFields[12].Descriptor()
	// billdocument.DefaultStage holds the default value on creation for the stage field.
	billdocument.DefaultStage = billdocumentDescStage.Default.(string)
	// billdocument.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	billdocument.StageValidator = billdocumentDescStage.Validators[0].(func(string) error)
	// billdocumentDescCreatedAt is the schema descriptor for created_at field.
	billdocumentDescCreatedAt := billdocumentFields[18].Descriptor()
	// billdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	billdocument.DefaultCreatedAt = billdocumentDescCreatedAt.Default.(func() time.Time)
	// billdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	billdocumentDescUpdatedAt := billdocumentFields[19].Descriptor()
	// billdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	billdocument.DefaultUpdatedAt = billdocumentDescUpdatedAt.Default.(func() time.Time)
	// billdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	billdocument.UpdateDefaultUpdatedAt = billdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billdocumentDescID is the schema descriptor for id field.
	billdocumentDescID := billdocumentFields[0].Descriptor()
	// billdocument.DefaultID holds the default value on creation for the id field.
	billdocument.DefaultID = billdocumentDescID.Default.(func() uuid.UUID)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescDefaultCurrency is the schema descriptor for default_currency field.
	companyDescDefaultCurrency := companyFields[2].Descriptor()
	// company.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	company.DefaultCurrencyValidator = func() func(string) error {
		validators := companyDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[3].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[4].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
}
