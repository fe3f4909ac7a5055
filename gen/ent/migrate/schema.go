// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillDocumentsColumns holds the columns for the "bill_documents" table.
	BillDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "site_id", Type: field.TypeString, Nullable: true},
		{Name: "vendor", Type: field.TypeString, Nullable: true},
		{Name: "bill_type", Type: field.TypeString, Nullable: true},
		{Name: "amount_due", Type: field.TypeInt64, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "period_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "customer_number", Type: field.TypeString, Nullable: true},
		{Name: "payment_account", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "IN_PROGRESS"},
		{Name: "stage", Type: field.TypeString, Default: "PREPROCESS"},
		{Name: "track", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// BillDocumentsTable holds the schema information for the "bill_documents" table.
	BillDocumentsTable = &schema.Table{
		Name:       "bill_documents",
		Columns:    BillDocumentsColumns,
		PrimaryKey: []*schema.Column{BillDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bill_documents_companies_documents",
				Columns:    []*schema.Column{BillDocumentsColumns[19]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "billdocument_company_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillDocumentsColumns[19], BillDocumentsColumns[10], BillDocumentsColumns[17]},
			},
			{
				Name:    "billdocument_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillDocumentsColumns[10], BillDocumentsColumns[17]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillDocumentsTable,
		CompaniesTable,
	}
)

func init() {
	BillDocumentsTable.ForeignKeys[0].RefTable = CompaniesTable
	BillDocumentsTable.Annotation = &entsql.Annotation{
		Table: "bill_documents",
	}
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
}
