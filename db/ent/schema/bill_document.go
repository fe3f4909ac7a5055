package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/db/ent/schema/utils"
)

type BillDocument struct{ ent.Schema }

func (BillDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bill_documents"},
	}
}

func (BillDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so composite indexes can reference it
		field.UUID("company_id", uuid.UUID{}).Immutable(),
		field.String("site_id").Optional().Nillable(),

		// classification, nullable until extracted
		field.String("vendor").Optional().Nillable(),
		field.String("bill_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.BillTypeStrings()...)),

		// financial fields, nullable until extracted or confirmed;
		// amount_due in integer minor units
		field.Int64("amount_due").Optional().Nillable(),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("period_start").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("period_end").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("customer_number").Optional().Nillable(),
		field.String("payment_account").Optional().Nillable(),

		// pipeline state; stage is meaningful only while IN_PROGRESS
		field.String("status").Default(string(constants.StatusInProgress)).
			Validate(utils.EnumValidator(constants.StatusStrings()...)),
		field.String("stage").Default(string(constants.StagePreprocess)).
			Validate(utils.EnumValidator(constants.StageStrings()...)),
		field.String("track").Optional().Nillable(),

		field.Float32("confidence").Optional().Nillable(),
		field.String("error_code").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),

		// raw extraction payload, kept for audit and re-validation
		field.JSON("extracted_json", json.RawMessage{}).Optional(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BillDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("documents").
			Field("company_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (BillDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "status", "created_at"),
		// sweep scan: oldest IN_PROGRESS first
		index.Fields("status", "created_at"),
	}
}
