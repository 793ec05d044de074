package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type InvoiceEmail struct{ ent.Schema }

func (InvoiceEmail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_emails"},
	}
}

func (InvoiceEmail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Provider-side message id; ingestion is idempotent on it.
		field.String("email_id").NotEmpty().Unique(),
		field.Time("date"),
		field.String("subject").Optional(),
		field.String("from").Optional(),
		field.Text("body").Optional(),
		field.String("status").Default("pending"), // pending | processed | ignored
		field.UUID("supplier_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("transaction_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (InvoiceEmail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("supplier", Supplier.Type).
			Ref("emails").
			Field("supplier_id").
			Unique(),
	}
}
