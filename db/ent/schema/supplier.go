package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/entity"
)

type Supplier struct{ ent.Schema }

func (Supplier) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "suppliers"},
	}
}

func (Supplier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.Strings("aliases").Optional(),
		field.String("invoice_email").Optional(),
		// Regex matched against inbound subject lines to attribute emails.
		field.String("invoice_subject").Optional(),
		field.String("sku_prefix").Optional(),
		field.JSON("parsing_config", entity.EmailParsingConfig{}).Optional(),
		// Most-recent-first few-shot ring buffer for the AI parser.
		field.JSON("training_samples", []entity.TrainingSample{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Supplier) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("emails", InvoiceEmail.Type),
		edge.To("transactions", Transaction.Type),
	}
}
