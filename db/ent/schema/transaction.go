package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/entity"
)

type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Time("date"),
		field.String("type").Default("sale"), // sale | purchase | refund
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("source"), // square | shopify | gmail | manual
		field.String("status").Default("completed"),
		field.JSON("products", []entity.TransactionProduct{}).Optional(),
		// Legacy Shopify rows carried line items under a different key.
		field.JSON("line_items", []entity.TransactionProduct{}).Optional(),
		field.Float("pre_tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tip").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("is_taxable").Optional().Nillable(),
		field.Bool("draft").Optional().Nillable(),
		field.String("customer").Optional(),
		field.String("email").Optional(),
		field.String("payment_method").Optional(),
		field.UUID("supplier_id", uuid.UUID{}).Optional().Nillable(),
		// Historical ID encodings; all consulted by duplicate detection.
		field.String("external_id").Optional(),      // e.g. "shopify_123"
		field.String("shopify_order_id").Optional(), // oldest encoding
		field.JSON("platform_metadata", &entity.PlatformMetadata{}).Optional(),
		field.JSON("payment_processing", &entity.PaymentProcessing{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("supplier", Supplier.Type).
			Ref("transactions").
			Field("supplier_id").
			Unique(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "date"),
		index.Fields("external_id"),
		index.Fields("shopify_order_id"),
	}
}
