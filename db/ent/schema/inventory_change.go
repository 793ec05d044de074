package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InventoryChange rows are append-only; there is no update path in the
// repository layer.
type InventoryChange struct{ ent.Schema }

func (InventoryChange) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inventory_changes"},
	}
}

func (InventoryChange) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("product_id", uuid.UUID{}),
		field.UUID("transaction_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("quantity_change").Immutable(),
		field.String("change_type").Immutable(), // sale | expense | adjustment
		field.String("source").Optional().Immutable(),
		field.String("reason").Optional().Immutable(),
		field.Time("timestamp").Default(time.Now).Immutable(),
	}
}

func (InventoryChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("inventory_changes").
			Field("product_id").
			Required().
			Unique(),
	}
}

func (InventoryChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id", "timestamp"),
	}
}
