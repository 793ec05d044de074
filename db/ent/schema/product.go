package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/daydreamers/ops-backend/internal/entity"
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("base_product_name").NotEmpty(),
		field.String("variant_name").Default("Default"),
		// Derived: base (+ " - " + variant unless "Default"). Kept stored so
		// list queries and exports never re-derive it.
		field.String("name").NotEmpty(),
		field.String("sku").NotEmpty().Unique(),
		field.Float("price").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("stock").Default(0),
		field.Float("average_cost").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.Float("total_spent").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_purchased").Default(0),
		field.JSON("cost_history", []entity.CostHistoryEntry{}).Optional(),
		field.JSON("platform_syncs", []entity.PlatformSync{}).Optional(),
		field.JSON("supplier_aliases", []entity.SupplierAlias{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("inventory_changes", InventoryChange.Type),
	}
}
