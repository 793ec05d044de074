package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type SmartMapping struct{ ent.Schema }

func (SmartMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "smart_mappings"},
	}
}

func (SmartMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("mapping_type").NotEmpty(),
		// Normalized (lowercase, trimmed) before storage; the lookup key
		// together with mapping_type.
		field.String("source").NotEmpty(),
		field.String("target").NotEmpty(),
		field.UUID("target_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("confidence").Default(80).Min(0).Max(100),
		field.Int("usage_count").Default(1),
		field.Int("score").Default(80),
		field.JSON("metadata", map[string]string{}).Optional(),
		field.Time("last_used").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SmartMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mapping_type", "source").Unique(),
		index.Fields("mapping_type", "score"),
	}
}
