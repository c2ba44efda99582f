package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ContentType holds the schema definition for the ContentType entity.
// Content types own an ordered list of field definitions. An invariant
// content type has no per-language locales.
type ContentType struct {
	ent.Schema
}

// Mixin of the ContentType.
func (ContentType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the ContentType.
func (ContentType) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.Bool("is_invariant").
			Default(false).
			Immutable(),
		field.String("unique_name").
			NotEmpty(),
		field.String("unique_name_normalized").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("description").
			Optional(),
		field.Int("field_count").
			Default(0),
	}
}

// Edges of the ContentType.
func (ContentType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("field_definitions", FieldDefinition.Type),
		edge.To("contents", Content.Type),
	}
}

// Indexes of the ContentType.
func (ContentType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("realm_id", "unique_name_normalized"),
	}
}
