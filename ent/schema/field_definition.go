package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FieldDefinition holds the schema definition for the FieldDefinition entity.
// A definition binds a field type into a content type with placement flags.
// Orders are zero-based and contiguous per content type; removing a
// definition re-packs the orders of the definitions after it.
//
// Field definitions are not aggregates of their own: they are written by
// content type events, so there is no stream/version mixin here.
type FieldDefinition struct {
	ent.Schema
}

// Fields of the FieldDefinition.
func (FieldDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(), // stable across renames
		field.UUID("content_type_id", uuid.UUID{}).
			Immutable(),
		field.UUID("field_type_id", uuid.UUID{}),
		field.Int("order").
			NonNegative(),
		field.Bool("is_invariant").
			Default(false),
		field.Bool("is_required").
			Default(false),
		field.Bool("is_indexed").
			Default(false),
		field.Bool("is_unique").
			Default(false),
		field.String("unique_name").
			NotEmpty(),
		field.String("unique_name_normalized").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("description").
			Optional(),
		field.String("placeholder").
			Optional(),
	}
}

// Edges of the FieldDefinition.
func (FieldDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("content_type", ContentType.Type).
			Ref("field_definitions").
			Unique().
			Required().
			Immutable().
			Field("content_type_id"),
		edge.From("field_type", FieldType.Type).
			Ref("field_definitions").
			Unique().
			Required().
			Field("field_type_id"),
	}
}

// Indexes of the FieldDefinition.
func (FieldDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_type_id", "unique_name_normalized").Unique(),
		index.Fields("content_type_id", "order"),
		index.Fields("field_type_id"),
	}
}
