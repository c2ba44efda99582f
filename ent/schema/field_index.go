package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FieldIndex holds the schema definition for the FieldIndex entity: one row
// per (content locale, indexed field definition, status). Identity columns
// are denormalized (id + normalized name) so queries never join back to the
// schema tables; exactly one typed value column is populated, selected by the
// field type's data type. Rows are derived state and are fully regenerable.
type FieldIndex struct {
	ent.Schema
}

// Fields of the FieldIndex.
func (FieldIndex) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Enum("status").
			Values("latest", "published"),
		field.UUID("content_type_id", uuid.UUID{}),
		field.String("content_type_name").
			NotEmpty(),
		field.UUID("language_id", uuid.UUID{}).
			Optional().
			Nillable(), // nil = invariant locale
		field.String("language_code").
			Optional(),
		field.Bool("language_is_default").
			Default(false),
		field.UUID("field_type_id", uuid.UUID{}),
		field.String("field_type_name").
			NotEmpty(),
		field.UUID("field_definition_id", uuid.UUID{}),
		field.String("field_definition_name").
			NotEmpty(),
		field.UUID("content_id", uuid.UUID{}),
		field.UUID("content_locale_id", uuid.UUID{}),
		field.String("content_locale_name").
			NotEmpty(),
		field.Int64("version"),

		// Typed value columns: exactly one is set, per data type.
		field.Bool("value_boolean").
			Optional().
			Nillable(),
		field.Time("value_datetime").
			Optional().
			Nillable(),
		field.Float("value_number").
			Optional().
			Nillable(),
		field.String("value_related_content").
			Optional().
			Nillable(),
		field.Text("value_rich_text").
			Optional().
			Nillable(),
		field.String("value_select").
			Optional().
			Nillable(),
		field.String("value_string").
			Optional().
			Nillable(),
		field.String("value_tags").
			Optional().
			Nillable(),
	}
}

// Indexes of the FieldIndex.
func (FieldIndex) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_locale_id", "status", "field_definition_id").Unique(),
		index.Fields("content_id"),
		index.Fields("content_type_id", "status"),
		index.Fields("field_definition_id"),
		index.Fields("field_type_id"),
		index.Fields("language_id"),
	}
}
