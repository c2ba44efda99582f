package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FieldType holds the schema definition for the FieldType entity.
// A field type fixes a data type at creation and carries JSON settings whose
// shape depends on that data type. Deleting a field type cascades to the
// field definitions that reference it and to all derived index rows.
type FieldType struct {
	ent.Schema
}

// Mixin of the FieldType.
func (FieldType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the FieldType.
func (FieldType) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("unique_name").
			NotEmpty(),
		field.String("unique_name_normalized").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("description").
			Optional(),
		field.Enum("data_type").
			Values(
				"boolean",
				"datetime",
				"number",
				"related_content",
				"rich_text",
				"select",
				"string",
				"tags",
			).
			Immutable(),
		field.Bytes("settings"), // JSON, shape selected by data_type
	}
}

// Edges of the FieldType.
func (FieldType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("field_definitions", FieldDefinition.Type),
	}
}

// Indexes of the FieldType.
func (FieldType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("realm_id", "unique_name_normalized"),
	}
}
