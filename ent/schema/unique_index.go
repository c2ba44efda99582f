package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// UniqueIndex holds the schema definition for the UniqueIndex entity: the
// uniqueness-enforcing sibling of FieldIndex. The composite key is
// base64(fieldDefinitionId) + "|" + normalized value; the application layer
// enforces key exclusivity per (realm, content type, language-or-null,
// status) scope because a plain database unique constraint would collide the
// latest and published rows of the same logical value.
type UniqueIndex struct {
	ent.Schema
}

// Fields of the UniqueIndex.
func (UniqueIndex) Fields() []ent.Field {
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
			Nillable(),
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
		field.String("value").
			NotEmpty(), // normalized raw value
		field.String("key").
			NotEmpty(), // base64(fieldDefinitionId) + "|" + value
	}
}

// Indexes of the UniqueIndex.
func (UniqueIndex) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_locale_id", "status", "field_definition_id").Unique(),
		index.Fields("content_type_id", "language_id", "status", "key"),
		index.Fields("content_id"),
		index.Fields("field_definition_id"),
		index.Fields("field_type_id"),
		index.Fields("language_id"),
	}
}
