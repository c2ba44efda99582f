package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PublishedContent holds the schema definition for the PublishedContent
// entity: the per-locale snapshot materialized when a locale is published.
// It freezes the locale's identity and field values at publish time and is
// removed on unpublish, independently of the Latest state.
type PublishedContent struct {
	ent.Schema
}

// Fields of the PublishedContent.
func (PublishedContent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(), // same id as the content locale
		field.UUID("content_id", uuid.UUID{}).
			Immutable(),
		field.UUID("content_type_id", uuid.UUID{}).
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.UUID("language_id", uuid.UUID{}).
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
		field.JSON("field_values", map[string]string{}).
			Optional(),
		field.Int64("version"), // content version captured at publish
		field.String("published_by").
			Optional(),
		field.Time("published_on"),
	}
}

// Indexes of the PublishedContent.
func (PublishedContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id", "language_id"),
		index.Fields("content_type_id"),
		index.Fields("realm_id"),
	}
}
