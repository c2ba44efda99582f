package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ContentLocale holds the schema definition for the ContentLocale entity.
// A null language id marks the invariant locale. Field values are stored as
// a fieldDefinitionId → raw string map; typed interpretation happens in the
// field index, not here.
type ContentLocale struct {
	ent.Schema
}

// Mixin of the ContentLocale.
func (ContentLocale) Mixin() []ent.Mixin {
	return []ent.Mixin{
		LocaleAuditMixin{},
	}
}

// Fields of the ContentLocale.
func (ContentLocale) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("content_id", uuid.UUID{}).
			Immutable(),
		field.UUID("language_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(), // nil = invariant locale
		field.String("unique_name").
			NotEmpty(),
		field.String("unique_name_normalized").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("description").
			Optional(),
		field.JSON("field_values", map[string]string{}).
			Optional(), // fieldDefinitionId → raw value
		field.Bool("is_published").
			Default(false),
		field.Int64("published_version").
			Optional().
			Nillable(),
		field.String("published_by").
			Optional(),
		field.Time("published_on").
			Optional().
			Nillable(),
	}
}

// Edges of the ContentLocale.
func (ContentLocale) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("content", Content.Type).
			Ref("locales").
			Unique().
			Required().
			Immutable().
			Field("content_id"),
	}
}

// Indexes of the ContentLocale.
func (ContentLocale) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_id", "language_id"),
		index.Fields("language_id"),
		index.Fields("unique_name_normalized"),
	}
}
