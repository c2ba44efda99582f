package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Content holds the schema definition for the Content entity.
// One row per content item. The item always has exactly one invariant locale
// and, when its content type is not invariant, at most one locale per
// language (ContentLocale rows).
type Content struct {
	ent.Schema
}

// Mixin of the Content.
func (Content) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the Content.
func (Content) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.UUID("content_type_id", uuid.UUID{}).
			Immutable(),
	}
}

// Edges of the Content.
func (Content) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("content_type", ContentType.Type).
			Ref("contents").
			Unique().
			Required().
			Immutable().
			Field("content_type_id"),
		edge.To("locales", ContentLocale.Type),
	}
}

// Indexes of the Content.
func (Content) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("realm_id"),
		index.Fields("content_type_id"),
	}
}
