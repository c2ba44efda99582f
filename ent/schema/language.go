package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Language holds the schema definition for the Language entity.
// Languages key content locales; exactly one language per realm scope is the
// default. Code changes and default-flag changes propagate to index rows.
type Language struct {
	ent.Schema
}

// Mixin of the Language.
func (Language) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the Language.
func (Language) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("code").
			NotEmpty(), // e.g. "en", "fr-CA"
		field.String("code_normalized").
			NotEmpty(),
		field.Bool("is_default").
			Default(false),
	}
}

// Indexes of the Language.
func (Language) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("realm_id", "code_normalized"),
		index.Fields("is_default"),
	}
}
