package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ApiKey holds the schema definition for the ApiKey read model.
// Secret material is never projected; rows exist for display and actor
// attribution only.
type ApiKey struct {
	ent.Schema
}

// Mixin of the ApiKey.
func (ApiKey) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the ApiKey.
func (ApiKey) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("display_name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Time("expires_on").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApiKey.
func (ApiKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("realm_id"),
	}
}
