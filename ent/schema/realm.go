package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Realm holds the schema definition for the Realm entity.
// A realm is the tenant boundary; entities with a null realm id are
// platform-level.
type Realm struct {
	ent.Schema
}

// Mixin of the Realm.
func (Realm) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AggregateMixin{},
	}
}

// Fields of the Realm.
func (Realm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.String("unique_slug").
			NotEmpty(),
		field.String("unique_slug_normalized").
			NotEmpty(),
		field.String("display_name").
			Optional(),
	}
}

// Indexes of the Realm.
func (Realm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unique_slug_normalized").Unique(),
	}
}
