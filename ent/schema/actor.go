package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Actor holds the schema definition for the Actor read model: cached display
// identity for whoever produced an event (user or API key), keyed by the
// producing aggregate's stream id. Deleted sources are soft-marked because
// historical rows still reference them.
type Actor struct {
	ent.Schema
}

// Fields of the Actor.
func (Actor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(), // actor id, derived from the producing stream id
		field.String("stream_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.UUID("realm_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.Enum("type").
			Values("user", "api_key"),
		field.Bool("is_deleted").
			Default(false),
		field.String("display_name").
			NotEmpty(),
		field.String("email").
			Optional(),
		field.String("picture").
			Optional(),
		field.Time("updated_on"),
	}
}

// Indexes of the Actor.
func (Actor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
	}
}
