// Package schema contains Ent schema definitions for the Lattice projection
// store. Every table here is a read model derived from domain events and can
// be rebuilt by replay.
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// AggregateMixin adds the projection bookkeeping columns shared by every
// event-sourced row: the source stream identity, the last applied event
// version, and actor attribution. Timestamps come from the events themselves
// (occurred_on), not from the database clock.
type AggregateMixin struct {
	mixin.Schema
}

// Fields of the AggregateMixin.
func (AggregateMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int64("version"),
		field.String("created_by").
			Optional().
			Immutable(),
		field.Time("created_on").
			Immutable(),
		field.String("updated_by").
			Optional(),
		field.Time("updated_on"),
	}
}

// LocaleAuditMixin adds version/attribution columns for rows that belong to a
// parent aggregate stream (content locales and their published snapshots).
type LocaleAuditMixin struct {
	mixin.Schema
}

// Fields of the LocaleAuditMixin.
func (LocaleAuditMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("version"),
		field.String("created_by").
			Optional().
			Immutable(),
		field.Time("created_on").
			Immutable(),
		field.String("updated_by").
			Optional(),
		field.Time("updated_on"),
	}
}
