// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/actor"
)

// ActorCreate is the builder for creating a Actor entity.
type ActorCreate struct {
	config
	mutation *ActorMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *ActorCreate) SetStreamID(v string) *ActorCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *ActorCreate) SetRealmID(v uuid.UUID) *ActorCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *ActorCreate) SetNillableRealmID(v *uuid.UUID) *ActorCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ActorCreate) SetType(v actor.Type) *ActorCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ActorCreate) SetIsDeleted(v bool) *ActorCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ActorCreate) SetNillableIsDeleted(v *bool) *ActorCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ActorCreate) SetDisplayName(v string) *ActorCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ActorCreate) SetEmail(v string) *ActorCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ActorCreate) SetNillableEmail(v *string) *ActorCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPicture sets the "picture" field.
func (_c *ActorCreate) SetPicture(v string) *ActorCreate {
	_c.mutation.SetPicture(v)
	return _c
}

// SetNillablePicture sets the "picture" field if the given value is not nil.
func (_c *ActorCreate) SetNillablePicture(v *string) *ActorCreate {
	if v != nil {
		_c.SetPicture(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *ActorCreate) SetUpdatedOn(v time.Time) *ActorCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ActorCreate) SetID(v string) *ActorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActorMutation object of the builder.
func (_c *ActorCreate) Mutation() *ActorMutation {
	return _c.mutation
}

// Save creates the Actor in the database.
func (_c *ActorCreate) Save(ctx context.Context) (*Actor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActorCreate) SaveX(ctx context.Context) *Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActorCreate) defaults() {
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := actor.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActorCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Actor.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := actor.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "Actor.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Actor.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := actor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Actor.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Actor.is_deleted"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Actor.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := actor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Actor.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "Actor.updated_on"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := actor.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Actor.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ActorCreate) sqlSave(ctx context.Context) (*Actor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Actor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActorCreate) createSpec() (*Actor, *sqlgraph.CreateSpec) {
	var (
		_node = &Actor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actor.Table, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(actor.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(actor.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(actor.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(actor.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(actor.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(actor.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Picture(); ok {
		_spec.SetField(actor.FieldPicture, field.TypeString, value)
		_node.Picture = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(actor.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	return _node, _spec
}

// ActorCreateBulk is the builder for creating many Actor entities in bulk.
type ActorCreateBulk struct {
	config
	err      error
	builders []*ActorCreate
}

// Save creates the Actor entities in the database.
func (_c *ActorCreateBulk) Save(ctx context.Context) ([]*Actor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Actor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActorCreateBulk) SaveX(ctx context.Context) []*Actor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
