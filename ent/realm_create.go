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
	"lattice-cms.io/lattice/ent/realm"
)

// RealmCreate is the builder for creating a Realm entity.
type RealmCreate struct {
	config
	mutation *RealmMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *RealmCreate) SetStreamID(v string) *RealmCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RealmCreate) SetVersion(v int64) *RealmCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *RealmCreate) SetCreatedBy(v string) *RealmCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *RealmCreate) SetNillableCreatedBy(v *string) *RealmCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *RealmCreate) SetCreatedOn(v time.Time) *RealmCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *RealmCreate) SetUpdatedBy(v string) *RealmCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *RealmCreate) SetNillableUpdatedBy(v *string) *RealmCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *RealmCreate) SetUpdatedOn(v time.Time) *RealmCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetUniqueSlug sets the "unique_slug" field.
func (_c *RealmCreate) SetUniqueSlug(v string) *RealmCreate {
	_c.mutation.SetUniqueSlug(v)
	return _c
}

// SetUniqueSlugNormalized sets the "unique_slug_normalized" field.
func (_c *RealmCreate) SetUniqueSlugNormalized(v string) *RealmCreate {
	_c.mutation.SetUniqueSlugNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *RealmCreate) SetDisplayName(v string) *RealmCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *RealmCreate) SetNillableDisplayName(v *string) *RealmCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RealmCreate) SetID(v uuid.UUID) *RealmCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RealmMutation object of the builder.
func (_c *RealmCreate) Mutation() *RealmMutation {
	return _c.mutation
}

// Save creates the Realm in the database.
func (_c *RealmCreate) Save(ctx context.Context) (*Realm, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RealmCreate) SaveX(ctx context.Context) *Realm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealmCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealmCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RealmCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Realm.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := realm.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "Realm.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Realm.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "Realm.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "Realm.updated_on"`)}
	}
	if _, ok := _c.mutation.UniqueSlug(); !ok {
		return &ValidationError{Name: "unique_slug", err: errors.New(`ent: missing required field "Realm.unique_slug"`)}
	}
	if v, ok := _c.mutation.UniqueSlug(); ok {
		if err := realm.UniqueSlugValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueSlugNormalized(); !ok {
		return &ValidationError{Name: "unique_slug_normalized", err: errors.New(`ent: missing required field "Realm.unique_slug_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueSlugNormalized(); ok {
		if err := realm.UniqueSlugNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug_normalized", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug_normalized": %w`, err)}
		}
	}
	return nil
}

func (_c *RealmCreate) sqlSave(ctx context.Context) (*Realm, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RealmCreate) createSpec() (*Realm, *sqlgraph.CreateSpec) {
	var (
		_node = &Realm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(realm.Table, sqlgraph.NewFieldSpec(realm.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(realm.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(realm.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(realm.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(realm.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(realm.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(realm.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.UniqueSlug(); ok {
		_spec.SetField(realm.FieldUniqueSlug, field.TypeString, value)
		_node.UniqueSlug = value
	}
	if value, ok := _c.mutation.UniqueSlugNormalized(); ok {
		_spec.SetField(realm.FieldUniqueSlugNormalized, field.TypeString, value)
		_node.UniqueSlugNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(realm.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	return _node, _spec
}

// RealmCreateBulk is the builder for creating many Realm entities in bulk.
type RealmCreateBulk struct {
	config
	err      error
	builders []*RealmCreate
}

// Save creates the Realm entities in the database.
func (_c *RealmCreateBulk) Save(ctx context.Context) ([]*Realm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Realm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RealmMutation)
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
func (_c *RealmCreateBulk) SaveX(ctx context.Context) []*Realm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealmCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealmCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
