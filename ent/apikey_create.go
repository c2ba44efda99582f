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
	"lattice-cms.io/lattice/ent/apikey"
)

// ApiKeyCreate is the builder for creating a ApiKey entity.
type ApiKeyCreate struct {
	config
	mutation *ApiKeyMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *ApiKeyCreate) SetStreamID(v string) *ApiKeyCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ApiKeyCreate) SetVersion(v int64) *ApiKeyCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ApiKeyCreate) SetCreatedBy(v string) *ApiKeyCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ApiKeyCreate) SetNillableCreatedBy(v *string) *ApiKeyCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *ApiKeyCreate) SetCreatedOn(v time.Time) *ApiKeyCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ApiKeyCreate) SetUpdatedBy(v string) *ApiKeyCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ApiKeyCreate) SetNillableUpdatedBy(v *string) *ApiKeyCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *ApiKeyCreate) SetUpdatedOn(v time.Time) *ApiKeyCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *ApiKeyCreate) SetRealmID(v uuid.UUID) *ApiKeyCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *ApiKeyCreate) SetNillableRealmID(v *uuid.UUID) *ApiKeyCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ApiKeyCreate) SetDisplayName(v string) *ApiKeyCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApiKeyCreate) SetDescription(v string) *ApiKeyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApiKeyCreate) SetNillableDescription(v *string) *ApiKeyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetExpiresOn sets the "expires_on" field.
func (_c *ApiKeyCreate) SetExpiresOn(v time.Time) *ApiKeyCreate {
	_c.mutation.SetExpiresOn(v)
	return _c
}

// SetNillableExpiresOn sets the "expires_on" field if the given value is not nil.
func (_c *ApiKeyCreate) SetNillableExpiresOn(v *time.Time) *ApiKeyCreate {
	if v != nil {
		_c.SetExpiresOn(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApiKeyCreate) SetID(v uuid.UUID) *ApiKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApiKeyMutation object of the builder.
func (_c *ApiKeyCreate) Mutation() *ApiKeyMutation {
	return _c.mutation
}

// Save creates the ApiKey in the database.
func (_c *ApiKeyCreate) Save(ctx context.Context) (*ApiKey, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiKeyCreate) SaveX(ctx context.Context) *ApiKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiKeyCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "ApiKey.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := apikey.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "ApiKey.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ApiKey.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "ApiKey.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "ApiKey.updated_on"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "ApiKey.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := apikey.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ApiKey.display_name": %w`, err)}
		}
	}
	return nil
}

func (_c *ApiKeyCreate) sqlSave(ctx context.Context) (*ApiKey, error) {
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

func (_c *ApiKeyCreate) createSpec() (*ApiKey, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apikey.Table, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(apikey.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(apikey.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(apikey.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(apikey.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(apikey.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(apikey.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(apikey.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(apikey.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(apikey.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ExpiresOn(); ok {
		_spec.SetField(apikey.FieldExpiresOn, field.TypeTime, value)
		_node.ExpiresOn = &value
	}
	return _node, _spec
}

// ApiKeyCreateBulk is the builder for creating many ApiKey entities in bulk.
type ApiKeyCreateBulk struct {
	config
	err      error
	builders []*ApiKeyCreate
}

// Save creates the ApiKey entities in the database.
func (_c *ApiKeyCreateBulk) Save(ctx context.Context) ([]*ApiKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiKeyMutation)
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
func (_c *ApiKeyCreateBulk) SaveX(ctx context.Context) []*ApiKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
