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
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
)

// FieldTypeCreate is the builder for creating a FieldType entity.
type FieldTypeCreate struct {
	config
	mutation *FieldTypeMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *FieldTypeCreate) SetStreamID(v string) *FieldTypeCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *FieldTypeCreate) SetVersion(v int64) *FieldTypeCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *FieldTypeCreate) SetCreatedBy(v string) *FieldTypeCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *FieldTypeCreate) SetNillableCreatedBy(v *string) *FieldTypeCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *FieldTypeCreate) SetCreatedOn(v time.Time) *FieldTypeCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *FieldTypeCreate) SetUpdatedBy(v string) *FieldTypeCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *FieldTypeCreate) SetNillableUpdatedBy(v *string) *FieldTypeCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *FieldTypeCreate) SetUpdatedOn(v time.Time) *FieldTypeCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *FieldTypeCreate) SetRealmID(v uuid.UUID) *FieldTypeCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *FieldTypeCreate) SetNillableRealmID(v *uuid.UUID) *FieldTypeCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetUniqueName sets the "unique_name" field.
func (_c *FieldTypeCreate) SetUniqueName(v string) *FieldTypeCreate {
	_c.mutation.SetUniqueName(v)
	return _c
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_c *FieldTypeCreate) SetUniqueNameNormalized(v string) *FieldTypeCreate {
	_c.mutation.SetUniqueNameNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *FieldTypeCreate) SetDisplayName(v string) *FieldTypeCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *FieldTypeCreate) SetNillableDisplayName(v *string) *FieldTypeCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *FieldTypeCreate) SetDescription(v string) *FieldTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FieldTypeCreate) SetNillableDescription(v *string) *FieldTypeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *FieldTypeCreate) SetDataType(v fieldtype.DataType) *FieldTypeCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *FieldTypeCreate) SetSettings(v []byte) *FieldTypeCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FieldTypeCreate) SetID(v uuid.UUID) *FieldTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_c *FieldTypeCreate) AddFieldDefinitionIDs(ids ...uuid.UUID) *FieldTypeCreate {
	_c.mutation.AddFieldDefinitionIDs(ids...)
	return _c
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_c *FieldTypeCreate) AddFieldDefinitions(v ...*FieldDefinition) *FieldTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldDefinitionIDs(ids...)
}

// Mutation returns the FieldTypeMutation object of the builder.
func (_c *FieldTypeCreate) Mutation() *FieldTypeMutation {
	return _c.mutation
}

// Save creates the FieldType in the database.
func (_c *FieldTypeCreate) Save(ctx context.Context) (*FieldType, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldTypeCreate) SaveX(ctx context.Context) *FieldType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldTypeCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "FieldType.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := fieldtype.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "FieldType.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "FieldType.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "FieldType.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "FieldType.updated_on"`)}
	}
	if _, ok := _c.mutation.UniqueName(); !ok {
		return &ValidationError{Name: "unique_name", err: errors.New(`ent: missing required field "FieldType.unique_name"`)}
	}
	if v, ok := _c.mutation.UniqueName(); ok {
		if err := fieldtype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueNameNormalized(); !ok {
		return &ValidationError{Name: "unique_name_normalized", err: errors.New(`ent: missing required field "FieldType.unique_name_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueNameNormalized(); ok {
		if err := fieldtype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name_normalized": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "FieldType.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := fieldtype.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "FieldType.data_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "FieldType.settings"`)}
	}
	return nil
}

func (_c *FieldTypeCreate) sqlSave(ctx context.Context) (*FieldType, error) {
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

func (_c *FieldTypeCreate) createSpec() (*FieldType, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldtype.Table, sqlgraph.NewFieldSpec(fieldtype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(fieldtype.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(fieldtype.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(fieldtype.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(fieldtype.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(fieldtype.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(fieldtype.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(fieldtype.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.UniqueName(); ok {
		_spec.SetField(fieldtype.FieldUniqueName, field.TypeString, value)
		_node.UniqueName = value
	}
	if value, ok := _c.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fieldtype.FieldUniqueNameNormalized, field.TypeString, value)
		_node.UniqueNameNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(fieldtype.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(fieldtype.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(fieldtype.FieldDataType, field.TypeEnum, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(fieldtype.FieldSettings, field.TypeBytes, value)
		_node.Settings = value
	}
	if nodes := _c.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fieldtype.FieldDefinitionsTable,
			Columns: []string{fieldtype.FieldDefinitionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldTypeCreateBulk is the builder for creating many FieldType entities in bulk.
type FieldTypeCreateBulk struct {
	config
	err      error
	builders []*FieldTypeCreate
}

// Save creates the FieldType entities in the database.
func (_c *FieldTypeCreateBulk) Save(ctx context.Context) ([]*FieldType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldTypeMutation)
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
func (_c *FieldTypeCreateBulk) SaveX(ctx context.Context) []*FieldType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
