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
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
)

// ContentTypeCreate is the builder for creating a ContentType entity.
type ContentTypeCreate struct {
	config
	mutation *ContentTypeMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *ContentTypeCreate) SetStreamID(v string) *ContentTypeCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ContentTypeCreate) SetVersion(v int64) *ContentTypeCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ContentTypeCreate) SetCreatedBy(v string) *ContentTypeCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableCreatedBy(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *ContentTypeCreate) SetCreatedOn(v time.Time) *ContentTypeCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ContentTypeCreate) SetUpdatedBy(v string) *ContentTypeCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableUpdatedBy(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *ContentTypeCreate) SetUpdatedOn(v time.Time) *ContentTypeCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *ContentTypeCreate) SetRealmID(v uuid.UUID) *ContentTypeCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableRealmID(v *uuid.UUID) *ContentTypeCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetIsInvariant sets the "is_invariant" field.
func (_c *ContentTypeCreate) SetIsInvariant(v bool) *ContentTypeCreate {
	_c.mutation.SetIsInvariant(v)
	return _c
}

// SetNillableIsInvariant sets the "is_invariant" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableIsInvariant(v *bool) *ContentTypeCreate {
	if v != nil {
		_c.SetIsInvariant(*v)
	}
	return _c
}

// SetUniqueName sets the "unique_name" field.
func (_c *ContentTypeCreate) SetUniqueName(v string) *ContentTypeCreate {
	_c.mutation.SetUniqueName(v)
	return _c
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_c *ContentTypeCreate) SetUniqueNameNormalized(v string) *ContentTypeCreate {
	_c.mutation.SetUniqueNameNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ContentTypeCreate) SetDisplayName(v string) *ContentTypeCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableDisplayName(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ContentTypeCreate) SetDescription(v string) *ContentTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableDescription(v *string) *ContentTypeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFieldCount sets the "field_count" field.
func (_c *ContentTypeCreate) SetFieldCount(v int) *ContentTypeCreate {
	_c.mutation.SetFieldCount(v)
	return _c
}

// SetNillableFieldCount sets the "field_count" field if the given value is not nil.
func (_c *ContentTypeCreate) SetNillableFieldCount(v *int) *ContentTypeCreate {
	if v != nil {
		_c.SetFieldCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentTypeCreate) SetID(v uuid.UUID) *ContentTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_c *ContentTypeCreate) AddFieldDefinitionIDs(ids ...uuid.UUID) *ContentTypeCreate {
	_c.mutation.AddFieldDefinitionIDs(ids...)
	return _c
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_c *ContentTypeCreate) AddFieldDefinitions(v ...*FieldDefinition) *ContentTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldDefinitionIDs(ids...)
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_c *ContentTypeCreate) AddContentIDs(ids ...uuid.UUID) *ContentTypeCreate {
	_c.mutation.AddContentIDs(ids...)
	return _c
}

// AddContents adds the "contents" edges to the Content entity.
func (_c *ContentTypeCreate) AddContents(v ...*Content) *ContentTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContentIDs(ids...)
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_c *ContentTypeCreate) Mutation() *ContentTypeMutation {
	return _c.mutation
}

// Save creates the ContentType in the database.
func (_c *ContentTypeCreate) Save(ctx context.Context) (*ContentType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentTypeCreate) SaveX(ctx context.Context) *ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentTypeCreate) defaults() {
	if _, ok := _c.mutation.IsInvariant(); !ok {
		v := contenttype.DefaultIsInvariant
		_c.mutation.SetIsInvariant(v)
	}
	if _, ok := _c.mutation.FieldCount(); !ok {
		v := contenttype.DefaultFieldCount
		_c.mutation.SetFieldCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentTypeCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "ContentType.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := contenttype.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "ContentType.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ContentType.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "ContentType.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "ContentType.updated_on"`)}
	}
	if _, ok := _c.mutation.IsInvariant(); !ok {
		return &ValidationError{Name: "is_invariant", err: errors.New(`ent: missing required field "ContentType.is_invariant"`)}
	}
	if _, ok := _c.mutation.UniqueName(); !ok {
		return &ValidationError{Name: "unique_name", err: errors.New(`ent: missing required field "ContentType.unique_name"`)}
	}
	if v, ok := _c.mutation.UniqueName(); ok {
		if err := contenttype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueNameNormalized(); !ok {
		return &ValidationError{Name: "unique_name_normalized", err: errors.New(`ent: missing required field "ContentType.unique_name_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueNameNormalized(); ok {
		if err := contenttype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name_normalized": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldCount(); !ok {
		return &ValidationError{Name: "field_count", err: errors.New(`ent: missing required field "ContentType.field_count"`)}
	}
	return nil
}

func (_c *ContentTypeCreate) sqlSave(ctx context.Context) (*ContentType, error) {
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

func (_c *ContentTypeCreate) createSpec() (*ContentType, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contenttype.Table, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(contenttype.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(contenttype.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(contenttype.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(contenttype.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(contenttype.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(contenttype.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(contenttype.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.IsInvariant(); ok {
		_spec.SetField(contenttype.FieldIsInvariant, field.TypeBool, value)
		_node.IsInvariant = value
	}
	if value, ok := _c.mutation.UniqueName(); ok {
		_spec.SetField(contenttype.FieldUniqueName, field.TypeString, value)
		_node.UniqueName = value
	}
	if value, ok := _c.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contenttype.FieldUniqueNameNormalized, field.TypeString, value)
		_node.UniqueNameNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(contenttype.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FieldCount(); ok {
		_spec.SetField(contenttype.FieldFieldCount, field.TypeInt, value)
		_node.FieldCount = value
	}
	if nodes := _c.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contenttype.FieldDefinitionsTable,
			Columns: []string{contenttype.FieldDefinitionsColumn},
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
	if nodes := _c.mutation.ContentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contenttype.ContentsTable,
			Columns: []string{contenttype.ContentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContentTypeCreateBulk is the builder for creating many ContentType entities in bulk.
type ContentTypeCreateBulk struct {
	config
	err      error
	builders []*ContentTypeCreate
}

// Save creates the ContentType entities in the database.
func (_c *ContentTypeCreateBulk) Save(ctx context.Context) ([]*ContentType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentTypeMutation)
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
func (_c *ContentTypeCreateBulk) SaveX(ctx context.Context) []*ContentType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
