// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
)

// FieldDefinitionCreate is the builder for creating a FieldDefinition entity.
type FieldDefinitionCreate struct {
	config
	mutation *FieldDefinitionMutation
	hooks    []Hook
}

// SetContentTypeID sets the "content_type_id" field.
func (_c *FieldDefinitionCreate) SetContentTypeID(v uuid.UUID) *FieldDefinitionCreate {
	_c.mutation.SetContentTypeID(v)
	return _c
}

// SetFieldTypeID sets the "field_type_id" field.
func (_c *FieldDefinitionCreate) SetFieldTypeID(v uuid.UUID) *FieldDefinitionCreate {
	_c.mutation.SetFieldTypeID(v)
	return _c
}

// SetOrder sets the "order" field.
func (_c *FieldDefinitionCreate) SetOrder(v int) *FieldDefinitionCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetIsInvariant sets the "is_invariant" field.
func (_c *FieldDefinitionCreate) SetIsInvariant(v bool) *FieldDefinitionCreate {
	_c.mutation.SetIsInvariant(v)
	return _c
}

// SetNillableIsInvariant sets the "is_invariant" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableIsInvariant(v *bool) *FieldDefinitionCreate {
	if v != nil {
		_c.SetIsInvariant(*v)
	}
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *FieldDefinitionCreate) SetIsRequired(v bool) *FieldDefinitionCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableIsRequired(v *bool) *FieldDefinitionCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetIsIndexed sets the "is_indexed" field.
func (_c *FieldDefinitionCreate) SetIsIndexed(v bool) *FieldDefinitionCreate {
	_c.mutation.SetIsIndexed(v)
	return _c
}

// SetNillableIsIndexed sets the "is_indexed" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableIsIndexed(v *bool) *FieldDefinitionCreate {
	if v != nil {
		_c.SetIsIndexed(*v)
	}
	return _c
}

// SetIsUnique sets the "is_unique" field.
func (_c *FieldDefinitionCreate) SetIsUnique(v bool) *FieldDefinitionCreate {
	_c.mutation.SetIsUnique(v)
	return _c
}

// SetNillableIsUnique sets the "is_unique" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableIsUnique(v *bool) *FieldDefinitionCreate {
	if v != nil {
		_c.SetIsUnique(*v)
	}
	return _c
}

// SetUniqueName sets the "unique_name" field.
func (_c *FieldDefinitionCreate) SetUniqueName(v string) *FieldDefinitionCreate {
	_c.mutation.SetUniqueName(v)
	return _c
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_c *FieldDefinitionCreate) SetUniqueNameNormalized(v string) *FieldDefinitionCreate {
	_c.mutation.SetUniqueNameNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *FieldDefinitionCreate) SetDisplayName(v string) *FieldDefinitionCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableDisplayName(v *string) *FieldDefinitionCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *FieldDefinitionCreate) SetDescription(v string) *FieldDefinitionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableDescription(v *string) *FieldDefinitionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPlaceholder sets the "placeholder" field.
func (_c *FieldDefinitionCreate) SetPlaceholder(v string) *FieldDefinitionCreate {
	_c.mutation.SetPlaceholder(v)
	return _c
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillablePlaceholder(v *string) *FieldDefinitionCreate {
	if v != nil {
		_c.SetPlaceholder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldDefinitionCreate) SetID(v uuid.UUID) *FieldDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContentType sets the "content_type" edge to the ContentType entity.
func (_c *FieldDefinitionCreate) SetContentType(v *ContentType) *FieldDefinitionCreate {
	return _c.SetContentTypeID(v.ID)
}

// SetFieldType sets the "field_type" edge to the FieldType entity.
func (_c *FieldDefinitionCreate) SetFieldType(v *FieldType) *FieldDefinitionCreate {
	return _c.SetFieldTypeID(v.ID)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_c *FieldDefinitionCreate) Mutation() *FieldDefinitionMutation {
	return _c.mutation
}

// Save creates the FieldDefinition in the database.
func (_c *FieldDefinitionCreate) Save(ctx context.Context) (*FieldDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldDefinitionCreate) SaveX(ctx context.Context) *FieldDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldDefinitionCreate) defaults() {
	if _, ok := _c.mutation.IsInvariant(); !ok {
		v := fielddefinition.DefaultIsInvariant
		_c.mutation.SetIsInvariant(v)
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := fielddefinition.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
	if _, ok := _c.mutation.IsIndexed(); !ok {
		v := fielddefinition.DefaultIsIndexed
		_c.mutation.SetIsIndexed(v)
	}
	if _, ok := _c.mutation.IsUnique(); !ok {
		v := fielddefinition.DefaultIsUnique
		_c.mutation.SetIsUnique(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldDefinitionCreate) check() error {
	if _, ok := _c.mutation.ContentTypeID(); !ok {
		return &ValidationError{Name: "content_type_id", err: errors.New(`ent: missing required field "FieldDefinition.content_type_id"`)}
	}
	if _, ok := _c.mutation.FieldTypeID(); !ok {
		return &ValidationError{Name: "field_type_id", err: errors.New(`ent: missing required field "FieldDefinition.field_type_id"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "FieldDefinition.order"`)}
	}
	if v, ok := _c.mutation.Order(); ok {
		if err := fielddefinition.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsInvariant(); !ok {
		return &ValidationError{Name: "is_invariant", err: errors.New(`ent: missing required field "FieldDefinition.is_invariant"`)}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`ent: missing required field "FieldDefinition.is_required"`)}
	}
	if _, ok := _c.mutation.IsIndexed(); !ok {
		return &ValidationError{Name: "is_indexed", err: errors.New(`ent: missing required field "FieldDefinition.is_indexed"`)}
	}
	if _, ok := _c.mutation.IsUnique(); !ok {
		return &ValidationError{Name: "is_unique", err: errors.New(`ent: missing required field "FieldDefinition.is_unique"`)}
	}
	if _, ok := _c.mutation.UniqueName(); !ok {
		return &ValidationError{Name: "unique_name", err: errors.New(`ent: missing required field "FieldDefinition.unique_name"`)}
	}
	if v, ok := _c.mutation.UniqueName(); ok {
		if err := fielddefinition.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueNameNormalized(); !ok {
		return &ValidationError{Name: "unique_name_normalized", err: errors.New(`ent: missing required field "FieldDefinition.unique_name_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueNameNormalized(); ok {
		if err := fielddefinition.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name_normalized": %w`, err)}
		}
	}
	if len(_c.mutation.ContentTypeIDs()) == 0 {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required edge "FieldDefinition.content_type"`)}
	}
	if len(_c.mutation.FieldTypeIDs()) == 0 {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required edge "FieldDefinition.field_type"`)}
	}
	return nil
}

func (_c *FieldDefinitionCreate) sqlSave(ctx context.Context) (*FieldDefinition, error) {
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

func (_c *FieldDefinitionCreate) createSpec() (*FieldDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fielddefinition.Table, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(fielddefinition.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.IsInvariant(); ok {
		_spec.SetField(fielddefinition.FieldIsInvariant, field.TypeBool, value)
		_node.IsInvariant = value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(fielddefinition.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	if value, ok := _c.mutation.IsIndexed(); ok {
		_spec.SetField(fielddefinition.FieldIsIndexed, field.TypeBool, value)
		_node.IsIndexed = value
	}
	if value, ok := _c.mutation.IsUnique(); ok {
		_spec.SetField(fielddefinition.FieldIsUnique, field.TypeBool, value)
		_node.IsUnique = value
	}
	if value, ok := _c.mutation.UniqueName(); ok {
		_spec.SetField(fielddefinition.FieldUniqueName, field.TypeString, value)
		_node.UniqueName = value
	}
	if value, ok := _c.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fielddefinition.FieldUniqueNameNormalized, field.TypeString, value)
		_node.UniqueNameNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(fielddefinition.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(fielddefinition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Placeholder(); ok {
		_spec.SetField(fielddefinition.FieldPlaceholder, field.TypeString, value)
		_node.Placeholder = value
	}
	if nodes := _c.mutation.ContentTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fielddefinition.ContentTypeTable,
			Columns: []string{fielddefinition.ContentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContentTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fielddefinition.FieldTypeTable,
			Columns: []string{fielddefinition.FieldTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldtype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FieldTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldDefinitionCreateBulk is the builder for creating many FieldDefinition entities in bulk.
type FieldDefinitionCreateBulk struct {
	config
	err      error
	builders []*FieldDefinitionCreate
}

// Save creates the FieldDefinition entities in the database.
func (_c *FieldDefinitionCreateBulk) Save(ctx context.Context) ([]*FieldDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldDefinitionMutation)
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
func (_c *FieldDefinitionCreateBulk) SaveX(ctx context.Context) []*FieldDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
