// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/predicate"
)

// FieldDefinitionUpdate is the builder for updating FieldDefinition entities.
type FieldDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *FieldDefinitionMutation
}

// Where appends a list predicates to the FieldDefinitionUpdate builder.
func (_u *FieldDefinitionUpdate) Where(ps ...predicate.FieldDefinition) *FieldDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *FieldDefinitionUpdate) SetFieldTypeID(v uuid.UUID) *FieldDefinitionUpdate {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableFieldTypeID(v *uuid.UUID) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *FieldDefinitionUpdate) SetOrder(v int) *FieldDefinitionUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableOrder(v *int) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *FieldDefinitionUpdate) AddOrder(v int) *FieldDefinitionUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsInvariant sets the "is_invariant" field.
func (_u *FieldDefinitionUpdate) SetIsInvariant(v bool) *FieldDefinitionUpdate {
	_u.mutation.SetIsInvariant(v)
	return _u
}

// SetNillableIsInvariant sets the "is_invariant" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableIsInvariant(v *bool) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetIsInvariant(*v)
	}
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *FieldDefinitionUpdate) SetIsRequired(v bool) *FieldDefinitionUpdate {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableIsRequired(v *bool) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetIsIndexed sets the "is_indexed" field.
func (_u *FieldDefinitionUpdate) SetIsIndexed(v bool) *FieldDefinitionUpdate {
	_u.mutation.SetIsIndexed(v)
	return _u
}

// SetNillableIsIndexed sets the "is_indexed" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableIsIndexed(v *bool) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetIsIndexed(*v)
	}
	return _u
}

// SetIsUnique sets the "is_unique" field.
func (_u *FieldDefinitionUpdate) SetIsUnique(v bool) *FieldDefinitionUpdate {
	_u.mutation.SetIsUnique(v)
	return _u
}

// SetNillableIsUnique sets the "is_unique" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableIsUnique(v *bool) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetIsUnique(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *FieldDefinitionUpdate) SetUniqueName(v string) *FieldDefinitionUpdate {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableUniqueName(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *FieldDefinitionUpdate) SetUniqueNameNormalized(v string) *FieldDefinitionUpdate {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableUniqueNameNormalized(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *FieldDefinitionUpdate) SetDisplayName(v string) *FieldDefinitionUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableDisplayName(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *FieldDefinitionUpdate) ClearDisplayName() *FieldDefinitionUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *FieldDefinitionUpdate) SetDescription(v string) *FieldDefinitionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableDescription(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FieldDefinitionUpdate) ClearDescription() *FieldDefinitionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPlaceholder sets the "placeholder" field.
func (_u *FieldDefinitionUpdate) SetPlaceholder(v string) *FieldDefinitionUpdate {
	_u.mutation.SetPlaceholder(v)
	return _u
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillablePlaceholder(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetPlaceholder(*v)
	}
	return _u
}

// ClearPlaceholder clears the value of the "placeholder" field.
func (_u *FieldDefinitionUpdate) ClearPlaceholder() *FieldDefinitionUpdate {
	_u.mutation.ClearPlaceholder()
	return _u
}

// SetFieldType sets the "field_type" edge to the FieldType entity.
func (_u *FieldDefinitionUpdate) SetFieldType(v *FieldType) *FieldDefinitionUpdate {
	return _u.SetFieldTypeID(v.ID)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_u *FieldDefinitionUpdate) Mutation() *FieldDefinitionMutation {
	return _u.mutation
}

// ClearFieldType clears the "field_type" edge to the FieldType entity.
func (_u *FieldDefinitionUpdate) ClearFieldType() *FieldDefinitionUpdate {
	_u.mutation.ClearFieldType()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Order(); ok {
		if err := fielddefinition.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := fielddefinition.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := fielddefinition.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name_normalized": %w`, err)}
		}
	}
	if _u.mutation.ContentTypeCleared() && len(_u.mutation.ContentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldDefinition.content_type"`)
	}
	if _u.mutation.FieldTypeCleared() && len(_u.mutation.FieldTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldDefinition.field_type"`)
	}
	return nil
}

func (_u *FieldDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fielddefinition.Table, fielddefinition.Columns, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(fielddefinition.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(fielddefinition.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsInvariant(); ok {
		_spec.SetField(fielddefinition.FieldIsInvariant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(fielddefinition.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsIndexed(); ok {
		_spec.SetField(fielddefinition.FieldIsIndexed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsUnique(); ok {
		_spec.SetField(fielddefinition.FieldIsUnique, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(fielddefinition.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fielddefinition.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(fielddefinition.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(fielddefinition.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(fielddefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(fielddefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Placeholder(); ok {
		_spec.SetField(fielddefinition.FieldPlaceholder, field.TypeString, value)
	}
	if _u.mutation.PlaceholderCleared() {
		_spec.ClearField(fielddefinition.FieldPlaceholder, field.TypeString)
	}
	if _u.mutation.FieldTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fielddefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldDefinitionUpdateOne is the builder for updating a single FieldDefinition entity.
type FieldDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldDefinitionMutation
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *FieldDefinitionUpdateOne) SetFieldTypeID(v uuid.UUID) *FieldDefinitionUpdateOne {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableFieldTypeID(v *uuid.UUID) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *FieldDefinitionUpdateOne) SetOrder(v int) *FieldDefinitionUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableOrder(v *int) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *FieldDefinitionUpdateOne) AddOrder(v int) *FieldDefinitionUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsInvariant sets the "is_invariant" field.
func (_u *FieldDefinitionUpdateOne) SetIsInvariant(v bool) *FieldDefinitionUpdateOne {
	_u.mutation.SetIsInvariant(v)
	return _u
}

// SetNillableIsInvariant sets the "is_invariant" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableIsInvariant(v *bool) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetIsInvariant(*v)
	}
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *FieldDefinitionUpdateOne) SetIsRequired(v bool) *FieldDefinitionUpdateOne {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableIsRequired(v *bool) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetIsIndexed sets the "is_indexed" field.
func (_u *FieldDefinitionUpdateOne) SetIsIndexed(v bool) *FieldDefinitionUpdateOne {
	_u.mutation.SetIsIndexed(v)
	return _u
}

// SetNillableIsIndexed sets the "is_indexed" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableIsIndexed(v *bool) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetIsIndexed(*v)
	}
	return _u
}

// SetIsUnique sets the "is_unique" field.
func (_u *FieldDefinitionUpdateOne) SetIsUnique(v bool) *FieldDefinitionUpdateOne {
	_u.mutation.SetIsUnique(v)
	return _u
}

// SetNillableIsUnique sets the "is_unique" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableIsUnique(v *bool) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetIsUnique(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *FieldDefinitionUpdateOne) SetUniqueName(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableUniqueName(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *FieldDefinitionUpdateOne) SetUniqueNameNormalized(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableUniqueNameNormalized(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *FieldDefinitionUpdateOne) SetDisplayName(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableDisplayName(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *FieldDefinitionUpdateOne) ClearDisplayName() *FieldDefinitionUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *FieldDefinitionUpdateOne) SetDescription(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableDescription(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FieldDefinitionUpdateOne) ClearDescription() *FieldDefinitionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPlaceholder sets the "placeholder" field.
func (_u *FieldDefinitionUpdateOne) SetPlaceholder(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetPlaceholder(v)
	return _u
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillablePlaceholder(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetPlaceholder(*v)
	}
	return _u
}

// ClearPlaceholder clears the value of the "placeholder" field.
func (_u *FieldDefinitionUpdateOne) ClearPlaceholder() *FieldDefinitionUpdateOne {
	_u.mutation.ClearPlaceholder()
	return _u
}

// SetFieldType sets the "field_type" edge to the FieldType entity.
func (_u *FieldDefinitionUpdateOne) SetFieldType(v *FieldType) *FieldDefinitionUpdateOne {
	return _u.SetFieldTypeID(v.ID)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_u *FieldDefinitionUpdateOne) Mutation() *FieldDefinitionMutation {
	return _u.mutation
}

// ClearFieldType clears the "field_type" edge to the FieldType entity.
func (_u *FieldDefinitionUpdateOne) ClearFieldType() *FieldDefinitionUpdateOne {
	_u.mutation.ClearFieldType()
	return _u
}

// Where appends a list predicates to the FieldDefinitionUpdate builder.
func (_u *FieldDefinitionUpdateOne) Where(ps ...predicate.FieldDefinition) *FieldDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldDefinitionUpdateOne) Select(field string, fields ...string) *FieldDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldDefinition entity.
func (_u *FieldDefinitionUpdateOne) Save(ctx context.Context) (*FieldDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldDefinitionUpdateOne) SaveX(ctx context.Context) *FieldDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Order(); ok {
		if err := fielddefinition.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := fielddefinition.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := fielddefinition.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.unique_name_normalized": %w`, err)}
		}
	}
	if _u.mutation.ContentTypeCleared() && len(_u.mutation.ContentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldDefinition.content_type"`)
	}
	if _u.mutation.FieldTypeCleared() && len(_u.mutation.FieldTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldDefinition.field_type"`)
	}
	return nil
}

func (_u *FieldDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *FieldDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fielddefinition.Table, fielddefinition.Columns, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fielddefinition.FieldID)
		for _, f := range fields {
			if !fielddefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fielddefinition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(fielddefinition.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(fielddefinition.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsInvariant(); ok {
		_spec.SetField(fielddefinition.FieldIsInvariant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(fielddefinition.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsIndexed(); ok {
		_spec.SetField(fielddefinition.FieldIsIndexed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsUnique(); ok {
		_spec.SetField(fielddefinition.FieldIsUnique, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(fielddefinition.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fielddefinition.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(fielddefinition.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(fielddefinition.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(fielddefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(fielddefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Placeholder(); ok {
		_spec.SetField(fielddefinition.FieldPlaceholder, field.TypeString, value)
	}
	if _u.mutation.PlaceholderCleared() {
		_spec.ClearField(fielddefinition.FieldPlaceholder, field.TypeString)
	}
	if _u.mutation.FieldTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fielddefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
