// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/predicate"
)

// FieldTypeUpdate is the builder for updating FieldType entities.
type FieldTypeUpdate struct {
	config
	hooks    []Hook
	mutation *FieldTypeMutation
}

// Where appends a list predicates to the FieldTypeUpdate builder.
func (_u *FieldTypeUpdate) Where(ps ...predicate.FieldType) *FieldTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *FieldTypeUpdate) SetVersion(v int64) *FieldTypeUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableVersion(v *int64) *FieldTypeUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldTypeUpdate) AddVersion(v int64) *FieldTypeUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FieldTypeUpdate) SetUpdatedBy(v string) *FieldTypeUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableUpdatedBy(v *string) *FieldTypeUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *FieldTypeUpdate) ClearUpdatedBy() *FieldTypeUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *FieldTypeUpdate) SetUpdatedOn(v time.Time) *FieldTypeUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableUpdatedOn(v *time.Time) *FieldTypeUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *FieldTypeUpdate) SetUniqueName(v string) *FieldTypeUpdate {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableUniqueName(v *string) *FieldTypeUpdate {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *FieldTypeUpdate) SetUniqueNameNormalized(v string) *FieldTypeUpdate {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableUniqueNameNormalized(v *string) *FieldTypeUpdate {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *FieldTypeUpdate) SetDisplayName(v string) *FieldTypeUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableDisplayName(v *string) *FieldTypeUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *FieldTypeUpdate) ClearDisplayName() *FieldTypeUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *FieldTypeUpdate) SetDescription(v string) *FieldTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FieldTypeUpdate) SetNillableDescription(v *string) *FieldTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FieldTypeUpdate) ClearDescription() *FieldTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *FieldTypeUpdate) SetSettings(v []byte) *FieldTypeUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_u *FieldTypeUpdate) AddFieldDefinitionIDs(ids ...uuid.UUID) *FieldTypeUpdate {
	_u.mutation.AddFieldDefinitionIDs(ids...)
	return _u
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_u *FieldTypeUpdate) AddFieldDefinitions(v ...*FieldDefinition) *FieldTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldDefinitionIDs(ids...)
}

// Mutation returns the FieldTypeMutation object of the builder.
func (_u *FieldTypeUpdate) Mutation() *FieldTypeMutation {
	return _u.mutation
}

// ClearFieldDefinitions clears all "field_definitions" edges to the FieldDefinition entity.
func (_u *FieldTypeUpdate) ClearFieldDefinitions() *FieldTypeUpdate {
	_u.mutation.ClearFieldDefinitions()
	return _u
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to FieldDefinition entities by IDs.
func (_u *FieldTypeUpdate) RemoveFieldDefinitionIDs(ids ...uuid.UUID) *FieldTypeUpdate {
	_u.mutation.RemoveFieldDefinitionIDs(ids...)
	return _u
}

// RemoveFieldDefinitions removes "field_definitions" edges to FieldDefinition entities.
func (_u *FieldTypeUpdate) RemoveFieldDefinitions(v ...*FieldDefinition) *FieldTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldDefinitionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldTypeUpdate) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := fieldtype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := fieldtype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldtype.Table, fieldtype.Columns, sqlgraph.NewFieldSpec(fieldtype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldtype.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldtype.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(fieldtype.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(fieldtype.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(fieldtype.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(fieldtype.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(fieldtype.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(fieldtype.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fieldtype.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(fieldtype.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(fieldtype.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(fieldtype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(fieldtype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(fieldtype.FieldSettings, field.TypeBytes, value)
	}
	if _u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldDefinitionsIDs(); len(nodes) > 0 && !_u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldTypeUpdateOne is the builder for updating a single FieldType entity.
type FieldTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldTypeMutation
}

// SetVersion sets the "version" field.
func (_u *FieldTypeUpdateOne) SetVersion(v int64) *FieldTypeUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableVersion(v *int64) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldTypeUpdateOne) AddVersion(v int64) *FieldTypeUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *FieldTypeUpdateOne) SetUpdatedBy(v string) *FieldTypeUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableUpdatedBy(v *string) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *FieldTypeUpdateOne) ClearUpdatedBy() *FieldTypeUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *FieldTypeUpdateOne) SetUpdatedOn(v time.Time) *FieldTypeUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableUpdatedOn(v *time.Time) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *FieldTypeUpdateOne) SetUniqueName(v string) *FieldTypeUpdateOne {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableUniqueName(v *string) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *FieldTypeUpdateOne) SetUniqueNameNormalized(v string) *FieldTypeUpdateOne {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableUniqueNameNormalized(v *string) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *FieldTypeUpdateOne) SetDisplayName(v string) *FieldTypeUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableDisplayName(v *string) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *FieldTypeUpdateOne) ClearDisplayName() *FieldTypeUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *FieldTypeUpdateOne) SetDescription(v string) *FieldTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *FieldTypeUpdateOne) SetNillableDescription(v *string) *FieldTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *FieldTypeUpdateOne) ClearDescription() *FieldTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *FieldTypeUpdateOne) SetSettings(v []byte) *FieldTypeUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_u *FieldTypeUpdateOne) AddFieldDefinitionIDs(ids ...uuid.UUID) *FieldTypeUpdateOne {
	_u.mutation.AddFieldDefinitionIDs(ids...)
	return _u
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_u *FieldTypeUpdateOne) AddFieldDefinitions(v ...*FieldDefinition) *FieldTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldDefinitionIDs(ids...)
}

// Mutation returns the FieldTypeMutation object of the builder.
func (_u *FieldTypeUpdateOne) Mutation() *FieldTypeMutation {
	return _u.mutation
}

// ClearFieldDefinitions clears all "field_definitions" edges to the FieldDefinition entity.
func (_u *FieldTypeUpdateOne) ClearFieldDefinitions() *FieldTypeUpdateOne {
	_u.mutation.ClearFieldDefinitions()
	return _u
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to FieldDefinition entities by IDs.
func (_u *FieldTypeUpdateOne) RemoveFieldDefinitionIDs(ids ...uuid.UUID) *FieldTypeUpdateOne {
	_u.mutation.RemoveFieldDefinitionIDs(ids...)
	return _u
}

// RemoveFieldDefinitions removes "field_definitions" edges to FieldDefinition entities.
func (_u *FieldTypeUpdateOne) RemoveFieldDefinitions(v ...*FieldDefinition) *FieldTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldDefinitionIDs(ids...)
}

// Where appends a list predicates to the FieldTypeUpdate builder.
func (_u *FieldTypeUpdateOne) Where(ps ...predicate.FieldType) *FieldTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldTypeUpdateOne) Select(field string, fields ...string) *FieldTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldType entity.
func (_u *FieldTypeUpdateOne) Save(ctx context.Context) (*FieldType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldTypeUpdateOne) SaveX(ctx context.Context) *FieldType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldTypeUpdateOne) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := fieldtype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := fieldtype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "FieldType.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldTypeUpdateOne) sqlSave(ctx context.Context) (_node *FieldType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldtype.Table, fieldtype.Columns, sqlgraph.NewFieldSpec(fieldtype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldtype.FieldID)
		for _, f := range fields {
			if !fieldtype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldtype.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldtype.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldtype.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(fieldtype.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(fieldtype.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(fieldtype.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(fieldtype.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(fieldtype.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(fieldtype.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(fieldtype.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(fieldtype.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(fieldtype.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(fieldtype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(fieldtype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(fieldtype.FieldSettings, field.TypeBytes, value)
	}
	if _u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldDefinitionsIDs(); len(nodes) > 0 && !_u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldtype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
