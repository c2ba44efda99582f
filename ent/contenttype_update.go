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
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/predicate"
)

// ContentTypeUpdate is the builder for updating ContentType entities.
type ContentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *ContentTypeMutation
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdate) Where(ps ...predicate.ContentType) *ContentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ContentTypeUpdate) SetVersion(v int64) *ContentTypeUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableVersion(v *int64) *ContentTypeUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentTypeUpdate) AddVersion(v int64) *ContentTypeUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentTypeUpdate) SetUpdatedBy(v string) *ContentTypeUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableUpdatedBy(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentTypeUpdate) ClearUpdatedBy() *ContentTypeUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentTypeUpdate) SetUpdatedOn(v time.Time) *ContentTypeUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableUpdatedOn(v *time.Time) *ContentTypeUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *ContentTypeUpdate) SetUniqueName(v string) *ContentTypeUpdate {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableUniqueName(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *ContentTypeUpdate) SetUniqueNameNormalized(v string) *ContentTypeUpdate {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableUniqueNameNormalized(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ContentTypeUpdate) SetDisplayName(v string) *ContentTypeUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableDisplayName(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ContentTypeUpdate) ClearDisplayName() *ContentTypeUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentTypeUpdate) SetDescription(v string) *ContentTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableDescription(v *string) *ContentTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentTypeUpdate) ClearDescription() *ContentTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldCount sets the "field_count" field.
func (_u *ContentTypeUpdate) SetFieldCount(v int) *ContentTypeUpdate {
	_u.mutation.ResetFieldCount()
	_u.mutation.SetFieldCount(v)
	return _u
}

// SetNillableFieldCount sets the "field_count" field if the given value is not nil.
func (_u *ContentTypeUpdate) SetNillableFieldCount(v *int) *ContentTypeUpdate {
	if v != nil {
		_u.SetFieldCount(*v)
	}
	return _u
}

// AddFieldCount adds value to the "field_count" field.
func (_u *ContentTypeUpdate) AddFieldCount(v int) *ContentTypeUpdate {
	_u.mutation.AddFieldCount(v)
	return _u
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_u *ContentTypeUpdate) AddFieldDefinitionIDs(ids ...uuid.UUID) *ContentTypeUpdate {
	_u.mutation.AddFieldDefinitionIDs(ids...)
	return _u
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_u *ContentTypeUpdate) AddFieldDefinitions(v ...*FieldDefinition) *ContentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldDefinitionIDs(ids...)
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_u *ContentTypeUpdate) AddContentIDs(ids ...uuid.UUID) *ContentTypeUpdate {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the Content entity.
func (_u *ContentTypeUpdate) AddContents(v ...*Content) *ContentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdate) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// ClearFieldDefinitions clears all "field_definitions" edges to the FieldDefinition entity.
func (_u *ContentTypeUpdate) ClearFieldDefinitions() *ContentTypeUpdate {
	_u.mutation.ClearFieldDefinitions()
	return _u
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to FieldDefinition entities by IDs.
func (_u *ContentTypeUpdate) RemoveFieldDefinitionIDs(ids ...uuid.UUID) *ContentTypeUpdate {
	_u.mutation.RemoveFieldDefinitionIDs(ids...)
	return _u
}

// RemoveFieldDefinitions removes "field_definitions" edges to FieldDefinition entities.
func (_u *ContentTypeUpdate) RemoveFieldDefinitions(v ...*FieldDefinition) *ContentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldDefinitionIDs(ids...)
}

// ClearContents clears all "contents" edges to the Content entity.
func (_u *ContentTypeUpdate) ClearContents() *ContentTypeUpdate {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to Content entities by IDs.
func (_u *ContentTypeUpdate) RemoveContentIDs(ids ...uuid.UUID) *ContentTypeUpdate {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to Content entities.
func (_u *ContentTypeUpdate) RemoveContents(v ...*Content) *ContentTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdate) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := contenttype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := contenttype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(contenttype.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contenttype.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(contenttype.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(contenttype.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(contenttype.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(contenttype.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(contenttype.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(contenttype.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contenttype.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(contenttype.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(contenttype.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldCount(); ok {
		_spec.SetField(contenttype.FieldFieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldCount(); ok {
		_spec.AddField(contenttype.FieldFieldCount, field.TypeInt, value)
	}
	if _u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldDefinitionsIDs(); len(nodes) > 0 && !_u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentTypeUpdateOne is the builder for updating a single ContentType entity.
type ContentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentTypeMutation
}

// SetVersion sets the "version" field.
func (_u *ContentTypeUpdateOne) SetVersion(v int64) *ContentTypeUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableVersion(v *int64) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentTypeUpdateOne) AddVersion(v int64) *ContentTypeUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentTypeUpdateOne) SetUpdatedBy(v string) *ContentTypeUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableUpdatedBy(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentTypeUpdateOne) ClearUpdatedBy() *ContentTypeUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentTypeUpdateOne) SetUpdatedOn(v time.Time) *ContentTypeUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableUpdatedOn(v *time.Time) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *ContentTypeUpdateOne) SetUniqueName(v string) *ContentTypeUpdateOne {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableUniqueName(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *ContentTypeUpdateOne) SetUniqueNameNormalized(v string) *ContentTypeUpdateOne {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableUniqueNameNormalized(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ContentTypeUpdateOne) SetDisplayName(v string) *ContentTypeUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableDisplayName(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ContentTypeUpdateOne) ClearDisplayName() *ContentTypeUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentTypeUpdateOne) SetDescription(v string) *ContentTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableDescription(v *string) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentTypeUpdateOne) ClearDescription() *ContentTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldCount sets the "field_count" field.
func (_u *ContentTypeUpdateOne) SetFieldCount(v int) *ContentTypeUpdateOne {
	_u.mutation.ResetFieldCount()
	_u.mutation.SetFieldCount(v)
	return _u
}

// SetNillableFieldCount sets the "field_count" field if the given value is not nil.
func (_u *ContentTypeUpdateOne) SetNillableFieldCount(v *int) *ContentTypeUpdateOne {
	if v != nil {
		_u.SetFieldCount(*v)
	}
	return _u
}

// AddFieldCount adds value to the "field_count" field.
func (_u *ContentTypeUpdateOne) AddFieldCount(v int) *ContentTypeUpdateOne {
	_u.mutation.AddFieldCount(v)
	return _u
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by IDs.
func (_u *ContentTypeUpdateOne) AddFieldDefinitionIDs(ids ...uuid.UUID) *ContentTypeUpdateOne {
	_u.mutation.AddFieldDefinitionIDs(ids...)
	return _u
}

// AddFieldDefinitions adds the "field_definitions" edges to the FieldDefinition entity.
func (_u *ContentTypeUpdateOne) AddFieldDefinitions(v ...*FieldDefinition) *ContentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldDefinitionIDs(ids...)
}

// AddContentIDs adds the "contents" edge to the Content entity by IDs.
func (_u *ContentTypeUpdateOne) AddContentIDs(ids ...uuid.UUID) *ContentTypeUpdateOne {
	_u.mutation.AddContentIDs(ids...)
	return _u
}

// AddContents adds the "contents" edges to the Content entity.
func (_u *ContentTypeUpdateOne) AddContents(v ...*Content) *ContentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContentIDs(ids...)
}

// Mutation returns the ContentTypeMutation object of the builder.
func (_u *ContentTypeUpdateOne) Mutation() *ContentTypeMutation {
	return _u.mutation
}

// ClearFieldDefinitions clears all "field_definitions" edges to the FieldDefinition entity.
func (_u *ContentTypeUpdateOne) ClearFieldDefinitions() *ContentTypeUpdateOne {
	_u.mutation.ClearFieldDefinitions()
	return _u
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to FieldDefinition entities by IDs.
func (_u *ContentTypeUpdateOne) RemoveFieldDefinitionIDs(ids ...uuid.UUID) *ContentTypeUpdateOne {
	_u.mutation.RemoveFieldDefinitionIDs(ids...)
	return _u
}

// RemoveFieldDefinitions removes "field_definitions" edges to FieldDefinition entities.
func (_u *ContentTypeUpdateOne) RemoveFieldDefinitions(v ...*FieldDefinition) *ContentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldDefinitionIDs(ids...)
}

// ClearContents clears all "contents" edges to the Content entity.
func (_u *ContentTypeUpdateOne) ClearContents() *ContentTypeUpdateOne {
	_u.mutation.ClearContents()
	return _u
}

// RemoveContentIDs removes the "contents" edge to Content entities by IDs.
func (_u *ContentTypeUpdateOne) RemoveContentIDs(ids ...uuid.UUID) *ContentTypeUpdateOne {
	_u.mutation.RemoveContentIDs(ids...)
	return _u
}

// RemoveContents removes "contents" edges to Content entities.
func (_u *ContentTypeUpdateOne) RemoveContents(v ...*Content) *ContentTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContentIDs(ids...)
}

// Where appends a list predicates to the ContentTypeUpdate builder.
func (_u *ContentTypeUpdateOne) Where(ps ...predicate.ContentType) *ContentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentTypeUpdateOne) Select(field string, fields ...string) *ContentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentType entity.
func (_u *ContentTypeUpdateOne) Save(ctx context.Context) (*ContentType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) SaveX(ctx context.Context) *ContentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := contenttype.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := contenttype.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentType.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentTypeUpdateOne) sqlSave(ctx context.Context) (_node *ContentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contenttype.Table, contenttype.Columns, sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contenttype.FieldID)
		for _, f := range fields {
			if !contenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contenttype.FieldID {
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
		_spec.SetField(contenttype.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contenttype.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(contenttype.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(contenttype.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(contenttype.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(contenttype.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(contenttype.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(contenttype.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contenttype.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(contenttype.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(contenttype.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldCount(); ok {
		_spec.SetField(contenttype.FieldFieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFieldCount(); ok {
		_spec.AddField(contenttype.FieldFieldCount, field.TypeInt, value)
	}
	if _u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldDefinitionsIDs(); len(nodes) > 0 && !_u.mutation.FieldDefinitionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefinitionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContentsIDs(); len(nodes) > 0 && !_u.mutation.ContentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
