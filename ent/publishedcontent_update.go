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
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/publishedcontent"
)

// PublishedContentUpdate is the builder for updating PublishedContent entities.
type PublishedContentUpdate struct {
	config
	hooks    []Hook
	mutation *PublishedContentMutation
}

// Where appends a list predicates to the PublishedContentUpdate builder.
func (_u *PublishedContentUpdate) Where(ps ...predicate.PublishedContent) *PublishedContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *PublishedContentUpdate) SetUniqueName(v string) *PublishedContentUpdate {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillableUniqueName(v *string) *PublishedContentUpdate {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *PublishedContentUpdate) SetUniqueNameNormalized(v string) *PublishedContentUpdate {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillableUniqueNameNormalized(v *string) *PublishedContentUpdate {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PublishedContentUpdate) SetDisplayName(v string) *PublishedContentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillableDisplayName(v *string) *PublishedContentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PublishedContentUpdate) ClearDisplayName() *PublishedContentUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PublishedContentUpdate) SetDescription(v string) *PublishedContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillableDescription(v *string) *PublishedContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PublishedContentUpdate) ClearDescription() *PublishedContentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *PublishedContentUpdate) SetFieldValues(v map[string]string) *PublishedContentUpdate {
	_u.mutation.SetFieldValues(v)
	return _u
}

// ClearFieldValues clears the value of the "field_values" field.
func (_u *PublishedContentUpdate) ClearFieldValues() *PublishedContentUpdate {
	_u.mutation.ClearFieldValues()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PublishedContentUpdate) SetVersion(v int64) *PublishedContentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillableVersion(v *int64) *PublishedContentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PublishedContentUpdate) AddVersion(v int64) *PublishedContentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPublishedBy sets the "published_by" field.
func (_u *PublishedContentUpdate) SetPublishedBy(v string) *PublishedContentUpdate {
	_u.mutation.SetPublishedBy(v)
	return _u
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillablePublishedBy(v *string) *PublishedContentUpdate {
	if v != nil {
		_u.SetPublishedBy(*v)
	}
	return _u
}

// ClearPublishedBy clears the value of the "published_by" field.
func (_u *PublishedContentUpdate) ClearPublishedBy() *PublishedContentUpdate {
	_u.mutation.ClearPublishedBy()
	return _u
}

// SetPublishedOn sets the "published_on" field.
func (_u *PublishedContentUpdate) SetPublishedOn(v time.Time) *PublishedContentUpdate {
	_u.mutation.SetPublishedOn(v)
	return _u
}

// SetNillablePublishedOn sets the "published_on" field if the given value is not nil.
func (_u *PublishedContentUpdate) SetNillablePublishedOn(v *time.Time) *PublishedContentUpdate {
	if v != nil {
		_u.SetPublishedOn(*v)
	}
	return _u
}

// Mutation returns the PublishedContentMutation object of the builder.
func (_u *PublishedContentUpdate) Mutation() *PublishedContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PublishedContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishedContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PublishedContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishedContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishedContentUpdate) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := publishedcontent.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := publishedcontent.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *PublishedContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishedcontent.Table, publishedcontent.Columns, sqlgraph.NewFieldSpec(publishedcontent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(publishedcontent.FieldRealmID, field.TypeUUID)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(publishedcontent.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(publishedcontent.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(publishedcontent.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(publishedcontent.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(publishedcontent.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(publishedcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(publishedcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(publishedcontent.FieldFieldValues, field.TypeJSON, value)
	}
	if _u.mutation.FieldValuesCleared() {
		_spec.ClearField(publishedcontent.FieldFieldValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(publishedcontent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(publishedcontent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PublishedBy(); ok {
		_spec.SetField(publishedcontent.FieldPublishedBy, field.TypeString, value)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(publishedcontent.FieldPublishedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedOn(); ok {
		_spec.SetField(publishedcontent.FieldPublishedOn, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishedcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PublishedContentUpdateOne is the builder for updating a single PublishedContent entity.
type PublishedContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PublishedContentMutation
}

// SetUniqueName sets the "unique_name" field.
func (_u *PublishedContentUpdateOne) SetUniqueName(v string) *PublishedContentUpdateOne {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillableUniqueName(v *string) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *PublishedContentUpdateOne) SetUniqueNameNormalized(v string) *PublishedContentUpdateOne {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillableUniqueNameNormalized(v *string) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PublishedContentUpdateOne) SetDisplayName(v string) *PublishedContentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillableDisplayName(v *string) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PublishedContentUpdateOne) ClearDisplayName() *PublishedContentUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PublishedContentUpdateOne) SetDescription(v string) *PublishedContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillableDescription(v *string) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PublishedContentUpdateOne) ClearDescription() *PublishedContentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *PublishedContentUpdateOne) SetFieldValues(v map[string]string) *PublishedContentUpdateOne {
	_u.mutation.SetFieldValues(v)
	return _u
}

// ClearFieldValues clears the value of the "field_values" field.
func (_u *PublishedContentUpdateOne) ClearFieldValues() *PublishedContentUpdateOne {
	_u.mutation.ClearFieldValues()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PublishedContentUpdateOne) SetVersion(v int64) *PublishedContentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillableVersion(v *int64) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PublishedContentUpdateOne) AddVersion(v int64) *PublishedContentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPublishedBy sets the "published_by" field.
func (_u *PublishedContentUpdateOne) SetPublishedBy(v string) *PublishedContentUpdateOne {
	_u.mutation.SetPublishedBy(v)
	return _u
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillablePublishedBy(v *string) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetPublishedBy(*v)
	}
	return _u
}

// ClearPublishedBy clears the value of the "published_by" field.
func (_u *PublishedContentUpdateOne) ClearPublishedBy() *PublishedContentUpdateOne {
	_u.mutation.ClearPublishedBy()
	return _u
}

// SetPublishedOn sets the "published_on" field.
func (_u *PublishedContentUpdateOne) SetPublishedOn(v time.Time) *PublishedContentUpdateOne {
	_u.mutation.SetPublishedOn(v)
	return _u
}

// SetNillablePublishedOn sets the "published_on" field if the given value is not nil.
func (_u *PublishedContentUpdateOne) SetNillablePublishedOn(v *time.Time) *PublishedContentUpdateOne {
	if v != nil {
		_u.SetPublishedOn(*v)
	}
	return _u
}

// Mutation returns the PublishedContentMutation object of the builder.
func (_u *PublishedContentUpdateOne) Mutation() *PublishedContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the PublishedContentUpdate builder.
func (_u *PublishedContentUpdateOne) Where(ps ...predicate.PublishedContent) *PublishedContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PublishedContentUpdateOne) Select(field string, fields ...string) *PublishedContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PublishedContent entity.
func (_u *PublishedContentUpdateOne) Save(ctx context.Context) (*PublishedContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishedContentUpdateOne) SaveX(ctx context.Context) *PublishedContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PublishedContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishedContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishedContentUpdateOne) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := publishedcontent.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := publishedcontent.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *PublishedContentUpdateOne) sqlSave(ctx context.Context) (_node *PublishedContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishedcontent.Table, publishedcontent.Columns, sqlgraph.NewFieldSpec(publishedcontent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PublishedContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, publishedcontent.FieldID)
		for _, f := range fields {
			if !publishedcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != publishedcontent.FieldID {
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
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(publishedcontent.FieldRealmID, field.TypeUUID)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(publishedcontent.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(publishedcontent.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(publishedcontent.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(publishedcontent.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(publishedcontent.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(publishedcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(publishedcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(publishedcontent.FieldFieldValues, field.TypeJSON, value)
	}
	if _u.mutation.FieldValuesCleared() {
		_spec.ClearField(publishedcontent.FieldFieldValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(publishedcontent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(publishedcontent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PublishedBy(); ok {
		_spec.SetField(publishedcontent.FieldPublishedBy, field.TypeString, value)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(publishedcontent.FieldPublishedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedOn(); ok {
		_spec.SetField(publishedcontent.FieldPublishedOn, field.TypeTime, value)
	}
	_node = &PublishedContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishedcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
