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
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/predicate"
)

// ContentLocaleUpdate is the builder for updating ContentLocale entities.
type ContentLocaleUpdate struct {
	config
	hooks    []Hook
	mutation *ContentLocaleMutation
}

// Where appends a list predicates to the ContentLocaleUpdate builder.
func (_u *ContentLocaleUpdate) Where(ps ...predicate.ContentLocale) *ContentLocaleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ContentLocaleUpdate) SetVersion(v int64) *ContentLocaleUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableVersion(v *int64) *ContentLocaleUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentLocaleUpdate) AddVersion(v int64) *ContentLocaleUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentLocaleUpdate) SetUpdatedBy(v string) *ContentLocaleUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableUpdatedBy(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentLocaleUpdate) ClearUpdatedBy() *ContentLocaleUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentLocaleUpdate) SetUpdatedOn(v time.Time) *ContentLocaleUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableUpdatedOn(v *time.Time) *ContentLocaleUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *ContentLocaleUpdate) SetUniqueName(v string) *ContentLocaleUpdate {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableUniqueName(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *ContentLocaleUpdate) SetUniqueNameNormalized(v string) *ContentLocaleUpdate {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableUniqueNameNormalized(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ContentLocaleUpdate) SetDisplayName(v string) *ContentLocaleUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableDisplayName(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ContentLocaleUpdate) ClearDisplayName() *ContentLocaleUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentLocaleUpdate) SetDescription(v string) *ContentLocaleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableDescription(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentLocaleUpdate) ClearDescription() *ContentLocaleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *ContentLocaleUpdate) SetFieldValues(v map[string]string) *ContentLocaleUpdate {
	_u.mutation.SetFieldValues(v)
	return _u
}

// ClearFieldValues clears the value of the "field_values" field.
func (_u *ContentLocaleUpdate) ClearFieldValues() *ContentLocaleUpdate {
	_u.mutation.ClearFieldValues()
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *ContentLocaleUpdate) SetIsPublished(v bool) *ContentLocaleUpdate {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillableIsPublished(v *bool) *ContentLocaleUpdate {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetPublishedVersion sets the "published_version" field.
func (_u *ContentLocaleUpdate) SetPublishedVersion(v int64) *ContentLocaleUpdate {
	_u.mutation.ResetPublishedVersion()
	_u.mutation.SetPublishedVersion(v)
	return _u
}

// SetNillablePublishedVersion sets the "published_version" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillablePublishedVersion(v *int64) *ContentLocaleUpdate {
	if v != nil {
		_u.SetPublishedVersion(*v)
	}
	return _u
}

// AddPublishedVersion adds value to the "published_version" field.
func (_u *ContentLocaleUpdate) AddPublishedVersion(v int64) *ContentLocaleUpdate {
	_u.mutation.AddPublishedVersion(v)
	return _u
}

// ClearPublishedVersion clears the value of the "published_version" field.
func (_u *ContentLocaleUpdate) ClearPublishedVersion() *ContentLocaleUpdate {
	_u.mutation.ClearPublishedVersion()
	return _u
}

// SetPublishedBy sets the "published_by" field.
func (_u *ContentLocaleUpdate) SetPublishedBy(v string) *ContentLocaleUpdate {
	_u.mutation.SetPublishedBy(v)
	return _u
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillablePublishedBy(v *string) *ContentLocaleUpdate {
	if v != nil {
		_u.SetPublishedBy(*v)
	}
	return _u
}

// ClearPublishedBy clears the value of the "published_by" field.
func (_u *ContentLocaleUpdate) ClearPublishedBy() *ContentLocaleUpdate {
	_u.mutation.ClearPublishedBy()
	return _u
}

// SetPublishedOn sets the "published_on" field.
func (_u *ContentLocaleUpdate) SetPublishedOn(v time.Time) *ContentLocaleUpdate {
	_u.mutation.SetPublishedOn(v)
	return _u
}

// SetNillablePublishedOn sets the "published_on" field if the given value is not nil.
func (_u *ContentLocaleUpdate) SetNillablePublishedOn(v *time.Time) *ContentLocaleUpdate {
	if v != nil {
		_u.SetPublishedOn(*v)
	}
	return _u
}

// ClearPublishedOn clears the value of the "published_on" field.
func (_u *ContentLocaleUpdate) ClearPublishedOn() *ContentLocaleUpdate {
	_u.mutation.ClearPublishedOn()
	return _u
}

// Mutation returns the ContentLocaleMutation object of the builder.
func (_u *ContentLocaleUpdate) Mutation() *ContentLocaleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentLocaleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentLocaleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentLocaleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentLocaleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentLocaleUpdate) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := contentlocale.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := contentlocale.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name_normalized": %w`, err)}
		}
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentLocale.content"`)
	}
	return nil
}

func (_u *ContentLocaleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentlocale.Table, contentlocale.Columns, sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(contentlocale.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contentlocale.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(contentlocale.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(contentlocale.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(contentlocale.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(contentlocale.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(contentlocale.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(contentlocale.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contentlocale.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(contentlocale.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(contentlocale.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contentlocale.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contentlocale.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(contentlocale.FieldFieldValues, field.TypeJSON, value)
	}
	if _u.mutation.FieldValuesCleared() {
		_spec.ClearField(contentlocale.FieldFieldValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(contentlocale.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedVersion(); ok {
		_spec.SetField(contentlocale.FieldPublishedVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPublishedVersion(); ok {
		_spec.AddField(contentlocale.FieldPublishedVersion, field.TypeInt64, value)
	}
	if _u.mutation.PublishedVersionCleared() {
		_spec.ClearField(contentlocale.FieldPublishedVersion, field.TypeInt64)
	}
	if value, ok := _u.mutation.PublishedBy(); ok {
		_spec.SetField(contentlocale.FieldPublishedBy, field.TypeString, value)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(contentlocale.FieldPublishedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedOn(); ok {
		_spec.SetField(contentlocale.FieldPublishedOn, field.TypeTime, value)
	}
	if _u.mutation.PublishedOnCleared() {
		_spec.ClearField(contentlocale.FieldPublishedOn, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentlocale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentLocaleUpdateOne is the builder for updating a single ContentLocale entity.
type ContentLocaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentLocaleMutation
}

// SetVersion sets the "version" field.
func (_u *ContentLocaleUpdateOne) SetVersion(v int64) *ContentLocaleUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableVersion(v *int64) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentLocaleUpdateOne) AddVersion(v int64) *ContentLocaleUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentLocaleUpdateOne) SetUpdatedBy(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableUpdatedBy(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentLocaleUpdateOne) ClearUpdatedBy() *ContentLocaleUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentLocaleUpdateOne) SetUpdatedOn(v time.Time) *ContentLocaleUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableUpdatedOn(v *time.Time) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueName sets the "unique_name" field.
func (_u *ContentLocaleUpdateOne) SetUniqueName(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetUniqueName(v)
	return _u
}

// SetNillableUniqueName sets the "unique_name" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableUniqueName(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetUniqueName(*v)
	}
	return _u
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_u *ContentLocaleUpdateOne) SetUniqueNameNormalized(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetUniqueNameNormalized(v)
	return _u
}

// SetNillableUniqueNameNormalized sets the "unique_name_normalized" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableUniqueNameNormalized(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetUniqueNameNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ContentLocaleUpdateOne) SetDisplayName(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableDisplayName(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ContentLocaleUpdateOne) ClearDisplayName() *ContentLocaleUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ContentLocaleUpdateOne) SetDescription(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableDescription(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ContentLocaleUpdateOne) ClearDescription() *ContentLocaleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *ContentLocaleUpdateOne) SetFieldValues(v map[string]string) *ContentLocaleUpdateOne {
	_u.mutation.SetFieldValues(v)
	return _u
}

// ClearFieldValues clears the value of the "field_values" field.
func (_u *ContentLocaleUpdateOne) ClearFieldValues() *ContentLocaleUpdateOne {
	_u.mutation.ClearFieldValues()
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *ContentLocaleUpdateOne) SetIsPublished(v bool) *ContentLocaleUpdateOne {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillableIsPublished(v *bool) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetPublishedVersion sets the "published_version" field.
func (_u *ContentLocaleUpdateOne) SetPublishedVersion(v int64) *ContentLocaleUpdateOne {
	_u.mutation.ResetPublishedVersion()
	_u.mutation.SetPublishedVersion(v)
	return _u
}

// SetNillablePublishedVersion sets the "published_version" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillablePublishedVersion(v *int64) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetPublishedVersion(*v)
	}
	return _u
}

// AddPublishedVersion adds value to the "published_version" field.
func (_u *ContentLocaleUpdateOne) AddPublishedVersion(v int64) *ContentLocaleUpdateOne {
	_u.mutation.AddPublishedVersion(v)
	return _u
}

// ClearPublishedVersion clears the value of the "published_version" field.
func (_u *ContentLocaleUpdateOne) ClearPublishedVersion() *ContentLocaleUpdateOne {
	_u.mutation.ClearPublishedVersion()
	return _u
}

// SetPublishedBy sets the "published_by" field.
func (_u *ContentLocaleUpdateOne) SetPublishedBy(v string) *ContentLocaleUpdateOne {
	_u.mutation.SetPublishedBy(v)
	return _u
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillablePublishedBy(v *string) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetPublishedBy(*v)
	}
	return _u
}

// ClearPublishedBy clears the value of the "published_by" field.
func (_u *ContentLocaleUpdateOne) ClearPublishedBy() *ContentLocaleUpdateOne {
	_u.mutation.ClearPublishedBy()
	return _u
}

// SetPublishedOn sets the "published_on" field.
func (_u *ContentLocaleUpdateOne) SetPublishedOn(v time.Time) *ContentLocaleUpdateOne {
	_u.mutation.SetPublishedOn(v)
	return _u
}

// SetNillablePublishedOn sets the "published_on" field if the given value is not nil.
func (_u *ContentLocaleUpdateOne) SetNillablePublishedOn(v *time.Time) *ContentLocaleUpdateOne {
	if v != nil {
		_u.SetPublishedOn(*v)
	}
	return _u
}

// ClearPublishedOn clears the value of the "published_on" field.
func (_u *ContentLocaleUpdateOne) ClearPublishedOn() *ContentLocaleUpdateOne {
	_u.mutation.ClearPublishedOn()
	return _u
}

// Mutation returns the ContentLocaleMutation object of the builder.
func (_u *ContentLocaleUpdateOne) Mutation() *ContentLocaleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentLocaleUpdate builder.
func (_u *ContentLocaleUpdateOne) Where(ps ...predicate.ContentLocale) *ContentLocaleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentLocaleUpdateOne) Select(field string, fields ...string) *ContentLocaleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentLocale entity.
func (_u *ContentLocaleUpdateOne) Save(ctx context.Context) (*ContentLocale, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentLocaleUpdateOne) SaveX(ctx context.Context) *ContentLocale {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentLocaleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentLocaleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentLocaleUpdateOne) check() error {
	if v, ok := _u.mutation.UniqueName(); ok {
		if err := contentlocale.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueNameNormalized(); ok {
		if err := contentlocale.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name_normalized": %w`, err)}
		}
	}
	if _u.mutation.ContentCleared() && len(_u.mutation.ContentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContentLocale.content"`)
	}
	return nil
}

func (_u *ContentLocaleUpdateOne) sqlSave(ctx context.Context) (_node *ContentLocale, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentlocale.Table, contentlocale.Columns, sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentLocale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentlocale.FieldID)
		for _, f := range fields {
			if !contentlocale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentlocale.FieldID {
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
		_spec.SetField(contentlocale.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contentlocale.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(contentlocale.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(contentlocale.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(contentlocale.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(contentlocale.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(contentlocale.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UniqueName(); ok {
		_spec.SetField(contentlocale.FieldUniqueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contentlocale.FieldUniqueNameNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(contentlocale.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(contentlocale.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(contentlocale.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(contentlocale.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(contentlocale.FieldFieldValues, field.TypeJSON, value)
	}
	if _u.mutation.FieldValuesCleared() {
		_spec.ClearField(contentlocale.FieldFieldValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(contentlocale.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedVersion(); ok {
		_spec.SetField(contentlocale.FieldPublishedVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPublishedVersion(); ok {
		_spec.AddField(contentlocale.FieldPublishedVersion, field.TypeInt64, value)
	}
	if _u.mutation.PublishedVersionCleared() {
		_spec.ClearField(contentlocale.FieldPublishedVersion, field.TypeInt64)
	}
	if value, ok := _u.mutation.PublishedBy(); ok {
		_spec.SetField(contentlocale.FieldPublishedBy, field.TypeString, value)
	}
	if _u.mutation.PublishedByCleared() {
		_spec.ClearField(contentlocale.FieldPublishedBy, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedOn(); ok {
		_spec.SetField(contentlocale.FieldPublishedOn, field.TypeTime, value)
	}
	if _u.mutation.PublishedOnCleared() {
		_spec.ClearField(contentlocale.FieldPublishedOn, field.TypeTime)
	}
	_node = &ContentLocale{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentlocale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
