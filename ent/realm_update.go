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
	"lattice-cms.io/lattice/ent/realm"
)

// RealmUpdate is the builder for updating Realm entities.
type RealmUpdate struct {
	config
	hooks    []Hook
	mutation *RealmMutation
}

// Where appends a list predicates to the RealmUpdate builder.
func (_u *RealmUpdate) Where(ps ...predicate.Realm) *RealmUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *RealmUpdate) SetVersion(v int64) *RealmUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableVersion(v *int64) *RealmUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RealmUpdate) AddVersion(v int64) *RealmUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *RealmUpdate) SetUpdatedBy(v string) *RealmUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableUpdatedBy(v *string) *RealmUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *RealmUpdate) ClearUpdatedBy() *RealmUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *RealmUpdate) SetUpdatedOn(v time.Time) *RealmUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableUpdatedOn(v *time.Time) *RealmUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueSlug sets the "unique_slug" field.
func (_u *RealmUpdate) SetUniqueSlug(v string) *RealmUpdate {
	_u.mutation.SetUniqueSlug(v)
	return _u
}

// SetNillableUniqueSlug sets the "unique_slug" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableUniqueSlug(v *string) *RealmUpdate {
	if v != nil {
		_u.SetUniqueSlug(*v)
	}
	return _u
}

// SetUniqueSlugNormalized sets the "unique_slug_normalized" field.
func (_u *RealmUpdate) SetUniqueSlugNormalized(v string) *RealmUpdate {
	_u.mutation.SetUniqueSlugNormalized(v)
	return _u
}

// SetNillableUniqueSlugNormalized sets the "unique_slug_normalized" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableUniqueSlugNormalized(v *string) *RealmUpdate {
	if v != nil {
		_u.SetUniqueSlugNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *RealmUpdate) SetDisplayName(v string) *RealmUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *RealmUpdate) SetNillableDisplayName(v *string) *RealmUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *RealmUpdate) ClearDisplayName() *RealmUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// Mutation returns the RealmMutation object of the builder.
func (_u *RealmUpdate) Mutation() *RealmMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RealmUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RealmUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RealmUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RealmUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RealmUpdate) check() error {
	if v, ok := _u.mutation.UniqueSlug(); ok {
		if err := realm.UniqueSlugValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueSlugNormalized(); ok {
		if err := realm.UniqueSlugNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug_normalized", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *RealmUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(realm.Table, realm.Columns, sqlgraph.NewFieldSpec(realm.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(realm.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(realm.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(realm.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(realm.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(realm.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(realm.FieldUpdatedOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UniqueSlug(); ok {
		_spec.SetField(realm.FieldUniqueSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueSlugNormalized(); ok {
		_spec.SetField(realm.FieldUniqueSlugNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(realm.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(realm.FieldDisplayName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{realm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RealmUpdateOne is the builder for updating a single Realm entity.
type RealmUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RealmMutation
}

// SetVersion sets the "version" field.
func (_u *RealmUpdateOne) SetVersion(v int64) *RealmUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableVersion(v *int64) *RealmUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RealmUpdateOne) AddVersion(v int64) *RealmUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *RealmUpdateOne) SetUpdatedBy(v string) *RealmUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableUpdatedBy(v *string) *RealmUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *RealmUpdateOne) ClearUpdatedBy() *RealmUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *RealmUpdateOne) SetUpdatedOn(v time.Time) *RealmUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableUpdatedOn(v *time.Time) *RealmUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetUniqueSlug sets the "unique_slug" field.
func (_u *RealmUpdateOne) SetUniqueSlug(v string) *RealmUpdateOne {
	_u.mutation.SetUniqueSlug(v)
	return _u
}

// SetNillableUniqueSlug sets the "unique_slug" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableUniqueSlug(v *string) *RealmUpdateOne {
	if v != nil {
		_u.SetUniqueSlug(*v)
	}
	return _u
}

// SetUniqueSlugNormalized sets the "unique_slug_normalized" field.
func (_u *RealmUpdateOne) SetUniqueSlugNormalized(v string) *RealmUpdateOne {
	_u.mutation.SetUniqueSlugNormalized(v)
	return _u
}

// SetNillableUniqueSlugNormalized sets the "unique_slug_normalized" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableUniqueSlugNormalized(v *string) *RealmUpdateOne {
	if v != nil {
		_u.SetUniqueSlugNormalized(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *RealmUpdateOne) SetDisplayName(v string) *RealmUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *RealmUpdateOne) SetNillableDisplayName(v *string) *RealmUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *RealmUpdateOne) ClearDisplayName() *RealmUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// Mutation returns the RealmMutation object of the builder.
func (_u *RealmUpdateOne) Mutation() *RealmMutation {
	return _u.mutation
}

// Where appends a list predicates to the RealmUpdate builder.
func (_u *RealmUpdateOne) Where(ps ...predicate.Realm) *RealmUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RealmUpdateOne) Select(field string, fields ...string) *RealmUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Realm entity.
func (_u *RealmUpdateOne) Save(ctx context.Context) (*Realm, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RealmUpdateOne) SaveX(ctx context.Context) *Realm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RealmUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RealmUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RealmUpdateOne) check() error {
	if v, ok := _u.mutation.UniqueSlug(); ok {
		if err := realm.UniqueSlugValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UniqueSlugNormalized(); ok {
		if err := realm.UniqueSlugNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_slug_normalized", err: fmt.Errorf(`ent: validator failed for field "Realm.unique_slug_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *RealmUpdateOne) sqlSave(ctx context.Context) (_node *Realm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(realm.Table, realm.Columns, sqlgraph.NewFieldSpec(realm.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Realm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, realm.FieldID)
		for _, f := range fields {
			if !realm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != realm.FieldID {
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
		_spec.SetField(realm.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(realm.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(realm.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(realm.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(realm.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(realm.FieldUpdatedOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UniqueSlug(); ok {
		_spec.SetField(realm.FieldUniqueSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueSlugNormalized(); ok {
		_spec.SetField(realm.FieldUniqueSlugNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(realm.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(realm.FieldDisplayName, field.TypeString)
	}
	_node = &Realm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{realm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
