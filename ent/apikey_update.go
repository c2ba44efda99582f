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
	"lattice-cms.io/lattice/ent/apikey"
	"lattice-cms.io/lattice/ent/predicate"
)

// ApiKeyUpdate is the builder for updating ApiKey entities.
type ApiKeyUpdate struct {
	config
	hooks    []Hook
	mutation *ApiKeyMutation
}

// Where appends a list predicates to the ApiKeyUpdate builder.
func (_u *ApiKeyUpdate) Where(ps ...predicate.ApiKey) *ApiKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ApiKeyUpdate) SetVersion(v int64) *ApiKeyUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableVersion(v *int64) *ApiKeyUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ApiKeyUpdate) AddVersion(v int64) *ApiKeyUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ApiKeyUpdate) SetUpdatedBy(v string) *ApiKeyUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableUpdatedBy(v *string) *ApiKeyUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ApiKeyUpdate) ClearUpdatedBy() *ApiKeyUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ApiKeyUpdate) SetUpdatedOn(v time.Time) *ApiKeyUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableUpdatedOn(v *time.Time) *ApiKeyUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ApiKeyUpdate) SetDisplayName(v string) *ApiKeyUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableDisplayName(v *string) *ApiKeyUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApiKeyUpdate) SetDescription(v string) *ApiKeyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableDescription(v *string) *ApiKeyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApiKeyUpdate) ClearDescription() *ApiKeyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetExpiresOn sets the "expires_on" field.
func (_u *ApiKeyUpdate) SetExpiresOn(v time.Time) *ApiKeyUpdate {
	_u.mutation.SetExpiresOn(v)
	return _u
}

// SetNillableExpiresOn sets the "expires_on" field if the given value is not nil.
func (_u *ApiKeyUpdate) SetNillableExpiresOn(v *time.Time) *ApiKeyUpdate {
	if v != nil {
		_u.SetExpiresOn(*v)
	}
	return _u
}

// ClearExpiresOn clears the value of the "expires_on" field.
func (_u *ApiKeyUpdate) ClearExpiresOn() *ApiKeyUpdate {
	_u.mutation.ClearExpiresOn()
	return _u
}

// Mutation returns the ApiKeyMutation object of the builder.
func (_u *ApiKeyUpdate) Mutation() *ApiKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiKeyUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := apikey.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ApiKey.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ApiKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(apikey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(apikey.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(apikey.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(apikey.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(apikey.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(apikey.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(apikey.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(apikey.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(apikey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(apikey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresOn(); ok {
		_spec.SetField(apikey.FieldExpiresOn, field.TypeTime, value)
	}
	if _u.mutation.ExpiresOnCleared() {
		_spec.ClearField(apikey.FieldExpiresOn, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiKeyUpdateOne is the builder for updating a single ApiKey entity.
type ApiKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApiKeyMutation
}

// SetVersion sets the "version" field.
func (_u *ApiKeyUpdateOne) SetVersion(v int64) *ApiKeyUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableVersion(v *int64) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ApiKeyUpdateOne) AddVersion(v int64) *ApiKeyUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ApiKeyUpdateOne) SetUpdatedBy(v string) *ApiKeyUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableUpdatedBy(v *string) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ApiKeyUpdateOne) ClearUpdatedBy() *ApiKeyUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ApiKeyUpdateOne) SetUpdatedOn(v time.Time) *ApiKeyUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableUpdatedOn(v *time.Time) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ApiKeyUpdateOne) SetDisplayName(v string) *ApiKeyUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableDisplayName(v *string) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApiKeyUpdateOne) SetDescription(v string) *ApiKeyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableDescription(v *string) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApiKeyUpdateOne) ClearDescription() *ApiKeyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetExpiresOn sets the "expires_on" field.
func (_u *ApiKeyUpdateOne) SetExpiresOn(v time.Time) *ApiKeyUpdateOne {
	_u.mutation.SetExpiresOn(v)
	return _u
}

// SetNillableExpiresOn sets the "expires_on" field if the given value is not nil.
func (_u *ApiKeyUpdateOne) SetNillableExpiresOn(v *time.Time) *ApiKeyUpdateOne {
	if v != nil {
		_u.SetExpiresOn(*v)
	}
	return _u
}

// ClearExpiresOn clears the value of the "expires_on" field.
func (_u *ApiKeyUpdateOne) ClearExpiresOn() *ApiKeyUpdateOne {
	_u.mutation.ClearExpiresOn()
	return _u
}

// Mutation returns the ApiKeyMutation object of the builder.
func (_u *ApiKeyUpdateOne) Mutation() *ApiKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiKeyUpdate builder.
func (_u *ApiKeyUpdateOne) Where(ps ...predicate.ApiKey) *ApiKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiKeyUpdateOne) Select(field string, fields ...string) *ApiKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiKey entity.
func (_u *ApiKeyUpdateOne) Save(ctx context.Context) (*ApiKey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiKeyUpdateOne) SaveX(ctx context.Context) *ApiKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiKeyUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := apikey.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "ApiKey.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ApiKeyUpdateOne) sqlSave(ctx context.Context) (_node *ApiKey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apikey.FieldID)
		for _, f := range fields {
			if !apikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apikey.FieldID {
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
		_spec.SetField(apikey.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(apikey.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(apikey.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(apikey.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(apikey.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(apikey.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(apikey.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(apikey.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(apikey.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(apikey.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresOn(); ok {
		_spec.SetField(apikey.FieldExpiresOn, field.TypeTime, value)
	}
	if _u.mutation.ExpiresOnCleared() {
		_spec.ClearField(apikey.FieldExpiresOn, field.TypeTime)
	}
	_node = &ApiKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
