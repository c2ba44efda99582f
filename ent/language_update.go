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
	"lattice-cms.io/lattice/ent/language"
	"lattice-cms.io/lattice/ent/predicate"
)

// LanguageUpdate is the builder for updating Language entities.
type LanguageUpdate struct {
	config
	hooks    []Hook
	mutation *LanguageMutation
}

// Where appends a list predicates to the LanguageUpdate builder.
func (_u *LanguageUpdate) Where(ps ...predicate.Language) *LanguageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *LanguageUpdate) SetVersion(v int64) *LanguageUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableVersion(v *int64) *LanguageUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LanguageUpdate) AddVersion(v int64) *LanguageUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *LanguageUpdate) SetUpdatedBy(v string) *LanguageUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableUpdatedBy(v *string) *LanguageUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *LanguageUpdate) ClearUpdatedBy() *LanguageUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *LanguageUpdate) SetUpdatedOn(v time.Time) *LanguageUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableUpdatedOn(v *time.Time) *LanguageUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *LanguageUpdate) SetCode(v string) *LanguageUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableCode(v *string) *LanguageUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCodeNormalized sets the "code_normalized" field.
func (_u *LanguageUpdate) SetCodeNormalized(v string) *LanguageUpdate {
	_u.mutation.SetCodeNormalized(v)
	return _u
}

// SetNillableCodeNormalized sets the "code_normalized" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableCodeNormalized(v *string) *LanguageUpdate {
	if v != nil {
		_u.SetCodeNormalized(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *LanguageUpdate) SetIsDefault(v bool) *LanguageUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *LanguageUpdate) SetNillableIsDefault(v *bool) *LanguageUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the LanguageMutation object of the builder.
func (_u *LanguageUpdate) Mutation() *LanguageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LanguageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LanguageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LanguageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LanguageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LanguageUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := language.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Language.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CodeNormalized(); ok {
		if err := language.CodeNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "code_normalized", err: fmt.Errorf(`ent: validator failed for field "Language.code_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *LanguageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(language.Table, language.Columns, sqlgraph.NewFieldSpec(language.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(language.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(language.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(language.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(language.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(language.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(language.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(language.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(language.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeNormalized(); ok {
		_spec.SetField(language.FieldCodeNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(language.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{language.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LanguageUpdateOne is the builder for updating a single Language entity.
type LanguageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LanguageMutation
}

// SetVersion sets the "version" field.
func (_u *LanguageUpdateOne) SetVersion(v int64) *LanguageUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableVersion(v *int64) *LanguageUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *LanguageUpdateOne) AddVersion(v int64) *LanguageUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *LanguageUpdateOne) SetUpdatedBy(v string) *LanguageUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableUpdatedBy(v *string) *LanguageUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *LanguageUpdateOne) ClearUpdatedBy() *LanguageUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *LanguageUpdateOne) SetUpdatedOn(v time.Time) *LanguageUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableUpdatedOn(v *time.Time) *LanguageUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *LanguageUpdateOne) SetCode(v string) *LanguageUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableCode(v *string) *LanguageUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetCodeNormalized sets the "code_normalized" field.
func (_u *LanguageUpdateOne) SetCodeNormalized(v string) *LanguageUpdateOne {
	_u.mutation.SetCodeNormalized(v)
	return _u
}

// SetNillableCodeNormalized sets the "code_normalized" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableCodeNormalized(v *string) *LanguageUpdateOne {
	if v != nil {
		_u.SetCodeNormalized(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *LanguageUpdateOne) SetIsDefault(v bool) *LanguageUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *LanguageUpdateOne) SetNillableIsDefault(v *bool) *LanguageUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the LanguageMutation object of the builder.
func (_u *LanguageUpdateOne) Mutation() *LanguageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LanguageUpdate builder.
func (_u *LanguageUpdateOne) Where(ps ...predicate.Language) *LanguageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LanguageUpdateOne) Select(field string, fields ...string) *LanguageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Language entity.
func (_u *LanguageUpdateOne) Save(ctx context.Context) (*Language, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LanguageUpdateOne) SaveX(ctx context.Context) *Language {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LanguageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LanguageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LanguageUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := language.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Language.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CodeNormalized(); ok {
		if err := language.CodeNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "code_normalized", err: fmt.Errorf(`ent: validator failed for field "Language.code_normalized": %w`, err)}
		}
	}
	return nil
}

func (_u *LanguageUpdateOne) sqlSave(ctx context.Context) (_node *Language, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(language.Table, language.Columns, sqlgraph.NewFieldSpec(language.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Language.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, language.FieldID)
		for _, f := range fields {
			if !language.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != language.FieldID {
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
		_spec.SetField(language.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(language.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(language.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(language.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(language.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(language.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(language.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(language.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeNormalized(); ok {
		_spec.SetField(language.FieldCodeNormalized, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(language.FieldIsDefault, field.TypeBool, value)
	}
	_node = &Language{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{language.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
