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
	"lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/predicate"
)

// ActorUpdate is the builder for updating Actor entities.
type ActorUpdate struct {
	config
	hooks    []Hook
	mutation *ActorMutation
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdate) Where(ps ...predicate.Actor) *ActorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ActorUpdate) SetType(v actor.Type) *ActorUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableType(v *actor.Type) *ActorUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ActorUpdate) SetIsDeleted(v bool) *ActorUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableIsDeleted(v *bool) *ActorUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ActorUpdate) SetDisplayName(v string) *ActorUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableDisplayName(v *string) *ActorUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ActorUpdate) SetEmail(v string) *ActorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableEmail(v *string) *ActorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ActorUpdate) ClearEmail() *ActorUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPicture sets the "picture" field.
func (_u *ActorUpdate) SetPicture(v string) *ActorUpdate {
	_u.mutation.SetPicture(v)
	return _u
}

// SetNillablePicture sets the "picture" field if the given value is not nil.
func (_u *ActorUpdate) SetNillablePicture(v *string) *ActorUpdate {
	if v != nil {
		_u.SetPicture(*v)
	}
	return _u
}

// ClearPicture clears the value of the "picture" field.
func (_u *ActorUpdate) ClearPicture() *ActorUpdate {
	_u.mutation.ClearPicture()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ActorUpdate) SetUpdatedOn(v time.Time) *ActorUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ActorUpdate) SetNillableUpdatedOn(v *time.Time) *ActorUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdate) Mutation() *ActorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := actor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Actor.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := actor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Actor.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ActorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(actor.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(actor.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(actor.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(actor.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(actor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(actor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Picture(); ok {
		_spec.SetField(actor.FieldPicture, field.TypeString, value)
	}
	if _u.mutation.PictureCleared() {
		_spec.ClearField(actor.FieldPicture, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(actor.FieldUpdatedOn, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActorUpdateOne is the builder for updating a single Actor entity.
type ActorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActorMutation
}

// SetType sets the "type" field.
func (_u *ActorUpdateOne) SetType(v actor.Type) *ActorUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableType(v *actor.Type) *ActorUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ActorUpdateOne) SetIsDeleted(v bool) *ActorUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableIsDeleted(v *bool) *ActorUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ActorUpdateOne) SetDisplayName(v string) *ActorUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableDisplayName(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ActorUpdateOne) SetEmail(v string) *ActorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableEmail(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ActorUpdateOne) ClearEmail() *ActorUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPicture sets the "picture" field.
func (_u *ActorUpdateOne) SetPicture(v string) *ActorUpdateOne {
	_u.mutation.SetPicture(v)
	return _u
}

// SetNillablePicture sets the "picture" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillablePicture(v *string) *ActorUpdateOne {
	if v != nil {
		_u.SetPicture(*v)
	}
	return _u
}

// ClearPicture clears the value of the "picture" field.
func (_u *ActorUpdateOne) ClearPicture() *ActorUpdateOne {
	_u.mutation.ClearPicture()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ActorUpdateOne) SetUpdatedOn(v time.Time) *ActorUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ActorUpdateOne) SetNillableUpdatedOn(v *time.Time) *ActorUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// Mutation returns the ActorMutation object of the builder.
func (_u *ActorUpdateOne) Mutation() *ActorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActorUpdate builder.
func (_u *ActorUpdateOne) Where(ps ...predicate.Actor) *ActorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActorUpdateOne) Select(field string, fields ...string) *ActorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Actor entity.
func (_u *ActorUpdateOne) Save(ctx context.Context) (*Actor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActorUpdateOne) SaveX(ctx context.Context) *Actor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActorUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := actor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Actor.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := actor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Actor.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ActorUpdateOne) sqlSave(ctx context.Context) (_node *Actor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actor.Table, actor.Columns, sqlgraph.NewFieldSpec(actor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Actor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actor.FieldID)
		for _, f := range fields {
			if !actor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actor.FieldID {
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
		_spec.ClearField(actor.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(actor.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(actor.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(actor.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(actor.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(actor.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Picture(); ok {
		_spec.SetField(actor.FieldPicture, field.TypeString, value)
	}
	if _u.mutation.PictureCleared() {
		_spec.ClearField(actor.FieldPicture, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(actor.FieldUpdatedOn, field.TypeTime, value)
	}
	_node = &Actor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
