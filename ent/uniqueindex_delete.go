// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// UniqueIndexDelete is the builder for deleting a UniqueIndex entity.
type UniqueIndexDelete struct {
	config
	hooks    []Hook
	mutation *UniqueIndexMutation
}

// Where appends a list predicates to the UniqueIndexDelete builder.
func (_d *UniqueIndexDelete) Where(ps ...predicate.UniqueIndex) *UniqueIndexDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UniqueIndexDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UniqueIndexDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UniqueIndexDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(uniqueindex.Table, sqlgraph.NewFieldSpec(uniqueindex.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UniqueIndexDeleteOne is the builder for deleting a single UniqueIndex entity.
type UniqueIndexDeleteOne struct {
	_d *UniqueIndexDelete
}

// Where appends a list predicates to the UniqueIndexDelete builder.
func (_d *UniqueIndexDeleteOne) Where(ps ...predicate.UniqueIndex) *UniqueIndexDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UniqueIndexDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{uniqueindex.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UniqueIndexDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
