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
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/predicate"
)

// ContentUpdate is the builder for updating Content entities.
type ContentUpdate struct {
	config
	hooks    []Hook
	mutation *ContentMutation
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdate) Where(ps ...predicate.Content) *ContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ContentUpdate) SetVersion(v int64) *ContentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableVersion(v *int64) *ContentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentUpdate) AddVersion(v int64) *ContentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentUpdate) SetUpdatedBy(v string) *ContentUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableUpdatedBy(v *string) *ContentUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentUpdate) ClearUpdatedBy() *ContentUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentUpdate) SetUpdatedOn(v time.Time) *ContentUpdate {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentUpdate) SetNillableUpdatedOn(v *time.Time) *ContentUpdate {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// AddLocaleIDs adds the "locales" edge to the ContentLocale entity by IDs.
func (_u *ContentUpdate) AddLocaleIDs(ids ...uuid.UUID) *ContentUpdate {
	_u.mutation.AddLocaleIDs(ids...)
	return _u
}

// AddLocales adds the "locales" edges to the ContentLocale entity.
func (_u *ContentUpdate) AddLocales(v ...*ContentLocale) *ContentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLocaleIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdate) Mutation() *ContentMutation {
	return _u.mutation
}

// ClearLocales clears all "locales" edges to the ContentLocale entity.
func (_u *ContentUpdate) ClearLocales() *ContentUpdate {
	_u.mutation.ClearLocales()
	return _u
}

// RemoveLocaleIDs removes the "locales" edge to ContentLocale entities by IDs.
func (_u *ContentUpdate) RemoveLocaleIDs(ids ...uuid.UUID) *ContentUpdate {
	_u.mutation.RemoveLocaleIDs(ids...)
	return _u
}

// RemoveLocales removes "locales" edges to ContentLocale entities.
func (_u *ContentUpdate) RemoveLocales(v ...*ContentLocale) *ContentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLocaleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdate) check() error {
	if _u.mutation.ContentTypeCleared() && len(_u.mutation.ContentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Content.content_type"`)
	}
	return nil
}

func (_u *ContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(content.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(content.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(content.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(content.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(content.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(content.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(content.FieldRealmID, field.TypeUUID)
	}
	if _u.mutation.LocalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocalesIDs(); len(nodes) > 0 && !_u.mutation.LocalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentUpdateOne is the builder for updating a single Content entity.
type ContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentMutation
}

// SetVersion sets the "version" field.
func (_u *ContentUpdateOne) SetVersion(v int64) *ContentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableVersion(v *int64) *ContentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContentUpdateOne) AddVersion(v int64) *ContentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ContentUpdateOne) SetUpdatedBy(v string) *ContentUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableUpdatedBy(v *string) *ContentUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ContentUpdateOne) ClearUpdatedBy() *ContentUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetUpdatedOn sets the "updated_on" field.
func (_u *ContentUpdateOne) SetUpdatedOn(v time.Time) *ContentUpdateOne {
	_u.mutation.SetUpdatedOn(v)
	return _u
}

// SetNillableUpdatedOn sets the "updated_on" field if the given value is not nil.
func (_u *ContentUpdateOne) SetNillableUpdatedOn(v *time.Time) *ContentUpdateOne {
	if v != nil {
		_u.SetUpdatedOn(*v)
	}
	return _u
}

// AddLocaleIDs adds the "locales" edge to the ContentLocale entity by IDs.
func (_u *ContentUpdateOne) AddLocaleIDs(ids ...uuid.UUID) *ContentUpdateOne {
	_u.mutation.AddLocaleIDs(ids...)
	return _u
}

// AddLocales adds the "locales" edges to the ContentLocale entity.
func (_u *ContentUpdateOne) AddLocales(v ...*ContentLocale) *ContentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLocaleIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_u *ContentUpdateOne) Mutation() *ContentMutation {
	return _u.mutation
}

// ClearLocales clears all "locales" edges to the ContentLocale entity.
func (_u *ContentUpdateOne) ClearLocales() *ContentUpdateOne {
	_u.mutation.ClearLocales()
	return _u
}

// RemoveLocaleIDs removes the "locales" edge to ContentLocale entities by IDs.
func (_u *ContentUpdateOne) RemoveLocaleIDs(ids ...uuid.UUID) *ContentUpdateOne {
	_u.mutation.RemoveLocaleIDs(ids...)
	return _u
}

// RemoveLocales removes "locales" edges to ContentLocale entities.
func (_u *ContentUpdateOne) RemoveLocales(v ...*ContentLocale) *ContentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLocaleIDs(ids...)
}

// Where appends a list predicates to the ContentUpdate builder.
func (_u *ContentUpdateOne) Where(ps ...predicate.Content) *ContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentUpdateOne) Select(field string, fields ...string) *ContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Content entity.
func (_u *ContentUpdateOne) Save(ctx context.Context) (*Content, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentUpdateOne) SaveX(ctx context.Context) *Content {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentUpdateOne) check() error {
	if _u.mutation.ContentTypeCleared() && len(_u.mutation.ContentTypeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Content.content_type"`)
	}
	return nil
}

func (_u *ContentUpdateOne) sqlSave(ctx context.Context) (_node *Content, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(content.Table, content.Columns, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Content.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, content.FieldID)
		for _, f := range fields {
			if !content.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != content.FieldID {
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
		_spec.SetField(content.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(content.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(content.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(content.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(content.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedOn(); ok {
		_spec.SetField(content.FieldUpdatedOn, field.TypeTime, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(content.FieldRealmID, field.TypeUUID)
	}
	if _u.mutation.LocalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLocalesIDs(); len(nodes) > 0 && !_u.mutation.LocalesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   content.LocalesTable,
			Columns: []string{content.LocalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Content{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{content.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
