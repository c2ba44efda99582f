// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
)

// ContentCreate is the builder for creating a Content entity.
type ContentCreate struct {
	config
	mutation *ContentMutation
	hooks    []Hook
}

// SetStreamID sets the "stream_id" field.
func (_c *ContentCreate) SetStreamID(v string) *ContentCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ContentCreate) SetVersion(v int64) *ContentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ContentCreate) SetCreatedBy(v string) *ContentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ContentCreate) SetNillableCreatedBy(v *string) *ContentCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *ContentCreate) SetCreatedOn(v time.Time) *ContentCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ContentCreate) SetUpdatedBy(v string) *ContentCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ContentCreate) SetNillableUpdatedBy(v *string) *ContentCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *ContentCreate) SetUpdatedOn(v time.Time) *ContentCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *ContentCreate) SetRealmID(v uuid.UUID) *ContentCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *ContentCreate) SetNillableRealmID(v *uuid.UUID) *ContentCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetContentTypeID sets the "content_type_id" field.
func (_c *ContentCreate) SetContentTypeID(v uuid.UUID) *ContentCreate {
	_c.mutation.SetContentTypeID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContentCreate) SetID(v uuid.UUID) *ContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContentType sets the "content_type" edge to the ContentType entity.
func (_c *ContentCreate) SetContentType(v *ContentType) *ContentCreate {
	return _c.SetContentTypeID(v.ID)
}

// AddLocaleIDs adds the "locales" edge to the ContentLocale entity by IDs.
func (_c *ContentCreate) AddLocaleIDs(ids ...uuid.UUID) *ContentCreate {
	_c.mutation.AddLocaleIDs(ids...)
	return _c
}

// AddLocales adds the "locales" edges to the ContentLocale entity.
func (_c *ContentCreate) AddLocales(v ...*ContentLocale) *ContentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLocaleIDs(ids...)
}

// Mutation returns the ContentMutation object of the builder.
func (_c *ContentCreate) Mutation() *ContentMutation {
	return _c.mutation
}

// Save creates the Content in the database.
func (_c *ContentCreate) Save(ctx context.Context) (*Content, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentCreate) SaveX(ctx context.Context) *Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Content.stream_id"`)}
	}
	if v, ok := _c.mutation.StreamID(); ok {
		if err := content.StreamIDValidator(v); err != nil {
			return &ValidationError{Name: "stream_id", err: fmt.Errorf(`ent: validator failed for field "Content.stream_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Content.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "Content.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "Content.updated_on"`)}
	}
	if _, ok := _c.mutation.ContentTypeID(); !ok {
		return &ValidationError{Name: "content_type_id", err: errors.New(`ent: missing required field "Content.content_type_id"`)}
	}
	if len(_c.mutation.ContentTypeIDs()) == 0 {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required edge "Content.content_type"`)}
	}
	return nil
}

func (_c *ContentCreate) sqlSave(ctx context.Context) (*Content, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentCreate) createSpec() (*Content, *sqlgraph.CreateSpec) {
	var (
		_node = &Content{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(content.Table, sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(content.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(content.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(content.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(content.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(content.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(content.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(content.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if nodes := _c.mutation.ContentTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   content.ContentTypeTable,
			Columns: []string{content.ContentTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contenttype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContentTypeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LocalesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContentCreateBulk is the builder for creating many Content entities in bulk.
type ContentCreateBulk struct {
	config
	err      error
	builders []*ContentCreate
}

// Save creates the Content entities in the database.
func (_c *ContentCreateBulk) Save(ctx context.Context) ([]*Content, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Content, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContentCreateBulk) SaveX(ctx context.Context) []*Content {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
