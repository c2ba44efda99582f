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
)

// ContentLocaleCreate is the builder for creating a ContentLocale entity.
type ContentLocaleCreate struct {
	config
	mutation *ContentLocaleMutation
	hooks    []Hook
}

// SetVersion sets the "version" field.
func (_c *ContentLocaleCreate) SetVersion(v int64) *ContentLocaleCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ContentLocaleCreate) SetCreatedBy(v string) *ContentLocaleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableCreatedBy(v *string) *ContentLocaleCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedOn sets the "created_on" field.
func (_c *ContentLocaleCreate) SetCreatedOn(v time.Time) *ContentLocaleCreate {
	_c.mutation.SetCreatedOn(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ContentLocaleCreate) SetUpdatedBy(v string) *ContentLocaleCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableUpdatedBy(v *string) *ContentLocaleCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetUpdatedOn sets the "updated_on" field.
func (_c *ContentLocaleCreate) SetUpdatedOn(v time.Time) *ContentLocaleCreate {
	_c.mutation.SetUpdatedOn(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *ContentLocaleCreate) SetContentID(v uuid.UUID) *ContentLocaleCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetLanguageID sets the "language_id" field.
func (_c *ContentLocaleCreate) SetLanguageID(v uuid.UUID) *ContentLocaleCreate {
	_c.mutation.SetLanguageID(v)
	return _c
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableLanguageID(v *uuid.UUID) *ContentLocaleCreate {
	if v != nil {
		_c.SetLanguageID(*v)
	}
	return _c
}

// SetUniqueName sets the "unique_name" field.
func (_c *ContentLocaleCreate) SetUniqueName(v string) *ContentLocaleCreate {
	_c.mutation.SetUniqueName(v)
	return _c
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_c *ContentLocaleCreate) SetUniqueNameNormalized(v string) *ContentLocaleCreate {
	_c.mutation.SetUniqueNameNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ContentLocaleCreate) SetDisplayName(v string) *ContentLocaleCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableDisplayName(v *string) *ContentLocaleCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ContentLocaleCreate) SetDescription(v string) *ContentLocaleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableDescription(v *string) *ContentLocaleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFieldValues sets the "field_values" field.
func (_c *ContentLocaleCreate) SetFieldValues(v map[string]string) *ContentLocaleCreate {
	_c.mutation.SetFieldValues(v)
	return _c
}

// SetIsPublished sets the "is_published" field.
func (_c *ContentLocaleCreate) SetIsPublished(v bool) *ContentLocaleCreate {
	_c.mutation.SetIsPublished(v)
	return _c
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillableIsPublished(v *bool) *ContentLocaleCreate {
	if v != nil {
		_c.SetIsPublished(*v)
	}
	return _c
}

// SetPublishedVersion sets the "published_version" field.
func (_c *ContentLocaleCreate) SetPublishedVersion(v int64) *ContentLocaleCreate {
	_c.mutation.SetPublishedVersion(v)
	return _c
}

// SetNillablePublishedVersion sets the "published_version" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillablePublishedVersion(v *int64) *ContentLocaleCreate {
	if v != nil {
		_c.SetPublishedVersion(*v)
	}
	return _c
}

// SetPublishedBy sets the "published_by" field.
func (_c *ContentLocaleCreate) SetPublishedBy(v string) *ContentLocaleCreate {
	_c.mutation.SetPublishedBy(v)
	return _c
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillablePublishedBy(v *string) *ContentLocaleCreate {
	if v != nil {
		_c.SetPublishedBy(*v)
	}
	return _c
}

// SetPublishedOn sets the "published_on" field.
func (_c *ContentLocaleCreate) SetPublishedOn(v time.Time) *ContentLocaleCreate {
	_c.mutation.SetPublishedOn(v)
	return _c
}

// SetNillablePublishedOn sets the "published_on" field if the given value is not nil.
func (_c *ContentLocaleCreate) SetNillablePublishedOn(v *time.Time) *ContentLocaleCreate {
	if v != nil {
		_c.SetPublishedOn(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentLocaleCreate) SetID(v uuid.UUID) *ContentLocaleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContent sets the "content" edge to the Content entity.
func (_c *ContentLocaleCreate) SetContent(v *Content) *ContentLocaleCreate {
	return _c.SetContentID(v.ID)
}

// Mutation returns the ContentLocaleMutation object of the builder.
func (_c *ContentLocaleCreate) Mutation() *ContentLocaleMutation {
	return _c.mutation
}

// Save creates the ContentLocale in the database.
func (_c *ContentLocaleCreate) Save(ctx context.Context) (*ContentLocale, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentLocaleCreate) SaveX(ctx context.Context) *ContentLocale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentLocaleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentLocaleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentLocaleCreate) defaults() {
	if _, ok := _c.mutation.IsPublished(); !ok {
		v := contentlocale.DefaultIsPublished
		_c.mutation.SetIsPublished(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentLocaleCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ContentLocale.version"`)}
	}
	if _, ok := _c.mutation.CreatedOn(); !ok {
		return &ValidationError{Name: "created_on", err: errors.New(`ent: missing required field "ContentLocale.created_on"`)}
	}
	if _, ok := _c.mutation.UpdatedOn(); !ok {
		return &ValidationError{Name: "updated_on", err: errors.New(`ent: missing required field "ContentLocale.updated_on"`)}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "ContentLocale.content_id"`)}
	}
	if _, ok := _c.mutation.UniqueName(); !ok {
		return &ValidationError{Name: "unique_name", err: errors.New(`ent: missing required field "ContentLocale.unique_name"`)}
	}
	if v, ok := _c.mutation.UniqueName(); ok {
		if err := contentlocale.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueNameNormalized(); !ok {
		return &ValidationError{Name: "unique_name_normalized", err: errors.New(`ent: missing required field "ContentLocale.unique_name_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueNameNormalized(); ok {
		if err := contentlocale.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "ContentLocale.unique_name_normalized": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublished(); !ok {
		return &ValidationError{Name: "is_published", err: errors.New(`ent: missing required field "ContentLocale.is_published"`)}
	}
	if len(_c.mutation.ContentIDs()) == 0 {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required edge "ContentLocale.content"`)}
	}
	return nil
}

func (_c *ContentLocaleCreate) sqlSave(ctx context.Context) (*ContentLocale, error) {
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

func (_c *ContentLocaleCreate) createSpec() (*ContentLocale, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentLocale{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentlocale.Table, sqlgraph.NewFieldSpec(contentlocale.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(contentlocale.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(contentlocale.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedOn(); ok {
		_spec.SetField(contentlocale.FieldCreatedOn, field.TypeTime, value)
		_node.CreatedOn = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(contentlocale.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := _c.mutation.UpdatedOn(); ok {
		_spec.SetField(contentlocale.FieldUpdatedOn, field.TypeTime, value)
		_node.UpdatedOn = value
	}
	if value, ok := _c.mutation.LanguageID(); ok {
		_spec.SetField(contentlocale.FieldLanguageID, field.TypeUUID, value)
		_node.LanguageID = &value
	}
	if value, ok := _c.mutation.UniqueName(); ok {
		_spec.SetField(contentlocale.FieldUniqueName, field.TypeString, value)
		_node.UniqueName = value
	}
	if value, ok := _c.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(contentlocale.FieldUniqueNameNormalized, field.TypeString, value)
		_node.UniqueNameNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(contentlocale.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(contentlocale.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FieldValues(); ok {
		_spec.SetField(contentlocale.FieldFieldValues, field.TypeJSON, value)
		_node.FieldValues = value
	}
	if value, ok := _c.mutation.IsPublished(); ok {
		_spec.SetField(contentlocale.FieldIsPublished, field.TypeBool, value)
		_node.IsPublished = value
	}
	if value, ok := _c.mutation.PublishedVersion(); ok {
		_spec.SetField(contentlocale.FieldPublishedVersion, field.TypeInt64, value)
		_node.PublishedVersion = &value
	}
	if value, ok := _c.mutation.PublishedBy(); ok {
		_spec.SetField(contentlocale.FieldPublishedBy, field.TypeString, value)
		_node.PublishedBy = value
	}
	if value, ok := _c.mutation.PublishedOn(); ok {
		_spec.SetField(contentlocale.FieldPublishedOn, field.TypeTime, value)
		_node.PublishedOn = &value
	}
	if nodes := _c.mutation.ContentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentlocale.ContentTable,
			Columns: []string{contentlocale.ContentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(content.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContentLocaleCreateBulk is the builder for creating many ContentLocale entities in bulk.
type ContentLocaleCreateBulk struct {
	config
	err      error
	builders []*ContentLocaleCreate
}

// Save creates the ContentLocale entities in the database.
func (_c *ContentLocaleCreateBulk) Save(ctx context.Context) ([]*ContentLocale, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentLocale, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentLocaleMutation)
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
func (_c *ContentLocaleCreateBulk) SaveX(ctx context.Context) []*ContentLocale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentLocaleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentLocaleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
