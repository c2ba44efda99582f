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
	"lattice-cms.io/lattice/ent/publishedcontent"
)

// PublishedContentCreate is the builder for creating a PublishedContent entity.
type PublishedContentCreate struct {
	config
	mutation *PublishedContentMutation
	hooks    []Hook
}

// SetContentID sets the "content_id" field.
func (_c *PublishedContentCreate) SetContentID(v uuid.UUID) *PublishedContentCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetContentTypeID sets the "content_type_id" field.
func (_c *PublishedContentCreate) SetContentTypeID(v uuid.UUID) *PublishedContentCreate {
	_c.mutation.SetContentTypeID(v)
	return _c
}

// SetRealmID sets the "realm_id" field.
func (_c *PublishedContentCreate) SetRealmID(v uuid.UUID) *PublishedContentCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *PublishedContentCreate) SetNillableRealmID(v *uuid.UUID) *PublishedContentCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetLanguageID sets the "language_id" field.
func (_c *PublishedContentCreate) SetLanguageID(v uuid.UUID) *PublishedContentCreate {
	_c.mutation.SetLanguageID(v)
	return _c
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_c *PublishedContentCreate) SetNillableLanguageID(v *uuid.UUID) *PublishedContentCreate {
	if v != nil {
		_c.SetLanguageID(*v)
	}
	return _c
}

// SetUniqueName sets the "unique_name" field.
func (_c *PublishedContentCreate) SetUniqueName(v string) *PublishedContentCreate {
	_c.mutation.SetUniqueName(v)
	return _c
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (_c *PublishedContentCreate) SetUniqueNameNormalized(v string) *PublishedContentCreate {
	_c.mutation.SetUniqueNameNormalized(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PublishedContentCreate) SetDisplayName(v string) *PublishedContentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *PublishedContentCreate) SetNillableDisplayName(v *string) *PublishedContentCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *PublishedContentCreate) SetDescription(v string) *PublishedContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PublishedContentCreate) SetNillableDescription(v *string) *PublishedContentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFieldValues sets the "field_values" field.
func (_c *PublishedContentCreate) SetFieldValues(v map[string]string) *PublishedContentCreate {
	_c.mutation.SetFieldValues(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PublishedContentCreate) SetVersion(v int64) *PublishedContentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPublishedBy sets the "published_by" field.
func (_c *PublishedContentCreate) SetPublishedBy(v string) *PublishedContentCreate {
	_c.mutation.SetPublishedBy(v)
	return _c
}

// SetNillablePublishedBy sets the "published_by" field if the given value is not nil.
func (_c *PublishedContentCreate) SetNillablePublishedBy(v *string) *PublishedContentCreate {
	if v != nil {
		_c.SetPublishedBy(*v)
	}
	return _c
}

// SetPublishedOn sets the "published_on" field.
func (_c *PublishedContentCreate) SetPublishedOn(v time.Time) *PublishedContentCreate {
	_c.mutation.SetPublishedOn(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PublishedContentCreate) SetID(v uuid.UUID) *PublishedContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PublishedContentMutation object of the builder.
func (_c *PublishedContentCreate) Mutation() *PublishedContentMutation {
	return _c.mutation
}

// Save creates the PublishedContent in the database.
func (_c *PublishedContentCreate) Save(ctx context.Context) (*PublishedContent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PublishedContentCreate) SaveX(ctx context.Context) *PublishedContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishedContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishedContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PublishedContentCreate) check() error {
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "PublishedContent.content_id"`)}
	}
	if _, ok := _c.mutation.ContentTypeID(); !ok {
		return &ValidationError{Name: "content_type_id", err: errors.New(`ent: missing required field "PublishedContent.content_type_id"`)}
	}
	if _, ok := _c.mutation.UniqueName(); !ok {
		return &ValidationError{Name: "unique_name", err: errors.New(`ent: missing required field "PublishedContent.unique_name"`)}
	}
	if v, ok := _c.mutation.UniqueName(); ok {
		if err := publishedcontent.UniqueNameValidator(v); err != nil {
			return &ValidationError{Name: "unique_name", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UniqueNameNormalized(); !ok {
		return &ValidationError{Name: "unique_name_normalized", err: errors.New(`ent: missing required field "PublishedContent.unique_name_normalized"`)}
	}
	if v, ok := _c.mutation.UniqueNameNormalized(); ok {
		if err := publishedcontent.UniqueNameNormalizedValidator(v); err != nil {
			return &ValidationError{Name: "unique_name_normalized", err: fmt.Errorf(`ent: validator failed for field "PublishedContent.unique_name_normalized": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PublishedContent.version"`)}
	}
	if _, ok := _c.mutation.PublishedOn(); !ok {
		return &ValidationError{Name: "published_on", err: errors.New(`ent: missing required field "PublishedContent.published_on"`)}
	}
	return nil
}

func (_c *PublishedContentCreate) sqlSave(ctx context.Context) (*PublishedContent, error) {
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

func (_c *PublishedContentCreate) createSpec() (*PublishedContent, *sqlgraph.CreateSpec) {
	var (
		_node = &PublishedContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(publishedcontent.Table, sqlgraph.NewFieldSpec(publishedcontent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(publishedcontent.FieldContentID, field.TypeUUID, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.ContentTypeID(); ok {
		_spec.SetField(publishedcontent.FieldContentTypeID, field.TypeUUID, value)
		_node.ContentTypeID = value
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(publishedcontent.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.LanguageID(); ok {
		_spec.SetField(publishedcontent.FieldLanguageID, field.TypeUUID, value)
		_node.LanguageID = &value
	}
	if value, ok := _c.mutation.UniqueName(); ok {
		_spec.SetField(publishedcontent.FieldUniqueName, field.TypeString, value)
		_node.UniqueName = value
	}
	if value, ok := _c.mutation.UniqueNameNormalized(); ok {
		_spec.SetField(publishedcontent.FieldUniqueNameNormalized, field.TypeString, value)
		_node.UniqueNameNormalized = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(publishedcontent.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(publishedcontent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FieldValues(); ok {
		_spec.SetField(publishedcontent.FieldFieldValues, field.TypeJSON, value)
		_node.FieldValues = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(publishedcontent.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.PublishedBy(); ok {
		_spec.SetField(publishedcontent.FieldPublishedBy, field.TypeString, value)
		_node.PublishedBy = value
	}
	if value, ok := _c.mutation.PublishedOn(); ok {
		_spec.SetField(publishedcontent.FieldPublishedOn, field.TypeTime, value)
		_node.PublishedOn = value
	}
	return _node, _spec
}

// PublishedContentCreateBulk is the builder for creating many PublishedContent entities in bulk.
type PublishedContentCreateBulk struct {
	config
	err      error
	builders []*PublishedContentCreate
}

// Save creates the PublishedContent entities in the database.
func (_c *PublishedContentCreateBulk) Save(ctx context.Context) ([]*PublishedContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PublishedContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PublishedContentMutation)
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
func (_c *PublishedContentCreateBulk) SaveX(ctx context.Context) []*PublishedContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishedContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishedContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
