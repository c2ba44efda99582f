// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// UniqueIndexCreate is the builder for creating a UniqueIndex entity.
type UniqueIndexCreate struct {
	config
	mutation *UniqueIndexMutation
	hooks    []Hook
}

// SetRealmID sets the "realm_id" field.
func (_c *UniqueIndexCreate) SetRealmID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *UniqueIndexCreate) SetNillableRealmID(v *uuid.UUID) *UniqueIndexCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UniqueIndexCreate) SetStatus(v uniqueindex.Status) *UniqueIndexCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetContentTypeID sets the "content_type_id" field.
func (_c *UniqueIndexCreate) SetContentTypeID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetContentTypeID(v)
	return _c
}

// SetContentTypeName sets the "content_type_name" field.
func (_c *UniqueIndexCreate) SetContentTypeName(v string) *UniqueIndexCreate {
	_c.mutation.SetContentTypeName(v)
	return _c
}

// SetLanguageID sets the "language_id" field.
func (_c *UniqueIndexCreate) SetLanguageID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetLanguageID(v)
	return _c
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_c *UniqueIndexCreate) SetNillableLanguageID(v *uuid.UUID) *UniqueIndexCreate {
	if v != nil {
		_c.SetLanguageID(*v)
	}
	return _c
}

// SetLanguageCode sets the "language_code" field.
func (_c *UniqueIndexCreate) SetLanguageCode(v string) *UniqueIndexCreate {
	_c.mutation.SetLanguageCode(v)
	return _c
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_c *UniqueIndexCreate) SetNillableLanguageCode(v *string) *UniqueIndexCreate {
	if v != nil {
		_c.SetLanguageCode(*v)
	}
	return _c
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_c *UniqueIndexCreate) SetLanguageIsDefault(v bool) *UniqueIndexCreate {
	_c.mutation.SetLanguageIsDefault(v)
	return _c
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_c *UniqueIndexCreate) SetNillableLanguageIsDefault(v *bool) *UniqueIndexCreate {
	if v != nil {
		_c.SetLanguageIsDefault(*v)
	}
	return _c
}

// SetFieldTypeID sets the "field_type_id" field.
func (_c *UniqueIndexCreate) SetFieldTypeID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetFieldTypeID(v)
	return _c
}

// SetFieldTypeName sets the "field_type_name" field.
func (_c *UniqueIndexCreate) SetFieldTypeName(v string) *UniqueIndexCreate {
	_c.mutation.SetFieldTypeName(v)
	return _c
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_c *UniqueIndexCreate) SetFieldDefinitionID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetFieldDefinitionID(v)
	return _c
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_c *UniqueIndexCreate) SetFieldDefinitionName(v string) *UniqueIndexCreate {
	_c.mutation.SetFieldDefinitionName(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *UniqueIndexCreate) SetContentID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_c *UniqueIndexCreate) SetContentLocaleID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetContentLocaleID(v)
	return _c
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_c *UniqueIndexCreate) SetContentLocaleName(v string) *UniqueIndexCreate {
	_c.mutation.SetContentLocaleName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *UniqueIndexCreate) SetVersion(v int64) *UniqueIndexCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *UniqueIndexCreate) SetValue(v string) *UniqueIndexCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *UniqueIndexCreate) SetKey(v string) *UniqueIndexCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetID sets the "id" field.
func (_c *UniqueIndexCreate) SetID(v uuid.UUID) *UniqueIndexCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UniqueIndexCreate) SetNillableID(v *uuid.UUID) *UniqueIndexCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UniqueIndexMutation object of the builder.
func (_c *UniqueIndexCreate) Mutation() *UniqueIndexMutation {
	return _c.mutation
}

// Save creates the UniqueIndex in the database.
func (_c *UniqueIndexCreate) Save(ctx context.Context) (*UniqueIndex, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UniqueIndexCreate) SaveX(ctx context.Context) *UniqueIndex {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UniqueIndexCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UniqueIndexCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UniqueIndexCreate) defaults() {
	if _, ok := _c.mutation.LanguageIsDefault(); !ok {
		v := uniqueindex.DefaultLanguageIsDefault
		_c.mutation.SetLanguageIsDefault(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uniqueindex.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UniqueIndexCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UniqueIndex.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uniqueindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentTypeID(); !ok {
		return &ValidationError{Name: "content_type_id", err: errors.New(`ent: missing required field "UniqueIndex.content_type_id"`)}
	}
	if _, ok := _c.mutation.ContentTypeName(); !ok {
		return &ValidationError{Name: "content_type_name", err: errors.New(`ent: missing required field "UniqueIndex.content_type_name"`)}
	}
	if v, ok := _c.mutation.ContentTypeName(); ok {
		if err := uniqueindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_type_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LanguageIsDefault(); !ok {
		return &ValidationError{Name: "language_is_default", err: errors.New(`ent: missing required field "UniqueIndex.language_is_default"`)}
	}
	if _, ok := _c.mutation.FieldTypeID(); !ok {
		return &ValidationError{Name: "field_type_id", err: errors.New(`ent: missing required field "UniqueIndex.field_type_id"`)}
	}
	if _, ok := _c.mutation.FieldTypeName(); !ok {
		return &ValidationError{Name: "field_type_name", err: errors.New(`ent: missing required field "UniqueIndex.field_type_name"`)}
	}
	if v, ok := _c.mutation.FieldTypeName(); ok {
		if err := uniqueindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_type_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldDefinitionID(); !ok {
		return &ValidationError{Name: "field_definition_id", err: errors.New(`ent: missing required field "UniqueIndex.field_definition_id"`)}
	}
	if _, ok := _c.mutation.FieldDefinitionName(); !ok {
		return &ValidationError{Name: "field_definition_name", err: errors.New(`ent: missing required field "UniqueIndex.field_definition_name"`)}
	}
	if v, ok := _c.mutation.FieldDefinitionName(); ok {
		if err := uniqueindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_definition_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "UniqueIndex.content_id"`)}
	}
	if _, ok := _c.mutation.ContentLocaleID(); !ok {
		return &ValidationError{Name: "content_locale_id", err: errors.New(`ent: missing required field "UniqueIndex.content_locale_id"`)}
	}
	if _, ok := _c.mutation.ContentLocaleName(); !ok {
		return &ValidationError{Name: "content_locale_name", err: errors.New(`ent: missing required field "UniqueIndex.content_locale_name"`)}
	}
	if v, ok := _c.mutation.ContentLocaleName(); ok {
		if err := uniqueindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_locale_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "UniqueIndex.version"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "UniqueIndex.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := uniqueindex.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "UniqueIndex.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := uniqueindex.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.key": %w`, err)}
		}
	}
	return nil
}

func (_c *UniqueIndexCreate) sqlSave(ctx context.Context) (*UniqueIndex, error) {
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

func (_c *UniqueIndexCreate) createSpec() (*UniqueIndex, *sqlgraph.CreateSpec) {
	var (
		_node = &UniqueIndex{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uniqueindex.Table, sqlgraph.NewFieldSpec(uniqueindex.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(uniqueindex.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uniqueindex.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentTypeID(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeID, field.TypeUUID, value)
		_node.ContentTypeID = value
	}
	if value, ok := _c.mutation.ContentTypeName(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeName, field.TypeString, value)
		_node.ContentTypeName = value
	}
	if value, ok := _c.mutation.LanguageID(); ok {
		_spec.SetField(uniqueindex.FieldLanguageID, field.TypeUUID, value)
		_node.LanguageID = &value
	}
	if value, ok := _c.mutation.LanguageCode(); ok {
		_spec.SetField(uniqueindex.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = value
	}
	if value, ok := _c.mutation.LanguageIsDefault(); ok {
		_spec.SetField(uniqueindex.FieldLanguageIsDefault, field.TypeBool, value)
		_node.LanguageIsDefault = value
	}
	if value, ok := _c.mutation.FieldTypeID(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeID, field.TypeUUID, value)
		_node.FieldTypeID = value
	}
	if value, ok := _c.mutation.FieldTypeName(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeName, field.TypeString, value)
		_node.FieldTypeName = value
	}
	if value, ok := _c.mutation.FieldDefinitionID(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionID, field.TypeUUID, value)
		_node.FieldDefinitionID = value
	}
	if value, ok := _c.mutation.FieldDefinitionName(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionName, field.TypeString, value)
		_node.FieldDefinitionName = value
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(uniqueindex.FieldContentID, field.TypeUUID, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.ContentLocaleID(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleID, field.TypeUUID, value)
		_node.ContentLocaleID = value
	}
	if value, ok := _c.mutation.ContentLocaleName(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleName, field.TypeString, value)
		_node.ContentLocaleName = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(uniqueindex.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(uniqueindex.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(uniqueindex.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	return _node, _spec
}

// UniqueIndexCreateBulk is the builder for creating many UniqueIndex entities in bulk.
type UniqueIndexCreateBulk struct {
	config
	err      error
	builders []*UniqueIndexCreate
}

// Save creates the UniqueIndex entities in the database.
func (_c *UniqueIndexCreateBulk) Save(ctx context.Context) ([]*UniqueIndex, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UniqueIndex, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UniqueIndexMutation)
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
func (_c *UniqueIndexCreateBulk) SaveX(ctx context.Context) []*UniqueIndex {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UniqueIndexCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UniqueIndexCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
