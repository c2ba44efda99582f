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
	"lattice-cms.io/lattice/ent/fieldindex"
)

// FieldIndexCreate is the builder for creating a FieldIndex entity.
type FieldIndexCreate struct {
	config
	mutation *FieldIndexMutation
	hooks    []Hook
}

// SetRealmID sets the "realm_id" field.
func (_c *FieldIndexCreate) SetRealmID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetRealmID(v)
	return _c
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableRealmID(v *uuid.UUID) *FieldIndexCreate {
	if v != nil {
		_c.SetRealmID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FieldIndexCreate) SetStatus(v fieldindex.Status) *FieldIndexCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetContentTypeID sets the "content_type_id" field.
func (_c *FieldIndexCreate) SetContentTypeID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetContentTypeID(v)
	return _c
}

// SetContentTypeName sets the "content_type_name" field.
func (_c *FieldIndexCreate) SetContentTypeName(v string) *FieldIndexCreate {
	_c.mutation.SetContentTypeName(v)
	return _c
}

// SetLanguageID sets the "language_id" field.
func (_c *FieldIndexCreate) SetLanguageID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetLanguageID(v)
	return _c
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableLanguageID(v *uuid.UUID) *FieldIndexCreate {
	if v != nil {
		_c.SetLanguageID(*v)
	}
	return _c
}

// SetLanguageCode sets the "language_code" field.
func (_c *FieldIndexCreate) SetLanguageCode(v string) *FieldIndexCreate {
	_c.mutation.SetLanguageCode(v)
	return _c
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableLanguageCode(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetLanguageCode(*v)
	}
	return _c
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_c *FieldIndexCreate) SetLanguageIsDefault(v bool) *FieldIndexCreate {
	_c.mutation.SetLanguageIsDefault(v)
	return _c
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableLanguageIsDefault(v *bool) *FieldIndexCreate {
	if v != nil {
		_c.SetLanguageIsDefault(*v)
	}
	return _c
}

// SetFieldTypeID sets the "field_type_id" field.
func (_c *FieldIndexCreate) SetFieldTypeID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetFieldTypeID(v)
	return _c
}

// SetFieldTypeName sets the "field_type_name" field.
func (_c *FieldIndexCreate) SetFieldTypeName(v string) *FieldIndexCreate {
	_c.mutation.SetFieldTypeName(v)
	return _c
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_c *FieldIndexCreate) SetFieldDefinitionID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetFieldDefinitionID(v)
	return _c
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_c *FieldIndexCreate) SetFieldDefinitionName(v string) *FieldIndexCreate {
	_c.mutation.SetFieldDefinitionName(v)
	return _c
}

// SetContentID sets the "content_id" field.
func (_c *FieldIndexCreate) SetContentID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetContentID(v)
	return _c
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_c *FieldIndexCreate) SetContentLocaleID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetContentLocaleID(v)
	return _c
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_c *FieldIndexCreate) SetContentLocaleName(v string) *FieldIndexCreate {
	_c.mutation.SetContentLocaleName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *FieldIndexCreate) SetVersion(v int64) *FieldIndexCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetValueBoolean sets the "value_boolean" field.
func (_c *FieldIndexCreate) SetValueBoolean(v bool) *FieldIndexCreate {
	_c.mutation.SetValueBoolean(v)
	return _c
}

// SetNillableValueBoolean sets the "value_boolean" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueBoolean(v *bool) *FieldIndexCreate {
	if v != nil {
		_c.SetValueBoolean(*v)
	}
	return _c
}

// SetValueDatetime sets the "value_datetime" field.
func (_c *FieldIndexCreate) SetValueDatetime(v time.Time) *FieldIndexCreate {
	_c.mutation.SetValueDatetime(v)
	return _c
}

// SetNillableValueDatetime sets the "value_datetime" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueDatetime(v *time.Time) *FieldIndexCreate {
	if v != nil {
		_c.SetValueDatetime(*v)
	}
	return _c
}

// SetValueNumber sets the "value_number" field.
func (_c *FieldIndexCreate) SetValueNumber(v float64) *FieldIndexCreate {
	_c.mutation.SetValueNumber(v)
	return _c
}

// SetNillableValueNumber sets the "value_number" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueNumber(v *float64) *FieldIndexCreate {
	if v != nil {
		_c.SetValueNumber(*v)
	}
	return _c
}

// SetValueRelatedContent sets the "value_related_content" field.
func (_c *FieldIndexCreate) SetValueRelatedContent(v string) *FieldIndexCreate {
	_c.mutation.SetValueRelatedContent(v)
	return _c
}

// SetNillableValueRelatedContent sets the "value_related_content" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueRelatedContent(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetValueRelatedContent(*v)
	}
	return _c
}

// SetValueRichText sets the "value_rich_text" field.
func (_c *FieldIndexCreate) SetValueRichText(v string) *FieldIndexCreate {
	_c.mutation.SetValueRichText(v)
	return _c
}

// SetNillableValueRichText sets the "value_rich_text" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueRichText(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetValueRichText(*v)
	}
	return _c
}

// SetValueSelect sets the "value_select" field.
func (_c *FieldIndexCreate) SetValueSelect(v string) *FieldIndexCreate {
	_c.mutation.SetValueSelect(v)
	return _c
}

// SetNillableValueSelect sets the "value_select" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueSelect(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetValueSelect(*v)
	}
	return _c
}

// SetValueString sets the "value_string" field.
func (_c *FieldIndexCreate) SetValueString(v string) *FieldIndexCreate {
	_c.mutation.SetValueString(v)
	return _c
}

// SetNillableValueString sets the "value_string" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueString(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetValueString(*v)
	}
	return _c
}

// SetValueTags sets the "value_tags" field.
func (_c *FieldIndexCreate) SetValueTags(v string) *FieldIndexCreate {
	_c.mutation.SetValueTags(v)
	return _c
}

// SetNillableValueTags sets the "value_tags" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableValueTags(v *string) *FieldIndexCreate {
	if v != nil {
		_c.SetValueTags(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldIndexCreate) SetID(v uuid.UUID) *FieldIndexCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldIndexCreate) SetNillableID(v *uuid.UUID) *FieldIndexCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FieldIndexMutation object of the builder.
func (_c *FieldIndexCreate) Mutation() *FieldIndexMutation {
	return _c.mutation
}

// Save creates the FieldIndex in the database.
func (_c *FieldIndexCreate) Save(ctx context.Context) (*FieldIndex, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldIndexCreate) SaveX(ctx context.Context) *FieldIndex {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldIndexCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldIndexCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldIndexCreate) defaults() {
	if _, ok := _c.mutation.LanguageIsDefault(); !ok {
		v := fieldindex.DefaultLanguageIsDefault
		_c.mutation.SetLanguageIsDefault(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldindex.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldIndexCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FieldIndex.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fieldindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentTypeID(); !ok {
		return &ValidationError{Name: "content_type_id", err: errors.New(`ent: missing required field "FieldIndex.content_type_id"`)}
	}
	if _, ok := _c.mutation.ContentTypeName(); !ok {
		return &ValidationError{Name: "content_type_name", err: errors.New(`ent: missing required field "FieldIndex.content_type_name"`)}
	}
	if v, ok := _c.mutation.ContentTypeName(); ok {
		if err := fieldindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_type_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LanguageIsDefault(); !ok {
		return &ValidationError{Name: "language_is_default", err: errors.New(`ent: missing required field "FieldIndex.language_is_default"`)}
	}
	if _, ok := _c.mutation.FieldTypeID(); !ok {
		return &ValidationError{Name: "field_type_id", err: errors.New(`ent: missing required field "FieldIndex.field_type_id"`)}
	}
	if _, ok := _c.mutation.FieldTypeName(); !ok {
		return &ValidationError{Name: "field_type_name", err: errors.New(`ent: missing required field "FieldIndex.field_type_name"`)}
	}
	if v, ok := _c.mutation.FieldTypeName(); ok {
		if err := fieldindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_type_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldDefinitionID(); !ok {
		return &ValidationError{Name: "field_definition_id", err: errors.New(`ent: missing required field "FieldIndex.field_definition_id"`)}
	}
	if _, ok := _c.mutation.FieldDefinitionName(); !ok {
		return &ValidationError{Name: "field_definition_name", err: errors.New(`ent: missing required field "FieldIndex.field_definition_name"`)}
	}
	if v, ok := _c.mutation.FieldDefinitionName(); ok {
		if err := fieldindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_definition_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "FieldIndex.content_id"`)}
	}
	if _, ok := _c.mutation.ContentLocaleID(); !ok {
		return &ValidationError{Name: "content_locale_id", err: errors.New(`ent: missing required field "FieldIndex.content_locale_id"`)}
	}
	if _, ok := _c.mutation.ContentLocaleName(); !ok {
		return &ValidationError{Name: "content_locale_name", err: errors.New(`ent: missing required field "FieldIndex.content_locale_name"`)}
	}
	if v, ok := _c.mutation.ContentLocaleName(); ok {
		if err := fieldindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_locale_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "FieldIndex.version"`)}
	}
	return nil
}

func (_c *FieldIndexCreate) sqlSave(ctx context.Context) (*FieldIndex, error) {
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

func (_c *FieldIndexCreate) createSpec() (*FieldIndex, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldIndex{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldindex.Table, sqlgraph.NewFieldSpec(fieldindex.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RealmID(); ok {
		_spec.SetField(fieldindex.FieldRealmID, field.TypeUUID, value)
		_node.RealmID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fieldindex.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentTypeID(); ok {
		_spec.SetField(fieldindex.FieldContentTypeID, field.TypeUUID, value)
		_node.ContentTypeID = value
	}
	if value, ok := _c.mutation.ContentTypeName(); ok {
		_spec.SetField(fieldindex.FieldContentTypeName, field.TypeString, value)
		_node.ContentTypeName = value
	}
	if value, ok := _c.mutation.LanguageID(); ok {
		_spec.SetField(fieldindex.FieldLanguageID, field.TypeUUID, value)
		_node.LanguageID = &value
	}
	if value, ok := _c.mutation.LanguageCode(); ok {
		_spec.SetField(fieldindex.FieldLanguageCode, field.TypeString, value)
		_node.LanguageCode = value
	}
	if value, ok := _c.mutation.LanguageIsDefault(); ok {
		_spec.SetField(fieldindex.FieldLanguageIsDefault, field.TypeBool, value)
		_node.LanguageIsDefault = value
	}
	if value, ok := _c.mutation.FieldTypeID(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeID, field.TypeUUID, value)
		_node.FieldTypeID = value
	}
	if value, ok := _c.mutation.FieldTypeName(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeName, field.TypeString, value)
		_node.FieldTypeName = value
	}
	if value, ok := _c.mutation.FieldDefinitionID(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionID, field.TypeUUID, value)
		_node.FieldDefinitionID = value
	}
	if value, ok := _c.mutation.FieldDefinitionName(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionName, field.TypeString, value)
		_node.FieldDefinitionName = value
	}
	if value, ok := _c.mutation.ContentID(); ok {
		_spec.SetField(fieldindex.FieldContentID, field.TypeUUID, value)
		_node.ContentID = value
	}
	if value, ok := _c.mutation.ContentLocaleID(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleID, field.TypeUUID, value)
		_node.ContentLocaleID = value
	}
	if value, ok := _c.mutation.ContentLocaleName(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleName, field.TypeString, value)
		_node.ContentLocaleName = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(fieldindex.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ValueBoolean(); ok {
		_spec.SetField(fieldindex.FieldValueBoolean, field.TypeBool, value)
		_node.ValueBoolean = &value
	}
	if value, ok := _c.mutation.ValueDatetime(); ok {
		_spec.SetField(fieldindex.FieldValueDatetime, field.TypeTime, value)
		_node.ValueDatetime = &value
	}
	if value, ok := _c.mutation.ValueNumber(); ok {
		_spec.SetField(fieldindex.FieldValueNumber, field.TypeFloat64, value)
		_node.ValueNumber = &value
	}
	if value, ok := _c.mutation.ValueRelatedContent(); ok {
		_spec.SetField(fieldindex.FieldValueRelatedContent, field.TypeString, value)
		_node.ValueRelatedContent = &value
	}
	if value, ok := _c.mutation.ValueRichText(); ok {
		_spec.SetField(fieldindex.FieldValueRichText, field.TypeString, value)
		_node.ValueRichText = &value
	}
	if value, ok := _c.mutation.ValueSelect(); ok {
		_spec.SetField(fieldindex.FieldValueSelect, field.TypeString, value)
		_node.ValueSelect = &value
	}
	if value, ok := _c.mutation.ValueString(); ok {
		_spec.SetField(fieldindex.FieldValueString, field.TypeString, value)
		_node.ValueString = &value
	}
	if value, ok := _c.mutation.ValueTags(); ok {
		_spec.SetField(fieldindex.FieldValueTags, field.TypeString, value)
		_node.ValueTags = &value
	}
	return _node, _spec
}

// FieldIndexCreateBulk is the builder for creating many FieldIndex entities in bulk.
type FieldIndexCreateBulk struct {
	config
	err      error
	builders []*FieldIndexCreate
}

// Save creates the FieldIndex entities in the database.
func (_c *FieldIndexCreateBulk) Save(ctx context.Context) ([]*FieldIndex, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldIndex, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldIndexMutation)
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
func (_c *FieldIndexCreateBulk) SaveX(ctx context.Context) []*FieldIndex {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldIndexCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldIndexCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
