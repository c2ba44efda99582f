// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// UniqueIndexUpdate is the builder for updating UniqueIndex entities.
type UniqueIndexUpdate struct {
	config
	hooks    []Hook
	mutation *UniqueIndexMutation
}

// Where appends a list predicates to the UniqueIndexUpdate builder.
func (_u *UniqueIndexUpdate) Where(ps ...predicate.UniqueIndex) *UniqueIndexUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRealmID sets the "realm_id" field.
func (_u *UniqueIndexUpdate) SetRealmID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetRealmID(v)
	return _u
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableRealmID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetRealmID(*v)
	}
	return _u
}

// ClearRealmID clears the value of the "realm_id" field.
func (_u *UniqueIndexUpdate) ClearRealmID() *UniqueIndexUpdate {
	_u.mutation.ClearRealmID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UniqueIndexUpdate) SetStatus(v uniqueindex.Status) *UniqueIndexUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableStatus(v *uniqueindex.Status) *UniqueIndexUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentTypeID sets the "content_type_id" field.
func (_u *UniqueIndexUpdate) SetContentTypeID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetContentTypeID(v)
	return _u
}

// SetNillableContentTypeID sets the "content_type_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableContentTypeID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetContentTypeID(*v)
	}
	return _u
}

// SetContentTypeName sets the "content_type_name" field.
func (_u *UniqueIndexUpdate) SetContentTypeName(v string) *UniqueIndexUpdate {
	_u.mutation.SetContentTypeName(v)
	return _u
}

// SetNillableContentTypeName sets the "content_type_name" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableContentTypeName(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetContentTypeName(*v)
	}
	return _u
}

// SetLanguageID sets the "language_id" field.
func (_u *UniqueIndexUpdate) SetLanguageID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetLanguageID(v)
	return _u
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableLanguageID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetLanguageID(*v)
	}
	return _u
}

// ClearLanguageID clears the value of the "language_id" field.
func (_u *UniqueIndexUpdate) ClearLanguageID() *UniqueIndexUpdate {
	_u.mutation.ClearLanguageID()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *UniqueIndexUpdate) SetLanguageCode(v string) *UniqueIndexUpdate {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableLanguageCode(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *UniqueIndexUpdate) ClearLanguageCode() *UniqueIndexUpdate {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_u *UniqueIndexUpdate) SetLanguageIsDefault(v bool) *UniqueIndexUpdate {
	_u.mutation.SetLanguageIsDefault(v)
	return _u
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableLanguageIsDefault(v *bool) *UniqueIndexUpdate {
	if v != nil {
		_u.SetLanguageIsDefault(*v)
	}
	return _u
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *UniqueIndexUpdate) SetFieldTypeID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableFieldTypeID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetFieldTypeName sets the "field_type_name" field.
func (_u *UniqueIndexUpdate) SetFieldTypeName(v string) *UniqueIndexUpdate {
	_u.mutation.SetFieldTypeName(v)
	return _u
}

// SetNillableFieldTypeName sets the "field_type_name" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableFieldTypeName(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetFieldTypeName(*v)
	}
	return _u
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_u *UniqueIndexUpdate) SetFieldDefinitionID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetFieldDefinitionID(v)
	return _u
}

// SetNillableFieldDefinitionID sets the "field_definition_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableFieldDefinitionID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetFieldDefinitionID(*v)
	}
	return _u
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_u *UniqueIndexUpdate) SetFieldDefinitionName(v string) *UniqueIndexUpdate {
	_u.mutation.SetFieldDefinitionName(v)
	return _u
}

// SetNillableFieldDefinitionName sets the "field_definition_name" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableFieldDefinitionName(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetFieldDefinitionName(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *UniqueIndexUpdate) SetContentID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableContentID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_u *UniqueIndexUpdate) SetContentLocaleID(v uuid.UUID) *UniqueIndexUpdate {
	_u.mutation.SetContentLocaleID(v)
	return _u
}

// SetNillableContentLocaleID sets the "content_locale_id" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableContentLocaleID(v *uuid.UUID) *UniqueIndexUpdate {
	if v != nil {
		_u.SetContentLocaleID(*v)
	}
	return _u
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_u *UniqueIndexUpdate) SetContentLocaleName(v string) *UniqueIndexUpdate {
	_u.mutation.SetContentLocaleName(v)
	return _u
}

// SetNillableContentLocaleName sets the "content_locale_name" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableContentLocaleName(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetContentLocaleName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *UniqueIndexUpdate) SetVersion(v int64) *UniqueIndexUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableVersion(v *int64) *UniqueIndexUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *UniqueIndexUpdate) AddVersion(v int64) *UniqueIndexUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *UniqueIndexUpdate) SetValue(v string) *UniqueIndexUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableValue(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *UniqueIndexUpdate) SetKey(v string) *UniqueIndexUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *UniqueIndexUpdate) SetNillableKey(v *string) *UniqueIndexUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// Mutation returns the UniqueIndexMutation object of the builder.
func (_u *UniqueIndexUpdate) Mutation() *UniqueIndexMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UniqueIndexUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UniqueIndexUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UniqueIndexUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UniqueIndexUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UniqueIndexUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uniqueindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentTypeName(); ok {
		if err := uniqueindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldTypeName(); ok {
		if err := uniqueindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldDefinitionName(); ok {
		if err := uniqueindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_definition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLocaleName(); ok {
		if err := uniqueindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_locale_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := uniqueindex.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := uniqueindex.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.key": %w`, err)}
		}
	}
	return nil
}

func (_u *UniqueIndexUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uniqueindex.Table, uniqueindex.Columns, sqlgraph.NewFieldSpec(uniqueindex.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RealmID(); ok {
		_spec.SetField(uniqueindex.FieldRealmID, field.TypeUUID, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(uniqueindex.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uniqueindex.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentTypeID(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentTypeName(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageID(); ok {
		_spec.SetField(uniqueindex.FieldLanguageID, field.TypeUUID, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(uniqueindex.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(uniqueindex.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(uniqueindex.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageIsDefault(); ok {
		_spec.SetField(uniqueindex.FieldLanguageIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldTypeID(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldTypeName(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldDefinitionID(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldDefinitionName(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(uniqueindex.FieldContentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleID(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleName(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(uniqueindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(uniqueindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(uniqueindex.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(uniqueindex.FieldKey, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uniqueindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UniqueIndexUpdateOne is the builder for updating a single UniqueIndex entity.
type UniqueIndexUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UniqueIndexMutation
}

// SetRealmID sets the "realm_id" field.
func (_u *UniqueIndexUpdateOne) SetRealmID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetRealmID(v)
	return _u
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableRealmID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetRealmID(*v)
	}
	return _u
}

// ClearRealmID clears the value of the "realm_id" field.
func (_u *UniqueIndexUpdateOne) ClearRealmID() *UniqueIndexUpdateOne {
	_u.mutation.ClearRealmID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UniqueIndexUpdateOne) SetStatus(v uniqueindex.Status) *UniqueIndexUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableStatus(v *uniqueindex.Status) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentTypeID sets the "content_type_id" field.
func (_u *UniqueIndexUpdateOne) SetContentTypeID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetContentTypeID(v)
	return _u
}

// SetNillableContentTypeID sets the "content_type_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableContentTypeID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetContentTypeID(*v)
	}
	return _u
}

// SetContentTypeName sets the "content_type_name" field.
func (_u *UniqueIndexUpdateOne) SetContentTypeName(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetContentTypeName(v)
	return _u
}

// SetNillableContentTypeName sets the "content_type_name" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableContentTypeName(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetContentTypeName(*v)
	}
	return _u
}

// SetLanguageID sets the "language_id" field.
func (_u *UniqueIndexUpdateOne) SetLanguageID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetLanguageID(v)
	return _u
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableLanguageID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetLanguageID(*v)
	}
	return _u
}

// ClearLanguageID clears the value of the "language_id" field.
func (_u *UniqueIndexUpdateOne) ClearLanguageID() *UniqueIndexUpdateOne {
	_u.mutation.ClearLanguageID()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *UniqueIndexUpdateOne) SetLanguageCode(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableLanguageCode(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *UniqueIndexUpdateOne) ClearLanguageCode() *UniqueIndexUpdateOne {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_u *UniqueIndexUpdateOne) SetLanguageIsDefault(v bool) *UniqueIndexUpdateOne {
	_u.mutation.SetLanguageIsDefault(v)
	return _u
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableLanguageIsDefault(v *bool) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetLanguageIsDefault(*v)
	}
	return _u
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *UniqueIndexUpdateOne) SetFieldTypeID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableFieldTypeID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetFieldTypeName sets the "field_type_name" field.
func (_u *UniqueIndexUpdateOne) SetFieldTypeName(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetFieldTypeName(v)
	return _u
}

// SetNillableFieldTypeName sets the "field_type_name" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableFieldTypeName(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetFieldTypeName(*v)
	}
	return _u
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_u *UniqueIndexUpdateOne) SetFieldDefinitionID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetFieldDefinitionID(v)
	return _u
}

// SetNillableFieldDefinitionID sets the "field_definition_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableFieldDefinitionID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetFieldDefinitionID(*v)
	}
	return _u
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_u *UniqueIndexUpdateOne) SetFieldDefinitionName(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetFieldDefinitionName(v)
	return _u
}

// SetNillableFieldDefinitionName sets the "field_definition_name" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableFieldDefinitionName(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetFieldDefinitionName(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *UniqueIndexUpdateOne) SetContentID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableContentID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_u *UniqueIndexUpdateOne) SetContentLocaleID(v uuid.UUID) *UniqueIndexUpdateOne {
	_u.mutation.SetContentLocaleID(v)
	return _u
}

// SetNillableContentLocaleID sets the "content_locale_id" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableContentLocaleID(v *uuid.UUID) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetContentLocaleID(*v)
	}
	return _u
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_u *UniqueIndexUpdateOne) SetContentLocaleName(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetContentLocaleName(v)
	return _u
}

// SetNillableContentLocaleName sets the "content_locale_name" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableContentLocaleName(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetContentLocaleName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *UniqueIndexUpdateOne) SetVersion(v int64) *UniqueIndexUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableVersion(v *int64) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *UniqueIndexUpdateOne) AddVersion(v int64) *UniqueIndexUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *UniqueIndexUpdateOne) SetValue(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableValue(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *UniqueIndexUpdateOne) SetKey(v string) *UniqueIndexUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *UniqueIndexUpdateOne) SetNillableKey(v *string) *UniqueIndexUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// Mutation returns the UniqueIndexMutation object of the builder.
func (_u *UniqueIndexUpdateOne) Mutation() *UniqueIndexMutation {
	return _u.mutation
}

// Where appends a list predicates to the UniqueIndexUpdate builder.
func (_u *UniqueIndexUpdateOne) Where(ps ...predicate.UniqueIndex) *UniqueIndexUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UniqueIndexUpdateOne) Select(field string, fields ...string) *UniqueIndexUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UniqueIndex entity.
func (_u *UniqueIndexUpdateOne) Save(ctx context.Context) (*UniqueIndex, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UniqueIndexUpdateOne) SaveX(ctx context.Context) *UniqueIndex {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UniqueIndexUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UniqueIndexUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UniqueIndexUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uniqueindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentTypeName(); ok {
		if err := uniqueindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldTypeName(); ok {
		if err := uniqueindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldDefinitionName(); ok {
		if err := uniqueindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.field_definition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLocaleName(); ok {
		if err := uniqueindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.content_locale_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := uniqueindex.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Key(); ok {
		if err := uniqueindex.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "UniqueIndex.key": %w`, err)}
		}
	}
	return nil
}

func (_u *UniqueIndexUpdateOne) sqlSave(ctx context.Context) (_node *UniqueIndex, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uniqueindex.Table, uniqueindex.Columns, sqlgraph.NewFieldSpec(uniqueindex.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UniqueIndex.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uniqueindex.FieldID)
		for _, f := range fields {
			if !uniqueindex.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uniqueindex.FieldID {
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
	if value, ok := _u.mutation.RealmID(); ok {
		_spec.SetField(uniqueindex.FieldRealmID, field.TypeUUID, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(uniqueindex.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uniqueindex.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentTypeID(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentTypeName(); ok {
		_spec.SetField(uniqueindex.FieldContentTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageID(); ok {
		_spec.SetField(uniqueindex.FieldLanguageID, field.TypeUUID, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(uniqueindex.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(uniqueindex.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(uniqueindex.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageIsDefault(); ok {
		_spec.SetField(uniqueindex.FieldLanguageIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldTypeID(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldTypeName(); ok {
		_spec.SetField(uniqueindex.FieldFieldTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldDefinitionID(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldDefinitionName(); ok {
		_spec.SetField(uniqueindex.FieldFieldDefinitionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(uniqueindex.FieldContentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleID(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleName(); ok {
		_spec.SetField(uniqueindex.FieldContentLocaleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(uniqueindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(uniqueindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(uniqueindex.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(uniqueindex.FieldKey, field.TypeString, value)
	}
	_node = &UniqueIndex{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uniqueindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
