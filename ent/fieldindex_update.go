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
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/predicate"
)

// FieldIndexUpdate is the builder for updating FieldIndex entities.
type FieldIndexUpdate struct {
	config
	hooks    []Hook
	mutation *FieldIndexMutation
}

// Where appends a list predicates to the FieldIndexUpdate builder.
func (_u *FieldIndexUpdate) Where(ps ...predicate.FieldIndex) *FieldIndexUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRealmID sets the "realm_id" field.
func (_u *FieldIndexUpdate) SetRealmID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetRealmID(v)
	return _u
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableRealmID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetRealmID(*v)
	}
	return _u
}

// ClearRealmID clears the value of the "realm_id" field.
func (_u *FieldIndexUpdate) ClearRealmID() *FieldIndexUpdate {
	_u.mutation.ClearRealmID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FieldIndexUpdate) SetStatus(v fieldindex.Status) *FieldIndexUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableStatus(v *fieldindex.Status) *FieldIndexUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentTypeID sets the "content_type_id" field.
func (_u *FieldIndexUpdate) SetContentTypeID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetContentTypeID(v)
	return _u
}

// SetNillableContentTypeID sets the "content_type_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableContentTypeID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetContentTypeID(*v)
	}
	return _u
}

// SetContentTypeName sets the "content_type_name" field.
func (_u *FieldIndexUpdate) SetContentTypeName(v string) *FieldIndexUpdate {
	_u.mutation.SetContentTypeName(v)
	return _u
}

// SetNillableContentTypeName sets the "content_type_name" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableContentTypeName(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetContentTypeName(*v)
	}
	return _u
}

// SetLanguageID sets the "language_id" field.
func (_u *FieldIndexUpdate) SetLanguageID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetLanguageID(v)
	return _u
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableLanguageID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetLanguageID(*v)
	}
	return _u
}

// ClearLanguageID clears the value of the "language_id" field.
func (_u *FieldIndexUpdate) ClearLanguageID() *FieldIndexUpdate {
	_u.mutation.ClearLanguageID()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *FieldIndexUpdate) SetLanguageCode(v string) *FieldIndexUpdate {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableLanguageCode(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *FieldIndexUpdate) ClearLanguageCode() *FieldIndexUpdate {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_u *FieldIndexUpdate) SetLanguageIsDefault(v bool) *FieldIndexUpdate {
	_u.mutation.SetLanguageIsDefault(v)
	return _u
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableLanguageIsDefault(v *bool) *FieldIndexUpdate {
	if v != nil {
		_u.SetLanguageIsDefault(*v)
	}
	return _u
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *FieldIndexUpdate) SetFieldTypeID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableFieldTypeID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetFieldTypeName sets the "field_type_name" field.
func (_u *FieldIndexUpdate) SetFieldTypeName(v string) *FieldIndexUpdate {
	_u.mutation.SetFieldTypeName(v)
	return _u
}

// SetNillableFieldTypeName sets the "field_type_name" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableFieldTypeName(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetFieldTypeName(*v)
	}
	return _u
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_u *FieldIndexUpdate) SetFieldDefinitionID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetFieldDefinitionID(v)
	return _u
}

// SetNillableFieldDefinitionID sets the "field_definition_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableFieldDefinitionID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetFieldDefinitionID(*v)
	}
	return _u
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_u *FieldIndexUpdate) SetFieldDefinitionName(v string) *FieldIndexUpdate {
	_u.mutation.SetFieldDefinitionName(v)
	return _u
}

// SetNillableFieldDefinitionName sets the "field_definition_name" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableFieldDefinitionName(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetFieldDefinitionName(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *FieldIndexUpdate) SetContentID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableContentID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_u *FieldIndexUpdate) SetContentLocaleID(v uuid.UUID) *FieldIndexUpdate {
	_u.mutation.SetContentLocaleID(v)
	return _u
}

// SetNillableContentLocaleID sets the "content_locale_id" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableContentLocaleID(v *uuid.UUID) *FieldIndexUpdate {
	if v != nil {
		_u.SetContentLocaleID(*v)
	}
	return _u
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_u *FieldIndexUpdate) SetContentLocaleName(v string) *FieldIndexUpdate {
	_u.mutation.SetContentLocaleName(v)
	return _u
}

// SetNillableContentLocaleName sets the "content_locale_name" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableContentLocaleName(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetContentLocaleName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FieldIndexUpdate) SetVersion(v int64) *FieldIndexUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableVersion(v *int64) *FieldIndexUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldIndexUpdate) AddVersion(v int64) *FieldIndexUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValueBoolean sets the "value_boolean" field.
func (_u *FieldIndexUpdate) SetValueBoolean(v bool) *FieldIndexUpdate {
	_u.mutation.SetValueBoolean(v)
	return _u
}

// SetNillableValueBoolean sets the "value_boolean" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueBoolean(v *bool) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueBoolean(*v)
	}
	return _u
}

// ClearValueBoolean clears the value of the "value_boolean" field.
func (_u *FieldIndexUpdate) ClearValueBoolean() *FieldIndexUpdate {
	_u.mutation.ClearValueBoolean()
	return _u
}

// SetValueDatetime sets the "value_datetime" field.
func (_u *FieldIndexUpdate) SetValueDatetime(v time.Time) *FieldIndexUpdate {
	_u.mutation.SetValueDatetime(v)
	return _u
}

// SetNillableValueDatetime sets the "value_datetime" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueDatetime(v *time.Time) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueDatetime(*v)
	}
	return _u
}

// ClearValueDatetime clears the value of the "value_datetime" field.
func (_u *FieldIndexUpdate) ClearValueDatetime() *FieldIndexUpdate {
	_u.mutation.ClearValueDatetime()
	return _u
}

// SetValueNumber sets the "value_number" field.
func (_u *FieldIndexUpdate) SetValueNumber(v float64) *FieldIndexUpdate {
	_u.mutation.ResetValueNumber()
	_u.mutation.SetValueNumber(v)
	return _u
}

// SetNillableValueNumber sets the "value_number" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueNumber(v *float64) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueNumber(*v)
	}
	return _u
}

// AddValueNumber adds value to the "value_number" field.
func (_u *FieldIndexUpdate) AddValueNumber(v float64) *FieldIndexUpdate {
	_u.mutation.AddValueNumber(v)
	return _u
}

// ClearValueNumber clears the value of the "value_number" field.
func (_u *FieldIndexUpdate) ClearValueNumber() *FieldIndexUpdate {
	_u.mutation.ClearValueNumber()
	return _u
}

// SetValueRelatedContent sets the "value_related_content" field.
func (_u *FieldIndexUpdate) SetValueRelatedContent(v string) *FieldIndexUpdate {
	_u.mutation.SetValueRelatedContent(v)
	return _u
}

// SetNillableValueRelatedContent sets the "value_related_content" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueRelatedContent(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueRelatedContent(*v)
	}
	return _u
}

// ClearValueRelatedContent clears the value of the "value_related_content" field.
func (_u *FieldIndexUpdate) ClearValueRelatedContent() *FieldIndexUpdate {
	_u.mutation.ClearValueRelatedContent()
	return _u
}

// SetValueRichText sets the "value_rich_text" field.
func (_u *FieldIndexUpdate) SetValueRichText(v string) *FieldIndexUpdate {
	_u.mutation.SetValueRichText(v)
	return _u
}

// SetNillableValueRichText sets the "value_rich_text" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueRichText(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueRichText(*v)
	}
	return _u
}

// ClearValueRichText clears the value of the "value_rich_text" field.
func (_u *FieldIndexUpdate) ClearValueRichText() *FieldIndexUpdate {
	_u.mutation.ClearValueRichText()
	return _u
}

// SetValueSelect sets the "value_select" field.
func (_u *FieldIndexUpdate) SetValueSelect(v string) *FieldIndexUpdate {
	_u.mutation.SetValueSelect(v)
	return _u
}

// SetNillableValueSelect sets the "value_select" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueSelect(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueSelect(*v)
	}
	return _u
}

// ClearValueSelect clears the value of the "value_select" field.
func (_u *FieldIndexUpdate) ClearValueSelect() *FieldIndexUpdate {
	_u.mutation.ClearValueSelect()
	return _u
}

// SetValueString sets the "value_string" field.
func (_u *FieldIndexUpdate) SetValueString(v string) *FieldIndexUpdate {
	_u.mutation.SetValueString(v)
	return _u
}

// SetNillableValueString sets the "value_string" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueString(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueString(*v)
	}
	return _u
}

// ClearValueString clears the value of the "value_string" field.
func (_u *FieldIndexUpdate) ClearValueString() *FieldIndexUpdate {
	_u.mutation.ClearValueString()
	return _u
}

// SetValueTags sets the "value_tags" field.
func (_u *FieldIndexUpdate) SetValueTags(v string) *FieldIndexUpdate {
	_u.mutation.SetValueTags(v)
	return _u
}

// SetNillableValueTags sets the "value_tags" field if the given value is not nil.
func (_u *FieldIndexUpdate) SetNillableValueTags(v *string) *FieldIndexUpdate {
	if v != nil {
		_u.SetValueTags(*v)
	}
	return _u
}

// ClearValueTags clears the value of the "value_tags" field.
func (_u *FieldIndexUpdate) ClearValueTags() *FieldIndexUpdate {
	_u.mutation.ClearValueTags()
	return _u
}

// Mutation returns the FieldIndexMutation object of the builder.
func (_u *FieldIndexUpdate) Mutation() *FieldIndexMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldIndexUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldIndexUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldIndexUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldIndexUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldIndexUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fieldindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentTypeName(); ok {
		if err := fieldindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldTypeName(); ok {
		if err := fieldindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldDefinitionName(); ok {
		if err := fieldindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_definition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLocaleName(); ok {
		if err := fieldindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_locale_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldIndexUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldindex.Table, fieldindex.Columns, sqlgraph.NewFieldSpec(fieldindex.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RealmID(); ok {
		_spec.SetField(fieldindex.FieldRealmID, field.TypeUUID, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(fieldindex.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fieldindex.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentTypeID(); ok {
		_spec.SetField(fieldindex.FieldContentTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentTypeName(); ok {
		_spec.SetField(fieldindex.FieldContentTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageID(); ok {
		_spec.SetField(fieldindex.FieldLanguageID, field.TypeUUID, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(fieldindex.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(fieldindex.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(fieldindex.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageIsDefault(); ok {
		_spec.SetField(fieldindex.FieldLanguageIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldTypeID(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldTypeName(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldDefinitionID(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldDefinitionName(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(fieldindex.FieldContentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleID(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleName(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValueBoolean(); ok {
		_spec.SetField(fieldindex.FieldValueBoolean, field.TypeBool, value)
	}
	if _u.mutation.ValueBooleanCleared() {
		_spec.ClearField(fieldindex.FieldValueBoolean, field.TypeBool)
	}
	if value, ok := _u.mutation.ValueDatetime(); ok {
		_spec.SetField(fieldindex.FieldValueDatetime, field.TypeTime, value)
	}
	if _u.mutation.ValueDatetimeCleared() {
		_spec.ClearField(fieldindex.FieldValueDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.ValueNumber(); ok {
		_spec.SetField(fieldindex.FieldValueNumber, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNumber(); ok {
		_spec.AddField(fieldindex.FieldValueNumber, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumberCleared() {
		_spec.ClearField(fieldindex.FieldValueNumber, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueRelatedContent(); ok {
		_spec.SetField(fieldindex.FieldValueRelatedContent, field.TypeString, value)
	}
	if _u.mutation.ValueRelatedContentCleared() {
		_spec.ClearField(fieldindex.FieldValueRelatedContent, field.TypeString)
	}
	if value, ok := _u.mutation.ValueRichText(); ok {
		_spec.SetField(fieldindex.FieldValueRichText, field.TypeString, value)
	}
	if _u.mutation.ValueRichTextCleared() {
		_spec.ClearField(fieldindex.FieldValueRichText, field.TypeString)
	}
	if value, ok := _u.mutation.ValueSelect(); ok {
		_spec.SetField(fieldindex.FieldValueSelect, field.TypeString, value)
	}
	if _u.mutation.ValueSelectCleared() {
		_spec.ClearField(fieldindex.FieldValueSelect, field.TypeString)
	}
	if value, ok := _u.mutation.ValueString(); ok {
		_spec.SetField(fieldindex.FieldValueString, field.TypeString, value)
	}
	if _u.mutation.ValueStringCleared() {
		_spec.ClearField(fieldindex.FieldValueString, field.TypeString)
	}
	if value, ok := _u.mutation.ValueTags(); ok {
		_spec.SetField(fieldindex.FieldValueTags, field.TypeString, value)
	}
	if _u.mutation.ValueTagsCleared() {
		_spec.ClearField(fieldindex.FieldValueTags, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldIndexUpdateOne is the builder for updating a single FieldIndex entity.
type FieldIndexUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldIndexMutation
}

// SetRealmID sets the "realm_id" field.
func (_u *FieldIndexUpdateOne) SetRealmID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetRealmID(v)
	return _u
}

// SetNillableRealmID sets the "realm_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableRealmID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetRealmID(*v)
	}
	return _u
}

// ClearRealmID clears the value of the "realm_id" field.
func (_u *FieldIndexUpdateOne) ClearRealmID() *FieldIndexUpdateOne {
	_u.mutation.ClearRealmID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FieldIndexUpdateOne) SetStatus(v fieldindex.Status) *FieldIndexUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableStatus(v *fieldindex.Status) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentTypeID sets the "content_type_id" field.
func (_u *FieldIndexUpdateOne) SetContentTypeID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetContentTypeID(v)
	return _u
}

// SetNillableContentTypeID sets the "content_type_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableContentTypeID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetContentTypeID(*v)
	}
	return _u
}

// SetContentTypeName sets the "content_type_name" field.
func (_u *FieldIndexUpdateOne) SetContentTypeName(v string) *FieldIndexUpdateOne {
	_u.mutation.SetContentTypeName(v)
	return _u
}

// SetNillableContentTypeName sets the "content_type_name" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableContentTypeName(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetContentTypeName(*v)
	}
	return _u
}

// SetLanguageID sets the "language_id" field.
func (_u *FieldIndexUpdateOne) SetLanguageID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetLanguageID(v)
	return _u
}

// SetNillableLanguageID sets the "language_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableLanguageID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetLanguageID(*v)
	}
	return _u
}

// ClearLanguageID clears the value of the "language_id" field.
func (_u *FieldIndexUpdateOne) ClearLanguageID() *FieldIndexUpdateOne {
	_u.mutation.ClearLanguageID()
	return _u
}

// SetLanguageCode sets the "language_code" field.
func (_u *FieldIndexUpdateOne) SetLanguageCode(v string) *FieldIndexUpdateOne {
	_u.mutation.SetLanguageCode(v)
	return _u
}

// SetNillableLanguageCode sets the "language_code" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableLanguageCode(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetLanguageCode(*v)
	}
	return _u
}

// ClearLanguageCode clears the value of the "language_code" field.
func (_u *FieldIndexUpdateOne) ClearLanguageCode() *FieldIndexUpdateOne {
	_u.mutation.ClearLanguageCode()
	return _u
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (_u *FieldIndexUpdateOne) SetLanguageIsDefault(v bool) *FieldIndexUpdateOne {
	_u.mutation.SetLanguageIsDefault(v)
	return _u
}

// SetNillableLanguageIsDefault sets the "language_is_default" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableLanguageIsDefault(v *bool) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetLanguageIsDefault(*v)
	}
	return _u
}

// SetFieldTypeID sets the "field_type_id" field.
func (_u *FieldIndexUpdateOne) SetFieldTypeID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetFieldTypeID(v)
	return _u
}

// SetNillableFieldTypeID sets the "field_type_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableFieldTypeID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetFieldTypeID(*v)
	}
	return _u
}

// SetFieldTypeName sets the "field_type_name" field.
func (_u *FieldIndexUpdateOne) SetFieldTypeName(v string) *FieldIndexUpdateOne {
	_u.mutation.SetFieldTypeName(v)
	return _u
}

// SetNillableFieldTypeName sets the "field_type_name" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableFieldTypeName(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetFieldTypeName(*v)
	}
	return _u
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (_u *FieldIndexUpdateOne) SetFieldDefinitionID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetFieldDefinitionID(v)
	return _u
}

// SetNillableFieldDefinitionID sets the "field_definition_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableFieldDefinitionID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetFieldDefinitionID(*v)
	}
	return _u
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (_u *FieldIndexUpdateOne) SetFieldDefinitionName(v string) *FieldIndexUpdateOne {
	_u.mutation.SetFieldDefinitionName(v)
	return _u
}

// SetNillableFieldDefinitionName sets the "field_definition_name" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableFieldDefinitionName(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetFieldDefinitionName(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *FieldIndexUpdateOne) SetContentID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableContentID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentLocaleID sets the "content_locale_id" field.
func (_u *FieldIndexUpdateOne) SetContentLocaleID(v uuid.UUID) *FieldIndexUpdateOne {
	_u.mutation.SetContentLocaleID(v)
	return _u
}

// SetNillableContentLocaleID sets the "content_locale_id" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableContentLocaleID(v *uuid.UUID) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetContentLocaleID(*v)
	}
	return _u
}

// SetContentLocaleName sets the "content_locale_name" field.
func (_u *FieldIndexUpdateOne) SetContentLocaleName(v string) *FieldIndexUpdateOne {
	_u.mutation.SetContentLocaleName(v)
	return _u
}

// SetNillableContentLocaleName sets the "content_locale_name" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableContentLocaleName(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetContentLocaleName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *FieldIndexUpdateOne) SetVersion(v int64) *FieldIndexUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableVersion(v *int64) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *FieldIndexUpdateOne) AddVersion(v int64) *FieldIndexUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetValueBoolean sets the "value_boolean" field.
func (_u *FieldIndexUpdateOne) SetValueBoolean(v bool) *FieldIndexUpdateOne {
	_u.mutation.SetValueBoolean(v)
	return _u
}

// SetNillableValueBoolean sets the "value_boolean" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueBoolean(v *bool) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueBoolean(*v)
	}
	return _u
}

// ClearValueBoolean clears the value of the "value_boolean" field.
func (_u *FieldIndexUpdateOne) ClearValueBoolean() *FieldIndexUpdateOne {
	_u.mutation.ClearValueBoolean()
	return _u
}

// SetValueDatetime sets the "value_datetime" field.
func (_u *FieldIndexUpdateOne) SetValueDatetime(v time.Time) *FieldIndexUpdateOne {
	_u.mutation.SetValueDatetime(v)
	return _u
}

// SetNillableValueDatetime sets the "value_datetime" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueDatetime(v *time.Time) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueDatetime(*v)
	}
	return _u
}

// ClearValueDatetime clears the value of the "value_datetime" field.
func (_u *FieldIndexUpdateOne) ClearValueDatetime() *FieldIndexUpdateOne {
	_u.mutation.ClearValueDatetime()
	return _u
}

// SetValueNumber sets the "value_number" field.
func (_u *FieldIndexUpdateOne) SetValueNumber(v float64) *FieldIndexUpdateOne {
	_u.mutation.ResetValueNumber()
	_u.mutation.SetValueNumber(v)
	return _u
}

// SetNillableValueNumber sets the "value_number" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueNumber(v *float64) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueNumber(*v)
	}
	return _u
}

// AddValueNumber adds value to the "value_number" field.
func (_u *FieldIndexUpdateOne) AddValueNumber(v float64) *FieldIndexUpdateOne {
	_u.mutation.AddValueNumber(v)
	return _u
}

// ClearValueNumber clears the value of the "value_number" field.
func (_u *FieldIndexUpdateOne) ClearValueNumber() *FieldIndexUpdateOne {
	_u.mutation.ClearValueNumber()
	return _u
}

// SetValueRelatedContent sets the "value_related_content" field.
func (_u *FieldIndexUpdateOne) SetValueRelatedContent(v string) *FieldIndexUpdateOne {
	_u.mutation.SetValueRelatedContent(v)
	return _u
}

// SetNillableValueRelatedContent sets the "value_related_content" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueRelatedContent(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueRelatedContent(*v)
	}
	return _u
}

// ClearValueRelatedContent clears the value of the "value_related_content" field.
func (_u *FieldIndexUpdateOne) ClearValueRelatedContent() *FieldIndexUpdateOne {
	_u.mutation.ClearValueRelatedContent()
	return _u
}

// SetValueRichText sets the "value_rich_text" field.
func (_u *FieldIndexUpdateOne) SetValueRichText(v string) *FieldIndexUpdateOne {
	_u.mutation.SetValueRichText(v)
	return _u
}

// SetNillableValueRichText sets the "value_rich_text" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueRichText(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueRichText(*v)
	}
	return _u
}

// ClearValueRichText clears the value of the "value_rich_text" field.
func (_u *FieldIndexUpdateOne) ClearValueRichText() *FieldIndexUpdateOne {
	_u.mutation.ClearValueRichText()
	return _u
}

// SetValueSelect sets the "value_select" field.
func (_u *FieldIndexUpdateOne) SetValueSelect(v string) *FieldIndexUpdateOne {
	_u.mutation.SetValueSelect(v)
	return _u
}

// SetNillableValueSelect sets the "value_select" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueSelect(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueSelect(*v)
	}
	return _u
}

// ClearValueSelect clears the value of the "value_select" field.
func (_u *FieldIndexUpdateOne) ClearValueSelect() *FieldIndexUpdateOne {
	_u.mutation.ClearValueSelect()
	return _u
}

// SetValueString sets the "value_string" field.
func (_u *FieldIndexUpdateOne) SetValueString(v string) *FieldIndexUpdateOne {
	_u.mutation.SetValueString(v)
	return _u
}

// SetNillableValueString sets the "value_string" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueString(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueString(*v)
	}
	return _u
}

// ClearValueString clears the value of the "value_string" field.
func (_u *FieldIndexUpdateOne) ClearValueString() *FieldIndexUpdateOne {
	_u.mutation.ClearValueString()
	return _u
}

// SetValueTags sets the "value_tags" field.
func (_u *FieldIndexUpdateOne) SetValueTags(v string) *FieldIndexUpdateOne {
	_u.mutation.SetValueTags(v)
	return _u
}

// SetNillableValueTags sets the "value_tags" field if the given value is not nil.
func (_u *FieldIndexUpdateOne) SetNillableValueTags(v *string) *FieldIndexUpdateOne {
	if v != nil {
		_u.SetValueTags(*v)
	}
	return _u
}

// ClearValueTags clears the value of the "value_tags" field.
func (_u *FieldIndexUpdateOne) ClearValueTags() *FieldIndexUpdateOne {
	_u.mutation.ClearValueTags()
	return _u
}

// Mutation returns the FieldIndexMutation object of the builder.
func (_u *FieldIndexUpdateOne) Mutation() *FieldIndexMutation {
	return _u.mutation
}

// Where appends a list predicates to the FieldIndexUpdate builder.
func (_u *FieldIndexUpdateOne) Where(ps ...predicate.FieldIndex) *FieldIndexUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldIndexUpdateOne) Select(field string, fields ...string) *FieldIndexUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldIndex entity.
func (_u *FieldIndexUpdateOne) Save(ctx context.Context) (*FieldIndex, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldIndexUpdateOne) SaveX(ctx context.Context) *FieldIndex {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldIndexUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldIndexUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldIndexUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fieldindex.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentTypeName(); ok {
		if err := fieldindex.ContentTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "content_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldTypeName(); ok {
		if err := fieldindex.FieldTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "field_type_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldDefinitionName(); ok {
		if err := fieldindex.FieldDefinitionNameValidator(v); err != nil {
			return &ValidationError{Name: "field_definition_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.field_definition_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentLocaleName(); ok {
		if err := fieldindex.ContentLocaleNameValidator(v); err != nil {
			return &ValidationError{Name: "content_locale_name", err: fmt.Errorf(`ent: validator failed for field "FieldIndex.content_locale_name": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldIndexUpdateOne) sqlSave(ctx context.Context) (_node *FieldIndex, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldindex.Table, fieldindex.Columns, sqlgraph.NewFieldSpec(fieldindex.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldIndex.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldindex.FieldID)
		for _, f := range fields {
			if !fieldindex.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldindex.FieldID {
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
		_spec.SetField(fieldindex.FieldRealmID, field.TypeUUID, value)
	}
	if _u.mutation.RealmIDCleared() {
		_spec.ClearField(fieldindex.FieldRealmID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fieldindex.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentTypeID(); ok {
		_spec.SetField(fieldindex.FieldContentTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentTypeName(); ok {
		_spec.SetField(fieldindex.FieldContentTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LanguageID(); ok {
		_spec.SetField(fieldindex.FieldLanguageID, field.TypeUUID, value)
	}
	if _u.mutation.LanguageIDCleared() {
		_spec.ClearField(fieldindex.FieldLanguageID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LanguageCode(); ok {
		_spec.SetField(fieldindex.FieldLanguageCode, field.TypeString, value)
	}
	if _u.mutation.LanguageCodeCleared() {
		_spec.ClearField(fieldindex.FieldLanguageCode, field.TypeString)
	}
	if value, ok := _u.mutation.LanguageIsDefault(); ok {
		_spec.SetField(fieldindex.FieldLanguageIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FieldTypeID(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldTypeName(); ok {
		_spec.SetField(fieldindex.FieldFieldTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldDefinitionID(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FieldDefinitionName(); ok {
		_spec.SetField(fieldindex.FieldFieldDefinitionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(fieldindex.FieldContentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleID(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentLocaleName(); ok {
		_spec.SetField(fieldindex.FieldContentLocaleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(fieldindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(fieldindex.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ValueBoolean(); ok {
		_spec.SetField(fieldindex.FieldValueBoolean, field.TypeBool, value)
	}
	if _u.mutation.ValueBooleanCleared() {
		_spec.ClearField(fieldindex.FieldValueBoolean, field.TypeBool)
	}
	if value, ok := _u.mutation.ValueDatetime(); ok {
		_spec.SetField(fieldindex.FieldValueDatetime, field.TypeTime, value)
	}
	if _u.mutation.ValueDatetimeCleared() {
		_spec.ClearField(fieldindex.FieldValueDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.ValueNumber(); ok {
		_spec.SetField(fieldindex.FieldValueNumber, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueNumber(); ok {
		_spec.AddField(fieldindex.FieldValueNumber, field.TypeFloat64, value)
	}
	if _u.mutation.ValueNumberCleared() {
		_spec.ClearField(fieldindex.FieldValueNumber, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ValueRelatedContent(); ok {
		_spec.SetField(fieldindex.FieldValueRelatedContent, field.TypeString, value)
	}
	if _u.mutation.ValueRelatedContentCleared() {
		_spec.ClearField(fieldindex.FieldValueRelatedContent, field.TypeString)
	}
	if value, ok := _u.mutation.ValueRichText(); ok {
		_spec.SetField(fieldindex.FieldValueRichText, field.TypeString, value)
	}
	if _u.mutation.ValueRichTextCleared() {
		_spec.ClearField(fieldindex.FieldValueRichText, field.TypeString)
	}
	if value, ok := _u.mutation.ValueSelect(); ok {
		_spec.SetField(fieldindex.FieldValueSelect, field.TypeString, value)
	}
	if _u.mutation.ValueSelectCleared() {
		_spec.ClearField(fieldindex.FieldValueSelect, field.TypeString)
	}
	if value, ok := _u.mutation.ValueString(); ok {
		_spec.SetField(fieldindex.FieldValueString, field.TypeString, value)
	}
	if _u.mutation.ValueStringCleared() {
		_spec.ClearField(fieldindex.FieldValueString, field.TypeString)
	}
	if value, ok := _u.mutation.ValueTags(); ok {
		_spec.SetField(fieldindex.FieldValueTags, field.TypeString, value)
	}
	if _u.mutation.ValueTagsCleared() {
		_spec.ClearField(fieldindex.FieldValueTags, field.TypeString)
	}
	_node = &FieldIndex{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldindex.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
