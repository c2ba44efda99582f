// Code generated by ent, DO NOT EDIT.

package fieldindex

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldID, id))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldRealmID, v))
}

// ContentTypeID applies equality check predicate on the "content_type_id" field. It's identical to ContentTypeIDEQ.
func ContentTypeID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeName applies equality check predicate on the "content_type_name" field. It's identical to ContentTypeNameEQ.
func ContentTypeName(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentTypeName, v))
}

// LanguageID applies equality check predicate on the "language_id" field. It's identical to LanguageIDEQ.
func LanguageID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageCode applies equality check predicate on the "language_code" field. It's identical to LanguageCodeEQ.
func LanguageCode(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageCode, v))
}

// LanguageIsDefault applies equality check predicate on the "language_is_default" field. It's identical to LanguageIsDefaultEQ.
func LanguageIsDefault(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageIsDefault, v))
}

// FieldTypeID applies equality check predicate on the "field_type_id" field. It's identical to FieldTypeIDEQ.
func FieldTypeID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldTypeID, v))
}

// FieldTypeName applies equality check predicate on the "field_type_name" field. It's identical to FieldTypeNameEQ.
func FieldTypeName(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldTypeName, v))
}

// FieldDefinitionID applies equality check predicate on the "field_definition_id" field. It's identical to FieldDefinitionIDEQ.
func FieldDefinitionID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionName applies equality check predicate on the "field_definition_name" field. It's identical to FieldDefinitionNameEQ.
func FieldDefinitionName(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldDefinitionName, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentID, v))
}

// ContentLocaleID applies equality check predicate on the "content_locale_id" field. It's identical to ContentLocaleIDEQ.
func ContentLocaleID(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentLocaleID, v))
}

// ContentLocaleName applies equality check predicate on the "content_locale_name" field. It's identical to ContentLocaleNameEQ.
func ContentLocaleName(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentLocaleName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldVersion, v))
}

// ValueBoolean applies equality check predicate on the "value_boolean" field. It's identical to ValueBooleanEQ.
func ValueBoolean(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueBoolean, v))
}

// ValueDatetime applies equality check predicate on the "value_datetime" field. It's identical to ValueDatetimeEQ.
func ValueDatetime(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueDatetime, v))
}

// ValueNumber applies equality check predicate on the "value_number" field. It's identical to ValueNumberEQ.
func ValueNumber(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueNumber, v))
}

// ValueRelatedContent applies equality check predicate on the "value_related_content" field. It's identical to ValueRelatedContentEQ.
func ValueRelatedContent(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueRelatedContent, v))
}

// ValueRichText applies equality check predicate on the "value_rich_text" field. It's identical to ValueRichTextEQ.
func ValueRichText(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueRichText, v))
}

// ValueSelect applies equality check predicate on the "value_select" field. It's identical to ValueSelectEQ.
func ValueSelect(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueSelect, v))
}

// ValueString applies equality check predicate on the "value_string" field. It's identical to ValueStringEQ.
func ValueString(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueString, v))
}

// ValueTags applies equality check predicate on the "value_tags" field. It's identical to ValueTagsEQ.
func ValueTags(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueTags, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldRealmID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldStatus, vs...))
}

// ContentTypeIDEQ applies the EQ predicate on the "content_type_id" field.
func ContentTypeIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeIDNEQ applies the NEQ predicate on the "content_type_id" field.
func ContentTypeIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldContentTypeID, v))
}

// ContentTypeIDIn applies the In predicate on the "content_type_id" field.
func ContentTypeIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldContentTypeID, vs...))
}

// ContentTypeIDNotIn applies the NotIn predicate on the "content_type_id" field.
func ContentTypeIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldContentTypeID, vs...))
}

// ContentTypeIDGT applies the GT predicate on the "content_type_id" field.
func ContentTypeIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldContentTypeID, v))
}

// ContentTypeIDGTE applies the GTE predicate on the "content_type_id" field.
func ContentTypeIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldContentTypeID, v))
}

// ContentTypeIDLT applies the LT predicate on the "content_type_id" field.
func ContentTypeIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldContentTypeID, v))
}

// ContentTypeIDLTE applies the LTE predicate on the "content_type_id" field.
func ContentTypeIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldContentTypeID, v))
}

// ContentTypeNameEQ applies the EQ predicate on the "content_type_name" field.
func ContentTypeNameEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentTypeName, v))
}

// ContentTypeNameNEQ applies the NEQ predicate on the "content_type_name" field.
func ContentTypeNameNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldContentTypeName, v))
}

// ContentTypeNameIn applies the In predicate on the "content_type_name" field.
func ContentTypeNameIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldContentTypeName, vs...))
}

// ContentTypeNameNotIn applies the NotIn predicate on the "content_type_name" field.
func ContentTypeNameNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldContentTypeName, vs...))
}

// ContentTypeNameGT applies the GT predicate on the "content_type_name" field.
func ContentTypeNameGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldContentTypeName, v))
}

// ContentTypeNameGTE applies the GTE predicate on the "content_type_name" field.
func ContentTypeNameGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldContentTypeName, v))
}

// ContentTypeNameLT applies the LT predicate on the "content_type_name" field.
func ContentTypeNameLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldContentTypeName, v))
}

// ContentTypeNameLTE applies the LTE predicate on the "content_type_name" field.
func ContentTypeNameLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldContentTypeName, v))
}

// ContentTypeNameContains applies the Contains predicate on the "content_type_name" field.
func ContentTypeNameContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldContentTypeName, v))
}

// ContentTypeNameHasPrefix applies the HasPrefix predicate on the "content_type_name" field.
func ContentTypeNameHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldContentTypeName, v))
}

// ContentTypeNameHasSuffix applies the HasSuffix predicate on the "content_type_name" field.
func ContentTypeNameHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldContentTypeName, v))
}

// ContentTypeNameEqualFold applies the EqualFold predicate on the "content_type_name" field.
func ContentTypeNameEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldContentTypeName, v))
}

// ContentTypeNameContainsFold applies the ContainsFold predicate on the "content_type_name" field.
func ContentTypeNameContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldContentTypeName, v))
}

// LanguageIDEQ applies the EQ predicate on the "language_id" field.
func LanguageIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageIDNEQ applies the NEQ predicate on the "language_id" field.
func LanguageIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldLanguageID, v))
}

// LanguageIDIn applies the In predicate on the "language_id" field.
func LanguageIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldLanguageID, vs...))
}

// LanguageIDNotIn applies the NotIn predicate on the "language_id" field.
func LanguageIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldLanguageID, vs...))
}

// LanguageIDGT applies the GT predicate on the "language_id" field.
func LanguageIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldLanguageID, v))
}

// LanguageIDGTE applies the GTE predicate on the "language_id" field.
func LanguageIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldLanguageID, v))
}

// LanguageIDLT applies the LT predicate on the "language_id" field.
func LanguageIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldLanguageID, v))
}

// LanguageIDLTE applies the LTE predicate on the "language_id" field.
func LanguageIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldLanguageID, v))
}

// LanguageIDIsNil applies the IsNil predicate on the "language_id" field.
func LanguageIDIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldLanguageID))
}

// LanguageIDNotNil applies the NotNil predicate on the "language_id" field.
func LanguageIDNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldLanguageID))
}

// LanguageCodeEQ applies the EQ predicate on the "language_code" field.
func LanguageCodeEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageCode, v))
}

// LanguageCodeNEQ applies the NEQ predicate on the "language_code" field.
func LanguageCodeNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldLanguageCode, v))
}

// LanguageCodeIn applies the In predicate on the "language_code" field.
func LanguageCodeIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldLanguageCode, vs...))
}

// LanguageCodeNotIn applies the NotIn predicate on the "language_code" field.
func LanguageCodeNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldLanguageCode, vs...))
}

// LanguageCodeGT applies the GT predicate on the "language_code" field.
func LanguageCodeGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldLanguageCode, v))
}

// LanguageCodeGTE applies the GTE predicate on the "language_code" field.
func LanguageCodeGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldLanguageCode, v))
}

// LanguageCodeLT applies the LT predicate on the "language_code" field.
func LanguageCodeLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldLanguageCode, v))
}

// LanguageCodeLTE applies the LTE predicate on the "language_code" field.
func LanguageCodeLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldLanguageCode, v))
}

// LanguageCodeContains applies the Contains predicate on the "language_code" field.
func LanguageCodeContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldLanguageCode, v))
}

// LanguageCodeHasPrefix applies the HasPrefix predicate on the "language_code" field.
func LanguageCodeHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldLanguageCode, v))
}

// LanguageCodeHasSuffix applies the HasSuffix predicate on the "language_code" field.
func LanguageCodeHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldLanguageCode, v))
}

// LanguageCodeIsNil applies the IsNil predicate on the "language_code" field.
func LanguageCodeIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldLanguageCode))
}

// LanguageCodeNotNil applies the NotNil predicate on the "language_code" field.
func LanguageCodeNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldLanguageCode))
}

// LanguageCodeEqualFold applies the EqualFold predicate on the "language_code" field.
func LanguageCodeEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldLanguageCode, v))
}

// LanguageCodeContainsFold applies the ContainsFold predicate on the "language_code" field.
func LanguageCodeContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldLanguageCode, v))
}

// LanguageIsDefaultEQ applies the EQ predicate on the "language_is_default" field.
func LanguageIsDefaultEQ(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldLanguageIsDefault, v))
}

// LanguageIsDefaultNEQ applies the NEQ predicate on the "language_is_default" field.
func LanguageIsDefaultNEQ(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldLanguageIsDefault, v))
}

// FieldTypeIDEQ applies the EQ predicate on the "field_type_id" field.
func FieldTypeIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldTypeID, v))
}

// FieldTypeIDNEQ applies the NEQ predicate on the "field_type_id" field.
func FieldTypeIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldFieldTypeID, v))
}

// FieldTypeIDIn applies the In predicate on the "field_type_id" field.
func FieldTypeIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldFieldTypeID, vs...))
}

// FieldTypeIDNotIn applies the NotIn predicate on the "field_type_id" field.
func FieldTypeIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldFieldTypeID, vs...))
}

// FieldTypeIDGT applies the GT predicate on the "field_type_id" field.
func FieldTypeIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldFieldTypeID, v))
}

// FieldTypeIDGTE applies the GTE predicate on the "field_type_id" field.
func FieldTypeIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldFieldTypeID, v))
}

// FieldTypeIDLT applies the LT predicate on the "field_type_id" field.
func FieldTypeIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldFieldTypeID, v))
}

// FieldTypeIDLTE applies the LTE predicate on the "field_type_id" field.
func FieldTypeIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldFieldTypeID, v))
}

// FieldTypeNameEQ applies the EQ predicate on the "field_type_name" field.
func FieldTypeNameEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldTypeName, v))
}

// FieldTypeNameNEQ applies the NEQ predicate on the "field_type_name" field.
func FieldTypeNameNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldFieldTypeName, v))
}

// FieldTypeNameIn applies the In predicate on the "field_type_name" field.
func FieldTypeNameIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldFieldTypeName, vs...))
}

// FieldTypeNameNotIn applies the NotIn predicate on the "field_type_name" field.
func FieldTypeNameNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldFieldTypeName, vs...))
}

// FieldTypeNameGT applies the GT predicate on the "field_type_name" field.
func FieldTypeNameGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldFieldTypeName, v))
}

// FieldTypeNameGTE applies the GTE predicate on the "field_type_name" field.
func FieldTypeNameGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldFieldTypeName, v))
}

// FieldTypeNameLT applies the LT predicate on the "field_type_name" field.
func FieldTypeNameLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldFieldTypeName, v))
}

// FieldTypeNameLTE applies the LTE predicate on the "field_type_name" field.
func FieldTypeNameLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldFieldTypeName, v))
}

// FieldTypeNameContains applies the Contains predicate on the "field_type_name" field.
func FieldTypeNameContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldFieldTypeName, v))
}

// FieldTypeNameHasPrefix applies the HasPrefix predicate on the "field_type_name" field.
func FieldTypeNameHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldFieldTypeName, v))
}

// FieldTypeNameHasSuffix applies the HasSuffix predicate on the "field_type_name" field.
func FieldTypeNameHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldFieldTypeName, v))
}

// FieldTypeNameEqualFold applies the EqualFold predicate on the "field_type_name" field.
func FieldTypeNameEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldFieldTypeName, v))
}

// FieldTypeNameContainsFold applies the ContainsFold predicate on the "field_type_name" field.
func FieldTypeNameContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldFieldTypeName, v))
}

// FieldDefinitionIDEQ applies the EQ predicate on the "field_definition_id" field.
func FieldDefinitionIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDNEQ applies the NEQ predicate on the "field_definition_id" field.
func FieldDefinitionIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDIn applies the In predicate on the "field_definition_id" field.
func FieldDefinitionIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldFieldDefinitionID, vs...))
}

// FieldDefinitionIDNotIn applies the NotIn predicate on the "field_definition_id" field.
func FieldDefinitionIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldFieldDefinitionID, vs...))
}

// FieldDefinitionIDGT applies the GT predicate on the "field_definition_id" field.
func FieldDefinitionIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDGTE applies the GTE predicate on the "field_definition_id" field.
func FieldDefinitionIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDLT applies the LT predicate on the "field_definition_id" field.
func FieldDefinitionIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDLTE applies the LTE predicate on the "field_definition_id" field.
func FieldDefinitionIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldFieldDefinitionID, v))
}

// FieldDefinitionNameEQ applies the EQ predicate on the "field_definition_name" field.
func FieldDefinitionNameEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameNEQ applies the NEQ predicate on the "field_definition_name" field.
func FieldDefinitionNameNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameIn applies the In predicate on the "field_definition_name" field.
func FieldDefinitionNameIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldFieldDefinitionName, vs...))
}

// FieldDefinitionNameNotIn applies the NotIn predicate on the "field_definition_name" field.
func FieldDefinitionNameNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldFieldDefinitionName, vs...))
}

// FieldDefinitionNameGT applies the GT predicate on the "field_definition_name" field.
func FieldDefinitionNameGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameGTE applies the GTE predicate on the "field_definition_name" field.
func FieldDefinitionNameGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameLT applies the LT predicate on the "field_definition_name" field.
func FieldDefinitionNameLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameLTE applies the LTE predicate on the "field_definition_name" field.
func FieldDefinitionNameLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameContains applies the Contains predicate on the "field_definition_name" field.
func FieldDefinitionNameContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameHasPrefix applies the HasPrefix predicate on the "field_definition_name" field.
func FieldDefinitionNameHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameHasSuffix applies the HasSuffix predicate on the "field_definition_name" field.
func FieldDefinitionNameHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameEqualFold applies the EqualFold predicate on the "field_definition_name" field.
func FieldDefinitionNameEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameContainsFold applies the ContainsFold predicate on the "field_definition_name" field.
func FieldDefinitionNameContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldFieldDefinitionName, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldContentID, v))
}

// ContentLocaleIDEQ applies the EQ predicate on the "content_locale_id" field.
func ContentLocaleIDEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentLocaleID, v))
}

// ContentLocaleIDNEQ applies the NEQ predicate on the "content_locale_id" field.
func ContentLocaleIDNEQ(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldContentLocaleID, v))
}

// ContentLocaleIDIn applies the In predicate on the "content_locale_id" field.
func ContentLocaleIDIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldContentLocaleID, vs...))
}

// ContentLocaleIDNotIn applies the NotIn predicate on the "content_locale_id" field.
func ContentLocaleIDNotIn(vs ...uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldContentLocaleID, vs...))
}

// ContentLocaleIDGT applies the GT predicate on the "content_locale_id" field.
func ContentLocaleIDGT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldContentLocaleID, v))
}

// ContentLocaleIDGTE applies the GTE predicate on the "content_locale_id" field.
func ContentLocaleIDGTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldContentLocaleID, v))
}

// ContentLocaleIDLT applies the LT predicate on the "content_locale_id" field.
func ContentLocaleIDLT(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldContentLocaleID, v))
}

// ContentLocaleIDLTE applies the LTE predicate on the "content_locale_id" field.
func ContentLocaleIDLTE(v uuid.UUID) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldContentLocaleID, v))
}

// ContentLocaleNameEQ applies the EQ predicate on the "content_locale_name" field.
func ContentLocaleNameEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldContentLocaleName, v))
}

// ContentLocaleNameNEQ applies the NEQ predicate on the "content_locale_name" field.
func ContentLocaleNameNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldContentLocaleName, v))
}

// ContentLocaleNameIn applies the In predicate on the "content_locale_name" field.
func ContentLocaleNameIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldContentLocaleName, vs...))
}

// ContentLocaleNameNotIn applies the NotIn predicate on the "content_locale_name" field.
func ContentLocaleNameNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldContentLocaleName, vs...))
}

// ContentLocaleNameGT applies the GT predicate on the "content_locale_name" field.
func ContentLocaleNameGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldContentLocaleName, v))
}

// ContentLocaleNameGTE applies the GTE predicate on the "content_locale_name" field.
func ContentLocaleNameGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldContentLocaleName, v))
}

// ContentLocaleNameLT applies the LT predicate on the "content_locale_name" field.
func ContentLocaleNameLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldContentLocaleName, v))
}

// ContentLocaleNameLTE applies the LTE predicate on the "content_locale_name" field.
func ContentLocaleNameLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldContentLocaleName, v))
}

// ContentLocaleNameContains applies the Contains predicate on the "content_locale_name" field.
func ContentLocaleNameContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldContentLocaleName, v))
}

// ContentLocaleNameHasPrefix applies the HasPrefix predicate on the "content_locale_name" field.
func ContentLocaleNameHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldContentLocaleName, v))
}

// ContentLocaleNameHasSuffix applies the HasSuffix predicate on the "content_locale_name" field.
func ContentLocaleNameHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldContentLocaleName, v))
}

// ContentLocaleNameEqualFold applies the EqualFold predicate on the "content_locale_name" field.
func ContentLocaleNameEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldContentLocaleName, v))
}

// ContentLocaleNameContainsFold applies the ContainsFold predicate on the "content_locale_name" field.
func ContentLocaleNameContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldContentLocaleName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldVersion, v))
}

// ValueBooleanEQ applies the EQ predicate on the "value_boolean" field.
func ValueBooleanEQ(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueBoolean, v))
}

// ValueBooleanNEQ applies the NEQ predicate on the "value_boolean" field.
func ValueBooleanNEQ(v bool) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueBoolean, v))
}

// ValueBooleanIsNil applies the IsNil predicate on the "value_boolean" field.
func ValueBooleanIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueBoolean))
}

// ValueBooleanNotNil applies the NotNil predicate on the "value_boolean" field.
func ValueBooleanNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueBoolean))
}

// ValueDatetimeEQ applies the EQ predicate on the "value_datetime" field.
func ValueDatetimeEQ(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueDatetime, v))
}

// ValueDatetimeNEQ applies the NEQ predicate on the "value_datetime" field.
func ValueDatetimeNEQ(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueDatetime, v))
}

// ValueDatetimeIn applies the In predicate on the "value_datetime" field.
func ValueDatetimeIn(vs ...time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueDatetime, vs...))
}

// ValueDatetimeNotIn applies the NotIn predicate on the "value_datetime" field.
func ValueDatetimeNotIn(vs ...time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueDatetime, vs...))
}

// ValueDatetimeGT applies the GT predicate on the "value_datetime" field.
func ValueDatetimeGT(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueDatetime, v))
}

// ValueDatetimeGTE applies the GTE predicate on the "value_datetime" field.
func ValueDatetimeGTE(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueDatetime, v))
}

// ValueDatetimeLT applies the LT predicate on the "value_datetime" field.
func ValueDatetimeLT(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueDatetime, v))
}

// ValueDatetimeLTE applies the LTE predicate on the "value_datetime" field.
func ValueDatetimeLTE(v time.Time) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueDatetime, v))
}

// ValueDatetimeIsNil applies the IsNil predicate on the "value_datetime" field.
func ValueDatetimeIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueDatetime))
}

// ValueDatetimeNotNil applies the NotNil predicate on the "value_datetime" field.
func ValueDatetimeNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueDatetime))
}

// ValueNumberEQ applies the EQ predicate on the "value_number" field.
func ValueNumberEQ(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueNumber, v))
}

// ValueNumberNEQ applies the NEQ predicate on the "value_number" field.
func ValueNumberNEQ(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueNumber, v))
}

// ValueNumberIn applies the In predicate on the "value_number" field.
func ValueNumberIn(vs ...float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueNumber, vs...))
}

// ValueNumberNotIn applies the NotIn predicate on the "value_number" field.
func ValueNumberNotIn(vs ...float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueNumber, vs...))
}

// ValueNumberGT applies the GT predicate on the "value_number" field.
func ValueNumberGT(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueNumber, v))
}

// ValueNumberGTE applies the GTE predicate on the "value_number" field.
func ValueNumberGTE(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueNumber, v))
}

// ValueNumberLT applies the LT predicate on the "value_number" field.
func ValueNumberLT(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueNumber, v))
}

// ValueNumberLTE applies the LTE predicate on the "value_number" field.
func ValueNumberLTE(v float64) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueNumber, v))
}

// ValueNumberIsNil applies the IsNil predicate on the "value_number" field.
func ValueNumberIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueNumber))
}

// ValueNumberNotNil applies the NotNil predicate on the "value_number" field.
func ValueNumberNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueNumber))
}

// ValueRelatedContentEQ applies the EQ predicate on the "value_related_content" field.
func ValueRelatedContentEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueRelatedContent, v))
}

// ValueRelatedContentNEQ applies the NEQ predicate on the "value_related_content" field.
func ValueRelatedContentNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueRelatedContent, v))
}

// ValueRelatedContentIn applies the In predicate on the "value_related_content" field.
func ValueRelatedContentIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueRelatedContent, vs...))
}

// ValueRelatedContentNotIn applies the NotIn predicate on the "value_related_content" field.
func ValueRelatedContentNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueRelatedContent, vs...))
}

// ValueRelatedContentGT applies the GT predicate on the "value_related_content" field.
func ValueRelatedContentGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueRelatedContent, v))
}

// ValueRelatedContentGTE applies the GTE predicate on the "value_related_content" field.
func ValueRelatedContentGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueRelatedContent, v))
}

// ValueRelatedContentLT applies the LT predicate on the "value_related_content" field.
func ValueRelatedContentLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueRelatedContent, v))
}

// ValueRelatedContentLTE applies the LTE predicate on the "value_related_content" field.
func ValueRelatedContentLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueRelatedContent, v))
}

// ValueRelatedContentContains applies the Contains predicate on the "value_related_content" field.
func ValueRelatedContentContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldValueRelatedContent, v))
}

// ValueRelatedContentHasPrefix applies the HasPrefix predicate on the "value_related_content" field.
func ValueRelatedContentHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldValueRelatedContent, v))
}

// ValueRelatedContentHasSuffix applies the HasSuffix predicate on the "value_related_content" field.
func ValueRelatedContentHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldValueRelatedContent, v))
}

// ValueRelatedContentIsNil applies the IsNil predicate on the "value_related_content" field.
func ValueRelatedContentIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueRelatedContent))
}

// ValueRelatedContentNotNil applies the NotNil predicate on the "value_related_content" field.
func ValueRelatedContentNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueRelatedContent))
}

// ValueRelatedContentEqualFold applies the EqualFold predicate on the "value_related_content" field.
func ValueRelatedContentEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldValueRelatedContent, v))
}

// ValueRelatedContentContainsFold applies the ContainsFold predicate on the "value_related_content" field.
func ValueRelatedContentContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldValueRelatedContent, v))
}

// ValueRichTextEQ applies the EQ predicate on the "value_rich_text" field.
func ValueRichTextEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueRichText, v))
}

// ValueRichTextNEQ applies the NEQ predicate on the "value_rich_text" field.
func ValueRichTextNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueRichText, v))
}

// ValueRichTextIn applies the In predicate on the "value_rich_text" field.
func ValueRichTextIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueRichText, vs...))
}

// ValueRichTextNotIn applies the NotIn predicate on the "value_rich_text" field.
func ValueRichTextNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueRichText, vs...))
}

// ValueRichTextGT applies the GT predicate on the "value_rich_text" field.
func ValueRichTextGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueRichText, v))
}

// ValueRichTextGTE applies the GTE predicate on the "value_rich_text" field.
func ValueRichTextGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueRichText, v))
}

// ValueRichTextLT applies the LT predicate on the "value_rich_text" field.
func ValueRichTextLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueRichText, v))
}

// ValueRichTextLTE applies the LTE predicate on the "value_rich_text" field.
func ValueRichTextLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueRichText, v))
}

// ValueRichTextContains applies the Contains predicate on the "value_rich_text" field.
func ValueRichTextContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldValueRichText, v))
}

// ValueRichTextHasPrefix applies the HasPrefix predicate on the "value_rich_text" field.
func ValueRichTextHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldValueRichText, v))
}

// ValueRichTextHasSuffix applies the HasSuffix predicate on the "value_rich_text" field.
func ValueRichTextHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldValueRichText, v))
}

// ValueRichTextIsNil applies the IsNil predicate on the "value_rich_text" field.
func ValueRichTextIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueRichText))
}

// ValueRichTextNotNil applies the NotNil predicate on the "value_rich_text" field.
func ValueRichTextNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueRichText))
}

// ValueRichTextEqualFold applies the EqualFold predicate on the "value_rich_text" field.
func ValueRichTextEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldValueRichText, v))
}

// ValueRichTextContainsFold applies the ContainsFold predicate on the "value_rich_text" field.
func ValueRichTextContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldValueRichText, v))
}

// ValueSelectEQ applies the EQ predicate on the "value_select" field.
func ValueSelectEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueSelect, v))
}

// ValueSelectNEQ applies the NEQ predicate on the "value_select" field.
func ValueSelectNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueSelect, v))
}

// ValueSelectIn applies the In predicate on the "value_select" field.
func ValueSelectIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueSelect, vs...))
}

// ValueSelectNotIn applies the NotIn predicate on the "value_select" field.
func ValueSelectNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueSelect, vs...))
}

// ValueSelectGT applies the GT predicate on the "value_select" field.
func ValueSelectGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueSelect, v))
}

// ValueSelectGTE applies the GTE predicate on the "value_select" field.
func ValueSelectGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueSelect, v))
}

// ValueSelectLT applies the LT predicate on the "value_select" field.
func ValueSelectLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueSelect, v))
}

// ValueSelectLTE applies the LTE predicate on the "value_select" field.
func ValueSelectLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueSelect, v))
}

// ValueSelectContains applies the Contains predicate on the "value_select" field.
func ValueSelectContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldValueSelect, v))
}

// ValueSelectHasPrefix applies the HasPrefix predicate on the "value_select" field.
func ValueSelectHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldValueSelect, v))
}

// ValueSelectHasSuffix applies the HasSuffix predicate on the "value_select" field.
func ValueSelectHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldValueSelect, v))
}

// ValueSelectIsNil applies the IsNil predicate on the "value_select" field.
func ValueSelectIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueSelect))
}

// ValueSelectNotNil applies the NotNil predicate on the "value_select" field.
func ValueSelectNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueSelect))
}

// ValueSelectEqualFold applies the EqualFold predicate on the "value_select" field.
func ValueSelectEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldValueSelect, v))
}

// ValueSelectContainsFold applies the ContainsFold predicate on the "value_select" field.
func ValueSelectContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldValueSelect, v))
}

// ValueStringEQ applies the EQ predicate on the "value_string" field.
func ValueStringEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueString, v))
}

// ValueStringNEQ applies the NEQ predicate on the "value_string" field.
func ValueStringNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueString, v))
}

// ValueStringIn applies the In predicate on the "value_string" field.
func ValueStringIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueString, vs...))
}

// ValueStringNotIn applies the NotIn predicate on the "value_string" field.
func ValueStringNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueString, vs...))
}

// ValueStringGT applies the GT predicate on the "value_string" field.
func ValueStringGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueString, v))
}

// ValueStringGTE applies the GTE predicate on the "value_string" field.
func ValueStringGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueString, v))
}

// ValueStringLT applies the LT predicate on the "value_string" field.
func ValueStringLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueString, v))
}

// ValueStringLTE applies the LTE predicate on the "value_string" field.
func ValueStringLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueString, v))
}

// ValueStringContains applies the Contains predicate on the "value_string" field.
func ValueStringContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldValueString, v))
}

// ValueStringHasPrefix applies the HasPrefix predicate on the "value_string" field.
func ValueStringHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldValueString, v))
}

// ValueStringHasSuffix applies the HasSuffix predicate on the "value_string" field.
func ValueStringHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldValueString, v))
}

// ValueStringIsNil applies the IsNil predicate on the "value_string" field.
func ValueStringIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueString))
}

// ValueStringNotNil applies the NotNil predicate on the "value_string" field.
func ValueStringNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueString))
}

// ValueStringEqualFold applies the EqualFold predicate on the "value_string" field.
func ValueStringEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldValueString, v))
}

// ValueStringContainsFold applies the ContainsFold predicate on the "value_string" field.
func ValueStringContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldValueString, v))
}

// ValueTagsEQ applies the EQ predicate on the "value_tags" field.
func ValueTagsEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEQ(FieldValueTags, v))
}

// ValueTagsNEQ applies the NEQ predicate on the "value_tags" field.
func ValueTagsNEQ(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNEQ(FieldValueTags, v))
}

// ValueTagsIn applies the In predicate on the "value_tags" field.
func ValueTagsIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIn(FieldValueTags, vs...))
}

// ValueTagsNotIn applies the NotIn predicate on the "value_tags" field.
func ValueTagsNotIn(vs ...string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotIn(FieldValueTags, vs...))
}

// ValueTagsGT applies the GT predicate on the "value_tags" field.
func ValueTagsGT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGT(FieldValueTags, v))
}

// ValueTagsGTE applies the GTE predicate on the "value_tags" field.
func ValueTagsGTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldGTE(FieldValueTags, v))
}

// ValueTagsLT applies the LT predicate on the "value_tags" field.
func ValueTagsLT(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLT(FieldValueTags, v))
}

// ValueTagsLTE applies the LTE predicate on the "value_tags" field.
func ValueTagsLTE(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldLTE(FieldValueTags, v))
}

// ValueTagsContains applies the Contains predicate on the "value_tags" field.
func ValueTagsContains(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContains(FieldValueTags, v))
}

// ValueTagsHasPrefix applies the HasPrefix predicate on the "value_tags" field.
func ValueTagsHasPrefix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasPrefix(FieldValueTags, v))
}

// ValueTagsHasSuffix applies the HasSuffix predicate on the "value_tags" field.
func ValueTagsHasSuffix(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldHasSuffix(FieldValueTags, v))
}

// ValueTagsIsNil applies the IsNil predicate on the "value_tags" field.
func ValueTagsIsNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldIsNull(FieldValueTags))
}

// ValueTagsNotNil applies the NotNil predicate on the "value_tags" field.
func ValueTagsNotNil() predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldNotNull(FieldValueTags))
}

// ValueTagsEqualFold applies the EqualFold predicate on the "value_tags" field.
func ValueTagsEqualFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldEqualFold(FieldValueTags, v))
}

// ValueTagsContainsFold applies the ContainsFold predicate on the "value_tags" field.
func ValueTagsContainsFold(v string) predicate.FieldIndex {
	return predicate.FieldIndex(sql.FieldContainsFold(FieldValueTags, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldIndex) predicate.FieldIndex {
	return predicate.FieldIndex(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldIndex) predicate.FieldIndex {
	return predicate.FieldIndex(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldIndex) predicate.FieldIndex {
	return predicate.FieldIndex(sql.NotPredicates(p))
}
