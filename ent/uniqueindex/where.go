// Code generated by ent, DO NOT EDIT.

package uniqueindex

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldID, id))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldRealmID, v))
}

// ContentTypeID applies equality check predicate on the "content_type_id" field. It's identical to ContentTypeIDEQ.
func ContentTypeID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeName applies equality check predicate on the "content_type_name" field. It's identical to ContentTypeNameEQ.
func ContentTypeName(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentTypeName, v))
}

// LanguageID applies equality check predicate on the "language_id" field. It's identical to LanguageIDEQ.
func LanguageID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageCode applies equality check predicate on the "language_code" field. It's identical to LanguageCodeEQ.
func LanguageCode(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageCode, v))
}

// LanguageIsDefault applies equality check predicate on the "language_is_default" field. It's identical to LanguageIsDefaultEQ.
func LanguageIsDefault(v bool) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageIsDefault, v))
}

// FieldTypeID applies equality check predicate on the "field_type_id" field. It's identical to FieldTypeIDEQ.
func FieldTypeID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldTypeID, v))
}

// FieldTypeName applies equality check predicate on the "field_type_name" field. It's identical to FieldTypeNameEQ.
func FieldTypeName(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldTypeName, v))
}

// FieldDefinitionID applies equality check predicate on the "field_definition_id" field. It's identical to FieldDefinitionIDEQ.
func FieldDefinitionID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionName applies equality check predicate on the "field_definition_name" field. It's identical to FieldDefinitionNameEQ.
func FieldDefinitionName(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldDefinitionName, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentID, v))
}

// ContentLocaleID applies equality check predicate on the "content_locale_id" field. It's identical to ContentLocaleIDEQ.
func ContentLocaleID(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentLocaleID, v))
}

// ContentLocaleName applies equality check predicate on the "content_locale_name" field. It's identical to ContentLocaleNameEQ.
func ContentLocaleName(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentLocaleName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldVersion, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldValue, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldKey, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotNull(FieldRealmID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldStatus, vs...))
}

// ContentTypeIDEQ applies the EQ predicate on the "content_type_id" field.
func ContentTypeIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeIDNEQ applies the NEQ predicate on the "content_type_id" field.
func ContentTypeIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldContentTypeID, v))
}

// ContentTypeIDIn applies the In predicate on the "content_type_id" field.
func ContentTypeIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldContentTypeID, vs...))
}

// ContentTypeIDNotIn applies the NotIn predicate on the "content_type_id" field.
func ContentTypeIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldContentTypeID, vs...))
}

// ContentTypeIDGT applies the GT predicate on the "content_type_id" field.
func ContentTypeIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldContentTypeID, v))
}

// ContentTypeIDGTE applies the GTE predicate on the "content_type_id" field.
func ContentTypeIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldContentTypeID, v))
}

// ContentTypeIDLT applies the LT predicate on the "content_type_id" field.
func ContentTypeIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldContentTypeID, v))
}

// ContentTypeIDLTE applies the LTE predicate on the "content_type_id" field.
func ContentTypeIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldContentTypeID, v))
}

// ContentTypeNameEQ applies the EQ predicate on the "content_type_name" field.
func ContentTypeNameEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentTypeName, v))
}

// ContentTypeNameNEQ applies the NEQ predicate on the "content_type_name" field.
func ContentTypeNameNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldContentTypeName, v))
}

// ContentTypeNameIn applies the In predicate on the "content_type_name" field.
func ContentTypeNameIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldContentTypeName, vs...))
}

// ContentTypeNameNotIn applies the NotIn predicate on the "content_type_name" field.
func ContentTypeNameNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldContentTypeName, vs...))
}

// ContentTypeNameGT applies the GT predicate on the "content_type_name" field.
func ContentTypeNameGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldContentTypeName, v))
}

// ContentTypeNameGTE applies the GTE predicate on the "content_type_name" field.
func ContentTypeNameGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldContentTypeName, v))
}

// ContentTypeNameLT applies the LT predicate on the "content_type_name" field.
func ContentTypeNameLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldContentTypeName, v))
}

// ContentTypeNameLTE applies the LTE predicate on the "content_type_name" field.
func ContentTypeNameLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldContentTypeName, v))
}

// ContentTypeNameContains applies the Contains predicate on the "content_type_name" field.
func ContentTypeNameContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldContentTypeName, v))
}

// ContentTypeNameHasPrefix applies the HasPrefix predicate on the "content_type_name" field.
func ContentTypeNameHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldContentTypeName, v))
}

// ContentTypeNameHasSuffix applies the HasSuffix predicate on the "content_type_name" field.
func ContentTypeNameHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldContentTypeName, v))
}

// ContentTypeNameEqualFold applies the EqualFold predicate on the "content_type_name" field.
func ContentTypeNameEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldContentTypeName, v))
}

// ContentTypeNameContainsFold applies the ContainsFold predicate on the "content_type_name" field.
func ContentTypeNameContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldContentTypeName, v))
}

// LanguageIDEQ applies the EQ predicate on the "language_id" field.
func LanguageIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageIDNEQ applies the NEQ predicate on the "language_id" field.
func LanguageIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldLanguageID, v))
}

// LanguageIDIn applies the In predicate on the "language_id" field.
func LanguageIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldLanguageID, vs...))
}

// LanguageIDNotIn applies the NotIn predicate on the "language_id" field.
func LanguageIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldLanguageID, vs...))
}

// LanguageIDGT applies the GT predicate on the "language_id" field.
func LanguageIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldLanguageID, v))
}

// LanguageIDGTE applies the GTE predicate on the "language_id" field.
func LanguageIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldLanguageID, v))
}

// LanguageIDLT applies the LT predicate on the "language_id" field.
func LanguageIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldLanguageID, v))
}

// LanguageIDLTE applies the LTE predicate on the "language_id" field.
func LanguageIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldLanguageID, v))
}

// LanguageIDIsNil applies the IsNil predicate on the "language_id" field.
func LanguageIDIsNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIsNull(FieldLanguageID))
}

// LanguageIDNotNil applies the NotNil predicate on the "language_id" field.
func LanguageIDNotNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotNull(FieldLanguageID))
}

// LanguageCodeEQ applies the EQ predicate on the "language_code" field.
func LanguageCodeEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageCode, v))
}

// LanguageCodeNEQ applies the NEQ predicate on the "language_code" field.
func LanguageCodeNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldLanguageCode, v))
}

// LanguageCodeIn applies the In predicate on the "language_code" field.
func LanguageCodeIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldLanguageCode, vs...))
}

// LanguageCodeNotIn applies the NotIn predicate on the "language_code" field.
func LanguageCodeNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldLanguageCode, vs...))
}

// LanguageCodeGT applies the GT predicate on the "language_code" field.
func LanguageCodeGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldLanguageCode, v))
}

// LanguageCodeGTE applies the GTE predicate on the "language_code" field.
func LanguageCodeGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldLanguageCode, v))
}

// LanguageCodeLT applies the LT predicate on the "language_code" field.
func LanguageCodeLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldLanguageCode, v))
}

// LanguageCodeLTE applies the LTE predicate on the "language_code" field.
func LanguageCodeLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldLanguageCode, v))
}

// LanguageCodeContains applies the Contains predicate on the "language_code" field.
func LanguageCodeContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldLanguageCode, v))
}

// LanguageCodeHasPrefix applies the HasPrefix predicate on the "language_code" field.
func LanguageCodeHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldLanguageCode, v))
}

// LanguageCodeHasSuffix applies the HasSuffix predicate on the "language_code" field.
func LanguageCodeHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldLanguageCode, v))
}

// LanguageCodeIsNil applies the IsNil predicate on the "language_code" field.
func LanguageCodeIsNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIsNull(FieldLanguageCode))
}

// LanguageCodeNotNil applies the NotNil predicate on the "language_code" field.
func LanguageCodeNotNil() predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotNull(FieldLanguageCode))
}

// LanguageCodeEqualFold applies the EqualFold predicate on the "language_code" field.
func LanguageCodeEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldLanguageCode, v))
}

// LanguageCodeContainsFold applies the ContainsFold predicate on the "language_code" field.
func LanguageCodeContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldLanguageCode, v))
}

// LanguageIsDefaultEQ applies the EQ predicate on the "language_is_default" field.
func LanguageIsDefaultEQ(v bool) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldLanguageIsDefault, v))
}

// LanguageIsDefaultNEQ applies the NEQ predicate on the "language_is_default" field.
func LanguageIsDefaultNEQ(v bool) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldLanguageIsDefault, v))
}

// FieldTypeIDEQ applies the EQ predicate on the "field_type_id" field.
func FieldTypeIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldTypeID, v))
}

// FieldTypeIDNEQ applies the NEQ predicate on the "field_type_id" field.
func FieldTypeIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldFieldTypeID, v))
}

// FieldTypeIDIn applies the In predicate on the "field_type_id" field.
func FieldTypeIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldFieldTypeID, vs...))
}

// FieldTypeIDNotIn applies the NotIn predicate on the "field_type_id" field.
func FieldTypeIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldFieldTypeID, vs...))
}

// FieldTypeIDGT applies the GT predicate on the "field_type_id" field.
func FieldTypeIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldFieldTypeID, v))
}

// FieldTypeIDGTE applies the GTE predicate on the "field_type_id" field.
func FieldTypeIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldFieldTypeID, v))
}

// FieldTypeIDLT applies the LT predicate on the "field_type_id" field.
func FieldTypeIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldFieldTypeID, v))
}

// FieldTypeIDLTE applies the LTE predicate on the "field_type_id" field.
func FieldTypeIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldFieldTypeID, v))
}

// FieldTypeNameEQ applies the EQ predicate on the "field_type_name" field.
func FieldTypeNameEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldTypeName, v))
}

// FieldTypeNameNEQ applies the NEQ predicate on the "field_type_name" field.
func FieldTypeNameNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldFieldTypeName, v))
}

// FieldTypeNameIn applies the In predicate on the "field_type_name" field.
func FieldTypeNameIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldFieldTypeName, vs...))
}

// FieldTypeNameNotIn applies the NotIn predicate on the "field_type_name" field.
func FieldTypeNameNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldFieldTypeName, vs...))
}

// FieldTypeNameGT applies the GT predicate on the "field_type_name" field.
func FieldTypeNameGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldFieldTypeName, v))
}

// FieldTypeNameGTE applies the GTE predicate on the "field_type_name" field.
func FieldTypeNameGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldFieldTypeName, v))
}

// FieldTypeNameLT applies the LT predicate on the "field_type_name" field.
func FieldTypeNameLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldFieldTypeName, v))
}

// FieldTypeNameLTE applies the LTE predicate on the "field_type_name" field.
func FieldTypeNameLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldFieldTypeName, v))
}

// FieldTypeNameContains applies the Contains predicate on the "field_type_name" field.
func FieldTypeNameContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldFieldTypeName, v))
}

// FieldTypeNameHasPrefix applies the HasPrefix predicate on the "field_type_name" field.
func FieldTypeNameHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldFieldTypeName, v))
}

// FieldTypeNameHasSuffix applies the HasSuffix predicate on the "field_type_name" field.
func FieldTypeNameHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldFieldTypeName, v))
}

// FieldTypeNameEqualFold applies the EqualFold predicate on the "field_type_name" field.
func FieldTypeNameEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldFieldTypeName, v))
}

// FieldTypeNameContainsFold applies the ContainsFold predicate on the "field_type_name" field.
func FieldTypeNameContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldFieldTypeName, v))
}

// FieldDefinitionIDEQ applies the EQ predicate on the "field_definition_id" field.
func FieldDefinitionIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDNEQ applies the NEQ predicate on the "field_definition_id" field.
func FieldDefinitionIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDIn applies the In predicate on the "field_definition_id" field.
func FieldDefinitionIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldFieldDefinitionID, vs...))
}

// FieldDefinitionIDNotIn applies the NotIn predicate on the "field_definition_id" field.
func FieldDefinitionIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldFieldDefinitionID, vs...))
}

// FieldDefinitionIDGT applies the GT predicate on the "field_definition_id" field.
func FieldDefinitionIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDGTE applies the GTE predicate on the "field_definition_id" field.
func FieldDefinitionIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDLT applies the LT predicate on the "field_definition_id" field.
func FieldDefinitionIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldFieldDefinitionID, v))
}

// FieldDefinitionIDLTE applies the LTE predicate on the "field_definition_id" field.
func FieldDefinitionIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldFieldDefinitionID, v))
}

// FieldDefinitionNameEQ applies the EQ predicate on the "field_definition_name" field.
func FieldDefinitionNameEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameNEQ applies the NEQ predicate on the "field_definition_name" field.
func FieldDefinitionNameNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameIn applies the In predicate on the "field_definition_name" field.
func FieldDefinitionNameIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldFieldDefinitionName, vs...))
}

// FieldDefinitionNameNotIn applies the NotIn predicate on the "field_definition_name" field.
func FieldDefinitionNameNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldFieldDefinitionName, vs...))
}

// FieldDefinitionNameGT applies the GT predicate on the "field_definition_name" field.
func FieldDefinitionNameGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameGTE applies the GTE predicate on the "field_definition_name" field.
func FieldDefinitionNameGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameLT applies the LT predicate on the "field_definition_name" field.
func FieldDefinitionNameLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameLTE applies the LTE predicate on the "field_definition_name" field.
func FieldDefinitionNameLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameContains applies the Contains predicate on the "field_definition_name" field.
func FieldDefinitionNameContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameHasPrefix applies the HasPrefix predicate on the "field_definition_name" field.
func FieldDefinitionNameHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameHasSuffix applies the HasSuffix predicate on the "field_definition_name" field.
func FieldDefinitionNameHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameEqualFold applies the EqualFold predicate on the "field_definition_name" field.
func FieldDefinitionNameEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldFieldDefinitionName, v))
}

// FieldDefinitionNameContainsFold applies the ContainsFold predicate on the "field_definition_name" field.
func FieldDefinitionNameContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldFieldDefinitionName, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldContentID, v))
}

// ContentLocaleIDEQ applies the EQ predicate on the "content_locale_id" field.
func ContentLocaleIDEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentLocaleID, v))
}

// ContentLocaleIDNEQ applies the NEQ predicate on the "content_locale_id" field.
func ContentLocaleIDNEQ(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldContentLocaleID, v))
}

// ContentLocaleIDIn applies the In predicate on the "content_locale_id" field.
func ContentLocaleIDIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldContentLocaleID, vs...))
}

// ContentLocaleIDNotIn applies the NotIn predicate on the "content_locale_id" field.
func ContentLocaleIDNotIn(vs ...uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldContentLocaleID, vs...))
}

// ContentLocaleIDGT applies the GT predicate on the "content_locale_id" field.
func ContentLocaleIDGT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldContentLocaleID, v))
}

// ContentLocaleIDGTE applies the GTE predicate on the "content_locale_id" field.
func ContentLocaleIDGTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldContentLocaleID, v))
}

// ContentLocaleIDLT applies the LT predicate on the "content_locale_id" field.
func ContentLocaleIDLT(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldContentLocaleID, v))
}

// ContentLocaleIDLTE applies the LTE predicate on the "content_locale_id" field.
func ContentLocaleIDLTE(v uuid.UUID) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldContentLocaleID, v))
}

// ContentLocaleNameEQ applies the EQ predicate on the "content_locale_name" field.
func ContentLocaleNameEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldContentLocaleName, v))
}

// ContentLocaleNameNEQ applies the NEQ predicate on the "content_locale_name" field.
func ContentLocaleNameNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldContentLocaleName, v))
}

// ContentLocaleNameIn applies the In predicate on the "content_locale_name" field.
func ContentLocaleNameIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldContentLocaleName, vs...))
}

// ContentLocaleNameNotIn applies the NotIn predicate on the "content_locale_name" field.
func ContentLocaleNameNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldContentLocaleName, vs...))
}

// ContentLocaleNameGT applies the GT predicate on the "content_locale_name" field.
func ContentLocaleNameGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldContentLocaleName, v))
}

// ContentLocaleNameGTE applies the GTE predicate on the "content_locale_name" field.
func ContentLocaleNameGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldContentLocaleName, v))
}

// ContentLocaleNameLT applies the LT predicate on the "content_locale_name" field.
func ContentLocaleNameLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldContentLocaleName, v))
}

// ContentLocaleNameLTE applies the LTE predicate on the "content_locale_name" field.
func ContentLocaleNameLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldContentLocaleName, v))
}

// ContentLocaleNameContains applies the Contains predicate on the "content_locale_name" field.
func ContentLocaleNameContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldContentLocaleName, v))
}

// ContentLocaleNameHasPrefix applies the HasPrefix predicate on the "content_locale_name" field.
func ContentLocaleNameHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldContentLocaleName, v))
}

// ContentLocaleNameHasSuffix applies the HasSuffix predicate on the "content_locale_name" field.
func ContentLocaleNameHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldContentLocaleName, v))
}

// ContentLocaleNameEqualFold applies the EqualFold predicate on the "content_locale_name" field.
func ContentLocaleNameEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldContentLocaleName, v))
}

// ContentLocaleNameContainsFold applies the ContainsFold predicate on the "content_locale_name" field.
func ContentLocaleNameContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldContentLocaleName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldVersion, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldValue, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.FieldContainsFold(FieldKey, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UniqueIndex) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UniqueIndex) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UniqueIndex) predicate.UniqueIndex {
	return predicate.UniqueIndex(sql.NotPredicates(p))
}
