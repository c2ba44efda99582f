// Code generated by ent, DO NOT EDIT.

package publishedcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldID, id))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldContentID, v))
}

// ContentTypeID applies equality check predicate on the "content_type_id" field. It's identical to ContentTypeIDEQ.
func ContentTypeID(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldContentTypeID, v))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldRealmID, v))
}

// LanguageID applies equality check predicate on the "language_id" field. It's identical to LanguageIDEQ.
func LanguageID(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldLanguageID, v))
}

// UniqueName applies equality check predicate on the "unique_name" field. It's identical to UniqueNameEQ.
func UniqueName(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNormalized applies equality check predicate on the "unique_name_normalized" field. It's identical to UniqueNameNormalizedEQ.
func UniqueNameNormalized(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldDescription, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldVersion, v))
}

// PublishedBy applies equality check predicate on the "published_by" field. It's identical to PublishedByEQ.
func PublishedBy(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishedOn applies equality check predicate on the "published_on" field. It's identical to PublishedOnEQ.
func PublishedOn(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldPublishedOn, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldContentID, v))
}

// ContentTypeIDEQ applies the EQ predicate on the "content_type_id" field.
func ContentTypeIDEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeIDNEQ applies the NEQ predicate on the "content_type_id" field.
func ContentTypeIDNEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldContentTypeID, v))
}

// ContentTypeIDIn applies the In predicate on the "content_type_id" field.
func ContentTypeIDIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldContentTypeID, vs...))
}

// ContentTypeIDNotIn applies the NotIn predicate on the "content_type_id" field.
func ContentTypeIDNotIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldContentTypeID, vs...))
}

// ContentTypeIDGT applies the GT predicate on the "content_type_id" field.
func ContentTypeIDGT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldContentTypeID, v))
}

// ContentTypeIDGTE applies the GTE predicate on the "content_type_id" field.
func ContentTypeIDGTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldContentTypeID, v))
}

// ContentTypeIDLT applies the LT predicate on the "content_type_id" field.
func ContentTypeIDLT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldContentTypeID, v))
}

// ContentTypeIDLTE applies the LTE predicate on the "content_type_id" field.
func ContentTypeIDLTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldContentTypeID, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldRealmID))
}

// LanguageIDEQ applies the EQ predicate on the "language_id" field.
func LanguageIDEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageIDNEQ applies the NEQ predicate on the "language_id" field.
func LanguageIDNEQ(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldLanguageID, v))
}

// LanguageIDIn applies the In predicate on the "language_id" field.
func LanguageIDIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldLanguageID, vs...))
}

// LanguageIDNotIn applies the NotIn predicate on the "language_id" field.
func LanguageIDNotIn(vs ...uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldLanguageID, vs...))
}

// LanguageIDGT applies the GT predicate on the "language_id" field.
func LanguageIDGT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldLanguageID, v))
}

// LanguageIDGTE applies the GTE predicate on the "language_id" field.
func LanguageIDGTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldLanguageID, v))
}

// LanguageIDLT applies the LT predicate on the "language_id" field.
func LanguageIDLT(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldLanguageID, v))
}

// LanguageIDLTE applies the LTE predicate on the "language_id" field.
func LanguageIDLTE(v uuid.UUID) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldLanguageID, v))
}

// LanguageIDIsNil applies the IsNil predicate on the "language_id" field.
func LanguageIDIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldLanguageID))
}

// LanguageIDNotNil applies the NotNil predicate on the "language_id" field.
func LanguageIDNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldLanguageID))
}

// UniqueNameEQ applies the EQ predicate on the "unique_name" field.
func UniqueNameEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNEQ applies the NEQ predicate on the "unique_name" field.
func UniqueNameNEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldUniqueName, v))
}

// UniqueNameIn applies the In predicate on the "unique_name" field.
func UniqueNameIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldUniqueName, vs...))
}

// UniqueNameNotIn applies the NotIn predicate on the "unique_name" field.
func UniqueNameNotIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldUniqueName, vs...))
}

// UniqueNameGT applies the GT predicate on the "unique_name" field.
func UniqueNameGT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldUniqueName, v))
}

// UniqueNameGTE applies the GTE predicate on the "unique_name" field.
func UniqueNameGTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldUniqueName, v))
}

// UniqueNameLT applies the LT predicate on the "unique_name" field.
func UniqueNameLT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldUniqueName, v))
}

// UniqueNameLTE applies the LTE predicate on the "unique_name" field.
func UniqueNameLTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldUniqueName, v))
}

// UniqueNameContains applies the Contains predicate on the "unique_name" field.
func UniqueNameContains(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContains(FieldUniqueName, v))
}

// UniqueNameHasPrefix applies the HasPrefix predicate on the "unique_name" field.
func UniqueNameHasPrefix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasPrefix(FieldUniqueName, v))
}

// UniqueNameHasSuffix applies the HasSuffix predicate on the "unique_name" field.
func UniqueNameHasSuffix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasSuffix(FieldUniqueName, v))
}

// UniqueNameEqualFold applies the EqualFold predicate on the "unique_name" field.
func UniqueNameEqualFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEqualFold(FieldUniqueName, v))
}

// UniqueNameContainsFold applies the ContainsFold predicate on the "unique_name" field.
func UniqueNameContainsFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContainsFold(FieldUniqueName, v))
}

// UniqueNameNormalizedEQ applies the EQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedNEQ applies the NEQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedIn applies the In predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedNotIn applies the NotIn predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNotIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedGT applies the GT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedGTE applies the GTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLT applies the LT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLTE applies the LTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContains applies the Contains predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContains(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContains(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasPrefix applies the HasPrefix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasPrefix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasPrefix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasSuffix applies the HasSuffix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasSuffix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasSuffix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedEqualFold applies the EqualFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEqualFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEqualFold(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContainsFold applies the ContainsFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContainsFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContainsFold(FieldUniqueNameNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContainsFold(FieldDescription, v))
}

// FieldValuesIsNil applies the IsNil predicate on the "field_values" field.
func FieldValuesIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldFieldValues))
}

// FieldValuesNotNil applies the NotNil predicate on the "field_values" field.
func FieldValuesNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldFieldValues))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldVersion, v))
}

// PublishedByEQ applies the EQ predicate on the "published_by" field.
func PublishedByEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishedByNEQ applies the NEQ predicate on the "published_by" field.
func PublishedByNEQ(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldPublishedBy, v))
}

// PublishedByIn applies the In predicate on the "published_by" field.
func PublishedByIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldPublishedBy, vs...))
}

// PublishedByNotIn applies the NotIn predicate on the "published_by" field.
func PublishedByNotIn(vs ...string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldPublishedBy, vs...))
}

// PublishedByGT applies the GT predicate on the "published_by" field.
func PublishedByGT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldPublishedBy, v))
}

// PublishedByGTE applies the GTE predicate on the "published_by" field.
func PublishedByGTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldPublishedBy, v))
}

// PublishedByLT applies the LT predicate on the "published_by" field.
func PublishedByLT(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldPublishedBy, v))
}

// PublishedByLTE applies the LTE predicate on the "published_by" field.
func PublishedByLTE(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldPublishedBy, v))
}

// PublishedByContains applies the Contains predicate on the "published_by" field.
func PublishedByContains(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContains(FieldPublishedBy, v))
}

// PublishedByHasPrefix applies the HasPrefix predicate on the "published_by" field.
func PublishedByHasPrefix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasPrefix(FieldPublishedBy, v))
}

// PublishedByHasSuffix applies the HasSuffix predicate on the "published_by" field.
func PublishedByHasSuffix(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldHasSuffix(FieldPublishedBy, v))
}

// PublishedByIsNil applies the IsNil predicate on the "published_by" field.
func PublishedByIsNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIsNull(FieldPublishedBy))
}

// PublishedByNotNil applies the NotNil predicate on the "published_by" field.
func PublishedByNotNil() predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotNull(FieldPublishedBy))
}

// PublishedByEqualFold applies the EqualFold predicate on the "published_by" field.
func PublishedByEqualFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEqualFold(FieldPublishedBy, v))
}

// PublishedByContainsFold applies the ContainsFold predicate on the "published_by" field.
func PublishedByContainsFold(v string) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldContainsFold(FieldPublishedBy, v))
}

// PublishedOnEQ applies the EQ predicate on the "published_on" field.
func PublishedOnEQ(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldEQ(FieldPublishedOn, v))
}

// PublishedOnNEQ applies the NEQ predicate on the "published_on" field.
func PublishedOnNEQ(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNEQ(FieldPublishedOn, v))
}

// PublishedOnIn applies the In predicate on the "published_on" field.
func PublishedOnIn(vs ...time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldIn(FieldPublishedOn, vs...))
}

// PublishedOnNotIn applies the NotIn predicate on the "published_on" field.
func PublishedOnNotIn(vs ...time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldNotIn(FieldPublishedOn, vs...))
}

// PublishedOnGT applies the GT predicate on the "published_on" field.
func PublishedOnGT(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGT(FieldPublishedOn, v))
}

// PublishedOnGTE applies the GTE predicate on the "published_on" field.
func PublishedOnGTE(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldGTE(FieldPublishedOn, v))
}

// PublishedOnLT applies the LT predicate on the "published_on" field.
func PublishedOnLT(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLT(FieldPublishedOn, v))
}

// PublishedOnLTE applies the LTE predicate on the "published_on" field.
func PublishedOnLTE(v time.Time) predicate.PublishedContent {
	return predicate.PublishedContent(sql.FieldLTE(FieldPublishedOn, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PublishedContent) predicate.PublishedContent {
	return predicate.PublishedContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PublishedContent) predicate.PublishedContent {
	return predicate.PublishedContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PublishedContent) predicate.PublishedContent {
	return predicate.PublishedContent(sql.NotPredicates(p))
}
