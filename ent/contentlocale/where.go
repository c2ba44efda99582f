// Code generated by ent, DO NOT EDIT.

package contentlocale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldID, id))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldVersion, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedOn applies equality check predicate on the "created_on" field. It's identical to CreatedOnEQ.
func CreatedOn(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldCreatedOn, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedOn applies equality check predicate on the "updated_on" field. It's identical to UpdatedOnEQ.
func UpdatedOn(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUpdatedOn, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldContentID, v))
}

// LanguageID applies equality check predicate on the "language_id" field. It's identical to LanguageIDEQ.
func LanguageID(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldLanguageID, v))
}

// UniqueName applies equality check predicate on the "unique_name" field. It's identical to UniqueNameEQ.
func UniqueName(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNormalized applies equality check predicate on the "unique_name_normalized" field. It's identical to UniqueNameNormalizedEQ.
func UniqueNameNormalized(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldDescription, v))
}

// IsPublished applies equality check predicate on the "is_published" field. It's identical to IsPublishedEQ.
func IsPublished(v bool) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldIsPublished, v))
}

// PublishedVersion applies equality check predicate on the "published_version" field. It's identical to PublishedVersionEQ.
func PublishedVersion(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedVersion, v))
}

// PublishedBy applies equality check predicate on the "published_by" field. It's identical to PublishedByEQ.
func PublishedBy(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishedOn applies equality check predicate on the "published_on" field. It's identical to PublishedOnEQ.
func PublishedOn(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedOn, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldVersion, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedOnEQ applies the EQ predicate on the "created_on" field.
func CreatedOnEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldCreatedOn, v))
}

// CreatedOnNEQ applies the NEQ predicate on the "created_on" field.
func CreatedOnNEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldCreatedOn, v))
}

// CreatedOnIn applies the In predicate on the "created_on" field.
func CreatedOnIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldCreatedOn, vs...))
}

// CreatedOnNotIn applies the NotIn predicate on the "created_on" field.
func CreatedOnNotIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldCreatedOn, vs...))
}

// CreatedOnGT applies the GT predicate on the "created_on" field.
func CreatedOnGT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldCreatedOn, v))
}

// CreatedOnGTE applies the GTE predicate on the "created_on" field.
func CreatedOnGTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldCreatedOn, v))
}

// CreatedOnLT applies the LT predicate on the "created_on" field.
func CreatedOnLT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldCreatedOn, v))
}

// CreatedOnLTE applies the LTE predicate on the "created_on" field.
func CreatedOnLTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldCreatedOn, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// UpdatedOnEQ applies the EQ predicate on the "updated_on" field.
func UpdatedOnEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUpdatedOn, v))
}

// UpdatedOnNEQ applies the NEQ predicate on the "updated_on" field.
func UpdatedOnNEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldUpdatedOn, v))
}

// UpdatedOnIn applies the In predicate on the "updated_on" field.
func UpdatedOnIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldUpdatedOn, vs...))
}

// UpdatedOnNotIn applies the NotIn predicate on the "updated_on" field.
func UpdatedOnNotIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldUpdatedOn, vs...))
}

// UpdatedOnGT applies the GT predicate on the "updated_on" field.
func UpdatedOnGT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldUpdatedOn, v))
}

// UpdatedOnGTE applies the GTE predicate on the "updated_on" field.
func UpdatedOnGTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldUpdatedOn, v))
}

// UpdatedOnLT applies the LT predicate on the "updated_on" field.
func UpdatedOnLT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldUpdatedOn, v))
}

// UpdatedOnLTE applies the LTE predicate on the "updated_on" field.
func UpdatedOnLTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldUpdatedOn, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldContentID, vs...))
}

// LanguageIDEQ applies the EQ predicate on the "language_id" field.
func LanguageIDEQ(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldLanguageID, v))
}

// LanguageIDNEQ applies the NEQ predicate on the "language_id" field.
func LanguageIDNEQ(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldLanguageID, v))
}

// LanguageIDIn applies the In predicate on the "language_id" field.
func LanguageIDIn(vs ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldLanguageID, vs...))
}

// LanguageIDNotIn applies the NotIn predicate on the "language_id" field.
func LanguageIDNotIn(vs ...uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldLanguageID, vs...))
}

// LanguageIDGT applies the GT predicate on the "language_id" field.
func LanguageIDGT(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldLanguageID, v))
}

// LanguageIDGTE applies the GTE predicate on the "language_id" field.
func LanguageIDGTE(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldLanguageID, v))
}

// LanguageIDLT applies the LT predicate on the "language_id" field.
func LanguageIDLT(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldLanguageID, v))
}

// LanguageIDLTE applies the LTE predicate on the "language_id" field.
func LanguageIDLTE(v uuid.UUID) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldLanguageID, v))
}

// LanguageIDIsNil applies the IsNil predicate on the "language_id" field.
func LanguageIDIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldLanguageID))
}

// LanguageIDNotNil applies the NotNil predicate on the "language_id" field.
func LanguageIDNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldLanguageID))
}

// UniqueNameEQ applies the EQ predicate on the "unique_name" field.
func UniqueNameEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNEQ applies the NEQ predicate on the "unique_name" field.
func UniqueNameNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldUniqueName, v))
}

// UniqueNameIn applies the In predicate on the "unique_name" field.
func UniqueNameIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldUniqueName, vs...))
}

// UniqueNameNotIn applies the NotIn predicate on the "unique_name" field.
func UniqueNameNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldUniqueName, vs...))
}

// UniqueNameGT applies the GT predicate on the "unique_name" field.
func UniqueNameGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldUniqueName, v))
}

// UniqueNameGTE applies the GTE predicate on the "unique_name" field.
func UniqueNameGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldUniqueName, v))
}

// UniqueNameLT applies the LT predicate on the "unique_name" field.
func UniqueNameLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldUniqueName, v))
}

// UniqueNameLTE applies the LTE predicate on the "unique_name" field.
func UniqueNameLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldUniqueName, v))
}

// UniqueNameContains applies the Contains predicate on the "unique_name" field.
func UniqueNameContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldUniqueName, v))
}

// UniqueNameHasPrefix applies the HasPrefix predicate on the "unique_name" field.
func UniqueNameHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldUniqueName, v))
}

// UniqueNameHasSuffix applies the HasSuffix predicate on the "unique_name" field.
func UniqueNameHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldUniqueName, v))
}

// UniqueNameEqualFold applies the EqualFold predicate on the "unique_name" field.
func UniqueNameEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldUniqueName, v))
}

// UniqueNameContainsFold applies the ContainsFold predicate on the "unique_name" field.
func UniqueNameContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldUniqueName, v))
}

// UniqueNameNormalizedEQ applies the EQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedNEQ applies the NEQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedIn applies the In predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedNotIn applies the NotIn predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedGT applies the GT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedGTE applies the GTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLT applies the LT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLTE applies the LTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContains applies the Contains predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasPrefix applies the HasPrefix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasSuffix applies the HasSuffix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedEqualFold applies the EqualFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContainsFold applies the ContainsFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldUniqueNameNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldDescription, v))
}

// FieldValuesIsNil applies the IsNil predicate on the "field_values" field.
func FieldValuesIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldFieldValues))
}

// FieldValuesNotNil applies the NotNil predicate on the "field_values" field.
func FieldValuesNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldFieldValues))
}

// IsPublishedEQ applies the EQ predicate on the "is_published" field.
func IsPublishedEQ(v bool) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldIsPublished, v))
}

// IsPublishedNEQ applies the NEQ predicate on the "is_published" field.
func IsPublishedNEQ(v bool) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldIsPublished, v))
}

// PublishedVersionEQ applies the EQ predicate on the "published_version" field.
func PublishedVersionEQ(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedVersion, v))
}

// PublishedVersionNEQ applies the NEQ predicate on the "published_version" field.
func PublishedVersionNEQ(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldPublishedVersion, v))
}

// PublishedVersionIn applies the In predicate on the "published_version" field.
func PublishedVersionIn(vs ...int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldPublishedVersion, vs...))
}

// PublishedVersionNotIn applies the NotIn predicate on the "published_version" field.
func PublishedVersionNotIn(vs ...int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldPublishedVersion, vs...))
}

// PublishedVersionGT applies the GT predicate on the "published_version" field.
func PublishedVersionGT(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldPublishedVersion, v))
}

// PublishedVersionGTE applies the GTE predicate on the "published_version" field.
func PublishedVersionGTE(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldPublishedVersion, v))
}

// PublishedVersionLT applies the LT predicate on the "published_version" field.
func PublishedVersionLT(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldPublishedVersion, v))
}

// PublishedVersionLTE applies the LTE predicate on the "published_version" field.
func PublishedVersionLTE(v int64) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldPublishedVersion, v))
}

// PublishedVersionIsNil applies the IsNil predicate on the "published_version" field.
func PublishedVersionIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldPublishedVersion))
}

// PublishedVersionNotNil applies the NotNil predicate on the "published_version" field.
func PublishedVersionNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldPublishedVersion))
}

// PublishedByEQ applies the EQ predicate on the "published_by" field.
func PublishedByEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedBy, v))
}

// PublishedByNEQ applies the NEQ predicate on the "published_by" field.
func PublishedByNEQ(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldPublishedBy, v))
}

// PublishedByIn applies the In predicate on the "published_by" field.
func PublishedByIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldPublishedBy, vs...))
}

// PublishedByNotIn applies the NotIn predicate on the "published_by" field.
func PublishedByNotIn(vs ...string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldPublishedBy, vs...))
}

// PublishedByGT applies the GT predicate on the "published_by" field.
func PublishedByGT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldPublishedBy, v))
}

// PublishedByGTE applies the GTE predicate on the "published_by" field.
func PublishedByGTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldPublishedBy, v))
}

// PublishedByLT applies the LT predicate on the "published_by" field.
func PublishedByLT(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldPublishedBy, v))
}

// PublishedByLTE applies the LTE predicate on the "published_by" field.
func PublishedByLTE(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldPublishedBy, v))
}

// PublishedByContains applies the Contains predicate on the "published_by" field.
func PublishedByContains(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContains(FieldPublishedBy, v))
}

// PublishedByHasPrefix applies the HasPrefix predicate on the "published_by" field.
func PublishedByHasPrefix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasPrefix(FieldPublishedBy, v))
}

// PublishedByHasSuffix applies the HasSuffix predicate on the "published_by" field.
func PublishedByHasSuffix(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldHasSuffix(FieldPublishedBy, v))
}

// PublishedByIsNil applies the IsNil predicate on the "published_by" field.
func PublishedByIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldPublishedBy))
}

// PublishedByNotNil applies the NotNil predicate on the "published_by" field.
func PublishedByNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldPublishedBy))
}

// PublishedByEqualFold applies the EqualFold predicate on the "published_by" field.
func PublishedByEqualFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEqualFold(FieldPublishedBy, v))
}

// PublishedByContainsFold applies the ContainsFold predicate on the "published_by" field.
func PublishedByContainsFold(v string) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldContainsFold(FieldPublishedBy, v))
}

// PublishedOnEQ applies the EQ predicate on the "published_on" field.
func PublishedOnEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldEQ(FieldPublishedOn, v))
}

// PublishedOnNEQ applies the NEQ predicate on the "published_on" field.
func PublishedOnNEQ(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNEQ(FieldPublishedOn, v))
}

// PublishedOnIn applies the In predicate on the "published_on" field.
func PublishedOnIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIn(FieldPublishedOn, vs...))
}

// PublishedOnNotIn applies the NotIn predicate on the "published_on" field.
func PublishedOnNotIn(vs ...time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotIn(FieldPublishedOn, vs...))
}

// PublishedOnGT applies the GT predicate on the "published_on" field.
func PublishedOnGT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGT(FieldPublishedOn, v))
}

// PublishedOnGTE applies the GTE predicate on the "published_on" field.
func PublishedOnGTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldGTE(FieldPublishedOn, v))
}

// PublishedOnLT applies the LT predicate on the "published_on" field.
func PublishedOnLT(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLT(FieldPublishedOn, v))
}

// PublishedOnLTE applies the LTE predicate on the "published_on" field.
func PublishedOnLTE(v time.Time) predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldLTE(FieldPublishedOn, v))
}

// PublishedOnIsNil applies the IsNil predicate on the "published_on" field.
func PublishedOnIsNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldIsNull(FieldPublishedOn))
}

// PublishedOnNotNil applies the NotNil predicate on the "published_on" field.
func PublishedOnNotNil() predicate.ContentLocale {
	return predicate.ContentLocale(sql.FieldNotNull(FieldPublishedOn))
}

// HasContent applies the HasEdge predicate on the "content" edge.
func HasContent() predicate.ContentLocale {
	return predicate.ContentLocale(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentWith applies the HasEdge predicate on the "content" edge with a given conditions (other predicates).
func HasContentWith(preds ...predicate.Content) predicate.ContentLocale {
	return predicate.ContentLocale(func(s *sql.Selector) {
		step := newContentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentLocale) predicate.ContentLocale {
	return predicate.ContentLocale(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentLocale) predicate.ContentLocale {
	return predicate.ContentLocale(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentLocale) predicate.ContentLocale {
	return predicate.ContentLocale(sql.NotPredicates(p))
}
