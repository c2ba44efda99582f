// Code generated by ent, DO NOT EDIT.

package realm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldStreamID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldVersion, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedOn applies equality check predicate on the "created_on" field. It's identical to CreatedOnEQ.
func CreatedOn(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldCreatedOn, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedOn applies equality check predicate on the "updated_on" field. It's identical to UpdatedOnEQ.
func UpdatedOn(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUpdatedOn, v))
}

// UniqueSlug applies equality check predicate on the "unique_slug" field. It's identical to UniqueSlugEQ.
func UniqueSlug(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUniqueSlug, v))
}

// UniqueSlugNormalized applies equality check predicate on the "unique_slug_normalized" field. It's identical to UniqueSlugNormalizedEQ.
func UniqueSlugNormalized(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUniqueSlugNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldDisplayName, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldStreamID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldVersion, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Realm {
	return predicate.Realm(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Realm {
	return predicate.Realm(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedOnEQ applies the EQ predicate on the "created_on" field.
func CreatedOnEQ(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldCreatedOn, v))
}

// CreatedOnNEQ applies the NEQ predicate on the "created_on" field.
func CreatedOnNEQ(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldCreatedOn, v))
}

// CreatedOnIn applies the In predicate on the "created_on" field.
func CreatedOnIn(vs ...time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldCreatedOn, vs...))
}

// CreatedOnNotIn applies the NotIn predicate on the "created_on" field.
func CreatedOnNotIn(vs ...time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldCreatedOn, vs...))
}

// CreatedOnGT applies the GT predicate on the "created_on" field.
func CreatedOnGT(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldCreatedOn, v))
}

// CreatedOnGTE applies the GTE predicate on the "created_on" field.
func CreatedOnGTE(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldCreatedOn, v))
}

// CreatedOnLT applies the LT predicate on the "created_on" field.
func CreatedOnLT(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldCreatedOn, v))
}

// CreatedOnLTE applies the LTE predicate on the "created_on" field.
func CreatedOnLTE(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldCreatedOn, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Realm {
	return predicate.Realm(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Realm {
	return predicate.Realm(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// UpdatedOnEQ applies the EQ predicate on the "updated_on" field.
func UpdatedOnEQ(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUpdatedOn, v))
}

// UpdatedOnNEQ applies the NEQ predicate on the "updated_on" field.
func UpdatedOnNEQ(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldUpdatedOn, v))
}

// UpdatedOnIn applies the In predicate on the "updated_on" field.
func UpdatedOnIn(vs ...time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldUpdatedOn, vs...))
}

// UpdatedOnNotIn applies the NotIn predicate on the "updated_on" field.
func UpdatedOnNotIn(vs ...time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldUpdatedOn, vs...))
}

// UpdatedOnGT applies the GT predicate on the "updated_on" field.
func UpdatedOnGT(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldUpdatedOn, v))
}

// UpdatedOnGTE applies the GTE predicate on the "updated_on" field.
func UpdatedOnGTE(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldUpdatedOn, v))
}

// UpdatedOnLT applies the LT predicate on the "updated_on" field.
func UpdatedOnLT(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldUpdatedOn, v))
}

// UpdatedOnLTE applies the LTE predicate on the "updated_on" field.
func UpdatedOnLTE(v time.Time) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldUpdatedOn, v))
}

// UniqueSlugEQ applies the EQ predicate on the "unique_slug" field.
func UniqueSlugEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUniqueSlug, v))
}

// UniqueSlugNEQ applies the NEQ predicate on the "unique_slug" field.
func UniqueSlugNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldUniqueSlug, v))
}

// UniqueSlugIn applies the In predicate on the "unique_slug" field.
func UniqueSlugIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldUniqueSlug, vs...))
}

// UniqueSlugNotIn applies the NotIn predicate on the "unique_slug" field.
func UniqueSlugNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldUniqueSlug, vs...))
}

// UniqueSlugGT applies the GT predicate on the "unique_slug" field.
func UniqueSlugGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldUniqueSlug, v))
}

// UniqueSlugGTE applies the GTE predicate on the "unique_slug" field.
func UniqueSlugGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldUniqueSlug, v))
}

// UniqueSlugLT applies the LT predicate on the "unique_slug" field.
func UniqueSlugLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldUniqueSlug, v))
}

// UniqueSlugLTE applies the LTE predicate on the "unique_slug" field.
func UniqueSlugLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldUniqueSlug, v))
}

// UniqueSlugContains applies the Contains predicate on the "unique_slug" field.
func UniqueSlugContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldUniqueSlug, v))
}

// UniqueSlugHasPrefix applies the HasPrefix predicate on the "unique_slug" field.
func UniqueSlugHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldUniqueSlug, v))
}

// UniqueSlugHasSuffix applies the HasSuffix predicate on the "unique_slug" field.
func UniqueSlugHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldUniqueSlug, v))
}

// UniqueSlugEqualFold applies the EqualFold predicate on the "unique_slug" field.
func UniqueSlugEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldUniqueSlug, v))
}

// UniqueSlugContainsFold applies the ContainsFold predicate on the "unique_slug" field.
func UniqueSlugContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldUniqueSlug, v))
}

// UniqueSlugNormalizedEQ applies the EQ predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedNEQ applies the NEQ predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedIn applies the In predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldUniqueSlugNormalized, vs...))
}

// UniqueSlugNormalizedNotIn applies the NotIn predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldUniqueSlugNormalized, vs...))
}

// UniqueSlugNormalizedGT applies the GT predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedGTE applies the GTE predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedLT applies the LT predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedLTE applies the LTE predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedContains applies the Contains predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedHasPrefix applies the HasPrefix predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedHasSuffix applies the HasSuffix predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedEqualFold applies the EqualFold predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldUniqueSlugNormalized, v))
}

// UniqueSlugNormalizedContainsFold applies the ContainsFold predicate on the "unique_slug_normalized" field.
func UniqueSlugNormalizedContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldUniqueSlugNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Realm {
	return predicate.Realm(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Realm {
	return predicate.Realm(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Realm {
	return predicate.Realm(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Realm {
	return predicate.Realm(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.Realm {
	return predicate.Realm(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.Realm {
	return predicate.Realm(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Realm {
	return predicate.Realm(sql.FieldContainsFold(FieldDisplayName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Realm) predicate.Realm {
	return predicate.Realm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Realm) predicate.Realm {
	return predicate.Realm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Realm) predicate.Realm {
	return predicate.Realm(sql.NotPredicates(p))
}
