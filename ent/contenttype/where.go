// Code generated by ent, DO NOT EDIT.

package contenttype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldStreamID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldVersion, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedOn applies equality check predicate on the "created_on" field. It's identical to CreatedOnEQ.
func CreatedOn(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedOn, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedOn applies equality check predicate on the "updated_on" field. It's identical to UpdatedOnEQ.
func UpdatedOn(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedOn, v))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldRealmID, v))
}

// IsInvariant applies equality check predicate on the "is_invariant" field. It's identical to IsInvariantEQ.
func IsInvariant(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldIsInvariant, v))
}

// UniqueName applies equality check predicate on the "unique_name" field. It's identical to UniqueNameEQ.
func UniqueName(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNormalized applies equality check predicate on the "unique_name_normalized" field. It's identical to UniqueNameNormalizedEQ.
func UniqueNameNormalized(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDescription, v))
}

// FieldCount applies equality check predicate on the "field_count" field. It's identical to FieldCountEQ.
func FieldCount(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldFieldCount, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldStreamID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldVersion, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedOnEQ applies the EQ predicate on the "created_on" field.
func CreatedOnEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldCreatedOn, v))
}

// CreatedOnNEQ applies the NEQ predicate on the "created_on" field.
func CreatedOnNEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldCreatedOn, v))
}

// CreatedOnIn applies the In predicate on the "created_on" field.
func CreatedOnIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldCreatedOn, vs...))
}

// CreatedOnNotIn applies the NotIn predicate on the "created_on" field.
func CreatedOnNotIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldCreatedOn, vs...))
}

// CreatedOnGT applies the GT predicate on the "created_on" field.
func CreatedOnGT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldCreatedOn, v))
}

// CreatedOnGTE applies the GTE predicate on the "created_on" field.
func CreatedOnGTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldCreatedOn, v))
}

// CreatedOnLT applies the LT predicate on the "created_on" field.
func CreatedOnLT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldCreatedOn, v))
}

// CreatedOnLTE applies the LTE predicate on the "created_on" field.
func CreatedOnLTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldCreatedOn, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// UpdatedOnEQ applies the EQ predicate on the "updated_on" field.
func UpdatedOnEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUpdatedOn, v))
}

// UpdatedOnNEQ applies the NEQ predicate on the "updated_on" field.
func UpdatedOnNEQ(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldUpdatedOn, v))
}

// UpdatedOnIn applies the In predicate on the "updated_on" field.
func UpdatedOnIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldUpdatedOn, vs...))
}

// UpdatedOnNotIn applies the NotIn predicate on the "updated_on" field.
func UpdatedOnNotIn(vs ...time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldUpdatedOn, vs...))
}

// UpdatedOnGT applies the GT predicate on the "updated_on" field.
func UpdatedOnGT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldUpdatedOn, v))
}

// UpdatedOnGTE applies the GTE predicate on the "updated_on" field.
func UpdatedOnGTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldUpdatedOn, v))
}

// UpdatedOnLT applies the LT predicate on the "updated_on" field.
func UpdatedOnLT(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldUpdatedOn, v))
}

// UpdatedOnLTE applies the LTE predicate on the "updated_on" field.
func UpdatedOnLTE(v time.Time) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldUpdatedOn, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldRealmID))
}

// IsInvariantEQ applies the EQ predicate on the "is_invariant" field.
func IsInvariantEQ(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldIsInvariant, v))
}

// IsInvariantNEQ applies the NEQ predicate on the "is_invariant" field.
func IsInvariantNEQ(v bool) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldIsInvariant, v))
}

// UniqueNameEQ applies the EQ predicate on the "unique_name" field.
func UniqueNameEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNEQ applies the NEQ predicate on the "unique_name" field.
func UniqueNameNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldUniqueName, v))
}

// UniqueNameIn applies the In predicate on the "unique_name" field.
func UniqueNameIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldUniqueName, vs...))
}

// UniqueNameNotIn applies the NotIn predicate on the "unique_name" field.
func UniqueNameNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldUniqueName, vs...))
}

// UniqueNameGT applies the GT predicate on the "unique_name" field.
func UniqueNameGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldUniqueName, v))
}

// UniqueNameGTE applies the GTE predicate on the "unique_name" field.
func UniqueNameGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldUniqueName, v))
}

// UniqueNameLT applies the LT predicate on the "unique_name" field.
func UniqueNameLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldUniqueName, v))
}

// UniqueNameLTE applies the LTE predicate on the "unique_name" field.
func UniqueNameLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldUniqueName, v))
}

// UniqueNameContains applies the Contains predicate on the "unique_name" field.
func UniqueNameContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldUniqueName, v))
}

// UniqueNameHasPrefix applies the HasPrefix predicate on the "unique_name" field.
func UniqueNameHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldUniqueName, v))
}

// UniqueNameHasSuffix applies the HasSuffix predicate on the "unique_name" field.
func UniqueNameHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldUniqueName, v))
}

// UniqueNameEqualFold applies the EqualFold predicate on the "unique_name" field.
func UniqueNameEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldUniqueName, v))
}

// UniqueNameContainsFold applies the ContainsFold predicate on the "unique_name" field.
func UniqueNameContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldUniqueName, v))
}

// UniqueNameNormalizedEQ applies the EQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedNEQ applies the NEQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedIn applies the In predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedNotIn applies the NotIn predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedGT applies the GT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedGTE applies the GTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLT applies the LT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLTE applies the LTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContains applies the Contains predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasPrefix applies the HasPrefix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasSuffix applies the HasSuffix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedEqualFold applies the EqualFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContainsFold applies the ContainsFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldUniqueNameNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ContentType {
	return predicate.ContentType(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ContentType {
	return predicate.ContentType(sql.FieldContainsFold(FieldDescription, v))
}

// FieldCountEQ applies the EQ predicate on the "field_count" field.
func FieldCountEQ(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldEQ(FieldFieldCount, v))
}

// FieldCountNEQ applies the NEQ predicate on the "field_count" field.
func FieldCountNEQ(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldNEQ(FieldFieldCount, v))
}

// FieldCountIn applies the In predicate on the "field_count" field.
func FieldCountIn(vs ...int) predicate.ContentType {
	return predicate.ContentType(sql.FieldIn(FieldFieldCount, vs...))
}

// FieldCountNotIn applies the NotIn predicate on the "field_count" field.
func FieldCountNotIn(vs ...int) predicate.ContentType {
	return predicate.ContentType(sql.FieldNotIn(FieldFieldCount, vs...))
}

// FieldCountGT applies the GT predicate on the "field_count" field.
func FieldCountGT(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldGT(FieldFieldCount, v))
}

// FieldCountGTE applies the GTE predicate on the "field_count" field.
func FieldCountGTE(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldGTE(FieldFieldCount, v))
}

// FieldCountLT applies the LT predicate on the "field_count" field.
func FieldCountLT(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldLT(FieldFieldCount, v))
}

// FieldCountLTE applies the LTE predicate on the "field_count" field.
func FieldCountLTE(v int) predicate.ContentType {
	return predicate.ContentType(sql.FieldLTE(FieldFieldCount, v))
}

// HasFieldDefinitions applies the HasEdge predicate on the "field_definitions" edge.
func HasFieldDefinitions() predicate.ContentType {
	return predicate.ContentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldDefinitionsTable, FieldDefinitionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldDefinitionsWith applies the HasEdge predicate on the "field_definitions" edge with a given conditions (other predicates).
func HasFieldDefinitionsWith(preds ...predicate.FieldDefinition) predicate.ContentType {
	return predicate.ContentType(func(s *sql.Selector) {
		step := newFieldDefinitionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContents applies the HasEdge predicate on the "contents" edge.
func HasContents() predicate.ContentType {
	return predicate.ContentType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContentsTable, ContentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentsWith applies the HasEdge predicate on the "contents" edge with a given conditions (other predicates).
func HasContentsWith(preds ...predicate.Content) predicate.ContentType {
	return predicate.ContentType(func(s *sql.Selector) {
		step := newContentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentType) predicate.ContentType {
	return predicate.ContentType(sql.NotPredicates(p))
}
