// Code generated by ent, DO NOT EDIT.

package fieldtype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldStreamID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldVersion, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedOn applies equality check predicate on the "created_on" field. It's identical to CreatedOnEQ.
func CreatedOn(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldCreatedOn, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedOn applies equality check predicate on the "updated_on" field. It's identical to UpdatedOnEQ.
func UpdatedOn(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUpdatedOn, v))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldRealmID, v))
}

// UniqueName applies equality check predicate on the "unique_name" field. It's identical to UniqueNameEQ.
func UniqueName(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNormalized applies equality check predicate on the "unique_name_normalized" field. It's identical to UniqueNameNormalizedEQ.
func UniqueNameNormalized(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldDescription, v))
}

// Settings applies equality check predicate on the "settings" field. It's identical to SettingsEQ.
func Settings(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldSettings, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldStreamID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldVersion, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedOnEQ applies the EQ predicate on the "created_on" field.
func CreatedOnEQ(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldCreatedOn, v))
}

// CreatedOnNEQ applies the NEQ predicate on the "created_on" field.
func CreatedOnNEQ(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldCreatedOn, v))
}

// CreatedOnIn applies the In predicate on the "created_on" field.
func CreatedOnIn(vs ...time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldCreatedOn, vs...))
}

// CreatedOnNotIn applies the NotIn predicate on the "created_on" field.
func CreatedOnNotIn(vs ...time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldCreatedOn, vs...))
}

// CreatedOnGT applies the GT predicate on the "created_on" field.
func CreatedOnGT(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldCreatedOn, v))
}

// CreatedOnGTE applies the GTE predicate on the "created_on" field.
func CreatedOnGTE(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldCreatedOn, v))
}

// CreatedOnLT applies the LT predicate on the "created_on" field.
func CreatedOnLT(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldCreatedOn, v))
}

// CreatedOnLTE applies the LTE predicate on the "created_on" field.
func CreatedOnLTE(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldCreatedOn, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// UpdatedOnEQ applies the EQ predicate on the "updated_on" field.
func UpdatedOnEQ(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUpdatedOn, v))
}

// UpdatedOnNEQ applies the NEQ predicate on the "updated_on" field.
func UpdatedOnNEQ(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldUpdatedOn, v))
}

// UpdatedOnIn applies the In predicate on the "updated_on" field.
func UpdatedOnIn(vs ...time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldUpdatedOn, vs...))
}

// UpdatedOnNotIn applies the NotIn predicate on the "updated_on" field.
func UpdatedOnNotIn(vs ...time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldUpdatedOn, vs...))
}

// UpdatedOnGT applies the GT predicate on the "updated_on" field.
func UpdatedOnGT(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldUpdatedOn, v))
}

// UpdatedOnGTE applies the GTE predicate on the "updated_on" field.
func UpdatedOnGTE(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldUpdatedOn, v))
}

// UpdatedOnLT applies the LT predicate on the "updated_on" field.
func UpdatedOnLT(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldUpdatedOn, v))
}

// UpdatedOnLTE applies the LTE predicate on the "updated_on" field.
func UpdatedOnLTE(v time.Time) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldUpdatedOn, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldNotNull(FieldRealmID))
}

// UniqueNameEQ applies the EQ predicate on the "unique_name" field.
func UniqueNameEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNEQ applies the NEQ predicate on the "unique_name" field.
func UniqueNameNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldUniqueName, v))
}

// UniqueNameIn applies the In predicate on the "unique_name" field.
func UniqueNameIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldUniqueName, vs...))
}

// UniqueNameNotIn applies the NotIn predicate on the "unique_name" field.
func UniqueNameNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldUniqueName, vs...))
}

// UniqueNameGT applies the GT predicate on the "unique_name" field.
func UniqueNameGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldUniqueName, v))
}

// UniqueNameGTE applies the GTE predicate on the "unique_name" field.
func UniqueNameGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldUniqueName, v))
}

// UniqueNameLT applies the LT predicate on the "unique_name" field.
func UniqueNameLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldUniqueName, v))
}

// UniqueNameLTE applies the LTE predicate on the "unique_name" field.
func UniqueNameLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldUniqueName, v))
}

// UniqueNameContains applies the Contains predicate on the "unique_name" field.
func UniqueNameContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldUniqueName, v))
}

// UniqueNameHasPrefix applies the HasPrefix predicate on the "unique_name" field.
func UniqueNameHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldUniqueName, v))
}

// UniqueNameHasSuffix applies the HasSuffix predicate on the "unique_name" field.
func UniqueNameHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldUniqueName, v))
}

// UniqueNameEqualFold applies the EqualFold predicate on the "unique_name" field.
func UniqueNameEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldUniqueName, v))
}

// UniqueNameContainsFold applies the ContainsFold predicate on the "unique_name" field.
func UniqueNameContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldUniqueName, v))
}

// UniqueNameNormalizedEQ applies the EQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedNEQ applies the NEQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedIn applies the In predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedNotIn applies the NotIn predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedGT applies the GT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedGTE applies the GTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLT applies the LT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLTE applies the LTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContains applies the Contains predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasPrefix applies the HasPrefix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasSuffix applies the HasSuffix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedEqualFold applies the EqualFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContainsFold applies the ContainsFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldUniqueNameNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.FieldType {
	return predicate.FieldType(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.FieldType {
	return predicate.FieldType(sql.FieldContainsFold(FieldDescription, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v DataType) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v DataType) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...DataType) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...DataType) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldDataType, vs...))
}

// SettingsEQ applies the EQ predicate on the "settings" field.
func SettingsEQ(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldEQ(FieldSettings, v))
}

// SettingsNEQ applies the NEQ predicate on the "settings" field.
func SettingsNEQ(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldNEQ(FieldSettings, v))
}

// SettingsIn applies the In predicate on the "settings" field.
func SettingsIn(vs ...[]byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldIn(FieldSettings, vs...))
}

// SettingsNotIn applies the NotIn predicate on the "settings" field.
func SettingsNotIn(vs ...[]byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldNotIn(FieldSettings, vs...))
}

// SettingsGT applies the GT predicate on the "settings" field.
func SettingsGT(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldGT(FieldSettings, v))
}

// SettingsGTE applies the GTE predicate on the "settings" field.
func SettingsGTE(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldGTE(FieldSettings, v))
}

// SettingsLT applies the LT predicate on the "settings" field.
func SettingsLT(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldLT(FieldSettings, v))
}

// SettingsLTE applies the LTE predicate on the "settings" field.
func SettingsLTE(v []byte) predicate.FieldType {
	return predicate.FieldType(sql.FieldLTE(FieldSettings, v))
}

// HasFieldDefinitions applies the HasEdge predicate on the "field_definitions" edge.
func HasFieldDefinitions() predicate.FieldType {
	return predicate.FieldType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldDefinitionsTable, FieldDefinitionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldDefinitionsWith applies the HasEdge predicate on the "field_definitions" edge with a given conditions (other predicates).
func HasFieldDefinitionsWith(preds ...predicate.FieldDefinition) predicate.FieldType {
	return predicate.FieldType(func(s *sql.Selector) {
		step := newFieldDefinitionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldType) predicate.FieldType {
	return predicate.FieldType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldType) predicate.FieldType {
	return predicate.FieldType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldType) predicate.FieldType {
	return predicate.FieldType(sql.NotPredicates(p))
}
