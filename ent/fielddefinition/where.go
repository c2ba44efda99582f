// Code generated by ent, DO NOT EDIT.

package fielddefinition

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldID, id))
}

// ContentTypeID applies equality check predicate on the "content_type_id" field. It's identical to ContentTypeIDEQ.
func ContentTypeID(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldContentTypeID, v))
}

// FieldTypeID applies equality check predicate on the "field_type_id" field. It's identical to FieldTypeIDEQ.
func FieldTypeID(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldFieldTypeID, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldOrder, v))
}

// IsInvariant applies equality check predicate on the "is_invariant" field. It's identical to IsInvariantEQ.
func IsInvariant(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsInvariant, v))
}

// IsRequired applies equality check predicate on the "is_required" field. It's identical to IsRequiredEQ.
func IsRequired(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsRequired, v))
}

// IsIndexed applies equality check predicate on the "is_indexed" field. It's identical to IsIndexedEQ.
func IsIndexed(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsIndexed, v))
}

// IsUnique applies equality check predicate on the "is_unique" field. It's identical to IsUniqueEQ.
func IsUnique(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsUnique, v))
}

// UniqueName applies equality check predicate on the "unique_name" field. It's identical to UniqueNameEQ.
func UniqueName(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNormalized applies equality check predicate on the "unique_name_normalized" field. It's identical to UniqueNameNormalizedEQ.
func UniqueNameNormalized(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDisplayName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDescription, v))
}

// Placeholder applies equality check predicate on the "placeholder" field. It's identical to PlaceholderEQ.
func Placeholder(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldPlaceholder, v))
}

// ContentTypeIDEQ applies the EQ predicate on the "content_type_id" field.
func ContentTypeIDEQ(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldContentTypeID, v))
}

// ContentTypeIDNEQ applies the NEQ predicate on the "content_type_id" field.
func ContentTypeIDNEQ(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldContentTypeID, v))
}

// ContentTypeIDIn applies the In predicate on the "content_type_id" field.
func ContentTypeIDIn(vs ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldContentTypeID, vs...))
}

// ContentTypeIDNotIn applies the NotIn predicate on the "content_type_id" field.
func ContentTypeIDNotIn(vs ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldContentTypeID, vs...))
}

// FieldTypeIDEQ applies the EQ predicate on the "field_type_id" field.
func FieldTypeIDEQ(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldFieldTypeID, v))
}

// FieldTypeIDNEQ applies the NEQ predicate on the "field_type_id" field.
func FieldTypeIDNEQ(v uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldFieldTypeID, v))
}

// FieldTypeIDIn applies the In predicate on the "field_type_id" field.
func FieldTypeIDIn(vs ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldFieldTypeID, vs...))
}

// FieldTypeIDNotIn applies the NotIn predicate on the "field_type_id" field.
func FieldTypeIDNotIn(vs ...uuid.UUID) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldFieldTypeID, vs...))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldOrder, v))
}

// IsInvariantEQ applies the EQ predicate on the "is_invariant" field.
func IsInvariantEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsInvariant, v))
}

// IsInvariantNEQ applies the NEQ predicate on the "is_invariant" field.
func IsInvariantNEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldIsInvariant, v))
}

// IsRequiredEQ applies the EQ predicate on the "is_required" field.
func IsRequiredEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsRequired, v))
}

// IsRequiredNEQ applies the NEQ predicate on the "is_required" field.
func IsRequiredNEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldIsRequired, v))
}

// IsIndexedEQ applies the EQ predicate on the "is_indexed" field.
func IsIndexedEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsIndexed, v))
}

// IsIndexedNEQ applies the NEQ predicate on the "is_indexed" field.
func IsIndexedNEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldIsIndexed, v))
}

// IsUniqueEQ applies the EQ predicate on the "is_unique" field.
func IsUniqueEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldIsUnique, v))
}

// IsUniqueNEQ applies the NEQ predicate on the "is_unique" field.
func IsUniqueNEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldIsUnique, v))
}

// UniqueNameEQ applies the EQ predicate on the "unique_name" field.
func UniqueNameEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUniqueName, v))
}

// UniqueNameNEQ applies the NEQ predicate on the "unique_name" field.
func UniqueNameNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldUniqueName, v))
}

// UniqueNameIn applies the In predicate on the "unique_name" field.
func UniqueNameIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldUniqueName, vs...))
}

// UniqueNameNotIn applies the NotIn predicate on the "unique_name" field.
func UniqueNameNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldUniqueName, vs...))
}

// UniqueNameGT applies the GT predicate on the "unique_name" field.
func UniqueNameGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldUniqueName, v))
}

// UniqueNameGTE applies the GTE predicate on the "unique_name" field.
func UniqueNameGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldUniqueName, v))
}

// UniqueNameLT applies the LT predicate on the "unique_name" field.
func UniqueNameLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldUniqueName, v))
}

// UniqueNameLTE applies the LTE predicate on the "unique_name" field.
func UniqueNameLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldUniqueName, v))
}

// UniqueNameContains applies the Contains predicate on the "unique_name" field.
func UniqueNameContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldUniqueName, v))
}

// UniqueNameHasPrefix applies the HasPrefix predicate on the "unique_name" field.
func UniqueNameHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldUniqueName, v))
}

// UniqueNameHasSuffix applies the HasSuffix predicate on the "unique_name" field.
func UniqueNameHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldUniqueName, v))
}

// UniqueNameEqualFold applies the EqualFold predicate on the "unique_name" field.
func UniqueNameEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldUniqueName, v))
}

// UniqueNameContainsFold applies the ContainsFold predicate on the "unique_name" field.
func UniqueNameContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldUniqueName, v))
}

// UniqueNameNormalizedEQ applies the EQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedNEQ applies the NEQ predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedIn applies the In predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedNotIn applies the NotIn predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldUniqueNameNormalized, vs...))
}

// UniqueNameNormalizedGT applies the GT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedGTE applies the GTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLT applies the LT predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedLTE applies the LTE predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContains applies the Contains predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasPrefix applies the HasPrefix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedHasSuffix applies the HasSuffix predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedEqualFold applies the EqualFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldUniqueNameNormalized, v))
}

// UniqueNameNormalizedContainsFold applies the ContainsFold predicate on the "unique_name_normalized" field.
func UniqueNameNormalizedContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldUniqueNameNormalized, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldDisplayName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldDescription, v))
}

// PlaceholderEQ applies the EQ predicate on the "placeholder" field.
func PlaceholderEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldPlaceholder, v))
}

// PlaceholderNEQ applies the NEQ predicate on the "placeholder" field.
func PlaceholderNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldPlaceholder, v))
}

// PlaceholderIn applies the In predicate on the "placeholder" field.
func PlaceholderIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldPlaceholder, vs...))
}

// PlaceholderNotIn applies the NotIn predicate on the "placeholder" field.
func PlaceholderNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldPlaceholder, vs...))
}

// PlaceholderGT applies the GT predicate on the "placeholder" field.
func PlaceholderGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldPlaceholder, v))
}

// PlaceholderGTE applies the GTE predicate on the "placeholder" field.
func PlaceholderGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldPlaceholder, v))
}

// PlaceholderLT applies the LT predicate on the "placeholder" field.
func PlaceholderLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldPlaceholder, v))
}

// PlaceholderLTE applies the LTE predicate on the "placeholder" field.
func PlaceholderLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldPlaceholder, v))
}

// PlaceholderContains applies the Contains predicate on the "placeholder" field.
func PlaceholderContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldPlaceholder, v))
}

// PlaceholderHasPrefix applies the HasPrefix predicate on the "placeholder" field.
func PlaceholderHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldPlaceholder, v))
}

// PlaceholderHasSuffix applies the HasSuffix predicate on the "placeholder" field.
func PlaceholderHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldPlaceholder, v))
}

// PlaceholderIsNil applies the IsNil predicate on the "placeholder" field.
func PlaceholderIsNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIsNull(FieldPlaceholder))
}

// PlaceholderNotNil applies the NotNil predicate on the "placeholder" field.
func PlaceholderNotNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotNull(FieldPlaceholder))
}

// PlaceholderEqualFold applies the EqualFold predicate on the "placeholder" field.
func PlaceholderEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldPlaceholder, v))
}

// PlaceholderContainsFold applies the ContainsFold predicate on the "placeholder" field.
func PlaceholderContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldPlaceholder, v))
}

// HasContentType applies the HasEdge predicate on the "content_type" edge.
func HasContentType() predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContentTypeTable, ContentTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContentTypeWith applies the HasEdge predicate on the "content_type" edge with a given conditions (other predicates).
func HasContentTypeWith(preds ...predicate.ContentType) predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := newContentTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFieldType applies the HasEdge predicate on the "field_type" edge.
func HasFieldType() predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FieldTypeTable, FieldTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldTypeWith applies the HasEdge predicate on the "field_type" edge with a given conditions (other predicates).
func HasFieldTypeWith(preds ...predicate.FieldType) predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := newFieldTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.NotPredicates(p))
}
