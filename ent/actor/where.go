// Code generated by ent, DO NOT EDIT.

package actor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldStreamID, v))
}

// RealmID applies equality check predicate on the "realm_id" field. It's identical to RealmIDEQ.
func RealmID(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldRealmID, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldIsDeleted, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldDisplayName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldEmail, v))
}

// Picture applies equality check predicate on the "picture" field. It's identical to PictureEQ.
func Picture(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldPicture, v))
}

// UpdatedOn applies equality check predicate on the "updated_on" field. It's identical to UpdatedOnEQ.
func UpdatedOn(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldUpdatedOn, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldStreamID, v))
}

// RealmIDEQ applies the EQ predicate on the "realm_id" field.
func RealmIDEQ(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldRealmID, v))
}

// RealmIDNEQ applies the NEQ predicate on the "realm_id" field.
func RealmIDNEQ(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldRealmID, v))
}

// RealmIDIn applies the In predicate on the "realm_id" field.
func RealmIDIn(vs ...uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldRealmID, vs...))
}

// RealmIDNotIn applies the NotIn predicate on the "realm_id" field.
func RealmIDNotIn(vs ...uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldRealmID, vs...))
}

// RealmIDGT applies the GT predicate on the "realm_id" field.
func RealmIDGT(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldRealmID, v))
}

// RealmIDGTE applies the GTE predicate on the "realm_id" field.
func RealmIDGTE(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldRealmID, v))
}

// RealmIDLT applies the LT predicate on the "realm_id" field.
func RealmIDLT(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldRealmID, v))
}

// RealmIDLTE applies the LTE predicate on the "realm_id" field.
func RealmIDLTE(v uuid.UUID) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldRealmID, v))
}

// RealmIDIsNil applies the IsNil predicate on the "realm_id" field.
func RealmIDIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldRealmID))
}

// RealmIDNotNil applies the NotNil predicate on the "realm_id" field.
func RealmIDNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldRealmID))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldType, vs...))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldIsDeleted, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldDisplayName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldEmail, v))
}

// PictureEQ applies the EQ predicate on the "picture" field.
func PictureEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldPicture, v))
}

// PictureNEQ applies the NEQ predicate on the "picture" field.
func PictureNEQ(v string) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldPicture, v))
}

// PictureIn applies the In predicate on the "picture" field.
func PictureIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldPicture, vs...))
}

// PictureNotIn applies the NotIn predicate on the "picture" field.
func PictureNotIn(vs ...string) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldPicture, vs...))
}

// PictureGT applies the GT predicate on the "picture" field.
func PictureGT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldPicture, v))
}

// PictureGTE applies the GTE predicate on the "picture" field.
func PictureGTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldPicture, v))
}

// PictureLT applies the LT predicate on the "picture" field.
func PictureLT(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldPicture, v))
}

// PictureLTE applies the LTE predicate on the "picture" field.
func PictureLTE(v string) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldPicture, v))
}

// PictureContains applies the Contains predicate on the "picture" field.
func PictureContains(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContains(FieldPicture, v))
}

// PictureHasPrefix applies the HasPrefix predicate on the "picture" field.
func PictureHasPrefix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasPrefix(FieldPicture, v))
}

// PictureHasSuffix applies the HasSuffix predicate on the "picture" field.
func PictureHasSuffix(v string) predicate.Actor {
	return predicate.Actor(sql.FieldHasSuffix(FieldPicture, v))
}

// PictureIsNil applies the IsNil predicate on the "picture" field.
func PictureIsNil() predicate.Actor {
	return predicate.Actor(sql.FieldIsNull(FieldPicture))
}

// PictureNotNil applies the NotNil predicate on the "picture" field.
func PictureNotNil() predicate.Actor {
	return predicate.Actor(sql.FieldNotNull(FieldPicture))
}

// PictureEqualFold applies the EqualFold predicate on the "picture" field.
func PictureEqualFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldEqualFold(FieldPicture, v))
}

// PictureContainsFold applies the ContainsFold predicate on the "picture" field.
func PictureContainsFold(v string) predicate.Actor {
	return predicate.Actor(sql.FieldContainsFold(FieldPicture, v))
}

// UpdatedOnEQ applies the EQ predicate on the "updated_on" field.
func UpdatedOnEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldEQ(FieldUpdatedOn, v))
}

// UpdatedOnNEQ applies the NEQ predicate on the "updated_on" field.
func UpdatedOnNEQ(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNEQ(FieldUpdatedOn, v))
}

// UpdatedOnIn applies the In predicate on the "updated_on" field.
func UpdatedOnIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldIn(FieldUpdatedOn, vs...))
}

// UpdatedOnNotIn applies the NotIn predicate on the "updated_on" field.
func UpdatedOnNotIn(vs ...time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldNotIn(FieldUpdatedOn, vs...))
}

// UpdatedOnGT applies the GT predicate on the "updated_on" field.
func UpdatedOnGT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGT(FieldUpdatedOn, v))
}

// UpdatedOnGTE applies the GTE predicate on the "updated_on" field.
func UpdatedOnGTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldGTE(FieldUpdatedOn, v))
}

// UpdatedOnLT applies the LT predicate on the "updated_on" field.
func UpdatedOnLT(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLT(FieldUpdatedOn, v))
}

// UpdatedOnLTE applies the LTE predicate on the "updated_on" field.
func UpdatedOnLTE(v time.Time) predicate.Actor {
	return predicate.Actor(sql.FieldLTE(FieldUpdatedOn, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Actor) predicate.Actor {
	return predicate.Actor(sql.NotPredicates(p))
}
