// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/apikey"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/language"
	"lattice-cms.io/lattice/ent/predicate"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/ent/realm"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActor            = "Actor"
	TypeApiKey           = "ApiKey"
	TypeContent          = "Content"
	TypeContentLocale    = "ContentLocale"
	TypeContentType      = "ContentType"
	TypeFieldDefinition  = "FieldDefinition"
	TypeFieldIndex       = "FieldIndex"
	TypeFieldType        = "FieldType"
	TypeLanguage         = "Language"
	TypePublishedContent = "PublishedContent"
	TypeRealm            = "Realm"
	TypeUniqueIndex      = "UniqueIndex"
	TypeUser             = "User"
)

// ActorMutation represents an operation that mutates the Actor nodes in the graph.
type ActorMutation struct {
	config
	op            Op
	typ           string
	id            *string
	stream_id     *string
	realm_id      *uuid.UUID
	_type         *actor.Type
	is_deleted    *bool
	display_name  *string
	email         *string
	picture       *string
	updated_on    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Actor, error)
	predicates    []predicate.Actor
}

var _ ent.Mutation = (*ActorMutation)(nil)

// actorOption allows management of the mutation configuration using functional options.
type actorOption func(*ActorMutation)

// newActorMutation creates new mutation for the Actor entity.
func newActorMutation(c config, op Op, opts ...actorOption) *ActorMutation {
	m := &ActorMutation{
		config:        c,
		op:            op,
		typ:           TypeActor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActorID sets the ID field of the mutation.
func withActorID(id string) actorOption {
	return func(m *ActorMutation) {
		var (
			err   error
			once  sync.Once
			value *Actor
		)
		m.oldValue = func(ctx context.Context) (*Actor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Actor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActor sets the old Actor of the mutation.
func withActor(node *Actor) actorOption {
	return func(m *ActorMutation) {
		m.oldValue = func(context.Context) (*Actor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Actor entities.
func (m *ActorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Actor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *ActorMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ActorMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ActorMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetRealmID sets the "realm_id" field.
func (m *ActorMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *ActorMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *ActorMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[actor.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *ActorMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[actor.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *ActorMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, actor.FieldRealmID)
}

// SetType sets the "type" field.
func (m *ActorMutation) SetType(a actor.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *ActorMutation) GetType() (r actor.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldType(ctx context.Context) (v actor.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ActorMutation) ResetType() {
	m._type = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ActorMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ActorMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ActorMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ActorMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ActorMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ActorMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEmail sets the "email" field.
func (m *ActorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ActorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ActorMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[actor.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ActorMutation) EmailCleared() bool {
	_, ok := m.clearedFields[actor.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ActorMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, actor.FieldEmail)
}

// SetPicture sets the "picture" field.
func (m *ActorMutation) SetPicture(s string) {
	m.picture = &s
}

// Picture returns the value of the "picture" field in the mutation.
func (m *ActorMutation) Picture() (r string, exists bool) {
	v := m.picture
	if v == nil {
		return
	}
	return *v, true
}

// OldPicture returns the old "picture" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldPicture(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPicture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPicture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPicture: %w", err)
	}
	return oldValue.Picture, nil
}

// ClearPicture clears the value of the "picture" field.
func (m *ActorMutation) ClearPicture() {
	m.picture = nil
	m.clearedFields[actor.FieldPicture] = struct{}{}
}

// PictureCleared returns if the "picture" field was cleared in this mutation.
func (m *ActorMutation) PictureCleared() bool {
	_, ok := m.clearedFields[actor.FieldPicture]
	return ok
}

// ResetPicture resets all changes to the "picture" field.
func (m *ActorMutation) ResetPicture() {
	m.picture = nil
	delete(m.clearedFields, actor.FieldPicture)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *ActorMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *ActorMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the Actor entity.
// If the Actor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActorMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *ActorMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// Where appends a list predicates to the ActorMutation builder.
func (m *ActorMutation) Where(ps ...predicate.Actor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Actor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Actor).
func (m *ActorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActorMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.stream_id != nil {
		fields = append(fields, actor.FieldStreamID)
	}
	if m.realm_id != nil {
		fields = append(fields, actor.FieldRealmID)
	}
	if m._type != nil {
		fields = append(fields, actor.FieldType)
	}
	if m.is_deleted != nil {
		fields = append(fields, actor.FieldIsDeleted)
	}
	if m.display_name != nil {
		fields = append(fields, actor.FieldDisplayName)
	}
	if m.email != nil {
		fields = append(fields, actor.FieldEmail)
	}
	if m.picture != nil {
		fields = append(fields, actor.FieldPicture)
	}
	if m.updated_on != nil {
		fields = append(fields, actor.FieldUpdatedOn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actor.FieldStreamID:
		return m.StreamID()
	case actor.FieldRealmID:
		return m.RealmID()
	case actor.FieldType:
		return m.GetType()
	case actor.FieldIsDeleted:
		return m.IsDeleted()
	case actor.FieldDisplayName:
		return m.DisplayName()
	case actor.FieldEmail:
		return m.Email()
	case actor.FieldPicture:
		return m.Picture()
	case actor.FieldUpdatedOn:
		return m.UpdatedOn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actor.FieldStreamID:
		return m.OldStreamID(ctx)
	case actor.FieldRealmID:
		return m.OldRealmID(ctx)
	case actor.FieldType:
		return m.OldType(ctx)
	case actor.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case actor.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case actor.FieldEmail:
		return m.OldEmail(ctx)
	case actor.FieldPicture:
		return m.OldPicture(ctx)
	case actor.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	}
	return nil, fmt.Errorf("unknown Actor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actor.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case actor.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case actor.FieldType:
		v, ok := value.(actor.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case actor.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case actor.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case actor.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case actor.FieldPicture:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPicture(v)
		return nil
	case actor.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Actor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actor.FieldRealmID) {
		fields = append(fields, actor.FieldRealmID)
	}
	if m.FieldCleared(actor.FieldEmail) {
		fields = append(fields, actor.FieldEmail)
	}
	if m.FieldCleared(actor.FieldPicture) {
		fields = append(fields, actor.FieldPicture)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActorMutation) ClearField(name string) error {
	switch name {
	case actor.FieldRealmID:
		m.ClearRealmID()
		return nil
	case actor.FieldEmail:
		m.ClearEmail()
		return nil
	case actor.FieldPicture:
		m.ClearPicture()
		return nil
	}
	return fmt.Errorf("unknown Actor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActorMutation) ResetField(name string) error {
	switch name {
	case actor.FieldStreamID:
		m.ResetStreamID()
		return nil
	case actor.FieldRealmID:
		m.ResetRealmID()
		return nil
	case actor.FieldType:
		m.ResetType()
		return nil
	case actor.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case actor.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case actor.FieldEmail:
		m.ResetEmail()
		return nil
	case actor.FieldPicture:
		m.ResetPicture()
		return nil
	case actor.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	}
	return fmt.Errorf("unknown Actor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Actor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Actor edge %s", name)
}

// ApiKeyMutation represents an operation that mutates the ApiKey nodes in the graph.
type ApiKeyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	stream_id     *string
	version       *int64
	addversion    *int64
	created_by    *string
	created_on    *time.Time
	updated_by    *string
	updated_on    *time.Time
	realm_id      *uuid.UUID
	display_name  *string
	description   *string
	expires_on    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ApiKey, error)
	predicates    []predicate.ApiKey
}

var _ ent.Mutation = (*ApiKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*ApiKeyMutation)

// newApiKeyMutation creates new mutation for the ApiKey entity.
func newApiKeyMutation(c config, op Op, opts ...apikeyOption) *ApiKeyMutation {
	m := &ApiKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeApiKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApiKeyID sets the ID field of the mutation.
func withApiKeyID(id uuid.UUID) apikeyOption {
	return func(m *ApiKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *ApiKey
		)
		m.oldValue = func(ctx context.Context) (*ApiKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApiKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApiKey sets the old ApiKey of the mutation.
func withApiKey(node *ApiKey) apikeyOption {
	return func(m *ApiKeyMutation) {
		m.oldValue = func(context.Context) (*ApiKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApiKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApiKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApiKey entities.
func (m *ApiKeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApiKeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApiKeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApiKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *ApiKeyMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ApiKeyMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ApiKeyMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *ApiKeyMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ApiKeyMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ApiKeyMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ApiKeyMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ApiKeyMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ApiKeyMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ApiKeyMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ApiKeyMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[apikey.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ApiKeyMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[apikey.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ApiKeyMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, apikey.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *ApiKeyMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *ApiKeyMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *ApiKeyMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ApiKeyMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ApiKeyMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ApiKeyMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[apikey.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ApiKeyMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[apikey.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ApiKeyMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, apikey.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *ApiKeyMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *ApiKeyMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *ApiKeyMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *ApiKeyMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *ApiKeyMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *ApiKeyMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[apikey.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *ApiKeyMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[apikey.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *ApiKeyMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, apikey.FieldRealmID)
}

// SetDisplayName sets the "display_name" field.
func (m *ApiKeyMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ApiKeyMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ApiKeyMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetDescription sets the "description" field.
func (m *ApiKeyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApiKeyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ApiKeyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[apikey.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApiKeyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[apikey.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApiKeyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, apikey.FieldDescription)
}

// SetExpiresOn sets the "expires_on" field.
func (m *ApiKeyMutation) SetExpiresOn(t time.Time) {
	m.expires_on = &t
}

// ExpiresOn returns the value of the "expires_on" field in the mutation.
func (m *ApiKeyMutation) ExpiresOn() (r time.Time, exists bool) {
	v := m.expires_on
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresOn returns the old "expires_on" field's value of the ApiKey entity.
// If the ApiKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiKeyMutation) OldExpiresOn(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresOn: %w", err)
	}
	return oldValue.ExpiresOn, nil
}

// ClearExpiresOn clears the value of the "expires_on" field.
func (m *ApiKeyMutation) ClearExpiresOn() {
	m.expires_on = nil
	m.clearedFields[apikey.FieldExpiresOn] = struct{}{}
}

// ExpiresOnCleared returns if the "expires_on" field was cleared in this mutation.
func (m *ApiKeyMutation) ExpiresOnCleared() bool {
	_, ok := m.clearedFields[apikey.FieldExpiresOn]
	return ok
}

// ResetExpiresOn resets all changes to the "expires_on" field.
func (m *ApiKeyMutation) ResetExpiresOn() {
	m.expires_on = nil
	delete(m.clearedFields, apikey.FieldExpiresOn)
}

// Where appends a list predicates to the ApiKeyMutation builder.
func (m *ApiKeyMutation) Where(ps ...predicate.ApiKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApiKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApiKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApiKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApiKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApiKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApiKey).
func (m *ApiKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApiKeyMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.stream_id != nil {
		fields = append(fields, apikey.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, apikey.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, apikey.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, apikey.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, apikey.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, apikey.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, apikey.FieldRealmID)
	}
	if m.display_name != nil {
		fields = append(fields, apikey.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, apikey.FieldDescription)
	}
	if m.expires_on != nil {
		fields = append(fields, apikey.FieldExpiresOn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApiKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldStreamID:
		return m.StreamID()
	case apikey.FieldVersion:
		return m.Version()
	case apikey.FieldCreatedBy:
		return m.CreatedBy()
	case apikey.FieldCreatedOn:
		return m.CreatedOn()
	case apikey.FieldUpdatedBy:
		return m.UpdatedBy()
	case apikey.FieldUpdatedOn:
		return m.UpdatedOn()
	case apikey.FieldRealmID:
		return m.RealmID()
	case apikey.FieldDisplayName:
		return m.DisplayName()
	case apikey.FieldDescription:
		return m.Description()
	case apikey.FieldExpiresOn:
		return m.ExpiresOn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApiKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldStreamID:
		return m.OldStreamID(ctx)
	case apikey.FieldVersion:
		return m.OldVersion(ctx)
	case apikey.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case apikey.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case apikey.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case apikey.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case apikey.FieldRealmID:
		return m.OldRealmID(ctx)
	case apikey.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case apikey.FieldDescription:
		return m.OldDescription(ctx)
	case apikey.FieldExpiresOn:
		return m.OldExpiresOn(ctx)
	}
	return nil, fmt.Errorf("unknown ApiKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case apikey.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case apikey.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case apikey.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case apikey.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case apikey.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case apikey.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case apikey.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case apikey.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case apikey.FieldExpiresOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresOn(v)
		return nil
	}
	return fmt.Errorf("unknown ApiKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApiKeyMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, apikey.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApiKeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ApiKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApiKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldCreatedBy) {
		fields = append(fields, apikey.FieldCreatedBy)
	}
	if m.FieldCleared(apikey.FieldUpdatedBy) {
		fields = append(fields, apikey.FieldUpdatedBy)
	}
	if m.FieldCleared(apikey.FieldRealmID) {
		fields = append(fields, apikey.FieldRealmID)
	}
	if m.FieldCleared(apikey.FieldDescription) {
		fields = append(fields, apikey.FieldDescription)
	}
	if m.FieldCleared(apikey.FieldExpiresOn) {
		fields = append(fields, apikey.FieldExpiresOn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApiKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApiKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case apikey.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case apikey.FieldRealmID:
		m.ClearRealmID()
		return nil
	case apikey.FieldDescription:
		m.ClearDescription()
		return nil
	case apikey.FieldExpiresOn:
		m.ClearExpiresOn()
		return nil
	}
	return fmt.Errorf("unknown ApiKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApiKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldStreamID:
		m.ResetStreamID()
		return nil
	case apikey.FieldVersion:
		m.ResetVersion()
		return nil
	case apikey.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case apikey.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case apikey.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case apikey.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case apikey.FieldRealmID:
		m.ResetRealmID()
		return nil
	case apikey.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case apikey.FieldDescription:
		m.ResetDescription()
		return nil
	case apikey.FieldExpiresOn:
		m.ResetExpiresOn()
		return nil
	}
	return fmt.Errorf("unknown ApiKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApiKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApiKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApiKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApiKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApiKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApiKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApiKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApiKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApiKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApiKey edge %s", name)
}

// ContentMutation represents an operation that mutates the Content nodes in the graph.
type ContentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	stream_id           *string
	version             *int64
	addversion          *int64
	created_by          *string
	created_on          *time.Time
	updated_by          *string
	updated_on          *time.Time
	realm_id            *uuid.UUID
	clearedFields       map[string]struct{}
	content_type        *uuid.UUID
	clearedcontent_type bool
	locales             map[uuid.UUID]struct{}
	removedlocales      map[uuid.UUID]struct{}
	clearedlocales      bool
	done                bool
	oldValue            func(context.Context) (*Content, error)
	predicates          []predicate.Content
}

var _ ent.Mutation = (*ContentMutation)(nil)

// contentOption allows management of the mutation configuration using functional options.
type contentOption func(*ContentMutation)

// newContentMutation creates new mutation for the Content entity.
func newContentMutation(c config, op Op, opts ...contentOption) *ContentMutation {
	m := &ContentMutation{
		config:        c,
		op:            op,
		typ:           TypeContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentID sets the ID field of the mutation.
func withContentID(id uuid.UUID) contentOption {
	return func(m *ContentMutation) {
		var (
			err   error
			once  sync.Once
			value *Content
		)
		m.oldValue = func(ctx context.Context) (*Content, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Content.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContent sets the old Content of the mutation.
func withContent(node *Content) contentOption {
	return func(m *ContentMutation) {
		m.oldValue = func(context.Context) (*Content, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Content entities.
func (m *ContentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Content.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *ContentMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ContentMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ContentMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *ContentMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ContentMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ContentMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ContentMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ContentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ContentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ContentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ContentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[content.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ContentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[content.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ContentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, content.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *ContentMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *ContentMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *ContentMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ContentMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ContentMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ContentMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[content.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ContentMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[content.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ContentMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, content.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *ContentMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *ContentMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *ContentMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *ContentMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *ContentMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *ContentMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[content.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *ContentMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[content.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *ContentMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, content.FieldRealmID)
}

// SetContentTypeID sets the "content_type_id" field.
func (m *ContentMutation) SetContentTypeID(u uuid.UUID) {
	m.content_type = &u
}

// ContentTypeID returns the value of the "content_type_id" field in the mutation.
func (m *ContentMutation) ContentTypeID() (r uuid.UUID, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeID returns the old "content_type_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldContentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeID: %w", err)
	}
	return oldValue.ContentTypeID, nil
}

// ResetContentTypeID resets all changes to the "content_type_id" field.
func (m *ContentMutation) ResetContentTypeID() {
	m.content_type = nil
}

// ClearContentType clears the "content_type" edge to the ContentType entity.
func (m *ContentMutation) ClearContentType() {
	m.clearedcontent_type = true
	m.clearedFields[content.FieldContentTypeID] = struct{}{}
}

// ContentTypeCleared reports if the "content_type" edge to the ContentType entity was cleared.
func (m *ContentMutation) ContentTypeCleared() bool {
	return m.clearedcontent_type
}

// ContentTypeIDs returns the "content_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContentTypeID instead. It exists only for internal usage by the builders.
func (m *ContentMutation) ContentTypeIDs() (ids []uuid.UUID) {
	if id := m.content_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContentType resets all changes to the "content_type" edge.
func (m *ContentMutation) ResetContentType() {
	m.content_type = nil
	m.clearedcontent_type = false
}

// AddLocaleIDs adds the "locales" edge to the ContentLocale entity by ids.
func (m *ContentMutation) AddLocaleIDs(ids ...uuid.UUID) {
	if m.locales == nil {
		m.locales = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.locales[ids[i]] = struct{}{}
	}
}

// ClearLocales clears the "locales" edge to the ContentLocale entity.
func (m *ContentMutation) ClearLocales() {
	m.clearedlocales = true
}

// LocalesCleared reports if the "locales" edge to the ContentLocale entity was cleared.
func (m *ContentMutation) LocalesCleared() bool {
	return m.clearedlocales
}

// RemoveLocaleIDs removes the "locales" edge to the ContentLocale entity by IDs.
func (m *ContentMutation) RemoveLocaleIDs(ids ...uuid.UUID) {
	if m.removedlocales == nil {
		m.removedlocales = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.locales, ids[i])
		m.removedlocales[ids[i]] = struct{}{}
	}
}

// RemovedLocales returns the removed IDs of the "locales" edge to the ContentLocale entity.
func (m *ContentMutation) RemovedLocalesIDs() (ids []uuid.UUID) {
	for id := range m.removedlocales {
		ids = append(ids, id)
	}
	return
}

// LocalesIDs returns the "locales" edge IDs in the mutation.
func (m *ContentMutation) LocalesIDs() (ids []uuid.UUID) {
	for id := range m.locales {
		ids = append(ids, id)
	}
	return
}

// ResetLocales resets all changes to the "locales" edge.
func (m *ContentMutation) ResetLocales() {
	m.locales = nil
	m.clearedlocales = false
	m.removedlocales = nil
}

// Where appends a list predicates to the ContentMutation builder.
func (m *ContentMutation) Where(ps ...predicate.Content) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Content, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Content).
func (m *ContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.stream_id != nil {
		fields = append(fields, content.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, content.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, content.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, content.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, content.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, content.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, content.FieldRealmID)
	}
	if m.content_type != nil {
		fields = append(fields, content.FieldContentTypeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case content.FieldStreamID:
		return m.StreamID()
	case content.FieldVersion:
		return m.Version()
	case content.FieldCreatedBy:
		return m.CreatedBy()
	case content.FieldCreatedOn:
		return m.CreatedOn()
	case content.FieldUpdatedBy:
		return m.UpdatedBy()
	case content.FieldUpdatedOn:
		return m.UpdatedOn()
	case content.FieldRealmID:
		return m.RealmID()
	case content.FieldContentTypeID:
		return m.ContentTypeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case content.FieldStreamID:
		return m.OldStreamID(ctx)
	case content.FieldVersion:
		return m.OldVersion(ctx)
	case content.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case content.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case content.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case content.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case content.FieldRealmID:
		return m.OldRealmID(ctx)
	case content.FieldContentTypeID:
		return m.OldContentTypeID(ctx)
	}
	return nil, fmt.Errorf("unknown Content field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case content.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case content.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case content.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case content.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case content.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case content.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case content.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case content.FieldContentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeID(v)
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, content.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case content.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case content.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Content numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(content.FieldCreatedBy) {
		fields = append(fields, content.FieldCreatedBy)
	}
	if m.FieldCleared(content.FieldUpdatedBy) {
		fields = append(fields, content.FieldUpdatedBy)
	}
	if m.FieldCleared(content.FieldRealmID) {
		fields = append(fields, content.FieldRealmID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentMutation) ClearField(name string) error {
	switch name {
	case content.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case content.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case content.FieldRealmID:
		m.ClearRealmID()
		return nil
	}
	return fmt.Errorf("unknown Content nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentMutation) ResetField(name string) error {
	switch name {
	case content.FieldStreamID:
		m.ResetStreamID()
		return nil
	case content.FieldVersion:
		m.ResetVersion()
		return nil
	case content.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case content.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case content.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case content.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case content.FieldRealmID:
		m.ResetRealmID()
		return nil
	case content.FieldContentTypeID:
		m.ResetContentTypeID()
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.content_type != nil {
		edges = append(edges, content.EdgeContentType)
	}
	if m.locales != nil {
		edges = append(edges, content.EdgeLocales)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case content.EdgeContentType:
		if id := m.content_type; id != nil {
			return []ent.Value{*id}
		}
	case content.EdgeLocales:
		ids := make([]ent.Value, 0, len(m.locales))
		for id := range m.locales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlocales != nil {
		edges = append(edges, content.EdgeLocales)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case content.EdgeLocales:
		ids := make([]ent.Value, 0, len(m.removedlocales))
		for id := range m.removedlocales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontent_type {
		edges = append(edges, content.EdgeContentType)
	}
	if m.clearedlocales {
		edges = append(edges, content.EdgeLocales)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentMutation) EdgeCleared(name string) bool {
	switch name {
	case content.EdgeContentType:
		return m.clearedcontent_type
	case content.EdgeLocales:
		return m.clearedlocales
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentMutation) ClearEdge(name string) error {
	switch name {
	case content.EdgeContentType:
		m.ClearContentType()
		return nil
	}
	return fmt.Errorf("unknown Content unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentMutation) ResetEdge(name string) error {
	switch name {
	case content.EdgeContentType:
		m.ResetContentType()
		return nil
	case content.EdgeLocales:
		m.ResetLocales()
		return nil
	}
	return fmt.Errorf("unknown Content edge %s", name)
}

// ContentLocaleMutation represents an operation that mutates the ContentLocale nodes in the graph.
type ContentLocaleMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	version                *int64
	addversion             *int64
	created_by             *string
	created_on             *time.Time
	updated_by             *string
	updated_on             *time.Time
	language_id            *uuid.UUID
	unique_name            *string
	unique_name_normalized *string
	display_name           *string
	description            *string
	field_values           *map[string]string
	is_published           *bool
	published_version      *int64
	addpublished_version   *int64
	published_by           *string
	published_on           *time.Time
	clearedFields          map[string]struct{}
	content                *uuid.UUID
	clearedcontent         bool
	done                   bool
	oldValue               func(context.Context) (*ContentLocale, error)
	predicates             []predicate.ContentLocale
}

var _ ent.Mutation = (*ContentLocaleMutation)(nil)

// contentlocaleOption allows management of the mutation configuration using functional options.
type contentlocaleOption func(*ContentLocaleMutation)

// newContentLocaleMutation creates new mutation for the ContentLocale entity.
func newContentLocaleMutation(c config, op Op, opts ...contentlocaleOption) *ContentLocaleMutation {
	m := &ContentLocaleMutation{
		config:        c,
		op:            op,
		typ:           TypeContentLocale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentLocaleID sets the ID field of the mutation.
func withContentLocaleID(id uuid.UUID) contentlocaleOption {
	return func(m *ContentLocaleMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentLocale
		)
		m.oldValue = func(ctx context.Context) (*ContentLocale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentLocale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentLocale sets the old ContentLocale of the mutation.
func withContentLocale(node *ContentLocale) contentlocaleOption {
	return func(m *ContentLocaleMutation) {
		m.oldValue = func(context.Context) (*ContentLocale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentLocaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentLocaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentLocale entities.
func (m *ContentLocaleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentLocaleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentLocaleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentLocale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *ContentLocaleMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ContentLocaleMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ContentLocaleMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ContentLocaleMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ContentLocaleMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ContentLocaleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ContentLocaleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ContentLocaleMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[contentlocale.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ContentLocaleMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ContentLocaleMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, contentlocale.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *ContentLocaleMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *ContentLocaleMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *ContentLocaleMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ContentLocaleMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ContentLocaleMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ContentLocaleMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[contentlocale.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ContentLocaleMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ContentLocaleMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, contentlocale.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *ContentLocaleMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *ContentLocaleMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *ContentLocaleMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetContentID sets the "content_id" field.
func (m *ContentLocaleMutation) SetContentID(u uuid.UUID) {
	m.content = &u
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *ContentLocaleMutation) ContentID() (r uuid.UUID, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldContentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *ContentLocaleMutation) ResetContentID() {
	m.content = nil
}

// SetLanguageID sets the "language_id" field.
func (m *ContentLocaleMutation) SetLanguageID(u uuid.UUID) {
	m.language_id = &u
}

// LanguageID returns the value of the "language_id" field in the mutation.
func (m *ContentLocaleMutation) LanguageID() (r uuid.UUID, exists bool) {
	v := m.language_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageID returns the old "language_id" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldLanguageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageID: %w", err)
	}
	return oldValue.LanguageID, nil
}

// ClearLanguageID clears the value of the "language_id" field.
func (m *ContentLocaleMutation) ClearLanguageID() {
	m.language_id = nil
	m.clearedFields[contentlocale.FieldLanguageID] = struct{}{}
}

// LanguageIDCleared returns if the "language_id" field was cleared in this mutation.
func (m *ContentLocaleMutation) LanguageIDCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldLanguageID]
	return ok
}

// ResetLanguageID resets all changes to the "language_id" field.
func (m *ContentLocaleMutation) ResetLanguageID() {
	m.language_id = nil
	delete(m.clearedFields, contentlocale.FieldLanguageID)
}

// SetUniqueName sets the "unique_name" field.
func (m *ContentLocaleMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *ContentLocaleMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *ContentLocaleMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *ContentLocaleMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *ContentLocaleMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *ContentLocaleMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ContentLocaleMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ContentLocaleMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *ContentLocaleMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[contentlocale.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *ContentLocaleMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ContentLocaleMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, contentlocale.FieldDisplayName)
}

// SetDescription sets the "description" field.
func (m *ContentLocaleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContentLocaleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ContentLocaleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[contentlocale.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ContentLocaleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ContentLocaleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, contentlocale.FieldDescription)
}

// SetFieldValues sets the "field_values" field.
func (m *ContentLocaleMutation) SetFieldValues(value map[string]string) {
	m.field_values = &value
}

// FieldValues returns the value of the "field_values" field in the mutation.
func (m *ContentLocaleMutation) FieldValues() (r map[string]string, exists bool) {
	v := m.field_values
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldValues returns the old "field_values" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldFieldValues(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldValues: %w", err)
	}
	return oldValue.FieldValues, nil
}

// ClearFieldValues clears the value of the "field_values" field.
func (m *ContentLocaleMutation) ClearFieldValues() {
	m.field_values = nil
	m.clearedFields[contentlocale.FieldFieldValues] = struct{}{}
}

// FieldValuesCleared returns if the "field_values" field was cleared in this mutation.
func (m *ContentLocaleMutation) FieldValuesCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldFieldValues]
	return ok
}

// ResetFieldValues resets all changes to the "field_values" field.
func (m *ContentLocaleMutation) ResetFieldValues() {
	m.field_values = nil
	delete(m.clearedFields, contentlocale.FieldFieldValues)
}

// SetIsPublished sets the "is_published" field.
func (m *ContentLocaleMutation) SetIsPublished(b bool) {
	m.is_published = &b
}

// IsPublished returns the value of the "is_published" field in the mutation.
func (m *ContentLocaleMutation) IsPublished() (r bool, exists bool) {
	v := m.is_published
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublished returns the old "is_published" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldIsPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublished: %w", err)
	}
	return oldValue.IsPublished, nil
}

// ResetIsPublished resets all changes to the "is_published" field.
func (m *ContentLocaleMutation) ResetIsPublished() {
	m.is_published = nil
}

// SetPublishedVersion sets the "published_version" field.
func (m *ContentLocaleMutation) SetPublishedVersion(i int64) {
	m.published_version = &i
	m.addpublished_version = nil
}

// PublishedVersion returns the value of the "published_version" field in the mutation.
func (m *ContentLocaleMutation) PublishedVersion() (r int64, exists bool) {
	v := m.published_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedVersion returns the old "published_version" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldPublishedVersion(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedVersion: %w", err)
	}
	return oldValue.PublishedVersion, nil
}

// AddPublishedVersion adds i to the "published_version" field.
func (m *ContentLocaleMutation) AddPublishedVersion(i int64) {
	if m.addpublished_version != nil {
		*m.addpublished_version += i
	} else {
		m.addpublished_version = &i
	}
}

// AddedPublishedVersion returns the value that was added to the "published_version" field in this mutation.
func (m *ContentLocaleMutation) AddedPublishedVersion() (r int64, exists bool) {
	v := m.addpublished_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearPublishedVersion clears the value of the "published_version" field.
func (m *ContentLocaleMutation) ClearPublishedVersion() {
	m.published_version = nil
	m.addpublished_version = nil
	m.clearedFields[contentlocale.FieldPublishedVersion] = struct{}{}
}

// PublishedVersionCleared returns if the "published_version" field was cleared in this mutation.
func (m *ContentLocaleMutation) PublishedVersionCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldPublishedVersion]
	return ok
}

// ResetPublishedVersion resets all changes to the "published_version" field.
func (m *ContentLocaleMutation) ResetPublishedVersion() {
	m.published_version = nil
	m.addpublished_version = nil
	delete(m.clearedFields, contentlocale.FieldPublishedVersion)
}

// SetPublishedBy sets the "published_by" field.
func (m *ContentLocaleMutation) SetPublishedBy(s string) {
	m.published_by = &s
}

// PublishedBy returns the value of the "published_by" field in the mutation.
func (m *ContentLocaleMutation) PublishedBy() (r string, exists bool) {
	v := m.published_by
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedBy returns the old "published_by" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldPublishedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedBy: %w", err)
	}
	return oldValue.PublishedBy, nil
}

// ClearPublishedBy clears the value of the "published_by" field.
func (m *ContentLocaleMutation) ClearPublishedBy() {
	m.published_by = nil
	m.clearedFields[contentlocale.FieldPublishedBy] = struct{}{}
}

// PublishedByCleared returns if the "published_by" field was cleared in this mutation.
func (m *ContentLocaleMutation) PublishedByCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldPublishedBy]
	return ok
}

// ResetPublishedBy resets all changes to the "published_by" field.
func (m *ContentLocaleMutation) ResetPublishedBy() {
	m.published_by = nil
	delete(m.clearedFields, contentlocale.FieldPublishedBy)
}

// SetPublishedOn sets the "published_on" field.
func (m *ContentLocaleMutation) SetPublishedOn(t time.Time) {
	m.published_on = &t
}

// PublishedOn returns the value of the "published_on" field in the mutation.
func (m *ContentLocaleMutation) PublishedOn() (r time.Time, exists bool) {
	v := m.published_on
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedOn returns the old "published_on" field's value of the ContentLocale entity.
// If the ContentLocale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentLocaleMutation) OldPublishedOn(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedOn: %w", err)
	}
	return oldValue.PublishedOn, nil
}

// ClearPublishedOn clears the value of the "published_on" field.
func (m *ContentLocaleMutation) ClearPublishedOn() {
	m.published_on = nil
	m.clearedFields[contentlocale.FieldPublishedOn] = struct{}{}
}

// PublishedOnCleared returns if the "published_on" field was cleared in this mutation.
func (m *ContentLocaleMutation) PublishedOnCleared() bool {
	_, ok := m.clearedFields[contentlocale.FieldPublishedOn]
	return ok
}

// ResetPublishedOn resets all changes to the "published_on" field.
func (m *ContentLocaleMutation) ResetPublishedOn() {
	m.published_on = nil
	delete(m.clearedFields, contentlocale.FieldPublishedOn)
}

// ClearContent clears the "content" edge to the Content entity.
func (m *ContentLocaleMutation) ClearContent() {
	m.clearedcontent = true
	m.clearedFields[contentlocale.FieldContentID] = struct{}{}
}

// ContentCleared reports if the "content" edge to the Content entity was cleared.
func (m *ContentLocaleMutation) ContentCleared() bool {
	return m.clearedcontent
}

// ContentIDs returns the "content" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContentID instead. It exists only for internal usage by the builders.
func (m *ContentLocaleMutation) ContentIDs() (ids []uuid.UUID) {
	if id := m.content; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContent resets all changes to the "content" edge.
func (m *ContentLocaleMutation) ResetContent() {
	m.content = nil
	m.clearedcontent = false
}

// Where appends a list predicates to the ContentLocaleMutation builder.
func (m *ContentLocaleMutation) Where(ps ...predicate.ContentLocale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentLocaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentLocaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentLocale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentLocaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentLocaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentLocale).
func (m *ContentLocaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentLocaleMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.version != nil {
		fields = append(fields, contentlocale.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, contentlocale.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, contentlocale.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, contentlocale.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, contentlocale.FieldUpdatedOn)
	}
	if m.content != nil {
		fields = append(fields, contentlocale.FieldContentID)
	}
	if m.language_id != nil {
		fields = append(fields, contentlocale.FieldLanguageID)
	}
	if m.unique_name != nil {
		fields = append(fields, contentlocale.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, contentlocale.FieldUniqueNameNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, contentlocale.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, contentlocale.FieldDescription)
	}
	if m.field_values != nil {
		fields = append(fields, contentlocale.FieldFieldValues)
	}
	if m.is_published != nil {
		fields = append(fields, contentlocale.FieldIsPublished)
	}
	if m.published_version != nil {
		fields = append(fields, contentlocale.FieldPublishedVersion)
	}
	if m.published_by != nil {
		fields = append(fields, contentlocale.FieldPublishedBy)
	}
	if m.published_on != nil {
		fields = append(fields, contentlocale.FieldPublishedOn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentLocaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentlocale.FieldVersion:
		return m.Version()
	case contentlocale.FieldCreatedBy:
		return m.CreatedBy()
	case contentlocale.FieldCreatedOn:
		return m.CreatedOn()
	case contentlocale.FieldUpdatedBy:
		return m.UpdatedBy()
	case contentlocale.FieldUpdatedOn:
		return m.UpdatedOn()
	case contentlocale.FieldContentID:
		return m.ContentID()
	case contentlocale.FieldLanguageID:
		return m.LanguageID()
	case contentlocale.FieldUniqueName:
		return m.UniqueName()
	case contentlocale.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case contentlocale.FieldDisplayName:
		return m.DisplayName()
	case contentlocale.FieldDescription:
		return m.Description()
	case contentlocale.FieldFieldValues:
		return m.FieldValues()
	case contentlocale.FieldIsPublished:
		return m.IsPublished()
	case contentlocale.FieldPublishedVersion:
		return m.PublishedVersion()
	case contentlocale.FieldPublishedBy:
		return m.PublishedBy()
	case contentlocale.FieldPublishedOn:
		return m.PublishedOn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentLocaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentlocale.FieldVersion:
		return m.OldVersion(ctx)
	case contentlocale.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case contentlocale.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case contentlocale.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case contentlocale.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case contentlocale.FieldContentID:
		return m.OldContentID(ctx)
	case contentlocale.FieldLanguageID:
		return m.OldLanguageID(ctx)
	case contentlocale.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case contentlocale.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case contentlocale.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case contentlocale.FieldDescription:
		return m.OldDescription(ctx)
	case contentlocale.FieldFieldValues:
		return m.OldFieldValues(ctx)
	case contentlocale.FieldIsPublished:
		return m.OldIsPublished(ctx)
	case contentlocale.FieldPublishedVersion:
		return m.OldPublishedVersion(ctx)
	case contentlocale.FieldPublishedBy:
		return m.OldPublishedBy(ctx)
	case contentlocale.FieldPublishedOn:
		return m.OldPublishedOn(ctx)
	}
	return nil, fmt.Errorf("unknown ContentLocale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentLocaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentlocale.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case contentlocale.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case contentlocale.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case contentlocale.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case contentlocale.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case contentlocale.FieldContentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case contentlocale.FieldLanguageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageID(v)
		return nil
	case contentlocale.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case contentlocale.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case contentlocale.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case contentlocale.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case contentlocale.FieldFieldValues:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldValues(v)
		return nil
	case contentlocale.FieldIsPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublished(v)
		return nil
	case contentlocale.FieldPublishedVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedVersion(v)
		return nil
	case contentlocale.FieldPublishedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedBy(v)
		return nil
	case contentlocale.FieldPublishedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedOn(v)
		return nil
	}
	return fmt.Errorf("unknown ContentLocale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentLocaleMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, contentlocale.FieldVersion)
	}
	if m.addpublished_version != nil {
		fields = append(fields, contentlocale.FieldPublishedVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentLocaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contentlocale.FieldVersion:
		return m.AddedVersion()
	case contentlocale.FieldPublishedVersion:
		return m.AddedPublishedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentLocaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contentlocale.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case contentlocale.FieldPublishedVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPublishedVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ContentLocale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentLocaleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentlocale.FieldCreatedBy) {
		fields = append(fields, contentlocale.FieldCreatedBy)
	}
	if m.FieldCleared(contentlocale.FieldUpdatedBy) {
		fields = append(fields, contentlocale.FieldUpdatedBy)
	}
	if m.FieldCleared(contentlocale.FieldLanguageID) {
		fields = append(fields, contentlocale.FieldLanguageID)
	}
	if m.FieldCleared(contentlocale.FieldDisplayName) {
		fields = append(fields, contentlocale.FieldDisplayName)
	}
	if m.FieldCleared(contentlocale.FieldDescription) {
		fields = append(fields, contentlocale.FieldDescription)
	}
	if m.FieldCleared(contentlocale.FieldFieldValues) {
		fields = append(fields, contentlocale.FieldFieldValues)
	}
	if m.FieldCleared(contentlocale.FieldPublishedVersion) {
		fields = append(fields, contentlocale.FieldPublishedVersion)
	}
	if m.FieldCleared(contentlocale.FieldPublishedBy) {
		fields = append(fields, contentlocale.FieldPublishedBy)
	}
	if m.FieldCleared(contentlocale.FieldPublishedOn) {
		fields = append(fields, contentlocale.FieldPublishedOn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentLocaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentLocaleMutation) ClearField(name string) error {
	switch name {
	case contentlocale.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case contentlocale.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case contentlocale.FieldLanguageID:
		m.ClearLanguageID()
		return nil
	case contentlocale.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case contentlocale.FieldDescription:
		m.ClearDescription()
		return nil
	case contentlocale.FieldFieldValues:
		m.ClearFieldValues()
		return nil
	case contentlocale.FieldPublishedVersion:
		m.ClearPublishedVersion()
		return nil
	case contentlocale.FieldPublishedBy:
		m.ClearPublishedBy()
		return nil
	case contentlocale.FieldPublishedOn:
		m.ClearPublishedOn()
		return nil
	}
	return fmt.Errorf("unknown ContentLocale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentLocaleMutation) ResetField(name string) error {
	switch name {
	case contentlocale.FieldVersion:
		m.ResetVersion()
		return nil
	case contentlocale.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case contentlocale.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case contentlocale.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case contentlocale.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case contentlocale.FieldContentID:
		m.ResetContentID()
		return nil
	case contentlocale.FieldLanguageID:
		m.ResetLanguageID()
		return nil
	case contentlocale.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case contentlocale.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case contentlocale.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case contentlocale.FieldDescription:
		m.ResetDescription()
		return nil
	case contentlocale.FieldFieldValues:
		m.ResetFieldValues()
		return nil
	case contentlocale.FieldIsPublished:
		m.ResetIsPublished()
		return nil
	case contentlocale.FieldPublishedVersion:
		m.ResetPublishedVersion()
		return nil
	case contentlocale.FieldPublishedBy:
		m.ResetPublishedBy()
		return nil
	case contentlocale.FieldPublishedOn:
		m.ResetPublishedOn()
		return nil
	}
	return fmt.Errorf("unknown ContentLocale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentLocaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.content != nil {
		edges = append(edges, contentlocale.EdgeContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentLocaleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contentlocale.EdgeContent:
		if id := m.content; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentLocaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentLocaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentLocaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontent {
		edges = append(edges, contentlocale.EdgeContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentLocaleMutation) EdgeCleared(name string) bool {
	switch name {
	case contentlocale.EdgeContent:
		return m.clearedcontent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentLocaleMutation) ClearEdge(name string) error {
	switch name {
	case contentlocale.EdgeContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown ContentLocale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentLocaleMutation) ResetEdge(name string) error {
	switch name {
	case contentlocale.EdgeContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown ContentLocale edge %s", name)
}

// ContentTypeMutation represents an operation that mutates the ContentType nodes in the graph.
type ContentTypeMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	stream_id                *string
	version                  *int64
	addversion               *int64
	created_by               *string
	created_on               *time.Time
	updated_by               *string
	updated_on               *time.Time
	realm_id                 *uuid.UUID
	is_invariant             *bool
	unique_name              *string
	unique_name_normalized   *string
	display_name             *string
	description              *string
	field_count              *int
	addfield_count           *int
	clearedFields            map[string]struct{}
	field_definitions        map[uuid.UUID]struct{}
	removedfield_definitions map[uuid.UUID]struct{}
	clearedfield_definitions bool
	contents                 map[uuid.UUID]struct{}
	removedcontents          map[uuid.UUID]struct{}
	clearedcontents          bool
	done                     bool
	oldValue                 func(context.Context) (*ContentType, error)
	predicates               []predicate.ContentType
}

var _ ent.Mutation = (*ContentTypeMutation)(nil)

// contenttypeOption allows management of the mutation configuration using functional options.
type contenttypeOption func(*ContentTypeMutation)

// newContentTypeMutation creates new mutation for the ContentType entity.
func newContentTypeMutation(c config, op Op, opts ...contenttypeOption) *ContentTypeMutation {
	m := &ContentTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeContentType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentTypeID sets the ID field of the mutation.
func withContentTypeID(id uuid.UUID) contenttypeOption {
	return func(m *ContentTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentType
		)
		m.oldValue = func(ctx context.Context) (*ContentType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentType sets the old ContentType of the mutation.
func withContentType(node *ContentType) contenttypeOption {
	return func(m *ContentTypeMutation) {
		m.oldValue = func(context.Context) (*ContentType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentType entities.
func (m *ContentTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *ContentTypeMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *ContentTypeMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *ContentTypeMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *ContentTypeMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ContentTypeMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ContentTypeMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ContentTypeMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ContentTypeMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ContentTypeMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ContentTypeMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ContentTypeMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[contenttype.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ContentTypeMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[contenttype.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ContentTypeMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, contenttype.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *ContentTypeMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *ContentTypeMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *ContentTypeMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ContentTypeMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ContentTypeMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ContentTypeMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[contenttype.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ContentTypeMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[contenttype.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ContentTypeMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, contenttype.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *ContentTypeMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *ContentTypeMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *ContentTypeMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *ContentTypeMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *ContentTypeMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *ContentTypeMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[contenttype.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *ContentTypeMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[contenttype.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *ContentTypeMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, contenttype.FieldRealmID)
}

// SetIsInvariant sets the "is_invariant" field.
func (m *ContentTypeMutation) SetIsInvariant(b bool) {
	m.is_invariant = &b
}

// IsInvariant returns the value of the "is_invariant" field in the mutation.
func (m *ContentTypeMutation) IsInvariant() (r bool, exists bool) {
	v := m.is_invariant
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInvariant returns the old "is_invariant" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldIsInvariant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInvariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInvariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInvariant: %w", err)
	}
	return oldValue.IsInvariant, nil
}

// ResetIsInvariant resets all changes to the "is_invariant" field.
func (m *ContentTypeMutation) ResetIsInvariant() {
	m.is_invariant = nil
}

// SetUniqueName sets the "unique_name" field.
func (m *ContentTypeMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *ContentTypeMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *ContentTypeMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *ContentTypeMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *ContentTypeMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *ContentTypeMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ContentTypeMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ContentTypeMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *ContentTypeMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[contenttype.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *ContentTypeMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[contenttype.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ContentTypeMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, contenttype.FieldDisplayName)
}

// SetDescription sets the "description" field.
func (m *ContentTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContentTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ContentTypeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[contenttype.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ContentTypeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[contenttype.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ContentTypeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, contenttype.FieldDescription)
}

// SetFieldCount sets the "field_count" field.
func (m *ContentTypeMutation) SetFieldCount(i int) {
	m.field_count = &i
	m.addfield_count = nil
}

// FieldCount returns the value of the "field_count" field in the mutation.
func (m *ContentTypeMutation) FieldCount() (r int, exists bool) {
	v := m.field_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldCount returns the old "field_count" field's value of the ContentType entity.
// If the ContentType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentTypeMutation) OldFieldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldCount: %w", err)
	}
	return oldValue.FieldCount, nil
}

// AddFieldCount adds i to the "field_count" field.
func (m *ContentTypeMutation) AddFieldCount(i int) {
	if m.addfield_count != nil {
		*m.addfield_count += i
	} else {
		m.addfield_count = &i
	}
}

// AddedFieldCount returns the value that was added to the "field_count" field in this mutation.
func (m *ContentTypeMutation) AddedFieldCount() (r int, exists bool) {
	v := m.addfield_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFieldCount resets all changes to the "field_count" field.
func (m *ContentTypeMutation) ResetFieldCount() {
	m.field_count = nil
	m.addfield_count = nil
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by ids.
func (m *ContentTypeMutation) AddFieldDefinitionIDs(ids ...uuid.UUID) {
	if m.field_definitions == nil {
		m.field_definitions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.field_definitions[ids[i]] = struct{}{}
	}
}

// ClearFieldDefinitions clears the "field_definitions" edge to the FieldDefinition entity.
func (m *ContentTypeMutation) ClearFieldDefinitions() {
	m.clearedfield_definitions = true
}

// FieldDefinitionsCleared reports if the "field_definitions" edge to the FieldDefinition entity was cleared.
func (m *ContentTypeMutation) FieldDefinitionsCleared() bool {
	return m.clearedfield_definitions
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to the FieldDefinition entity by IDs.
func (m *ContentTypeMutation) RemoveFieldDefinitionIDs(ids ...uuid.UUID) {
	if m.removedfield_definitions == nil {
		m.removedfield_definitions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.field_definitions, ids[i])
		m.removedfield_definitions[ids[i]] = struct{}{}
	}
}

// RemovedFieldDefinitions returns the removed IDs of the "field_definitions" edge to the FieldDefinition entity.
func (m *ContentTypeMutation) RemovedFieldDefinitionsIDs() (ids []uuid.UUID) {
	for id := range m.removedfield_definitions {
		ids = append(ids, id)
	}
	return
}

// FieldDefinitionsIDs returns the "field_definitions" edge IDs in the mutation.
func (m *ContentTypeMutation) FieldDefinitionsIDs() (ids []uuid.UUID) {
	for id := range m.field_definitions {
		ids = append(ids, id)
	}
	return
}

// ResetFieldDefinitions resets all changes to the "field_definitions" edge.
func (m *ContentTypeMutation) ResetFieldDefinitions() {
	m.field_definitions = nil
	m.clearedfield_definitions = false
	m.removedfield_definitions = nil
}

// AddContentIDs adds the "contents" edge to the Content entity by ids.
func (m *ContentTypeMutation) AddContentIDs(ids ...uuid.UUID) {
	if m.contents == nil {
		m.contents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contents[ids[i]] = struct{}{}
	}
}

// ClearContents clears the "contents" edge to the Content entity.
func (m *ContentTypeMutation) ClearContents() {
	m.clearedcontents = true
}

// ContentsCleared reports if the "contents" edge to the Content entity was cleared.
func (m *ContentTypeMutation) ContentsCleared() bool {
	return m.clearedcontents
}

// RemoveContentIDs removes the "contents" edge to the Content entity by IDs.
func (m *ContentTypeMutation) RemoveContentIDs(ids ...uuid.UUID) {
	if m.removedcontents == nil {
		m.removedcontents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contents, ids[i])
		m.removedcontents[ids[i]] = struct{}{}
	}
}

// RemovedContents returns the removed IDs of the "contents" edge to the Content entity.
func (m *ContentTypeMutation) RemovedContentsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontents {
		ids = append(ids, id)
	}
	return
}

// ContentsIDs returns the "contents" edge IDs in the mutation.
func (m *ContentTypeMutation) ContentsIDs() (ids []uuid.UUID) {
	for id := range m.contents {
		ids = append(ids, id)
	}
	return
}

// ResetContents resets all changes to the "contents" edge.
func (m *ContentTypeMutation) ResetContents() {
	m.contents = nil
	m.clearedcontents = false
	m.removedcontents = nil
}

// Where appends a list predicates to the ContentTypeMutation builder.
func (m *ContentTypeMutation) Where(ps ...predicate.ContentType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentType).
func (m *ContentTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentTypeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.stream_id != nil {
		fields = append(fields, contenttype.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, contenttype.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, contenttype.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, contenttype.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, contenttype.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, contenttype.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, contenttype.FieldRealmID)
	}
	if m.is_invariant != nil {
		fields = append(fields, contenttype.FieldIsInvariant)
	}
	if m.unique_name != nil {
		fields = append(fields, contenttype.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, contenttype.FieldUniqueNameNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, contenttype.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, contenttype.FieldDescription)
	}
	if m.field_count != nil {
		fields = append(fields, contenttype.FieldFieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contenttype.FieldStreamID:
		return m.StreamID()
	case contenttype.FieldVersion:
		return m.Version()
	case contenttype.FieldCreatedBy:
		return m.CreatedBy()
	case contenttype.FieldCreatedOn:
		return m.CreatedOn()
	case contenttype.FieldUpdatedBy:
		return m.UpdatedBy()
	case contenttype.FieldUpdatedOn:
		return m.UpdatedOn()
	case contenttype.FieldRealmID:
		return m.RealmID()
	case contenttype.FieldIsInvariant:
		return m.IsInvariant()
	case contenttype.FieldUniqueName:
		return m.UniqueName()
	case contenttype.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case contenttype.FieldDisplayName:
		return m.DisplayName()
	case contenttype.FieldDescription:
		return m.Description()
	case contenttype.FieldFieldCount:
		return m.FieldCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contenttype.FieldStreamID:
		return m.OldStreamID(ctx)
	case contenttype.FieldVersion:
		return m.OldVersion(ctx)
	case contenttype.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case contenttype.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case contenttype.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case contenttype.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case contenttype.FieldRealmID:
		return m.OldRealmID(ctx)
	case contenttype.FieldIsInvariant:
		return m.OldIsInvariant(ctx)
	case contenttype.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case contenttype.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case contenttype.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case contenttype.FieldDescription:
		return m.OldDescription(ctx)
	case contenttype.FieldFieldCount:
		return m.OldFieldCount(ctx)
	}
	return nil, fmt.Errorf("unknown ContentType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contenttype.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case contenttype.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case contenttype.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case contenttype.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case contenttype.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case contenttype.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case contenttype.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case contenttype.FieldIsInvariant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInvariant(v)
		return nil
	case contenttype.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case contenttype.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case contenttype.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case contenttype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case contenttype.FieldFieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldCount(v)
		return nil
	}
	return fmt.Errorf("unknown ContentType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentTypeMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, contenttype.FieldVersion)
	}
	if m.addfield_count != nil {
		fields = append(fields, contenttype.FieldFieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentTypeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contenttype.FieldVersion:
		return m.AddedVersion()
	case contenttype.FieldFieldCount:
		return m.AddedFieldCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contenttype.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case contenttype.FieldFieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFieldCount(v)
		return nil
	}
	return fmt.Errorf("unknown ContentType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentTypeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contenttype.FieldCreatedBy) {
		fields = append(fields, contenttype.FieldCreatedBy)
	}
	if m.FieldCleared(contenttype.FieldUpdatedBy) {
		fields = append(fields, contenttype.FieldUpdatedBy)
	}
	if m.FieldCleared(contenttype.FieldRealmID) {
		fields = append(fields, contenttype.FieldRealmID)
	}
	if m.FieldCleared(contenttype.FieldDisplayName) {
		fields = append(fields, contenttype.FieldDisplayName)
	}
	if m.FieldCleared(contenttype.FieldDescription) {
		fields = append(fields, contenttype.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentTypeMutation) ClearField(name string) error {
	switch name {
	case contenttype.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case contenttype.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case contenttype.FieldRealmID:
		m.ClearRealmID()
		return nil
	case contenttype.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case contenttype.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ContentType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentTypeMutation) ResetField(name string) error {
	switch name {
	case contenttype.FieldStreamID:
		m.ResetStreamID()
		return nil
	case contenttype.FieldVersion:
		m.ResetVersion()
		return nil
	case contenttype.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case contenttype.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case contenttype.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case contenttype.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case contenttype.FieldRealmID:
		m.ResetRealmID()
		return nil
	case contenttype.FieldIsInvariant:
		m.ResetIsInvariant()
		return nil
	case contenttype.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case contenttype.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case contenttype.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case contenttype.FieldDescription:
		m.ResetDescription()
		return nil
	case contenttype.FieldFieldCount:
		m.ResetFieldCount()
		return nil
	}
	return fmt.Errorf("unknown ContentType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.field_definitions != nil {
		edges = append(edges, contenttype.EdgeFieldDefinitions)
	}
	if m.contents != nil {
		edges = append(edges, contenttype.EdgeContents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contenttype.EdgeFieldDefinitions:
		ids := make([]ent.Value, 0, len(m.field_definitions))
		for id := range m.field_definitions {
			ids = append(ids, id)
		}
		return ids
	case contenttype.EdgeContents:
		ids := make([]ent.Value, 0, len(m.contents))
		for id := range m.contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfield_definitions != nil {
		edges = append(edges, contenttype.EdgeFieldDefinitions)
	}
	if m.removedcontents != nil {
		edges = append(edges, contenttype.EdgeContents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contenttype.EdgeFieldDefinitions:
		ids := make([]ent.Value, 0, len(m.removedfield_definitions))
		for id := range m.removedfield_definitions {
			ids = append(ids, id)
		}
		return ids
	case contenttype.EdgeContents:
		ids := make([]ent.Value, 0, len(m.removedcontents))
		for id := range m.removedcontents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfield_definitions {
		edges = append(edges, contenttype.EdgeFieldDefinitions)
	}
	if m.clearedcontents {
		edges = append(edges, contenttype.EdgeContents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case contenttype.EdgeFieldDefinitions:
		return m.clearedfield_definitions
	case contenttype.EdgeContents:
		return m.clearedcontents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentTypeMutation) ResetEdge(name string) error {
	switch name {
	case contenttype.EdgeFieldDefinitions:
		m.ResetFieldDefinitions()
		return nil
	case contenttype.EdgeContents:
		m.ResetContents()
		return nil
	}
	return fmt.Errorf("unknown ContentType edge %s", name)
}

// FieldDefinitionMutation represents an operation that mutates the FieldDefinition nodes in the graph.
type FieldDefinitionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	_order                 *int
	add_order              *int
	is_invariant           *bool
	is_required            *bool
	is_indexed             *bool
	is_unique              *bool
	unique_name            *string
	unique_name_normalized *string
	display_name           *string
	description            *string
	placeholder            *string
	clearedFields          map[string]struct{}
	content_type           *uuid.UUID
	clearedcontent_type    bool
	field_type             *uuid.UUID
	clearedfield_type      bool
	done                   bool
	oldValue               func(context.Context) (*FieldDefinition, error)
	predicates             []predicate.FieldDefinition
}

var _ ent.Mutation = (*FieldDefinitionMutation)(nil)

// fielddefinitionOption allows management of the mutation configuration using functional options.
type fielddefinitionOption func(*FieldDefinitionMutation)

// newFieldDefinitionMutation creates new mutation for the FieldDefinition entity.
func newFieldDefinitionMutation(c config, op Op, opts ...fielddefinitionOption) *FieldDefinitionMutation {
	m := &FieldDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldDefinitionID sets the ID field of the mutation.
func withFieldDefinitionID(id uuid.UUID) fielddefinitionOption {
	return func(m *FieldDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldDefinition
		)
		m.oldValue = func(ctx context.Context) (*FieldDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldDefinition sets the old FieldDefinition of the mutation.
func withFieldDefinition(node *FieldDefinition) fielddefinitionOption {
	return func(m *FieldDefinitionMutation) {
		m.oldValue = func(context.Context) (*FieldDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldDefinition entities.
func (m *FieldDefinitionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldDefinitionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldDefinitionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentTypeID sets the "content_type_id" field.
func (m *FieldDefinitionMutation) SetContentTypeID(u uuid.UUID) {
	m.content_type = &u
}

// ContentTypeID returns the value of the "content_type_id" field in the mutation.
func (m *FieldDefinitionMutation) ContentTypeID() (r uuid.UUID, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeID returns the old "content_type_id" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldContentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeID: %w", err)
	}
	return oldValue.ContentTypeID, nil
}

// ResetContentTypeID resets all changes to the "content_type_id" field.
func (m *FieldDefinitionMutation) ResetContentTypeID() {
	m.content_type = nil
}

// SetFieldTypeID sets the "field_type_id" field.
func (m *FieldDefinitionMutation) SetFieldTypeID(u uuid.UUID) {
	m.field_type = &u
}

// FieldTypeID returns the value of the "field_type_id" field in the mutation.
func (m *FieldDefinitionMutation) FieldTypeID() (r uuid.UUID, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldTypeID returns the old "field_type_id" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldFieldTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldTypeID: %w", err)
	}
	return oldValue.FieldTypeID, nil
}

// ResetFieldTypeID resets all changes to the "field_type_id" field.
func (m *FieldDefinitionMutation) ResetFieldTypeID() {
	m.field_type = nil
}

// SetOrder sets the "order" field.
func (m *FieldDefinitionMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *FieldDefinitionMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *FieldDefinitionMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *FieldDefinitionMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *FieldDefinitionMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetIsInvariant sets the "is_invariant" field.
func (m *FieldDefinitionMutation) SetIsInvariant(b bool) {
	m.is_invariant = &b
}

// IsInvariant returns the value of the "is_invariant" field in the mutation.
func (m *FieldDefinitionMutation) IsInvariant() (r bool, exists bool) {
	v := m.is_invariant
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInvariant returns the old "is_invariant" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldIsInvariant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInvariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInvariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInvariant: %w", err)
	}
	return oldValue.IsInvariant, nil
}

// ResetIsInvariant resets all changes to the "is_invariant" field.
func (m *FieldDefinitionMutation) ResetIsInvariant() {
	m.is_invariant = nil
}

// SetIsRequired sets the "is_required" field.
func (m *FieldDefinitionMutation) SetIsRequired(b bool) {
	m.is_required = &b
}

// IsRequired returns the value of the "is_required" field in the mutation.
func (m *FieldDefinitionMutation) IsRequired() (r bool, exists bool) {
	v := m.is_required
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRequired returns the old "is_required" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldIsRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRequired: %w", err)
	}
	return oldValue.IsRequired, nil
}

// ResetIsRequired resets all changes to the "is_required" field.
func (m *FieldDefinitionMutation) ResetIsRequired() {
	m.is_required = nil
}

// SetIsIndexed sets the "is_indexed" field.
func (m *FieldDefinitionMutation) SetIsIndexed(b bool) {
	m.is_indexed = &b
}

// IsIndexed returns the value of the "is_indexed" field in the mutation.
func (m *FieldDefinitionMutation) IsIndexed() (r bool, exists bool) {
	v := m.is_indexed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsIndexed returns the old "is_indexed" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldIsIndexed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsIndexed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsIndexed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsIndexed: %w", err)
	}
	return oldValue.IsIndexed, nil
}

// ResetIsIndexed resets all changes to the "is_indexed" field.
func (m *FieldDefinitionMutation) ResetIsIndexed() {
	m.is_indexed = nil
}

// SetIsUnique sets the "is_unique" field.
func (m *FieldDefinitionMutation) SetIsUnique(b bool) {
	m.is_unique = &b
}

// IsUnique returns the value of the "is_unique" field in the mutation.
func (m *FieldDefinitionMutation) IsUnique() (r bool, exists bool) {
	v := m.is_unique
	if v == nil {
		return
	}
	return *v, true
}

// OldIsUnique returns the old "is_unique" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldIsUnique(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsUnique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsUnique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsUnique: %w", err)
	}
	return oldValue.IsUnique, nil
}

// ResetIsUnique resets all changes to the "is_unique" field.
func (m *FieldDefinitionMutation) ResetIsUnique() {
	m.is_unique = nil
}

// SetUniqueName sets the "unique_name" field.
func (m *FieldDefinitionMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *FieldDefinitionMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *FieldDefinitionMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *FieldDefinitionMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *FieldDefinitionMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *FieldDefinitionMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *FieldDefinitionMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *FieldDefinitionMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *FieldDefinitionMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[fielddefinition.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *FieldDefinitionMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[fielddefinition.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *FieldDefinitionMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, fielddefinition.FieldDisplayName)
}

// SetDescription sets the "description" field.
func (m *FieldDefinitionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FieldDefinitionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FieldDefinitionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[fielddefinition.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FieldDefinitionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[fielddefinition.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FieldDefinitionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, fielddefinition.FieldDescription)
}

// SetPlaceholder sets the "placeholder" field.
func (m *FieldDefinitionMutation) SetPlaceholder(s string) {
	m.placeholder = &s
}

// Placeholder returns the value of the "placeholder" field in the mutation.
func (m *FieldDefinitionMutation) Placeholder() (r string, exists bool) {
	v := m.placeholder
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceholder returns the old "placeholder" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldPlaceholder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceholder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceholder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceholder: %w", err)
	}
	return oldValue.Placeholder, nil
}

// ClearPlaceholder clears the value of the "placeholder" field.
func (m *FieldDefinitionMutation) ClearPlaceholder() {
	m.placeholder = nil
	m.clearedFields[fielddefinition.FieldPlaceholder] = struct{}{}
}

// PlaceholderCleared returns if the "placeholder" field was cleared in this mutation.
func (m *FieldDefinitionMutation) PlaceholderCleared() bool {
	_, ok := m.clearedFields[fielddefinition.FieldPlaceholder]
	return ok
}

// ResetPlaceholder resets all changes to the "placeholder" field.
func (m *FieldDefinitionMutation) ResetPlaceholder() {
	m.placeholder = nil
	delete(m.clearedFields, fielddefinition.FieldPlaceholder)
}

// ClearContentType clears the "content_type" edge to the ContentType entity.
func (m *FieldDefinitionMutation) ClearContentType() {
	m.clearedcontent_type = true
	m.clearedFields[fielddefinition.FieldContentTypeID] = struct{}{}
}

// ContentTypeCleared reports if the "content_type" edge to the ContentType entity was cleared.
func (m *FieldDefinitionMutation) ContentTypeCleared() bool {
	return m.clearedcontent_type
}

// ContentTypeIDs returns the "content_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContentTypeID instead. It exists only for internal usage by the builders.
func (m *FieldDefinitionMutation) ContentTypeIDs() (ids []uuid.UUID) {
	if id := m.content_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContentType resets all changes to the "content_type" edge.
func (m *FieldDefinitionMutation) ResetContentType() {
	m.content_type = nil
	m.clearedcontent_type = false
}

// ClearFieldType clears the "field_type" edge to the FieldType entity.
func (m *FieldDefinitionMutation) ClearFieldType() {
	m.clearedfield_type = true
	m.clearedFields[fielddefinition.FieldFieldTypeID] = struct{}{}
}

// FieldTypeCleared reports if the "field_type" edge to the FieldType entity was cleared.
func (m *FieldDefinitionMutation) FieldTypeCleared() bool {
	return m.clearedfield_type
}

// FieldTypeIDs returns the "field_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FieldTypeID instead. It exists only for internal usage by the builders.
func (m *FieldDefinitionMutation) FieldTypeIDs() (ids []uuid.UUID) {
	if id := m.field_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFieldType resets all changes to the "field_type" edge.
func (m *FieldDefinitionMutation) ResetFieldType() {
	m.field_type = nil
	m.clearedfield_type = false
}

// Where appends a list predicates to the FieldDefinitionMutation builder.
func (m *FieldDefinitionMutation) Where(ps ...predicate.FieldDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldDefinition).
func (m *FieldDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.content_type != nil {
		fields = append(fields, fielddefinition.FieldContentTypeID)
	}
	if m.field_type != nil {
		fields = append(fields, fielddefinition.FieldFieldTypeID)
	}
	if m._order != nil {
		fields = append(fields, fielddefinition.FieldOrder)
	}
	if m.is_invariant != nil {
		fields = append(fields, fielddefinition.FieldIsInvariant)
	}
	if m.is_required != nil {
		fields = append(fields, fielddefinition.FieldIsRequired)
	}
	if m.is_indexed != nil {
		fields = append(fields, fielddefinition.FieldIsIndexed)
	}
	if m.is_unique != nil {
		fields = append(fields, fielddefinition.FieldIsUnique)
	}
	if m.unique_name != nil {
		fields = append(fields, fielddefinition.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, fielddefinition.FieldUniqueNameNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, fielddefinition.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, fielddefinition.FieldDescription)
	}
	if m.placeholder != nil {
		fields = append(fields, fielddefinition.FieldPlaceholder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fielddefinition.FieldContentTypeID:
		return m.ContentTypeID()
	case fielddefinition.FieldFieldTypeID:
		return m.FieldTypeID()
	case fielddefinition.FieldOrder:
		return m.Order()
	case fielddefinition.FieldIsInvariant:
		return m.IsInvariant()
	case fielddefinition.FieldIsRequired:
		return m.IsRequired()
	case fielddefinition.FieldIsIndexed:
		return m.IsIndexed()
	case fielddefinition.FieldIsUnique:
		return m.IsUnique()
	case fielddefinition.FieldUniqueName:
		return m.UniqueName()
	case fielddefinition.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case fielddefinition.FieldDisplayName:
		return m.DisplayName()
	case fielddefinition.FieldDescription:
		return m.Description()
	case fielddefinition.FieldPlaceholder:
		return m.Placeholder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fielddefinition.FieldContentTypeID:
		return m.OldContentTypeID(ctx)
	case fielddefinition.FieldFieldTypeID:
		return m.OldFieldTypeID(ctx)
	case fielddefinition.FieldOrder:
		return m.OldOrder(ctx)
	case fielddefinition.FieldIsInvariant:
		return m.OldIsInvariant(ctx)
	case fielddefinition.FieldIsRequired:
		return m.OldIsRequired(ctx)
	case fielddefinition.FieldIsIndexed:
		return m.OldIsIndexed(ctx)
	case fielddefinition.FieldIsUnique:
		return m.OldIsUnique(ctx)
	case fielddefinition.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case fielddefinition.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case fielddefinition.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case fielddefinition.FieldDescription:
		return m.OldDescription(ctx)
	case fielddefinition.FieldPlaceholder:
		return m.OldPlaceholder(ctx)
	}
	return nil, fmt.Errorf("unknown FieldDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fielddefinition.FieldContentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeID(v)
		return nil
	case fielddefinition.FieldFieldTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldTypeID(v)
		return nil
	case fielddefinition.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case fielddefinition.FieldIsInvariant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInvariant(v)
		return nil
	case fielddefinition.FieldIsRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRequired(v)
		return nil
	case fielddefinition.FieldIsIndexed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsIndexed(v)
		return nil
	case fielddefinition.FieldIsUnique:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsUnique(v)
		return nil
	case fielddefinition.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case fielddefinition.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case fielddefinition.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case fielddefinition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case fielddefinition.FieldPlaceholder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceholder(v)
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, fielddefinition.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fielddefinition.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fielddefinition.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fielddefinition.FieldDisplayName) {
		fields = append(fields, fielddefinition.FieldDisplayName)
	}
	if m.FieldCleared(fielddefinition.FieldDescription) {
		fields = append(fields, fielddefinition.FieldDescription)
	}
	if m.FieldCleared(fielddefinition.FieldPlaceholder) {
		fields = append(fields, fielddefinition.FieldPlaceholder)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldDefinitionMutation) ClearField(name string) error {
	switch name {
	case fielddefinition.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case fielddefinition.FieldDescription:
		m.ClearDescription()
		return nil
	case fielddefinition.FieldPlaceholder:
		m.ClearPlaceholder()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldDefinitionMutation) ResetField(name string) error {
	switch name {
	case fielddefinition.FieldContentTypeID:
		m.ResetContentTypeID()
		return nil
	case fielddefinition.FieldFieldTypeID:
		m.ResetFieldTypeID()
		return nil
	case fielddefinition.FieldOrder:
		m.ResetOrder()
		return nil
	case fielddefinition.FieldIsInvariant:
		m.ResetIsInvariant()
		return nil
	case fielddefinition.FieldIsRequired:
		m.ResetIsRequired()
		return nil
	case fielddefinition.FieldIsIndexed:
		m.ResetIsIndexed()
		return nil
	case fielddefinition.FieldIsUnique:
		m.ResetIsUnique()
		return nil
	case fielddefinition.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case fielddefinition.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case fielddefinition.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case fielddefinition.FieldDescription:
		m.ResetDescription()
		return nil
	case fielddefinition.FieldPlaceholder:
		m.ResetPlaceholder()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.content_type != nil {
		edges = append(edges, fielddefinition.EdgeContentType)
	}
	if m.field_type != nil {
		edges = append(edges, fielddefinition.EdgeFieldType)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fielddefinition.EdgeContentType:
		if id := m.content_type; id != nil {
			return []ent.Value{*id}
		}
	case fielddefinition.EdgeFieldType:
		if id := m.field_type; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontent_type {
		edges = append(edges, fielddefinition.EdgeContentType)
	}
	if m.clearedfield_type {
		edges = append(edges, fielddefinition.EdgeFieldType)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case fielddefinition.EdgeContentType:
		return m.clearedcontent_type
	case fielddefinition.EdgeFieldType:
		return m.clearedfield_type
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldDefinitionMutation) ClearEdge(name string) error {
	switch name {
	case fielddefinition.EdgeContentType:
		m.ClearContentType()
		return nil
	case fielddefinition.EdgeFieldType:
		m.ClearFieldType()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case fielddefinition.EdgeContentType:
		m.ResetContentType()
		return nil
	case fielddefinition.EdgeFieldType:
		m.ResetFieldType()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition edge %s", name)
}

// FieldIndexMutation represents an operation that mutates the FieldIndex nodes in the graph.
type FieldIndexMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	realm_id              *uuid.UUID
	status                *fieldindex.Status
	content_type_id       *uuid.UUID
	content_type_name     *string
	language_id           *uuid.UUID
	language_code         *string
	language_is_default   *bool
	field_type_id         *uuid.UUID
	field_type_name       *string
	field_definition_id   *uuid.UUID
	field_definition_name *string
	content_id            *uuid.UUID
	content_locale_id     *uuid.UUID
	content_locale_name   *string
	version               *int64
	addversion            *int64
	value_boolean         *bool
	value_datetime        *time.Time
	value_number          *float64
	addvalue_number       *float64
	value_related_content *string
	value_rich_text       *string
	value_select          *string
	value_string          *string
	value_tags            *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*FieldIndex, error)
	predicates            []predicate.FieldIndex
}

var _ ent.Mutation = (*FieldIndexMutation)(nil)

// fieldindexOption allows management of the mutation configuration using functional options.
type fieldindexOption func(*FieldIndexMutation)

// newFieldIndexMutation creates new mutation for the FieldIndex entity.
func newFieldIndexMutation(c config, op Op, opts ...fieldindexOption) *FieldIndexMutation {
	m := &FieldIndexMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldIndex,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldIndexID sets the ID field of the mutation.
func withFieldIndexID(id uuid.UUID) fieldindexOption {
	return func(m *FieldIndexMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldIndex
		)
		m.oldValue = func(ctx context.Context) (*FieldIndex, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldIndex.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldIndex sets the old FieldIndex of the mutation.
func withFieldIndex(node *FieldIndex) fieldindexOption {
	return func(m *FieldIndexMutation) {
		m.oldValue = func(context.Context) (*FieldIndex, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldIndexMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldIndexMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldIndex entities.
func (m *FieldIndexMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldIndexMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldIndexMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldIndex.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRealmID sets the "realm_id" field.
func (m *FieldIndexMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *FieldIndexMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *FieldIndexMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[fieldindex.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *FieldIndexMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *FieldIndexMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, fieldindex.FieldRealmID)
}

// SetStatus sets the "status" field.
func (m *FieldIndexMutation) SetStatus(f fieldindex.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FieldIndexMutation) Status() (r fieldindex.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldStatus(ctx context.Context) (v fieldindex.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FieldIndexMutation) ResetStatus() {
	m.status = nil
}

// SetContentTypeID sets the "content_type_id" field.
func (m *FieldIndexMutation) SetContentTypeID(u uuid.UUID) {
	m.content_type_id = &u
}

// ContentTypeID returns the value of the "content_type_id" field in the mutation.
func (m *FieldIndexMutation) ContentTypeID() (r uuid.UUID, exists bool) {
	v := m.content_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeID returns the old "content_type_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldContentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeID: %w", err)
	}
	return oldValue.ContentTypeID, nil
}

// ResetContentTypeID resets all changes to the "content_type_id" field.
func (m *FieldIndexMutation) ResetContentTypeID() {
	m.content_type_id = nil
}

// SetContentTypeName sets the "content_type_name" field.
func (m *FieldIndexMutation) SetContentTypeName(s string) {
	m.content_type_name = &s
}

// ContentTypeName returns the value of the "content_type_name" field in the mutation.
func (m *FieldIndexMutation) ContentTypeName() (r string, exists bool) {
	v := m.content_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeName returns the old "content_type_name" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldContentTypeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeName: %w", err)
	}
	return oldValue.ContentTypeName, nil
}

// ResetContentTypeName resets all changes to the "content_type_name" field.
func (m *FieldIndexMutation) ResetContentTypeName() {
	m.content_type_name = nil
}

// SetLanguageID sets the "language_id" field.
func (m *FieldIndexMutation) SetLanguageID(u uuid.UUID) {
	m.language_id = &u
}

// LanguageID returns the value of the "language_id" field in the mutation.
func (m *FieldIndexMutation) LanguageID() (r uuid.UUID, exists bool) {
	v := m.language_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageID returns the old "language_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldLanguageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageID: %w", err)
	}
	return oldValue.LanguageID, nil
}

// ClearLanguageID clears the value of the "language_id" field.
func (m *FieldIndexMutation) ClearLanguageID() {
	m.language_id = nil
	m.clearedFields[fieldindex.FieldLanguageID] = struct{}{}
}

// LanguageIDCleared returns if the "language_id" field was cleared in this mutation.
func (m *FieldIndexMutation) LanguageIDCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldLanguageID]
	return ok
}

// ResetLanguageID resets all changes to the "language_id" field.
func (m *FieldIndexMutation) ResetLanguageID() {
	m.language_id = nil
	delete(m.clearedFields, fieldindex.FieldLanguageID)
}

// SetLanguageCode sets the "language_code" field.
func (m *FieldIndexMutation) SetLanguageCode(s string) {
	m.language_code = &s
}

// LanguageCode returns the value of the "language_code" field in the mutation.
func (m *FieldIndexMutation) LanguageCode() (r string, exists bool) {
	v := m.language_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageCode returns the old "language_code" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldLanguageCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageCode: %w", err)
	}
	return oldValue.LanguageCode, nil
}

// ClearLanguageCode clears the value of the "language_code" field.
func (m *FieldIndexMutation) ClearLanguageCode() {
	m.language_code = nil
	m.clearedFields[fieldindex.FieldLanguageCode] = struct{}{}
}

// LanguageCodeCleared returns if the "language_code" field was cleared in this mutation.
func (m *FieldIndexMutation) LanguageCodeCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldLanguageCode]
	return ok
}

// ResetLanguageCode resets all changes to the "language_code" field.
func (m *FieldIndexMutation) ResetLanguageCode() {
	m.language_code = nil
	delete(m.clearedFields, fieldindex.FieldLanguageCode)
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (m *FieldIndexMutation) SetLanguageIsDefault(b bool) {
	m.language_is_default = &b
}

// LanguageIsDefault returns the value of the "language_is_default" field in the mutation.
func (m *FieldIndexMutation) LanguageIsDefault() (r bool, exists bool) {
	v := m.language_is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageIsDefault returns the old "language_is_default" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldLanguageIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageIsDefault: %w", err)
	}
	return oldValue.LanguageIsDefault, nil
}

// ResetLanguageIsDefault resets all changes to the "language_is_default" field.
func (m *FieldIndexMutation) ResetLanguageIsDefault() {
	m.language_is_default = nil
}

// SetFieldTypeID sets the "field_type_id" field.
func (m *FieldIndexMutation) SetFieldTypeID(u uuid.UUID) {
	m.field_type_id = &u
}

// FieldTypeID returns the value of the "field_type_id" field in the mutation.
func (m *FieldIndexMutation) FieldTypeID() (r uuid.UUID, exists bool) {
	v := m.field_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldTypeID returns the old "field_type_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldFieldTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldTypeID: %w", err)
	}
	return oldValue.FieldTypeID, nil
}

// ResetFieldTypeID resets all changes to the "field_type_id" field.
func (m *FieldIndexMutation) ResetFieldTypeID() {
	m.field_type_id = nil
}

// SetFieldTypeName sets the "field_type_name" field.
func (m *FieldIndexMutation) SetFieldTypeName(s string) {
	m.field_type_name = &s
}

// FieldTypeName returns the value of the "field_type_name" field in the mutation.
func (m *FieldIndexMutation) FieldTypeName() (r string, exists bool) {
	v := m.field_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldTypeName returns the old "field_type_name" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldFieldTypeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldTypeName: %w", err)
	}
	return oldValue.FieldTypeName, nil
}

// ResetFieldTypeName resets all changes to the "field_type_name" field.
func (m *FieldIndexMutation) ResetFieldTypeName() {
	m.field_type_name = nil
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (m *FieldIndexMutation) SetFieldDefinitionID(u uuid.UUID) {
	m.field_definition_id = &u
}

// FieldDefinitionID returns the value of the "field_definition_id" field in the mutation.
func (m *FieldIndexMutation) FieldDefinitionID() (r uuid.UUID, exists bool) {
	v := m.field_definition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldDefinitionID returns the old "field_definition_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldFieldDefinitionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldDefinitionID: %w", err)
	}
	return oldValue.FieldDefinitionID, nil
}

// ResetFieldDefinitionID resets all changes to the "field_definition_id" field.
func (m *FieldIndexMutation) ResetFieldDefinitionID() {
	m.field_definition_id = nil
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (m *FieldIndexMutation) SetFieldDefinitionName(s string) {
	m.field_definition_name = &s
}

// FieldDefinitionName returns the value of the "field_definition_name" field in the mutation.
func (m *FieldIndexMutation) FieldDefinitionName() (r string, exists bool) {
	v := m.field_definition_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldDefinitionName returns the old "field_definition_name" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldFieldDefinitionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldDefinitionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldDefinitionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldDefinitionName: %w", err)
	}
	return oldValue.FieldDefinitionName, nil
}

// ResetFieldDefinitionName resets all changes to the "field_definition_name" field.
func (m *FieldIndexMutation) ResetFieldDefinitionName() {
	m.field_definition_name = nil
}

// SetContentID sets the "content_id" field.
func (m *FieldIndexMutation) SetContentID(u uuid.UUID) {
	m.content_id = &u
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *FieldIndexMutation) ContentID() (r uuid.UUID, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldContentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *FieldIndexMutation) ResetContentID() {
	m.content_id = nil
}

// SetContentLocaleID sets the "content_locale_id" field.
func (m *FieldIndexMutation) SetContentLocaleID(u uuid.UUID) {
	m.content_locale_id = &u
}

// ContentLocaleID returns the value of the "content_locale_id" field in the mutation.
func (m *FieldIndexMutation) ContentLocaleID() (r uuid.UUID, exists bool) {
	v := m.content_locale_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLocaleID returns the old "content_locale_id" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldContentLocaleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLocaleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLocaleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLocaleID: %w", err)
	}
	return oldValue.ContentLocaleID, nil
}

// ResetContentLocaleID resets all changes to the "content_locale_id" field.
func (m *FieldIndexMutation) ResetContentLocaleID() {
	m.content_locale_id = nil
}

// SetContentLocaleName sets the "content_locale_name" field.
func (m *FieldIndexMutation) SetContentLocaleName(s string) {
	m.content_locale_name = &s
}

// ContentLocaleName returns the value of the "content_locale_name" field in the mutation.
func (m *FieldIndexMutation) ContentLocaleName() (r string, exists bool) {
	v := m.content_locale_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLocaleName returns the old "content_locale_name" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldContentLocaleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLocaleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLocaleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLocaleName: %w", err)
	}
	return oldValue.ContentLocaleName, nil
}

// ResetContentLocaleName resets all changes to the "content_locale_name" field.
func (m *FieldIndexMutation) ResetContentLocaleName() {
	m.content_locale_name = nil
}

// SetVersion sets the "version" field.
func (m *FieldIndexMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *FieldIndexMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *FieldIndexMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *FieldIndexMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *FieldIndexMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetValueBoolean sets the "value_boolean" field.
func (m *FieldIndexMutation) SetValueBoolean(b bool) {
	m.value_boolean = &b
}

// ValueBoolean returns the value of the "value_boolean" field in the mutation.
func (m *FieldIndexMutation) ValueBoolean() (r bool, exists bool) {
	v := m.value_boolean
	if v == nil {
		return
	}
	return *v, true
}

// OldValueBoolean returns the old "value_boolean" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueBoolean(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueBoolean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueBoolean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueBoolean: %w", err)
	}
	return oldValue.ValueBoolean, nil
}

// ClearValueBoolean clears the value of the "value_boolean" field.
func (m *FieldIndexMutation) ClearValueBoolean() {
	m.value_boolean = nil
	m.clearedFields[fieldindex.FieldValueBoolean] = struct{}{}
}

// ValueBooleanCleared returns if the "value_boolean" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueBooleanCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueBoolean]
	return ok
}

// ResetValueBoolean resets all changes to the "value_boolean" field.
func (m *FieldIndexMutation) ResetValueBoolean() {
	m.value_boolean = nil
	delete(m.clearedFields, fieldindex.FieldValueBoolean)
}

// SetValueDatetime sets the "value_datetime" field.
func (m *FieldIndexMutation) SetValueDatetime(t time.Time) {
	m.value_datetime = &t
}

// ValueDatetime returns the value of the "value_datetime" field in the mutation.
func (m *FieldIndexMutation) ValueDatetime() (r time.Time, exists bool) {
	v := m.value_datetime
	if v == nil {
		return
	}
	return *v, true
}

// OldValueDatetime returns the old "value_datetime" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueDatetime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueDatetime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueDatetime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueDatetime: %w", err)
	}
	return oldValue.ValueDatetime, nil
}

// ClearValueDatetime clears the value of the "value_datetime" field.
func (m *FieldIndexMutation) ClearValueDatetime() {
	m.value_datetime = nil
	m.clearedFields[fieldindex.FieldValueDatetime] = struct{}{}
}

// ValueDatetimeCleared returns if the "value_datetime" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueDatetimeCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueDatetime]
	return ok
}

// ResetValueDatetime resets all changes to the "value_datetime" field.
func (m *FieldIndexMutation) ResetValueDatetime() {
	m.value_datetime = nil
	delete(m.clearedFields, fieldindex.FieldValueDatetime)
}

// SetValueNumber sets the "value_number" field.
func (m *FieldIndexMutation) SetValueNumber(f float64) {
	m.value_number = &f
	m.addvalue_number = nil
}

// ValueNumber returns the value of the "value_number" field in the mutation.
func (m *FieldIndexMutation) ValueNumber() (r float64, exists bool) {
	v := m.value_number
	if v == nil {
		return
	}
	return *v, true
}

// OldValueNumber returns the old "value_number" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueNumber(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueNumber: %w", err)
	}
	return oldValue.ValueNumber, nil
}

// AddValueNumber adds f to the "value_number" field.
func (m *FieldIndexMutation) AddValueNumber(f float64) {
	if m.addvalue_number != nil {
		*m.addvalue_number += f
	} else {
		m.addvalue_number = &f
	}
}

// AddedValueNumber returns the value that was added to the "value_number" field in this mutation.
func (m *FieldIndexMutation) AddedValueNumber() (r float64, exists bool) {
	v := m.addvalue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearValueNumber clears the value of the "value_number" field.
func (m *FieldIndexMutation) ClearValueNumber() {
	m.value_number = nil
	m.addvalue_number = nil
	m.clearedFields[fieldindex.FieldValueNumber] = struct{}{}
}

// ValueNumberCleared returns if the "value_number" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueNumberCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueNumber]
	return ok
}

// ResetValueNumber resets all changes to the "value_number" field.
func (m *FieldIndexMutation) ResetValueNumber() {
	m.value_number = nil
	m.addvalue_number = nil
	delete(m.clearedFields, fieldindex.FieldValueNumber)
}

// SetValueRelatedContent sets the "value_related_content" field.
func (m *FieldIndexMutation) SetValueRelatedContent(s string) {
	m.value_related_content = &s
}

// ValueRelatedContent returns the value of the "value_related_content" field in the mutation.
func (m *FieldIndexMutation) ValueRelatedContent() (r string, exists bool) {
	v := m.value_related_content
	if v == nil {
		return
	}
	return *v, true
}

// OldValueRelatedContent returns the old "value_related_content" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueRelatedContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueRelatedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueRelatedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueRelatedContent: %w", err)
	}
	return oldValue.ValueRelatedContent, nil
}

// ClearValueRelatedContent clears the value of the "value_related_content" field.
func (m *FieldIndexMutation) ClearValueRelatedContent() {
	m.value_related_content = nil
	m.clearedFields[fieldindex.FieldValueRelatedContent] = struct{}{}
}

// ValueRelatedContentCleared returns if the "value_related_content" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueRelatedContentCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueRelatedContent]
	return ok
}

// ResetValueRelatedContent resets all changes to the "value_related_content" field.
func (m *FieldIndexMutation) ResetValueRelatedContent() {
	m.value_related_content = nil
	delete(m.clearedFields, fieldindex.FieldValueRelatedContent)
}

// SetValueRichText sets the "value_rich_text" field.
func (m *FieldIndexMutation) SetValueRichText(s string) {
	m.value_rich_text = &s
}

// ValueRichText returns the value of the "value_rich_text" field in the mutation.
func (m *FieldIndexMutation) ValueRichText() (r string, exists bool) {
	v := m.value_rich_text
	if v == nil {
		return
	}
	return *v, true
}

// OldValueRichText returns the old "value_rich_text" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueRichText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueRichText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueRichText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueRichText: %w", err)
	}
	return oldValue.ValueRichText, nil
}

// ClearValueRichText clears the value of the "value_rich_text" field.
func (m *FieldIndexMutation) ClearValueRichText() {
	m.value_rich_text = nil
	m.clearedFields[fieldindex.FieldValueRichText] = struct{}{}
}

// ValueRichTextCleared returns if the "value_rich_text" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueRichTextCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueRichText]
	return ok
}

// ResetValueRichText resets all changes to the "value_rich_text" field.
func (m *FieldIndexMutation) ResetValueRichText() {
	m.value_rich_text = nil
	delete(m.clearedFields, fieldindex.FieldValueRichText)
}

// SetValueSelect sets the "value_select" field.
func (m *FieldIndexMutation) SetValueSelect(s string) {
	m.value_select = &s
}

// ValueSelect returns the value of the "value_select" field in the mutation.
func (m *FieldIndexMutation) ValueSelect() (r string, exists bool) {
	v := m.value_select
	if v == nil {
		return
	}
	return *v, true
}

// OldValueSelect returns the old "value_select" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueSelect(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueSelect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueSelect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueSelect: %w", err)
	}
	return oldValue.ValueSelect, nil
}

// ClearValueSelect clears the value of the "value_select" field.
func (m *FieldIndexMutation) ClearValueSelect() {
	m.value_select = nil
	m.clearedFields[fieldindex.FieldValueSelect] = struct{}{}
}

// ValueSelectCleared returns if the "value_select" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueSelectCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueSelect]
	return ok
}

// ResetValueSelect resets all changes to the "value_select" field.
func (m *FieldIndexMutation) ResetValueSelect() {
	m.value_select = nil
	delete(m.clearedFields, fieldindex.FieldValueSelect)
}

// SetValueString sets the "value_string" field.
func (m *FieldIndexMutation) SetValueString(s string) {
	m.value_string = &s
}

// ValueString returns the value of the "value_string" field in the mutation.
func (m *FieldIndexMutation) ValueString() (r string, exists bool) {
	v := m.value_string
	if v == nil {
		return
	}
	return *v, true
}

// OldValueString returns the old "value_string" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueString(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueString is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueString requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueString: %w", err)
	}
	return oldValue.ValueString, nil
}

// ClearValueString clears the value of the "value_string" field.
func (m *FieldIndexMutation) ClearValueString() {
	m.value_string = nil
	m.clearedFields[fieldindex.FieldValueString] = struct{}{}
}

// ValueStringCleared returns if the "value_string" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueStringCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueString]
	return ok
}

// ResetValueString resets all changes to the "value_string" field.
func (m *FieldIndexMutation) ResetValueString() {
	m.value_string = nil
	delete(m.clearedFields, fieldindex.FieldValueString)
}

// SetValueTags sets the "value_tags" field.
func (m *FieldIndexMutation) SetValueTags(s string) {
	m.value_tags = &s
}

// ValueTags returns the value of the "value_tags" field in the mutation.
func (m *FieldIndexMutation) ValueTags() (r string, exists bool) {
	v := m.value_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldValueTags returns the old "value_tags" field's value of the FieldIndex entity.
// If the FieldIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldIndexMutation) OldValueTags(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueTags: %w", err)
	}
	return oldValue.ValueTags, nil
}

// ClearValueTags clears the value of the "value_tags" field.
func (m *FieldIndexMutation) ClearValueTags() {
	m.value_tags = nil
	m.clearedFields[fieldindex.FieldValueTags] = struct{}{}
}

// ValueTagsCleared returns if the "value_tags" field was cleared in this mutation.
func (m *FieldIndexMutation) ValueTagsCleared() bool {
	_, ok := m.clearedFields[fieldindex.FieldValueTags]
	return ok
}

// ResetValueTags resets all changes to the "value_tags" field.
func (m *FieldIndexMutation) ResetValueTags() {
	m.value_tags = nil
	delete(m.clearedFields, fieldindex.FieldValueTags)
}

// Where appends a list predicates to the FieldIndexMutation builder.
func (m *FieldIndexMutation) Where(ps ...predicate.FieldIndex) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldIndexMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldIndexMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldIndex, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldIndexMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldIndexMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldIndex).
func (m *FieldIndexMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldIndexMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.realm_id != nil {
		fields = append(fields, fieldindex.FieldRealmID)
	}
	if m.status != nil {
		fields = append(fields, fieldindex.FieldStatus)
	}
	if m.content_type_id != nil {
		fields = append(fields, fieldindex.FieldContentTypeID)
	}
	if m.content_type_name != nil {
		fields = append(fields, fieldindex.FieldContentTypeName)
	}
	if m.language_id != nil {
		fields = append(fields, fieldindex.FieldLanguageID)
	}
	if m.language_code != nil {
		fields = append(fields, fieldindex.FieldLanguageCode)
	}
	if m.language_is_default != nil {
		fields = append(fields, fieldindex.FieldLanguageIsDefault)
	}
	if m.field_type_id != nil {
		fields = append(fields, fieldindex.FieldFieldTypeID)
	}
	if m.field_type_name != nil {
		fields = append(fields, fieldindex.FieldFieldTypeName)
	}
	if m.field_definition_id != nil {
		fields = append(fields, fieldindex.FieldFieldDefinitionID)
	}
	if m.field_definition_name != nil {
		fields = append(fields, fieldindex.FieldFieldDefinitionName)
	}
	if m.content_id != nil {
		fields = append(fields, fieldindex.FieldContentID)
	}
	if m.content_locale_id != nil {
		fields = append(fields, fieldindex.FieldContentLocaleID)
	}
	if m.content_locale_name != nil {
		fields = append(fields, fieldindex.FieldContentLocaleName)
	}
	if m.version != nil {
		fields = append(fields, fieldindex.FieldVersion)
	}
	if m.value_boolean != nil {
		fields = append(fields, fieldindex.FieldValueBoolean)
	}
	if m.value_datetime != nil {
		fields = append(fields, fieldindex.FieldValueDatetime)
	}
	if m.value_number != nil {
		fields = append(fields, fieldindex.FieldValueNumber)
	}
	if m.value_related_content != nil {
		fields = append(fields, fieldindex.FieldValueRelatedContent)
	}
	if m.value_rich_text != nil {
		fields = append(fields, fieldindex.FieldValueRichText)
	}
	if m.value_select != nil {
		fields = append(fields, fieldindex.FieldValueSelect)
	}
	if m.value_string != nil {
		fields = append(fields, fieldindex.FieldValueString)
	}
	if m.value_tags != nil {
		fields = append(fields, fieldindex.FieldValueTags)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldIndexMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldindex.FieldRealmID:
		return m.RealmID()
	case fieldindex.FieldStatus:
		return m.Status()
	case fieldindex.FieldContentTypeID:
		return m.ContentTypeID()
	case fieldindex.FieldContentTypeName:
		return m.ContentTypeName()
	case fieldindex.FieldLanguageID:
		return m.LanguageID()
	case fieldindex.FieldLanguageCode:
		return m.LanguageCode()
	case fieldindex.FieldLanguageIsDefault:
		return m.LanguageIsDefault()
	case fieldindex.FieldFieldTypeID:
		return m.FieldTypeID()
	case fieldindex.FieldFieldTypeName:
		return m.FieldTypeName()
	case fieldindex.FieldFieldDefinitionID:
		return m.FieldDefinitionID()
	case fieldindex.FieldFieldDefinitionName:
		return m.FieldDefinitionName()
	case fieldindex.FieldContentID:
		return m.ContentID()
	case fieldindex.FieldContentLocaleID:
		return m.ContentLocaleID()
	case fieldindex.FieldContentLocaleName:
		return m.ContentLocaleName()
	case fieldindex.FieldVersion:
		return m.Version()
	case fieldindex.FieldValueBoolean:
		return m.ValueBoolean()
	case fieldindex.FieldValueDatetime:
		return m.ValueDatetime()
	case fieldindex.FieldValueNumber:
		return m.ValueNumber()
	case fieldindex.FieldValueRelatedContent:
		return m.ValueRelatedContent()
	case fieldindex.FieldValueRichText:
		return m.ValueRichText()
	case fieldindex.FieldValueSelect:
		return m.ValueSelect()
	case fieldindex.FieldValueString:
		return m.ValueString()
	case fieldindex.FieldValueTags:
		return m.ValueTags()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldIndexMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldindex.FieldRealmID:
		return m.OldRealmID(ctx)
	case fieldindex.FieldStatus:
		return m.OldStatus(ctx)
	case fieldindex.FieldContentTypeID:
		return m.OldContentTypeID(ctx)
	case fieldindex.FieldContentTypeName:
		return m.OldContentTypeName(ctx)
	case fieldindex.FieldLanguageID:
		return m.OldLanguageID(ctx)
	case fieldindex.FieldLanguageCode:
		return m.OldLanguageCode(ctx)
	case fieldindex.FieldLanguageIsDefault:
		return m.OldLanguageIsDefault(ctx)
	case fieldindex.FieldFieldTypeID:
		return m.OldFieldTypeID(ctx)
	case fieldindex.FieldFieldTypeName:
		return m.OldFieldTypeName(ctx)
	case fieldindex.FieldFieldDefinitionID:
		return m.OldFieldDefinitionID(ctx)
	case fieldindex.FieldFieldDefinitionName:
		return m.OldFieldDefinitionName(ctx)
	case fieldindex.FieldContentID:
		return m.OldContentID(ctx)
	case fieldindex.FieldContentLocaleID:
		return m.OldContentLocaleID(ctx)
	case fieldindex.FieldContentLocaleName:
		return m.OldContentLocaleName(ctx)
	case fieldindex.FieldVersion:
		return m.OldVersion(ctx)
	case fieldindex.FieldValueBoolean:
		return m.OldValueBoolean(ctx)
	case fieldindex.FieldValueDatetime:
		return m.OldValueDatetime(ctx)
	case fieldindex.FieldValueNumber:
		return m.OldValueNumber(ctx)
	case fieldindex.FieldValueRelatedContent:
		return m.OldValueRelatedContent(ctx)
	case fieldindex.FieldValueRichText:
		return m.OldValueRichText(ctx)
	case fieldindex.FieldValueSelect:
		return m.OldValueSelect(ctx)
	case fieldindex.FieldValueString:
		return m.OldValueString(ctx)
	case fieldindex.FieldValueTags:
		return m.OldValueTags(ctx)
	}
	return nil, fmt.Errorf("unknown FieldIndex field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldIndexMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldindex.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case fieldindex.FieldStatus:
		v, ok := value.(fieldindex.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fieldindex.FieldContentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeID(v)
		return nil
	case fieldindex.FieldContentTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeName(v)
		return nil
	case fieldindex.FieldLanguageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageID(v)
		return nil
	case fieldindex.FieldLanguageCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageCode(v)
		return nil
	case fieldindex.FieldLanguageIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageIsDefault(v)
		return nil
	case fieldindex.FieldFieldTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldTypeID(v)
		return nil
	case fieldindex.FieldFieldTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldTypeName(v)
		return nil
	case fieldindex.FieldFieldDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldDefinitionID(v)
		return nil
	case fieldindex.FieldFieldDefinitionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldDefinitionName(v)
		return nil
	case fieldindex.FieldContentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case fieldindex.FieldContentLocaleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLocaleID(v)
		return nil
	case fieldindex.FieldContentLocaleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLocaleName(v)
		return nil
	case fieldindex.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case fieldindex.FieldValueBoolean:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueBoolean(v)
		return nil
	case fieldindex.FieldValueDatetime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueDatetime(v)
		return nil
	case fieldindex.FieldValueNumber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueNumber(v)
		return nil
	case fieldindex.FieldValueRelatedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueRelatedContent(v)
		return nil
	case fieldindex.FieldValueRichText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueRichText(v)
		return nil
	case fieldindex.FieldValueSelect:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueSelect(v)
		return nil
	case fieldindex.FieldValueString:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueString(v)
		return nil
	case fieldindex.FieldValueTags:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueTags(v)
		return nil
	}
	return fmt.Errorf("unknown FieldIndex field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldIndexMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, fieldindex.FieldVersion)
	}
	if m.addvalue_number != nil {
		fields = append(fields, fieldindex.FieldValueNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldIndexMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fieldindex.FieldVersion:
		return m.AddedVersion()
	case fieldindex.FieldValueNumber:
		return m.AddedValueNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldIndexMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fieldindex.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case fieldindex.FieldValueNumber:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValueNumber(v)
		return nil
	}
	return fmt.Errorf("unknown FieldIndex numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldIndexMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldindex.FieldRealmID) {
		fields = append(fields, fieldindex.FieldRealmID)
	}
	if m.FieldCleared(fieldindex.FieldLanguageID) {
		fields = append(fields, fieldindex.FieldLanguageID)
	}
	if m.FieldCleared(fieldindex.FieldLanguageCode) {
		fields = append(fields, fieldindex.FieldLanguageCode)
	}
	if m.FieldCleared(fieldindex.FieldValueBoolean) {
		fields = append(fields, fieldindex.FieldValueBoolean)
	}
	if m.FieldCleared(fieldindex.FieldValueDatetime) {
		fields = append(fields, fieldindex.FieldValueDatetime)
	}
	if m.FieldCleared(fieldindex.FieldValueNumber) {
		fields = append(fields, fieldindex.FieldValueNumber)
	}
	if m.FieldCleared(fieldindex.FieldValueRelatedContent) {
		fields = append(fields, fieldindex.FieldValueRelatedContent)
	}
	if m.FieldCleared(fieldindex.FieldValueRichText) {
		fields = append(fields, fieldindex.FieldValueRichText)
	}
	if m.FieldCleared(fieldindex.FieldValueSelect) {
		fields = append(fields, fieldindex.FieldValueSelect)
	}
	if m.FieldCleared(fieldindex.FieldValueString) {
		fields = append(fields, fieldindex.FieldValueString)
	}
	if m.FieldCleared(fieldindex.FieldValueTags) {
		fields = append(fields, fieldindex.FieldValueTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldIndexMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldIndexMutation) ClearField(name string) error {
	switch name {
	case fieldindex.FieldRealmID:
		m.ClearRealmID()
		return nil
	case fieldindex.FieldLanguageID:
		m.ClearLanguageID()
		return nil
	case fieldindex.FieldLanguageCode:
		m.ClearLanguageCode()
		return nil
	case fieldindex.FieldValueBoolean:
		m.ClearValueBoolean()
		return nil
	case fieldindex.FieldValueDatetime:
		m.ClearValueDatetime()
		return nil
	case fieldindex.FieldValueNumber:
		m.ClearValueNumber()
		return nil
	case fieldindex.FieldValueRelatedContent:
		m.ClearValueRelatedContent()
		return nil
	case fieldindex.FieldValueRichText:
		m.ClearValueRichText()
		return nil
	case fieldindex.FieldValueSelect:
		m.ClearValueSelect()
		return nil
	case fieldindex.FieldValueString:
		m.ClearValueString()
		return nil
	case fieldindex.FieldValueTags:
		m.ClearValueTags()
		return nil
	}
	return fmt.Errorf("unknown FieldIndex nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldIndexMutation) ResetField(name string) error {
	switch name {
	case fieldindex.FieldRealmID:
		m.ResetRealmID()
		return nil
	case fieldindex.FieldStatus:
		m.ResetStatus()
		return nil
	case fieldindex.FieldContentTypeID:
		m.ResetContentTypeID()
		return nil
	case fieldindex.FieldContentTypeName:
		m.ResetContentTypeName()
		return nil
	case fieldindex.FieldLanguageID:
		m.ResetLanguageID()
		return nil
	case fieldindex.FieldLanguageCode:
		m.ResetLanguageCode()
		return nil
	case fieldindex.FieldLanguageIsDefault:
		m.ResetLanguageIsDefault()
		return nil
	case fieldindex.FieldFieldTypeID:
		m.ResetFieldTypeID()
		return nil
	case fieldindex.FieldFieldTypeName:
		m.ResetFieldTypeName()
		return nil
	case fieldindex.FieldFieldDefinitionID:
		m.ResetFieldDefinitionID()
		return nil
	case fieldindex.FieldFieldDefinitionName:
		m.ResetFieldDefinitionName()
		return nil
	case fieldindex.FieldContentID:
		m.ResetContentID()
		return nil
	case fieldindex.FieldContentLocaleID:
		m.ResetContentLocaleID()
		return nil
	case fieldindex.FieldContentLocaleName:
		m.ResetContentLocaleName()
		return nil
	case fieldindex.FieldVersion:
		m.ResetVersion()
		return nil
	case fieldindex.FieldValueBoolean:
		m.ResetValueBoolean()
		return nil
	case fieldindex.FieldValueDatetime:
		m.ResetValueDatetime()
		return nil
	case fieldindex.FieldValueNumber:
		m.ResetValueNumber()
		return nil
	case fieldindex.FieldValueRelatedContent:
		m.ResetValueRelatedContent()
		return nil
	case fieldindex.FieldValueRichText:
		m.ResetValueRichText()
		return nil
	case fieldindex.FieldValueSelect:
		m.ResetValueSelect()
		return nil
	case fieldindex.FieldValueString:
		m.ResetValueString()
		return nil
	case fieldindex.FieldValueTags:
		m.ResetValueTags()
		return nil
	}
	return fmt.Errorf("unknown FieldIndex field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldIndexMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldIndexMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldIndexMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldIndexMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldIndexMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldIndexMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldIndexMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FieldIndex unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldIndexMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FieldIndex edge %s", name)
}

// FieldTypeMutation represents an operation that mutates the FieldType nodes in the graph.
type FieldTypeMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	stream_id                *string
	version                  *int64
	addversion               *int64
	created_by               *string
	created_on               *time.Time
	updated_by               *string
	updated_on               *time.Time
	realm_id                 *uuid.UUID
	unique_name              *string
	unique_name_normalized   *string
	display_name             *string
	description              *string
	data_type                *fieldtype.DataType
	settings                 *[]byte
	clearedFields            map[string]struct{}
	field_definitions        map[uuid.UUID]struct{}
	removedfield_definitions map[uuid.UUID]struct{}
	clearedfield_definitions bool
	done                     bool
	oldValue                 func(context.Context) (*FieldType, error)
	predicates               []predicate.FieldType
}

var _ ent.Mutation = (*FieldTypeMutation)(nil)

// fieldtypeOption allows management of the mutation configuration using functional options.
type fieldtypeOption func(*FieldTypeMutation)

// newFieldTypeMutation creates new mutation for the FieldType entity.
func newFieldTypeMutation(c config, op Op, opts ...fieldtypeOption) *FieldTypeMutation {
	m := &FieldTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldTypeID sets the ID field of the mutation.
func withFieldTypeID(id uuid.UUID) fieldtypeOption {
	return func(m *FieldTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldType
		)
		m.oldValue = func(ctx context.Context) (*FieldType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldType sets the old FieldType of the mutation.
func withFieldType(node *FieldType) fieldtypeOption {
	return func(m *FieldTypeMutation) {
		m.oldValue = func(context.Context) (*FieldType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldType entities.
func (m *FieldTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *FieldTypeMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *FieldTypeMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *FieldTypeMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *FieldTypeMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *FieldTypeMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *FieldTypeMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *FieldTypeMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *FieldTypeMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *FieldTypeMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *FieldTypeMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *FieldTypeMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[fieldtype.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *FieldTypeMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[fieldtype.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *FieldTypeMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, fieldtype.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *FieldTypeMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *FieldTypeMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *FieldTypeMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *FieldTypeMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *FieldTypeMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *FieldTypeMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[fieldtype.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *FieldTypeMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[fieldtype.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *FieldTypeMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, fieldtype.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *FieldTypeMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *FieldTypeMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *FieldTypeMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *FieldTypeMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *FieldTypeMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *FieldTypeMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[fieldtype.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *FieldTypeMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[fieldtype.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *FieldTypeMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, fieldtype.FieldRealmID)
}

// SetUniqueName sets the "unique_name" field.
func (m *FieldTypeMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *FieldTypeMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *FieldTypeMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *FieldTypeMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *FieldTypeMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *FieldTypeMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *FieldTypeMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *FieldTypeMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *FieldTypeMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[fieldtype.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *FieldTypeMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[fieldtype.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *FieldTypeMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, fieldtype.FieldDisplayName)
}

// SetDescription sets the "description" field.
func (m *FieldTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *FieldTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *FieldTypeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[fieldtype.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *FieldTypeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[fieldtype.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *FieldTypeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, fieldtype.FieldDescription)
}

// SetDataType sets the "data_type" field.
func (m *FieldTypeMutation) SetDataType(ft fieldtype.DataType) {
	m.data_type = &ft
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *FieldTypeMutation) DataType() (r fieldtype.DataType, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldDataType(ctx context.Context) (v fieldtype.DataType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *FieldTypeMutation) ResetDataType() {
	m.data_type = nil
}

// SetSettings sets the "settings" field.
func (m *FieldTypeMutation) SetSettings(b []byte) {
	m.settings = &b
}

// Settings returns the value of the "settings" field in the mutation.
func (m *FieldTypeMutation) Settings() (r []byte, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the FieldType entity.
// If the FieldType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldTypeMutation) OldSettings(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *FieldTypeMutation) ResetSettings() {
	m.settings = nil
}

// AddFieldDefinitionIDs adds the "field_definitions" edge to the FieldDefinition entity by ids.
func (m *FieldTypeMutation) AddFieldDefinitionIDs(ids ...uuid.UUID) {
	if m.field_definitions == nil {
		m.field_definitions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.field_definitions[ids[i]] = struct{}{}
	}
}

// ClearFieldDefinitions clears the "field_definitions" edge to the FieldDefinition entity.
func (m *FieldTypeMutation) ClearFieldDefinitions() {
	m.clearedfield_definitions = true
}

// FieldDefinitionsCleared reports if the "field_definitions" edge to the FieldDefinition entity was cleared.
func (m *FieldTypeMutation) FieldDefinitionsCleared() bool {
	return m.clearedfield_definitions
}

// RemoveFieldDefinitionIDs removes the "field_definitions" edge to the FieldDefinition entity by IDs.
func (m *FieldTypeMutation) RemoveFieldDefinitionIDs(ids ...uuid.UUID) {
	if m.removedfield_definitions == nil {
		m.removedfield_definitions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.field_definitions, ids[i])
		m.removedfield_definitions[ids[i]] = struct{}{}
	}
}

// RemovedFieldDefinitions returns the removed IDs of the "field_definitions" edge to the FieldDefinition entity.
func (m *FieldTypeMutation) RemovedFieldDefinitionsIDs() (ids []uuid.UUID) {
	for id := range m.removedfield_definitions {
		ids = append(ids, id)
	}
	return
}

// FieldDefinitionsIDs returns the "field_definitions" edge IDs in the mutation.
func (m *FieldTypeMutation) FieldDefinitionsIDs() (ids []uuid.UUID) {
	for id := range m.field_definitions {
		ids = append(ids, id)
	}
	return
}

// ResetFieldDefinitions resets all changes to the "field_definitions" edge.
func (m *FieldTypeMutation) ResetFieldDefinitions() {
	m.field_definitions = nil
	m.clearedfield_definitions = false
	m.removedfield_definitions = nil
}

// Where appends a list predicates to the FieldTypeMutation builder.
func (m *FieldTypeMutation) Where(ps ...predicate.FieldType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldType).
func (m *FieldTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldTypeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.stream_id != nil {
		fields = append(fields, fieldtype.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, fieldtype.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, fieldtype.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, fieldtype.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, fieldtype.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, fieldtype.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, fieldtype.FieldRealmID)
	}
	if m.unique_name != nil {
		fields = append(fields, fieldtype.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, fieldtype.FieldUniqueNameNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, fieldtype.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, fieldtype.FieldDescription)
	}
	if m.data_type != nil {
		fields = append(fields, fieldtype.FieldDataType)
	}
	if m.settings != nil {
		fields = append(fields, fieldtype.FieldSettings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldtype.FieldStreamID:
		return m.StreamID()
	case fieldtype.FieldVersion:
		return m.Version()
	case fieldtype.FieldCreatedBy:
		return m.CreatedBy()
	case fieldtype.FieldCreatedOn:
		return m.CreatedOn()
	case fieldtype.FieldUpdatedBy:
		return m.UpdatedBy()
	case fieldtype.FieldUpdatedOn:
		return m.UpdatedOn()
	case fieldtype.FieldRealmID:
		return m.RealmID()
	case fieldtype.FieldUniqueName:
		return m.UniqueName()
	case fieldtype.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case fieldtype.FieldDisplayName:
		return m.DisplayName()
	case fieldtype.FieldDescription:
		return m.Description()
	case fieldtype.FieldDataType:
		return m.DataType()
	case fieldtype.FieldSettings:
		return m.Settings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldtype.FieldStreamID:
		return m.OldStreamID(ctx)
	case fieldtype.FieldVersion:
		return m.OldVersion(ctx)
	case fieldtype.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case fieldtype.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case fieldtype.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case fieldtype.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case fieldtype.FieldRealmID:
		return m.OldRealmID(ctx)
	case fieldtype.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case fieldtype.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case fieldtype.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case fieldtype.FieldDescription:
		return m.OldDescription(ctx)
	case fieldtype.FieldDataType:
		return m.OldDataType(ctx)
	case fieldtype.FieldSettings:
		return m.OldSettings(ctx)
	}
	return nil, fmt.Errorf("unknown FieldType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldtype.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case fieldtype.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case fieldtype.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case fieldtype.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case fieldtype.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case fieldtype.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case fieldtype.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case fieldtype.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case fieldtype.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case fieldtype.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case fieldtype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case fieldtype.FieldDataType:
		v, ok := value.(fieldtype.DataType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case fieldtype.FieldSettings:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	}
	return fmt.Errorf("unknown FieldType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldTypeMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, fieldtype.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldTypeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fieldtype.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fieldtype.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown FieldType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldTypeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldtype.FieldCreatedBy) {
		fields = append(fields, fieldtype.FieldCreatedBy)
	}
	if m.FieldCleared(fieldtype.FieldUpdatedBy) {
		fields = append(fields, fieldtype.FieldUpdatedBy)
	}
	if m.FieldCleared(fieldtype.FieldRealmID) {
		fields = append(fields, fieldtype.FieldRealmID)
	}
	if m.FieldCleared(fieldtype.FieldDisplayName) {
		fields = append(fields, fieldtype.FieldDisplayName)
	}
	if m.FieldCleared(fieldtype.FieldDescription) {
		fields = append(fields, fieldtype.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldTypeMutation) ClearField(name string) error {
	switch name {
	case fieldtype.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case fieldtype.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case fieldtype.FieldRealmID:
		m.ClearRealmID()
		return nil
	case fieldtype.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case fieldtype.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown FieldType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldTypeMutation) ResetField(name string) error {
	switch name {
	case fieldtype.FieldStreamID:
		m.ResetStreamID()
		return nil
	case fieldtype.FieldVersion:
		m.ResetVersion()
		return nil
	case fieldtype.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case fieldtype.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case fieldtype.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case fieldtype.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case fieldtype.FieldRealmID:
		m.ResetRealmID()
		return nil
	case fieldtype.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case fieldtype.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case fieldtype.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case fieldtype.FieldDescription:
		m.ResetDescription()
		return nil
	case fieldtype.FieldDataType:
		m.ResetDataType()
		return nil
	case fieldtype.FieldSettings:
		m.ResetSettings()
		return nil
	}
	return fmt.Errorf("unknown FieldType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.field_definitions != nil {
		edges = append(edges, fieldtype.EdgeFieldDefinitions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fieldtype.EdgeFieldDefinitions:
		ids := make([]ent.Value, 0, len(m.field_definitions))
		for id := range m.field_definitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfield_definitions != nil {
		edges = append(edges, fieldtype.EdgeFieldDefinitions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fieldtype.EdgeFieldDefinitions:
		ids := make([]ent.Value, 0, len(m.removedfield_definitions))
		for id := range m.removedfield_definitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfield_definitions {
		edges = append(edges, fieldtype.EdgeFieldDefinitions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case fieldtype.EdgeFieldDefinitions:
		return m.clearedfield_definitions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldTypeMutation) ResetEdge(name string) error {
	switch name {
	case fieldtype.EdgeFieldDefinitions:
		m.ResetFieldDefinitions()
		return nil
	}
	return fmt.Errorf("unknown FieldType edge %s", name)
}

// LanguageMutation represents an operation that mutates the Language nodes in the graph.
type LanguageMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	stream_id       *string
	version         *int64
	addversion      *int64
	created_by      *string
	created_on      *time.Time
	updated_by      *string
	updated_on      *time.Time
	realm_id        *uuid.UUID
	code            *string
	code_normalized *string
	is_default      *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Language, error)
	predicates      []predicate.Language
}

var _ ent.Mutation = (*LanguageMutation)(nil)

// languageOption allows management of the mutation configuration using functional options.
type languageOption func(*LanguageMutation)

// newLanguageMutation creates new mutation for the Language entity.
func newLanguageMutation(c config, op Op, opts ...languageOption) *LanguageMutation {
	m := &LanguageMutation{
		config:        c,
		op:            op,
		typ:           TypeLanguage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLanguageID sets the ID field of the mutation.
func withLanguageID(id uuid.UUID) languageOption {
	return func(m *LanguageMutation) {
		var (
			err   error
			once  sync.Once
			value *Language
		)
		m.oldValue = func(ctx context.Context) (*Language, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Language.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLanguage sets the old Language of the mutation.
func withLanguage(node *Language) languageOption {
	return func(m *LanguageMutation) {
		m.oldValue = func(context.Context) (*Language, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LanguageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LanguageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Language entities.
func (m *LanguageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LanguageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LanguageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Language.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *LanguageMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *LanguageMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *LanguageMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *LanguageMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *LanguageMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *LanguageMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *LanguageMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *LanguageMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *LanguageMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *LanguageMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *LanguageMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[language.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *LanguageMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[language.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *LanguageMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, language.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *LanguageMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *LanguageMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *LanguageMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *LanguageMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *LanguageMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *LanguageMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[language.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *LanguageMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[language.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *LanguageMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, language.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *LanguageMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *LanguageMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *LanguageMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *LanguageMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *LanguageMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *LanguageMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[language.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *LanguageMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[language.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *LanguageMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, language.FieldRealmID)
}

// SetCode sets the "code" field.
func (m *LanguageMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *LanguageMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *LanguageMutation) ResetCode() {
	m.code = nil
}

// SetCodeNormalized sets the "code_normalized" field.
func (m *LanguageMutation) SetCodeNormalized(s string) {
	m.code_normalized = &s
}

// CodeNormalized returns the value of the "code_normalized" field in the mutation.
func (m *LanguageMutation) CodeNormalized() (r string, exists bool) {
	v := m.code_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeNormalized returns the old "code_normalized" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldCodeNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeNormalized: %w", err)
	}
	return oldValue.CodeNormalized, nil
}

// ResetCodeNormalized resets all changes to the "code_normalized" field.
func (m *LanguageMutation) ResetCodeNormalized() {
	m.code_normalized = nil
}

// SetIsDefault sets the "is_default" field.
func (m *LanguageMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *LanguageMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Language entity.
// If the Language object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LanguageMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *LanguageMutation) ResetIsDefault() {
	m.is_default = nil
}

// Where appends a list predicates to the LanguageMutation builder.
func (m *LanguageMutation) Where(ps ...predicate.Language) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LanguageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LanguageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Language, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LanguageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LanguageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Language).
func (m *LanguageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LanguageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.stream_id != nil {
		fields = append(fields, language.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, language.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, language.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, language.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, language.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, language.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, language.FieldRealmID)
	}
	if m.code != nil {
		fields = append(fields, language.FieldCode)
	}
	if m.code_normalized != nil {
		fields = append(fields, language.FieldCodeNormalized)
	}
	if m.is_default != nil {
		fields = append(fields, language.FieldIsDefault)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LanguageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case language.FieldStreamID:
		return m.StreamID()
	case language.FieldVersion:
		return m.Version()
	case language.FieldCreatedBy:
		return m.CreatedBy()
	case language.FieldCreatedOn:
		return m.CreatedOn()
	case language.FieldUpdatedBy:
		return m.UpdatedBy()
	case language.FieldUpdatedOn:
		return m.UpdatedOn()
	case language.FieldRealmID:
		return m.RealmID()
	case language.FieldCode:
		return m.Code()
	case language.FieldCodeNormalized:
		return m.CodeNormalized()
	case language.FieldIsDefault:
		return m.IsDefault()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LanguageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case language.FieldStreamID:
		return m.OldStreamID(ctx)
	case language.FieldVersion:
		return m.OldVersion(ctx)
	case language.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case language.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case language.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case language.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case language.FieldRealmID:
		return m.OldRealmID(ctx)
	case language.FieldCode:
		return m.OldCode(ctx)
	case language.FieldCodeNormalized:
		return m.OldCodeNormalized(ctx)
	case language.FieldIsDefault:
		return m.OldIsDefault(ctx)
	}
	return nil, fmt.Errorf("unknown Language field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LanguageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case language.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case language.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case language.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case language.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case language.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case language.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case language.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case language.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case language.FieldCodeNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeNormalized(v)
		return nil
	case language.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	}
	return fmt.Errorf("unknown Language field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LanguageMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, language.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LanguageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case language.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LanguageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case language.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Language numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LanguageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(language.FieldCreatedBy) {
		fields = append(fields, language.FieldCreatedBy)
	}
	if m.FieldCleared(language.FieldUpdatedBy) {
		fields = append(fields, language.FieldUpdatedBy)
	}
	if m.FieldCleared(language.FieldRealmID) {
		fields = append(fields, language.FieldRealmID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LanguageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LanguageMutation) ClearField(name string) error {
	switch name {
	case language.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case language.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case language.FieldRealmID:
		m.ClearRealmID()
		return nil
	}
	return fmt.Errorf("unknown Language nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LanguageMutation) ResetField(name string) error {
	switch name {
	case language.FieldStreamID:
		m.ResetStreamID()
		return nil
	case language.FieldVersion:
		m.ResetVersion()
		return nil
	case language.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case language.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case language.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case language.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case language.FieldRealmID:
		m.ResetRealmID()
		return nil
	case language.FieldCode:
		m.ResetCode()
		return nil
	case language.FieldCodeNormalized:
		m.ResetCodeNormalized()
		return nil
	case language.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	}
	return fmt.Errorf("unknown Language field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LanguageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LanguageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LanguageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LanguageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LanguageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LanguageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LanguageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Language unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LanguageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Language edge %s", name)
}

// PublishedContentMutation represents an operation that mutates the PublishedContent nodes in the graph.
type PublishedContentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	content_id             *uuid.UUID
	content_type_id        *uuid.UUID
	realm_id               *uuid.UUID
	language_id            *uuid.UUID
	unique_name            *string
	unique_name_normalized *string
	display_name           *string
	description            *string
	field_values           *map[string]string
	version                *int64
	addversion             *int64
	published_by           *string
	published_on           *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PublishedContent, error)
	predicates             []predicate.PublishedContent
}

var _ ent.Mutation = (*PublishedContentMutation)(nil)

// publishedcontentOption allows management of the mutation configuration using functional options.
type publishedcontentOption func(*PublishedContentMutation)

// newPublishedContentMutation creates new mutation for the PublishedContent entity.
func newPublishedContentMutation(c config, op Op, opts ...publishedcontentOption) *PublishedContentMutation {
	m := &PublishedContentMutation{
		config:        c,
		op:            op,
		typ:           TypePublishedContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPublishedContentID sets the ID field of the mutation.
func withPublishedContentID(id uuid.UUID) publishedcontentOption {
	return func(m *PublishedContentMutation) {
		var (
			err   error
			once  sync.Once
			value *PublishedContent
		)
		m.oldValue = func(ctx context.Context) (*PublishedContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PublishedContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPublishedContent sets the old PublishedContent of the mutation.
func withPublishedContent(node *PublishedContent) publishedcontentOption {
	return func(m *PublishedContentMutation) {
		m.oldValue = func(context.Context) (*PublishedContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PublishedContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PublishedContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PublishedContent entities.
func (m *PublishedContentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PublishedContentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PublishedContentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PublishedContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentID sets the "content_id" field.
func (m *PublishedContentMutation) SetContentID(u uuid.UUID) {
	m.content_id = &u
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *PublishedContentMutation) ContentID() (r uuid.UUID, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldContentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *PublishedContentMutation) ResetContentID() {
	m.content_id = nil
}

// SetContentTypeID sets the "content_type_id" field.
func (m *PublishedContentMutation) SetContentTypeID(u uuid.UUID) {
	m.content_type_id = &u
}

// ContentTypeID returns the value of the "content_type_id" field in the mutation.
func (m *PublishedContentMutation) ContentTypeID() (r uuid.UUID, exists bool) {
	v := m.content_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeID returns the old "content_type_id" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldContentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeID: %w", err)
	}
	return oldValue.ContentTypeID, nil
}

// ResetContentTypeID resets all changes to the "content_type_id" field.
func (m *PublishedContentMutation) ResetContentTypeID() {
	m.content_type_id = nil
}

// SetRealmID sets the "realm_id" field.
func (m *PublishedContentMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *PublishedContentMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *PublishedContentMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[publishedcontent.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *PublishedContentMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *PublishedContentMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, publishedcontent.FieldRealmID)
}

// SetLanguageID sets the "language_id" field.
func (m *PublishedContentMutation) SetLanguageID(u uuid.UUID) {
	m.language_id = &u
}

// LanguageID returns the value of the "language_id" field in the mutation.
func (m *PublishedContentMutation) LanguageID() (r uuid.UUID, exists bool) {
	v := m.language_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageID returns the old "language_id" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldLanguageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageID: %w", err)
	}
	return oldValue.LanguageID, nil
}

// ClearLanguageID clears the value of the "language_id" field.
func (m *PublishedContentMutation) ClearLanguageID() {
	m.language_id = nil
	m.clearedFields[publishedcontent.FieldLanguageID] = struct{}{}
}

// LanguageIDCleared returns if the "language_id" field was cleared in this mutation.
func (m *PublishedContentMutation) LanguageIDCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldLanguageID]
	return ok
}

// ResetLanguageID resets all changes to the "language_id" field.
func (m *PublishedContentMutation) ResetLanguageID() {
	m.language_id = nil
	delete(m.clearedFields, publishedcontent.FieldLanguageID)
}

// SetUniqueName sets the "unique_name" field.
func (m *PublishedContentMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *PublishedContentMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *PublishedContentMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *PublishedContentMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *PublishedContentMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *PublishedContentMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *PublishedContentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PublishedContentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *PublishedContentMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[publishedcontent.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *PublishedContentMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PublishedContentMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, publishedcontent.FieldDisplayName)
}

// SetDescription sets the "description" field.
func (m *PublishedContentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PublishedContentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PublishedContentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[publishedcontent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PublishedContentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PublishedContentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, publishedcontent.FieldDescription)
}

// SetFieldValues sets the "field_values" field.
func (m *PublishedContentMutation) SetFieldValues(value map[string]string) {
	m.field_values = &value
}

// FieldValues returns the value of the "field_values" field in the mutation.
func (m *PublishedContentMutation) FieldValues() (r map[string]string, exists bool) {
	v := m.field_values
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldValues returns the old "field_values" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldFieldValues(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldValues: %w", err)
	}
	return oldValue.FieldValues, nil
}

// ClearFieldValues clears the value of the "field_values" field.
func (m *PublishedContentMutation) ClearFieldValues() {
	m.field_values = nil
	m.clearedFields[publishedcontent.FieldFieldValues] = struct{}{}
}

// FieldValuesCleared returns if the "field_values" field was cleared in this mutation.
func (m *PublishedContentMutation) FieldValuesCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldFieldValues]
	return ok
}

// ResetFieldValues resets all changes to the "field_values" field.
func (m *PublishedContentMutation) ResetFieldValues() {
	m.field_values = nil
	delete(m.clearedFields, publishedcontent.FieldFieldValues)
}

// SetVersion sets the "version" field.
func (m *PublishedContentMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PublishedContentMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PublishedContentMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PublishedContentMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PublishedContentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPublishedBy sets the "published_by" field.
func (m *PublishedContentMutation) SetPublishedBy(s string) {
	m.published_by = &s
}

// PublishedBy returns the value of the "published_by" field in the mutation.
func (m *PublishedContentMutation) PublishedBy() (r string, exists bool) {
	v := m.published_by
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedBy returns the old "published_by" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldPublishedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedBy: %w", err)
	}
	return oldValue.PublishedBy, nil
}

// ClearPublishedBy clears the value of the "published_by" field.
func (m *PublishedContentMutation) ClearPublishedBy() {
	m.published_by = nil
	m.clearedFields[publishedcontent.FieldPublishedBy] = struct{}{}
}

// PublishedByCleared returns if the "published_by" field was cleared in this mutation.
func (m *PublishedContentMutation) PublishedByCleared() bool {
	_, ok := m.clearedFields[publishedcontent.FieldPublishedBy]
	return ok
}

// ResetPublishedBy resets all changes to the "published_by" field.
func (m *PublishedContentMutation) ResetPublishedBy() {
	m.published_by = nil
	delete(m.clearedFields, publishedcontent.FieldPublishedBy)
}

// SetPublishedOn sets the "published_on" field.
func (m *PublishedContentMutation) SetPublishedOn(t time.Time) {
	m.published_on = &t
}

// PublishedOn returns the value of the "published_on" field in the mutation.
func (m *PublishedContentMutation) PublishedOn() (r time.Time, exists bool) {
	v := m.published_on
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedOn returns the old "published_on" field's value of the PublishedContent entity.
// If the PublishedContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedContentMutation) OldPublishedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedOn: %w", err)
	}
	return oldValue.PublishedOn, nil
}

// ResetPublishedOn resets all changes to the "published_on" field.
func (m *PublishedContentMutation) ResetPublishedOn() {
	m.published_on = nil
}

// Where appends a list predicates to the PublishedContentMutation builder.
func (m *PublishedContentMutation) Where(ps ...predicate.PublishedContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PublishedContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PublishedContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PublishedContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PublishedContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PublishedContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PublishedContent).
func (m *PublishedContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PublishedContentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.content_id != nil {
		fields = append(fields, publishedcontent.FieldContentID)
	}
	if m.content_type_id != nil {
		fields = append(fields, publishedcontent.FieldContentTypeID)
	}
	if m.realm_id != nil {
		fields = append(fields, publishedcontent.FieldRealmID)
	}
	if m.language_id != nil {
		fields = append(fields, publishedcontent.FieldLanguageID)
	}
	if m.unique_name != nil {
		fields = append(fields, publishedcontent.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, publishedcontent.FieldUniqueNameNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, publishedcontent.FieldDisplayName)
	}
	if m.description != nil {
		fields = append(fields, publishedcontent.FieldDescription)
	}
	if m.field_values != nil {
		fields = append(fields, publishedcontent.FieldFieldValues)
	}
	if m.version != nil {
		fields = append(fields, publishedcontent.FieldVersion)
	}
	if m.published_by != nil {
		fields = append(fields, publishedcontent.FieldPublishedBy)
	}
	if m.published_on != nil {
		fields = append(fields, publishedcontent.FieldPublishedOn)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PublishedContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case publishedcontent.FieldContentID:
		return m.ContentID()
	case publishedcontent.FieldContentTypeID:
		return m.ContentTypeID()
	case publishedcontent.FieldRealmID:
		return m.RealmID()
	case publishedcontent.FieldLanguageID:
		return m.LanguageID()
	case publishedcontent.FieldUniqueName:
		return m.UniqueName()
	case publishedcontent.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case publishedcontent.FieldDisplayName:
		return m.DisplayName()
	case publishedcontent.FieldDescription:
		return m.Description()
	case publishedcontent.FieldFieldValues:
		return m.FieldValues()
	case publishedcontent.FieldVersion:
		return m.Version()
	case publishedcontent.FieldPublishedBy:
		return m.PublishedBy()
	case publishedcontent.FieldPublishedOn:
		return m.PublishedOn()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PublishedContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case publishedcontent.FieldContentID:
		return m.OldContentID(ctx)
	case publishedcontent.FieldContentTypeID:
		return m.OldContentTypeID(ctx)
	case publishedcontent.FieldRealmID:
		return m.OldRealmID(ctx)
	case publishedcontent.FieldLanguageID:
		return m.OldLanguageID(ctx)
	case publishedcontent.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case publishedcontent.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case publishedcontent.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case publishedcontent.FieldDescription:
		return m.OldDescription(ctx)
	case publishedcontent.FieldFieldValues:
		return m.OldFieldValues(ctx)
	case publishedcontent.FieldVersion:
		return m.OldVersion(ctx)
	case publishedcontent.FieldPublishedBy:
		return m.OldPublishedBy(ctx)
	case publishedcontent.FieldPublishedOn:
		return m.OldPublishedOn(ctx)
	}
	return nil, fmt.Errorf("unknown PublishedContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishedContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case publishedcontent.FieldContentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case publishedcontent.FieldContentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeID(v)
		return nil
	case publishedcontent.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case publishedcontent.FieldLanguageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageID(v)
		return nil
	case publishedcontent.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case publishedcontent.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case publishedcontent.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case publishedcontent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case publishedcontent.FieldFieldValues:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldValues(v)
		return nil
	case publishedcontent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case publishedcontent.FieldPublishedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedBy(v)
		return nil
	case publishedcontent.FieldPublishedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedOn(v)
		return nil
	}
	return fmt.Errorf("unknown PublishedContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PublishedContentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, publishedcontent.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PublishedContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case publishedcontent.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishedContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case publishedcontent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PublishedContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PublishedContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(publishedcontent.FieldRealmID) {
		fields = append(fields, publishedcontent.FieldRealmID)
	}
	if m.FieldCleared(publishedcontent.FieldLanguageID) {
		fields = append(fields, publishedcontent.FieldLanguageID)
	}
	if m.FieldCleared(publishedcontent.FieldDisplayName) {
		fields = append(fields, publishedcontent.FieldDisplayName)
	}
	if m.FieldCleared(publishedcontent.FieldDescription) {
		fields = append(fields, publishedcontent.FieldDescription)
	}
	if m.FieldCleared(publishedcontent.FieldFieldValues) {
		fields = append(fields, publishedcontent.FieldFieldValues)
	}
	if m.FieldCleared(publishedcontent.FieldPublishedBy) {
		fields = append(fields, publishedcontent.FieldPublishedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PublishedContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PublishedContentMutation) ClearField(name string) error {
	switch name {
	case publishedcontent.FieldRealmID:
		m.ClearRealmID()
		return nil
	case publishedcontent.FieldLanguageID:
		m.ClearLanguageID()
		return nil
	case publishedcontent.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case publishedcontent.FieldDescription:
		m.ClearDescription()
		return nil
	case publishedcontent.FieldFieldValues:
		m.ClearFieldValues()
		return nil
	case publishedcontent.FieldPublishedBy:
		m.ClearPublishedBy()
		return nil
	}
	return fmt.Errorf("unknown PublishedContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PublishedContentMutation) ResetField(name string) error {
	switch name {
	case publishedcontent.FieldContentID:
		m.ResetContentID()
		return nil
	case publishedcontent.FieldContentTypeID:
		m.ResetContentTypeID()
		return nil
	case publishedcontent.FieldRealmID:
		m.ResetRealmID()
		return nil
	case publishedcontent.FieldLanguageID:
		m.ResetLanguageID()
		return nil
	case publishedcontent.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case publishedcontent.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case publishedcontent.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case publishedcontent.FieldDescription:
		m.ResetDescription()
		return nil
	case publishedcontent.FieldFieldValues:
		m.ResetFieldValues()
		return nil
	case publishedcontent.FieldVersion:
		m.ResetVersion()
		return nil
	case publishedcontent.FieldPublishedBy:
		m.ResetPublishedBy()
		return nil
	case publishedcontent.FieldPublishedOn:
		m.ResetPublishedOn()
		return nil
	}
	return fmt.Errorf("unknown PublishedContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PublishedContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PublishedContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PublishedContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PublishedContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PublishedContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PublishedContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PublishedContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PublishedContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PublishedContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PublishedContent edge %s", name)
}

// RealmMutation represents an operation that mutates the Realm nodes in the graph.
type RealmMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	stream_id              *string
	version                *int64
	addversion             *int64
	created_by             *string
	created_on             *time.Time
	updated_by             *string
	updated_on             *time.Time
	unique_slug            *string
	unique_slug_normalized *string
	display_name           *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Realm, error)
	predicates             []predicate.Realm
}

var _ ent.Mutation = (*RealmMutation)(nil)

// realmOption allows management of the mutation configuration using functional options.
type realmOption func(*RealmMutation)

// newRealmMutation creates new mutation for the Realm entity.
func newRealmMutation(c config, op Op, opts ...realmOption) *RealmMutation {
	m := &RealmMutation{
		config:        c,
		op:            op,
		typ:           TypeRealm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRealmID sets the ID field of the mutation.
func withRealmID(id uuid.UUID) realmOption {
	return func(m *RealmMutation) {
		var (
			err   error
			once  sync.Once
			value *Realm
		)
		m.oldValue = func(ctx context.Context) (*Realm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Realm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRealm sets the old Realm of the mutation.
func withRealm(node *Realm) realmOption {
	return func(m *RealmMutation) {
		m.oldValue = func(context.Context) (*Realm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RealmMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RealmMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Realm entities.
func (m *RealmMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RealmMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RealmMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Realm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *RealmMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *RealmMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *RealmMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *RealmMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RealmMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RealmMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RealmMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RealmMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RealmMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RealmMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *RealmMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[realm.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *RealmMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[realm.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RealmMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, realm.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *RealmMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *RealmMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *RealmMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *RealmMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *RealmMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *RealmMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[realm.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *RealmMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[realm.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *RealmMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, realm.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *RealmMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *RealmMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *RealmMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetUniqueSlug sets the "unique_slug" field.
func (m *RealmMutation) SetUniqueSlug(s string) {
	m.unique_slug = &s
}

// UniqueSlug returns the value of the "unique_slug" field in the mutation.
func (m *RealmMutation) UniqueSlug() (r string, exists bool) {
	v := m.unique_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueSlug returns the old "unique_slug" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldUniqueSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueSlug: %w", err)
	}
	return oldValue.UniqueSlug, nil
}

// ResetUniqueSlug resets all changes to the "unique_slug" field.
func (m *RealmMutation) ResetUniqueSlug() {
	m.unique_slug = nil
}

// SetUniqueSlugNormalized sets the "unique_slug_normalized" field.
func (m *RealmMutation) SetUniqueSlugNormalized(s string) {
	m.unique_slug_normalized = &s
}

// UniqueSlugNormalized returns the value of the "unique_slug_normalized" field in the mutation.
func (m *RealmMutation) UniqueSlugNormalized() (r string, exists bool) {
	v := m.unique_slug_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueSlugNormalized returns the old "unique_slug_normalized" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldUniqueSlugNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueSlugNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueSlugNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueSlugNormalized: %w", err)
	}
	return oldValue.UniqueSlugNormalized, nil
}

// ResetUniqueSlugNormalized resets all changes to the "unique_slug_normalized" field.
func (m *RealmMutation) ResetUniqueSlugNormalized() {
	m.unique_slug_normalized = nil
}

// SetDisplayName sets the "display_name" field.
func (m *RealmMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *RealmMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Realm entity.
// If the Realm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealmMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *RealmMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[realm.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *RealmMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[realm.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *RealmMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, realm.FieldDisplayName)
}

// Where appends a list predicates to the RealmMutation builder.
func (m *RealmMutation) Where(ps ...predicate.Realm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RealmMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RealmMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Realm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RealmMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RealmMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Realm).
func (m *RealmMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RealmMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.stream_id != nil {
		fields = append(fields, realm.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, realm.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, realm.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, realm.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, realm.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, realm.FieldUpdatedOn)
	}
	if m.unique_slug != nil {
		fields = append(fields, realm.FieldUniqueSlug)
	}
	if m.unique_slug_normalized != nil {
		fields = append(fields, realm.FieldUniqueSlugNormalized)
	}
	if m.display_name != nil {
		fields = append(fields, realm.FieldDisplayName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RealmMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case realm.FieldStreamID:
		return m.StreamID()
	case realm.FieldVersion:
		return m.Version()
	case realm.FieldCreatedBy:
		return m.CreatedBy()
	case realm.FieldCreatedOn:
		return m.CreatedOn()
	case realm.FieldUpdatedBy:
		return m.UpdatedBy()
	case realm.FieldUpdatedOn:
		return m.UpdatedOn()
	case realm.FieldUniqueSlug:
		return m.UniqueSlug()
	case realm.FieldUniqueSlugNormalized:
		return m.UniqueSlugNormalized()
	case realm.FieldDisplayName:
		return m.DisplayName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RealmMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case realm.FieldStreamID:
		return m.OldStreamID(ctx)
	case realm.FieldVersion:
		return m.OldVersion(ctx)
	case realm.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case realm.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case realm.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case realm.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case realm.FieldUniqueSlug:
		return m.OldUniqueSlug(ctx)
	case realm.FieldUniqueSlugNormalized:
		return m.OldUniqueSlugNormalized(ctx)
	case realm.FieldDisplayName:
		return m.OldDisplayName(ctx)
	}
	return nil, fmt.Errorf("unknown Realm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealmMutation) SetField(name string, value ent.Value) error {
	switch name {
	case realm.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case realm.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case realm.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case realm.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case realm.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case realm.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case realm.FieldUniqueSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueSlug(v)
		return nil
	case realm.FieldUniqueSlugNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueSlugNormalized(v)
		return nil
	case realm.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	}
	return fmt.Errorf("unknown Realm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RealmMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, realm.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RealmMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case realm.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealmMutation) AddField(name string, value ent.Value) error {
	switch name {
	case realm.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Realm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RealmMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(realm.FieldCreatedBy) {
		fields = append(fields, realm.FieldCreatedBy)
	}
	if m.FieldCleared(realm.FieldUpdatedBy) {
		fields = append(fields, realm.FieldUpdatedBy)
	}
	if m.FieldCleared(realm.FieldDisplayName) {
		fields = append(fields, realm.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RealmMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RealmMutation) ClearField(name string) error {
	switch name {
	case realm.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case realm.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case realm.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown Realm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RealmMutation) ResetField(name string) error {
	switch name {
	case realm.FieldStreamID:
		m.ResetStreamID()
		return nil
	case realm.FieldVersion:
		m.ResetVersion()
		return nil
	case realm.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case realm.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case realm.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case realm.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case realm.FieldUniqueSlug:
		m.ResetUniqueSlug()
		return nil
	case realm.FieldUniqueSlugNormalized:
		m.ResetUniqueSlugNormalized()
		return nil
	case realm.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	}
	return fmt.Errorf("unknown Realm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RealmMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RealmMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RealmMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RealmMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RealmMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RealmMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RealmMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Realm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RealmMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Realm edge %s", name)
}

// UniqueIndexMutation represents an operation that mutates the UniqueIndex nodes in the graph.
type UniqueIndexMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	realm_id              *uuid.UUID
	status                *uniqueindex.Status
	content_type_id       *uuid.UUID
	content_type_name     *string
	language_id           *uuid.UUID
	language_code         *string
	language_is_default   *bool
	field_type_id         *uuid.UUID
	field_type_name       *string
	field_definition_id   *uuid.UUID
	field_definition_name *string
	content_id            *uuid.UUID
	content_locale_id     *uuid.UUID
	content_locale_name   *string
	version               *int64
	addversion            *int64
	value                 *string
	key                   *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UniqueIndex, error)
	predicates            []predicate.UniqueIndex
}

var _ ent.Mutation = (*UniqueIndexMutation)(nil)

// uniqueindexOption allows management of the mutation configuration using functional options.
type uniqueindexOption func(*UniqueIndexMutation)

// newUniqueIndexMutation creates new mutation for the UniqueIndex entity.
func newUniqueIndexMutation(c config, op Op, opts ...uniqueindexOption) *UniqueIndexMutation {
	m := &UniqueIndexMutation{
		config:        c,
		op:            op,
		typ:           TypeUniqueIndex,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUniqueIndexID sets the ID field of the mutation.
func withUniqueIndexID(id uuid.UUID) uniqueindexOption {
	return func(m *UniqueIndexMutation) {
		var (
			err   error
			once  sync.Once
			value *UniqueIndex
		)
		m.oldValue = func(ctx context.Context) (*UniqueIndex, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UniqueIndex.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUniqueIndex sets the old UniqueIndex of the mutation.
func withUniqueIndex(node *UniqueIndex) uniqueindexOption {
	return func(m *UniqueIndexMutation) {
		m.oldValue = func(context.Context) (*UniqueIndex, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UniqueIndexMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UniqueIndexMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UniqueIndex entities.
func (m *UniqueIndexMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UniqueIndexMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UniqueIndexMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UniqueIndex.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRealmID sets the "realm_id" field.
func (m *UniqueIndexMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *UniqueIndexMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *UniqueIndexMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[uniqueindex.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *UniqueIndexMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[uniqueindex.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *UniqueIndexMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, uniqueindex.FieldRealmID)
}

// SetStatus sets the "status" field.
func (m *UniqueIndexMutation) SetStatus(u uniqueindex.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UniqueIndexMutation) Status() (r uniqueindex.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldStatus(ctx context.Context) (v uniqueindex.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UniqueIndexMutation) ResetStatus() {
	m.status = nil
}

// SetContentTypeID sets the "content_type_id" field.
func (m *UniqueIndexMutation) SetContentTypeID(u uuid.UUID) {
	m.content_type_id = &u
}

// ContentTypeID returns the value of the "content_type_id" field in the mutation.
func (m *UniqueIndexMutation) ContentTypeID() (r uuid.UUID, exists bool) {
	v := m.content_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeID returns the old "content_type_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldContentTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeID: %w", err)
	}
	return oldValue.ContentTypeID, nil
}

// ResetContentTypeID resets all changes to the "content_type_id" field.
func (m *UniqueIndexMutation) ResetContentTypeID() {
	m.content_type_id = nil
}

// SetContentTypeName sets the "content_type_name" field.
func (m *UniqueIndexMutation) SetContentTypeName(s string) {
	m.content_type_name = &s
}

// ContentTypeName returns the value of the "content_type_name" field in the mutation.
func (m *UniqueIndexMutation) ContentTypeName() (r string, exists bool) {
	v := m.content_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContentTypeName returns the old "content_type_name" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldContentTypeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentTypeName: %w", err)
	}
	return oldValue.ContentTypeName, nil
}

// ResetContentTypeName resets all changes to the "content_type_name" field.
func (m *UniqueIndexMutation) ResetContentTypeName() {
	m.content_type_name = nil
}

// SetLanguageID sets the "language_id" field.
func (m *UniqueIndexMutation) SetLanguageID(u uuid.UUID) {
	m.language_id = &u
}

// LanguageID returns the value of the "language_id" field in the mutation.
func (m *UniqueIndexMutation) LanguageID() (r uuid.UUID, exists bool) {
	v := m.language_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageID returns the old "language_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldLanguageID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageID: %w", err)
	}
	return oldValue.LanguageID, nil
}

// ClearLanguageID clears the value of the "language_id" field.
func (m *UniqueIndexMutation) ClearLanguageID() {
	m.language_id = nil
	m.clearedFields[uniqueindex.FieldLanguageID] = struct{}{}
}

// LanguageIDCleared returns if the "language_id" field was cleared in this mutation.
func (m *UniqueIndexMutation) LanguageIDCleared() bool {
	_, ok := m.clearedFields[uniqueindex.FieldLanguageID]
	return ok
}

// ResetLanguageID resets all changes to the "language_id" field.
func (m *UniqueIndexMutation) ResetLanguageID() {
	m.language_id = nil
	delete(m.clearedFields, uniqueindex.FieldLanguageID)
}

// SetLanguageCode sets the "language_code" field.
func (m *UniqueIndexMutation) SetLanguageCode(s string) {
	m.language_code = &s
}

// LanguageCode returns the value of the "language_code" field in the mutation.
func (m *UniqueIndexMutation) LanguageCode() (r string, exists bool) {
	v := m.language_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageCode returns the old "language_code" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldLanguageCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageCode: %w", err)
	}
	return oldValue.LanguageCode, nil
}

// ClearLanguageCode clears the value of the "language_code" field.
func (m *UniqueIndexMutation) ClearLanguageCode() {
	m.language_code = nil
	m.clearedFields[uniqueindex.FieldLanguageCode] = struct{}{}
}

// LanguageCodeCleared returns if the "language_code" field was cleared in this mutation.
func (m *UniqueIndexMutation) LanguageCodeCleared() bool {
	_, ok := m.clearedFields[uniqueindex.FieldLanguageCode]
	return ok
}

// ResetLanguageCode resets all changes to the "language_code" field.
func (m *UniqueIndexMutation) ResetLanguageCode() {
	m.language_code = nil
	delete(m.clearedFields, uniqueindex.FieldLanguageCode)
}

// SetLanguageIsDefault sets the "language_is_default" field.
func (m *UniqueIndexMutation) SetLanguageIsDefault(b bool) {
	m.language_is_default = &b
}

// LanguageIsDefault returns the value of the "language_is_default" field in the mutation.
func (m *UniqueIndexMutation) LanguageIsDefault() (r bool, exists bool) {
	v := m.language_is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageIsDefault returns the old "language_is_default" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldLanguageIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageIsDefault: %w", err)
	}
	return oldValue.LanguageIsDefault, nil
}

// ResetLanguageIsDefault resets all changes to the "language_is_default" field.
func (m *UniqueIndexMutation) ResetLanguageIsDefault() {
	m.language_is_default = nil
}

// SetFieldTypeID sets the "field_type_id" field.
func (m *UniqueIndexMutation) SetFieldTypeID(u uuid.UUID) {
	m.field_type_id = &u
}

// FieldTypeID returns the value of the "field_type_id" field in the mutation.
func (m *UniqueIndexMutation) FieldTypeID() (r uuid.UUID, exists bool) {
	v := m.field_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldTypeID returns the old "field_type_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldFieldTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldTypeID: %w", err)
	}
	return oldValue.FieldTypeID, nil
}

// ResetFieldTypeID resets all changes to the "field_type_id" field.
func (m *UniqueIndexMutation) ResetFieldTypeID() {
	m.field_type_id = nil
}

// SetFieldTypeName sets the "field_type_name" field.
func (m *UniqueIndexMutation) SetFieldTypeName(s string) {
	m.field_type_name = &s
}

// FieldTypeName returns the value of the "field_type_name" field in the mutation.
func (m *UniqueIndexMutation) FieldTypeName() (r string, exists bool) {
	v := m.field_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldTypeName returns the old "field_type_name" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldFieldTypeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldTypeName: %w", err)
	}
	return oldValue.FieldTypeName, nil
}

// ResetFieldTypeName resets all changes to the "field_type_name" field.
func (m *UniqueIndexMutation) ResetFieldTypeName() {
	m.field_type_name = nil
}

// SetFieldDefinitionID sets the "field_definition_id" field.
func (m *UniqueIndexMutation) SetFieldDefinitionID(u uuid.UUID) {
	m.field_definition_id = &u
}

// FieldDefinitionID returns the value of the "field_definition_id" field in the mutation.
func (m *UniqueIndexMutation) FieldDefinitionID() (r uuid.UUID, exists bool) {
	v := m.field_definition_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldDefinitionID returns the old "field_definition_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldFieldDefinitionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldDefinitionID: %w", err)
	}
	return oldValue.FieldDefinitionID, nil
}

// ResetFieldDefinitionID resets all changes to the "field_definition_id" field.
func (m *UniqueIndexMutation) ResetFieldDefinitionID() {
	m.field_definition_id = nil
}

// SetFieldDefinitionName sets the "field_definition_name" field.
func (m *UniqueIndexMutation) SetFieldDefinitionName(s string) {
	m.field_definition_name = &s
}

// FieldDefinitionName returns the value of the "field_definition_name" field in the mutation.
func (m *UniqueIndexMutation) FieldDefinitionName() (r string, exists bool) {
	v := m.field_definition_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldDefinitionName returns the old "field_definition_name" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldFieldDefinitionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldDefinitionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldDefinitionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldDefinitionName: %w", err)
	}
	return oldValue.FieldDefinitionName, nil
}

// ResetFieldDefinitionName resets all changes to the "field_definition_name" field.
func (m *UniqueIndexMutation) ResetFieldDefinitionName() {
	m.field_definition_name = nil
}

// SetContentID sets the "content_id" field.
func (m *UniqueIndexMutation) SetContentID(u uuid.UUID) {
	m.content_id = &u
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *UniqueIndexMutation) ContentID() (r uuid.UUID, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldContentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *UniqueIndexMutation) ResetContentID() {
	m.content_id = nil
}

// SetContentLocaleID sets the "content_locale_id" field.
func (m *UniqueIndexMutation) SetContentLocaleID(u uuid.UUID) {
	m.content_locale_id = &u
}

// ContentLocaleID returns the value of the "content_locale_id" field in the mutation.
func (m *UniqueIndexMutation) ContentLocaleID() (r uuid.UUID, exists bool) {
	v := m.content_locale_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLocaleID returns the old "content_locale_id" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldContentLocaleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLocaleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLocaleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLocaleID: %w", err)
	}
	return oldValue.ContentLocaleID, nil
}

// ResetContentLocaleID resets all changes to the "content_locale_id" field.
func (m *UniqueIndexMutation) ResetContentLocaleID() {
	m.content_locale_id = nil
}

// SetContentLocaleName sets the "content_locale_name" field.
func (m *UniqueIndexMutation) SetContentLocaleName(s string) {
	m.content_locale_name = &s
}

// ContentLocaleName returns the value of the "content_locale_name" field in the mutation.
func (m *UniqueIndexMutation) ContentLocaleName() (r string, exists bool) {
	v := m.content_locale_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLocaleName returns the old "content_locale_name" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldContentLocaleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLocaleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLocaleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLocaleName: %w", err)
	}
	return oldValue.ContentLocaleName, nil
}

// ResetContentLocaleName resets all changes to the "content_locale_name" field.
func (m *UniqueIndexMutation) ResetContentLocaleName() {
	m.content_locale_name = nil
}

// SetVersion sets the "version" field.
func (m *UniqueIndexMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *UniqueIndexMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *UniqueIndexMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *UniqueIndexMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *UniqueIndexMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetValue sets the "value" field.
func (m *UniqueIndexMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *UniqueIndexMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *UniqueIndexMutation) ResetValue() {
	m.value = nil
}

// SetKey sets the "key" field.
func (m *UniqueIndexMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *UniqueIndexMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the UniqueIndex entity.
// If the UniqueIndex object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniqueIndexMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *UniqueIndexMutation) ResetKey() {
	m.key = nil
}

// Where appends a list predicates to the UniqueIndexMutation builder.
func (m *UniqueIndexMutation) Where(ps ...predicate.UniqueIndex) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UniqueIndexMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UniqueIndexMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UniqueIndex, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UniqueIndexMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UniqueIndexMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UniqueIndex).
func (m *UniqueIndexMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UniqueIndexMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.realm_id != nil {
		fields = append(fields, uniqueindex.FieldRealmID)
	}
	if m.status != nil {
		fields = append(fields, uniqueindex.FieldStatus)
	}
	if m.content_type_id != nil {
		fields = append(fields, uniqueindex.FieldContentTypeID)
	}
	if m.content_type_name != nil {
		fields = append(fields, uniqueindex.FieldContentTypeName)
	}
	if m.language_id != nil {
		fields = append(fields, uniqueindex.FieldLanguageID)
	}
	if m.language_code != nil {
		fields = append(fields, uniqueindex.FieldLanguageCode)
	}
	if m.language_is_default != nil {
		fields = append(fields, uniqueindex.FieldLanguageIsDefault)
	}
	if m.field_type_id != nil {
		fields = append(fields, uniqueindex.FieldFieldTypeID)
	}
	if m.field_type_name != nil {
		fields = append(fields, uniqueindex.FieldFieldTypeName)
	}
	if m.field_definition_id != nil {
		fields = append(fields, uniqueindex.FieldFieldDefinitionID)
	}
	if m.field_definition_name != nil {
		fields = append(fields, uniqueindex.FieldFieldDefinitionName)
	}
	if m.content_id != nil {
		fields = append(fields, uniqueindex.FieldContentID)
	}
	if m.content_locale_id != nil {
		fields = append(fields, uniqueindex.FieldContentLocaleID)
	}
	if m.content_locale_name != nil {
		fields = append(fields, uniqueindex.FieldContentLocaleName)
	}
	if m.version != nil {
		fields = append(fields, uniqueindex.FieldVersion)
	}
	if m.value != nil {
		fields = append(fields, uniqueindex.FieldValue)
	}
	if m.key != nil {
		fields = append(fields, uniqueindex.FieldKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UniqueIndexMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uniqueindex.FieldRealmID:
		return m.RealmID()
	case uniqueindex.FieldStatus:
		return m.Status()
	case uniqueindex.FieldContentTypeID:
		return m.ContentTypeID()
	case uniqueindex.FieldContentTypeName:
		return m.ContentTypeName()
	case uniqueindex.FieldLanguageID:
		return m.LanguageID()
	case uniqueindex.FieldLanguageCode:
		return m.LanguageCode()
	case uniqueindex.FieldLanguageIsDefault:
		return m.LanguageIsDefault()
	case uniqueindex.FieldFieldTypeID:
		return m.FieldTypeID()
	case uniqueindex.FieldFieldTypeName:
		return m.FieldTypeName()
	case uniqueindex.FieldFieldDefinitionID:
		return m.FieldDefinitionID()
	case uniqueindex.FieldFieldDefinitionName:
		return m.FieldDefinitionName()
	case uniqueindex.FieldContentID:
		return m.ContentID()
	case uniqueindex.FieldContentLocaleID:
		return m.ContentLocaleID()
	case uniqueindex.FieldContentLocaleName:
		return m.ContentLocaleName()
	case uniqueindex.FieldVersion:
		return m.Version()
	case uniqueindex.FieldValue:
		return m.Value()
	case uniqueindex.FieldKey:
		return m.Key()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UniqueIndexMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uniqueindex.FieldRealmID:
		return m.OldRealmID(ctx)
	case uniqueindex.FieldStatus:
		return m.OldStatus(ctx)
	case uniqueindex.FieldContentTypeID:
		return m.OldContentTypeID(ctx)
	case uniqueindex.FieldContentTypeName:
		return m.OldContentTypeName(ctx)
	case uniqueindex.FieldLanguageID:
		return m.OldLanguageID(ctx)
	case uniqueindex.FieldLanguageCode:
		return m.OldLanguageCode(ctx)
	case uniqueindex.FieldLanguageIsDefault:
		return m.OldLanguageIsDefault(ctx)
	case uniqueindex.FieldFieldTypeID:
		return m.OldFieldTypeID(ctx)
	case uniqueindex.FieldFieldTypeName:
		return m.OldFieldTypeName(ctx)
	case uniqueindex.FieldFieldDefinitionID:
		return m.OldFieldDefinitionID(ctx)
	case uniqueindex.FieldFieldDefinitionName:
		return m.OldFieldDefinitionName(ctx)
	case uniqueindex.FieldContentID:
		return m.OldContentID(ctx)
	case uniqueindex.FieldContentLocaleID:
		return m.OldContentLocaleID(ctx)
	case uniqueindex.FieldContentLocaleName:
		return m.OldContentLocaleName(ctx)
	case uniqueindex.FieldVersion:
		return m.OldVersion(ctx)
	case uniqueindex.FieldValue:
		return m.OldValue(ctx)
	case uniqueindex.FieldKey:
		return m.OldKey(ctx)
	}
	return nil, fmt.Errorf("unknown UniqueIndex field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniqueIndexMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uniqueindex.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case uniqueindex.FieldStatus:
		v, ok := value.(uniqueindex.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uniqueindex.FieldContentTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeID(v)
		return nil
	case uniqueindex.FieldContentTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentTypeName(v)
		return nil
	case uniqueindex.FieldLanguageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageID(v)
		return nil
	case uniqueindex.FieldLanguageCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageCode(v)
		return nil
	case uniqueindex.FieldLanguageIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageIsDefault(v)
		return nil
	case uniqueindex.FieldFieldTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldTypeID(v)
		return nil
	case uniqueindex.FieldFieldTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldTypeName(v)
		return nil
	case uniqueindex.FieldFieldDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldDefinitionID(v)
		return nil
	case uniqueindex.FieldFieldDefinitionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldDefinitionName(v)
		return nil
	case uniqueindex.FieldContentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case uniqueindex.FieldContentLocaleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLocaleID(v)
		return nil
	case uniqueindex.FieldContentLocaleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLocaleName(v)
		return nil
	case uniqueindex.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case uniqueindex.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case uniqueindex.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	}
	return fmt.Errorf("unknown UniqueIndex field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UniqueIndexMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, uniqueindex.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UniqueIndexMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uniqueindex.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniqueIndexMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uniqueindex.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown UniqueIndex numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UniqueIndexMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uniqueindex.FieldRealmID) {
		fields = append(fields, uniqueindex.FieldRealmID)
	}
	if m.FieldCleared(uniqueindex.FieldLanguageID) {
		fields = append(fields, uniqueindex.FieldLanguageID)
	}
	if m.FieldCleared(uniqueindex.FieldLanguageCode) {
		fields = append(fields, uniqueindex.FieldLanguageCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UniqueIndexMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UniqueIndexMutation) ClearField(name string) error {
	switch name {
	case uniqueindex.FieldRealmID:
		m.ClearRealmID()
		return nil
	case uniqueindex.FieldLanguageID:
		m.ClearLanguageID()
		return nil
	case uniqueindex.FieldLanguageCode:
		m.ClearLanguageCode()
		return nil
	}
	return fmt.Errorf("unknown UniqueIndex nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UniqueIndexMutation) ResetField(name string) error {
	switch name {
	case uniqueindex.FieldRealmID:
		m.ResetRealmID()
		return nil
	case uniqueindex.FieldStatus:
		m.ResetStatus()
		return nil
	case uniqueindex.FieldContentTypeID:
		m.ResetContentTypeID()
		return nil
	case uniqueindex.FieldContentTypeName:
		m.ResetContentTypeName()
		return nil
	case uniqueindex.FieldLanguageID:
		m.ResetLanguageID()
		return nil
	case uniqueindex.FieldLanguageCode:
		m.ResetLanguageCode()
		return nil
	case uniqueindex.FieldLanguageIsDefault:
		m.ResetLanguageIsDefault()
		return nil
	case uniqueindex.FieldFieldTypeID:
		m.ResetFieldTypeID()
		return nil
	case uniqueindex.FieldFieldTypeName:
		m.ResetFieldTypeName()
		return nil
	case uniqueindex.FieldFieldDefinitionID:
		m.ResetFieldDefinitionID()
		return nil
	case uniqueindex.FieldFieldDefinitionName:
		m.ResetFieldDefinitionName()
		return nil
	case uniqueindex.FieldContentID:
		m.ResetContentID()
		return nil
	case uniqueindex.FieldContentLocaleID:
		m.ResetContentLocaleID()
		return nil
	case uniqueindex.FieldContentLocaleName:
		m.ResetContentLocaleName()
		return nil
	case uniqueindex.FieldVersion:
		m.ResetVersion()
		return nil
	case uniqueindex.FieldValue:
		m.ResetValue()
		return nil
	case uniqueindex.FieldKey:
		m.ResetKey()
		return nil
	}
	return fmt.Errorf("unknown UniqueIndex field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UniqueIndexMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UniqueIndexMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UniqueIndexMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UniqueIndexMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UniqueIndexMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UniqueIndexMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UniqueIndexMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UniqueIndex unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UniqueIndexMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UniqueIndex edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	stream_id              *string
	version                *int64
	addversion             *int64
	created_by             *string
	created_on             *time.Time
	updated_by             *string
	updated_on             *time.Time
	realm_id               *uuid.UUID
	unique_name            *string
	unique_name_normalized *string
	email                  *string
	display_name           *string
	picture                *string
	is_disabled            *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *UserMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *UserMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *UserMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *UserMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *UserMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *UserMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *UserMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *UserMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *UserMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *UserMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *UserMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[user.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *UserMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[user.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *UserMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, user.FieldCreatedBy)
}

// SetCreatedOn sets the "created_on" field.
func (m *UserMutation) SetCreatedOn(t time.Time) {
	m.created_on = &t
}

// CreatedOn returns the value of the "created_on" field in the mutation.
func (m *UserMutation) CreatedOn() (r time.Time, exists bool) {
	v := m.created_on
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedOn returns the old "created_on" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedOn: %w", err)
	}
	return oldValue.CreatedOn, nil
}

// ResetCreatedOn resets all changes to the "created_on" field.
func (m *UserMutation) ResetCreatedOn() {
	m.created_on = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *UserMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *UserMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *UserMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[user.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *UserMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[user.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *UserMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, user.FieldUpdatedBy)
}

// SetUpdatedOn sets the "updated_on" field.
func (m *UserMutation) SetUpdatedOn(t time.Time) {
	m.updated_on = &t
}

// UpdatedOn returns the value of the "updated_on" field in the mutation.
func (m *UserMutation) UpdatedOn() (r time.Time, exists bool) {
	v := m.updated_on
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedOn returns the old "updated_on" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedOn: %w", err)
	}
	return oldValue.UpdatedOn, nil
}

// ResetUpdatedOn resets all changes to the "updated_on" field.
func (m *UserMutation) ResetUpdatedOn() {
	m.updated_on = nil
}

// SetRealmID sets the "realm_id" field.
func (m *UserMutation) SetRealmID(u uuid.UUID) {
	m.realm_id = &u
}

// RealmID returns the value of the "realm_id" field in the mutation.
func (m *UserMutation) RealmID() (r uuid.UUID, exists bool) {
	v := m.realm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRealmID returns the old "realm_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRealmID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealmID: %w", err)
	}
	return oldValue.RealmID, nil
}

// ClearRealmID clears the value of the "realm_id" field.
func (m *UserMutation) ClearRealmID() {
	m.realm_id = nil
	m.clearedFields[user.FieldRealmID] = struct{}{}
}

// RealmIDCleared returns if the "realm_id" field was cleared in this mutation.
func (m *UserMutation) RealmIDCleared() bool {
	_, ok := m.clearedFields[user.FieldRealmID]
	return ok
}

// ResetRealmID resets all changes to the "realm_id" field.
func (m *UserMutation) ResetRealmID() {
	m.realm_id = nil
	delete(m.clearedFields, user.FieldRealmID)
}

// SetUniqueName sets the "unique_name" field.
func (m *UserMutation) SetUniqueName(s string) {
	m.unique_name = &s
}

// UniqueName returns the value of the "unique_name" field in the mutation.
func (m *UserMutation) UniqueName() (r string, exists bool) {
	v := m.unique_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueName returns the old "unique_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUniqueName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueName: %w", err)
	}
	return oldValue.UniqueName, nil
}

// ResetUniqueName resets all changes to the "unique_name" field.
func (m *UserMutation) ResetUniqueName() {
	m.unique_name = nil
}

// SetUniqueNameNormalized sets the "unique_name_normalized" field.
func (m *UserMutation) SetUniqueNameNormalized(s string) {
	m.unique_name_normalized = &s
}

// UniqueNameNormalized returns the value of the "unique_name_normalized" field in the mutation.
func (m *UserMutation) UniqueNameNormalized() (r string, exists bool) {
	v := m.unique_name_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldUniqueNameNormalized returns the old "unique_name_normalized" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUniqueNameNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniqueNameNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniqueNameNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniqueNameNormalized: %w", err)
	}
	return oldValue.UniqueNameNormalized, nil
}

// ResetUniqueNameNormalized resets all changes to the "unique_name_normalized" field.
func (m *UserMutation) ResetUniqueNameNormalized() {
	m.unique_name_normalized = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetPicture sets the "picture" field.
func (m *UserMutation) SetPicture(s string) {
	m.picture = &s
}

// Picture returns the value of the "picture" field in the mutation.
func (m *UserMutation) Picture() (r string, exists bool) {
	v := m.picture
	if v == nil {
		return
	}
	return *v, true
}

// OldPicture returns the old "picture" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPicture(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPicture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPicture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPicture: %w", err)
	}
	return oldValue.Picture, nil
}

// ClearPicture clears the value of the "picture" field.
func (m *UserMutation) ClearPicture() {
	m.picture = nil
	m.clearedFields[user.FieldPicture] = struct{}{}
}

// PictureCleared returns if the "picture" field was cleared in this mutation.
func (m *UserMutation) PictureCleared() bool {
	_, ok := m.clearedFields[user.FieldPicture]
	return ok
}

// ResetPicture resets all changes to the "picture" field.
func (m *UserMutation) ResetPicture() {
	m.picture = nil
	delete(m.clearedFields, user.FieldPicture)
}

// SetIsDisabled sets the "is_disabled" field.
func (m *UserMutation) SetIsDisabled(b bool) {
	m.is_disabled = &b
}

// IsDisabled returns the value of the "is_disabled" field in the mutation.
func (m *UserMutation) IsDisabled() (r bool, exists bool) {
	v := m.is_disabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDisabled returns the old "is_disabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsDisabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDisabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDisabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDisabled: %w", err)
	}
	return oldValue.IsDisabled, nil
}

// ResetIsDisabled resets all changes to the "is_disabled" field.
func (m *UserMutation) ResetIsDisabled() {
	m.is_disabled = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.stream_id != nil {
		fields = append(fields, user.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, user.FieldVersion)
	}
	if m.created_by != nil {
		fields = append(fields, user.FieldCreatedBy)
	}
	if m.created_on != nil {
		fields = append(fields, user.FieldCreatedOn)
	}
	if m.updated_by != nil {
		fields = append(fields, user.FieldUpdatedBy)
	}
	if m.updated_on != nil {
		fields = append(fields, user.FieldUpdatedOn)
	}
	if m.realm_id != nil {
		fields = append(fields, user.FieldRealmID)
	}
	if m.unique_name != nil {
		fields = append(fields, user.FieldUniqueName)
	}
	if m.unique_name_normalized != nil {
		fields = append(fields, user.FieldUniqueNameNormalized)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.picture != nil {
		fields = append(fields, user.FieldPicture)
	}
	if m.is_disabled != nil {
		fields = append(fields, user.FieldIsDisabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldStreamID:
		return m.StreamID()
	case user.FieldVersion:
		return m.Version()
	case user.FieldCreatedBy:
		return m.CreatedBy()
	case user.FieldCreatedOn:
		return m.CreatedOn()
	case user.FieldUpdatedBy:
		return m.UpdatedBy()
	case user.FieldUpdatedOn:
		return m.UpdatedOn()
	case user.FieldRealmID:
		return m.RealmID()
	case user.FieldUniqueName:
		return m.UniqueName()
	case user.FieldUniqueNameNormalized:
		return m.UniqueNameNormalized()
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPicture:
		return m.Picture()
	case user.FieldIsDisabled:
		return m.IsDisabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldStreamID:
		return m.OldStreamID(ctx)
	case user.FieldVersion:
		return m.OldVersion(ctx)
	case user.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case user.FieldCreatedOn:
		return m.OldCreatedOn(ctx)
	case user.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case user.FieldUpdatedOn:
		return m.OldUpdatedOn(ctx)
	case user.FieldRealmID:
		return m.OldRealmID(ctx)
	case user.FieldUniqueName:
		return m.OldUniqueName(ctx)
	case user.FieldUniqueNameNormalized:
		return m.OldUniqueNameNormalized(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPicture:
		return m.OldPicture(ctx)
	case user.FieldIsDisabled:
		return m.OldIsDisabled(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case user.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case user.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case user.FieldCreatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedOn(v)
		return nil
	case user.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case user.FieldUpdatedOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedOn(v)
		return nil
	case user.FieldRealmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealmID(v)
		return nil
	case user.FieldUniqueName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueName(v)
		return nil
	case user.FieldUniqueNameNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniqueNameNormalized(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPicture:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPicture(v)
		return nil
	case user.FieldIsDisabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDisabled(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, user.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldCreatedBy) {
		fields = append(fields, user.FieldCreatedBy)
	}
	if m.FieldCleared(user.FieldUpdatedBy) {
		fields = append(fields, user.FieldUpdatedBy)
	}
	if m.FieldCleared(user.FieldRealmID) {
		fields = append(fields, user.FieldRealmID)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.FieldCleared(user.FieldPicture) {
		fields = append(fields, user.FieldPicture)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case user.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case user.FieldRealmID:
		m.ClearRealmID()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case user.FieldPicture:
		m.ClearPicture()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldStreamID:
		m.ResetStreamID()
		return nil
	case user.FieldVersion:
		m.ResetVersion()
		return nil
	case user.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case user.FieldCreatedOn:
		m.ResetCreatedOn()
		return nil
	case user.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case user.FieldUpdatedOn:
		m.ResetUpdatedOn()
		return nil
	case user.FieldRealmID:
		m.ResetRealmID()
		return nil
	case user.FieldUniqueName:
		m.ResetUniqueName()
		return nil
	case user.FieldUniqueNameNormalized:
		m.ResetUniqueNameNormalized()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPicture:
		m.ResetPicture()
		return nil
	case user.FieldIsDisabled:
		m.ResetIsDisabled()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
