package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AggregateKind identifies the aggregate type encoded in a stream id.
type AggregateKind string

const (
	KindRealm       AggregateKind = "realm"
	KindLanguage    AggregateKind = "language"
	KindUser        AggregateKind = "user"
	KindApiKey      AggregateKind = "apikey"
	KindFieldType   AggregateKind = "fieldtype"
	KindContentType AggregateKind = "contenttype"
	KindContent     AggregateKind = "content"
)

// StreamID is the durable key of one aggregate's event stream. It encodes
// the aggregate kind, an optional owning realm and the entity id:
//
//	realm:5c9e...                     (platform-level aggregate)
//	content:7f3a...:5c9e...           (realm-scoped: kind:realm:entity)
type StreamID string

// NewStreamID builds a stream id for a platform-level aggregate.
func NewStreamID(kind AggregateKind, entityID uuid.UUID) StreamID {
	return StreamID(fmt.Sprintf("%s:%s", kind, entityID))
}

// NewRealmStreamID builds a stream id for a realm-scoped aggregate.
func NewRealmStreamID(kind AggregateKind, realmID, entityID uuid.UUID) StreamID {
	return StreamID(fmt.Sprintf("%s:%s:%s", kind, realmID, entityID))
}

// Parse splits the stream id into aggregate kind, optional realm id and
// entity id.
func (s StreamID) Parse() (kind AggregateKind, realmID *uuid.UUID, entityID uuid.UUID, err error) {
	parts := strings.Split(string(s), ":")
	switch len(parts) {
	case 2:
		entityID, err = uuid.Parse(parts[1])
		if err != nil {
			return "", nil, uuid.Nil, fmt.Errorf("parse stream id %q: %w", s, err)
		}
		return AggregateKind(parts[0]), nil, entityID, nil
	case 3:
		rid, err := uuid.Parse(parts[1])
		if err != nil {
			return "", nil, uuid.Nil, fmt.Errorf("parse stream id %q realm: %w", s, err)
		}
		entityID, err = uuid.Parse(parts[2])
		if err != nil {
			return "", nil, uuid.Nil, fmt.Errorf("parse stream id %q: %w", s, err)
		}
		return AggregateKind(parts[0]), &rid, entityID, nil
	default:
		return "", nil, uuid.Nil, fmt.Errorf("malformed stream id %q", s)
	}
}

// Kind returns the aggregate kind without full parsing.
func (s StreamID) Kind() AggregateKind {
	if i := strings.IndexByte(string(s), ':'); i > 0 {
		return AggregateKind(s[:i])
	}
	return ""
}

// String implements fmt.Stringer.
func (s StreamID) String() string { return string(s) }
