package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Realm Events
	EventRealmCreated EventType = "REALM_CREATED"
	EventRealmUpdated EventType = "REALM_UPDATED"
	EventRealmDeleted EventType = "REALM_DELETED"

	// Language Events
	EventLanguageCreated EventType = "LANGUAGE_CREATED"
	EventLanguageUpdated EventType = "LANGUAGE_UPDATED"
	EventLanguageDeleted EventType = "LANGUAGE_DELETED"

	// User Events
	EventUserCreated EventType = "USER_CREATED"
	EventUserUpdated EventType = "USER_UPDATED"
	EventUserDeleted EventType = "USER_DELETED"

	// API Key Events
	EventApiKeyCreated EventType = "API_KEY_CREATED"
	EventApiKeyUpdated EventType = "API_KEY_UPDATED"
	EventApiKeyDeleted EventType = "API_KEY_DELETED"

	// Field Type Events
	EventFieldTypeCreated EventType = "FIELD_TYPE_CREATED"
	EventFieldTypeUpdated EventType = "FIELD_TYPE_UPDATED"
	EventFieldTypeDeleted EventType = "FIELD_TYPE_DELETED"

	// Content Type Events
	EventContentTypeCreated           EventType = "CONTENT_TYPE_CREATED"
	EventContentTypeUpdated           EventType = "CONTENT_TYPE_UPDATED"
	EventFieldDefinitionChanged       EventType = "CONTENT_TYPE_FIELD_DEFINITION_CHANGED"
	EventFieldDefinitionRemoved       EventType = "CONTENT_TYPE_FIELD_DEFINITION_REMOVED"
	EventContentTypeDeleted           EventType = "CONTENT_TYPE_DELETED"

	// Content Events
	EventContentCreated           EventType = "CONTENT_CREATED"
	EventContentLocaleChanged     EventType = "CONTENT_LOCALE_CHANGED"
	EventContentLocaleRemoved     EventType = "CONTENT_LOCALE_REMOVED"
	EventContentLocalePublished   EventType = "CONTENT_LOCALE_PUBLISHED"
	EventContentLocaleUnpublished EventType = "CONTENT_LOCALE_UNPUBLISHED"
	EventContentDeleted           EventType = "CONTENT_DELETED"
)

// Event is one element of a per-aggregate stream as delivered by the event
// store: ordered per stream, at least once. Version is monotonic per stream
// starting at 1; OccurredOn is UTC.
type Event struct {
	StreamID   StreamID        `json:"stream_id"`
	Version    int64           `json:"version"`
	Type       EventType       `json:"event_type"`
	ActorID    string          `json:"actor_id,omitempty"`
	OccurredOn time.Time       `json:"occurred_on"`
	Payload    json.RawMessage `json:"payload"`
}
