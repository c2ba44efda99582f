package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Realm payloads.

// RealmCreatedPayload is the payload for REALM_CREATED.
type RealmCreatedPayload struct {
	UniqueSlug  string  `json:"unique_slug"`
	DisplayName *string `json:"display_name,omitempty"`
}

// RealmUpdatedPayload is the payload for REALM_UPDATED.
type RealmUpdatedPayload struct {
	UniqueSlug  *Change[string] `json:"unique_slug,omitempty"`
	DisplayName *Change[string] `json:"display_name,omitempty"`
}

// Language payloads.

// LanguageCreatedPayload is the payload for LANGUAGE_CREATED.
type LanguageCreatedPayload struct {
	Code      string `json:"code"`
	IsDefault bool   `json:"is_default"`
}

// LanguageUpdatedPayload is the payload for LANGUAGE_UPDATED.
type LanguageUpdatedPayload struct {
	Code      *Change[string] `json:"code,omitempty"`
	IsDefault *Change[bool]   `json:"is_default,omitempty"`
}

// Identity payloads.

// UserCreatedPayload is the payload for USER_CREATED.
type UserCreatedPayload struct {
	UniqueName  string  `json:"unique_name"`
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Picture     *string `json:"picture,omitempty"`
}

// UserUpdatedPayload is the payload for USER_UPDATED.
type UserUpdatedPayload struct {
	UniqueName  *Change[string] `json:"unique_name,omitempty"`
	Email       *Change[string] `json:"email,omitempty"`
	DisplayName *Change[string] `json:"display_name,omitempty"`
	Picture     *Change[string] `json:"picture,omitempty"`
	IsDisabled  *Change[bool]   `json:"is_disabled,omitempty"`
}

// ApiKeyCreatedPayload is the payload for API_KEY_CREATED.
type ApiKeyCreatedPayload struct {
	DisplayName string     `json:"display_name"`
	Description *string    `json:"description,omitempty"`
	ExpiresOn   *time.Time `json:"expires_on,omitempty"`
}

// ApiKeyUpdatedPayload is the payload for API_KEY_UPDATED.
type ApiKeyUpdatedPayload struct {
	DisplayName *Change[string]    `json:"display_name,omitempty"`
	Description *Change[string]    `json:"description,omitempty"`
	ExpiresOn   *Change[time.Time] `json:"expires_on,omitempty"`
}

// Schema registry payloads.

// FieldTypeCreatedPayload is the payload for FIELD_TYPE_CREATED.
// DataType is fixed for the lifetime of the field type.
type FieldTypeCreatedPayload struct {
	UniqueName  string          `json:"unique_name"`
	DisplayName *string         `json:"display_name,omitempty"`
	Description *string         `json:"description,omitempty"`
	DataType    string          `json:"data_type"`
	Settings    json.RawMessage `json:"settings"`
}

// FieldTypeUpdatedPayload is the payload for FIELD_TYPE_UPDATED.
type FieldTypeUpdatedPayload struct {
	UniqueName  *Change[string]          `json:"unique_name,omitempty"`
	DisplayName *Change[string]          `json:"display_name,omitempty"`
	Description *Change[string]          `json:"description,omitempty"`
	Settings    *Change[json.RawMessage] `json:"settings,omitempty"`
}

// ContentTypeCreatedPayload is the payload for CONTENT_TYPE_CREATED.
type ContentTypeCreatedPayload struct {
	IsInvariant bool    `json:"is_invariant"`
	UniqueName  string  `json:"unique_name"`
	DisplayName *string `json:"display_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ContentTypeUpdatedPayload is the payload for CONTENT_TYPE_UPDATED.
type ContentTypeUpdatedPayload struct {
	UniqueName  *Change[string] `json:"unique_name,omitempty"`
	DisplayName *Change[string] `json:"display_name,omitempty"`
	Description *Change[string] `json:"description,omitempty"`
}

// FieldDefinitionChangedPayload is the payload for
// CONTENT_TYPE_FIELD_DEFINITION_CHANGED. It carries the whole definition
// (create-or-replace by FieldID); FieldID is stable across renames.
type FieldDefinitionChangedPayload struct {
	FieldID     uuid.UUID `json:"field_id"`
	FieldTypeID uuid.UUID `json:"field_type_id"`
	IsInvariant bool      `json:"is_invariant"`
	IsRequired  bool      `json:"is_required"`
	IsIndexed   bool      `json:"is_indexed"`
	IsUnique    bool      `json:"is_unique"`
	UniqueName  string    `json:"unique_name"`
	DisplayName *string   `json:"display_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Placeholder *string   `json:"placeholder,omitempty"`
}

// FieldDefinitionRemovedPayload is the payload for
// CONTENT_TYPE_FIELD_DEFINITION_REMOVED. Orders of later definitions shift
// down by one.
type FieldDefinitionRemovedPayload struct {
	FieldID uuid.UUID `json:"field_id"`
}

// Content payloads.

// ContentCreatedPayload is the payload for CONTENT_CREATED. It carries the
// invariant locale every content item starts with.
type ContentCreatedPayload struct {
	ContentTypeID uuid.UUID         `json:"content_type_id"`
	UniqueName    string            `json:"unique_name"`
	DisplayName   *string           `json:"display_name,omitempty"`
	Description   *string           `json:"description,omitempty"`
	FieldValues   map[string]string `json:"field_values,omitempty"` // fieldDefinitionId → raw value
}

// ContentLocaleChangedPayload is the payload for CONTENT_LOCALE_CHANGED.
// A nil LanguageID targets the invariant locale. The locale is replaced
// wholesale (upsert), not patched.
type ContentLocaleChangedPayload struct {
	LanguageID  *uuid.UUID        `json:"language_id,omitempty"`
	UniqueName  string            `json:"unique_name"`
	DisplayName *string           `json:"display_name,omitempty"`
	Description *string           `json:"description,omitempty"`
	FieldValues map[string]string `json:"field_values,omitempty"`
}

// ContentLocaleRemovedPayload is the payload for CONTENT_LOCALE_REMOVED.
// The invariant locale can never be removed, so LanguageID is required.
type ContentLocaleRemovedPayload struct {
	LanguageID uuid.UUID `json:"language_id"`
}

// ContentLocalePublishedPayload is the payload for CONTENT_LOCALE_PUBLISHED.
type ContentLocalePublishedPayload struct {
	LanguageID *uuid.UUID `json:"language_id,omitempty"`
}

// ContentLocaleUnpublishedPayload is the payload for
// CONTENT_LOCALE_UNPUBLISHED.
type ContentLocaleUnpublishedPayload struct {
	LanguageID *uuid.UUID `json:"language_id,omitempty"`
}
