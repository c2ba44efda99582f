// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Actor is the predicate function for actor builders.
type Actor func(*sql.Selector)

// ApiKey is the predicate function for apikey builders.
type ApiKey func(*sql.Selector)

// Content is the predicate function for content builders.
type Content func(*sql.Selector)

// ContentLocale is the predicate function for contentlocale builders.
type ContentLocale func(*sql.Selector)

// ContentType is the predicate function for contenttype builders.
type ContentType func(*sql.Selector)

// FieldDefinition is the predicate function for fielddefinition builders.
type FieldDefinition func(*sql.Selector)

// FieldIndex is the predicate function for fieldindex builders.
type FieldIndex func(*sql.Selector)

// FieldType is the predicate function for fieldtype builders.
type FieldType func(*sql.Selector)

// Language is the predicate function for language builders.
type Language func(*sql.Selector)

// PublishedContent is the predicate function for publishedcontent builders.
type PublishedContent func(*sql.Selector)

// Realm is the predicate function for realm builders.
type Realm func(*sql.Selector)

// UniqueIndex is the predicate function for uniqueindex builders.
type UniqueIndex func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
