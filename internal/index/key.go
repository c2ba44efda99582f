// Package index maintains the denormalized FieldIndex/UniqueIndex read
// models: per-field typed search rows and the application-enforced
// uniqueness constraint over dynamically-typed content values.
package index

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// Status selects which of the two parallel index snapshots a row belongs to.
type Status string

const (
	// StatusLatest tracks the current working values of a locale.
	StatusLatest Status = "latest"

	// StatusPublished tracks the values frozen at the last publish.
	StatusPublished Status = "published"
)

// Normalize folds a value or unique name for case/whitespace-insensitive
// comparison.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Key builds the composite uniqueness key for a field value:
// base64(fieldDefinitionId bytes) + "|" + normalized value.
func Key(fieldDefinitionID uuid.UUID, value string) string {
	return base64.StdEncoding.EncodeToString(fieldDefinitionID[:]) + "|" + Normalize(value)
}
