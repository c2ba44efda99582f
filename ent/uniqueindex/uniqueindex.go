// Code generated by ent, DO NOT EDIT.

package uniqueindex

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the uniqueindex type in the database.
	Label = "unique_index"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRealmID holds the string denoting the realm_id field in the database.
	FieldRealmID = "realm_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContentTypeID holds the string denoting the content_type_id field in the database.
	FieldContentTypeID = "content_type_id"
	// FieldContentTypeName holds the string denoting the content_type_name field in the database.
	FieldContentTypeName = "content_type_name"
	// FieldLanguageID holds the string denoting the language_id field in the database.
	FieldLanguageID = "language_id"
	// FieldLanguageCode holds the string denoting the language_code field in the database.
	FieldLanguageCode = "language_code"
	// FieldLanguageIsDefault holds the string denoting the language_is_default field in the database.
	FieldLanguageIsDefault = "language_is_default"
	// FieldFieldTypeID holds the string denoting the field_type_id field in the database.
	FieldFieldTypeID = "field_type_id"
	// FieldFieldTypeName holds the string denoting the field_type_name field in the database.
	FieldFieldTypeName = "field_type_name"
	// FieldFieldDefinitionID holds the string denoting the field_definition_id field in the database.
	FieldFieldDefinitionID = "field_definition_id"
	// FieldFieldDefinitionName holds the string denoting the field_definition_name field in the database.
	FieldFieldDefinitionName = "field_definition_name"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldContentLocaleID holds the string denoting the content_locale_id field in the database.
	FieldContentLocaleID = "content_locale_id"
	// FieldContentLocaleName holds the string denoting the content_locale_name field in the database.
	FieldContentLocaleName = "content_locale_name"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// Table holds the table name of the uniqueindex in the database.
	Table = "unique_indexes"
)

// Columns holds all SQL columns for uniqueindex fields.
var Columns = []string{
	FieldID,
	FieldRealmID,
	FieldStatus,
	FieldContentTypeID,
	FieldContentTypeName,
	FieldLanguageID,
	FieldLanguageCode,
	FieldLanguageIsDefault,
	FieldFieldTypeID,
	FieldFieldTypeName,
	FieldFieldDefinitionID,
	FieldFieldDefinitionName,
	FieldContentID,
	FieldContentLocaleID,
	FieldContentLocaleName,
	FieldVersion,
	FieldValue,
	FieldKey,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContentTypeNameValidator is a validator for the "content_type_name" field. It is called by the builders before save.
	ContentTypeNameValidator func(string) error
	// DefaultLanguageIsDefault holds the default value on creation for the "language_is_default" field.
	DefaultLanguageIsDefault bool
	// FieldTypeNameValidator is a validator for the "field_type_name" field. It is called by the builders before save.
	FieldTypeNameValidator func(string) error
	// FieldDefinitionNameValidator is a validator for the "field_definition_name" field. It is called by the builders before save.
	FieldDefinitionNameValidator func(string) error
	// ContentLocaleNameValidator is a validator for the "content_locale_name" field. It is called by the builders before save.
	ContentLocaleNameValidator func(string) error
	// ValueValidator is a validator for the "value" field. It is called by the builders before save.
	ValueValidator func(string) error
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusLatest    Status = "latest"
	StatusPublished Status = "published"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusLatest, StatusPublished:
		return nil
	default:
		return fmt.Errorf("uniqueindex: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UniqueIndex queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRealmID orders the results by the realm_id field.
func ByRealmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealmID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContentTypeID orders the results by the content_type_id field.
func ByContentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentTypeID, opts...).ToFunc()
}

// ByContentTypeName orders the results by the content_type_name field.
func ByContentTypeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentTypeName, opts...).ToFunc()
}

// ByLanguageID orders the results by the language_id field.
func ByLanguageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageID, opts...).ToFunc()
}

// ByLanguageCode orders the results by the language_code field.
func ByLanguageCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageCode, opts...).ToFunc()
}

// ByLanguageIsDefault orders the results by the language_is_default field.
func ByLanguageIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageIsDefault, opts...).ToFunc()
}

// ByFieldTypeID orders the results by the field_type_id field.
func ByFieldTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldTypeID, opts...).ToFunc()
}

// ByFieldTypeName orders the results by the field_type_name field.
func ByFieldTypeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldTypeName, opts...).ToFunc()
}

// ByFieldDefinitionID orders the results by the field_definition_id field.
func ByFieldDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldDefinitionID, opts...).ToFunc()
}

// ByFieldDefinitionName orders the results by the field_definition_name field.
func ByFieldDefinitionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldDefinitionName, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByContentLocaleID orders the results by the content_locale_id field.
func ByContentLocaleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentLocaleID, opts...).ToFunc()
}

// ByContentLocaleName orders the results by the content_locale_name field.
func ByContentLocaleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentLocaleName, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}
