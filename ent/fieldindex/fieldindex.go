// Code generated by ent, DO NOT EDIT.

package fieldindex

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fieldindex type in the database.
	Label = "field_index"
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
	// FieldValueBoolean holds the string denoting the value_boolean field in the database.
	FieldValueBoolean = "value_boolean"
	// FieldValueDatetime holds the string denoting the value_datetime field in the database.
	FieldValueDatetime = "value_datetime"
	// FieldValueNumber holds the string denoting the value_number field in the database.
	FieldValueNumber = "value_number"
	// FieldValueRelatedContent holds the string denoting the value_related_content field in the database.
	FieldValueRelatedContent = "value_related_content"
	// FieldValueRichText holds the string denoting the value_rich_text field in the database.
	FieldValueRichText = "value_rich_text"
	// FieldValueSelect holds the string denoting the value_select field in the database.
	FieldValueSelect = "value_select"
	// FieldValueString holds the string denoting the value_string field in the database.
	FieldValueString = "value_string"
	// FieldValueTags holds the string denoting the value_tags field in the database.
	FieldValueTags = "value_tags"
	// Table holds the table name of the fieldindex in the database.
	Table = "field_indexes"
)

// Columns holds all SQL columns for fieldindex fields.
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
	FieldValueBoolean,
	FieldValueDatetime,
	FieldValueNumber,
	FieldValueRelatedContent,
	FieldValueRichText,
	FieldValueSelect,
	FieldValueString,
	FieldValueTags,
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
		return fmt.Errorf("fieldindex: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the FieldIndex queries.
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

// ByValueBoolean orders the results by the value_boolean field.
func ByValueBoolean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueBoolean, opts...).ToFunc()
}

// ByValueDatetime orders the results by the value_datetime field.
func ByValueDatetime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueDatetime, opts...).ToFunc()
}

// ByValueNumber orders the results by the value_number field.
func ByValueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueNumber, opts...).ToFunc()
}

// ByValueRelatedContent orders the results by the value_related_content field.
func ByValueRelatedContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueRelatedContent, opts...).ToFunc()
}

// ByValueRichText orders the results by the value_rich_text field.
func ByValueRichText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueRichText, opts...).ToFunc()
}

// ByValueSelect orders the results by the value_select field.
func ByValueSelect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueSelect, opts...).ToFunc()
}

// ByValueString orders the results by the value_string field.
func ByValueString(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueString, opts...).ToFunc()
}

// ByValueTags orders the results by the value_tags field.
func ByValueTags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueTags, opts...).ToFunc()
}
