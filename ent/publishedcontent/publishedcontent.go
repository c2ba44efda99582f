// Code generated by ent, DO NOT EDIT.

package publishedcontent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the publishedcontent type in the database.
	Label = "published_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldContentTypeID holds the string denoting the content_type_id field in the database.
	FieldContentTypeID = "content_type_id"
	// FieldRealmID holds the string denoting the realm_id field in the database.
	FieldRealmID = "realm_id"
	// FieldLanguageID holds the string denoting the language_id field in the database.
	FieldLanguageID = "language_id"
	// FieldUniqueName holds the string denoting the unique_name field in the database.
	FieldUniqueName = "unique_name"
	// FieldUniqueNameNormalized holds the string denoting the unique_name_normalized field in the database.
	FieldUniqueNameNormalized = "unique_name_normalized"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldFieldValues holds the string denoting the field_values field in the database.
	FieldFieldValues = "field_values"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPublishedBy holds the string denoting the published_by field in the database.
	FieldPublishedBy = "published_by"
	// FieldPublishedOn holds the string denoting the published_on field in the database.
	FieldPublishedOn = "published_on"
	// Table holds the table name of the publishedcontent in the database.
	Table = "published_contents"
)

// Columns holds all SQL columns for publishedcontent fields.
var Columns = []string{
	FieldID,
	FieldContentID,
	FieldContentTypeID,
	FieldRealmID,
	FieldLanguageID,
	FieldUniqueName,
	FieldUniqueNameNormalized,
	FieldDisplayName,
	FieldDescription,
	FieldFieldValues,
	FieldVersion,
	FieldPublishedBy,
	FieldPublishedOn,
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
	// UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	UniqueNameValidator func(string) error
	// UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	UniqueNameNormalizedValidator func(string) error
)

// OrderOption defines the ordering options for the PublishedContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByContentTypeID orders the results by the content_type_id field.
func ByContentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentTypeID, opts...).ToFunc()
}

// ByRealmID orders the results by the realm_id field.
func ByRealmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealmID, opts...).ToFunc()
}

// ByLanguageID orders the results by the language_id field.
func ByLanguageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageID, opts...).ToFunc()
}

// ByUniqueName orders the results by the unique_name field.
func ByUniqueName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueName, opts...).ToFunc()
}

// ByUniqueNameNormalized orders the results by the unique_name_normalized field.
func ByUniqueNameNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniqueNameNormalized, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPublishedBy orders the results by the published_by field.
func ByPublishedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedBy, opts...).ToFunc()
}

// ByPublishedOn orders the results by the published_on field.
func ByPublishedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedOn, opts...).ToFunc()
}
