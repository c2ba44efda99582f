// Code generated by ent, DO NOT EDIT.

package contentlocale

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contentlocale type in the database.
	Label = "content_locale"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedOn holds the string denoting the created_on field in the database.
	FieldCreatedOn = "created_on"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldUpdatedOn holds the string denoting the updated_on field in the database.
	FieldUpdatedOn = "updated_on"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
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
	// FieldIsPublished holds the string denoting the is_published field in the database.
	FieldIsPublished = "is_published"
	// FieldPublishedVersion holds the string denoting the published_version field in the database.
	FieldPublishedVersion = "published_version"
	// FieldPublishedBy holds the string denoting the published_by field in the database.
	FieldPublishedBy = "published_by"
	// FieldPublishedOn holds the string denoting the published_on field in the database.
	FieldPublishedOn = "published_on"
	// EdgeContent holds the string denoting the content edge name in mutations.
	EdgeContent = "content"
	// Table holds the table name of the contentlocale in the database.
	Table = "content_locales"
	// ContentTable is the table that holds the content relation/edge.
	ContentTable = "content_locales"
	// ContentInverseTable is the table name for the Content entity.
	// It exists in this package in order to avoid circular dependency with the "content" package.
	ContentInverseTable = "contents"
	// ContentColumn is the table column denoting the content relation/edge.
	ContentColumn = "content_id"
)

// Columns holds all SQL columns for contentlocale fields.
var Columns = []string{
	FieldID,
	FieldVersion,
	FieldCreatedBy,
	FieldCreatedOn,
	FieldUpdatedBy,
	FieldUpdatedOn,
	FieldContentID,
	FieldLanguageID,
	FieldUniqueName,
	FieldUniqueNameNormalized,
	FieldDisplayName,
	FieldDescription,
	FieldFieldValues,
	FieldIsPublished,
	FieldPublishedVersion,
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
	// DefaultIsPublished holds the default value on creation for the "is_published" field.
	DefaultIsPublished bool
)

// OrderOption defines the ordering options for the ContentLocale queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedOn orders the results by the created_on field.
func ByCreatedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedOn, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByUpdatedOn orders the results by the updated_on field.
func ByUpdatedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedOn, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
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

// ByIsPublished orders the results by the is_published field.
func ByIsPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPublished, opts...).ToFunc()
}

// ByPublishedVersion orders the results by the published_version field.
func ByPublishedVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedVersion, opts...).ToFunc()
}

// ByPublishedBy orders the results by the published_by field.
func ByPublishedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedBy, opts...).ToFunc()
}

// ByPublishedOn orders the results by the published_on field.
func ByPublishedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedOn, opts...).ToFunc()
}

// ByContentField orders the results by content field.
func ByContentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentStep(), sql.OrderByField(field, opts...))
	}
}
func newContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
	)
}
