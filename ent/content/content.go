// Code generated by ent, DO NOT EDIT.

package content

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the content type in the database.
	Label = "content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStreamID holds the string denoting the stream_id field in the database.
	FieldStreamID = "stream_id"
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
	// FieldRealmID holds the string denoting the realm_id field in the database.
	FieldRealmID = "realm_id"
	// FieldContentTypeID holds the string denoting the content_type_id field in the database.
	FieldContentTypeID = "content_type_id"
	// EdgeContentType holds the string denoting the content_type edge name in mutations.
	EdgeContentType = "content_type"
	// EdgeLocales holds the string denoting the locales edge name in mutations.
	EdgeLocales = "locales"
	// Table holds the table name of the content in the database.
	Table = "contents"
	// ContentTypeTable is the table that holds the content_type relation/edge.
	ContentTypeTable = "contents"
	// ContentTypeInverseTable is the table name for the ContentType entity.
	// It exists in this package in order to avoid circular dependency with the "contenttype" package.
	ContentTypeInverseTable = "content_types"
	// ContentTypeColumn is the table column denoting the content_type relation/edge.
	ContentTypeColumn = "content_type_id"
	// LocalesTable is the table that holds the locales relation/edge.
	LocalesTable = "content_locales"
	// LocalesInverseTable is the table name for the ContentLocale entity.
	// It exists in this package in order to avoid circular dependency with the "contentlocale" package.
	LocalesInverseTable = "content_locales"
	// LocalesColumn is the table column denoting the locales relation/edge.
	LocalesColumn = "content_id"
)

// Columns holds all SQL columns for content fields.
var Columns = []string{
	FieldID,
	FieldStreamID,
	FieldVersion,
	FieldCreatedBy,
	FieldCreatedOn,
	FieldUpdatedBy,
	FieldUpdatedOn,
	FieldRealmID,
	FieldContentTypeID,
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
	// StreamIDValidator is a validator for the "stream_id" field. It is called by the builders before save.
	StreamIDValidator func(string) error
)

// OrderOption defines the ordering options for the Content queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStreamID orders the results by the stream_id field.
func ByStreamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamID, opts...).ToFunc()
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

// ByRealmID orders the results by the realm_id field.
func ByRealmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealmID, opts...).ToFunc()
}

// ByContentTypeID orders the results by the content_type_id field.
func ByContentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentTypeID, opts...).ToFunc()
}

// ByContentTypeField orders the results by content_type field.
func ByContentTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentTypeStep(), sql.OrderByField(field, opts...))
	}
}

// ByLocalesCount orders the results by locales count.
func ByLocalesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLocalesStep(), opts...)
	}
}

// ByLocales orders the results by locales terms.
func ByLocales(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocalesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newContentTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContentTypeTable, ContentTypeColumn),
	)
}
func newLocalesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocalesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LocalesTable, LocalesColumn),
	)
}
