// Code generated by ent, DO NOT EDIT.

package fielddefinition

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the fielddefinition type in the database.
	Label = "field_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentTypeID holds the string denoting the content_type_id field in the database.
	FieldContentTypeID = "content_type_id"
	// FieldFieldTypeID holds the string denoting the field_type_id field in the database.
	FieldFieldTypeID = "field_type_id"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldIsInvariant holds the string denoting the is_invariant field in the database.
	FieldIsInvariant = "is_invariant"
	// FieldIsRequired holds the string denoting the is_required field in the database.
	FieldIsRequired = "is_required"
	// FieldIsIndexed holds the string denoting the is_indexed field in the database.
	FieldIsIndexed = "is_indexed"
	// FieldIsUnique holds the string denoting the is_unique field in the database.
	FieldIsUnique = "is_unique"
	// FieldUniqueName holds the string denoting the unique_name field in the database.
	FieldUniqueName = "unique_name"
	// FieldUniqueNameNormalized holds the string denoting the unique_name_normalized field in the database.
	FieldUniqueNameNormalized = "unique_name_normalized"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPlaceholder holds the string denoting the placeholder field in the database.
	FieldPlaceholder = "placeholder"
	// EdgeContentType holds the string denoting the content_type edge name in mutations.
	EdgeContentType = "content_type"
	// EdgeFieldType holds the string denoting the field_type edge name in mutations.
	EdgeFieldType = "field_type"
	// Table holds the table name of the fielddefinition in the database.
	Table = "field_definitions"
	// ContentTypeTable is the table that holds the content_type relation/edge.
	ContentTypeTable = "field_definitions"
	// ContentTypeInverseTable is the table name for the ContentType entity.
	// It exists in this package in order to avoid circular dependency with the "contenttype" package.
	ContentTypeInverseTable = "content_types"
	// ContentTypeColumn is the table column denoting the content_type relation/edge.
	ContentTypeColumn = "content_type_id"
	// FieldTypeTable is the table that holds the field_type relation/edge.
	FieldTypeTable = "field_definitions"
	// FieldTypeInverseTable is the table name for the FieldType entity.
	// It exists in this package in order to avoid circular dependency with the "fieldtype" package.
	FieldTypeInverseTable = "field_types"
	// FieldTypeColumn is the table column denoting the field_type relation/edge.
	FieldTypeColumn = "field_type_id"
)

// Columns holds all SQL columns for fielddefinition fields.
var Columns = []string{
	FieldID,
	FieldContentTypeID,
	FieldFieldTypeID,
	FieldOrder,
	FieldIsInvariant,
	FieldIsRequired,
	FieldIsIndexed,
	FieldIsUnique,
	FieldUniqueName,
	FieldUniqueNameNormalized,
	FieldDisplayName,
	FieldDescription,
	FieldPlaceholder,
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
	// OrderValidator is a validator for the "order" field. It is called by the builders before save.
	OrderValidator func(int) error
	// DefaultIsInvariant holds the default value on creation for the "is_invariant" field.
	DefaultIsInvariant bool
	// DefaultIsRequired holds the default value on creation for the "is_required" field.
	DefaultIsRequired bool
	// DefaultIsIndexed holds the default value on creation for the "is_indexed" field.
	DefaultIsIndexed bool
	// DefaultIsUnique holds the default value on creation for the "is_unique" field.
	DefaultIsUnique bool
	// UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	UniqueNameValidator func(string) error
	// UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	UniqueNameNormalizedValidator func(string) error
)

// OrderOption defines the ordering options for the FieldDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContentTypeID orders the results by the content_type_id field.
func ByContentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentTypeID, opts...).ToFunc()
}

// ByFieldTypeID orders the results by the field_type_id field.
func ByFieldTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldTypeID, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByIsInvariant orders the results by the is_invariant field.
func ByIsInvariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsInvariant, opts...).ToFunc()
}

// ByIsRequired orders the results by the is_required field.
func ByIsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRequired, opts...).ToFunc()
}

// ByIsIndexed orders the results by the is_indexed field.
func ByIsIndexed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsIndexed, opts...).ToFunc()
}

// ByIsUnique orders the results by the is_unique field.
func ByIsUnique(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsUnique, opts...).ToFunc()
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

// ByPlaceholder orders the results by the placeholder field.
func ByPlaceholder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaceholder, opts...).ToFunc()
}

// ByContentTypeField orders the results by content_type field.
func ByContentTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentTypeStep(), sql.OrderByField(field, opts...))
	}
}

// ByFieldTypeField orders the results by field_type field.
func ByFieldTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldTypeStep(), sql.OrderByField(field, opts...))
	}
}
func newContentTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContentTypeTable, ContentTypeColumn),
	)
}
func newFieldTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FieldTypeTable, FieldTypeColumn),
	)
}
