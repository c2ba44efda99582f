// Code generated by ent, DO NOT EDIT.

package fieldtype

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the fieldtype type in the database.
	Label = "field_type"
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
	// FieldUniqueName holds the string denoting the unique_name field in the database.
	FieldUniqueName = "unique_name"
	// FieldUniqueNameNormalized holds the string denoting the unique_name_normalized field in the database.
	FieldUniqueNameNormalized = "unique_name_normalized"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// EdgeFieldDefinitions holds the string denoting the field_definitions edge name in mutations.
	EdgeFieldDefinitions = "field_definitions"
	// Table holds the table name of the fieldtype in the database.
	Table = "field_types"
	// FieldDefinitionsTable is the table that holds the field_definitions relation/edge.
	FieldDefinitionsTable = "field_definitions"
	// FieldDefinitionsInverseTable is the table name for the FieldDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "fielddefinition" package.
	FieldDefinitionsInverseTable = "field_definitions"
	// FieldDefinitionsColumn is the table column denoting the field_definitions relation/edge.
	FieldDefinitionsColumn = "field_type_id"
)

// Columns holds all SQL columns for fieldtype fields.
var Columns = []string{
	FieldID,
	FieldStreamID,
	FieldVersion,
	FieldCreatedBy,
	FieldCreatedOn,
	FieldUpdatedBy,
	FieldUpdatedOn,
	FieldRealmID,
	FieldUniqueName,
	FieldUniqueNameNormalized,
	FieldDisplayName,
	FieldDescription,
	FieldDataType,
	FieldSettings,
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
	// UniqueNameValidator is a validator for the "unique_name" field. It is called by the builders before save.
	UniqueNameValidator func(string) error
	// UniqueNameNormalizedValidator is a validator for the "unique_name_normalized" field. It is called by the builders before save.
	UniqueNameNormalizedValidator func(string) error
)

// DataType defines the type for the "data_type" enum field.
type DataType string

// DataType values.
const (
	DataTypeBoolean        DataType = "boolean"
	DataTypeDatetime       DataType = "datetime"
	DataTypeNumber         DataType = "number"
	DataTypeRelatedContent DataType = "related_content"
	DataTypeRichText       DataType = "rich_text"
	DataTypeSelect         DataType = "select"
	DataTypeString         DataType = "string"
	DataTypeTags           DataType = "tags"
)

func (dt DataType) String() string {
	return string(dt)
}

// DataTypeValidator is a validator for the "data_type" field enum values. It is called by the builders before save.
func DataTypeValidator(dt DataType) error {
	switch dt {
	case DataTypeBoolean, DataTypeDatetime, DataTypeNumber, DataTypeRelatedContent, DataTypeRichText, DataTypeSelect, DataTypeString, DataTypeTags:
		return nil
	default:
		return fmt.Errorf("fieldtype: invalid enum value for data_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the FieldType queries.
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

// ByDataType orders the results by the data_type field.
func ByDataType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataType, opts...).ToFunc()
}

// ByFieldDefinitionsCount orders the results by field_definitions count.
func ByFieldDefinitionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFieldDefinitionsStep(), opts...)
	}
}

// ByFieldDefinitions orders the results by field_definitions terms.
func ByFieldDefinitions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldDefinitionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFieldDefinitionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldDefinitionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FieldDefinitionsTable, FieldDefinitionsColumn),
	)
}
