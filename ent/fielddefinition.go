// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
)

// FieldDefinition is the model entity for the FieldDefinition schema.
type FieldDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContentTypeID holds the value of the "content_type_id" field.
	ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
	// FieldTypeID holds the value of the "field_type_id" field.
	FieldTypeID uuid.UUID `json:"field_type_id,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// IsInvariant holds the value of the "is_invariant" field.
	IsInvariant bool `json:"is_invariant,omitempty"`
	// IsRequired holds the value of the "is_required" field.
	IsRequired bool `json:"is_required,omitempty"`
	// IsIndexed holds the value of the "is_indexed" field.
	IsIndexed bool `json:"is_indexed,omitempty"`
	// IsUnique holds the value of the "is_unique" field.
	IsUnique bool `json:"is_unique,omitempty"`
	// UniqueName holds the value of the "unique_name" field.
	UniqueName string `json:"unique_name,omitempty"`
	// UniqueNameNormalized holds the value of the "unique_name_normalized" field.
	UniqueNameNormalized string `json:"unique_name_normalized,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Placeholder holds the value of the "placeholder" field.
	Placeholder string `json:"placeholder,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldDefinitionQuery when eager-loading is set.
	Edges        FieldDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldDefinitionEdges holds the relations/edges for other nodes in the graph.
type FieldDefinitionEdges struct {
	// ContentType holds the value of the content_type edge.
	ContentType *ContentType `json:"content_type,omitempty"`
	// FieldType holds the value of the field_type edge.
	FieldType *FieldType `json:"field_type,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContentTypeOrErr returns the ContentType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldDefinitionEdges) ContentTypeOrErr() (*ContentType, error) {
	if e.ContentType != nil {
		return e.ContentType, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contenttype.Label}
	}
	return nil, &NotLoadedError{edge: "content_type"}
}

// FieldTypeOrErr returns the FieldType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldDefinitionEdges) FieldTypeOrErr() (*FieldType, error) {
	if e.FieldType != nil {
		return e.FieldType, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: fieldtype.Label}
	}
	return nil, &NotLoadedError{edge: "field_type"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fielddefinition.FieldIsInvariant, fielddefinition.FieldIsRequired, fielddefinition.FieldIsIndexed, fielddefinition.FieldIsUnique:
			values[i] = new(sql.NullBool)
		case fielddefinition.FieldOrder:
			values[i] = new(sql.NullInt64)
		case fielddefinition.FieldUniqueName, fielddefinition.FieldUniqueNameNormalized, fielddefinition.FieldDisplayName, fielddefinition.FieldDescription, fielddefinition.FieldPlaceholder:
			values[i] = new(sql.NullString)
		case fielddefinition.FieldID, fielddefinition.FieldContentTypeID, fielddefinition.FieldFieldTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldDefinition fields.
func (_m *FieldDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fielddefinition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fielddefinition.FieldContentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_id", values[i])
			} else if value != nil {
				_m.ContentTypeID = *value
			}
		case fielddefinition.FieldFieldTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_type_id", values[i])
			} else if value != nil {
				_m.FieldTypeID = *value
			}
		case fielddefinition.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case fielddefinition.FieldIsInvariant:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_invariant", values[i])
			} else if value.Valid {
				_m.IsInvariant = value.Bool
			}
		case fielddefinition.FieldIsRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_required", values[i])
			} else if value.Valid {
				_m.IsRequired = value.Bool
			}
		case fielddefinition.FieldIsIndexed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_indexed", values[i])
			} else if value.Valid {
				_m.IsIndexed = value.Bool
			}
		case fielddefinition.FieldIsUnique:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_unique", values[i])
			} else if value.Valid {
				_m.IsUnique = value.Bool
			}
		case fielddefinition.FieldUniqueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name", values[i])
			} else if value.Valid {
				_m.UniqueName = value.String
			}
		case fielddefinition.FieldUniqueNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name_normalized", values[i])
			} else if value.Valid {
				_m.UniqueNameNormalized = value.String
			}
		case fielddefinition.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case fielddefinition.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case fielddefinition.FieldPlaceholder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field placeholder", values[i])
			} else if value.Valid {
				_m.Placeholder = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FieldDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *FieldDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContentType queries the "content_type" edge of the FieldDefinition entity.
func (_m *FieldDefinition) QueryContentType() *ContentTypeQuery {
	return NewFieldDefinitionClient(_m.config).QueryContentType(_m)
}

// QueryFieldType queries the "field_type" edge of the FieldDefinition entity.
func (_m *FieldDefinition) QueryFieldType() *FieldTypeQuery {
	return NewFieldDefinitionClient(_m.config).QueryFieldType(_m)
}

// Update returns a builder for updating this FieldDefinition.
// Note that you need to call FieldDefinition.Unwrap() before calling this method if this FieldDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldDefinition) Update() *FieldDefinitionUpdateOne {
	return NewFieldDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldDefinition) Unwrap() *FieldDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("FieldDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentTypeID))
	builder.WriteString(", ")
	builder.WriteString("field_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldTypeID))
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("is_invariant=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsInvariant))
	builder.WriteString(", ")
	builder.WriteString("is_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRequired))
	builder.WriteString(", ")
	builder.WriteString("is_indexed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsIndexed))
	builder.WriteString(", ")
	builder.WriteString("is_unique=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsUnique))
	builder.WriteString(", ")
	builder.WriteString("unique_name=")
	builder.WriteString(_m.UniqueName)
	builder.WriteString(", ")
	builder.WriteString("unique_name_normalized=")
	builder.WriteString(_m.UniqueNameNormalized)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("placeholder=")
	builder.WriteString(_m.Placeholder)
	builder.WriteByte(')')
	return builder.String()
}

// FieldDefinitions is a parsable slice of FieldDefinition.
type FieldDefinitions []*FieldDefinition
