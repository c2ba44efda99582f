// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/contenttype"
)

// ContentType is the model entity for the ContentType schema.
type ContentType struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StreamID holds the value of the "stream_id" field.
	StreamID string `json:"stream_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedOn holds the value of the "created_on" field.
	CreatedOn time.Time `json:"created_on,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// UpdatedOn holds the value of the "updated_on" field.
	UpdatedOn time.Time `json:"updated_on,omitempty"`
	// RealmID holds the value of the "realm_id" field.
	RealmID *uuid.UUID `json:"realm_id,omitempty"`
	// IsInvariant holds the value of the "is_invariant" field.
	IsInvariant bool `json:"is_invariant,omitempty"`
	// UniqueName holds the value of the "unique_name" field.
	UniqueName string `json:"unique_name,omitempty"`
	// UniqueNameNormalized holds the value of the "unique_name_normalized" field.
	UniqueNameNormalized string `json:"unique_name_normalized,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// FieldCount holds the value of the "field_count" field.
	FieldCount int `json:"field_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentTypeQuery when eager-loading is set.
	Edges        ContentTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentTypeEdges holds the relations/edges for other nodes in the graph.
type ContentTypeEdges struct {
	// FieldDefinitions holds the value of the field_definitions edge.
	FieldDefinitions []*FieldDefinition `json:"field_definitions,omitempty"`
	// Contents holds the value of the contents edge.
	Contents []*Content `json:"contents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FieldDefinitionsOrErr returns the FieldDefinitions value or an error if the edge
// was not loaded in eager-loading.
func (e ContentTypeEdges) FieldDefinitionsOrErr() ([]*FieldDefinition, error) {
	if e.loadedTypes[0] {
		return e.FieldDefinitions, nil
	}
	return nil, &NotLoadedError{edge: "field_definitions"}
}

// ContentsOrErr returns the Contents value or an error if the edge
// was not loaded in eager-loading.
func (e ContentTypeEdges) ContentsOrErr() ([]*Content, error) {
	if e.loadedTypes[1] {
		return e.Contents, nil
	}
	return nil, &NotLoadedError{edge: "contents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contenttype.FieldRealmID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contenttype.FieldIsInvariant:
			values[i] = new(sql.NullBool)
		case contenttype.FieldVersion, contenttype.FieldFieldCount:
			values[i] = new(sql.NullInt64)
		case contenttype.FieldStreamID, contenttype.FieldCreatedBy, contenttype.FieldUpdatedBy, contenttype.FieldUniqueName, contenttype.FieldUniqueNameNormalized, contenttype.FieldDisplayName, contenttype.FieldDescription:
			values[i] = new(sql.NullString)
		case contenttype.FieldCreatedOn, contenttype.FieldUpdatedOn:
			values[i] = new(sql.NullTime)
		case contenttype.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentType fields.
func (_m *ContentType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contenttype.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contenttype.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case contenttype.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case contenttype.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case contenttype.FieldCreatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_on", values[i])
			} else if value.Valid {
				_m.CreatedOn = value.Time
			}
		case contenttype.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case contenttype.FieldUpdatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_on", values[i])
			} else if value.Valid {
				_m.UpdatedOn = value.Time
			}
		case contenttype.FieldRealmID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field realm_id", values[i])
			} else if value.Valid {
				_m.RealmID = new(uuid.UUID)
				*_m.RealmID = *value.S.(*uuid.UUID)
			}
		case contenttype.FieldIsInvariant:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_invariant", values[i])
			} else if value.Valid {
				_m.IsInvariant = value.Bool
			}
		case contenttype.FieldUniqueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name", values[i])
			} else if value.Valid {
				_m.UniqueName = value.String
			}
		case contenttype.FieldUniqueNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name_normalized", values[i])
			} else if value.Valid {
				_m.UniqueNameNormalized = value.String
			}
		case contenttype.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case contenttype.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case contenttype.FieldFieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field field_count", values[i])
			} else if value.Valid {
				_m.FieldCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentType.
// This includes values selected through modifiers, order, etc.
func (_m *ContentType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFieldDefinitions queries the "field_definitions" edge of the ContentType entity.
func (_m *ContentType) QueryFieldDefinitions() *FieldDefinitionQuery {
	return NewContentTypeClient(_m.config).QueryFieldDefinitions(_m)
}

// QueryContents queries the "contents" edge of the ContentType entity.
func (_m *ContentType) QueryContents() *ContentQuery {
	return NewContentTypeClient(_m.config).QueryContents(_m)
}

// Update returns a builder for updating this ContentType.
// Note that you need to call ContentType.Unwrap() before calling this method if this ContentType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentType) Update() *ContentTypeUpdateOne {
	return NewContentTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentType) Unwrap() *ContentType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentType) String() string {
	var builder strings.Builder
	builder.WriteString("ContentType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stream_id=")
	builder.WriteString(_m.StreamID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_on=")
	builder.WriteString(_m.CreatedOn.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(_m.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_on=")
	builder.WriteString(_m.UpdatedOn.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RealmID; v != nil {
		builder.WriteString("realm_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_invariant=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsInvariant))
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
	builder.WriteString("field_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldCount))
	builder.WriteByte(')')
	return builder.String()
}

// ContentTypes is a parsable slice of ContentType.
type ContentTypes []*ContentType
