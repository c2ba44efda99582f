// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contenttype"
)

// Content is the model entity for the Content schema.
type Content struct {
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
	// ContentTypeID holds the value of the "content_type_id" field.
	ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentQuery when eager-loading is set.
	Edges        ContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentEdges holds the relations/edges for other nodes in the graph.
type ContentEdges struct {
	// ContentType holds the value of the content_type edge.
	ContentType *ContentType `json:"content_type,omitempty"`
	// Locales holds the value of the locales edge.
	Locales []*ContentLocale `json:"locales,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ContentTypeOrErr returns the ContentType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentEdges) ContentTypeOrErr() (*ContentType, error) {
	if e.ContentType != nil {
		return e.ContentType, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contenttype.Label}
	}
	return nil, &NotLoadedError{edge: "content_type"}
}

// LocalesOrErr returns the Locales value or an error if the edge
// was not loaded in eager-loading.
func (e ContentEdges) LocalesOrErr() ([]*ContentLocale, error) {
	if e.loadedTypes[1] {
		return e.Locales, nil
	}
	return nil, &NotLoadedError{edge: "locales"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Content) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case content.FieldRealmID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case content.FieldVersion:
			values[i] = new(sql.NullInt64)
		case content.FieldStreamID, content.FieldCreatedBy, content.FieldUpdatedBy:
			values[i] = new(sql.NullString)
		case content.FieldCreatedOn, content.FieldUpdatedOn:
			values[i] = new(sql.NullTime)
		case content.FieldID, content.FieldContentTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Content fields.
func (_m *Content) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case content.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case content.FieldStreamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_id", values[i])
			} else if value.Valid {
				_m.StreamID = value.String
			}
		case content.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case content.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case content.FieldCreatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_on", values[i])
			} else if value.Valid {
				_m.CreatedOn = value.Time
			}
		case content.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case content.FieldUpdatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_on", values[i])
			} else if value.Valid {
				_m.UpdatedOn = value.Time
			}
		case content.FieldRealmID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field realm_id", values[i])
			} else if value.Valid {
				_m.RealmID = new(uuid.UUID)
				*_m.RealmID = *value.S.(*uuid.UUID)
			}
		case content.FieldContentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_id", values[i])
			} else if value != nil {
				_m.ContentTypeID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Content.
// This includes values selected through modifiers, order, etc.
func (_m *Content) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContentType queries the "content_type" edge of the Content entity.
func (_m *Content) QueryContentType() *ContentTypeQuery {
	return NewContentClient(_m.config).QueryContentType(_m)
}

// QueryLocales queries the "locales" edge of the Content entity.
func (_m *Content) QueryLocales() *ContentLocaleQuery {
	return NewContentClient(_m.config).QueryLocales(_m)
}

// Update returns a builder for updating this Content.
// Note that you need to call Content.Unwrap() before calling this method if this Content
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Content) Update() *ContentUpdateOne {
	return NewContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Content entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Content) Unwrap() *Content {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Content is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Content) String() string {
	var builder strings.Builder
	builder.WriteString("Content(")
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
	builder.WriteString("content_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentTypeID))
	builder.WriteByte(')')
	return builder.String()
}

// Contents is a parsable slice of Content.
type Contents []*Content
