// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
)

// ContentLocale is the model entity for the ContentLocale schema.
type ContentLocale struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
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
	// ContentID holds the value of the "content_id" field.
	ContentID uuid.UUID `json:"content_id,omitempty"`
	// LanguageID holds the value of the "language_id" field.
	LanguageID *uuid.UUID `json:"language_id,omitempty"`
	// UniqueName holds the value of the "unique_name" field.
	UniqueName string `json:"unique_name,omitempty"`
	// UniqueNameNormalized holds the value of the "unique_name_normalized" field.
	UniqueNameNormalized string `json:"unique_name_normalized,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// FieldValues holds the value of the "field_values" field.
	FieldValues map[string]string `json:"field_values,omitempty"`
	// IsPublished holds the value of the "is_published" field.
	IsPublished bool `json:"is_published,omitempty"`
	// PublishedVersion holds the value of the "published_version" field.
	PublishedVersion *int64 `json:"published_version,omitempty"`
	// PublishedBy holds the value of the "published_by" field.
	PublishedBy string `json:"published_by,omitempty"`
	// PublishedOn holds the value of the "published_on" field.
	PublishedOn *time.Time `json:"published_on,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentLocaleQuery when eager-loading is set.
	Edges        ContentLocaleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentLocaleEdges holds the relations/edges for other nodes in the graph.
type ContentLocaleEdges struct {
	// Content holds the value of the content edge.
	Content *Content `json:"content,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContentOrErr returns the Content value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContentLocaleEdges) ContentOrErr() (*Content, error) {
	if e.Content != nil {
		return e.Content, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: content.Label}
	}
	return nil, &NotLoadedError{edge: "content"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentLocale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentlocale.FieldLanguageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case contentlocale.FieldFieldValues:
			values[i] = new([]byte)
		case contentlocale.FieldIsPublished:
			values[i] = new(sql.NullBool)
		case contentlocale.FieldVersion, contentlocale.FieldPublishedVersion:
			values[i] = new(sql.NullInt64)
		case contentlocale.FieldCreatedBy, contentlocale.FieldUpdatedBy, contentlocale.FieldUniqueName, contentlocale.FieldUniqueNameNormalized, contentlocale.FieldDisplayName, contentlocale.FieldDescription, contentlocale.FieldPublishedBy:
			values[i] = new(sql.NullString)
		case contentlocale.FieldCreatedOn, contentlocale.FieldUpdatedOn, contentlocale.FieldPublishedOn:
			values[i] = new(sql.NullTime)
		case contentlocale.FieldID, contentlocale.FieldContentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentLocale fields.
func (_m *ContentLocale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentlocale.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contentlocale.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case contentlocale.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case contentlocale.FieldCreatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_on", values[i])
			} else if value.Valid {
				_m.CreatedOn = value.Time
			}
		case contentlocale.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = value.String
			}
		case contentlocale.FieldUpdatedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_on", values[i])
			} else if value.Valid {
				_m.UpdatedOn = value.Time
			}
		case contentlocale.FieldContentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value != nil {
				_m.ContentID = *value
			}
		case contentlocale.FieldLanguageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field language_id", values[i])
			} else if value.Valid {
				_m.LanguageID = new(uuid.UUID)
				*_m.LanguageID = *value.S.(*uuid.UUID)
			}
		case contentlocale.FieldUniqueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name", values[i])
			} else if value.Valid {
				_m.UniqueName = value.String
			}
		case contentlocale.FieldUniqueNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name_normalized", values[i])
			} else if value.Valid {
				_m.UniqueNameNormalized = value.String
			}
		case contentlocale.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case contentlocale.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case contentlocale.FieldFieldValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldValues); err != nil {
					return fmt.Errorf("unmarshal field field_values: %w", err)
				}
			}
		case contentlocale.FieldIsPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_published", values[i])
			} else if value.Valid {
				_m.IsPublished = value.Bool
			}
		case contentlocale.FieldPublishedVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field published_version", values[i])
			} else if value.Valid {
				_m.PublishedVersion = new(int64)
				*_m.PublishedVersion = value.Int64
			}
		case contentlocale.FieldPublishedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field published_by", values[i])
			} else if value.Valid {
				_m.PublishedBy = value.String
			}
		case contentlocale.FieldPublishedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_on", values[i])
			} else if value.Valid {
				_m.PublishedOn = new(time.Time)
				*_m.PublishedOn = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentLocale.
// This includes values selected through modifiers, order, etc.
func (_m *ContentLocale) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContent queries the "content" edge of the ContentLocale entity.
func (_m *ContentLocale) QueryContent() *ContentQuery {
	return NewContentLocaleClient(_m.config).QueryContent(_m)
}

// Update returns a builder for updating this ContentLocale.
// Note that you need to call ContentLocale.Unwrap() before calling this method if this ContentLocale
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentLocale) Update() *ContentLocaleUpdateOne {
	return NewContentLocaleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentLocale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentLocale) Unwrap() *ContentLocale {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentLocale is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentLocale) String() string {
	var builder strings.Builder
	builder.WriteString("ContentLocale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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
	builder.WriteString("content_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentID))
	builder.WriteString(", ")
	if v := _m.LanguageID; v != nil {
		builder.WriteString("language_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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
	builder.WriteString("field_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldValues))
	builder.WriteString(", ")
	builder.WriteString("is_published=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublished))
	builder.WriteString(", ")
	if v := _m.PublishedVersion; v != nil {
		builder.WriteString("published_version=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("published_by=")
	builder.WriteString(_m.PublishedBy)
	builder.WriteString(", ")
	if v := _m.PublishedOn; v != nil {
		builder.WriteString("published_on=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ContentLocales is a parsable slice of ContentLocale.
type ContentLocales []*ContentLocale
