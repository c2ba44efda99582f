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
	"lattice-cms.io/lattice/ent/publishedcontent"
)

// PublishedContent is the model entity for the PublishedContent schema.
type PublishedContent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID uuid.UUID `json:"content_id,omitempty"`
	// ContentTypeID holds the value of the "content_type_id" field.
	ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
	// RealmID holds the value of the "realm_id" field.
	RealmID *uuid.UUID `json:"realm_id,omitempty"`
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
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// PublishedBy holds the value of the "published_by" field.
	PublishedBy string `json:"published_by,omitempty"`
	// PublishedOn holds the value of the "published_on" field.
	PublishedOn  time.Time `json:"published_on,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PublishedContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case publishedcontent.FieldRealmID, publishedcontent.FieldLanguageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case publishedcontent.FieldFieldValues:
			values[i] = new([]byte)
		case publishedcontent.FieldVersion:
			values[i] = new(sql.NullInt64)
		case publishedcontent.FieldUniqueName, publishedcontent.FieldUniqueNameNormalized, publishedcontent.FieldDisplayName, publishedcontent.FieldDescription, publishedcontent.FieldPublishedBy:
			values[i] = new(sql.NullString)
		case publishedcontent.FieldPublishedOn:
			values[i] = new(sql.NullTime)
		case publishedcontent.FieldID, publishedcontent.FieldContentID, publishedcontent.FieldContentTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PublishedContent fields.
func (_m *PublishedContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case publishedcontent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case publishedcontent.FieldContentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value != nil {
				_m.ContentID = *value
			}
		case publishedcontent.FieldContentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_id", values[i])
			} else if value != nil {
				_m.ContentTypeID = *value
			}
		case publishedcontent.FieldRealmID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field realm_id", values[i])
			} else if value.Valid {
				_m.RealmID = new(uuid.UUID)
				*_m.RealmID = *value.S.(*uuid.UUID)
			}
		case publishedcontent.FieldLanguageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field language_id", values[i])
			} else if value.Valid {
				_m.LanguageID = new(uuid.UUID)
				*_m.LanguageID = *value.S.(*uuid.UUID)
			}
		case publishedcontent.FieldUniqueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name", values[i])
			} else if value.Valid {
				_m.UniqueName = value.String
			}
		case publishedcontent.FieldUniqueNameNormalized:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_name_normalized", values[i])
			} else if value.Valid {
				_m.UniqueNameNormalized = value.String
			}
		case publishedcontent.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case publishedcontent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case publishedcontent.FieldFieldValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldValues); err != nil {
					return fmt.Errorf("unmarshal field field_values: %w", err)
				}
			}
		case publishedcontent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case publishedcontent.FieldPublishedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field published_by", values[i])
			} else if value.Valid {
				_m.PublishedBy = value.String
			}
		case publishedcontent.FieldPublishedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_on", values[i])
			} else if value.Valid {
				_m.PublishedOn = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PublishedContent.
// This includes values selected through modifiers, order, etc.
func (_m *PublishedContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PublishedContent.
// Note that you need to call PublishedContent.Unwrap() before calling this method if this PublishedContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PublishedContent) Update() *PublishedContentUpdateOne {
	return NewPublishedContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PublishedContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PublishedContent) Unwrap() *PublishedContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PublishedContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PublishedContent) String() string {
	var builder strings.Builder
	builder.WriteString("PublishedContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentID))
	builder.WriteString(", ")
	builder.WriteString("content_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentTypeID))
	builder.WriteString(", ")
	if v := _m.RealmID; v != nil {
		builder.WriteString("realm_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("published_by=")
	builder.WriteString(_m.PublishedBy)
	builder.WriteString(", ")
	builder.WriteString("published_on=")
	builder.WriteString(_m.PublishedOn.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PublishedContents is a parsable slice of PublishedContent.
type PublishedContents []*PublishedContent
