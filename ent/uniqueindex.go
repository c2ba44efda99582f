// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/uniqueindex"
)

// UniqueIndex is the model entity for the UniqueIndex schema.
type UniqueIndex struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RealmID holds the value of the "realm_id" field.
	RealmID *uuid.UUID `json:"realm_id,omitempty"`
	// Status holds the value of the "status" field.
	Status uniqueindex.Status `json:"status,omitempty"`
	// ContentTypeID holds the value of the "content_type_id" field.
	ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
	// ContentTypeName holds the value of the "content_type_name" field.
	ContentTypeName string `json:"content_type_name,omitempty"`
	// LanguageID holds the value of the "language_id" field.
	LanguageID *uuid.UUID `json:"language_id,omitempty"`
	// LanguageCode holds the value of the "language_code" field.
	LanguageCode string `json:"language_code,omitempty"`
	// LanguageIsDefault holds the value of the "language_is_default" field.
	LanguageIsDefault bool `json:"language_is_default,omitempty"`
	// FieldTypeID holds the value of the "field_type_id" field.
	FieldTypeID uuid.UUID `json:"field_type_id,omitempty"`
	// FieldTypeName holds the value of the "field_type_name" field.
	FieldTypeName string `json:"field_type_name,omitempty"`
	// FieldDefinitionID holds the value of the "field_definition_id" field.
	FieldDefinitionID uuid.UUID `json:"field_definition_id,omitempty"`
	// FieldDefinitionName holds the value of the "field_definition_name" field.
	FieldDefinitionName string `json:"field_definition_name,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID uuid.UUID `json:"content_id,omitempty"`
	// ContentLocaleID holds the value of the "content_locale_id" field.
	ContentLocaleID uuid.UUID `json:"content_locale_id,omitempty"`
	// ContentLocaleName holds the value of the "content_locale_name" field.
	ContentLocaleName string `json:"content_locale_name,omitempty"`
	// Version holds the value of the "version" field.
	Version int64 `json:"version,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Key holds the value of the "key" field.
	Key          string `json:"key,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UniqueIndex) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uniqueindex.FieldRealmID, uniqueindex.FieldLanguageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case uniqueindex.FieldLanguageIsDefault:
			values[i] = new(sql.NullBool)
		case uniqueindex.FieldVersion:
			values[i] = new(sql.NullInt64)
		case uniqueindex.FieldStatus, uniqueindex.FieldContentTypeName, uniqueindex.FieldLanguageCode, uniqueindex.FieldFieldTypeName, uniqueindex.FieldFieldDefinitionName, uniqueindex.FieldContentLocaleName, uniqueindex.FieldValue, uniqueindex.FieldKey:
			values[i] = new(sql.NullString)
		case uniqueindex.FieldID, uniqueindex.FieldContentTypeID, uniqueindex.FieldFieldTypeID, uniqueindex.FieldFieldDefinitionID, uniqueindex.FieldContentID, uniqueindex.FieldContentLocaleID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UniqueIndex fields.
func (_m *UniqueIndex) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uniqueindex.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uniqueindex.FieldRealmID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field realm_id", values[i])
			} else if value.Valid {
				_m.RealmID = new(uuid.UUID)
				*_m.RealmID = *value.S.(*uuid.UUID)
			}
		case uniqueindex.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = uniqueindex.Status(value.String)
			}
		case uniqueindex.FieldContentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_id", values[i])
			} else if value != nil {
				_m.ContentTypeID = *value
			}
		case uniqueindex.FieldContentTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_name", values[i])
			} else if value.Valid {
				_m.ContentTypeName = value.String
			}
		case uniqueindex.FieldLanguageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field language_id", values[i])
			} else if value.Valid {
				_m.LanguageID = new(uuid.UUID)
				*_m.LanguageID = *value.S.(*uuid.UUID)
			}
		case uniqueindex.FieldLanguageCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language_code", values[i])
			} else if value.Valid {
				_m.LanguageCode = value.String
			}
		case uniqueindex.FieldLanguageIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field language_is_default", values[i])
			} else if value.Valid {
				_m.LanguageIsDefault = value.Bool
			}
		case uniqueindex.FieldFieldTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_type_id", values[i])
			} else if value != nil {
				_m.FieldTypeID = *value
			}
		case uniqueindex.FieldFieldTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type_name", values[i])
			} else if value.Valid {
				_m.FieldTypeName = value.String
			}
		case uniqueindex.FieldFieldDefinitionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_definition_id", values[i])
			} else if value != nil {
				_m.FieldDefinitionID = *value
			}
		case uniqueindex.FieldFieldDefinitionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_definition_name", values[i])
			} else if value.Valid {
				_m.FieldDefinitionName = value.String
			}
		case uniqueindex.FieldContentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value != nil {
				_m.ContentID = *value
			}
		case uniqueindex.FieldContentLocaleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_locale_id", values[i])
			} else if value != nil {
				_m.ContentLocaleID = *value
			}
		case uniqueindex.FieldContentLocaleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_locale_name", values[i])
			} else if value.Valid {
				_m.ContentLocaleName = value.String
			}
		case uniqueindex.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case uniqueindex.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case uniqueindex.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the UniqueIndex.
// This includes values selected through modifiers, order, etc.
func (_m *UniqueIndex) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UniqueIndex.
// Note that you need to call UniqueIndex.Unwrap() before calling this method if this UniqueIndex
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UniqueIndex) Update() *UniqueIndexUpdateOne {
	return NewUniqueIndexClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UniqueIndex entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UniqueIndex) Unwrap() *UniqueIndex {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UniqueIndex is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UniqueIndex) String() string {
	var builder strings.Builder
	builder.WriteString("UniqueIndex(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.RealmID; v != nil {
		builder.WriteString("realm_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("content_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentTypeID))
	builder.WriteString(", ")
	builder.WriteString("content_type_name=")
	builder.WriteString(_m.ContentTypeName)
	builder.WriteString(", ")
	if v := _m.LanguageID; v != nil {
		builder.WriteString("language_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("language_code=")
	builder.WriteString(_m.LanguageCode)
	builder.WriteString(", ")
	builder.WriteString("language_is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.LanguageIsDefault))
	builder.WriteString(", ")
	builder.WriteString("field_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldTypeID))
	builder.WriteString(", ")
	builder.WriteString("field_type_name=")
	builder.WriteString(_m.FieldTypeName)
	builder.WriteString(", ")
	builder.WriteString("field_definition_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldDefinitionID))
	builder.WriteString(", ")
	builder.WriteString("field_definition_name=")
	builder.WriteString(_m.FieldDefinitionName)
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentID))
	builder.WriteString(", ")
	builder.WriteString("content_locale_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentLocaleID))
	builder.WriteString(", ")
	builder.WriteString("content_locale_name=")
	builder.WriteString(_m.ContentLocaleName)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteByte(')')
	return builder.String()
}

// UniqueIndexes is a parsable slice of UniqueIndex.
type UniqueIndexes []*UniqueIndex
