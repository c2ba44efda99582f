// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/fieldindex"
)

// FieldIndex is the model entity for the FieldIndex schema.
type FieldIndex struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RealmID holds the value of the "realm_id" field.
	RealmID *uuid.UUID `json:"realm_id,omitempty"`
	// Status holds the value of the "status" field.
	Status fieldindex.Status `json:"status,omitempty"`
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
	// ValueBoolean holds the value of the "value_boolean" field.
	ValueBoolean *bool `json:"value_boolean,omitempty"`
	// ValueDatetime holds the value of the "value_datetime" field.
	ValueDatetime *time.Time `json:"value_datetime,omitempty"`
	// ValueNumber holds the value of the "value_number" field.
	ValueNumber *float64 `json:"value_number,omitempty"`
	// ValueRelatedContent holds the value of the "value_related_content" field.
	ValueRelatedContent *string `json:"value_related_content,omitempty"`
	// ValueRichText holds the value of the "value_rich_text" field.
	ValueRichText *string `json:"value_rich_text,omitempty"`
	// ValueSelect holds the value of the "value_select" field.
	ValueSelect *string `json:"value_select,omitempty"`
	// ValueString holds the value of the "value_string" field.
	ValueString *string `json:"value_string,omitempty"`
	// ValueTags holds the value of the "value_tags" field.
	ValueTags    *string `json:"value_tags,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldIndex) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldindex.FieldRealmID, fieldindex.FieldLanguageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case fieldindex.FieldLanguageIsDefault, fieldindex.FieldValueBoolean:
			values[i] = new(sql.NullBool)
		case fieldindex.FieldValueNumber:
			values[i] = new(sql.NullFloat64)
		case fieldindex.FieldVersion:
			values[i] = new(sql.NullInt64)
		case fieldindex.FieldStatus, fieldindex.FieldContentTypeName, fieldindex.FieldLanguageCode, fieldindex.FieldFieldTypeName, fieldindex.FieldFieldDefinitionName, fieldindex.FieldContentLocaleName, fieldindex.FieldValueRelatedContent, fieldindex.FieldValueRichText, fieldindex.FieldValueSelect, fieldindex.FieldValueString, fieldindex.FieldValueTags:
			values[i] = new(sql.NullString)
		case fieldindex.FieldValueDatetime:
			values[i] = new(sql.NullTime)
		case fieldindex.FieldID, fieldindex.FieldContentTypeID, fieldindex.FieldFieldTypeID, fieldindex.FieldFieldDefinitionID, fieldindex.FieldContentID, fieldindex.FieldContentLocaleID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldIndex fields.
func (_m *FieldIndex) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldindex.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fieldindex.FieldRealmID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field realm_id", values[i])
			} else if value.Valid {
				_m.RealmID = new(uuid.UUID)
				*_m.RealmID = *value.S.(*uuid.UUID)
			}
		case fieldindex.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fieldindex.Status(value.String)
			}
		case fieldindex.FieldContentTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_id", values[i])
			} else if value != nil {
				_m.ContentTypeID = *value
			}
		case fieldindex.FieldContentTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type_name", values[i])
			} else if value.Valid {
				_m.ContentTypeName = value.String
			}
		case fieldindex.FieldLanguageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field language_id", values[i])
			} else if value.Valid {
				_m.LanguageID = new(uuid.UUID)
				*_m.LanguageID = *value.S.(*uuid.UUID)
			}
		case fieldindex.FieldLanguageCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language_code", values[i])
			} else if value.Valid {
				_m.LanguageCode = value.String
			}
		case fieldindex.FieldLanguageIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field language_is_default", values[i])
			} else if value.Valid {
				_m.LanguageIsDefault = value.Bool
			}
		case fieldindex.FieldFieldTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_type_id", values[i])
			} else if value != nil {
				_m.FieldTypeID = *value
			}
		case fieldindex.FieldFieldTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type_name", values[i])
			} else if value.Valid {
				_m.FieldTypeName = value.String
			}
		case fieldindex.FieldFieldDefinitionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_definition_id", values[i])
			} else if value != nil {
				_m.FieldDefinitionID = *value
			}
		case fieldindex.FieldFieldDefinitionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_definition_name", values[i])
			} else if value.Valid {
				_m.FieldDefinitionName = value.String
			}
		case fieldindex.FieldContentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value != nil {
				_m.ContentID = *value
			}
		case fieldindex.FieldContentLocaleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field content_locale_id", values[i])
			} else if value != nil {
				_m.ContentLocaleID = *value
			}
		case fieldindex.FieldContentLocaleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_locale_name", values[i])
			} else if value.Valid {
				_m.ContentLocaleName = value.String
			}
		case fieldindex.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case fieldindex.FieldValueBoolean:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field value_boolean", values[i])
			} else if value.Valid {
				_m.ValueBoolean = new(bool)
				*_m.ValueBoolean = value.Bool
			}
		case fieldindex.FieldValueDatetime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field value_datetime", values[i])
			} else if value.Valid {
				_m.ValueDatetime = new(time.Time)
				*_m.ValueDatetime = value.Time
			}
		case fieldindex.FieldValueNumber:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value_number", values[i])
			} else if value.Valid {
				_m.ValueNumber = new(float64)
				*_m.ValueNumber = value.Float64
			}
		case fieldindex.FieldValueRelatedContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_related_content", values[i])
			} else if value.Valid {
				_m.ValueRelatedContent = new(string)
				*_m.ValueRelatedContent = value.String
			}
		case fieldindex.FieldValueRichText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_rich_text", values[i])
			} else if value.Valid {
				_m.ValueRichText = new(string)
				*_m.ValueRichText = value.String
			}
		case fieldindex.FieldValueSelect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_select", values[i])
			} else if value.Valid {
				_m.ValueSelect = new(string)
				*_m.ValueSelect = value.String
			}
		case fieldindex.FieldValueString:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_string", values[i])
			} else if value.Valid {
				_m.ValueString = new(string)
				*_m.ValueString = value.String
			}
		case fieldindex.FieldValueTags:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_tags", values[i])
			} else if value.Valid {
				_m.ValueTags = new(string)
				*_m.ValueTags = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FieldIndex.
// This includes values selected through modifiers, order, etc.
func (_m *FieldIndex) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FieldIndex.
// Note that you need to call FieldIndex.Unwrap() before calling this method if this FieldIndex
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldIndex) Update() *FieldIndexUpdateOne {
	return NewFieldIndexClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldIndex entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldIndex) Unwrap() *FieldIndex {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldIndex is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldIndex) String() string {
	var builder strings.Builder
	builder.WriteString("FieldIndex(")
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
	if v := _m.ValueBoolean; v != nil {
		builder.WriteString("value_boolean=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValueDatetime; v != nil {
		builder.WriteString("value_datetime=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValueNumber; v != nil {
		builder.WriteString("value_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValueRelatedContent; v != nil {
		builder.WriteString("value_related_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueRichText; v != nil {
		builder.WriteString("value_rich_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueSelect; v != nil {
		builder.WriteString("value_select=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueString; v != nil {
		builder.WriteString("value_string=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValueTags; v != nil {
		builder.WriteString("value_tags=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// FieldIndexes is a parsable slice of FieldIndex.
type FieldIndexes []*FieldIndex
