// Package fields implements the runtime-defined content schema's value
// layer: the closed set of field data types, their settings shapes, their
// validators and their index storage mapping. Adding a data type means
// adding one registry entry here.
package fields

import (
	"encoding/json"
	"fmt"
)

// DataType is the closed enum of field data types. It is fixed at field
// type creation and selects the settings shape, the validator and the
// FieldIndex storage column.
type DataType string

const (
	DataTypeBoolean        DataType = "boolean"
	DataTypeDateTime       DataType = "datetime"
	DataTypeNumber         DataType = "number"
	DataTypeRelatedContent DataType = "related_content"
	DataTypeRichText       DataType = "rich_text"
	DataTypeSelect         DataType = "select"
	DataTypeString         DataType = "string"
	DataTypeTags           DataType = "tags"
)

// registryEntry maps one data type variant to its behavior.
type registryEntry struct {
	newValidator func(settings json.RawMessage) (Validator, error)
}

var registry = map[DataType]registryEntry{
	DataTypeBoolean: {newValidator: func(raw json.RawMessage) (Validator, error) {
		return booleanValidator{}, nil
	}},
	DataTypeDateTime: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s DateTimeSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return dateTimeValidator{settings: s}, nil
	}},
	DataTypeNumber: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s NumberSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return numberValidator{settings: s}, nil
	}},
	DataTypeRelatedContent: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s RelatedContentSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return relatedContentValidator{settings: s}, nil
	}},
	DataTypeRichText: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s RichTextSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return richTextValidator{settings: s}, nil
	}},
	DataTypeSelect: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s SelectSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return newSelectValidator(s), nil
	}},
	DataTypeString: {newValidator: func(raw json.RawMessage) (Validator, error) {
		var s StringSettings
		if err := unmarshalSettings(raw, &s); err != nil {
			return nil, err
		}
		return newStringValidator(s)
	}},
	DataTypeTags: {newValidator: func(raw json.RawMessage) (Validator, error) {
		return tagsValidator{}, nil
	}},
}

// IsValid reports whether dt is a member of the closed enum.
func (dt DataType) IsValid() bool {
	_, ok := registry[dt]
	return ok
}

// NewValidator builds the validator for a data type from its JSON settings.
func NewValidator(dt DataType, settings json.RawMessage) (Validator, error) {
	entry, ok := registry[dt]
	if !ok {
		return nil, fmt.Errorf("unknown data type %q", dt)
	}
	return entry.newValidator(settings)
}

func unmarshalSettings(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse field type settings: %w", err)
	}
	return nil
}
