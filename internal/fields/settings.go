package fields

import "time"

// Settings shapes stored JSON-encoded on FieldType.settings, selected by
// the field type's data type.

// DateTimeSettings constrains datetime values to an inclusive range.
type DateTimeSettings struct {
	MinimumValue *time.Time `json:"minimum_value,omitempty"`
	MaximumValue *time.Time `json:"maximum_value,omitempty"`
}

// NumberSettings constrains number values.
// Step, when set, requires the value to sit on the grid anchored at
// MinimumValue (or zero when no minimum is configured).
type NumberSettings struct {
	MinimumValue *float64 `json:"minimum_value,omitempty"`
	MaximumValue *float64 `json:"maximum_value,omitempty"`
	Step         *float64 `json:"step,omitempty"`
}

// RelatedContentSettings pins related-content values to one content type.
type RelatedContentSettings struct {
	ContentTypeID string `json:"content_type_id,omitempty"`
	IsMultiple    bool   `json:"is_multiple,omitempty"`
}

// RichTextSettings constrains rich text values.
type RichTextSettings struct {
	ContentKind   string `json:"content_kind,omitempty"` // e.g. "text/html"
	MinimumLength *int   `json:"minimum_length,omitempty"`
	MaximumLength *int   `json:"maximum_length,omitempty"`
}

// SelectOption is one allowed choice of a select field type.
type SelectOption struct {
	Text  string  `json:"text"`
	Label *string `json:"label,omitempty"`
	Value *string `json:"value,omitempty"`
}

// OptionValue returns the stored value of the option (explicit value, or the
// display text when none is configured).
func (o SelectOption) OptionValue() string {
	if o.Value != nil {
		return *o.Value
	}
	return o.Text
}

// SelectSettings lists the allowed options of a select field type.
type SelectSettings struct {
	IsMultiple bool           `json:"is_multiple,omitempty"`
	Options    []SelectOption `json:"options,omitempty"`
}

// StringSettings constrains string values.
type StringSettings struct {
	MinimumLength *int   `json:"minimum_length,omitempty"`
	MaximumLength *int   `json:"maximum_length,omitempty"`
	Pattern       string `json:"pattern,omitempty"`
}
