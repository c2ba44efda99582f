package fields

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func fieldErrors(t *testing.T, err error) []apperrors.FieldError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeFieldValueValidation, appErr.Code)
	return appErr.FieldErrors
}

func codesOf(errs []apperrors.FieldError) []string {
	codes := make([]string, len(errs))
	for i, fe := range errs {
		codes[i] = fe.Code
	}
	return codes
}

func TestValidateValuesUnknownField(t *testing.T) {
	defs := []Definition{{ID: uuid.New(), UniqueName: "Title", DataType: DataTypeString}}
	values := map[string]string{uuid.NewString(): "orphan"}

	errs := fieldErrors(t, ValidateValues("Article", defs, values, LocaleScope{Invariant: true, ContentTypeInvariant: true}))
	require.Len(t, errs, 1)
	require.Equal(t, apperrors.CodeFieldNotDefined, errs[0].Code)
	require.Equal(t, "Article", errs[0].Params["content_type"])
}

func TestValidateValuesInvariantPlacement(t *testing.T) {
	invariantField := Definition{ID: uuid.New(), UniqueName: "Sku", IsInvariant: true, DataType: DataTypeString}
	localizedField := Definition{ID: uuid.New(), UniqueName: "Title", DataType: DataTypeString}
	defs := []Definition{invariantField, localizedField}

	// Invariant field saved on a language locale.
	errs := fieldErrors(t, ValidateValues("Product", defs,
		map[string]string{invariantField.ID.String(): "CC18DACH"},
		LocaleScope{Invariant: false}))
	require.Contains(t, codesOf(errs), apperrors.CodeFieldNotLocalized)

	// Localized field saved invariantly.
	errs = fieldErrors(t, ValidateValues("Product", defs,
		map[string]string{localizedField.ID.String(): "Gadget"},
		LocaleScope{Invariant: true}))
	require.Contains(t, codesOf(errs), apperrors.CodeFieldNotInvariant)

	// Both placed correctly.
	require.NoError(t, ValidateValues("Product", defs,
		map[string]string{invariantField.ID.String(): "CC18DACH"},
		LocaleScope{Invariant: true}))
	require.NoError(t, ValidateValues("Product", defs,
		map[string]string{localizedField.ID.String(): "Gadget"},
		LocaleScope{Invariant: false}))
}

func TestValidateValuesRequiredAtPublish(t *testing.T) {
	required := Definition{ID: uuid.New(), UniqueName: "Sku", IsInvariant: true, IsRequired: true, DataType: DataTypeString}
	defs := []Definition{required}

	// Draft save: required pass off.
	require.NoError(t, ValidateValues("Product", defs, map[string]string{}, LocaleScope{Invariant: true}))

	// Publish: missing and whitespace-only both fail.
	errs := fieldErrors(t, ValidateValues("Product", defs,
		map[string]string{required.ID.String(): "   "},
		LocaleScope{Invariant: true, RequireRequired: true}))
	require.Equal(t, []string{apperrors.CodeFieldRequired}, codesOf(errs))

	// Invariant required field is not demanded on language locales.
	require.NoError(t, ValidateValues("Product", defs, map[string]string{},
		LocaleScope{Invariant: false, RequireRequired: true}))
}

func TestValidateValuesAccumulatesAllFailures(t *testing.T) {
	num := Definition{ID: uuid.New(), UniqueName: "Price", DataType: DataTypeNumber,
		Settings: mustJSON(t, NumberSettings{MinimumValue: f64(1), MaximumValue: f64(100)})}
	str := Definition{ID: uuid.New(), UniqueName: "Sku", DataType: DataTypeString,
		Settings: mustJSON(t, StringSettings{MinimumLength: iptr(3), MaximumLength: iptr(32)})}
	defs := []Definition{num, str}

	errs := fieldErrors(t, ValidateValues("Product", defs, map[string]string{
		num.ID.String(): "0.5",
		str.ID.String(): "ab",
	}, LocaleScope{Invariant: true, ContentTypeInvariant: true}))

	// Both failures surface at once, never only the first.
	require.ElementsMatch(t, []string{apperrors.CodeValueBelowMinimum, apperrors.CodeValueTooShort}, codesOf(errs))
	for _, fe := range errs {
		require.NotEmpty(t, fe.Params["field_definition_id"])
	}
}

func TestNumberValidator(t *testing.T) {
	v, err := NewValidator(DataTypeNumber, mustJSON(t, NumberSettings{
		MinimumValue: f64(0), MaximumValue: f64(10), Step: f64(0.5),
	}))
	require.NoError(t, err)

	require.Empty(t, v.Validate("7.5"))
	require.Equal(t, apperrors.CodeInvalidNumber, v.Validate("seven")[0].Code)
	require.Equal(t, apperrors.CodeValueAboveMaximum, v.Validate("11")[0].Code)
	require.Equal(t, apperrors.CodeValueNotOnStep, v.Validate("7.3")[0].Code)
}

func TestStringValidatorPattern(t *testing.T) {
	v, err := NewValidator(DataTypeString, mustJSON(t, StringSettings{
		MinimumLength: iptr(3), MaximumLength: iptr(8), Pattern: "^[A-Z0-9]+$",
	}))
	require.NoError(t, err)

	require.Empty(t, v.Validate("CC18DACH"))
	require.Equal(t, apperrors.CodeValueTooShort, v.Validate("AB")[0].Code)
	require.Equal(t, apperrors.CodeValuePatternMismatch, v.Validate("abc123")[0].Code)

	_, err = NewValidator(DataTypeString, mustJSON(t, StringSettings{Pattern: "("}))
	require.Error(t, err)
}

func TestSelectValidator(t *testing.T) {
	settings := SelectSettings{Options: []SelectOption{
		{Text: "Red"}, {Text: "Blue", Value: sptr("blue")},
	}}
	v, err := NewValidator(DataTypeSelect, mustJSON(t, settings))
	require.NoError(t, err)

	require.Empty(t, v.Validate("Red"))
	require.Empty(t, v.Validate("blue")) // explicit option value wins
	require.Equal(t, apperrors.CodeOptionNotAllowed, v.Validate("Green")[0].Code)
	require.Equal(t, apperrors.CodeMultipleNotAllowed, v.Validate(`["Red","blue"]`)[0].Code)

	settings.IsMultiple = true
	v, err = NewValidator(DataTypeSelect, mustJSON(t, settings))
	require.NoError(t, err)
	require.Empty(t, v.Validate(`["Red","blue"]`))
}

func TestBooleanDateTimeTagsRelatedValidators(t *testing.T) {
	b, err := NewValidator(DataTypeBoolean, nil)
	require.NoError(t, err)
	require.Empty(t, b.Validate("true"))
	require.Equal(t, apperrors.CodeInvalidBoolean, b.Validate("yes")[0].Code)

	dt, err := NewValidator(DataTypeDateTime, mustJSON(t, DateTimeSettings{}))
	require.NoError(t, err)
	require.Empty(t, dt.Validate("2026-08-30T12:00:00Z"))
	require.Equal(t, apperrors.CodeInvalidDateTime, dt.Validate("yesterday")[0].Code)

	tags, err := NewValidator(DataTypeTags, nil)
	require.NoError(t, err)
	require.Empty(t, tags.Validate(`["go","cms"]`))
	require.Equal(t, apperrors.CodeInvalidTags, tags.Validate(`["ok",""]`)[0].Code)
	require.Equal(t, apperrors.CodeInvalidTags, tags.Validate(`[1,2]`)[0].Code)

	rel, err := NewValidator(DataTypeRelatedContent, mustJSON(t, RelatedContentSettings{}))
	require.NoError(t, err)
	require.Empty(t, rel.Validate(uuid.NewString()))
	require.Equal(t, apperrors.CodeMultipleNotAllowed,
		rel.Validate(`["`+uuid.NewString()+`","`+uuid.NewString()+`"]`)[0].Code)
}

func TestIndexValueSingleColumn(t *testing.T) {
	tv, err := IndexValue(DataTypeNumber, "42.5")
	require.NoError(t, err)
	require.NotNil(t, tv.Number)
	require.Equal(t, 42.5, *tv.Number)
	require.Nil(t, tv.String)
	require.Nil(t, tv.Boolean)

	tv, err = IndexValue(DataTypeBoolean, "true")
	require.NoError(t, err)
	require.True(t, *tv.Boolean)

	tv, err = IndexValue(DataTypeDateTime, "2026-08-30T12:00:00+02:00")
	require.NoError(t, err)
	require.Equal(t, "2026-08-30T10:00:00Z", tv.DateTime.Format("2006-01-02T15:04:05Z07:00"))

	_, err = IndexValue(DataTypeNumber, "NaN-ish")
	require.Error(t, err)

	_, err = IndexValue(DataType("geo"), "x")
	require.Error(t, err)
}

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }
func sptr(v string) *string  { return &v }
