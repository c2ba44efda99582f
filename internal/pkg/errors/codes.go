package errors

// Error code constants.
// Errors carry code + params; callers own presentation and i18n.
// Logs are always English.

// Schema registry error codes.
const (
	CodeRealmNotFound       = "REALM_NOT_FOUND"
	CodeLanguageNotFound    = "LANGUAGE_NOT_FOUND"
	CodeFieldTypeNotFound   = "FIELD_TYPE_NOT_FOUND"
	CodeContentTypeNotFound = "CONTENT_TYPE_NOT_FOUND"
)

// Content error codes.
const (
	CodeContentNotFound       = "CONTENT_NOT_FOUND"
	CodeContentLocaleNotFound = "CONTENT_LOCALE_NOT_FOUND"
)

// Field value validation codes (per-field, carried in FieldErrors).
const (
	CodeFieldValueValidation = "FIELD_VALUE_VALIDATION"
	CodeFieldNotDefined      = "FIELD_NOT_DEFINED"
	CodeFieldNotInvariant    = "FIELD_NOT_INVARIANT"
	CodeFieldNotLocalized    = "FIELD_NOT_LOCALIZED"
	CodeFieldRequired        = "FIELD_REQUIRED"
	CodeInvalidBoolean       = "INVALID_BOOLEAN_VALUE"
	CodeInvalidDateTime      = "INVALID_DATETIME_VALUE"
	CodeInvalidNumber        = "INVALID_NUMBER_VALUE"
	CodeInvalidRelated       = "INVALID_RELATED_CONTENT_VALUE"
	CodeInvalidRichText      = "INVALID_RICH_TEXT_VALUE"
	CodeInvalidSelect        = "INVALID_SELECT_VALUE"
	CodeInvalidString        = "INVALID_STRING_VALUE"
	CodeInvalidTags          = "INVALID_TAGS_VALUE"
	CodeValueBelowMinimum    = "VALUE_BELOW_MINIMUM"
	CodeValueAboveMaximum    = "VALUE_ABOVE_MAXIMUM"
	CodeValueNotOnStep       = "VALUE_NOT_ON_STEP"
	CodeValueTooShort        = "VALUE_TOO_SHORT"
	CodeValueTooLong         = "VALUE_TOO_LONG"
	CodeValuePatternMismatch = "VALUE_PATTERN_MISMATCH"
	CodeOptionNotAllowed     = "OPTION_NOT_ALLOWED"
	CodeMultipleNotAllowed   = "MULTIPLE_VALUES_NOT_ALLOWED"
)

// Index error codes.
const (
	CodeUniqueIndexConflict = "UNIQUE_INDEX_CONFLICT"
	CodeUnknownDataType     = "UNKNOWN_DATA_TYPE"
	CodeInvalidSettings     = "INVALID_FIELD_TYPE_SETTINGS"
)
