package fields

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// Validator checks one raw field value against a field type's settings.
// The returned FieldErrors carry code + constraint params; the engine fills
// in the field identity before aggregation.
type Validator interface {
	Validate(value string) []apperrors.FieldError
}

func fieldErr(code string, params map[string]interface{}) apperrors.FieldError {
	return apperrors.FieldError{Code: code, Params: params}
}

// booleanValidator accepts strconv.ParseBool input.
type booleanValidator struct{}

func (booleanValidator) Validate(value string) []apperrors.FieldError {
	if _, err := strconv.ParseBool(strings.TrimSpace(value)); err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidBoolean, map[string]interface{}{
			"value": value,
		})}
	}
	return nil
}

// dateTimeValidator accepts RFC 3339 timestamps within the configured range.
type dateTimeValidator struct {
	settings DateTimeSettings
}

func (v dateTimeValidator) Validate(value string) []apperrors.FieldError {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidDateTime, map[string]interface{}{
			"value": value,
		})}
	}

	var errs []apperrors.FieldError
	if min := v.settings.MinimumValue; min != nil && ts.Before(*min) {
		errs = append(errs, fieldErr(apperrors.CodeValueBelowMinimum, map[string]interface{}{
			"minimum_value": min.Format(time.RFC3339),
			"value":         value,
		}))
	}
	if max := v.settings.MaximumValue; max != nil && ts.After(*max) {
		errs = append(errs, fieldErr(apperrors.CodeValueAboveMaximum, map[string]interface{}{
			"maximum_value": max.Format(time.RFC3339),
			"value":         value,
		}))
	}
	return errs
}

// numberValidator accepts decimal numbers within range and on the step grid.
type numberValidator struct {
	settings NumberSettings
}

func (v numberValidator) Validate(value string) []apperrors.FieldError {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidNumber, map[string]interface{}{
			"value": value,
		})}
	}

	var errs []apperrors.FieldError
	if min := v.settings.MinimumValue; min != nil && n < *min {
		errs = append(errs, fieldErr(apperrors.CodeValueBelowMinimum, map[string]interface{}{
			"minimum_value": *min,
			"value":         value,
		}))
	}
	if max := v.settings.MaximumValue; max != nil && n > *max {
		errs = append(errs, fieldErr(apperrors.CodeValueAboveMaximum, map[string]interface{}{
			"maximum_value": *max,
			"value":         value,
		}))
	}
	if step := v.settings.Step; step != nil && *step > 0 {
		anchor := 0.0
		if v.settings.MinimumValue != nil {
			anchor = *v.settings.MinimumValue
		}
		offset := math.Abs(math.Remainder(n-anchor, *step))
		if offset > 1e-9 {
			errs = append(errs, fieldErr(apperrors.CodeValueNotOnStep, map[string]interface{}{
				"step":  *step,
				"value": value,
			}))
		}
	}
	return errs
}

// relatedContentValidator accepts one or more content ids.
type relatedContentValidator struct {
	settings RelatedContentSettings
}

func (v relatedContentValidator) Validate(value string) []apperrors.FieldError {
	ids, err := parseStringList(value)
	if err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidRelated, map[string]interface{}{
			"value": value,
		})}
	}

	var errs []apperrors.FieldError
	if !v.settings.IsMultiple && len(ids) > 1 {
		errs = append(errs, fieldErr(apperrors.CodeMultipleNotAllowed, map[string]interface{}{
			"count": len(ids),
		}))
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, fieldErr(apperrors.CodeInvalidRelated, map[string]interface{}{
				"value": id,
			}))
		}
	}
	return errs
}

// richTextValidator checks content length; markup is stored as-is.
type richTextValidator struct {
	settings RichTextSettings
}

func (v richTextValidator) Validate(value string) []apperrors.FieldError {
	length := len([]rune(strings.TrimSpace(value)))

	var errs []apperrors.FieldError
	if min := v.settings.MinimumLength; min != nil && length < *min {
		errs = append(errs, fieldErr(apperrors.CodeValueTooShort, map[string]interface{}{
			"minimum_length": *min,
			"length":         length,
		}))
	}
	if max := v.settings.MaximumLength; max != nil && length > *max {
		errs = append(errs, fieldErr(apperrors.CodeValueTooLong, map[string]interface{}{
			"maximum_length": *max,
			"length":         length,
		}))
	}
	return errs
}

// selectValidator checks option membership and multiplicity.
type selectValidator struct {
	settings SelectSettings
	allowed  map[string]struct{}
}

func newSelectValidator(s SelectSettings) selectValidator {
	allowed := make(map[string]struct{}, len(s.Options))
	for _, opt := range s.Options {
		allowed[opt.OptionValue()] = struct{}{}
	}
	return selectValidator{settings: s, allowed: allowed}
}

func (v selectValidator) Validate(value string) []apperrors.FieldError {
	selected, err := parseStringList(value)
	if err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidSelect, map[string]interface{}{
			"value": value,
		})}
	}

	var errs []apperrors.FieldError
	if !v.settings.IsMultiple && len(selected) > 1 {
		errs = append(errs, fieldErr(apperrors.CodeMultipleNotAllowed, map[string]interface{}{
			"count": len(selected),
		}))
	}
	for _, s := range selected {
		if _, ok := v.allowed[s]; !ok {
			errs = append(errs, fieldErr(apperrors.CodeOptionNotAllowed, map[string]interface{}{
				"value": s,
			}))
		}
	}
	return errs
}

// stringValidator checks length and an optional pattern.
type stringValidator struct {
	settings StringSettings
	pattern  *regexp.Regexp
}

func newStringValidator(s StringSettings) (stringValidator, error) {
	v := stringValidator{settings: s}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return stringValidator{}, fmt.Errorf("compile string pattern %q: %w", s.Pattern, err)
		}
		v.pattern = re
	}
	return v, nil
}

func (v stringValidator) Validate(value string) []apperrors.FieldError {
	length := len([]rune(value))

	var errs []apperrors.FieldError
	if min := v.settings.MinimumLength; min != nil && length < *min {
		errs = append(errs, fieldErr(apperrors.CodeValueTooShort, map[string]interface{}{
			"minimum_length": *min,
			"length":         length,
		}))
	}
	if max := v.settings.MaximumLength; max != nil && length > *max {
		errs = append(errs, fieldErr(apperrors.CodeValueTooLong, map[string]interface{}{
			"maximum_length": *max,
			"length":         length,
		}))
	}
	if v.pattern != nil && !v.pattern.MatchString(value) {
		errs = append(errs, fieldErr(apperrors.CodeValuePatternMismatch, map[string]interface{}{
			"pattern": v.settings.Pattern,
			"value":   value,
		}))
	}
	return errs
}

// tagsValidator checks list structure and per-tag validity.
type tagsValidator struct{}

func (tagsValidator) Validate(value string) []apperrors.FieldError {
	tags, err := parseStringList(value)
	if err != nil {
		return []apperrors.FieldError{fieldErr(apperrors.CodeInvalidTags, map[string]interface{}{
			"value": value,
		})}
	}

	var errs []apperrors.FieldError
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, fieldErr(apperrors.CodeInvalidTags, map[string]interface{}{
				"index": i,
			}))
		}
	}
	return errs
}

// parseStringList decodes a multi-valued field value. The canonical wire
// shape is a JSON array of strings; a bare string is accepted as a
// single-element list.
func parseStringList(value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return []string{trimmed}, nil
}
