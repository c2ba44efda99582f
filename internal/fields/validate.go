package fields

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// Definition is the slice of a field definition the validation engine needs:
// identity, placement flags and the bound field type's data type + settings.
type Definition struct {
	ID          uuid.UUID
	UniqueName  string
	IsInvariant bool
	IsRequired  bool
	DataType    DataType
	Settings    json.RawMessage
}

// LocaleScope says which locale a candidate value map belongs to.
type LocaleScope struct {
	// Invariant is true for the language-independent locale.
	Invariant bool

	// ContentTypeInvariant is true when the owning content type has no
	// per-language locales at all; placement rules relax in that case.
	ContentTypeInvariant bool

	// RequireRequired turns on the required-field pass (publish time).
	RequireRequired bool
}

// ValidateValues checks a candidate fieldDefinitionId → raw value map for
// one content locale. All passes run and accumulate; the result is either
// nil or a single AppError carrying every per-field failure.
func ValidateValues(contentTypeName string, defs []Definition, values map[string]string, scope LocaleScope) error {
	byID := make(map[uuid.UUID]Definition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	var errs []apperrors.FieldError

	// Pass 1: every key must be a definition on the content type.
	// Iterate in sorted key order so the aggregated error is deterministic.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id, err := uuid.Parse(key)
		if err != nil {
			errs = append(errs, apperrors.FieldError{
				Field: key,
				Code:  apperrors.CodeFieldNotDefined,
				Params: map[string]interface{}{
					"content_type": contentTypeName,
				},
			})
			continue
		}
		if _, ok := byID[id]; !ok {
			errs = append(errs, apperrors.FieldError{
				Field: key,
				Code:  apperrors.CodeFieldNotDefined,
				Params: map[string]interface{}{
					"content_type":        contentTypeName,
					"field_definition_id": id.String(),
				},
			})
		}
	}

	// Pass 2: invariant placement. Skipped entirely for invariant content
	// types, where every field lives on the single invariant locale.
	if !scope.ContentTypeInvariant {
		for _, key := range keys {
			id, err := uuid.Parse(key)
			if err != nil {
				continue
			}
			def, ok := byID[id]
			if !ok || strings.TrimSpace(values[key]) == "" {
				continue
			}
			switch {
			case def.IsInvariant && !scope.Invariant:
				errs = append(errs, apperrors.FieldError{
					Field: def.UniqueName,
					Code:  apperrors.CodeFieldNotLocalized,
					Params: map[string]interface{}{
						"field_definition_id": def.ID.String(),
					},
				})
			case !def.IsInvariant && scope.Invariant:
				errs = append(errs, apperrors.FieldError{
					Field: def.UniqueName,
					Code:  apperrors.CodeFieldNotInvariant,
					Params: map[string]interface{}{
						"field_definition_id": def.ID.String(),
					},
				})
			}
		}
	}

	// Pass 3: required fields (publish time only). Invariant fields are
	// checked on the invariant locale, localized fields on language locales.
	if scope.RequireRequired {
		for _, def := range defs {
			if !def.IsRequired {
				continue
			}
			inScope := scope.ContentTypeInvariant ||
				(scope.Invariant && def.IsInvariant) ||
				(!scope.Invariant && !def.IsInvariant)
			if !inScope {
				continue
			}
			if strings.TrimSpace(values[def.ID.String()]) == "" {
				errs = append(errs, apperrors.FieldError{
					Field: def.UniqueName,
					Code:  apperrors.CodeFieldRequired,
					Params: map[string]interface{}{
						"field_definition_id": def.ID.String(),
					},
				})
			}
		}
	}

	// Pass 4: per-data-type validation of present values.
	for _, key := range keys {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		def, ok := byID[id]
		if !ok {
			continue
		}
		value := values[key]
		if strings.TrimSpace(value) == "" {
			continue
		}

		validator, err := NewValidator(def.DataType, def.Settings)
		if err != nil {
			errs = append(errs, apperrors.FieldError{
				Field:   def.UniqueName,
				Code:    apperrors.CodeInvalidSettings,
				Message: err.Error(),
				Params: map[string]interface{}{
					"field_definition_id": def.ID.String(),
				},
			})
			continue
		}
		for _, fe := range validator.Validate(value) {
			fe.Field = def.UniqueName
			if fe.Params == nil {
				fe.Params = map[string]interface{}{}
			}
			fe.Params["field_definition_id"] = def.ID.String()
			errs = append(errs, fe)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return apperrors.BadRequest(apperrors.CodeFieldValueValidation, "field value validation failed").
		WithFieldErrors(errs)
}
