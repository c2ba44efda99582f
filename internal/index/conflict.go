package index

import (
	"github.com/google/uuid"

	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
)

// Conflict identifies one uniqueness collision: the field whose value is
// taken and the content that already owns it.
type Conflict struct {
	FieldDefinitionID uuid.UUID `json:"field_definition_id"`
	ContentID         uuid.UUID `json:"content_id"`
	Value             string    `json:"value"`
}

// NewConflictError wraps uniqueness collisions into a typed 409. The
// conflicting owner is always named; the write is never resolved by
// overwriting.
func NewConflictError(conflicts []Conflict) *apperrors.AppError {
	details := make([]map[string]interface{}, len(conflicts))
	for i, c := range conflicts {
		details[i] = map[string]interface{}{
			"field_definition_id": c.FieldDefinitionID.String(),
			"content_id":          c.ContentID.String(),
			"value":               c.Value,
		}
	}
	return apperrors.Conflict(apperrors.CodeUniqueIndexConflict, "unique field value already in use").
		WithParams(map[string]interface{}{"conflicts": details})
}

// AsConflictError reports whether err is a uniqueness conflict.
func AsConflictError(err error) (*apperrors.AppError, bool) {
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeUniqueIndexConflict {
		return nil, false
	}
	return appErr, true
}
