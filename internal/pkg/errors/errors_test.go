package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapAndUnwrap(t *testing.T) {
	underlying := fmt.Errorf("row missing")
	err := Wrap(underlying, CodeContentNotFound, "content not found", http.StatusNotFound)

	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), CodeContentNotFound)

	appErr, ok := IsAppError(fmt.Errorf("outer: %w", err))
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestWithFieldErrorsCarriesParams(t *testing.T) {
	err := BadRequest(CodeFieldValueValidation, "field value validation failed").
		WithFieldErrors([]FieldError{
			{
				Field: "price",
				Code:  CodeValueBelowMinimum,
				Params: map[string]interface{}{
					"minimum_value": 1.0,
					"value":         "0.5",
				},
			},
			{Field: "sku", Code: CodeValueTooShort},
		})

	require.Len(t, err.FieldErrors, 2)
	require.Equal(t, 1.0, err.FieldErrors[0].Params["minimum_value"])
}

func TestWithFieldErrorsEmptyNoop(t *testing.T) {
	err := Conflict(CodeUniqueIndexConflict, "duplicate value")
	require.Same(t, err, err.WithFieldErrors(nil))
	require.Nil(t, err.FieldErrors)
}
