package fields

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TypedValue carries the single FieldIndex storage column populated for one
// field value; all other pointers stay nil.
type TypedValue struct {
	Boolean        *bool
	DateTime       *time.Time
	Number         *float64
	RelatedContent *string
	RichText       *string
	Select         *string
	String         *string
	Tags           *string
}

// IndexValue converts a raw field value into its typed index column per the
// data type. Values reaching the index have already passed validation on the
// write path; a parse failure here still returns an error so the maintainer
// can skip the row instead of indexing garbage.
func IndexValue(dt DataType, raw string) (TypedValue, error) {
	trimmed := strings.TrimSpace(raw)

	switch dt {
	case DataTypeBoolean:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return TypedValue{}, fmt.Errorf("index boolean value: %w", err)
		}
		return TypedValue{Boolean: &b}, nil

	case DataTypeDateTime:
		ts, err := time.Parse(time.RFC3339, trimmed)
		if err != nil {
			return TypedValue{}, fmt.Errorf("index datetime value: %w", err)
		}
		utc := ts.UTC()
		return TypedValue{DateTime: &utc}, nil

	case DataTypeNumber:
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return TypedValue{}, fmt.Errorf("index number value: %w", err)
		}
		return TypedValue{Number: &n}, nil

	case DataTypeRelatedContent:
		return TypedValue{RelatedContent: &raw}, nil

	case DataTypeRichText:
		return TypedValue{RichText: &raw}, nil

	case DataTypeSelect:
		return TypedValue{Select: &raw}, nil

	case DataTypeString:
		return TypedValue{String: &raw}, nil

	case DataTypeTags:
		return TypedValue{Tags: &raw}, nil

	default:
		return TypedValue{}, fmt.Errorf("unknown data type %q", dt)
	}
}
