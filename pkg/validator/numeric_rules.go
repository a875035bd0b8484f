package validator

import (
	"fmt"
	"math"
	"strconv"
)

// Messages for numeric request fields.
const (
	MsgIDNotANumber  = "Id must be a number"
	MsgIDNotPositive = "Id must be greater than 0"
	MsgIDNotInteger  = "Id must be an integer"

	MsgCursorNotANumber = "Cursor must be a number"
	MsgCursorNegative   = "Cursor must be greater than or equal to 0"

	MsgSizeNotANumber  = "Size must be a number"
	MsgSizeNotPositive = "Size must be greater than 0"
)

// coerceNumber accepts the raw value shapes a request field can arrive in:
// a JSON number (float64), a URL or query string, or an already-typed int.
func coerceNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ParseID coerces raw into a positive integer identifier.
func ParseID(field string, raw any) (int64, error) {
	n, ok := coerceNumber(raw)
	if !ok {
		return 0, ValidationError{Field: field, Message: MsgIDNotANumber}
	}
	if n != math.Trunc(n) {
		return 0, ValidationError{Field: field, Message: MsgIDNotInteger}
	}
	if n <= 0 {
		return 0, ValidationError{Field: field, Message: MsgIDNotPositive}
	}
	return int64(n), nil
}

// ParseCursor coerces raw into a non-negative pagination cursor.
func ParseCursor(field string, raw any) (int64, error) {
	n, ok := coerceNumber(raw)
	if !ok {
		return 0, ValidationError{Field: field, Message: MsgCursorNotANumber}
	}
	if n < 0 {
		return 0, ValidationError{Field: field, Message: MsgCursorNegative}
	}
	return int64(n), nil
}

// ParsePageSize coerces raw into a positive page size.
func ParsePageSize(field string, raw any) (int64, error) {
	n, ok := coerceNumber(raw)
	if !ok {
		return 0, ValidationError{Field: field, Message: MsgSizeNotANumber}
	}
	if n <= 0 {
		return 0, ValidationError{Field: field, Message: MsgSizeNotPositive}
	}
	return int64(n), nil
}

// MinNum validates that a numeric value is greater than or equal to min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool { return value > zero },
		Error: ValidationError{
			Field:   field,
			Message: "must be greater than 0",
		},
	}
}
