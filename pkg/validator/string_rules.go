package validator

import "fmt"

// MsgRequired is the generic message for a missing required field.
const MsgRequired = "Required"

// Required validates that a string is not empty.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return value != "" },
		Error: ValidationError{
			Field:   field,
			Message: MsgRequired,
		},
	}
}

// MinLen validates that a string has at least min characters.
func MinLen(field, value string, min int) Rule {
	msg := fmt.Sprintf("String must contain at least %d character(s)", min)
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: ValidationError{
			Field:   field,
			Message: msg,
		},
	}
}

// NonEmptyToken validates a token value carries at least one character.
func NonEmptyToken(field, value string) Rule {
	return MinLen(field, value, 1)
}
