package schema

import (
	"github.com/inkwellhq/inkwell/pkg/validator"
)

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// Email parses a string field that must be a well-formed email address.
func Email() FieldFunc {
	return func(field string, raw any) (any, error) {
		s, ok := asString(raw)
		if !ok {
			return nil, validator.ValidationError{Field: field, Message: validator.MsgInvalidEmail}
		}
		if err := validator.First(validator.ValidEmail(field, s)); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Password parses a string field that must satisfy the password policy.
func Password() FieldFunc {
	return func(field string, raw any) (any, error) {
		s, ok := asString(raw)
		if !ok {
			return nil, validator.ValidationError{Field: field, Message: validator.MsgWeakPassword}
		}
		if err := validator.First(validator.StrongPassword(field, s)); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Token parses a string field that must carry at least one character.
func Token() FieldFunc {
	return func(field string, raw any) (any, error) {
		s, ok := asString(raw)
		if !ok {
			s = ""
		}
		if err := validator.First(validator.NonEmptyToken(field, s)); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// String parses a plain string field with no format constraint.
func String() FieldFunc {
	return func(field string, raw any) (any, error) {
		s, ok := asString(raw)
		if !ok {
			return nil, validator.ValidationError{Field: field, Message: "Expected string"}
		}
		return s, nil
	}
}

// ID parses a positive integer identifier from a JSON number or a string.
func ID() FieldFunc {
	return func(field string, raw any) (any, error) {
		return validator.ParseID(field, raw)
	}
}

// Cursor parses a non-negative pagination cursor.
func Cursor() FieldFunc {
	return func(field string, raw any) (any, error) {
		return validator.ParseCursor(field, raw)
	}
}

// PageSize parses a positive page size.
func PageSize() FieldFunc {
	return func(field string, raw any) (any, error) {
		return validator.ParsePageSize(field, raw)
	}
}
