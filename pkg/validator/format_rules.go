package validator

import (
	"net/mail"
	"strings"
)

// MsgInvalidEmail is the user-facing message for a malformed email address.
const MsgInvalidEmail = "Invalid email"

// IsEmail reports whether value looks like a deliverable email address.
// RFC 5322 parsing first, then the practical constraints web forms expect:
// a single @, a non-empty local part, and a dotted domain.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	local := parts[0]
	domain := parts[1]

	if local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return true
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{
			Field:   field,
			Message: MsgInvalidEmail,
		},
	}
}
