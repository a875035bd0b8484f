package validator

import "strings"

// PasswordSymbols is the set of special characters a password may satisfy
// the symbol requirement with. Anything outside this set does not count.
const PasswordSymbols = "@$!%*?&"

// MsgWeakPassword is the user-facing message for a password that fails the
// strength policy.
const MsgWeakPassword = "Password must contain at least one lowercase letter, one uppercase letter, one digit, and one special character (@$!%*?&) and be at least 8 characters long."

const passwordMinLength = 8

// IsStrongPassword reports whether value satisfies the platform password
// policy: at least one lowercase letter, one uppercase letter, one digit,
// one symbol from PasswordSymbols, and a minimum length of 8. Characters
// outside [A-Za-z0-9] and the symbol set disqualify the password outright,
// matching the policy's closed alphabet.
func IsStrongPassword(value string) bool {
	if len(value) < passwordMinLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// StrongPassword validates a password against the platform strength policy.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsStrongPassword(value) },
		Error: ValidationError{
			Field:   field,
			Message: MsgWeakPassword,
		},
	}
}
