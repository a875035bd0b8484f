package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell/pkg/validator"
)

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets every requirement", "Abcdef1!", true},
		{"longer valid password", "Sup3rSecret&Pass", true},
		{"every allowed symbol", "Aa1@$!%*?&", true},
		{"missing lowercase", "ABCDEF1!", false},
		{"missing uppercase", "abcdef1!", false},
		{"missing digit", "Abcdefg!", false},
		{"missing symbol", "Abcdefg1", false},
		{"too short", "Abc1!", false},
		{"empty", "", false},
		{"symbol outside the allowed set", "Abcdef1#", false},
		{"whitespace disallowed", "Abcdef 1!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, validator.IsStrongPassword(tt.password))
		})
	}
}

func TestStrongPasswordRule(t *testing.T) {
	t.Parallel()

	err := validator.First(validator.StrongPassword("password", "weak"))
	errs := validator.ExtractValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, validator.MsgWeakPassword, errs[0].Message)
}
