package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"already normalized", "user@example.com", "user@example.com"},
		{"uppercase lowered", "USER@Example.COM", "user@example.com"},
		{"whitespace trimmed", "  user@example.com  ", "user@example.com"},
		{"double dots consolidated", "first..last@example.com", "first.last@example.com"},
		{"edge dots trimmed", ".user.@example.com", "user@example.com"},
		{"not an email passes through", "not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.email))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j***@example.com", sanitizer.MaskEmail("jane@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("j@example.com"))
	assert.Equal(t, "nonsense", sanitizer.MaskEmail("nonsense"))
}
