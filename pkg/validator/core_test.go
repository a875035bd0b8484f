package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no rules returns nil", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validator.Apply())
	})

	t.Run("all passing returns nil", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("email", "a@b.com"),
			validator.Required("password", "x"),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("email", ""),
			validator.Required("password", ""),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("password"))
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first failing rule", func(t *testing.T) {
		t.Parallel()

		err := validator.First(
			validator.Required("email", ""),
			validator.Required("password", ""),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("passing rules return nil", func(t *testing.T) {
		t.Parallel()

		err := validator.First(
			validator.Required("email", "a@b.com"),
		)
		require.NoError(t, err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("plain error yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("single validation error is wrapped", func(t *testing.T) {
		t.Parallel()

		var err error = validator.ValidationError{Field: "id", Message: validator.MsgIDNotANumber}
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "id", errs[0].Field)
	})

	t.Run("first returns earliest error", func(t *testing.T) {
		t.Parallel()

		errs := validator.ValidationErrors{
			{Field: "a", Message: "first"},
			{Field: "b", Message: "second"},
		}
		first, ok := errs.First()
		require.True(t, ok)
		assert.Equal(t, "first", first.Message)
	})
}
