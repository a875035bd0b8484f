package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/pkg/validator"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     any
		want    int64
		wantMsg string
	}{
		{"json number", float64(42), 42, ""},
		{"numeric string", "7", 7, ""},
		{"typed int", 3, 3, ""},
		{"not a number", "abc", 0, validator.MsgIDNotANumber},
		{"nil value", nil, 0, validator.MsgIDNotANumber},
		{"boolean", true, 0, validator.MsgIDNotANumber},
		{"zero", float64(0), 0, validator.MsgIDNotPositive},
		{"negative", "-5", 0, validator.MsgIDNotPositive},
		{"fractional", 1.5, 0, validator.MsgIDNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validator.ParseID("id", tt.raw)
			if tt.wantMsg != "" {
				require.Error(t, err)
				errs := validator.ExtractValidationErrors(err)
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantMsg, errs[0].Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCursor(t *testing.T) {
	t.Parallel()

	t.Run("zero cursor is allowed", func(t *testing.T) {
		t.Parallel()

		got, err := validator.ParseCursor("cursor", "0")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("negative cursor rejected", func(t *testing.T) {
		t.Parallel()

		_, err := validator.ParseCursor("cursor", "-1")
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.MsgCursorNegative, errs[0].Message)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		t.Parallel()

		_, err := validator.ParseCursor("cursor", "later")
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.MsgCursorNotANumber, errs[0].Message)
	})
}

func TestParsePageSize(t *testing.T) {
	t.Parallel()

	t.Run("positive size", func(t *testing.T) {
		t.Parallel()

		got, err := validator.ParsePageSize("size", "10")
		require.NoError(t, err)
		assert.Equal(t, int64(10), got)
	})

	t.Run("zero rejected", func(t *testing.T) {
		t.Parallel()

		_, err := validator.ParsePageSize("size", "0")
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.MsgSizeNotPositive, errs[0].Message)
	})
}
