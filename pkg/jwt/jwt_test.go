package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/pkg/jwt"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty signing key rejected", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New("")
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New("test-secret-key-at-least-32-chars")
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestIssueVerify(t *testing.T) {
	t.Parallel()

	svc, err := jwt.New("test-secret-key-at-least-32-chars")
	require.NoError(t, err)

	t.Run("round trip recovers identity", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Issue("user-123", "user@example.com", false, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Len(t, strings.Split(token, "."), 3)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.False(t, claims.IsAdmin)
		assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
	})

	t.Run("admin flag survives the round trip", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Issue("admin-1", "admin@example.com", true, time.Hour)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Issue("user-123", "user@example.com", false, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Issue("user-123", "user@example.com", false, time.Hour)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		flipped := byte('A')
		if parts[2][0] == 'A' {
			flipped = 'B'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(flipped) + parts[2][1:]

		_, err = svc.Verify(tampered)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("tampered claims rejected", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Issue("user-123", "user@example.com", false, time.Hour)
		require.NoError(t, err)

		other, err := svc.Issue("user-999", "other@example.com", true, time.Hour)
		require.NoError(t, err)

		// Claims from one token with the signature of another.
		a := strings.Split(token, ".")
		b := strings.Split(other, ".")
		spliced := a[0] + "." + b[1] + "." + a[2]

		_, err = svc.Verify(spliced)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("foreign key rejected", func(t *testing.T) {
		t.Parallel()

		foreign, err := jwt.New("a-completely-different-signing-key")
		require.NoError(t, err)

		token, err := foreign.Issue("user-123", "user@example.com", false, time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("nil claims rejected on generate", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Generate(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})
}

func TestExpiryDate(t *testing.T) {
	t.Parallel()

	got := jwt.ExpiryDate(20)
	want := time.Now().Add(20 * time.Hour)
	assert.WithinDuration(t, want, got, time.Minute)
}
