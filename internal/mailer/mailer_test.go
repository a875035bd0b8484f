package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostmarkMailer(t *testing.T) {
	t.Parallel()

	t.Run("missing tokens", func(t *testing.T) {
		t.Parallel()

		_, err := NewPostmarkMailer(Config{SenderEmail: "no-reply@inkwell.app", SupportEmail: "support@inkwell.app"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid sender address", func(t *testing.T) {
		t.Parallel()

		_, err := NewPostmarkMailer(Config{
			PostmarkServerToken:  "server",
			PostmarkAccountToken: "account",
			SenderEmail:          "not-an-email",
			SupportEmail:         "support@inkwell.app",
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		m, err := NewPostmarkMailer(Config{
			PostmarkServerToken:  "server",
			PostmarkAccountToken: "account",
			SenderEmail:          "no-reply@inkwell.app",
			SupportEmail:         "support@inkwell.app",
		})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestMagicLinkTemplate(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	link := `http://localhost:3000/server/auth/magic_login?email=a%40b.com&token=t-1`
	require.NoError(t, magicLinkTemplate.Execute(&body, struct{ Link string }{Link: link}))
	assert.Contains(t, body.String(), "magic_login")
}

func TestDevMailer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	m := NewDevMailer(log)
	require.NoError(t, m.SendMagicLink(context.Background(), "reader@example.com", "http://localhost:3000/link"))

	out := buf.String()
	assert.Contains(t, out, "http://localhost:3000/link")
	assert.NotContains(t, out, "reader@example.com")
}
