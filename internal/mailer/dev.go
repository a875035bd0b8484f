package mailer

import (
	"context"
	"io"
	"log/slog"

	"github.com/inkwellhq/inkwell/pkg/sanitizer"
)

// DevMailer logs magic links instead of sending them. The raw link goes to
// the log on purpose so a developer can click through locally; the address
// is masked.
type DevMailer struct {
	log *slog.Logger
}

// NewDevMailer returns a log-only mailer.
func NewDevMailer(log *slog.Logger) *DevMailer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DevMailer{log: log}
}

func (m *DevMailer) SendMagicLink(ctx context.Context, email, link string) error {
	m.log.InfoContext(ctx, "Magic link (dev delivery)",
		slog.String("email", sanitizer.MaskEmail(email)),
		slog.String("link", link))
	return nil
}
