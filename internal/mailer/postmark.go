package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/mrz1836/postmark"

	"github.com/inkwellhq/inkwell/pkg/validator"
)

const magicLinkSubject = "Your login link"

var magicLinkTemplate = template.Must(template.New("magic_link").Parse(`<html>
<body>
  <p>Hello,</p>
  <p>Use the link below to sign in. It expires shortly and works only once.</p>
  <p><a href="{{.Link}}">Sign in</a></p>
  <p>If you did not request this, you can ignore this email.</p>
</body>
</html>`))

// PostmarkMailer sends magic links through Postmark's transactional API.
type PostmarkMailer struct {
	client *postmark.Client
	cfg    Config
}

// NewPostmarkMailer validates the configuration and returns the production
// mailer. Both tokens and a valid sender address are required.
func NewPostmarkMailer(cfg Config) (*PostmarkMailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("%w: postmark tokens are required", ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: sender email %q is not valid", ErrInvalidConfig, cfg.SenderEmail)
	}
	if !validator.IsEmail(cfg.SupportEmail) {
		return nil, fmt.Errorf("%w: support email %q is not valid", ErrInvalidConfig, cfg.SupportEmail)
	}

	return &PostmarkMailer{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		cfg:    cfg,
	}, nil
}

// SendMagicLink renders and delivers the login email.
func (m *PostmarkMailer) SendMagicLink(ctx context.Context, email, link string) error {
	var body bytes.Buffer
	if err := magicLinkTemplate.Execute(&body, struct{ Link string }{Link: link}); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:     m.cfg.SenderEmail,
		ReplyTo:  m.cfg.SupportEmail,
		To:       email,
		Subject:  magicLinkSubject,
		Tag:      "magic-link",
		HTMLBody: body.String(),
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
