package mailer

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed mailer configuration.
	ErrInvalidConfig = errors.New("invalid mailer config")
	// ErrSendFailed indicates the provider rejected or failed the send.
	ErrSendFailed = errors.New("failed to send email")
)
