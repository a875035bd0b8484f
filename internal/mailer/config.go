package mailer

// Config holds mail delivery configuration. The Postmark tokens are
// optional so development environments can run on the log-only sender.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@inkwell.local"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@inkwell.local"`
}

// Configured reports whether the Postmark credentials are present.
func (c Config) Configured() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
