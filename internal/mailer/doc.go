// Package mailer delivers magic login links. The Postmark client is the
// production path; the dev mailer only logs the link so local runs need no
// email credentials.
package mailer
