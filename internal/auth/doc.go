// Package auth implements account registration, password and magic link
// login, Google OAuth sign-in, and session lifecycle management.
//
// The Service owns the business rules: credential verification, the
// per-account session cap, magic link issuance and expiry, and JWT
// issuance. HTTP concerns live in Handler, which mounts the routes and
// translates service errors into response envelopes.
package auth
