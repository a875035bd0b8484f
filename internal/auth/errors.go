package auth

import "errors"

var (
	// ErrUserNotFound indicates that no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyExists indicates a registration attempt for a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidCredentials indicates a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManySessions indicates the account reached its session cap.
	ErrTooManySessions = errors.New("too many active sessions")

	// ErrMagicLinkInvalid indicates an unknown magic link token or email.
	ErrMagicLinkInvalid = errors.New("invalid magic link token")
	// ErrMagicLinkExpired indicates a magic link past its validity window.
	ErrMagicLinkExpired = errors.New("magic link token expired")

	// ErrProviderTokenInvalid indicates a Google access token that failed
	// verification against the provider.
	ErrProviderTokenInvalid = errors.New("invalid provider token")

	// ErrSessionNotFound indicates a logout for a token with no session row.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNilStore is returned by NewService when no storage is supplied.
	ErrNilStore = errors.New("storage cannot be nil")
	// ErrNilTokenService is returned by NewService when no JWT service is supplied.
	ErrNilTokenService = errors.New("token service cannot be nil")
)
