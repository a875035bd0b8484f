package auth

import "context"

// Store is the persistence contract the auth service depends on.
// Implementations translate driver errors into the package sentinels:
// ErrUserNotFound, ErrEmailAlreadyExists, ErrMagicLinkInvalid.
type Store interface {
	// GetUserByEmail returns the account for the email or ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// CreateUser inserts the account and fills in its generated ID.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user *User) error

	// CountSessions returns the number of sessions the account holds.
	CountSessions(ctx context.Context, userID int64) (int, error)
	// CreateSession inserts a session row.
	CreateSession(ctx context.Context, session *Session) error
	// HasSession reports whether the account holds a session for the token.
	HasSession(ctx context.Context, userID int64, token string) (bool, error)
	// DeleteSession removes the session matching the token.
	DeleteSession(ctx context.Context, userID int64, token string) error
	// DeleteAllSessions removes every session of the account and returns
	// how many rows were dropped.
	DeleteAllSessions(ctx context.Context, userID int64) (int64, error)

	// CreateMagicToken inserts a magic link token row.
	CreateMagicToken(ctx context.Context, token *MagicToken) error
	// GetMagicToken returns the account's magic token record or
	// ErrMagicLinkInvalid when no such token exists.
	GetMagicToken(ctx context.Context, userID int64, token string) (*MagicToken, error)
}

// BoundedSessionStore is an optional Store capability: create the session
// only while the account holds fewer than bound sessions, as one atomic
// statement. Stores implementing it let the service close the
// count-then-create race between concurrent logins.
type BoundedSessionStore interface {
	// CreateSessionIfUnder inserts the session while the account holds
	// fewer than bound sessions and reports whether the row was inserted.
	CreateSessionIfUnder(ctx context.Context, session *Session, bound int) (bool, error)
}
