package auth

import "time"

// User is an account record.
type User struct {
	ID           int64
	PublicID     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	MaxSessions  int
	CreatedAt    time.Time
}

// Session is one issued JWT tracked against an account. The token column
// holds the full signed JWT, so logout can match the exact credential the
// client presents.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// MagicToken is a single-use magic link token. Validity is judged from
// CreatedAt against the configured window at login time.
type MagicToken struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
}

// Result is the outcome of a successful auth operation.
type Result struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

// Device captures where a session was established from.
type Device struct {
	IPAddress string
	UserAgent string
}
