package jwt

import "time"

// Claims is the identity payload carried by every access token.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the expiration claim. A zero ExpiresAt means the token never
// expires, which only test fixtures use.
func (c Claims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return ErrExpiredToken
	}
	return nil
}

// ExpiryDate returns the expiration timestamp for a token issued now with
// the given lifetime in hours.
func ExpiryDate(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}
