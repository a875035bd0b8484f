package auth

// Config is the environment-driven auth configuration.
type Config struct {
	// JWTSecret signs issued tokens. Required.
	JWTSecret string `env:"JWT_SECRET,required"`
	// TokenExpiryHours is the lifetime of issued JWTs.
	TokenExpiryHours int `env:"JWT_EXPIRY_HOURS" envDefault:"20"`
	// MagicLinkWindowMinutes is how long a magic link stays valid.
	MagicLinkWindowMinutes int `env:"MAGIC_LINK_TOKEN_EXPIRATION_TIME" envDefault:"15"`
	// ClientHost is the base URL embedded into magic links.
	ClientHost string `env:"CLIENT_HOST" envDefault:"http://localhost:3000"`
	// MaxSessions caps concurrent sessions per account.
	MaxSessions int `env:"AUTH_MAX_SESSIONS" envDefault:"5"`
	// AtomicSessionBound enforces the session cap with a conditional
	// insert when the store supports it, closing the race between
	// concurrent logins. Off by default: the pre-count stays observable
	// either way, but with the flag off the final create is unconditional.
	AtomicSessionBound bool `env:"AUTH_ATOMIC_SESSION_BOUND" envDefault:"false"`
	// BcryptCost is the work factor for password hashing.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}
