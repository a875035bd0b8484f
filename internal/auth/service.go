package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/inkwell/pkg/jwt"
	"github.com/inkwellhq/inkwell/pkg/logger"
	"github.com/inkwellhq/inkwell/pkg/sanitizer"
	"github.com/inkwellhq/inkwell/pkg/useragent"
	"github.com/inkwellhq/inkwell/pkg/validator"
)

// MagicLinkSender delivers a magic login link to the account email.
type MagicLinkSender interface {
	SendMagicLink(ctx context.Context, email, link string) error
}

// Service implements the account and session business rules.
type Service struct {
	store  Store
	tokens *jwt.Service
	google GoogleVerifier
	sender MagicLinkSender
	log    *slog.Logger
	cfg    Config
}

// Option configures the Service.
type Option func(*Service)

// WithLogger supplies a logger. Without one the service stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithGoogleVerifier supplies the OAuth token verifier.
func WithGoogleVerifier(v GoogleVerifier) Option {
	return func(s *Service) {
		if v != nil {
			s.google = v
		}
	}
}

// WithMagicLinkSender supplies the magic link delivery channel. Without
// one links are only returned to the caller.
func WithMagicLinkSender(sender MagicLinkSender) Option {
	return func(s *Service) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// NewService returns a Service wired to the given storage and JWT issuer.
func NewService(store Store, tokens *jwt.Service, cfg Config, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if tokens == nil {
		return nil, ErrNilTokenService
	}
	if cfg.TokenExpiryHours <= 0 {
		cfg.TokenExpiryHours = 20
	}
	if cfg.MagicLinkWindowMinutes <= 0 {
		cfg.MagicLinkWindowMinutes = 15
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 5
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	s := &Service{
		store:  store,
		tokens: tokens,
		google: NewGoogleVerifier(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MagicTokenValid reports whether a magic token created at createdAt is
// still valid at now. The boundary is inclusive: the token is accepted at
// exactly createdAt plus the window and rejected any instant after.
func MagicTokenValid(createdAt, now time.Time, window time.Duration) bool {
	return !now.After(createdAt.Add(window))
}

// Signup registers a new account with email and password credentials and
// opens its first session.
func (s *Service) Signup(ctx context.Context, email, password string, dev Device) (*Result, error) {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.First(
		validator.ValidEmail("email", email),
		validator.StrongPassword("password", password),
	); err != nil {
		return nil, err
	}

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		PublicID:     uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		MaxSessions:  s.cfg.MaxSessions,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Account registered",
		slog.String("email", sanitizer.MaskEmail(email)),
		logger.UserID(user.PublicID))

	return s.openSession(ctx, user, dev)
}

// Login verifies password credentials and opens a session, subject to the
// account session cap.
func (s *Service) Login(ctx context.Context, email, password string, dev Device) (*Result, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.checkSessionCap(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user, dev)
}

// RequestMagicLink issues a magic login link for the email, registering
// the account on the fly when it does not exist yet. The link is returned
// and, when a sender is configured, also delivered by email.
func (s *Service) RequestMagicLink(ctx context.Context, email string) (string, error) {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.First(validator.ValidEmail("email", email)); err != nil {
		return "", err
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.registerPasswordless(ctx, email, "")
	}
	if err != nil {
		return "", err
	}

	token := &MagicToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := s.store.CreateMagicToken(ctx, token); err != nil {
		return "", err
	}

	link := s.magicLink(token.Token, email)

	if s.sender != nil {
		if err := s.sender.SendMagicLink(ctx, email, link); err != nil {
			s.log.ErrorContext(ctx, "Failed to deliver magic link",
				slog.String("email", sanitizer.MaskEmail(email)),
				logger.Error(err))
		}
	}

	s.log.InfoContext(ctx, "Magic link issued",
		slog.String("email", sanitizer.MaskEmail(email)),
		logger.UserID(user.PublicID))

	return link, nil
}

// MagicLogin exchanges a magic link token for a session. Unknown emails
// and unknown tokens are indistinguishable to the caller.
func (s *Service) MagicLogin(ctx context.Context, email, token string, dev Device) (*Result, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrMagicLinkInvalid
	}
	if err != nil {
		return nil, err
	}

	record, err := s.store.GetMagicToken(ctx, user.ID, token)
	if err != nil {
		return nil, err
	}

	window := time.Duration(s.cfg.MagicLinkWindowMinutes) * time.Minute
	if !MagicTokenValid(record.CreatedAt, time.Now(), window) {
		return nil, ErrMagicLinkExpired
	}

	if err := s.checkSessionCap(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user, dev)
}

// GoogleSignup registers a new account from a Google OAuth access token.
// No session is opened; the caller gets a bearer token straight away.
func (s *Service) GoogleSignup(ctx context.Context, accessToken string) (*Result, error) {
	profile, err := s.google.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	email := sanitizer.NormalizeEmail(profile.Email)
	_, err = s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user, err := s.registerPasswordless(ctx, email, profile.UserID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Account registered via Google",
		slog.String("email", sanitizer.MaskEmail(email)),
		logger.UserID(user.PublicID))

	return s.issueToken(user)
}

// GoogleLogin verifies a Google OAuth access token against an existing
// account and opens a session.
func (s *Service) GoogleLogin(ctx context.Context, accessToken string, dev Device) (*Result, error) {
	profile, err := s.google.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, sanitizer.NormalizeEmail(profile.Email))
	if err != nil {
		return nil, err
	}

	if err := s.checkSessionCap(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user, dev)
}

// Logout closes the session matching the presented token.
func (s *Service) Logout(ctx context.Context, email, token string) (*Result, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := s.store.HasSession(ctx, user.ID, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := s.store.DeleteSession(ctx, user.ID, token); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Session closed", logger.UserID(user.PublicID))

	return s.result(user, token), nil
}

// LogoutAll closes every session of the account.
func (s *Service) LogoutAll(ctx context.Context, email, token string) (*Result, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	dropped, err := s.store.DeleteAllSessions(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "All sessions closed",
		logger.UserID(user.PublicID),
		slog.Int64("sessions", dropped))

	return s.result(user, token), nil
}

// registerPasswordless creates an account with an unguessable password so
// that magic link and OAuth users cannot be logged into with credentials.
func (s *Service) registerPasswordless(ctx context.Context, email, publicID string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	if publicID == "" {
		publicID = uuid.NewString()
	}

	user := &User{
		PublicID:     publicID,
		Email:        email,
		PasswordHash: string(hash),
		MaxSessions:  s.cfg.MaxSessions,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) sessionLimit(user *User) int {
	if user.MaxSessions > 0 {
		return user.MaxSessions
	}
	return s.cfg.MaxSessions
}

func (s *Service) checkSessionCap(ctx context.Context, user *User) error {
	count, err := s.store.CountSessions(ctx, user.ID)
	if err != nil {
		return err
	}
	if count >= s.sessionLimit(user) {
		return ErrTooManySessions
	}
	return nil
}

func (s *Service) openSession(ctx context.Context, user *User, dev Device) (*Result, error) {
	res, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	session := &Session{
		UserID:    user.ID,
		Token:     res.Token,
		IPAddress: dev.IPAddress,
		UserAgent: dev.UserAgent,
		ExpiresAt: jwt.ExpiryDate(s.cfg.TokenExpiryHours),
	}
	if err := s.createSession(ctx, user, session); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Session opened",
		logger.UserID(user.PublicID),
		slog.String("ip", dev.IPAddress),
		slog.String("device", useragent.Parse(dev.UserAgent).Short()))

	return res, nil
}

// createSession persists the session row. With AtomicSessionBound set and
// a capable store, the insert itself enforces the cap so two logins racing
// past the pre-count cannot both land.
func (s *Service) createSession(ctx context.Context, user *User, session *Session) error {
	if bounded, ok := s.store.(BoundedSessionStore); ok && s.cfg.AtomicSessionBound {
		inserted, err := bounded.CreateSessionIfUnder(ctx, session, s.sessionLimit(user))
		if err != nil {
			return err
		}
		if !inserted {
			return ErrTooManySessions
		}
		return nil
	}
	return s.store.CreateSession(ctx, session)
}

func (s *Service) issueToken(user *User) (*Result, error) {
	ttl := time.Duration(s.cfg.TokenExpiryHours) * time.Hour
	token, err := s.tokens.Issue(user.PublicID, user.Email, user.IsAdmin, ttl)
	if err != nil {
		return nil, err
	}
	return s.result(user, token), nil
}

func (s *Service) result(user *User, token string) *Result {
	return &Result{
		Token:   token,
		IsAdmin: user.IsAdmin,
		UserID:  user.PublicID,
		Email:   user.Email,
	}
}

func (s *Service) magicLink(token, email string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", email)
	return s.cfg.ClientHost + "/server/auth/magic_login?" + q.Encode()
}
