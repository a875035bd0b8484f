package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/pkg/pg"
)

// Store implements auth.Store on a pgx pool. Driver errors are translated
// into the auth package sentinels so the service never sees SQLSTATE codes.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ auth.Store               = (*Store)(nil)
	_ auth.BoundedSessionStore = (*Store)(nil)
)

// New returns a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	const query = `
		SELECT id, public_id, email, password_hash, is_admin, max_sessions, created_at
		FROM users
		WHERE email = $1`

	var user auth.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.PublicID,
		&user.Email,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.MaxSessions,
		&user.CreatedAt,
	)
	if pg.IsNotFoundError(err) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *auth.User) error {
	const query = `
		INSERT INTO users (public_id, email, password_hash, is_admin, max_sessions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		user.PublicID,
		user.Email,
		user.PasswordHash,
		user.IsAdmin,
		user.MaxSessions,
	).Scan(&user.ID, &user.CreatedAt)
	if pg.IsDuplicateKeyError(err) {
		return auth.ErrEmailAlreadyExists
	}
	return err
}

func (s *Store) CountSessions(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM sessions WHERE user_id = $1`

	var count int
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) CreateSession(ctx context.Context, session *auth.Session) error {
	const query = `
		INSERT INTO sessions (user_id, token, ip_address, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return s.pool.QueryRow(ctx, query,
		session.UserID,
		session.Token,
		session.IPAddress,
		session.UserAgent,
		session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)
}

// CreateSessionIfUnder inserts the session only while the account holds
// fewer than bound sessions, closing the count-then-create race in a single
// statement. It reports whether the row was inserted.
func (s *Store) CreateSessionIfUnder(ctx context.Context, session *auth.Session, bound int) (bool, error) {
	const query = `
		INSERT INTO sessions (user_id, token, ip_address, user_agent, expires_at)
		SELECT $1, $2, $3, $4, $5
		WHERE (SELECT COUNT(*) FROM sessions WHERE user_id = $1) < $6
		RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		session.UserID,
		session.Token,
		session.IPAddress,
		session.UserAgent,
		session.ExpiresAt,
		bound,
	).Scan(&session.ID, &session.CreatedAt)
	if pg.IsNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) HasSession(ctx context.Context, userID int64, token string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM sessions WHERE user_id = $1 AND token = $2)`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, userID, token).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) DeleteSession(ctx context.Context, userID int64, token string) error {
	const query = `DELETE FROM sessions WHERE user_id = $1 AND token = $2`

	_, err := s.pool.Exec(ctx, query, userID, token)
	return err
}

func (s *Store) DeleteAllSessions(ctx context.Context, userID int64) (int64, error) {
	const query = `DELETE FROM sessions WHERE user_id = $1`

	tag, err := s.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) CreateMagicToken(ctx context.Context, token *auth.MagicToken) error {
	const query = `
		INSERT INTO magic_link_tokens (user_id, token)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return s.pool.QueryRow(ctx, query, token.UserID, token.Token).
		Scan(&token.ID, &token.CreatedAt)
}

func (s *Store) GetMagicToken(ctx context.Context, userID int64, token string) (*auth.MagicToken, error) {
	const query = `
		SELECT id, user_id, token, created_at
		FROM magic_link_tokens
		WHERE user_id = $1 AND token = $2
		ORDER BY created_at DESC
		LIMIT 1`

	var record auth.MagicToken
	err := s.pool.QueryRow(ctx, query, userID, token).Scan(
		&record.ID,
		&record.UserID,
		&record.Token,
		&record.CreatedAt,
	)
	if pg.IsNotFoundError(err) {
		return nil, auth.ErrMagicLinkInvalid
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
