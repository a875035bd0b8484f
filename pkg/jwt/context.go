package jwt

import "context"

type contextKey struct{}

// Identity is the authenticated caller attached to the request context by
// Middleware. Token carries the raw token string so logout can address the
// exact session it belongs to.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
	Token   string
}

// SetIdentity attaches an identity to the context.
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the identity set by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
