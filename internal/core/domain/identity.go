package domain

import "context"

// Identity is the ephemeral per-request principal derived from a validated
// token. It lives only for the duration of one request and is never
// persisted or shared across requests.
type Identity struct {
	UserID   int64
	Username string
	Role     Role
}

type identityKey struct{}

// NewIdentityContext returns a copy of ctx carrying the identity.
func NewIdentityContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the identity attached by the authentication
// middleware. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
