package http

import (
	"context"

	"apnrghor-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext extracts the verified caller identity placed in the
// request context by the auth middleware.
func IdentityFromContext(ctx context.Context) (*security.IdentityClaims, bool) {
	claims, ok := ctx.Value(identityKey).(*security.IdentityClaims)
	return claims, ok
}

func withIdentity(ctx context.Context, claims *security.IdentityClaims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}
