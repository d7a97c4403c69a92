package http

import (
	"context"
	"fmt"

	"growthlink-backend/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// ContextWithPrincipal returns a child context carrying the authenticated
// caller. The auth middleware is the only writer.
func ContextWithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the authenticated caller from the request
// context. It fails on routes the auth middleware did not cover.
func PrincipalFromContext(ctx context.Context) (domain.Principal, error) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, fmt.Errorf("no authenticated principal: %w", domain.ErrUnauthorized)
	}
	return p, nil
}
