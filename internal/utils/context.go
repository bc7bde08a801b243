package utils

import "context"

type contextKey string

const (
	principalKey contextKey = "principal"
	userIDKey    contextKey = "user_id"
	userRoleKey  contextKey = "role"
)

// Principal is the verified external identity attached by the auth
// middleware. It is never read from a request body.
type Principal struct {
	ExternalID string
	Email      string
	Name       string
}

// SetPrincipal stores the authenticated principal (called by middleware).
func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the principal safely.
func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// SetUserContext sets the resolved application user (called by the admin gate).
func SetUserContext(ctx context.Context, id string, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	ctx = context.WithValue(ctx, userRoleKey, role)
	return ctx
}

// GetUserIDFromContext retrieves the resolved user id safely.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}
