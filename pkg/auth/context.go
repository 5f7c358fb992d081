package auth

import (
	"context"
	"errors"
)

const authenticationContextKey contextKey = iota

type contextKey int

func WithAuthentication(ctx context.Context, auth Authentication) context.Context {
	return context.WithValue(ctx, authenticationContextKey, auth)
}

func GetAuthentication(ctx context.Context) (Authentication, bool) {
	auth, ok := ctx.Value(authenticationContextKey).(Authentication)
	return auth, ok
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	auth, ok := GetAuthentication(ctx)
	if !ok {
		return false, errors.New("authentication not found")
	}

	return auth.IsAuthenticated(), nil
}
