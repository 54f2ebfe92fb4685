package models

import "context"

type userKey struct{}

// WithUser attaches the resolved current user to the request context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFrom returns the current user, or nil for an anonymous request.
func UserFrom(ctx context.Context) *User {
	user, ok := ctx.Value(userKey{}).(*User)
	if !ok {
		return nil
	}
	return user
}
