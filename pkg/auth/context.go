package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "user_id"

// ErrUserIDNotFound is returned when no user ID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrUserIDNotFound = errors.New("user_id not found in context")

// Caller is the identity-provider result handed to application services.
// The zero value is an unauthenticated caller.
type Caller struct {
	UserID        uuid.UUID
	Authenticated bool
}

// UserIDFromCtx extracts the authenticated user ID from the request context.
// Returns uuid.Nil and ErrUserIDNotFound if no user ID is set (unauthenticated request).
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUserIDNotFound
	}
	return userID, nil
}

// CallerFromCtx builds a Caller from the request context. Requests that did
// not pass authentication yield an unauthenticated Caller rather than an
// error: services decide what unauthenticated access means per operation.
func CallerFromCtx(ctx context.Context) Caller {
	userID, err := UserIDFromCtx(ctx)
	if err != nil {
		return Caller{}
	}
	return Caller{UserID: userID, Authenticated: true}
}

// WithUserID returns a new context with the given user ID attached.
// Used by authentication middleware after validating the session.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
