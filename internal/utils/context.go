package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ContextKeyIdentityID contextKey = "identity_id"
	ContextKeyEmail      contextKey = "email"
	ContextKeyRole       contextKey = "role"
)

// Identity roles carried in the request context.
const (
	RoleOrganizer = "organizer"
	RoleUser      = "user"
)

// WithIdentity stores the verified identity on the context.
func WithIdentity(ctx context.Context, id uuid.UUID, email, role string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyIdentityID, id)
	ctx = context.WithValue(ctx, ContextKeyEmail, email)
	return context.WithValue(ctx, ContextKeyRole, role)
}

// GetIdentityID returns the authenticated identity id from the context.
func GetIdentityID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyIdentityID).(uuid.UUID)
	return id, ok
}

// GetEmail returns the authenticated email from the context.
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}

// GetRole returns the authenticated role from the context.
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ContextKeyRole).(string)
	return role, ok
}
