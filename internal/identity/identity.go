// Package identity carries the pre-validated claim handed to the core by
// the transport layer. Token decoding and signature checks happen before
// an Identity is constructed; the core trusts what it receives.
package identity

import (
	"context"
	"errors"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

var ErrForbidden = errors.New("forbidden")

// Identity is the trusted claim for one request.
type Identity struct {
	Subject  string
	Role     Role
	ClientID string
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
