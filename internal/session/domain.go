// Package session owns the portal's client-side authentication state:
// current identity, token, assigned roles, and the derived permission set.
package session

import (
	"context"

	"github.com/meridian-coop/backoffice/internal/rbac"
)

// Identity describes the authenticated user.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries a register request.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is what the transport returns on successful login/register.
type AuthResult struct {
	Identity Identity
	Token    string
	Roles    []rbac.Role
}

// Transport exchanges credentials for sessions. The concrete HTTP client
// lives in internal/transport.
type Transport interface {
	Login(ctx context.Context, creds Credentials) (AuthResult, error)
	Register(ctx context.Context, reg Registration) (AuthResult, error)
	Logout(ctx context.Context, token string) error
}

// State is an immutable snapshot of the session. Permissions is always
// exactly the union of permissions across Roles; Authenticated is true iff
// Token and User are both present.
type State struct {
	User          *Identity
	Token         string
	Roles         []rbac.Role
	Permissions   []rbac.Permission
	Authenticated bool
}
