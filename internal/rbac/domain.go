// Package rbac models roles and permissions as the portal sees them.
package rbac

// Permission is an atomic, string-identified capability grant. Identifiers
// come from a fixed vocabulary and are compared by exact equality; there is
// no hierarchy or wildcard semantics.
type Permission string

// Role represents a named bundle of permissions. Identity is by ID; Name
// is used only for display and legacy coarse-grained checks.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}
