// Package roles holds the backend's role definitions.
package roles

import (
	"sort"
	"sync"

	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/shared"
)

// Registry is an in-memory role catalog.
type Registry struct {
	mu    sync.RWMutex
	roles map[int64]rbac.Role
}

// NewRegistry constructs a Registry from role definitions.
func NewRegistry(defs ...rbac.Role) *Registry {
	r := &Registry{roles: make(map[int64]rbac.Role, len(defs))}
	for _, def := range defs {
		r.roles[def.ID] = def
	}
	return r
}

// Get fetches a role by ID.
func (r *Registry) Get(id int64) (rbac.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[id]
	if !ok {
		return rbac.Role{}, shared.ErrNotFound
	}
	return role, nil
}

// ByIDs resolves role IDs to roles, keeping input order and skipping
// unknown IDs.
func (r *Registry) ByIDs(ids []int64) []rbac.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]rbac.Role, 0, len(ids))
	for _, id := range ids {
		if role, ok := r.roles[id]; ok {
			out = append(out, role)
		}
	}
	return out
}

// List returns all roles ordered by ID.
func (r *Registry) List() []rbac.Role {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]rbac.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Defaults returns the seeded role catalog.
func Defaults() []rbac.Role {
	return []rbac.Role{
		{
			ID:          1,
			Name:        "Super_Admin",
			Permissions: rbac.AllPermissions(),
		},
		{
			ID:   2,
			Name: "Supplier",
			Permissions: []rbac.Permission{
				rbac.PermReadSupplier,
				rbac.PermReadProduct,
				rbac.PermReadCategory,
			},
		},
		{
			ID:   3,
			Name: "Staff",
			Permissions: []rbac.Permission{
				rbac.PermReadDashboard,
				rbac.PermReadSupplier,
				rbac.PermReadProduct,
				rbac.PermReadCategory,
				rbac.PermReadUser,
				rbac.PermUpdateProduct,
			},
		},
	}
}
