package rbac

import "strings"

// PrivilegedRoleNames is the legacy allow-list of role names granted the
// privileged landing page. Matching is by case-insensitive substring.
var PrivilegedRoleNames = []string{"admin"}

// EffectivePermissions returns the deduplicated union of permissions across
// roles, preserving first-seen order.
func EffectivePermissions(roles []Role) []Permission {
	seen := make(map[Permission]struct{})
	var perms []Permission
	for _, role := range roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms
}

// Set supports O(1) permission membership tests.
type Set map[Permission]struct{}

// NewSet builds a Set from a permission list.
func NewSet(perms []Permission) Set {
	set := make(Set, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is in the set.
func (s Set) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// AnyRoleNamed reports whether any role's name matches an entry of the
// allow-list, case-insensitively and by substring. An empty role list never
// matches; it is not vacuously allowed.
func AnyRoleNamed(roles []Role, allow []string) bool {
	if len(roles) == 0 || len(allow) == 0 {
		return false
	}
	for _, role := range roles {
		name := strings.ToLower(role.Name)
		for _, candidate := range allow {
			if candidate == "" {
				continue
			}
			if strings.Contains(name, strings.ToLower(candidate)) {
				return true
			}
		}
	}
	return false
}

// IsPrivileged reports whether any role name matches the privileged set.
func IsPrivileged(roles []Role) bool {
	return AnyRoleNamed(roles, PrivilegedRoleNames)
}
