// Package guard decides, per navigation, whether a subtree renders or the
// user is redirected. Decisions are pure over session state.
package guard

import (
	"strings"

	"github.com/meridian-coop/backoffice/internal/rbac"
)

// Canonical portal paths.
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathDefault   = "/"
)

// LandingPath maps a user's role set to a canonical landing path. Any
// privileged role name wins the dashboard; otherwise the path derives from
// the first role; no roles yields the default path. Deterministic and
// side-effect-free.
func LandingPath(roles []rbac.Role) string {
	if len(roles) == 0 {
		return PathDefault
	}
	if rbac.IsPrivileged(roles) {
		return PathDashboard
	}
	return "/" + roleSlug(roles[0].Name)
}

func roleSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}
