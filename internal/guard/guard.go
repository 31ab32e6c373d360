package guard

import (
	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/session"
)

// SessionReader is the slice of the session store guards consult.
type SessionReader interface {
	State() session.State
	HasPermission(rbac.Permission) bool
	Subscribe(func(session.State)) func()
}

// Decision is the outcome of a gate check. When Allow is false the subtree
// is withheld and the user is sent to RedirectTo; ReturnTo, when set,
// carries the originally requested location so a later login can resume it.
type Decision struct {
	Allow      bool
	RedirectTo string
	ReturnTo   string
}

// PublicOnly gates routes reserved for unauthenticated users, such as the
// login screen. Authenticated users are sent to their landing path.
type PublicOnly struct {
	Sessions SessionReader
}

// Check evaluates the gate against current session state.
func (g PublicOnly) Check() Decision {
	state := g.Sessions.State()
	if state.Authenticated {
		return Decision{RedirectTo: LandingPath(state.Roles)}
	}
	return Decision{Allow: true}
}

// RequireAuth gates routes to authenticated users, optionally restricted to
// a role-name allow-list (the legacy coarse-grained check).
type RequireAuth struct {
	Sessions   SessionReader
	AllowRoles []string
}

// Check evaluates the gate for a navigation to requestedPath.
func (g RequireAuth) Check(requestedPath string) Decision {
	state := g.Sessions.State()
	if !state.Authenticated {
		return Decision{RedirectTo: PathLogin, ReturnTo: requestedPath}
	}
	if len(g.AllowRoles) > 0 && !rbac.AnyRoleNamed(state.Roles, g.AllowRoles) {
		// Holding zero roles is "no match", never vacuously allowed.
		return Decision{RedirectTo: LandingPath(state.Roles)}
	}
	return Decision{Allow: true}
}

// RequirePermission gates a component subtree on a single permission from
// the derived set (the fine-grained check).
type RequirePermission struct {
	Sessions   SessionReader
	Permission rbac.Permission
	Fallback   string
}

// Check evaluates the gate against current session state.
func (g RequirePermission) Check() Decision {
	if g.Sessions.HasPermission(g.Permission) {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: g.fallback()}
}

// Watch re-evaluates the gate on every session change, pushing each fresh
// decision to fn. The gate never caches a decision across a role change.
// The returned cancel function stops the watch.
func (g RequirePermission) Watch(fn func(Decision)) func() {
	fn(g.Check())
	return g.Sessions.Subscribe(func(session.State) {
		fn(g.Check())
	})
}

func (g RequirePermission) fallback() string {
	if g.Fallback != "" {
		return g.Fallback
	}
	return PathDashboard
}
