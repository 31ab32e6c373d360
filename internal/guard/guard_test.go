package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/session"
)

// fakeSession is a hand-rolled SessionReader with subscriber support.
type fakeSession struct {
	state session.State
	subs  []func(session.State)
}

func (f *fakeSession) State() session.State { return f.state }

func (f *fakeSession) HasPermission(p rbac.Permission) bool {
	for _, have := range f.state.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

func (f *fakeSession) Subscribe(fn func(session.State)) func() {
	f.subs = append(f.subs, fn)
	return func() { f.subs = nil }
}

func (f *fakeSession) setState(state session.State) {
	f.state = state
	for _, fn := range f.subs {
		fn(state)
	}
}

func authedState(roles ...rbac.Role) session.State {
	return session.State{
		User:          &session.Identity{ID: 1, Email: "a@example.com", Name: "A"},
		Token:         "tok",
		Roles:         roles,
		Permissions:   rbac.EffectivePermissions(roles),
		Authenticated: true,
	}
}

func TestLandingPath(t *testing.T) {
	tests := []struct {
		name  string
		roles []rbac.Role
		want  string
	}{
		{"no roles", nil, PathDefault},
		{"privileged role", []rbac.Role{{ID: 1, Name: "Super_Admin"}}, PathDashboard},
		{"plain role", []rbac.Role{{ID: 2, Name: "Supplier"}}, "/supplier"},
		{"first role wins", []rbac.Role{{ID: 3, Name: "Staff"}, {ID: 2, Name: "Supplier"}}, "/staff"},
		{"privileged anywhere wins", []rbac.Role{{ID: 2, Name: "Supplier"}, {ID: 1, Name: "admin"}}, PathDashboard},
		{"spaces become dashes", []rbac.Role{{ID: 4, Name: "Warehouse Clerk"}}, "/warehouse-clerk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandingPath(tt.roles))
		})
	}
}

func TestPublicOnly(t *testing.T) {
	sess := &fakeSession{}
	gate := PublicOnly{Sessions: sess}

	assert.True(t, gate.Check().Allow, "anonymous user may see public routes")

	sess.state = authedState(rbac.Role{ID: 2, Name: "Supplier"})
	decision := gate.Check()
	assert.False(t, decision.Allow)
	assert.Equal(t, "/supplier", decision.RedirectTo, "authenticated user is bounced to their landing path")
}

func TestRequireAuthUnauthenticated(t *testing.T) {
	gate := RequireAuth{Sessions: &fakeSession{}}

	decision := gate.Check("/products?page=3")
	assert.False(t, decision.Allow)
	assert.Equal(t, PathLogin, decision.RedirectTo)
	assert.Equal(t, "/products?page=3", decision.ReturnTo, "requested location survives the redirect")
}

func TestRequireAuthAllowList(t *testing.T) {
	sess := &fakeSession{state: authedState(rbac.Role{ID: 3, Name: "Staff"})}

	allowed := RequireAuth{Sessions: sess, AllowRoles: []string{"staff"}}
	assert.True(t, allowed.Check("/reports").Allow)

	denied := RequireAuth{Sessions: sess, AllowRoles: []string{"admin"}}
	decision := denied.Check("/reports")
	assert.False(t, decision.Allow)
	assert.Equal(t, "/staff", decision.RedirectTo)
}

func TestRequireAuthZeroRolesNeverMatchAllowList(t *testing.T) {
	sess := &fakeSession{state: authedState()}
	gate := RequireAuth{Sessions: sess, AllowRoles: []string{"admin"}}

	decision := gate.Check("/reports")
	assert.False(t, decision.Allow)
	assert.Equal(t, PathDefault, decision.RedirectTo)
}

func TestRequireAuthNoAllowList(t *testing.T) {
	sess := &fakeSession{state: authedState()}
	gate := RequireAuth{Sessions: sess}

	assert.True(t, gate.Check("/anywhere").Allow, "empty allow-list means any authenticated user")
}

func TestRequirePermission(t *testing.T) {
	sess := &fakeSession{state: authedState(rbac.Role{
		ID: 3, Name: "Staff", Permissions: []rbac.Permission{rbac.PermReadProduct},
	})}

	granted := RequirePermission{Sessions: sess, Permission: rbac.PermReadProduct}
	assert.True(t, granted.Check().Allow)

	withheld := RequirePermission{Sessions: sess, Permission: rbac.PermDeleteProduct}
	decision := withheld.Check()
	assert.False(t, decision.Allow)
	assert.Equal(t, PathDashboard, decision.RedirectTo, "default fallback")

	custom := RequirePermission{Sessions: sess, Permission: rbac.PermDeleteProduct, Fallback: "/denied"}
	assert.Equal(t, "/denied", custom.Check().RedirectTo)
}

func TestRequirePermissionWatchReEvaluates(t *testing.T) {
	sess := &fakeSession{state: authedState(rbac.Role{
		ID: 3, Name: "Staff", Permissions: []rbac.Permission{rbac.PermReadProduct},
	})}
	gate := RequirePermission{Sessions: sess, Permission: rbac.PermReadProduct}

	var decisions []bool
	cancel := gate.Watch(func(d Decision) {
		decisions = append(decisions, d.Allow)
	})
	require.Equal(t, []bool{true}, decisions, "initial decision fires immediately")

	// Role change drops the permission; the gate must not cache its answer.
	sess.setState(authedState(rbac.Role{ID: 2, Name: "Supplier", Permissions: []rbac.Permission{rbac.PermReadSupplier}}))
	require.Equal(t, []bool{true, false}, decisions)

	cancel()
	sess.setState(authedState())
	assert.Len(t, decisions, 2)
}
