package rbac

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePermissionsUnion(t *testing.T) {
	roles := []Role{
		{ID: 1, Name: "Editor", Permissions: []Permission{PermReadProduct, PermUpdateProduct}},
		{ID: 2, Name: "Viewer", Permissions: []Permission{PermReadProduct, PermReadSupplier}},
	}

	perms := EffectivePermissions(roles)

	assert.Equal(t, []Permission{PermReadProduct, PermUpdateProduct, PermReadSupplier}, perms)
}

func TestEffectivePermissionsEmpty(t *testing.T) {
	assert.Empty(t, EffectivePermissions(nil))
	assert.Empty(t, EffectivePermissions([]Role{{ID: 1, Name: "Bare"}}))
}

// TestEffectivePermissionsRandomized checks the union property over
// randomized role/permission sets: every granted permission appears exactly
// once, and nothing else does.
func TestEffectivePermissionsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	vocabulary := AllPermissions()

	for trial := 0; trial < 50; trial++ {
		roleCount := rng.Intn(6)
		roles := make([]Role, 0, roleCount)
		expected := make(map[Permission]struct{})
		for i := 0; i < roleCount; i++ {
			permCount := rng.Intn(len(vocabulary))
			role := Role{ID: int64(i + 1), Name: fmt.Sprintf("role-%d", i)}
			for j := 0; j < permCount; j++ {
				p := vocabulary[rng.Intn(len(vocabulary))]
				role.Permissions = append(role.Permissions, p)
				expected[p] = struct{}{}
			}
			roles = append(roles, role)
		}

		perms := EffectivePermissions(roles)

		require.Len(t, perms, len(expected), "trial %d: duplicates or omissions", trial)
		for _, p := range perms {
			_, ok := expected[p]
			require.True(t, ok, "trial %d: unexpected permission %s", trial, p)
		}
	}
}

func TestSetHas(t *testing.T) {
	set := NewSet([]Permission{PermReadRole, PermCreateUser})

	assert.True(t, set.Has(PermReadRole))
	assert.True(t, set.Has(PermCreateUser))
	assert.False(t, set.Has(PermDeleteUser))
}

func TestAnyRoleNamed(t *testing.T) {
	roles := []Role{
		{ID: 1, Name: "Super_Admin"},
		{ID: 2, Name: "Supplier"},
	}

	assert.True(t, AnyRoleNamed(roles, []string{"admin"}), "substring match is case-insensitive")
	assert.True(t, AnyRoleNamed(roles, []string{"SUPPLIER"}))
	assert.False(t, AnyRoleNamed(roles, []string{"accountant"}))
	assert.False(t, AnyRoleNamed(nil, []string{"admin"}), "zero roles never match")
	assert.False(t, AnyRoleNamed(roles, nil))
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, IsPrivileged([]Role{{ID: 1, Name: "Super_Admin"}}))
	assert.True(t, IsPrivileged([]Role{{ID: 1, Name: "admin"}}))
	assert.False(t, IsPrivileged([]Role{{ID: 1, Name: "Supplier"}}))
	assert.False(t, IsPrivileged(nil))
}

func TestDecodeRoles(t *testing.T) {
	validate := validator.New()

	roles, err := DecodeRoles(validate, []WireRole{
		{ID: 7, Name: "Staff", Permissions: []WirePermission{
			{ID: 1, Name: "read_product"},
			{ID: 2, Name: "read_supplier"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, int64(7), roles[0].ID)
	assert.Equal(t, []Permission{PermReadProduct, PermReadSupplier}, roles[0].Permissions)
}

func TestDecodeRolesRejectsMalformed(t *testing.T) {
	validate := validator.New()

	_, err := DecodeRoles(validate, []WireRole{{Name: "missing id"}})
	assert.Error(t, err, "role without id is rejected at the boundary")

	_, err = DecodeRoles(validate, []WireRole{
		{ID: 1, Name: "Staff", Permissions: []WirePermission{{ID: 1}}},
	})
	assert.Error(t, err, "permission without name is rejected")
}

func TestEncodeRolesRoundTrip(t *testing.T) {
	validate := validator.New()
	in := []Role{{ID: 3, Name: "Supplier", Permissions: []Permission{PermReadSupplier}}}

	out, err := DecodeRoles(validate, EncodeRoles(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
