package rbac

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/meridian-coop/backoffice/internal/shared"
)

// WirePermission is the permission shape on the auth wire contract.
type WirePermission struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// WireRole is the role shape on the auth wire contract.
type WireRole struct {
	ID          int64            `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Permissions []WirePermission `json:"permissions" validate:"dive"`
}

// DecodeRoles converts wire roles into domain roles. Malformed payloads are
// rejected here rather than propagated.
func DecodeRoles(validate *validator.Validate, wire []WireRole) ([]Role, error) {
	roles := make([]Role, 0, len(wire))
	for i, w := range wire {
		if err := validate.Struct(w); err != nil {
			return nil, fmt.Errorf("%w: role %d: %v", shared.ErrValidation, i, err)
		}
		role := Role{ID: w.ID, Name: w.Name}
		for _, p := range w.Permissions {
			role.Permissions = append(role.Permissions, Permission(p.Name))
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// EncodeRoles converts domain roles to the wire shape. Permission IDs are
// positional; clients compare permissions by name only.
func EncodeRoles(roles []Role) []WireRole {
	wire := make([]WireRole, 0, len(roles))
	for _, role := range roles {
		w := WireRole{ID: role.ID, Name: role.Name}
		for i, p := range role.Permissions {
			w.Permissions = append(w.Permissions, WirePermission{ID: int64(i + 1), Name: string(p)})
		}
		wire = append(wire, w)
	}
	return wire
}
