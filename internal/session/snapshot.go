package session

import (
	"encoding/json"

	"github.com/meridian-coop/backoffice/internal/rbac"
)

// snapshot is the durable JSON shape of a session.
type snapshot struct {
	User          *Identity         `json:"user,omitempty"`
	Token         string            `json:"token,omitempty"`
	Roles         []rbac.Role       `json:"roles,omitempty"`
	Permissions   []rbac.Permission `json:"permissions,omitempty"`
	Authenticated bool              `json:"isAuthenticated"`
}

func encodeSnapshot(state State) ([]byte, error) {
	return json.Marshal(snapshot{
		User:          state.User,
		Token:         state.Token,
		Roles:         state.Roles,
		Permissions:   state.Permissions,
		Authenticated: state.Authenticated,
	})
}

// decodeSnapshot restores a session state, re-deriving the invariant fields
// rather than trusting the stored copy: permissions are recomputed from
// roles, and authenticated requires both user and token.
func decodeSnapshot(data []byte) (State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return State{}, err
	}
	state := State{
		User:  snap.User,
		Token: snap.Token,
		Roles: snap.Roles,
	}
	state.Permissions = rbac.EffectivePermissions(state.Roles)
	state.Authenticated = state.Token != "" && state.User != nil
	return state, nil
}
