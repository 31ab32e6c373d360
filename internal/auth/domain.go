// Package auth implements the backend's credential exchange: login,
// register, and logout over the portal wire contract.
package auth

import "time"

// User represents a user account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	RoleIDs      []int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
