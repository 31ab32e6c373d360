package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-coop/backoffice/internal/rbac"
	"github.com/meridian-coop/backoffice/internal/roles"
	"github.com/meridian-coop/backoffice/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo     Repository
	registry *roles.Registry
}

// NewService constructs a new Service.
func NewService(repo Repository, registry *roles.Registry) *Service {
	return &Service{repo: repo, registry: registry}
}

// Authenticate validates email/password credentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates an account with the default role set.
func (s *Service) Register(ctx context.Context, name, email, password string, roleIDs []int64) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsActive:     true,
		RoleIDs:      roleIDs,
	})
}

// RolesFor resolves a user's assigned roles.
func (s *Service) RolesFor(user *User) []rbac.Role {
	if user == nil {
		return nil
	}
	return s.registry.ByIDs(user.RoleIDs)
}
