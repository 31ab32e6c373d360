package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/meridian-coop/backoffice/internal/shared"
)

// ErrEmailTaken indicates a register attempt with an existing email.
var ErrEmailTaken = errors.New("auth: email already registered")

// Repository stores user accounts.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user User) (*User, error)
}

// MemoryRepository is the in-memory Repository used by the reference
// backend and in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[int64]*User
	byEmail map[string]*User
	nextID  int64
}

// NewMemoryRepository constructs an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[int64]*User),
		byEmail: make(map[string]*User),
		nextID:  1,
	}
}

// FindByEmail looks a user up by email, case-insensitively.
func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByID looks a user up by ID.
func (r *MemoryRepository) FindByID(_ context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// Create inserts a new account. Duplicate emails are rejected.
func (r *MemoryRepository) Create(_ context.Context, user User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := user
	r.byID[user.ID] = &stored
	r.byEmail[key] = &stored
	copied := stored
	return &copied, nil
}
