package users

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/meridian-coop/backoffice/internal/masterdata/shared"
	internalshared "github.com/meridian-coop/backoffice/internal/shared"
)

// Repository lists and fetches user accounts.
type Repository interface {
	List(ctx context.Context, q shared.ListQuery) ([]User, int, error)
	Get(ctx context.Context, id int64) (User, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	users []User
}

// NewMemoryRepository constructs an in-memory Repository over seed data.
func NewMemoryRepository(seed []User) Repository {
	return &memoryRepository{users: seed}
}

// List applies search on name/email, sorts, and slices the page.
func (r *memoryRepository) List(_ context.Context, q shared.ListQuery) ([]User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]User, 0, len(r.users))
	needle := strings.ToLower(q.Search)
	for _, u := range r.users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		matched = append(matched, u)
	}

	desc := q.SortOrder == "desc"
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return sortLess(matched[j], matched[i], q.SortBy)
		}
		return sortLess(matched[i], matched[j], q.SortBy)
	})

	total := len(matched)
	start, end := q.Window(total)
	return matched[start:end], total, nil
}

// Get fetches a user by ID.
func (r *memoryRepository) Get(_ context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, internalshared.ErrNotFound
}

func sortLess(a, b User, key string) bool {
	switch key {
	case "email":
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}
