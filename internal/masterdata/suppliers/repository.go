package suppliers

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/meridian-coop/backoffice/internal/masterdata/shared"
	internalshared "github.com/meridian-coop/backoffice/internal/shared"
)

// Repository lists and fetches suppliers.
type Repository interface {
	List(ctx context.Context, q shared.ListQuery) ([]Supplier, int, error)
	Get(ctx context.Context, id int64) (Supplier, error)
}

type memoryRepository struct {
	mu        sync.RWMutex
	suppliers []Supplier
}

// NewMemoryRepository constructs an in-memory Repository over seed data.
func NewMemoryRepository(seed []Supplier) Repository {
	return &memoryRepository{suppliers: seed}
}

// List applies search on name/code/city, sorts, and slices the page.
func (r *memoryRepository) List(_ context.Context, q shared.ListQuery) ([]Supplier, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Supplier, 0, len(r.suppliers))
	needle := strings.ToLower(q.Search)
	for _, s := range r.suppliers {
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Code), needle) &&
			!strings.Contains(strings.ToLower(s.City), needle) {
			continue
		}
		matched = append(matched, s)
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

// Get fetches a supplier by ID.
func (r *memoryRepository) Get(_ context.Context, id int64) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return Supplier{}, internalshared.ErrNotFound
}

func sortLess(a, b Supplier, key string) bool {
	switch key {
	case "code":
		return a.Code < b.Code
	case "city":
		return a.City < b.City
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}
