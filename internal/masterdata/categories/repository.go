package categories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/meridian-coop/backoffice/internal/masterdata/shared"
	internalshared "github.com/meridian-coop/backoffice/internal/shared"
)

// Repository lists the category tree.
type Repository interface {
	List(ctx context.Context, q shared.ListQuery) ([]Category, int, error)
	Children(ctx context.Context, parentID int64, q shared.ListQuery) ([]Category, int, error)
	Get(ctx context.Context, id int64) (Category, error)
}

type memoryRepository struct {
	mu         sync.RWMutex
	categories []Category
}

// NewMemoryRepository constructs an in-memory Repository over seed data.
func NewMemoryRepository(seed []Category) Repository {
	return &memoryRepository{categories: seed}
}

// List returns top-level categories matching the query.
func (r *memoryRepository) List(_ context.Context, q shared.ListQuery) ([]Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listWhere(q, func(c Category) bool { return c.ParentID == nil })
}

// Children returns the direct children of parentID matching the query.
func (r *memoryRepository) Children(_ context.Context, parentID int64, q shared.ListQuery) ([]Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listWhere(q, func(c Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	})
}

// Get fetches a category by ID.
func (r *memoryRepository) Get(_ context.Context, id int64) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, internalshared.ErrNotFound
}

func (r *memoryRepository) listWhere(q shared.ListQuery, keep func(Category) bool) ([]Category, int, error) {
	matched := make([]Category, 0, len(r.categories))
	needle := strings.ToLower(q.Search)
	for _, c := range r.categories {
		if !keep(c) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Code), needle) {
			continue
		}
		matched = append(matched, c)
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

func sortLess(a, b Category, key string) bool {
	switch key {
	case "code":
		return a.Code < b.Code
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}
