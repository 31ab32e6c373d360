package products

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/meridian-coop/backoffice/internal/masterdata/shared"
	internalshared "github.com/meridian-coop/backoffice/internal/shared"
)

// Repository lists and fetches products.
type Repository interface {
	List(ctx context.Context, q shared.ListQuery) ([]Product, int, error)
	Get(ctx context.Context, id int64) (Product, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepository constructs an in-memory Repository over seed data.
func NewMemoryRepository(seed []Product) Repository {
	return &memoryRepository{products: seed}
}

// List applies search on name/sku, sorts, and slices the page.
func (r *memoryRepository) List(_ context.Context, q shared.ListQuery) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Product, 0, len(r.products))
	needle := strings.ToLower(q.Search)
	for _, p := range r.products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) {
			continue
		}
		matched = append(matched, p)
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

// Get fetches a product by ID.
func (r *memoryRepository) Get(_ context.Context, id int64) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, internalshared.ErrNotFound
}

func sortLess(a, b Product, key string) bool {
	switch key {
	case "sku":
		return a.SKU < b.SKU
	case "price":
		return a.PriceCents < b.PriceCents
	case "stock":
		return a.Stock < b.Stock
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}
