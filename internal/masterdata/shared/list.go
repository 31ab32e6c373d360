// Package shared holds the list query contract common to every masterdata
// endpoint.
package shared

import (
	"net/http"
	"strconv"

	internalshared "github.com/meridian-coop/backoffice/internal/shared"
)

// List query defaults. The per-page fallback is the portal-wide one.
const (
	DefaultPerPage = internalshared.DefaultPerPage
	MaxPerPage     = 100
)

// ListQuery represents the standard list parameters: page, per_page,
// sort_by, sort_order, search.
type ListQuery struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Search    string
}

// ParseListQuery reads list parameters from the request URL, applying
// defaults and caps.
func ParseListQuery(r *http.Request) ListQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	sortOrder := q.Get("sort_order")
	if sortOrder != "desc" {
		sortOrder = "asc"
	}
	return ListQuery{
		Page:      page,
		PerPage:   perPage,
		SortBy:    q.Get("sort_by"),
		SortOrder: sortOrder,
		Search:    q.Get("search"),
	}
}

// Window returns the [start, end) slice bounds for the query over n items.
func (q ListQuery) Window(n int) (int, int) {
	start := (q.Page - 1) * q.PerPage
	if start >= n {
		return n, n
	}
	end := start + q.PerPage
	if end > n {
		end = n
	}
	return start, end
}

// Envelope is the list response shape.
type Envelope[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
}

// NewEnvelope wraps one page of data with pagination metadata.
func NewEnvelope[T any](data []T, q ListQuery, total int) Envelope[T] {
	p := internalshared.NewPagination(q.Page, q.PerPage, total)
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{
		Data:        data,
		Total:       p.Total,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		LastPage:    p.TotalPages,
	}
}
