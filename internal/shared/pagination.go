package shared

// DefaultPerPage is the page size used when a caller supplies none. The
// table engine and the list endpoints share this default.
const DefaultPerPage = 10

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// NewPagination computes pagination metadata. Page and per-page values
// below 1 fall back to page 1 and DefaultPerPage.
func NewPagination(page, perPage, total int) Pagination {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
