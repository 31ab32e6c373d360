package table

import (
	"context"
	"fmt"
)

// Query carries the list parameters a source must honor.
type Query struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder Direction
	Search    string
}

func (q Query) key() string {
	return fmt.Sprintf("%d|%d|%s|%s|%s", q.Page, q.PerPage, q.SortBy, q.SortOrder, q.Search)
}

// Result is one page of rows plus the filtered-set size.
type Result[T any] struct {
	Rows  []T
	Total int
}

// Source produces the page of rows for a query. ClientSource evaluates the
// query in-process; ServerSource delegates it to a backend.
type Source[T any] interface {
	Load(ctx context.Context, q Query) (Result[T], error)
}
