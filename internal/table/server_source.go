package table

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Fetcher retrieves one already-filtered, already-sorted page from a
// backend honoring the list query contract.
type Fetcher[T any] func(ctx context.Context, q Query) (Result[T], error)

// ServerSource delegates queries to a backend fetch callback. Identical
// concurrent queries are collapsed into a single fetch.
type ServerSource[T any] struct {
	fetch Fetcher[T]
	group singleflight.Group
}

// NewServerSource constructs a ServerSource around fetch.
func NewServerSource[T any](fetch Fetcher[T]) *ServerSource[T] {
	return &ServerSource[T]{fetch: fetch}
}

// Load fetches the page for the query. The shared fetch runs detached from
// any one caller's context so a cancelled joiner cannot poison the result
// for the rest; each caller still honors its own cancellation below.
func (s *ServerSource[T]) Load(ctx context.Context, q Query) (Result[T], error) {
	fetchCtx := context.WithoutCancel(ctx)
	resultChan := s.group.DoChan(q.key(), func() (interface{}, error) {
		return s.fetch(fetchCtx, q)
	})
	select {
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return Result[T]{}, res.Err
		}
		return res.Val.(Result[T]), nil
	}
}
