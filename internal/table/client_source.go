package table

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ClientSource evaluates queries over a full in-memory row set: filter on
// searchable columns, stable sort on the sorted column's raw value, then
// slice out the requested page. Replace may race with an engine load, so
// the row set is mutex-guarded.
type ClientSource[T any] struct {
	mu       sync.RWMutex
	rows     []T
	columns  []Column[T]
	collator *collate.Collator
}

// NewClientSource constructs a ClientSource over rows.
func NewClientSource[T any](rows []T, columns []Column[T]) *ClientSource[T] {
	return &ClientSource[T]{
		rows:     rows,
		columns:  columns,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Replace swaps the underlying row set, as after a reload by the caller.
func (s *ClientSource[T]) Replace(rows []T) {
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

// Load evaluates the query.
func (s *ClientSource[T]) Load(_ context.Context, q Query) (Result[T], error) {
	rows := s.filter(q.Search)
	s.sortRows(rows, q)

	total := len(rows)
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = len(rows)
	}
	start := (page - 1) * perPage
	if start >= len(rows) {
		return Result[T]{Rows: nil, Total: total}, nil
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return Result[T]{Rows: rows[start:end], Total: total}, nil
}

// filter keeps rows where at least one searchable column's rendered value
// contains the term, case-insensitively. An empty term keeps everything.
// The returned slice is a copy; sorting it never touches the backing rows.
func (s *ClientSource[T]) filter(term string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if term == "" {
		return append([]T(nil), s.rows...)
	}
	needle := strings.ToLower(term)
	var out []T
	for _, row := range s.rows {
		for _, col := range s.columns {
			if !col.Searchable || col.Render == nil {
				continue
			}
			if strings.Contains(strings.ToLower(col.Render(row)), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func (s *ClientSource[T]) sortRows(rows []T, q Query) {
	if q.SortBy == "" {
		return
	}
	var sortCol *Column[T]
	for i := range s.columns {
		if s.columns[i].ID == q.SortBy && s.columns[i].Sortable {
			sortCol = &s.columns[i]
			break
		}
	}
	if sortCol == nil {
		return
	}
	desc := q.SortOrder == Descending
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := s.compare(sortCol.rawValue(rows[i]), sortCol.rawValue(rows[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compare orders raw cell values: numerics numerically, times
// chronologically, booleans false-first, everything else as collated text.
func (s *ClientSource[T]) compare(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}
	return s.collator.CompareString(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
