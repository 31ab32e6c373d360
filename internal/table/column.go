// Package table implements the stateful controller behind every list
// screen: sorting, debounced search, pagination, and column visibility over
// interchangeable client-side and server-delegated data sources.
package table

import "errors"

var (
	// ErrUnknownColumn indicates a column ID not declared on the engine.
	ErrUnknownColumn = errors.New("table: unknown column")
	// ErrLastVisibleColumn rejects hiding the only remaining visible column.
	ErrLastVisibleColumn = errors.New("table: at least one column must stay visible")
)

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort names the active sort column and direction.
type Sort struct {
	Key       string
	Direction Direction
}

// Column declares one column of a table. Render produces the displayable
// cell value; Value, when set, supplies the raw value used for sorting.
type Column[T any] struct {
	ID         string
	Label      string
	Sortable   bool
	Searchable bool
	Render     func(T) string
	Value      func(T) any
}

func (c Column[T]) rawValue(row T) any {
	if c.Value != nil {
		return c.Value(row)
	}
	if c.Render != nil {
		return c.Render(row)
	}
	return nil
}
