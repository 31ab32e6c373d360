package table

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/meridian-coop/backoffice/internal/platform/debounce"
	"github.com/meridian-coop/backoffice/internal/shared"
)

// DefaultPageSize is used when no page size is configured. It matches the
// shared pagination fallback so client and server modes page identically.
const DefaultPageSize = shared.DefaultPerPage

// View is the render-ready snapshot an engine produces: the current page of
// rows, the visible columns in declaration order, and paging metadata.
type View[T any] struct {
	Rows       []T
	Columns    []Column[T]
	Pagination shared.Pagination
	Sort       *Sort
	Search     string
	Err        error
}

// Engine is the per-screen table controller. Each list screen owns exactly
// one instance; nested sub-tables get their own via Child.
type Engine[T any] struct {
	mu      sync.Mutex
	logger  *slog.Logger
	source  Source[T]
	columns []Column[T]
	visible map[string]struct{}

	page    int
	perPage int
	sort    *Sort
	search  string

	rows    []T
	total   int
	lastErr error

	// seq tags each issued load; responses for a superseded seq are
	// discarded so a slow fetch can never overwrite a newer page.
	seq uint64

	window   time.Duration
	debounce *debounce.Value[pendingSearch]
	notifier shared.Notifier
	onChange func(View[T])
}

type pendingSearch struct {
	ctx  context.Context
	term string
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithPageSize sets the initial page size.
func WithPageSize[T any](n int) Option[T] {
	return func(e *Engine[T]) {
		if n > 0 {
			e.perPage = n
		}
	}
}

// WithDebounceWindow overrides the search quiescence window.
func WithDebounceWindow[T any](d time.Duration) Option[T] {
	return func(e *Engine[T]) {
		if d > 0 {
			e.window = d
		}
	}
}

// WithNotifier routes load failures to n.
func WithNotifier[T any](n shared.Notifier) Option[T] {
	return func(e *Engine[T]) { e.notifier = n }
}

// WithOnChange registers the render callback invoked after every applied
// state change.
func WithOnChange[T any](fn func(View[T])) Option[T] {
	return func(e *Engine[T]) { e.onChange = fn }
}

// New constructs an Engine. All columns start visible. Call Refresh to load
// the first page.
func New[T any](logger *slog.Logger, source Source[T], columns []Column[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		logger:  logger,
		source:  source,
		columns: columns,
		visible: make(map[string]struct{}, len(columns)),
		page:    1,
		perPage: DefaultPageSize,
		window:  debounce.DefaultWindow,
	}
	for _, col := range columns {
		e.visible[col.ID] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	e.debounce = debounce.New(e.window, func(p pendingSearch) {
		e.Search(p.ctx, p.term)
	})
	return e
}

// Refresh loads the page for the current state.
func (e *Engine[T]) Refresh(ctx context.Context) {
	e.load(ctx)
}

// SetPage moves the pagination cursor.
func (e *Engine[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	e.mu.Lock()
	e.page = page
	e.mu.Unlock()
	e.load(ctx)
}

// SetPageSize changes the page size and resets the cursor to page 1, so it
// can never point past the new last page.
func (e *Engine[T]) SetPageSize(ctx context.Context, perPage int) {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	e.mu.Lock()
	e.perPage = perPage
	e.page = 1
	e.mu.Unlock()
	e.load(ctx)
}

// SortBy sorts on the given column: ascending on first click, toggling
// direction on repeat clicks. Unknown or non-sortable columns are a no-op.
func (e *Engine[T]) SortBy(ctx context.Context, columnID string) {
	e.mu.Lock()
	col, ok := e.columnLocked(columnID)
	if !ok || !col.Sortable {
		e.mu.Unlock()
		return
	}
	if e.sort != nil && e.sort.Key == columnID {
		if e.sort.Direction == Ascending {
			e.sort.Direction = Descending
		} else {
			e.sort.Direction = Ascending
		}
	} else {
		e.sort = &Sort{Key: columnID, Direction: Ascending}
	}
	e.mu.Unlock()
	e.load(ctx)
}

// Search applies an effective search term immediately, resetting the cursor
// to page 1. Interactive keystrokes should go through SetSearchInput.
func (e *Engine[T]) Search(ctx context.Context, term string) {
	e.mu.Lock()
	e.search = term
	e.page = 1
	e.mu.Unlock()
	e.load(ctx)
}

// SetSearchInput records one keystroke of search input. The effective term
// only updates after the quiescence window passes with no further input; a
// burst of keystrokes produces exactly one load with the final value.
func (e *Engine[T]) SetSearchInput(ctx context.Context, term string) {
	e.debounce.Set(pendingSearch{ctx: ctx, term: term})
}

// FlushSearch applies any pending debounced input immediately.
func (e *Engine[T]) FlushSearch() {
	e.debounce.Flush()
}

// ToggleColumn shows or hides a column. Hiding the last visible column is
// rejected; display order always follows declaration order.
func (e *Engine[T]) ToggleColumn(columnID string) error {
	e.mu.Lock()
	if _, ok := e.columnLocked(columnID); !ok {
		e.mu.Unlock()
		return ErrUnknownColumn
	}
	if _, shown := e.visible[columnID]; shown {
		if len(e.visible) == 1 {
			e.mu.Unlock()
			return ErrLastVisibleColumn
		}
		delete(e.visible, columnID)
	} else {
		e.visible[columnID] = struct{}{}
	}
	view := e.viewLocked()
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(view)
	}
	return nil
}

// VisibleColumns returns the visible columns in declaration order.
func (e *Engine[T]) VisibleColumns() []Column[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visibleColumnsLocked()
}

// View returns the current render snapshot.
func (e *Engine[T]) View() View[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewLocked()
}

// Child builds an engine for a nested sub-table over the given child rows,
// sharing column definitions but none of the parent's sort/search/page
// state.
func (e *Engine[T]) Child(rows []T, opts ...Option[T]) *Engine[T] {
	e.mu.Lock()
	columns := e.columns
	logger := e.logger
	notifier := e.notifier
	e.mu.Unlock()

	child := New(logger, NewClientSource(rows, columns), columns, opts...)
	if child.notifier == nil {
		child.notifier = notifier
	}
	return child
}

func (e *Engine[T]) load(ctx context.Context) {
	e.mu.Lock()
	e.seq++
	seq := e.seq
	q := e.queryLocked()
	src := e.source
	e.mu.Unlock()

	res, err := src.Load(ctx, q)

	e.mu.Lock()
	if seq != e.seq {
		// Superseded by a newer request; discard silently.
		e.mu.Unlock()
		return
	}
	if err != nil {
		// Keep the last successfully rendered page.
		e.lastErr = err
		view := e.viewLocked()
		notifier := e.notifier
		onChange := e.onChange
		e.mu.Unlock()

		e.logger.Warn("table load failed", slog.Any("error", err))
		if notifier != nil {
			notifier.Notify(shared.Notice{Kind: "error", Message: "failed to load data"})
		}
		if onChange != nil {
			onChange(view)
		}
		return
	}
	e.rows = res.Rows
	e.total = res.Total
	e.lastErr = nil
	view := e.viewLocked()
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(view)
	}
}

func (e *Engine[T]) queryLocked() Query {
	q := Query{
		Page:    e.page,
		PerPage: e.perPage,
		Search:  e.search,
	}
	if e.sort != nil {
		q.SortBy = e.sort.Key
		q.SortOrder = e.sort.Direction
	}
	return q
}

func (e *Engine[T]) viewLocked() View[T] {
	view := View[T]{
		Rows:       append([]T(nil), e.rows...),
		Columns:    e.visibleColumnsLocked(),
		Pagination: shared.NewPagination(e.page, e.perPage, e.total),
		Search:     e.search,
		Err:        e.lastErr,
	}
	if e.sort != nil {
		s := *e.sort
		view.Sort = &s
	}
	return view
}

func (e *Engine[T]) visibleColumnsLocked() []Column[T] {
	cols := make([]Column[T], 0, len(e.visible))
	for _, col := range e.columns {
		if _, ok := e.visible[col.ID]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

func (e *Engine[T]) columnLocked(id string) (Column[T], bool) {
	for _, col := range e.columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column[T]{}, false
}
