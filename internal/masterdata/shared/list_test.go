package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQueryDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/suppliers", nil)

	q := ParseListQuery(r)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPerPage, q.PerPage)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Empty(t, q.SortBy)
	assert.Empty(t, q.Search)
}

func TestParseListQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/suppliers?page=3&per_page=25&sort_by=code&sort_order=desc&search=mills", nil)

	q := ParseListQuery(r)

	assert.Equal(t, ListQuery{Page: 3, PerPage: 25, SortBy: "code", SortOrder: "desc", Search: "mills"}, q)
}

func TestParseListQuerySanitizes(t *testing.T) {
	r := httptest.NewRequest("GET", "/suppliers?page=-4&per_page=9999&sort_order=sideways", nil)

	q := ParseListQuery(r)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPerPage, q.PerPage)
	assert.Equal(t, "asc", q.SortOrder, "anything but desc normalizes to asc")
}

func TestWindow(t *testing.T) {
	q := ListQuery{Page: 2, PerPage: 10}

	start, end := q.Window(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = q.Window(12)
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	start, end = q.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end, "out-of-range page yields an empty window")
}
