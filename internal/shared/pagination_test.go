package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int
		want    Pagination
	}{
		{"exact pages", 1, 10, 50, Pagination{Page: 1, PerPage: 10, Total: 50, TotalPages: 5}},
		{"partial last page", 2, 10, 41, Pagination{Page: 2, PerPage: 10, Total: 41, TotalPages: 5}},
		{"empty set", 1, 10, 0, Pagination{Page: 1, PerPage: 10, Total: 0, TotalPages: 0}},
		{"defaults applied", 0, 0, 30, Pagination{Page: 1, PerPage: DefaultPerPage, Total: 30, TotalPages: 3}},
		{"negative inputs fall back", -2, -5, 7, Pagination{Page: 1, PerPage: DefaultPerPage, Total: 7, TotalPages: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}
