package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationQuery
		wantPage    int
		wantPerPage int
	}{
		{"defaults", PaginationQuery{}, 1, 10},
		{"negative page", PaginationQuery{Page: -3, PerPage: 20}, 1, 20},
		{"per_page capped", PaginationQuery{Page: 2, PerPage: 500}, 2, 10},
		{"kept as is", PaginationQuery{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPerPage, tt.in.PerPage)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	q := PaginationQuery{Page: 3, PerPage: 25}
	assert.Equal(t, 50, q.Offset())
}

func TestTotalAndRemainingPages(t *testing.T) {
	assert.EqualValues(t, 0, TotalPages(0, 10))
	assert.EqualValues(t, 1, TotalPages(1, 10))
	assert.EqualValues(t, 1, TotalPages(10, 10))
	assert.EqualValues(t, 2, TotalPages(11, 10))

	assert.EqualValues(t, 1, RemainingPages(11, 1, 10))
	assert.EqualValues(t, 0, RemainingPages(11, 2, 10))
	// Running past the end never goes negative.
	assert.EqualValues(t, 0, RemainingPages(11, 5, 10))
}
