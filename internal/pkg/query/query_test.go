package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Number string
	Role   string
}

var records = []record{
	{Number: "1001", Role: "admin"},
	{Number: "1002", Role: "registrar"},
	{Number: "2001", Role: "admin"},
	{Number: "3110", Role: "registrar"},
	{Number: "3111", Role: "admin"},
}

func TestByFieldExactMatch(t *testing.T) {
	admins := ByField(records, func(r record) string { return r.Role }, "admin")
	assert.Len(t, admins, 3)
	for _, r := range admins {
		assert.Equal(t, "admin", r.Role)
	}

	none := ByField(records, func(r record) string { return r.Role }, "dean")
	assert.Empty(t, none)
}

func TestBySubstringIsCaseSensitiveContains(t *testing.T) {
	hits := BySubstring(records, func(r record) string { return r.Number }, "311")
	assert.Len(t, hits, 2)

	// Exact substring only, no normalization.
	upper := BySubstring(records, func(r record) string { return r.Role }, "ADMIN")
	assert.Empty(t, upper)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		want      []string
	}{
		{name: "first page", pageIndex: 0, pageSize: 2, want: []string{"1001", "1002"}},
		{name: "middle page", pageIndex: 1, pageSize: 2, want: []string{"2001", "3110"}},
		{name: "short last page", pageIndex: 2, pageSize: 2, want: []string{"3111"}},
		{name: "page past the end is empty", pageIndex: 3, pageSize: 2, want: nil},
		{name: "far past the end is empty", pageIndex: 100, pageSize: 2, want: nil},
		{name: "negative page is empty", pageIndex: -1, pageSize: 2, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(records, tt.pageIndex, tt.pageSize)
			var numbers []string
			for _, r := range page {
				numbers = append(numbers, r.Number)
			}
			assert.Equal(t, tt.want, numbers)
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]record(nil), 0, 10))
}

func TestPageForResetsOnFilterChange(t *testing.T) {
	assert.Equal(t, 0, PageFor(4, true))
	assert.Equal(t, 4, PageFor(4, false))
	assert.Equal(t, 0, PageFor(-2, false))
}

func TestPages(t *testing.T) {
	assert.Equal(t, 3, Pages(5, 2))
	assert.Equal(t, 1, Pages(2, 2))
	assert.Equal(t, 0, Pages(0, 2))
	assert.Equal(t, 0, Pages(5, 0))
}

func TestFilterThenPaginate(t *testing.T) {
	// Filtering precedes pagination: page indexes apply to the filtered set.
	admins := ByField(records, func(r record) string { return r.Role }, "admin")
	page := Paginate(admins, 1, 2)
	assert.Len(t, page, 1)
	assert.Equal(t, "3111", page[0].Number)
}
