package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		page, size, total int
		start, end        int
	}{
		{1, 10, 25, 0, 10},
		{3, 10, 25, 20, 25},
		{4, 10, 25, 25, 25},
		{0, 10, 25, 0, 10},
		{1, 0, 25, 0, 20},
		{1, 500, 5, 0, 5},
		{1, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
		assert.Equal(t, tt.start, start, "%+v", tt)
		assert.Equal(t, tt.end, end, "%+v", tt)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, 25, info.TotalItems)

	empty := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page, info := Paginate(items, 2, 2)
	assert.Equal(t, []string{"c", "d"}, page)
	assert.Equal(t, 3, info.TotalPages)

	page, _ = Paginate(items, 9, 2)
	assert.Empty(t, page)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("five", time.Minute))
}
