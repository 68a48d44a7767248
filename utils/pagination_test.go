package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, Paginate(items, 1, DefaultPageSize), 10)
	assert.Len(t, Paginate(items, 2, DefaultPageSize), 10)

	last := Paginate(items, 3, DefaultPageSize)
	assert.Equal(t, []int{20, 21, 22}, last)

	assert.Empty(t, Paginate(items, 4, DefaultPageSize))
	assert.Empty(t, Paginate(items, 0, DefaultPageSize))
	assert.Empty(t, Paginate([]int{}, 1, DefaultPageSize))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(23, DefaultPageSize))
	assert.Equal(t, 1, PageCount(10, DefaultPageSize))
	assert.Equal(t, 2, PageCount(11, DefaultPageSize))
	assert.Equal(t, 0, PageCount(0, DefaultPageSize))
}
