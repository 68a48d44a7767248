package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddRejectsDuplicateID(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(CartItem{ID: "hexaxim", Name: "Hexaxim", Doses: 3, Price: 1015000}))
	err := c.Add(CartItem{ID: "hexaxim", Name: "Hexaxim", Doses: 3, Price: 1015000})
	assert.Error(t, err)
	assert.Equal(t, 1, c.Count())
}

func TestCartAddValidation(t *testing.T) {
	var c Cart
	assert.Error(t, c.Add(CartItem{Name: "no id", Doses: 1}))
	assert.Error(t, c.Add(CartItem{ID: "x", Doses: 0}))
	assert.Error(t, c.Add(CartItem{ID: "x", Doses: 1, Price: -1}))
	assert.Equal(t, 0, c.Count())
}

func TestCartTotalIsOrderInsensitive(t *testing.T) {
	var a, b Cart
	require.NoError(t, a.Add(CartItem{ID: "v1", Name: "MMR II", Doses: 2, Price: 445000}))
	require.NoError(t, a.Add(CartItem{ID: "v2", Name: "Varivax", Doses: 2, Price: 1085000}))

	require.NoError(t, b.Add(CartItem{ID: "v2", Name: "Varivax", Doses: 2, Price: 1085000}))
	require.NoError(t, b.Add(CartItem{ID: "v1", Name: "MMR II", Doses: 2, Price: 445000}))

	assert.Equal(t, int64(1530000), a.Total())
	assert.Equal(t, a.Total(), b.Total())
}

func TestCartRemove(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(CartItem{ID: "v1", Name: "MMR II", Doses: 2, Price: 445000}))

	assert.False(t, c.Remove("absent"))
	assert.True(t, c.Remove("v1"))
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, int64(0), c.Total())
}
