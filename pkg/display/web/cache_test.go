package web

import (
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
)

func TestCache_AddAndIndex(t *testing.T) {
	c := newCache(4)

	data := []byte{1, 2, 3}
	hash := xxhash.Sum64(data)

	assert.Equal(t, -1, c.index(hash))

	idx := c.add(hash, data)
	assert.Equal(t, idx, c.index(hash))
}

func TestCache_EvictsOldest(t *testing.T) {
	c := newCache(2)

	c.add(1, []byte{1})
	c.add(2, []byte{2})
	c.add(3, []byte{3}) // evicts hash 1

	assert.Equal(t, -1, c.index(1))
	assert.NotEqual(t, -1, c.index(2))
	assert.NotEqual(t, -1, c.index(3))
}
