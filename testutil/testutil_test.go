package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBounds(t *testing.T) {
	rng := NewRNG(4711)
	size, offset := []int{10, 3}, []int{-5, 7}

	for range 100 {
		c := rng.InBounds(size, offset)
		assert.GreaterOrEqual(t, c[0], -5)
		assert.Less(t, c[0], 5)
		assert.GreaterOrEqual(t, c[1], 7)
		assert.Less(t, c[1], 10)
	}
}

func TestOutOfBounds(t *testing.T) {
	rng := NewRNG(4711)
	size, offset := []int{10, 3}, []int{-5, 7}

	for range 100 {
		c := rng.OutOfBounds(size, offset)
		out := 0
		for d := range size {
			if c[d] < offset[d] || c[d] >= offset[d]+size[d] {
				out++
			}
		}
		assert.Equal(t, 1, out, "components %v", c)
	}
}

func TestAllIndices(t *testing.T) {
	got := AllIndices([]int{2, 3}, []int{-1, 0})
	assert.Equal(t, [][]int{
		{-1, 0}, {-1, 1}, {-1, 2},
		{0, 0}, {0, 1}, {0, 2},
	}, got)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Indices(5, []int{100}, []int{0})
	rng.Reset()
	b := rng.Indices(5, []int{100}, []int{0})
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFloat64Range(t *testing.T) {
	rng := NewRNG(1)
	for range 50 {
		v := rng.Float64Range(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}
