package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapters(t *testing.T) {
	t.Run("Grid2", func(t *testing.T) {
		var a Grid2
		p := Point2{-5, 7}
		assert.Equal(t, 2, a.Dimensions())
		assert.Equal(t, []int{-5, 7}, Components[Point2](a, p, nil))
		assert.Equal(t, p, a.Make([]int{-5, 7}))
	})

	t.Run("Grid3", func(t *testing.T) {
		var a Grid3
		p := Point3{1, 2, 3}
		assert.Equal(t, 3, a.Dimensions())
		assert.Equal(t, 3, a.Component(p, 2))
		assert.Equal(t, p, a.Make(Components[Point3](a, p, nil)))
	})

	t.Run("Dynamic", func(t *testing.T) {
		a := Dynamic{Dims: 4}
		require.NoError(t, a.Check(Vector{1, 2, 3, 4}))

		err := a.Check(Vector{1, 2})
		require.Error(t, err)
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 4, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("DynamicMakeCopies", func(t *testing.T) {
		a := Dynamic{Dims: 2}
		c := []int{1, 2}
		v := a.Make(c)
		c[0] = 99
		assert.Equal(t, Vector{1, 2}, v)
	})
}

func TestComponentsReusesBuffer(t *testing.T) {
	buf := make([]int, 0, 8)
	got := Components[Point2](Grid2{}, Point2{3, 4}, buf)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 8, cap(got))
}
