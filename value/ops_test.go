package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var ops Identity[string]
	v := ops.Create("a")
	require.NoError(t, ops.Merge(&v, "b", Replace))
	assert.Equal(t, "b", v)

	err := ops.Merge(&v, "c", Merge)
	assert.ErrorIs(t, err, ErrUnsupportedPolicy)
	assert.Equal(t, "b", v)
}

func TestSum(t *testing.T) {
	var ops Sum[int]

	t.Run("Merge", func(t *testing.T) {
		v := ops.Create(40)
		require.NoError(t, ops.Merge(&v, 2, Merge))
		assert.Equal(t, 42, v)
	})

	t.Run("Replace", func(t *testing.T) {
		v := ops.Create(40)
		require.NoError(t, ops.Merge(&v, 2, Replace))
		assert.Equal(t, 2, v)
	})

	t.Run("Custom", func(t *testing.T) {
		v := ops.Create(1)
		assert.ErrorIs(t, ops.Merge(&v, 2, Policy(9)), ErrUnsupportedPolicy)
	})
}

func TestFuncs(t *testing.T) {
	const keepMax = Policy(100)

	ops := Funcs[[]string, string]{
		CreateFn: func(s string) []string { return []string{s} },
		MergeFn: func(existing *[]string, s string, p Policy) error {
			switch p {
			case Merge:
				*existing = append(*existing, s)
			case keepMax:
				if s > (*existing)[0] {
					*existing = []string{s}
				}
			default:
				return ErrUnsupportedPolicy
			}
			return nil
		},
	}

	v := ops.Create("b")
	require.NoError(t, ops.Merge(&v, "a", Merge))
	assert.Equal(t, []string{"b", "a"}, v)

	require.NoError(t, ops.Merge(&v, "z", Replace))
	assert.Equal(t, []string{"z"}, v)

	v = ops.Create("m")
	require.NoError(t, ops.Merge(&v, "x", keepMax))
	require.NoError(t, ops.Merge(&v, "c", keepMax))
	assert.Equal(t, []string{"x"}, v)

	t.Run("nil MergeFn", func(t *testing.T) {
		replaceOnly := Funcs[int, int]{CreateFn: func(n int) int { return n * 2 }}
		v := replaceOnly.Create(1)
		require.NoError(t, replaceOnly.Merge(&v, 4, Replace))
		assert.Equal(t, 8, v)
		assert.ErrorIs(t, replaceOnly.Merge(&v, 4, Merge), ErrUnsupportedPolicy)
	})
}

func TestCentroid(t *testing.T) {
	var ops CentroidOps

	t.Run("Merge", func(t *testing.T) {
		v := ops.Create(NewCentroid(1, 2))
		require.NoError(t, ops.Merge(&v, NewCentroid(3, 4), Merge))
		assert.Equal(t, 2, v.N)
		assert.Equal(t, []float64{2, 3}, v.Mean())
	})

	t.Run("Replace", func(t *testing.T) {
		v := ops.Create(NewCentroid(1, 2))
		require.NoError(t, ops.Merge(&v, NewCentroid(5, 6), Replace))
		assert.Equal(t, 1, v.N)
		assert.Equal(t, []float64{5, 6}, v.Mean())
	})

	t.Run("CreateDoesNotAlias", func(t *testing.T) {
		in := NewCentroid(1, 1)
		v := ops.Create(in)
		require.NoError(t, ops.Merge(&v, NewCentroid(1, 1), Merge))
		assert.Equal(t, []float64{1, 1}, in.Sum)
	})

	t.Run("MergeLeavesCopiesIntact", func(t *testing.T) {
		v := ops.Create(NewCentroid(1, 1))
		snapshot := v
		require.NoError(t, ops.Merge(&v, NewCentroid(5, 5), Merge))

		assert.Equal(t, 1, snapshot.N)
		assert.Equal(t, []float64{1, 1}, snapshot.Sum)
		assert.Equal(t, []float64{1, 1}, snapshot.Mean())
		assert.Equal(t, []float64{6, 6}, v.Sum)
	})

	t.Run("Incompatible", func(t *testing.T) {
		v := ops.Create(NewCentroid(1, 2))
		err := ops.Merge(&v, NewCentroid(1, 2, 3), Merge)
		assert.ErrorIs(t, err, ErrIncompatible)
		assert.Equal(t, 1, v.N)
	})

	t.Run("EmptyMean", func(t *testing.T) {
		assert.Nil(t, Centroid{}.Mean())
		assert.Equal(t, 3, NewCentroid(0, 0, 0).Dimensions())
	})
}
