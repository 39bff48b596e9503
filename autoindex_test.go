package gridstore

import (
	"math"
	"testing"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/indexer"
	"github.com/hupe1980/gridstore/testutil"
	"github.com/hupe1980/gridstore/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centroidXY(c value.Centroid) (float64, float64) {
	m := c.Mean()
	return m[0], m[1]
}

func cellConfig() array.Config {
	return array.Config{Size: []int{20, 20}, Offset: []int{-10, -10}, OnDuplicate: value.Merge}
}

func TestAutoIndex(t *testing.T) {
	ix := indexer.Grid2(0.5, centroidXY)

	t.Run("EquivalentToExplicit", func(t *testing.T) {
		auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](index.Grid2{}, value.CentroidOps{}, ix, cellConfig())
		require.NoError(t, err)
		explicit, err := NewDense[index.Point2, value.Centroid, value.Centroid](index.Grid2{}, value.CentroidOps{}, cellConfig())
		require.NoError(t, err)

		rng := testutil.NewRNG(11)
		for range 300 {
			c := value.NewCentroid(rng.Float64Range(-5, 5), rng.Float64Range(-5, 5))

			_, errAuto := auto.Insert(c)
			_, errExplicit := explicit.Insert(ix.Index(c), c)
			require.NoError(t, errAuto)
			require.NoError(t, errExplicit)
		}

		type cell struct {
			p index.Point2
			c value.Centroid
		}
		var got, want []cell
		for p, c := range auto.Values() {
			got = append(got, cell{p, c})
		}
		for p, c := range explicit.Values() {
			want = append(want, cell{p, c})
		}
		assert.Equal(t, want, got)
		assert.Equal(t, explicit.Len(), auto.Len())
	})

	t.Run("MergesIntoCell", func(t *testing.T) {
		auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](index.Grid2{}, value.CentroidOps{}, ix, cellConfig())
		require.NoError(t, err)

		_, err = auto.Insert(value.NewCentroid(0.1, 0.1))
		require.NoError(t, err)
		p, err := auto.Insert(value.NewCentroid(0.3, 0.3))
		require.NoError(t, err)

		assert.Equal(t, 2, p.N)
		assert.Equal(t, index.Point2{0, 0}, auto.IndexOf(value.NewCentroid(0.2, 0.2)))

		got, ok, err := auto.Value(index.Point2{0, 0})
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDeltaSlice(t, []float64{0.2, 0.2}, got.Mean(), 1e-9)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](index.Grid2{}, value.CentroidOps{}, ix, cellConfig())
		require.NoError(t, err)

		_, err = auto.Insert(value.NewCentroid(5.0, 0))
		assert.ErrorIs(t, err, ErrInvalidIndex)
		_, err = auto.Get(index.Point2{-11, 0})
		assert.ErrorIs(t, err, ErrInvalidIndex)
		assert.Zero(t, auto.Len())
	})

	t.Run("DelegatesClearAndConfigure", func(t *testing.T) {
		auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](index.Grid2{}, value.CentroidOps{}, ix, cellConfig())
		require.NoError(t, err)

		require.NoError(t, auto.Configure(backend.SetDuplicatePolicy{Policy: value.Reject}))
		_, err = auto.Insert(value.NewCentroid(1, 1))
		require.NoError(t, err)
		_, err = auto.Insert(value.NewCentroid(1.1, 1.1))
		assert.ErrorIs(t, err, ErrDuplicateIndex)

		visited := 0
		auto.Traverse(func(index.Point2, *value.Centroid) { visited++ })
		assert.Equal(t, 1, visited)

		auto.Clear()
		assert.Zero(t, auto.Len())
		assert.Equal(t, 400, auto.Capacity())
		assert.Same(t, auto.Storage(), auto.Storage())
	})
}

func TestAutoIndexSetIndexer(t *testing.T) {
	auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](index.Grid2{}, value.CentroidOps{},
		indexer.Grid2(1.0, centroidXY), cellConfig())
	require.NoError(t, err)

	_, err = auto.Insert(value.NewCentroid(1.5, 1.5))
	require.NoError(t, err)

	assert.ErrorIs(t, auto.SetIndexer(nil), ErrNilIndexer)

	require.NoError(t, auto.SetIndexer(indexer.Grid2(0.5, centroidXY)))
	_, err = auto.Insert(value.NewCentroid(1.5, 1.5))
	require.NoError(t, err)

	// The first value is not re-keyed: both cells are occupied.
	assert.Equal(t, 2, auto.Len())
	assert.Equal(t, index.Point2{3, 3}, auto.Indexer().Index(value.NewCentroid(1.5, 1.5)))
}

type particle struct {
	X, Y   float64
	Weight float64
}

func TestAutoIndexNonOwning(t *testing.T) {
	base := indexer.Grid2(1.0, func(p particle) (float64, float64) { return p.X, p.Y })
	auto, err := NewDenseAutoIndex[index.Point2, *particle](index.Grid2{}, value.Identity[*particle]{},
		indexer.Deref(base), array.Config{Size: []int{4, 4}})
	require.NoError(t, err)

	p := &particle{X: 2.5, Y: 1.2, Weight: 1}
	_, err = auto.Insert(p)
	require.NoError(t, err)

	stored, ok, err := auto.Value(index.Point2{2, 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, p, stored)

	// The handle is shared with the caller.
	p.Weight = 5
	assert.Equal(t, 5.0, stored.Weight)

	// Replacing stores the newer handle.
	q := &particle{X: 2.9, Y: 1.9}
	_, err = auto.Insert(q)
	require.NoError(t, err)
	stored, _, _ = auto.Value(index.Point2{2, 1})
	assert.Same(t, q, stored)
}

func TestNewAutoIndex(t *testing.T) {
	s, err := NewDense[index.Point2, int, int](index.Grid2{}, value.Sum[int]{}, array.Config{Size: []int{2, 2}})
	require.NoError(t, err)

	_, err = NewAutoIndex[index.Point2, int](s, nil)
	assert.ErrorIs(t, err, ErrNilIndexer)

	_, err = NewAutoIndex[index.Point2, int](nil, indexer.Func[int, index.Point2](func(int) index.Point2 { return index.Point2{} }))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDenseAutoIndex[index.Point2, int](index.Grid2{}, value.Sum[int]{}, nil, array.Config{Size: []int{2, 2}})
	assert.ErrorIs(t, err, ErrNilIndexer)

	a, err := NewAutoIndex[index.Point2, int](s, indexer.Func[int, index.Point2](func(n int) index.Point2 { return index.Point2{n % 2, n / 2} }))
	require.NoError(t, err)
	for n := range 4 {
		_, err := a.Insert(n)
		require.NoError(t, err)
	}
	for p, v := range a.All() {
		assert.Equal(t, p, a.IndexOf(*v))
	}
	assert.Equal(t, 4, a.Len())
}

func TestAutoIndexNonFinite(t *testing.T) {
	auto, err := NewDenseAutoIndex[index.Point2, value.Centroid](
		index.Grid2{}, value.CentroidOps{}, indexer.Grid2(1.0, centroidXY), cellConfig())
	require.NoError(t, err)

	_, err = auto.Insert(value.NewCentroid(0.5, 0.5))
	require.NoError(t, err)

	for _, c := range []value.Centroid{
		value.NewCentroid(math.NaN(), 0.5),
		value.NewCentroid(0.5, math.Inf(-1)),
		value.NewCentroid(1e300, 0.5),
	} {
		_, err := auto.Insert(c)
		assert.ErrorIs(t, err, ErrInvalidIndex, "sample %v", c.Sum)
	}

	v, ok, err := auto.Value(index.Point2{0, 0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, v.N)
	assert.Equal(t, []float64{0.5, 0.5}, v.Mean())
}
