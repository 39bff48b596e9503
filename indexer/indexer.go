// Package indexer provides functions that derive a storage index from a value.
//
// An Indexer must be deterministic: the same value always yields the same
// index. The auto-index facade relies on this to find values again.
package indexer

import (
	"fmt"
	"math"

	"github.com/hupe1980/gridstore/index"
)

// Indexer maps a value to the index it is stored under.
type Indexer[V, I any] interface {
	Index(v V) I
}

// Func adapts an ordinary function to an Indexer.
type Func[V, I any] func(v V) I

// Index implements Indexer.
func (f Func[V, I]) Index(v V) I { return f(v) }

// Deref lifts an indexer over T to one over non-owning handles *T.
// The handle is dereferenced before indexing and must not be nil.
func Deref[T, I any](ix Indexer[T, I]) Indexer[*T, I] {
	return Func[*T, I](func(p *T) I { return ix.Index(*p) })
}

// Grid2 quantizes 2-D coordinates to cells of the given edge length:
// cell = floor(coord / resolution). It panics unless resolution is positive
// and finite.
//
// Coordinates beyond the int range saturate to math.MinInt or math.MaxInt,
// and NaN maps to math.MaxInt. math.MaxInt lies outside every storage bound,
// so such values are rejected with ErrInvalidIndex instead of landing in an
// arbitrary cell.
func Grid2[V any](resolution float64, coords func(V) (x, y float64)) Indexer[V, index.Point2] {
	mustResolution(resolution)
	return Func[V, index.Point2](func(v V) index.Point2 {
		x, y := coords(v)
		return index.Point2{quantize(x, resolution), quantize(y, resolution)}
	})
}

// GridN quantizes n-D coordinates with a per-dimension resolution, with the
// same rules as Grid2. coords must return len(resolution) coordinates.
func GridN[V any](resolution []float64, coords func(V) []float64) Indexer[V, index.Vector] {
	for _, r := range resolution {
		mustResolution(r)
	}
	res := append([]float64(nil), resolution...)
	return Func[V, index.Vector](func(v V) index.Vector {
		c := coords(v)
		out := make(index.Vector, len(res))
		for d, r := range res {
			out[d] = quantize(c[d], r)
		}
		return out
	})
}

func mustResolution(r float64) {
	if math.IsNaN(r) || r <= 0 || math.IsInf(r, 1) {
		panic(fmt.Sprintf("indexer: resolution must be positive and finite, got %g", r))
	}
}

// quantize returns floor(x/resolution). Float-to-int conversion of values
// outside the int range is implementation-specific, so they are saturated
// here first.
func quantize(x, resolution float64) int {
	q := math.Floor(x / resolution)
	switch {
	case math.IsNaN(q), q >= float64(math.MaxInt):
		return math.MaxInt
	case q <= float64(math.MinInt):
		return math.MinInt
	}
	return int(q)
}
