package index

import (
	"fmt"
)

// Adapter exposes the components of an index type I.
//
// Component is only called with 0 <= d < Dimensions(). Make receives exactly
// Dimensions() components and must not retain the slice.
type Adapter[I any] interface {
	// Dimensions returns the fixed number of components of every index.
	Dimensions() int
	// Component returns the d-th component of i.
	Component(i I, d int) int
	// Make builds an index from its components.
	Make(components []int) I
}

// Checker is implemented by adapters whose index type can carry the wrong
// number of components (e.g. slices). Backends call Check before reading
// components.
type Checker[I any] interface {
	Check(i I) error
}

// ErrDimensionMismatch is a named error type for dimension mismatch
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Components copies all components of i into dst (reallocating when dst is
// too small) and returns the filled slice.
func Components[I any](a Adapter[I], i I, dst []int) []int {
	n := a.Dimensions()
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]
	for d := range n {
		dst[d] = a.Component(i, d)
	}
	return dst
}
