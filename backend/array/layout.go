package array

import (
	"fmt"
	"slices"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/internal/conv"
)

// Layout maps bounded n-dimensional indices to flat offsets and back.
// A Layout is immutable once built.
type Layout struct {
	lower    []int
	upper    []int
	size     []int
	stride   []int
	capacity int
}

// NewLayout builds the row-major layout for the given extents and lower
// bounds. A nil offset means all lower bounds are zero.
func NewLayout(size, offset []int) (Layout, error) {
	dims := len(size)
	if dims == 0 {
		return Layout{}, fmt.Errorf("%w: no dimensions", ErrInvalidConfig)
	}
	if offset == nil {
		offset = make([]int, dims)
	}
	if len(offset) != dims {
		return Layout{}, fmt.Errorf("%w: %d offsets for %d dimensions", ErrInvalidConfig, len(offset), dims)
	}

	l := Layout{
		lower:  slices.Clone(offset),
		upper:  make([]int, dims),
		size:   slices.Clone(size),
		stride: make([]int, dims),
	}

	for d := range dims {
		if size[d] <= 0 {
			return Layout{}, fmt.Errorf("%w: size[%d] = %d", ErrInvalidConfig, d, size[d])
		}
		hi, err := conv.AddInt(offset[d], size[d])
		if err != nil {
			return Layout{}, fmt.Errorf("%w: bound of dimension %d: %v", ErrInvalidConfig, d, err)
		}
		l.upper[d] = hi
	}

	capacity, err := conv.Product(size)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: capacity: %v", ErrInvalidConfig, err)
	}
	l.capacity = int(capacity)

	stride := 1
	for d := dims - 1; d >= 0; d-- {
		l.stride[d] = stride
		stride *= size[d]
	}
	return l, nil
}

// Dimensions returns the number of dimensions.
func (l Layout) Dimensions() int { return len(l.size) }

// Capacity returns the number of addressable flat offsets.
func (l Layout) Capacity() int { return l.capacity }

// Bounds returns the valid range [lo, hi) of dimension d.
func (l Layout) Bounds(d int) (lo, hi int) { return l.lower[d], l.upper[d] }

// Flatten returns the flat offset of the given components.
func (l Layout) Flatten(components []int) (int, error) {
	if len(components) != len(l.size) {
		return 0, backend.NewShapeError(fmt.Errorf("%d components for %d dimensions", len(components), len(l.size)))
	}
	flat, bad := l.flatten(func(d int) int { return components[d] })
	if bad >= 0 {
		return 0, backend.NewIndexError(slices.Clone(components), bad, l.lower[bad], l.upper[bad])
	}
	return flat, nil
}

// flatten computes the flat offset reading components through component.
// It returns the first out-of-range dimension, or -1.
func (l Layout) flatten(component func(d int) int) (flat, bad int) {
	for d := range l.size {
		v := component(d)
		if v < l.lower[d] || v >= l.upper[d] {
			return 0, d
		}
		flat += (v - l.lower[d]) * l.stride[d]
	}
	return flat, -1
}

// Unflatten writes the components of flat offset into dst (reallocating when
// dst is too small) and returns the filled slice. flat must be in
// [0, Capacity()).
func (l Layout) Unflatten(flat int, dst []int) []int {
	dims := len(l.size)
	if cap(dst) < dims {
		dst = make([]int, dims)
	}
	dst = dst[:dims]
	for d := dims - 1; d >= 0; d-- {
		dst[d] = flat%l.size[d] + l.lower[d]
		flat /= l.size[d]
	}
	return dst
}
