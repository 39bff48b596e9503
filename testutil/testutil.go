package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// InBounds returns random components with offset[d] <= c[d] < offset[d]+size[d].
func (r *RNG) InBounds(size, offset []int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := make([]int, len(size))
	for d := range size {
		c[d] = offset[d] + r.rand.Intn(size[d])
	}
	return c
}

// OutOfBounds returns components that are in range except for one randomly
// chosen dimension, which lies up to size[d] below or above the bound.
func (r *RNG) OutOfBounds(size, offset []int) []int {
	c := r.InBounds(size, offset)

	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.rand.Intn(len(size))
	delta := 1 + r.rand.Intn(size[d])
	if r.rand.Intn(2) == 0 {
		c[d] = offset[d] - delta
	} else {
		c[d] = offset[d] + size[d] - 1 + delta
	}
	return c
}

// Indices returns n random in-bound component tuples. Duplicates are likely
// for small bounds.
func (r *RNG) Indices(n int, size, offset []int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = r.InBounds(size, offset)
	}
	return out
}

// AllIndices enumerates every in-bound component tuple in row-major order
// (last dimension fastest).
func AllIndices(size, offset []int) [][]int {
	total := 1
	for _, s := range size {
		total *= s
	}

	out := make([][]int, 0, total)
	cur := make([]int, len(size))
	copy(cur, offset)
	for range total {
		out = append(out, append([]int(nil), cur...))
		for d := len(size) - 1; d >= 0; d-- {
			cur[d]++
			if cur[d] < offset[d]+size[d] {
				break
			}
			cur[d] = offset[d]
		}
	}
	return out
}
