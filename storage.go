package gridstore

import (
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/value"
)

// Storage stores values V under caller-supplied indices I, building them
// from insert arguments A. It forwards every operation to exactly one
// backend, which it owns.
type Storage[I, V, A any] struct {
	backend backend.Backend[I, V, A]
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Storage over b. The storage takes ownership of b; b must not
// be used directly afterwards.
func New[I, V, A any](b backend.Backend[I, V, A], optFns ...Option) (*Storage[I, V, A], error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidConfig)
	}

	opts := applyOptions(optFns)

	return &Storage[I, V, A]{
		backend: b,
		logger:  opts.logger.WithDimensions(b.Dimensions()).WithCapacity(b.Capacity()),
		metrics: opts.metricsCollector,
	}, nil
}

// NewDense creates a Storage over a dense array backend.
func NewDense[I, V, A any](idx index.Adapter[I], ops value.Ops[V, A], cfg array.Config, optFns ...Option) (*Storage[I, V, A], error) {
	b, err := array.New(idx, ops, cfg)
	if err != nil {
		return nil, translateError(err)
	}
	return New[I, V, A](b, optFns...)
}

// Insert stores a value built from args at i, or merges args into the value
// already stored there under the backend's duplicate policy.
// The returned pointer stays valid until the next Clear.
func (s *Storage[I, V, A]) Insert(i I, args A) (*V, error) {
	start := time.Now()
	before := s.backend.Len()

	v, err := s.backend.Insert(i, args)
	err = translateError(err)
	merged := err == nil && s.backend.Len() == before

	s.metrics.RecordInsert(time.Since(start), merged, err)
	s.logger.LogInsert(i, merged, err)

	return v, err
}

// Get returns a pointer to the value stored at i.
// An empty in-bound index yields nil and no error; an out-of-bound index
// fails with ErrInvalidIndex.
func (s *Storage[I, V, A]) Get(i I) (*V, error) {
	v, err := s.backend.Get(i)
	err = translateError(err)

	s.metrics.RecordGet(v != nil, err)
	s.logger.LogGet(i, v != nil, err)

	return v, err
}

// Value returns a copy of the value stored at i and whether it was present.
// The copy is shallow; capabilities that keep slices in V must not mutate
// them in place on Merge for the copy to stay a stable snapshot.
func (s *Storage[I, V, A]) Value(i I) (V, bool, error) {
	p, err := s.Get(i)
	if err != nil || p == nil {
		var zero V
		return zero, false, err
	}
	return *p, true, nil
}

// All yields every stored value with its index in ascending flat offset
// order. Values may be modified through the yielded pointers; the storage
// itself must not be modified during iteration.
func (s *Storage[I, V, A]) All() iter.Seq2[I, *V] {
	return func(yield func(I, *V) bool) {
		visited := 0
		defer func() { s.metrics.RecordTraverse(visited) }()

		for i, v := range s.backend.All() {
			visited++
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields copies of every stored value with its index, in the order
// of All.
func (s *Storage[I, V, A]) Values() iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		for i, v := range s.All() {
			if !yield(i, *v) {
				return
			}
		}
	}
}

// Traverse calls fn for every stored value, in the order of All.
func (s *Storage[I, V, A]) Traverse(fn func(I, *V)) {
	for i, v := range s.All() {
		fn(i, v)
	}
}

// Clear discards all values. Capacity is unchanged.
func (s *Storage[I, V, A]) Clear() {
	n := s.backend.Len()
	s.backend.Clear()

	s.metrics.RecordClear(n)
	s.logger.LogClear(n)
}

// Configure applies a backend command, e.g. backend.SetDuplicatePolicy.
func (s *Storage[I, V, A]) Configure(cmd backend.Command) error {
	err := translateError(s.backend.Configure(cmd))
	s.logger.LogConfigure(cmd, err)
	return err
}

// Len returns the number of stored values.
func (s *Storage[I, V, A]) Len() int { return s.backend.Len() }

// Capacity returns the number of addressable indices.
func (s *Storage[I, V, A]) Capacity() int { return s.backend.Capacity() }
