// Package gridstore provides indexed storage over a fixed, dense grid.
//
// This file implements the fluent builder for dense storages.
// Builders are immutable - each method returns a new builder with the updated configuration.
package gridstore

import (
	"slices"

	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/value"
)

// Dense creates a new builder for a Storage backed by a dense array.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	store, err := gridstore.Dense[index.Point2, int, int](index.Grid2{}, value.Sum[int]{}).
//	    Size(10, 10).
//	    Offset(-5, -5).
//	    OnDuplicate(value.Merge).
//	    Build()
func Dense[I, V, A any](idx index.Adapter[I], ops value.Ops[V, A]) DenseBuilder[I, V, A] {
	return DenseBuilder[I, V, A]{
		idx:    idx,
		ops:    ops,
		policy: value.Replace,
	}
}

// DenseBuilder is an immutable fluent builder for dense-array storages.
// Each method returns a new builder with the updated configuration.
type DenseBuilder[I, V, A any] struct {
	idx     index.Adapter[I]
	ops     value.Ops[V, A]
	size    []int
	offset  []int
	policy  value.Policy
	logger  *Logger
	metrics MetricsCollector
}

// Size sets the extent of each dimension. Required.
func (b DenseBuilder[I, V, A]) Size(extents ...int) DenseBuilder[I, V, A] {
	b.size = slices.Clone(extents)
	return b
}

// Offset sets the lower bound of each dimension.
// Default: 0 in every dimension.
func (b DenseBuilder[I, V, A]) Offset(lower ...int) DenseBuilder[I, V, A] {
	b.offset = slices.Clone(lower)
	return b
}

// OnDuplicate sets the policy applied when an insert hits an occupied index.
// Default: value.Replace.
func (b DenseBuilder[I, V, A]) OnDuplicate(p value.Policy) DenseBuilder[I, V, A] {
	b.policy = p
	return b
}

// Logger sets the structured logger for operation tracing.
func (b DenseBuilder[I, V, A]) Logger(l *Logger) DenseBuilder[I, V, A] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b DenseBuilder[I, V, A]) Metrics(mc MetricsCollector) DenseBuilder[I, V, A] {
	b.metrics = mc
	return b
}

// Config returns the backend configuration the builder would use.
func (b DenseBuilder[I, V, A]) Config() array.Config {
	return array.Config{
		Size:        slices.Clone(b.size),
		Offset:      slices.Clone(b.offset),
		OnDuplicate: b.policy,
	}
}

// Build creates the Storage.
func (b DenseBuilder[I, V, A]) Build() (*Storage[I, V, A], error) {
	var opts []Option
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return NewDense(b.idx, b.ops, b.Config(), opts...)
}

// MustBuild creates the Storage, panicking on error.
func (b DenseBuilder[I, V, A]) MustBuild() *Storage[I, V, A] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
