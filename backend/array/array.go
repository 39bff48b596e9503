package array

import (
	"fmt"
	"iter"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/internal/occupancy"
	"github.com/hupe1980/gridstore/value"
)

// Array is the dense array backend.
//
// The slot slice and the occupancy set always cover the same positions and
// are updated together: a slot holds a value iff its position is set.
type Array[I, V, A any] struct {
	idx      index.Adapter[I]
	checker  index.Checker[I]
	ops      value.Ops[V, A]
	layout   Layout
	policy   value.Policy
	slots    []V
	occupied *occupancy.Set
}

// New creates an empty Array for the given capabilities and configuration.
func New[I, V, A any](idx index.Adapter[I], ops value.Ops[V, A], cfg Config) (*Array[I, V, A], error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: nil index adapter", ErrInvalidConfig)
	}
	if ops == nil {
		return nil, fmt.Errorf("%w: nil value ops", ErrInvalidConfig)
	}

	layout, err := cfg.layout(idx.Dimensions())
	if err != nil {
		return nil, err
	}

	a := &Array[I, V, A]{
		idx:      idx,
		ops:      ops,
		layout:   layout,
		policy:   cfg.OnDuplicate,
		slots:    make([]V, layout.Capacity()),
		occupied: occupancy.New(uint32(layout.Capacity())),
	}
	if c, ok := idx.(index.Checker[I]); ok {
		a.checker = c
	}
	return a, nil
}

// Insert implements backend.Backend.
func (a *Array[I, V, A]) Insert(i I, args A) (*V, error) {
	pos, err := a.position(i)
	if err != nil {
		return nil, err
	}

	slot := &a.slots[pos]
	if !a.occupied.Contains(pos) {
		*slot = a.ops.Create(args)
		a.occupied.Add(pos)
		return slot, nil
	}

	if a.policy == value.Reject {
		return nil, &backend.DuplicateIndexError{Components: index.Components(a.idx, i, nil)}
	}
	if err := a.ops.Merge(slot, args, a.policy); err != nil {
		return nil, fmt.Errorf("merge at %v: %w", index.Components(a.idx, i, nil), err)
	}
	return slot, nil
}

// Get implements backend.Backend.
func (a *Array[I, V, A]) Get(i I) (*V, error) {
	pos, err := a.position(i)
	if err != nil {
		return nil, err
	}
	if !a.occupied.Contains(pos) {
		return nil, nil
	}
	return &a.slots[pos], nil
}

// All implements backend.Backend.
func (a *Array[I, V, A]) All() iter.Seq2[I, *V] {
	return func(yield func(I, *V) bool) {
		buf := make([]int, a.layout.Dimensions())
		for pos := range a.occupied.Iterator() {
			buf = a.layout.Unflatten(int(pos), buf)
			if !yield(a.idx.Make(buf), &a.slots[pos]) {
				return
			}
		}
	}
}

// Traverse implements backend.Backend.
func (a *Array[I, V, A]) Traverse(fn func(I, *V)) {
	for i, v := range a.All() {
		fn(i, v)
	}
}

// Clear implements backend.Backend. Stored values are zeroed so the slots
// no longer reference them.
func (a *Array[I, V, A]) Clear() {
	a.occupied.Clear()
	clear(a.slots)
}

// Configure implements backend.Backend. Supported commands:
// backend.SetDuplicatePolicy.
func (a *Array[I, V, A]) Configure(cmd backend.Command) error {
	switch c := cmd.(type) {
	case backend.SetDuplicatePolicy:
		a.policy = c.Policy
		return nil
	}
	return fmt.Errorf("%w: %v", backend.ErrUnsupportedCommand, cmd)
}

// Dimensions implements backend.Backend.
func (a *Array[I, V, A]) Dimensions() int { return a.layout.Dimensions() }

// Len implements backend.Backend.
func (a *Array[I, V, A]) Len() int { return a.occupied.Cardinality() }

// Capacity implements backend.Backend.
func (a *Array[I, V, A]) Capacity() int { return a.layout.Capacity() }

// DuplicatePolicy returns the policy currently applied to duplicate inserts.
func (a *Array[I, V, A]) DuplicatePolicy() value.Policy { return a.policy }

// Layout returns the index layout of the backend.
func (a *Array[I, V, A]) Layout() Layout { return a.layout }

// position validates i against the layout and returns its flat offset.
func (a *Array[I, V, A]) position(i I) (uint32, error) {
	if a.checker != nil {
		if err := a.checker.Check(i); err != nil {
			return 0, backend.NewShapeError(err)
		}
	}
	flat, bad := a.layout.flatten(func(d int) int { return a.idx.Component(i, d) })
	if bad >= 0 {
		lo, hi := a.layout.Bounds(bad)
		return 0, backend.NewIndexError(index.Components(a.idx, i, nil), bad, lo, hi)
	}
	// flat < Capacity() <= math.MaxUint32, checked by NewLayout.
	return uint32(flat), nil
}
