package gridstore

import (
	"iter"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/index"
	"github.com/hupe1980/gridstore/indexer"
	"github.com/hupe1980/gridstore/value"
)

// AutoIndex stores values under the index an Indexer derives from them.
//
// Insert(v) is equivalent to Storage().Insert(Indexer().Index(v), v). For
// non-owning handles use V = *T with indexer.Deref and value.Identity.
type AutoIndex[I, V any] struct {
	storage *Storage[I, V, V]
	indexer indexer.Indexer[V, I]
}

// NewAutoIndex wraps s. The auto-index storage takes ownership of s.
func NewAutoIndex[I, V any](s *Storage[I, V, V], ix indexer.Indexer[V, I]) (*AutoIndex[I, V], error) {
	if s == nil {
		return nil, ErrInvalidConfig
	}
	if ix == nil {
		return nil, ErrNilIndexer
	}
	return &AutoIndex[I, V]{storage: s, indexer: ix}, nil
}

// NewDenseAutoIndex creates an auto-index storage over a dense array backend.
func NewDenseAutoIndex[I, V any](idx index.Adapter[I], ops value.Ops[V, V], ix indexer.Indexer[V, I], cfg array.Config, optFns ...Option) (*AutoIndex[I, V], error) {
	if ix == nil {
		return nil, ErrNilIndexer
	}
	s, err := NewDense(idx, ops, cfg, optFns...)
	if err != nil {
		return nil, err
	}
	return NewAutoIndex(s, ix)
}

// Indexer returns the current indexer.
func (a *AutoIndex[I, V]) Indexer() indexer.Indexer[V, I] { return a.indexer }

// SetIndexer replaces the indexer. Values already stored are not re-keyed;
// keeping them reachable is the caller's responsibility.
func (a *AutoIndex[I, V]) SetIndexer(ix indexer.Indexer[V, I]) error {
	if ix == nil {
		return ErrNilIndexer
	}
	a.indexer = ix
	return nil
}

// Storage returns the wrapped explicit-index storage.
func (a *AutoIndex[I, V]) Storage() *Storage[I, V, V] { return a.storage }

// IndexOf returns the index v would be stored under.
func (a *AutoIndex[I, V]) IndexOf(v V) I { return a.indexer.Index(v) }

// Insert stores v under its derived index, merging with a value already
// stored there under the duplicate policy.
func (a *AutoIndex[I, V]) Insert(v V) (*V, error) {
	return a.storage.Insert(a.indexer.Index(v), v)
}

// Get returns a pointer to the value stored at i. See Storage.Get.
func (a *AutoIndex[I, V]) Get(i I) (*V, error) { return a.storage.Get(i) }

// Value returns a copy of the value stored at i. See Storage.Value.
func (a *AutoIndex[I, V]) Value(i I) (V, bool, error) { return a.storage.Value(i) }

// All yields every stored value with its index. See Storage.All.
func (a *AutoIndex[I, V]) All() iter.Seq2[I, *V] { return a.storage.All() }

// Values yields copies of every stored value with its index.
func (a *AutoIndex[I, V]) Values() iter.Seq2[I, V] { return a.storage.Values() }

// Traverse calls fn for every stored value.
func (a *AutoIndex[I, V]) Traverse(fn func(I, *V)) { a.storage.Traverse(fn) }

// Clear discards all values.
func (a *AutoIndex[I, V]) Clear() { a.storage.Clear() }

// Configure applies a backend command.
func (a *AutoIndex[I, V]) Configure(cmd backend.Command) error { return a.storage.Configure(cmd) }

// Len returns the number of stored values.
func (a *AutoIndex[I, V]) Len() int { return a.storage.Len() }

// Capacity returns the number of addressable indices.
func (a *AutoIndex[I, V]) Capacity() int { return a.storage.Capacity() }
