package occupancy

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an occupancy bitmap over the positions [0, Universe()).
// It is not safe for concurrent use.
type Set struct {
	rb       *roaring.Bitmap
	universe uint32
}

// New creates an empty set covering universe positions.
func New(universe uint32) *Set {
	return &Set{
		rb:       roaring.New(),
		universe: universe,
	}
}

// Universe returns the number of addressable positions.
func (s *Set) Universe() uint32 {
	return s.universe
}

// Add marks pos as occupied. Positions outside the universe are ignored.
func (s *Set) Add(pos uint32) {
	if pos < s.universe {
		s.rb.Add(pos)
	}
}

// Contains reports whether pos is occupied.
func (s *Set) Contains(pos uint32) bool {
	if pos >= s.universe {
		return false
	}
	return s.rb.Contains(pos)
}

// Cardinality returns the number of occupied positions.
func (s *Set) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if no position is occupied.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Iterator returns the occupied positions in ascending order.
// Every call starts a fresh pass.
func (s *Set) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Clear removes all positions. The universe is unchanged.
func (s *Set) Clear() {
	s.rb.Clear()
}
