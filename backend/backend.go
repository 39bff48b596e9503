package backend

import (
	"iter"

	"github.com/hupe1980/gridstore/value"
)

// Backend stores values V under indices I, built from insert arguments A.
//
// Implementations are not safe for concurrent use. Mutating a backend while
// iterating All is undefined.
type Backend[I, V, A any] interface {
	// Insert creates the value at i from args, or merges args into the value
	// already stored there according to the duplicate policy. The returned
	// pointer stays valid until the next Clear.
	Insert(i I, args A) (*V, error)

	// Get returns the value stored at i. It returns nil, nil when i is within
	// bounds but empty, and an error matching ErrInvalidIndex when i is out
	// of bounds.
	Get(i I) (*V, error)

	// All yields one (index, value) pair per occupied slot in ascending flat
	// offset order. Each call starts a new pass.
	All() iter.Seq2[I, *V]

	// Traverse calls fn for every occupied slot, in the order of All.
	Traverse(fn func(I, *V))

	// Clear discards all values. Capacity is unchanged.
	Clear()

	// Configure applies a backend command. Unsupported commands fail with
	// ErrUnsupportedCommand.
	Configure(cmd Command) error

	// Dimensions returns the number of index components.
	Dimensions() int

	// Len returns the number of occupied slots.
	Len() int

	// Capacity returns the number of addressable slots.
	Capacity() int
}

// Command is a run-time configuration request for a backend.
// The set of commands is closed; see the concrete types in this package.
type Command interface {
	command()
	String() string
}

// SetDuplicatePolicy changes the policy applied when an insert hits an
// occupied slot. It affects subsequent inserts only.
type SetDuplicatePolicy struct {
	Policy value.Policy
}

func (SetDuplicatePolicy) command() {}

func (c SetDuplicatePolicy) String() string {
	return "set-duplicate-policy(" + c.Policy.String() + ")"
}
