package value

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPolicy is returned by Merge for a policy the capability
	// does not implement.
	ErrUnsupportedPolicy = errors.New("unsupported duplicate policy")

	// ErrIncompatible is returned by Merge when the arguments cannot be
	// combined with the stored value.
	ErrIncompatible = errors.New("incompatible value")
)

// Ops is the value capability for stored values V built from insert
// arguments A.
type Ops[V, A any] interface {
	// Create builds a fresh value from insert arguments.
	Create(args A) V
	// Merge folds args into *existing under policy p. It is never called
	// with Reject.
	Merge(existing *V, args A, p Policy) error
}

func unsupported(p Policy) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedPolicy, p)
}

// Identity stores inserted values unchanged. It supports Replace only,
// which makes it the natural capability for non-owning handles (V = *T).
type Identity[V any] struct{}

// Create implements Ops.
func (Identity[V]) Create(v V) V { return v }

// Merge implements Ops.
func (Identity[V]) Merge(existing *V, v V, p Policy) error {
	if p != Replace {
		return unsupported(p)
	}
	*existing = v
	return nil
}

// Number is the set of types Sum can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum accumulates numbers: Merge adds, Replace overwrites.
type Sum[N Number] struct{}

// Create implements Ops.
func (Sum[N]) Create(n N) N { return n }

// Merge implements Ops.
func (Sum[N]) Merge(existing *N, n N, p Policy) error {
	switch p {
	case Replace:
		*existing = n
	case Merge:
		*existing += n
	default:
		return unsupported(p)
	}
	return nil
}

// Funcs assembles a capability from closures.
//
// Replace is handled by rebuilding the value with CreateFn. Every other
// policy is forwarded to MergeFn; with a nil MergeFn only Replace works.
type Funcs[V, A any] struct {
	CreateFn func(args A) V
	MergeFn  func(existing *V, args A, p Policy) error
}

// Create implements Ops.
func (f Funcs[V, A]) Create(args A) V { return f.CreateFn(args) }

// Merge implements Ops.
func (f Funcs[V, A]) Merge(existing *V, args A, p Policy) error {
	if p == Replace {
		*existing = f.CreateFn(args)
		return nil
	}
	if f.MergeFn == nil {
		return unsupported(p)
	}
	return f.MergeFn(existing, args, p)
}
