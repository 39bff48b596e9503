package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex indicates an index outside the configured bound.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrDuplicateIndex indicates an insert at an occupied slot under the
	// Reject policy.
	ErrDuplicateIndex = errors.New("duplicate index")

	// ErrUnsupportedCommand indicates a Command the backend does not handle.
	ErrUnsupportedCommand = errors.New("unsupported backend command")
)

// IndexError describes an index rejected by the bounds check.
//
// It matches ErrInvalidIndex via errors.Is. A shape error from the index
// checker, if any, is available via errors.Unwrap.
type IndexError struct {
	// Components holds the components of the rejected index, when readable.
	Components []int
	// Dimension is the first offending dimension, or -1 when the index has
	// the wrong dimensionality.
	Dimension int
	// Lower and Upper delimit the valid range [Lower, Upper) of Dimension.
	Lower, Upper int
	cause        error
}

// NewIndexError returns an IndexError for a component outside [lower, upper).
func NewIndexError(components []int, dim, lower, upper int) *IndexError {
	return &IndexError{Components: components, Dimension: dim, Lower: lower, Upper: upper}
}

// NewShapeError returns an IndexError for an index of the wrong shape.
func NewShapeError(cause error) *IndexError {
	return &IndexError{Dimension: -1, cause: cause}
}

func (e *IndexError) Error() string {
	if e.Dimension < 0 {
		if e.cause != nil {
			return fmt.Sprintf("invalid index: %v", e.cause)
		}
		return "invalid index"
	}
	return fmt.Sprintf("invalid index %v: component %d (%d) outside [%d, %d)",
		e.Components, e.Dimension, e.Components[e.Dimension], e.Lower, e.Upper)
}

func (e *IndexError) Is(target error) bool { return target == ErrInvalidIndex }

func (e *IndexError) Unwrap() error { return e.cause }

// DuplicateIndexError reports an insert rejected because the slot is occupied.
// It matches ErrDuplicateIndex via errors.Is.
type DuplicateIndexError struct {
	Components []int
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("duplicate index %v", e.Components)
}

func (e *DuplicateIndexError) Is(target error) bool { return target == ErrDuplicateIndex }
