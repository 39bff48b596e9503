package array

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridstore/value"
)

// ErrInvalidConfig indicates an unusable backend configuration.
var ErrInvalidConfig = errors.New("invalid array config")

// Config describes the bound and duplicate handling of an Array.
type Config struct {
	// Size is the extent of each dimension. Required, every entry > 0.
	Size []int
	// Offset is the lower bound of each dimension. Nil means all zero.
	Offset []int
	// OnDuplicate is the policy applied when an insert hits an occupied slot.
	// The zero value is value.Replace.
	OnDuplicate value.Policy
}

// Validate checks the configuration for an index of dims dimensions.
func (c Config) Validate(dims int) error {
	_, err := c.layout(dims)
	return err
}

func (c Config) layout(dims int) (Layout, error) {
	if len(c.Size) != dims {
		return Layout{}, fmt.Errorf("%w: %d sizes for %d dimensions", ErrInvalidConfig, len(c.Size), dims)
	}
	return NewLayout(c.Size, c.Offset)
}
