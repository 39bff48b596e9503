package gridstore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridstore/backend"
	"github.com/hupe1980/gridstore/backend/array"
	"github.com/hupe1980/gridstore/value"
)

var (
	// ErrInvalidIndex is returned when an index lies outside the configured
	// bound or has the wrong dimensionality.
	ErrInvalidIndex = backend.ErrInvalidIndex

	// ErrDuplicateIndex is returned by Insert under the Reject policy when the
	// index is already occupied.
	ErrDuplicateIndex = backend.ErrDuplicateIndex

	// ErrUnsupportedCommand is returned by Configure for a command the
	// backend does not handle.
	ErrUnsupportedCommand = backend.ErrUnsupportedCommand

	// ErrUnsupportedPolicy is returned by Insert when the value capability
	// cannot merge under the configured duplicate policy.
	ErrUnsupportedPolicy = value.ErrUnsupportedPolicy

	// ErrInvalidConfig is returned when a storage cannot be constructed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilIndexer is returned when an auto-index storage is given no indexer.
	ErrNilIndexer = errors.New("nil indexer")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Configuration errors from any backend surface as ErrInvalidConfig.
	if errors.Is(err, array.ErrInvalidConfig) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return err
}
