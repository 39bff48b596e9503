package value

import (
	"fmt"
	"slices"
)

// Centroid accumulates samples falling into one storage cell.
type Centroid struct {
	N   int
	Sum []float64
}

// NewCentroid returns a centroid holding a single sample.
func NewCentroid(coords ...float64) Centroid {
	return Centroid{N: 1, Sum: slices.Clone(coords)}
}

// Dimensions returns the number of coordinates per sample.
func (c Centroid) Dimensions() int { return len(c.Sum) }

// Mean returns the mean of all accumulated samples, or nil when empty.
func (c Centroid) Mean() []float64 {
	if c.N == 0 {
		return nil
	}
	m := make([]float64, len(c.Sum))
	for i, s := range c.Sum {
		m[i] = s / float64(c.N)
	}
	return m
}

// CentroidOps is the capability for Centroid: Merge adds counts and
// coordinate sums, Replace keeps the newest sample set. Neither writes into
// a Sum slice that copies of the stored centroid may still share.
type CentroidOps struct{}

// Create implements Ops. The stored centroid never aliases the argument.
func (CentroidOps) Create(c Centroid) Centroid {
	return Centroid{N: c.N, Sum: slices.Clone(c.Sum)}
}

// Merge implements Ops.
func (o CentroidOps) Merge(existing *Centroid, c Centroid, p Policy) error {
	switch p {
	case Replace:
		*existing = o.Create(c)
	case Merge:
		if len(existing.Sum) != len(c.Sum) {
			return fmt.Errorf("%w: centroid has %d coordinates, sample has %d",
				ErrIncompatible, len(existing.Sum), len(c.Sum))
		}
		sum := slices.Clone(existing.Sum)
		for i, s := range c.Sum {
			sum[i] += s
		}
		existing.N += c.N
		existing.Sum = sum
	default:
		return unsupported(p)
	}
	return nil
}
