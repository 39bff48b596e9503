package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// AddInt returns a+b or an error if the sum overflows int.
func AddInt(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// MulInt returns a*b for non-negative operands or an error if the product
// overflows int.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand: %d * %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// Product multiplies all extents and checks that the result addresses a
// uint32 universe. An empty list yields an error.
func Product(extents []int) (uint32, error) {
	if len(extents) == 0 {
		return 0, fmt.Errorf("no extents")
	}
	p := 1
	for _, e := range extents {
		var err error
		if p, err = MulInt(p, e); err != nil {
			return 0, err
		}
	}
	return IntToUint32(p)
}
