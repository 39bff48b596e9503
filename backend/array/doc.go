// Package array implements the dense array backend.
//
// An Array owns a fixed-capacity slot slice of Π Size[d] elements plus an
// occupancy bitmap over the same positions. An index is mapped to a flat
// offset by row-major mixed-radix encoding of (component[d] - Offset[d]),
// last dimension varying fastest:
//
//	size   = [4, 3]      offset = [-2, 0]
//	index  = (-1, 2)  -> (1, 2) -> 1*3 + 2 = 5
//	offset 5          -> (5/3, 5%3) + offset = (-1, 2)
//
// Every component is checked against [Offset[d], Offset[d]+Size[d]) before
// the offset is computed; out-of-range indices fail with
// backend.ErrInvalidIndex and never touch the slot slice.
//
// The backend does not grow. Capacity is limited to the 32-bit universe of
// the occupancy bitmap.
package array
