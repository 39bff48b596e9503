// Package conv provides checked integer conversion and arithmetic.
//
// The dense backend derives its capacity and per-dimension bounds from
// caller-supplied sizes and offsets. These helpers reject values that would
// overflow int or exceed the 32-bit universe of the occupancy bitmap instead
// of silently wrapping.
//
// For conversions that are provably safe by domain constraints (e.g. a flat
// offset already validated against the capacity), use direct type casts.
package conv
