// Package index defines the index capability used by gridstore backends.
//
// An index is an ordered tuple of D integer components, D fixed per storage
// configuration. Backends never inspect an index type directly; they go
// through an Adapter that exposes the dimensionality, reads individual
// components and rebuilds an index from components during traversal.
//
// # Built-in Index Types
//
//   - Point2 / Grid2: fixed 2-D index ([2]int)
//   - Point3 / Grid3: fixed 3-D index ([3]int)
//   - Vector / Dynamic: slice-backed index whose dimensionality is declared
//     by the adapter and checked on every access
//
// # Custom Index Types
//
// Any comparable or non-comparable type can serve as an index by providing
// an Adapter:
//
//	type Cell struct{ Row, Col int }
//
//	type CellAdapter struct{}
//
//	func (CellAdapter) Dimensions() int { return 2 }
//	func (CellAdapter) Component(c Cell, d int) int {
//	    if d == 0 {
//	        return c.Row
//	    }
//	    return c.Col
//	}
//	func (CellAdapter) Make(c []int) Cell { return Cell{Row: c[0], Col: c[1]} }
package index
