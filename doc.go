// Package gridstore provides indexed storage over a fixed, dense,
// n-dimensional grid.
//
// Client code inserts and retrieves values by an integer index while the
// physical layout (a flat slot array plus an occupancy bitmap) stays hidden
// behind a replaceable backend. Two facades are provided:
//
//   - Storage: the caller supplies the index on every insert
//   - AutoIndex: the index is derived from the inserted value by an Indexer
//
// # Quick Start
//
//	store, _ := gridstore.Dense[index.Point2, int, int](index.Grid2{}, value.Sum[int]{}).
//	    Size(10, 10).
//	    Offset(-5, -5).
//	    OnDuplicate(value.Merge).
//	    Build()
//
//	store.Insert(index.Point2{0, 0}, 40)
//	store.Insert(index.Point2{0, 0}, 2)   // merged: 42
//	v, _ := store.Get(index.Point2{0, 0}) // *v == 42
//
// # Auto Indexing
//
//	ix := indexer.Grid2(0.5, func(c value.Centroid) (float64, float64) {
//	    m := c.Mean()
//	    return m[0], m[1]
//	})
//	cells, _ := gridstore.NewDenseAutoIndex[index.Point2, value.Centroid](
//	    index.Grid2{}, value.CentroidOps{}, ix,
//	    array.Config{Size: []int{20, 20}, Offset: []int{-10, -10}, OnDuplicate: value.Merge})
//	cells.Insert(value.NewCentroid(1.2, -0.3))
//
// # Errors
//
// Indices outside the configured bound fail with ErrInvalidIndex on both
// Insert and Get; they are never clamped. Get on an empty in-bound index
// returns a nil pointer and no error. Under the Reject policy a second insert
// at the same index fails with ErrDuplicateIndex.
//
// # Concurrency
//
// Storage and AutoIndex are not safe for concurrent use. Callers sharing an
// instance across goroutines must serialize all access, including traversal.
package gridstore
