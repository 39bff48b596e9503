// Package occupancy tracks which slots of a fixed-size slot array hold a value.
//
// A Set wraps a 32-bit Roaring bitmap bounded by a universe size equal to the
// slot array length. Membership test and insertion are O(1) in practice and
// iteration visits set positions in ascending order, which gives the dense
// backend its flat-offset traversal order.
package occupancy
