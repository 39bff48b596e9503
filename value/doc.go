// Package value defines the value capability used by gridstore backends.
//
// A backend never constructs or combines stored values itself. It asks an
// Ops implementation to Create a value from the arguments of the first insert
// at an index, and to Merge the arguments of every later insert at the same
// index into the stored value, under the configured duplicate Policy.
//
// # Duplicate Policies
//
//   - Replace: the stored value is discarded and rebuilt from the new arguments
//   - Merge: the new arguments are combined into the stored value
//   - Reject: the backend fails the insert; Merge is never called
//
// Any other Policy value is a custom policy that only the Ops implementation
// understands. Ops return ErrUnsupportedPolicy for policies they do not know.
//
// # Built-in Capabilities
//
//   - Identity: stores the inserted value as is (Replace only)
//   - Sum: numeric accumulator (Merge adds)
//   - CentroidOps: sample accumulator for clustering (Merge adds counts and sums)
//   - Funcs: capability assembled from closures
package value
