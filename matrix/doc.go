// Package matrix offers a generic square matrix built from vector rows.
//
// The matrix package provides:
//
//   - Matrix[T] with bounds-checked row and cell access (Row, At, Set).
//   - Value semantics: Clone (deep copy), Move/MoveFrom (ownership transfer),
//     Assign (replacement, safe under self-assignment) and Swap.
//   - Matrix-scalar, matrix-vector and matrix-matrix arithmetic that always
//     returns a new value.
//   - Identity, Transpose and Trace.
//   - Plain-text read/write in row-major order, one row per line.
//
// Orders are limited to [1, MaxSize]; every failure is reported through the
// sentinels in errors.go and matches with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
