// Package tmatrix is a small library of owned, bounds-checked numeric
// containers: a fixed-length Vector and a square Matrix built from Vector
// rows, with value semantics, elementwise and matrix arithmetic, and a
// plain whitespace text form.
//
// Layout:
//
//	vector/       Vector[T]: New, At/Set, Clone/Move/Assign/Swap, scalar and elementwise ops, Dot
//	matrix/       Matrix[T]: order×order of vector rows, Add/Sub/Mul/MulVector/MulScalar, Transpose, Trace
//	textio/       whitespace text codec and its functional options (separator, terminator, verb)
//	yamlio/       YAML list and list-of-lists form of both containers
//	cmd/tmatrix/  command-line evaluator over stdin text or YAML job files
//
// Errors are sentinel values matched with errors.Is (ErrInvalidSize,
// ErrIndexOutOfRange, ErrSizeMismatch, ErrNilSource). No operation panics on
// bad input. A container is not safe for concurrent mutation.
//
//	v, _ := vector.Of(1.0, 2, 3)
//	w, _ := v.Add(v.AddScalar(1)) // [3 5 7]
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	y, _ := m.MulVector(w)       // [13 29]
package tmatrix
