// SPDX-License-Identifier: MIT

// Package matrix - square matrix composed of vector rows.
//
// Purpose:
//   - Hold a square grid as a sequence of Order() rows, each a *vector.Vector
//     of length Order(). Rows are owned exclusively: no two matrices share
//     row storage.
//   - Cell access is two chained, independently checked index operations:
//     first the row, then the column inside that row.
//   - All arithmetic returns a new Matrix (or Vector); receivers are never
//     mutated.
//
// Complexity quicksheet:
//   - New/FromRows/Clone/Assign: O(n²); Move/MoveFrom/Swap/Row/Order: O(1);
//     At/Set: O(1); Add/Sub/MulScalar: O(n²); MulVector: O(n²); Mul: O(n³).
package matrix

import (
	"github.com/katalvlaran/tmatrix/internal/seq"
	"github.com/katalvlaran/tmatrix/vector"
)

// MaxSize is the largest order a Matrix can be created with.
const MaxSize = seq.MaxMatrixSize

// Matrix is a square Order()×Order() grid of T.
//
// A moved-from Matrix has Order()==0. A Matrix is not safe for concurrent
// use.
type Matrix[T vector.Number] struct {
	rows seq.Seq[*vector.Vector[T]] // len == order; every row has length order
}

// New creates an order×order matrix of zero values.
//
// Errors:
//   - ErrInvalidSize when order <= 0 or order > MaxSize.
//
// Complexity: O(order²) time and memory.
func New[T vector.Number](order int) (*Matrix[T], error) {
	rows, err := seq.New[*vector.Vector[T]](order, MaxSize)
	if err != nil {
		return nil, orderErrorf(ctxNew, order, err)
	}
	raw := rows.Raw()
	for i := range raw {
		if raw[i], err = vector.New[T](order); err != nil {
			return nil, orderErrorf(ctxNew, order, err)
		}
	}

	return &Matrix[T]{rows: rows}, nil
}

// FromRows builds a matrix holding a copy of a square row-major literal.
//
// Errors:
//   - ErrNilSource when rows or any row is nil.
//   - ErrInvalidSize when len(rows) is 0 or above MaxSize.
//   - ErrSizeMismatch when any row length differs from len(rows).
func FromRows[T vector.Number](rows [][]T) (*Matrix[T], error) {
	if rows == nil {
		return nil, matrixErrorf(ctxFromRows, ErrNilSource)
	}
	if err := seq.ValidateSize(len(rows), MaxSize); err != nil {
		return nil, orderErrorf(ctxFromRows, len(rows), err)
	}
	for i, r := range rows {
		if r == nil {
			return nil, orderErrorf(ctxFromRows, i, ErrNilSource)
		}
		if len(r) != len(rows) {
			return nil, orderErrorf(ctxFromRows, i, ErrSizeMismatch)
		}
	}

	m, err := fromValues(rows)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	return m, nil
}

// fromValues copies an already validated square literal.
func fromValues[T vector.Number](vals [][]T) (*Matrix[T], error) {
	n := len(vals)
	rows, err := seq.New[*vector.Vector[T]](n, MaxSize)
	if err != nil {
		return nil, err
	}
	raw := rows.Raw()
	for i := range raw {
		if raw[i], err = vector.FromValues(vals[i], n); err != nil {
			return nil, err
		}
	}

	return &Matrix[T]{rows: rows}, nil
}

// Order returns the number of rows (== number of columns), 0 once moved from.
func (m *Matrix[T]) Order() int {
	return m.rows.Len()
}

// Row returns row i. The row shares storage with m, so Set on it writes
// through to the matrix. Replacing its storage (Assign with another length,
// MoveFrom, Move, Swap) breaks the square shape; such a matrix is rejected
// by every arithmetic operation, Clone, Transpose, Trace and ReadText with
// ErrSizeMismatch.
//
// Returns ErrIndexOutOfRange unless 0 <= i < Order().
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	r, err := m.rows.Get(i)
	if err != nil {
		return nil, orderErrorf(ctxRow, i, err)
	}

	return r, nil
}

// At returns the cell (i, j): row i is checked first, then column j.
func (m *Matrix[T]) At(i, j int) (T, error) {
	r, err := m.rows.Get(i)
	if err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	x, err := r.At(j)
	if err != nil {
		return x, cellErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set stores x at cell (i, j) with the same two checks as At.
func (m *Matrix[T]) Set(i, j int, x T) error {
	r, err := m.rows.Get(i)
	if err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err = r.Set(j, x); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Values returns a row-major copy of the cells.
func (m *Matrix[T]) Values() [][]T {
	raw := m.rows.Raw()
	out := make([][]T, len(raw))
	for i, r := range raw {
		out[i] = r.Values()
	}

	return out
}

// cloneRow deep-copies one row for seq.Clone/Assign.
func cloneRow[T vector.Number](r *vector.Vector[T]) *vector.Vector[T] {
	return r.Clone()
}

// Clone returns a deep copy: every row is copied independently.
// The order is re-validated, so cloning a moved-from matrix returns
// ErrInvalidSize, and a row resized through Row yields ErrSizeMismatch.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	if err := seq.ValidateSize(m.Order(), MaxSize); err != nil {
		return nil, orderErrorf(ctxClone, m.Order(), err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(ctxClone, err)
	}

	return &Matrix[T]{rows: m.rows.Clone(cloneRow[T])}, nil
}

// Move transfers m's rows to a new Matrix in O(1) and leaves m empty.
func (m *Matrix[T]) Move() *Matrix[T] {
	return &Matrix[T]{rows: m.rows.Move()}
}

// Assign replaces m with a deep copy of src, adopting src's order.
// Assigning a matrix to itself is a no-op.
// Returns ErrNilSource when src is nil; m is unchanged in that case.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxAssign, ErrNilSource)
	}
	m.rows.Assign(&src.rows, cloneRow[T])

	return nil
}

// MoveFrom replaces m with src's rows and leaves src empty.
// A self-move is a no-op.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(ctxMoveFrom, ErrNilSource)
	}
	m.rows.MoveFrom(&src.rows)

	return nil
}

// Swap exchanges the contents of m and other in O(1).
// Swapping with nil is a no-op.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	if m == nil || other == nil {
		return
	}
	m.rows.Swap(&other.rows)
}

// Swap exchanges the contents of a and b in O(1). A nil side makes it a no-op.
func Swap[T vector.Number](a, b *Matrix[T]) {
	a.Swap(b)
}

// Equal reports whether other has the same order and every row is equal.
// A nil other is never equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if other == nil {
		return false
	}

	return m.rows.Equal(&other.rows, func(a, b *vector.Vector[T]) bool { return a.Equal(b) })
}

// NotEqual is !Equal.
func (m *Matrix[T]) NotEqual(other *Matrix[T]) bool {
	return !m.Equal(other)
}
