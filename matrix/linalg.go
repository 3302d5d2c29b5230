// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small structural helpers on square matrices: Identity, Transpose, Trace.
//   - Like the arithmetic kernels they never mutate the receiver and reject
//     a matrix whose rows were resized through Row with ErrSizeMismatch.

package matrix

import (
	"github.com/katalvlaran/tmatrix/internal/seq"
	"github.com/katalvlaran/tmatrix/vector"
)

// Identity returns the order×order identity matrix.
// Returns ErrInvalidSize when order <= 0 or order > MaxSize.
// Complexity: O(order²).
func Identity[T vector.Number](order int) (*Matrix[T], error) {
	m, err := New[T](order)
	if err != nil {
		return nil, orderErrorf(ctxIdentity, order, err)
	}
	for i, r := range m.rows.Raw() {
		if err = r.Set(i, 1); err != nil {
			return nil, orderErrorf(ctxIdentity, order, err)
		}
	}

	return m, nil
}

// Transpose returns a new matrix with out[j][i] = m[i][j].
// A moved-from matrix yields ErrInvalidSize.
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(ctxTranspose, err)
	}
	src := m.Values()
	n := len(src)
	out := make([][]T, n)
	for j := range out {
		out[j] = make([]T, n)
		for i := 0; i < n; i++ {
			out[j][i] = src[i][j]
		}
	}

	res, err := fromValues(out)
	if err != nil {
		return nil, matrixErrorf(ctxTranspose, err)
	}

	return res, nil
}

// Trace returns the sum of the main diagonal, accumulated from row 0 down.
// A moved-from matrix yields ErrInvalidSize.
// Complexity: O(n).
func (m *Matrix[T]) Trace() (T, error) {
	var acc T
	if err := seq.ValidateSize(m.Order(), MaxSize); err != nil {
		return acc, matrixErrorf(ctxTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return acc, matrixErrorf(ctxTrace, err)
	}
	for i, r := range m.rows.Raw() {
		x, err := r.At(i)
		if err != nil {
			return acc, cellErrorf(ctxTrace, i, i, err)
		}
		acc += x
	}

	return acc, nil
}
