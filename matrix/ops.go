// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-scalar, matrix-vector and matrix-matrix arithmetic.
//   - Add/Sub/MulScalar delegate to the row-level vector kernels, so the
//     elementwise semantics are defined in exactly one place.
//   - MulVector and Mul check dimensions explicitly and return
//     ErrSizeMismatch instead of reading past a shorter operand.
//
// Determinism:
//   - Fixed i→j→k loop orders; accumulation order is k ascending.

package matrix

import (
	"github.com/katalvlaran/tmatrix/internal/seq"
	"github.com/katalvlaran/tmatrix/vector"
)

// mapRows builds a matrix whose row i is f(i). Every f result must have
// length n; the callers below guarantee it.
func mapRows[T vector.Number](n int, f func(i int) (*vector.Vector[T], error)) (*Matrix[T], error) {
	rows, err := seq.New[*vector.Vector[T]](n, MaxSize)
	if err != nil {
		return nil, err
	}
	raw := rows.Raw()
	for i := range raw {
		if raw[i], err = f(i); err != nil {
			return nil, err
		}
	}

	return &Matrix[T]{rows: rows}, nil
}

// zipRows builds out.row[i] = f(m.row[i], o.row[i]) after shape checks.
func (m *Matrix[T]) zipRows(method string, o *Matrix[T],
	f func(a, b *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if err := ValidateSameOrder(m, o); err != nil {
		return nil, matrixErrorf(method, err)
	}
	a, b := m.rows.Raw(), o.rows.Raw()
	out, err := mapRows(m.Order(), func(i int) (*vector.Vector[T], error) {
		return f(a[i], b[i])
	})
	if err != nil {
		return nil, matrixErrorf(method, err)
	}

	return out, nil
}

// Add returns the cellwise sum m + o.
// Returns ErrSizeMismatch when the orders differ, ErrNilSource for nil o.
// Complexity: O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns the cellwise difference m - o.
// Returns ErrSizeMismatch when the orders differ, ErrNilSource for nil o.
// Complexity: O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.zipRows(ctxSub, o, (*vector.Vector[T]).Sub)
}

// MulScalar returns m with every cell multiplied by s.
// A moved-from matrix yields a moved-from (order 0) result.
// Returns ErrSizeMismatch when a row was resized through Row.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(s T) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(ctxMulScalar, err)
	}

	return &Matrix[T]{rows: m.rows.Clone(func(r *vector.Vector[T]) *vector.Vector[T] {
		return r.MulScalar(s)
	})}, nil
}

// MulVector returns the matrix-vector product: out[i] = Σ_j m[i][j] * v[j].
//
// Errors:
//   - ErrNilSource when v is nil.
//   - ErrSizeMismatch when v.Size() != Order() or m is not square.
//
// Complexity: O(n²).
func (m *Matrix[T]) MulVector(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(v, m.Order()); err != nil {
		return nil, matrixErrorf(ctxMulVector, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(ctxMulVector, err)
	}

	x := v.Values()
	out := make([]T, len(x))
	for i, r := range m.rows.Raw() {
		row := r.Values()
		var acc T
		for j := range row {
			acc += row[j] * x[j]
		}
		out[i] = acc
	}

	res, err := vector.FromValues(out, len(out))
	if err != nil {
		return nil, matrixErrorf(ctxMulVector, err)
	}

	return res, nil
}

// Mul returns the matrix product: out[i][j] = Σ_k m[i][k] * o[k][j].
// Returns ErrSizeMismatch when the orders differ, ErrNilSource for nil o.
// Complexity: O(n³).
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameOrder(m, o); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}

	a, b := m.Values(), o.Values()
	n := len(a)
	out := make([][]T, n)
	for i := 0; i < n; i++ {
		out[i] = make([]T, n)
		for j := 0; j < n; j++ {
			var acc T
			for k := 0; k < n; k++ {
				acc += a[i][k] * b[k][j]
			}
			out[i][j] = acc
		}
	}

	res, err := fromValues(out)
	if err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}

	return res, nil
}
