// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep the arithmetic kernels minimal by delegating nil/shape checks here.
//  - Return plain sentinel errors (no method context) so call sites can wrap
//    uniformly with matrixErrorf.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Square → SameOrder.

package matrix

import (
	"github.com/katalvlaran/tmatrix/vector"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T vector.Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilSource
	}

	return nil
}

// ValidateSquare ensures every row still has length Order(). Rows obtained
// through Row can be resized by the caller; this guard catches it before a
// kernel indexes past a short row.
// Complexity: O(n).
func ValidateSquare[T vector.Number](m *Matrix[T]) error {
	n := m.Order()
	for _, r := range m.rows.Raw() {
		if r == nil || r.Size() != n {
			return ErrSizeMismatch
		}
	}

	return nil
}

// ValidateSameOrder ensures a and b are both non-nil, square and of equal order.
// Complexity: O(n).
func ValidateSameOrder[T vector.Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}
	if a.Order() != b.Order() {
		return ErrSizeMismatch
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and its length equals n.
// Complexity: O(1).
func ValidateVecLen[T vector.Number](v *vector.Vector[T], n int) error {
	if v == nil {
		return ErrNilSource
	}
	if v.Size() != n {
		return ErrSizeMismatch
	}

	return nil
}
