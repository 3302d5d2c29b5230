// SPDX-License-Identifier: MIT
// Package seq: sentinel error set and size limits shared by vector and matrix.
//
// Validators in this package return the plain sentinels; the public packages
// wrap them with method context at the call site and re-export them, so
// callers match with errors.Is against vector.ErrX or matrix.ErrX alike.

package seq

import "errors"

// Size limits (single source of truth).
const (
	// MaxVectorSize is the largest length a Vector may be created with.
	MaxVectorSize = 100_000_000

	// MaxMatrixSize is the largest order a Matrix may be created with.
	MaxMatrixSize = 10_000
)

var (
	// ErrInvalidSize is returned when a requested length/order is zero,
	// negative, or above the container's limit.
	ErrInvalidSize = errors.New("tmatrix: invalid size")

	// ErrIndexOutOfRange indicates that an index is outside [0, length).
	ErrIndexOutOfRange = errors.New("tmatrix: index out of range")

	// ErrSizeMismatch indicates incompatible operand lengths/orders.
	ErrSizeMismatch = errors.New("tmatrix: size mismatch")

	// ErrNilSource indicates that a nil source (slice, vector, matrix) was given.
	ErrNilSource = errors.New("tmatrix: nil source")
)

// ValidateSize reports ErrInvalidSize unless 1 <= n <= limit.
// Complexity: O(1).
func ValidateSize(n, limit int) error {
	if n <= 0 || n > limit {
		return ErrInvalidSize
	}

	return nil
}

// ValidateIndex reports ErrIndexOutOfRange unless 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}
