// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (shared with package vector).
// All operations MUST return these sentinels (wrapped with "Matrix.<method>"
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tmatrix/vector"
)

// NOTE ON SHARING
// ---------------
// The sentinels are the very same values as vector.ErrX, so a row error
// surfacing through a matrix call still matches matrix.ErrIndexOutOfRange.

var (
	// ErrInvalidSize is returned when a requested order is <= 0 or above MaxSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, Order()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates incompatible orders (Add/Sub/Mul), a vector
	// whose length differs from the order (MulVector), or a jagged/non-square
	// literal (FromRows).
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilSource indicates that a nil matrix, vector or row literal was given.
	ErrNilSource = vector.ErrNilSource
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromRows  = "FromRows"
	ctxClone     = "Clone"
	ctxRow       = "Row"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAssign    = "Assign"
	ctxMoveFrom  = "MoveFrom"
	ctxAdd       = "Add"
	ctxSub       = "Sub"
	ctxMul       = "Mul"
	ctxMulScalar = "MulScalar"
	ctxMulVector = "MulVector"
	ctxIdentity  = "Identity"
	ctxTrace     = "Trace"
	ctxTranspose = "Transpose"
	ctxRead      = "ReadText"
	ctxWrite     = "WriteText"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// orderErrorf wraps an error with Matrix method context and the order involved.
func orderErrorf(method string, order int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, order, err)
}

// cellErrorf wraps an error with Matrix method context and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
