// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every public operation returns one of these sentinels wrapped with method
// context ("Vector.<method>: ..."); callers match with errors.Is. The values
// are shared with the matrix package, so errors.Is(err, vector.ErrSizeMismatch)
// and errors.Is(err, matrix.ErrSizeMismatch) are interchangeable.

package vector

import (
	"fmt"

	"github.com/katalvlaran/tmatrix/internal/seq"
)

var (
	// ErrInvalidSize is returned when a requested length is <= 0 or above MaxSize.
	ErrInvalidSize = seq.ErrInvalidSize

	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	// At and Set MUST return this, not panic.
	ErrIndexOutOfRange = seq.ErrIndexOutOfRange

	// ErrSizeMismatch indicates operands of different length (Add/Sub/Mul),
	// or a source slice shorter than the requested length.
	ErrSizeMismatch = seq.ErrSizeMismatch

	// ErrNilSource indicates a nil slice or vector argument.
	ErrNilSource = seq.ErrNilSource
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromValues"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
	ctxMoveFrom = "MoveFrom"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
	ctxMul      = "Mul"
	ctxDot      = "Dot"
	ctxRead     = "ReadText"
)

// vectorErrorf attaches method context to a sentinel.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// indexErrorf attaches method context and the offending index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}
