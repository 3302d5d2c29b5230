// SPDX-License-Identifier: MIT

// Package vector - fixed-length numeric vector with value semantics.
//
// Purpose:
//   - Own a contiguous run of Size() elements of a numeric type T.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make copies explicit: Clone duplicates, Move transfers, Assign replaces.
//   - Keep every arithmetic operation non-mutating (a fresh *Vector is returned).
//
// Complexity quicksheet:
//   - New/FromValues/Clone/Assign: O(n); Move/MoveFrom/Swap/At/Set/Size: O(1).
package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tmatrix/internal/seq"
)

// MaxSize is the largest length a Vector can be created with.
const MaxSize = seq.MaxVectorSize

// Number is the set of element types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Vector is a fixed-length sequence of T.
//   - The length is set at construction and only changes through Assign,
//     MoveFrom or Swap, which replace the whole state at once.
//   - A moved-from Vector has Size()==0: every index is out of range and it
//     may be reassigned.
//
// A Vector is not safe for concurrent use; share it across goroutines only
// with external synchronization.
type Vector[T Number] struct {
	s seq.Seq[T]
}

// New creates a vector of n zero values.
//
// Errors:
//   - ErrInvalidSize when n <= 0 or n > MaxSize.
//
// Complexity: O(n) time and memory.
func New[T Number](n int) (*Vector[T], error) {
	s, err := seq.New[T](n, MaxSize)
	if err != nil {
		return nil, indexErrorf(ctxNew, n, err)
	}

	return &Vector[T]{s: s}, nil
}

// FromValues creates a vector of length n holding a copy of values[:n].
//
// Errors:
//   - ErrNilSource when values is nil.
//   - ErrInvalidSize when n <= 0 or n > MaxSize.
//   - ErrSizeMismatch when len(values) < n.
func FromValues[T Number](values []T, n int) (*Vector[T], error) {
	s, err := seq.From(values, n, MaxSize)
	if err != nil {
		return nil, indexErrorf(ctxFrom, n, err)
	}

	return &Vector[T]{s: s}, nil
}

// Of is FromValues(values, len(values)).
// Returns ErrInvalidSize when called without values.
func Of[T Number](values ...T) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, indexErrorf(ctxFrom, 0, ErrInvalidSize)
	}

	return FromValues(values, len(values))
}

// Size returns the number of elements (0 once moved from).
func (v *Vector[T]) Size() int {
	return v.s.Len()
}

// At returns the element at i.
// Returns ErrIndexOutOfRange unless 0 <= i < Size().
func (v *Vector[T]) At(i int) (T, error) {
	x, err := v.s.Get(i)
	if err != nil {
		return x, indexErrorf(ctxAt, i, err)
	}

	return x, nil
}

// Set stores x at i.
// Returns ErrIndexOutOfRange unless 0 <= i < Size().
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.s.Set(i, x); err != nil {
		return indexErrorf(ctxSet, i, err)
	}

	return nil
}

// Values returns a copy of the elements as a slice.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.s.Len())
	copy(out, v.s.Raw())

	return out
}

// Clone returns a deep copy that shares no storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{s: v.s.Clone(nil)}
}

// Move transfers v's storage to a new Vector in O(1) and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	return &Vector[T]{s: v.s.Move()}
}

// Assign replaces v with a deep copy of src, adopting src's length.
// Assigning a vector to itself is a no-op.
// Returns ErrNilSource when src is nil; v is unchanged in that case.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxAssign, ErrNilSource)
	}
	v.s.Assign(&src.s, nil)

	return nil
}

// MoveFrom replaces v with src's storage and leaves src empty.
// A self-move is a no-op.
// Returns ErrNilSource when src is nil.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(ctxMoveFrom, ErrNilSource)
	}
	v.s.MoveFrom(&src.s)

	return nil
}

// Swap exchanges the contents of v and other without copying elements.
// Swapping with nil is a no-op.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == nil || other == nil {
		return
	}
	v.s.Swap(&other.s)
}

// Swap exchanges the contents of a and b in O(1). A nil side makes it a no-op.
func Swap[T Number](a, b *Vector[T]) {
	a.Swap(b)
}

// Equal reports whether other has the same length and equal elements.
// A nil other is never equal. NaN elements compare unequal, as with ==.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil {
		return false
	}

	return v.s.Equal(&other.s, func(a, b T) bool { return a == b })
}

// NotEqual is !Equal.
func (v *Vector[T]) NotEqual(other *Vector[T]) bool {
	return !v.Equal(other)
}
