// SPDX-License-Identifier: MIT

// Package seq - owned, fixed-length storage with value semantics.
//
// Purpose:
//   - Provide the storage and lifecycle machinery (create, copy, move, assign,
//     swap, bounds-checked access) reused by both vector.Vector and matrix.Matrix.
//   - Keep element type unconstrained (T any) so a matrix can store its rows
//     in the same structure that a vector stores numbers in.
//
// Lifecycle contract:
//   - Clone  = independent duplicate (elements copied through dup when given).
//   - Move   = ownership transfer in O(1); the source is left empty (Len()==0).
//   - Assign = full replacement, a no-op under self-assignment.
//   - Swap   = O(1) exchange of internal state.
//
// Complexity quicksheet:
//   - New/From/Clone/Assign: O(n); Move/MoveFrom/Swap/Get/Set/Len: O(1).
package seq

// Seq owns a contiguous run of exactly Len() elements.
// The zero value is an empty, moved-from sequence.
type Seq[T any] struct {
	data []T // len(data) is the sequence length; nil after a move
}

// New allocates n zero-valued elements.
// Returns ErrInvalidSize unless 1 <= n <= limit.
// Complexity: O(n) time and memory.
func New[T any](n, limit int) (Seq[T], error) {
	if err := ValidateSize(n, limit); err != nil {
		return Seq[T]{}, err
	}

	return Seq[T]{data: make([]T, n)}, nil
}

// From copies the first n values into a new sequence.
//
// Errors:
//   - ErrNilSource when values is nil.
//   - ErrInvalidSize unless 1 <= n <= limit.
//   - ErrSizeMismatch when values holds fewer than n elements.
//
// Complexity: O(n).
func From[T any](values []T, n, limit int) (Seq[T], error) {
	if values == nil {
		return Seq[T]{}, ErrNilSource
	}
	if err := ValidateSize(n, limit); err != nil {
		return Seq[T]{}, err
	}
	if len(values) < n {
		return Seq[T]{}, ErrSizeMismatch
	}

	buf := make([]T, n)
	copy(buf, values[:n])

	return Seq[T]{data: buf}, nil
}

// Len returns the number of live elements (0 once moved from).
func (s *Seq[T]) Len() int {
	return len(s.data)
}

// Get returns the element at i or ErrIndexOutOfRange.
func (s *Seq[T]) Get(i int) (T, error) {
	if err := ValidateIndex(i, len(s.data)); err != nil {
		var zero T
		return zero, err
	}

	return s.data[i], nil
}

// Set stores v at i or returns ErrIndexOutOfRange.
func (s *Seq[T]) Set(i int, v T) error {
	if err := ValidateIndex(i, len(s.data)); err != nil {
		return err
	}
	s.data[i] = v

	return nil
}

// Raw exposes the backing slice to kernels that already validated shape.
// Callers must not retain it beyond the operation or change its length.
func (s *Seq[T]) Raw() []T {
	return s.data
}

// Clone returns an independent copy. When dup is non-nil every element is
// passed through it (deep copy of nested owners); otherwise elements are
// copied by value.
// Complexity: O(n) plus the cost of dup.
func (s *Seq[T]) Clone(dup func(T) T) Seq[T] {
	if s.data == nil {
		return Seq[T]{}
	}
	buf := make([]T, len(s.data))
	if dup == nil {
		copy(buf, s.data)
	} else {
		for i, v := range s.data {
			buf[i] = dup(v)
		}
	}

	return Seq[T]{data: buf}
}

// Move transfers ownership of the storage to the returned sequence and leaves
// s empty.
// Complexity: O(1).
func (s *Seq[T]) Move() Seq[T] {
	out := Seq[T]{data: s.data}
	s.data = nil

	return out
}

// Assign replaces s with a copy of src (see Clone for dup). Assigning a
// sequence to itself leaves it untouched.
// Complexity: O(n).
func (s *Seq[T]) Assign(src *Seq[T], dup func(T) T) {
	if s == src {
		return
	}
	*s = src.Clone(dup)
}

// MoveFrom replaces s with the storage of src and leaves src empty.
// A self-move is a no-op.
// Complexity: O(1).
func (s *Seq[T]) MoveFrom(src *Seq[T]) {
	if s == src {
		return
	}
	s.data = src.data
	src.data = nil
}

// Swap exchanges the internal state of s and o without copying elements.
// Complexity: O(1).
func (s *Seq[T]) Swap(o *Seq[T]) {
	s.data, o.data = o.data, s.data
}

// Equal reports whether both sequences have the same length and eq holds for
// every pair of corresponding elements.
// Complexity: O(n) calls to eq.
func (s *Seq[T]) Equal(o *Seq[T], eq func(a, b T) bool) bool {
	if len(s.data) != len(o.data) {
		return false
	}
	for i := range s.data {
		if !eq(s.data[i], o.data[i]) {
			return false
		}
	}

	return true
}
