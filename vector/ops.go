// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar (AddScalar/SubScalar/MulScalar) and elementwise (Add/Sub/Mul)
//     arithmetic. Every operation returns a new Vector; receivers and
//     operands are never mutated.
//   - Mul is the elementwise (Hadamard) product, not an inner product.
//
// Determinism & Performance:
//   - Fixed 0..n-1 loops over the flat backing slices, one allocation per call.

package vector

// mapScalar builds out[i] = f(v[i], x).
func (v *Vector[T]) mapScalar(x T, f func(a, b T) T) *Vector[T] {
	out := v.Clone()
	dst := out.s.Raw()
	for i := range dst {
		dst[i] = f(dst[i], x)
	}

	return out
}

// zipWith builds out[i] = f(v[i], w[i]) after checking both lengths agree.
func (v *Vector[T]) zipWith(method string, w *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if w == nil {
		return nil, vectorErrorf(method, ErrNilSource)
	}
	if v.Size() != w.Size() {
		return nil, vectorErrorf(method, ErrSizeMismatch)
	}
	out := v.Clone()
	dst, src := out.s.Raw(), w.s.Raw()
	for i := range dst {
		dst[i] = f(dst[i], src[i])
	}

	return out, nil
}

// AddScalar returns v with x added to every element.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a + b })
}

// SubScalar returns v with x subtracted from every element.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a - b })
}

// MulScalar returns v with every element multiplied by x.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a * b })
}

// Add returns the elementwise sum v + w.
// Returns ErrSizeMismatch when the lengths differ, ErrNilSource for nil w.
// Complexity: O(n).
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	return v.zipWith(ctxAdd, w, func(a, b T) T { return a + b })
}

// Sub returns the elementwise difference v - w.
// Returns ErrSizeMismatch when the lengths differ, ErrNilSource for nil w.
// Complexity: O(n).
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	return v.zipWith(ctxSub, w, func(a, b T) T { return a - b })
}

// Mul returns the elementwise (Hadamard) product: out[i] = v[i] * w[i].
// It is NOT a dot product; the result has the same length as the operands.
// Returns ErrSizeMismatch when the lengths differ, ErrNilSource for nil w.
// Complexity: O(n).
func (v *Vector[T]) Mul(w *Vector[T]) (*Vector[T], error) {
	return v.zipWith(ctxMul, w, func(a, b T) T { return a * b })
}

// Dot returns the inner product Σ v[i] * w[i], accumulated in index order.
// Returns ErrSizeMismatch when the lengths differ, ErrNilSource for nil w.
// Complexity: O(n).
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var acc T
	if w == nil {
		return acc, vectorErrorf(ctxDot, ErrNilSource)
	}
	if v.Size() != w.Size() {
		return acc, vectorErrorf(ctxDot, ErrSizeMismatch)
	}
	a, b := v.s.Raw(), w.s.Raw()
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}
