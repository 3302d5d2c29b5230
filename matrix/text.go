// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tmatrix/textio"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// rowTerminator is written after every row unless overridden.
const rowTerminator = "\n"

// ReadText consumes Order()×Order() whitespace-separated values in row-major
// order. The matrix is updated only after every value was read.
func (m *Matrix[T]) ReadText(r io.Reader) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(ctxRead, err)
	}
	n := m.Order()
	vals, err := textio.ReadN[T](r, n*n)
	if err != nil {
		return matrixErrorf(ctxRead, err)
	}
	for i, row := range m.rows.Raw() {
		for j := 0; j < n; j++ {
			if err = row.Set(j, vals[i*n+j]); err != nil {
				return matrixErrorf(ctxRead, err)
			}
		}
	}

	return nil
}

// WriteText writes one line per row: cells separated by a space and each
// row followed by "\n". Options override the separator, terminator or verb.
func (m *Matrix[T]) WriteText(w io.Writer, opts ...textio.Option) error {
	all := append([]textio.Option{textio.WithTerminator(rowTerminator)}, opts...)
	for i, row := range m.rows.Raw() {
		if err := row.WriteText(w, all...); err != nil {
			return orderErrorf(ctxWrite, i, err)
		}
	}

	return nil
}

// String renders m as WriteText does with default options.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_ = m.WriteText(&b) // strings.Builder never fails

	return b.String()
}
