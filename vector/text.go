// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tmatrix/textio"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// ReadText consumes exactly Size() whitespace-separated values from r in
// index order. The vector is only updated once every value was read, so a
// failed read leaves it unchanged.
func (v *Vector[T]) ReadText(r io.Reader) error {
	vals, err := textio.ReadN[T](r, v.Size())
	if err != nil {
		return vectorErrorf(ctxRead, err)
	}
	copy(v.s.Raw(), vals)

	return nil
}

// WriteText writes the elements separated by a single space (by default)
// with no trailing separator or newline.
func (v *Vector[T]) WriteText(w io.Writer, opts ...textio.Option) error {
	return textio.WriteRow(w, v.s.Raw(), opts...)
}

// String renders v as WriteText does with default options.
func (v *Vector[T]) String() string {
	var b strings.Builder
	_ = v.WriteText(&b) // strings.Builder never fails

	return b.String()
}
