// SPDX-License-Identifier: MIT

// Package textio reads and writes whitespace-separated values.
//
// The format carries no header, delimiter or size prefix: the reader must
// know how many values to consume before reading. Writing is the inverse,
// so ReadN(WriteRow(x)) returns x for every value fmt can scan back.
//
// Sequential reads from one stream should go through an io.RuneScanner
// (e.g. *bufio.Reader); fmt.Fscan may otherwise consume one rune past
// each value.
package textio

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrShortInput indicates the stream ended before all values were read.
	ErrShortInput = errors.New("textio: short input")

	// ErrMalformed indicates a token that could not be parsed as the target type.
	ErrMalformed = errors.New("textio: malformed value")

	// ErrBadCount indicates a negative value count.
	ErrBadCount = errors.New("textio: negative count")
)

// ReadN scans exactly n values from r in order.
// On failure nothing is returned, so callers can commit atomically.
// Complexity: O(n).
func ReadN[T any](r io.Reader, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	out := make([]T, n)
	for i := range out {
		if _, err := fmt.Fscan(r, &out[i]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("value %d of %d: %w", i, n, ErrShortInput)
			}
			return nil, fmt.Errorf("value %d of %d: %w: %v", i, n, ErrMalformed, err)
		}
	}

	return out, nil
}

// WriteRow renders values joined by the separator and followed by the
// terminator, then writes the row to w in one call.
// Complexity: O(len(values)).
func WriteRow[T any](w io.Writer, values []T, opts ...Option) error {
	o := Gather(opts...)

	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(o.sep)
		}
		fmt.Fprintf(&b, o.verb, v)
	}
	b.WriteString(o.term)

	_, err := io.WriteString(w, b.String())

	return err
}
