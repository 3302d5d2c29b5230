// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[int](3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Values())

	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	prod, err := m.Mul(id)
	require.NoError(t, err)
	assert.True(t, prod.Equal(m))

	_, err = matrix.Identity[int](0)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
}

func TestTranspose(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3}, {2, 4}}, tr.Values())
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Values())

	back, err := tr.Transpose()
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	_ = m.Move()
	_, err = m.Transpose()
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
}

func TestTrace(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1.5, 9}, {9, 2.5}})
	got, err := m.Trace()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-12)

	// resizing a live row breaks the square shape
	row, err := m.Row(0)
	require.NoError(t, err)
	require.NoError(t, row.MoveFrom(MustVector(t, 1.0)))
	_, err = m.Trace()
	assert.ErrorIs(t, err, matrix.ErrSizeMismatch)

	_, err = m.Transpose()
	assert.ErrorIs(t, err, matrix.ErrSizeMismatch)
}
