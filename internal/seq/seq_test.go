// SPDX-License-Identifier: MIT

package seq_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/internal/seq"
	"github.com/stretchr/testify/require"
)

func TestNew_Bounds(t *testing.T) {
	_, err := seq.New[int](0, 10)
	require.ErrorIs(t, err, seq.ErrInvalidSize)

	_, err = seq.New[int](-3, 10)
	require.ErrorIs(t, err, seq.ErrInvalidSize)

	_, err = seq.New[int](11, 10)
	require.ErrorIs(t, err, seq.ErrInvalidSize)

	s, err := seq.New[int](10, 10)
	require.NoError(t, err)
	require.Equal(t, 10, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Zero(t, v)
	}
}

func TestFrom(t *testing.T) {
	_, err := seq.From[int](nil, 1, 10)
	require.ErrorIs(t, err, seq.ErrNilSource)

	_, err = seq.From([]int{1, 2}, 3, 10)
	require.ErrorIs(t, err, seq.ErrSizeMismatch)

	_, err = seq.From([]int{1, 2}, 0, 10)
	require.ErrorIs(t, err, seq.ErrInvalidSize)

	src := []int{1, 2, 3, 4}
	s, err := seq.From(src, 3, 10)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, s.Raw())

	src[0] = 100 // the sequence owns its copy
	v, _ := s.Get(0)
	require.Equal(t, 1, v)
}

func TestGetSet_OutOfRange(t *testing.T) {
	s, err := seq.New[int](3, 10)
	require.NoError(t, err)

	for _, i := range []int{-1, 3, 100} {
		_, err = s.Get(i)
		require.ErrorIs(t, err, seq.ErrIndexOutOfRange, "Get(%d)", i)
		require.ErrorIs(t, s.Set(i, 1), seq.ErrIndexOutOfRange, "Set(%d)", i)
	}
}

func TestClone_WithAndWithoutDup(t *testing.T) {
	s, _ := seq.From([]int{1, 2, 3}, 3, 10)

	c := s.Clone(nil)
	require.NoError(t, c.Set(0, 9))
	v, _ := s.Get(0)
	require.Equal(t, 1, v)

	calls := 0
	d := s.Clone(func(x int) int { calls++; return x * 10 })
	require.Equal(t, 3, calls)
	require.Equal(t, []int{10, 20, 30}, d.Raw())

	var empty seq.Seq[int]
	e := empty.Clone(nil)
	require.Equal(t, 0, e.Len())
}

func TestMoveAndMoveFrom(t *testing.T) {
	s, _ := seq.From([]int{1, 2, 3}, 3, 10)

	m := s.Move()
	require.Equal(t, 0, s.Len())
	require.Equal(t, 3, m.Len())
	_, err := s.Get(0)
	require.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	var dst seq.Seq[int]
	dst.MoveFrom(&m)
	require.Equal(t, 0, m.Len())
	require.Equal(t, []int{1, 2, 3}, dst.Raw())

	dst.MoveFrom(&dst)
	require.Equal(t, 3, dst.Len())
}

func TestAssign_SelfAndResize(t *testing.T) {
	a, _ := seq.From([]int{1, 2, 3}, 3, 10)
	a.Assign(&a, nil)
	require.Equal(t, []int{1, 2, 3}, a.Raw())

	b, _ := seq.New[int](7, 10)
	a.Assign(&b, nil)
	require.Equal(t, 7, a.Len())
	require.NoError(t, a.Set(0, 5))
	v, _ := b.Get(0)
	require.Zero(t, v)
}

func TestSwapAndEqual(t *testing.T) {
	a, _ := seq.From([]int{1, 2}, 2, 10)
	b, _ := seq.From([]int{3, 4, 5}, 3, 10)
	eq := func(x, y int) bool { return x == y }

	a.Swap(&b)
	require.Equal(t, []int{3, 4, 5}, a.Raw())
	require.Equal(t, []int{1, 2}, b.Raw())

	c := a.Clone(nil)
	require.True(t, a.Equal(&c, eq))
	require.False(t, a.Equal(&b, eq))
	require.NoError(t, c.Set(2, 0))
	require.False(t, a.Equal(&c, eq))
}
