// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/katalvlaran/tmatrix/vector"
)

// MustFromRows builds a matrix from a square literal or fails the test.
func MustFromRows[T vector.Number](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustVector builds a vector from values or fails the test.
func MustVector[T vector.Number](tb testing.TB, values ...T) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.Of(values...)
	if err != nil {
		tb.Fatalf("vector.Of: %v", err)
	}

	return v
}

// Identity returns the n×n identity matrix or fails the test.
func Identity(tb testing.TB, n int) *matrix.Matrix[float64] {
	tb.Helper()
	m, err := matrix.Identity[float64](n)
	if err != nil {
		tb.Fatalf("Identity: %v", err)
	}

	return m
}

// RandMatrix fills an n×n matrix from a seeded source (deterministic).
func RandMatrix(tb testing.TB, n int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustFromRows(tb, rows)
}
