// Package vector_test provides benchmarks for elementwise vector operations,
// using deterministic random fill.
package vector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tmatrix/vector"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sink to defeat dead-code elimination
var sinkV *vector.Vector[float64]

func randVector(b *testing.B, n int, seed int64) *vector.Vector[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	v, err := vector.FromValues(vals, n)
	if err != nil {
		b.Fatal(err)
	}

	return v
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVector(b, n, 1337)
			y := randVector(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkMulScalar(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randVector(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = x.MulScalar(1.5)
			}
		})
	}
}
