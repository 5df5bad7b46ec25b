// Package matrix_test provides benchmarks for the kernels on the weighted
// correlation hot path, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wcorr/matrix"
)

// benchShapes are (nobs, nvar) pairs: tall observation matrices.
var benchShapes = [][2]int{{256, 8}, {1024, 32}, {4096, 64}}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	if err := d.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkVecMat(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := mustDense(b, s[0], s[1])
			fillDenseRand(b, X, 7)
			w := uniformVec(s[0])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.VecMat(w, X)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkWeightedScatter(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := mustDense(b, s[0], s[1])
			fillDenseRand(b, X, 99)
			w := uniformVec(s[0])
			Xc, _, err := matrix.WeightedCenterColumns(X, w)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				S, err := matrix.WeightedScatter(Xc, w)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = S
			}
		})
	}
}
