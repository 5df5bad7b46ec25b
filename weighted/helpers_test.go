// SPDX-License-Identifier: MIT
// Package weighted_test contains fixtures shared by the engine tests.

package weighted_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wcorr/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide masks the concrete *Dense type to force the At-based fallback paths.
type hide struct{ matrix.Matrix }

// mustRows builds an observation matrix or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	X, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return X
}

// randObservations returns an n×p matrix with correlated columns
// (column j mixes a shared factor with its own noise) for a fixed seed.
func randObservations(t *testing.T, n, p int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		common := rng.NormFloat64()
		rows[i] = make([]float64, p)
		for j := range rows[i] {
			rows[i][j] = float64(j+1)*0.4*common + rng.NormFloat64() + float64(j)
		}
	}

	return mustRows(t, rows)
}

// randWeights returns n positive weights in [0.1, 5.1).
func randWeights(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.1 + 5*rng.Float64()
	}

	return w
}

// toGonum copies a Dense into a gonum *mat.Dense for oracle comparisons.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	flat := make([]float64, 0, r*c)
	for _, row := range m.ToRows() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// requireClose asserts AllClose(a, b) (NaN matches NaN).
func requireClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// requireSymClose compares a Dense with a gonum symmetric matrix.
func requireSymClose(t *testing.T, want mat.Symmetric, got *matrix.Dense, atol float64) {
	t.Helper()
	n := want.SymmetricDim()
	require.Equal(t, n, got.Rows())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want.At(i, j), g, atol, "(%d,%d)", i, j)
		}
	}
}

// requireVecClose compares two vectors element-wise (NaN matches NaN).
func requireVecClose(t *testing.T, want, got []float64, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "idx %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], atol, "idx %d", i)
	}
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
