// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels and statistics.
//   - Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wcorr/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Notes:
//   - Prefer for small exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: want %d values", r*c)
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense RETURNS an r×c *Dense filled with deterministic U(-1,1) values.
// Determinism: fixed seed ⇒ identical matrix across runs.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	d := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m equals want cell by cell (==, NaN matches NaN).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols at row %d", i)
		for j, w := range want[i] {
			got := MustAt(t, m, i, j)
			if math.IsNaN(w) {
				require.True(t, math.IsNaN(got), "(%d,%d): want NaN, got %v", i, j, got)
				continue
			}
			require.Equal(t, w, got, "(%d,%d)", i, j)
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol) holds.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// sliceClose asserts element-wise closeness of two vectors (NaN matches NaN).
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			require.True(t, math.IsNaN(a[i]) && math.IsNaN(b[i]), "idx %d: %v vs %v", i, a[i], b[i])
			continue
		}
		require.LessOrEqual(t, math.Abs(a[i]-b[i]), atol+rtol*math.Abs(b[i]), "idx %d: %v vs %v", i, a[i], b[i])
	}
}

// onesVec returns a length-n vector of ones.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// uniformVec returns the probability vector 1/n repeated n times.
func uniformVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 / float64(n)
	}

	return v
}
