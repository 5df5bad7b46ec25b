// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) shared by
//     the public facades in api.go and the weighted statistics in impl_statistics.go.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.
//   - Keep broadcast vectors (means, weights, 1/std) precomputed and reused across calls.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBroadcastSubCols = "BroadcastSubCols"
	opScaleRows        = "ScaleRows"
	opScaleCols        = "ScaleCols"
	opSqrt             = "Sqrt"
	opAllClose         = "AllClose"
)

// axisRows / axisCols select which index of (i,j) picks the broadcast factor.
const (
	axisRows = iota
	axisCols
)

// ewBroadcast computes out[i,j] = f(X[i,j], vec[k]) where k = i (axisRows) or j (axisCols).
// Validation: X non-nil; len(vec) equals the broadcast dimension.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcast(X Matrix, vec []float64, axis int, opTag string, f func(v, s float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	r, c := X.Rows(), X.Cols()
	want := c
	if axis == axisRows {
		want = r
	}
	if err := ValidateVecLen(vec, want); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var i, j, base int
	var s float64
	// Dense fast-path: one read, one write per element.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			if axis == axisRows {
				s = vec[i] // row factor read once per row
				for j = 0; j < c; j++ {
					out.data[base+j] = f(d.data[base+j], s)
				}
				continue
			}
			for j = 0; j < c; j++ {
				out.data[base+j] = f(d.data[base+j], vec[j])
			}
		}
		return out, nil
	}

	// Generic fallback via At.
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if axis == axisRows {
				s = vec[i]
			} else {
				s = vec[j]
			}
			out.data[base+j] = f(v, s)
		}
	}

	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// AI-Hint: column-centering against a plain or weighted mean.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	return ewBroadcast(X, colMeans, axisCols, opBroadcastSubCols, func(v, m float64) float64 { return v - m })
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// AI-Hint: with scale = w this is diag(w)·X without materializing diag(w).
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcast(X, scale, axisRows, opScaleRows, func(v, s float64) float64 { return v * s })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// AI-Hint: with scale = σ this is X·diag(σ).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcast(X, scale, axisCols, opScaleCols, func(v, s float64) float64 { return v * s })
}

// ewSqrt computes out[i,j] = sqrt(X[i,j]). Negative entries yield NaN (IEEE-754).
// Time: O(r*c). Space: O(r*c).
func ewSqrt(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = math.Sqrt(v)
		}
		return out, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, atErrorf(opSqrt, i, j, err)
			}
			out.data[i*c+j] = math.Sqrt(v)
		}
	}

	return out, nil
}

// closeEnough reports |a-b| ≤ atol + rtol*|b|. Two NaNs compare equal;
// a NaN against a number never does. Only equal infinities are close.
func closeEnough(a, b, rtol, atol float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if a == b {
		return true // covers ±Inf == ±Inf
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise closeness for identical shapes.
// Returns (true,nil) if all elements satisfy closeEnough; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
