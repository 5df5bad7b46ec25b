// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the weighted moment transforms (column means, centering, scatter,
//     scatter→correlation) as deterministic compositions over canonical kernels
//     (VecMat/Mul/Transpose/Outer/Sqrt/Div) and ew* micro-kernels.
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API (see api.go):
//   - WeightedColumnMeans(X, w)   -> means             // wᵀX
//   - WeightedCenterColumns(X, w) -> (Xc, means)       // X − broadcast(wᵀX)
//   - WeightedScatter(Xc, w)      -> S                 // Xcᵀ·diag(w)·Xc
//   - ScatterToCorrelation(S)     -> R                 // S ⊘ sqrt(v vᵀ), v = diag(S)
//   - CenterColumns(X)            -> (Xc, means)       // uniform weights 1/r
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.
//
// Numeric policy:
//   - Weights are used exactly as given. For a weighted mean they must sum to 1;
//     normalization is the caller's responsibility.
//   - A zero diagonal entry in S makes the matching row/column of R NaN (0/0).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opWeightedColumnMeans   = "WeightedColumnMeans"
	opWeightedCenterColumns = "WeightedCenterColumns"
	opWeightedScatter       = "WeightedScatter"
	opScatterToCorrelation  = "ScatterToCorrelation"
	opCenterColumns         = "CenterColumns"
)

// weightedColumnMeans returns m[j] = Σ_i w[i]·X[i,j].
// Validation: X non-nil; len(w) == Rows(X) (delegated to VecMat).
// Complexity: Time O(r*c), Space O(c).
func weightedColumnMeans(X Matrix, w []float64) ([]float64, error) {
	means, err := VecMat(w, X)
	if err != nil {
		return nil, matrixErrorf(opWeightedColumnMeans, err)
	}

	return means, nil
}

// weightedCenterColumns subtracts the weighted column mean from every element.
// Implementation:
//   - Stage 1: means = wᵀX (VecMat; validates X and len(w)).
//   - Stage 2: Xc = ewBroadcastSubCols(X, means).
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: weighted column means (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with the op tag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func weightedCenterColumns(X Matrix, w []float64) (*Dense, []float64, error) {
	means, err := weightedColumnMeans(X, w)
	if err != nil {
		return nil, nil, matrixErrorf(opWeightedCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opWeightedCenterColumns, err)
	}

	return Xc, means, nil
}

// weightedScatter computes S = Xcᵀ · diag(w) · Xc (c×c).
// MAIN DESCRIPTION:
//   - With Xc centered by the same probability vector w, S is the
//     weighted covariance normalized by Σw = 1 (no Bessel correction).
//
// Implementation:
//   - Stage 1: WX = ewScaleRows(Xc, w) (diag(w)·Xc without materializing diag(w)).
//   - Stage 2: S = Mul(Transpose(Xc), WX).
//
// Behavior highlights:
//   - S is symmetric only up to rounding; callers needing exact symmetry use Symmetrize.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func weightedScatter(Xc Matrix, w []float64) (*Dense, error) {
	WX, err := ewScaleRows(Xc, w)
	if err != nil {
		return nil, matrixErrorf(opWeightedScatter, err)
	}
	XcT, err := Transpose(Xc)
	if err != nil {
		return nil, matrixErrorf(opWeightedScatter, err)
	}
	S, err := Mul(XcT, WX)
	if err != nil {
		return nil, matrixErrorf(opWeightedScatter, err)
	}

	return S.(*Dense), nil
}

// scatterToCorrelation normalizes a square scatter/covariance matrix into correlations:
//
//	R[i,j] = S[i,j] / sqrt(S[i,i]·S[j,j]).
//
// Implementation:
//   - Stage 1: validate square; v = diag(S).
//   - Stage 2: D = Sqrt(Outer(v, v)); R = Div(S, D).
//
// Behavior highlights:
//   - Zero-variance variables produce NaN (0/0) in their row and column; not masked.
//   - Negative diagonal entries produce NaN through Sqrt.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(c^2), Space O(c^2).
func scatterToCorrelation(S Matrix) (*Dense, error) {
	v, err := Diag(S)
	if err != nil {
		return nil, matrixErrorf(opScatterToCorrelation, err)
	}
	vv, err := Outer(v, v)
	if err != nil {
		return nil, matrixErrorf(opScatterToCorrelation, err)
	}
	D, err := ewSqrt(vv)
	if err != nil {
		return nil, matrixErrorf(opScatterToCorrelation, err)
	}
	R, err := Div(S, D)
	if err != nil {
		return nil, matrixErrorf(opScatterToCorrelation, err)
	}

	return R.(*Dense), nil
}

// centerColumns subtracts the plain column mean; it is weightedCenterColumns
// with the uniform probability vector w[i] = 1/r.
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r := X.Rows()
	if r <= 0 {
		return nil, nil, matrixErrorf(opCenterColumns, fmt.Errorf("rows=%d: %w", r, ErrInvalidDimensions))
	}
	w := make([]float64, r)
	inv := 1.0 / float64(r)
	for i := range w {
		w[i] = inv
	}
	Xc, means, err := weightedCenterColumns(X, w)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}
