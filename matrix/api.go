// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - For the weighted moment pipeline, chain WeightedCenterColumns → WeightedScatter →
//     Symmetrize → ScatterToCorrelation.

package matrix

import (
	"errors"
	"fmt"
)

const (
	opDiag        = "Diag"
	opDiagMatrix  = "DiagMatrix"
	opSymmetrize  = "Symmetrize"
	opColSums     = "ColSums"
	opIsSymmetric = "IsSymmetric"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// DiagMatrix builds the square matrix diag(v) (v on the diagonal, zeros elsewhere).
// Entries are copied verbatim, NaN/Inf included.
//
// Errors: ErrNilMatrix (nil v), ErrInvalidDimensions (empty v).
// Complexity: O(n^2).
//
// AI-Hints: diag(σ)·R·diag(σ) is cheaper as ScaleRows(ScaleCols(R, σ), σ).
func DiagMatrix(v []float64) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf(opDiagMatrix, ErrNilMatrix)
	}
	n := len(v)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagMatrix, err)
	}
	for i, x := range v {
		D.data[i*n+i] = x
	}

	return D, nil
}

// Diag returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Diag(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*n+i]
		}
		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, atErrorf(opDiag, i, i, err)
		}
	}

	return out, nil
}

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Requires a square matrix. Complexity: O(n^2).
//
// AI-Hints: repairs rounding asymmetry of Xᵀ·W·X products before normalization.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	half, err := Scale(sum, 0.5)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return half.(*Dense), nil
}

// IsSymmetric reports whether m is symmetric within the resolved epsilon
// (DefaultEpsilon unless WithEpsilon is given).
// Structural errors (nil, non-square) are returned; asymmetry is (false, nil).
func IsSymmetric(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	err := ValidateSymmetric(m, o.eps)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAsymmetry):
		return false, nil
	default:
		return false, matrixErrorf(opIsSymmetric, err)
	}
}

// ColSums returns vector c where c[j] = Σ_i m[i,j].
// Implementation: VecMat with ones(rows). Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	ones := make([]float64, m.Rows())
	for i := range ones {
		ones[i] = 1.0
	}
	sums, err := VecMat(ones, m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return sums, nil
}

// Sqrt returns the element-wise square root of m. Negative entries yield NaN.
// Complexity: O(rc).
func Sqrt(m Matrix) (*Dense, error) { return ewSqrt(m) }

// BroadcastSubCols returns out[i,j] = m[i,j] − v[j]; len(v) must equal Cols(m).
// Complexity: O(rc).
func BroadcastSubCols(m Matrix, v []float64) (*Dense, error) { return ewBroadcastSubCols(m, v) }

// ScaleRows returns diag(s)·m, i.e. out[i,j] = s[i]·m[i,j]; len(s) must equal Rows(m).
// Complexity: O(rc).
func ScaleRows(m Matrix, s []float64) (*Dense, error) { return ewScaleRows(m, s) }

// ScaleCols returns m·diag(s), i.e. out[i,j] = m[i,j]·s[j]; len(s) must equal Cols(m).
// Complexity: O(rc).
func ScaleCols(m Matrix, s []float64) (*Dense, error) { return ewScaleCols(m, s) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN matches only NaN; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ---------- Statistics (public surface → internal implementations) ----------

// WeightedColumnMeans returns the weighted column means wᵀX (len = Cols(X)).
// w is used as given; pass a probability vector (Σw = 1) for a true mean.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func WeightedColumnMeans(X Matrix, w []float64) ([]float64, error) {
	return weightedColumnMeans(X, w)
}

// WeightedCenterColumns returns Xc = X − broadcast(wᵀX) and the weighted means.
// Complexity: O(r*c).
func WeightedCenterColumns(X Matrix, w []float64) (*Dense, []float64, error) {
	return weightedCenterColumns(X, w)
}

// WeightedScatter returns S = Xcᵀ·diag(w)·Xc for an already centered Xc.
// Complexity: O(r*c^2).
//
// AI-Hints:
//   - With a probability vector w this is the nobs-normalized weighted covariance.
func WeightedScatter(Xc Matrix, w []float64) (*Dense, error) {
	return weightedScatter(Xc, w)
}

// ScatterToCorrelation turns a scatter/covariance matrix S into correlations
// R = S ⊘ sqrt(v vᵀ) with v = diag(S). Zero variances propagate NaN.
// Complexity: O(c^2).
func ScatterToCorrelation(S Matrix) (*Dense, error) {
	return scatterToCorrelation(S)
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// It is WeightedCenterColumns with uniform weights 1/r.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// ToRowsOf exports any Matrix as row slices; *Dense delegates to ToRows.
// Errors: ErrNilMatrix, wrapped At errors for custom implementations.
func ToRowsOf(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToRowsOf: %w", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.ToRows(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var err error
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, atErrorf("ToRowsOf", i, j, err)
			}
		}
	}

	return out, nil
}
