// SPDX-License-Identifier: MIT
// Package weighted: significance of correlation coefficients.
//
// Under the null hypothesis of no correlation, the Pearson coefficient of
// nobs observations follows Beta(a, a) with a = nobs/2 − 1, affinely rescaled
// from [0, 1] to [−1, 1]. The two-sided p-value is
//
//	p = 2 · F((1 − |r|)/2),  F = Beta(a, a) CDF,
//
// which equals the classical Student-t test with nobs−2 degrees of freedom.

package weighted

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wcorr/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// PValue returns the two-sided p-value of a single coefficient r for nobs observations.
// MAIN DESCRIPTION:
//   - Maps y = −|r| on [−1, 1] to x = (y + 1)/2 on [0, 1] and evaluates the Beta CDF.
//
// Behavior highlights:
//   - |r| ≥ 1 yields 0 (the CDF is 0 at the lower boundary).
//   - r = 0 yields 1.
//   - NaN r, or nobs ≤ 2 (shape ≤ 0, an invalid Beta parameter), yields NaN.
//   - The result is clamped to [0, 1] against last-ulp rounding in the CDF.
//
// Complexity:
//   - O(1) (one regularized incomplete beta evaluation).
func PValue(r float64, nobs int) float64 {
	shape := float64(nobs)/2 - 1
	if math.IsNaN(r) || !(shape > 0) {
		return math.NaN()
	}
	dist := distuv.Beta{Alpha: shape, Beta: shape}
	p := 2 * dist.CDF((1-math.Abs(r))/2)

	// Final sanity clamp on p to ensure it's in [0, 1]
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return p
}

// PValues applies PValue elementwise to a coefficient matrix R.
// The output is a fresh Dense that keeps NaN entries (it is never filtered by
// the finite-only policy).
//
// Errors:
//   - ErrNilMatrix (from matrix.ValidateNotNil), wrapped At errors for custom matrices.
//
// Complexity:
//   - O(r·c) CDF evaluations.
func PValues(R matrix.Matrix, nobs int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(R); err != nil {
		return nil, engineErrorf(opPValues, err)
	}
	rows, err := matrix.ToRowsOf(R)
	if err != nil {
		return nil, engineErrorf(opPValues, err)
	}
	for _, row := range rows {
		for j, r := range row {
			row[j] = PValue(r, nobs)
		}
	}
	P, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, engineErrorf(opPValues, err)
	}

	return P, nil
}

// Significant returns the mask PValues[i][j] < alpha. NaN p-values are never significant.
// Errors: ErrInvalidAlpha when alpha is outside (0, 1) or NaN.
func (r *Result) Significant(alpha float64) ([][]bool, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, engineErrorf(opSignificant, fmt.Errorf("alpha=%g: %w", alpha, ErrInvalidAlpha))
	}
	rows := r.PValues.ToRows()
	mask := make([][]bool, len(rows))
	for i, row := range rows {
		mask[i] = make([]bool, len(row))
		for j, p := range row {
			mask[i][j] = p < alpha
		}
	}

	return mask, nil
}
