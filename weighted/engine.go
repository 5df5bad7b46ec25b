// SPDX-License-Identifier: MIT
// Package weighted: the correlation engine.
//
// Entry points:
//   - ComputeUnweighted(X, besselCorrected) -> uniform weights
//   - ComputeWeighted(X, w)                 -> explicit weights, nobs-normalized
//   - Compute(X, Weights)                   -> dispatcher over both (mode selector or vector)
//
// All three validate every precondition before any heavy work, then share
// one core (compute) that is pure and allocates fresh outputs per call.
//
// Numeric policy:
//   - Zero-variance columns yield NaN in their row/column of Correlation,
//     Covariance and PValues. They are reported, never masked or rejected.
//   - nobs == 1 is not guarded: the Bessel factor is +Inf and p-values are NaN.

package weighted

import (
	"math"

	"github.com/katalvlaran/wcorr/matrix"
)

// Compute runs the engine with an overloaded weight selector.
// MAIN DESCRIPTION:
//   - Omitted()/Scalar(0) ⇒ ComputeUnweighted(X, true).
//   - Scalar(1)          ⇒ ComputeUnweighted(X, false).
//   - Vector/VectorFromMatrix ⇒ ComputeWeighted(X, w).
//
// Errors (checked in this order):
//   - ErrInvalidWeightMode (scalar other than 0 or 1).
//   - ErrInvalidObservationMatrix (X nil or empty; Rows(X) is needed for the length check).
//   - ErrShapeMismatch (len(w) ≠ Rows(X)).
//   - ErrInvalidWeightVector (not 1-D, negative, NaN/Inf, zero or non-finite sum).
//   - ErrInvalidObservationMatrix (NaN/Inf in X).
//
// AI-Hints:
//   - Prefer the explicit entry points in new code; Compute mirrors the single-call contract.
func Compute(X matrix.Matrix, w Weights) (*Result, error) {
	if w.IsMode() {
		bessel, err := w.mode()
		if err != nil {
			return nil, engineErrorf(opCompute, err)
		}
		return ComputeUnweighted(X, bessel)
	}

	nobs, _, err := checkShape(X)
	if err != nil {
		return nil, engineErrorf(opCompute, err)
	}
	vec, err := w.flatten(nobs)
	if err != nil {
		return nil, engineErrorf(opCompute, err)
	}

	return ComputeWeighted(X, vec)
}

// ComputeUnweighted computes correlations with uniform weights.
// besselCorrected=true normalizes StdDev and Covariance to nobs−1 (sample
// statistics); false normalizes them to nobs. Correlation and PValues do not
// depend on the flag.
//
// Errors: ErrInvalidObservationMatrix.
// Complexity: O(nobs·nvar²).
func ComputeUnweighted(X matrix.Matrix, besselCorrected bool) (*Result, error) {
	nobs, _, err := checkShape(X)
	if err != nil {
		return nil, engineErrorf(opComputeUnweighted, err)
	}
	if err = checkFinite(X); err != nil {
		return nil, engineErrorf(opComputeUnweighted, err)
	}
	dof := NormalizeToNobs
	if besselCorrected {
		dof = NormalizeToNobsMinusOne
	}

	res, err := compute(X, uniformOnes(nobs), float64(nobs), dof)
	if err != nil {
		return nil, engineErrorf(opComputeUnweighted, err)
	}

	return res, nil
}

// ComputeWeighted computes weighted correlations for explicit weights w
// (len nobs, finite, non-negative, positive sum; normalization is internal).
// Standard deviations and covariance are nobs-normalized. w is not modified.
//
// Errors (in order): ErrInvalidObservationMatrix (shape), ErrShapeMismatch,
// ErrInvalidWeightVector, ErrInvalidObservationMatrix (non-finite values).
// Complexity: O(nobs·nvar²).
func ComputeWeighted(X matrix.Matrix, w []float64) (*Result, error) {
	nobs, _, err := checkShape(X)
	if err != nil {
		return nil, engineErrorf(opComputeWeighted, err)
	}
	if len(w) != nobs {
		return nil, engineErrorf(opComputeWeighted, detailf(ErrShapeMismatch, "len(w)=%d, nobs=%d", len(w), nobs))
	}
	sum, err := validateWeightValues(w)
	if err != nil {
		return nil, engineErrorf(opComputeWeighted, err)
	}
	if err = checkFinite(X); err != nil {
		return nil, engineErrorf(opComputeWeighted, err)
	}

	res, err := compute(X, w, sum, NormalizeToNobs)
	if err != nil {
		return nil, engineErrorf(opComputeWeighted, err)
	}

	return res, nil
}

// compute is the shared core; X and w are already validated and sum = Σw.
// Implementation:
//   - Stage 1: p = w/Σw (fresh slice).
//   - Stage 2: mean = pᵀX; Xc = X − mean; S = Xcᵀ·diag(p)·Xc.
//   - Stage 3: σ = sqrt(diag S), times sqrt(n/(n−1)) for NormalizeToNobsMinusOne.
//   - Stage 4: S ← ½(S+Sᵀ); R = S ⊘ sqrt(v vᵀ); Cov = diag(σ)·R·diag(σ).
//   - Stage 5: P = PValues(R, nobs).
//
// Notes:
//   - diag(σ)·R·diag(σ) is evaluated as row/column scaling so a NaN coefficient
//     stays confined to its own row and column.
func compute(X matrix.Matrix, w []float64, sum float64, dof DOF) (*Result, error) {
	nobs, nvar := X.Rows(), X.Cols()

	p := make([]float64, nobs)
	for i, v := range w {
		p[i] = v / sum
	}

	Xc, mean, err := matrix.WeightedCenterColumns(X, p)
	if err != nil {
		return nil, err
	}
	S, err := matrix.WeightedScatter(Xc, p)
	if err != nil {
		return nil, err
	}

	variances, err := matrix.Diag(S)
	if err != nil {
		return nil, err
	}
	std := make([]float64, nvar)
	bessel := 1.0
	if dof == NormalizeToNobsMinusOne {
		bessel = math.Sqrt(float64(nobs) / float64(nobs-1))
	}
	for j, v := range variances {
		std[j] = math.Sqrt(v) * bessel
	}

	S, err = matrix.Symmetrize(S)
	if err != nil {
		return nil, err
	}
	R, err := matrix.ScatterToCorrelation(S)
	if err != nil {
		return nil, err
	}
	scaled, err := matrix.ScaleCols(R, std)
	if err != nil {
		return nil, err
	}
	cov, err := matrix.ScaleRows(scaled, std)
	if err != nil {
		return nil, err
	}
	P, err := PValues(R, nobs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Correlation: R,
		PValues:     P,
		Covariance:  cov,
		StdDev:      std,
		Mean:        mean,
		Nobs:        nobs,
		Nvar:        nvar,
		DOF:         dof,
	}, nil
}
