// SPDX-License-Identifier: MIT
// Package weighted: weight selectors and their validation.
//
// A Weights value is either a mode selector (omitted, scalar 0, scalar 1) or
// an explicit vector held as a slice or as a 1×n / n×1 matrix. Validation
// follows a fixed order so the reported sentinel is deterministic:
//
//	mode → length → contents (1-D, finite, non-negative, positive sum).

package weighted

import (
	"math"

	"github.com/katalvlaran/wcorr/matrix"
)

type weightKind int

const (
	kindOmitted weightKind = iota // zero value: behaves like Scalar(0)
	kindScalar
	kindVector
	kindMatrix
)

// Weights selects how observations are weighted. The zero value means
// "omitted" and is equivalent to Scalar(0).
type Weights struct {
	kind   weightKind
	scalar float64
	vector []float64
	source matrix.Matrix
}

// Omitted returns the default selector: uniform weights, nobs−1 normalization.
func Omitted() Weights { return Weights{} }

// Scalar returns a mode selector. Only 0 (uniform, nobs−1) and 1 (uniform,
// nobs) are legal; anything else fails with ErrInvalidWeightMode at compute time.
func Scalar(s float64) Weights { return Weights{kind: kindScalar, scalar: s} }

// Vector returns explicit per-observation weights. The slice is copied when
// the engine resolves it; it need not be normalized.
func Vector(w []float64) Weights { return Weights{kind: kindVector, vector: w} }

// VectorFromMatrix returns explicit weights stored in a row (1×n) or column
// (n×1) matrix. A matrix with both dimensions greater than 1 is rejected with
// ErrInvalidWeightVector.
func VectorFromMatrix(m matrix.Matrix) Weights { return Weights{kind: kindMatrix, source: m} }

// IsMode reports whether w is a mode selector rather than an explicit vector.
func (w Weights) IsMode() bool { return w.kind == kindOmitted || w.kind == kindScalar }

// mode resolves a selector into the Bessel flag of ComputeUnweighted.
// Only meaningful when IsMode() is true.
func (w Weights) mode() (besselCorrected bool, err error) {
	if w.kind == kindOmitted {
		return true, nil
	}
	switch w.scalar {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, detailf(ErrInvalidWeightMode, "got %g", w.scalar)
	}
}

// flatten copies explicit weights into a fresh slice, checking the length
// against nobs before the dimensionality of a matrix source.
func (w Weights) flatten(nobs int) ([]float64, error) {
	if w.kind == kindVector {
		if len(w.vector) != nobs {
			return nil, detailf(ErrShapeMismatch, "len(w)=%d, nobs=%d", len(w.vector), nobs)
		}
		out := make([]float64, nobs)
		copy(out, w.vector)
		return out, nil
	}

	if err := matrix.ValidateNotNil(w.source); err != nil {
		return nil, detailf(ErrInvalidWeightVector, "%v", err)
	}
	r, c := w.source.Rows(), w.source.Cols()
	if r*c != nobs {
		return nil, detailf(ErrShapeMismatch, "size(w)=%d (%dx%d), nobs=%d", r*c, r, c, nobs)
	}
	if r > 1 && c > 1 {
		return nil, detailf(ErrInvalidWeightVector, "weights are %dx%d, want 1-D", r, c)
	}
	rows, err := matrix.ToRowsOf(w.source)
	if err != nil {
		return nil, detailf(ErrInvalidWeightVector, "%v", err)
	}
	out := make([]float64, 0, nobs)
	for _, row := range rows {
		out = append(out, row...)
	}

	return out, nil
}

// validateWeightValues checks finiteness, sign and a strictly positive finite sum.
// Returns the sum so the caller can normalize without a second pass.
func validateWeightValues(w []float64) (float64, error) {
	var sum float64
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, detailf(ErrInvalidWeightVector, "w[%d]=%g is not finite", i, v)
		}
		if v < 0 {
			return 0, detailf(ErrInvalidWeightVector, "w[%d]=%g is negative", i, v)
		}
		sum += v
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return 0, detailf(ErrInvalidWeightVector, "sum(w)=%g, want finite > 0", sum)
	}

	return sum, nil
}

// uniformOnes returns n ones (the resolved vector of both scalar modes).
func uniformOnes(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}
