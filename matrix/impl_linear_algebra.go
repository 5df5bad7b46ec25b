// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction, product and quotient, matrix
// multiplication, transpose, scalar scaling and vector products. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Numeric policy:
//   - Kernels allocate a fresh *Dense and write into its flat buffer directly.
//     Results are NOT filtered through Set, so IEEE-754 NaN/Inf produced by the
//     arithmetic itself (0/0, x/0) propagate to the caller unchanged.
//   - Inputs are never mutated.
//
// Notes:
//   - *Dense operands unlock flat-slice fast paths; any other Matrix is read via At.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opDiv       = "Div"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opOuter     = "Outer"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf attaches fallback-path coordinates to a failing At call.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// binaryElementwise computes out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
// Internal helper for Add/Sub/Hadamard/Div to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func binaryElementwise(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}
			return res, nil
		}
	}

	// Fallback: generic interface loop using At (bounds-safe, shape already validated).
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add returns a + b (element-wise). Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b (element-wise). Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise. Use Mul for A×B.
func Hadamard(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Div computes the elementwise quotient (a ⊘ b).
// MAIN DESCRIPTION:
//   - out[i,j] = a[i,j] / b[i,j] under plain IEEE-754 semantics.
//
// Behavior highlights:
//   - Division by zero is NOT trapped: 0/0 yields NaN and x/0 yields ±Inf,
//     so degenerate inputs stay detectable downstream.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pair with Outer + Sqrt to normalize a scatter matrix into correlations.
func Div(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opDiv, func(x, y float64) float64 { return x / y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Zeros in A are NOT skipped: 0·NaN must stay NaN so degenerate inputs propagate.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result where possible.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha may be any float64; NaN/Inf propagate. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}
		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErrorf(opMatVec, i, j, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row vector y = xᵀ · m.
// MAIN DESCRIPTION:
//   - y[j] = Σ_i x[i]·m[i,j]; with x a probability vector this is the weighted column mean.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Rows().
//   - Stage 2: accumulate rows scaled by x[i] (i→j order) so *Dense reads stay contiguous.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(c) for y.
//
// AI-Hints:
//   - Cheaper than Transpose+MatVec: no r×c temporary is materialized.
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		var xi float64
		for i = 0; i < rows; i++ {
			xi = x[i]
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xi * d.data[base+j]
			}
		}
		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErrorf(opVecMat, i, j, err)
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// Outer computes the outer product x · yᵀ as a len(x)×len(y) Dense.
// Errors: ErrNilMatrix (nil vector), ErrInvalidDimensions (empty vector).
// Complexity: O(len(x)*len(y)).
func Outer(x, y []float64) (*Dense, error) {
	if x == nil || y == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	res, err := NewDense(len(x), len(y))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	cols := len(y)
	for i, xi := range x {
		base := i * cols
		for j, yj := range y {
			res.data[base+j] = xi * yj
		}
	}

	return res, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
