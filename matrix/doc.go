// Package matrix provides a small dense linear-algebra layer for statistics.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors) and an optional finite-only numeric policy.
//   - Kernels (Add, Sub, Mul, Transpose, Scale, Hadamard, Div, MatVec,
//     VecMat, Outer) and broadcast helpers (BroadcastSubCols, ScaleRows,
//     ScaleCols) with *Dense fast paths and generic At fallbacks.
//   - Weighted moment transforms: WeightedColumnMeans, WeightedCenterColumns,
//     WeightedScatter and ScatterToCorrelation.
//   - Central validators and sentinel errors matched with errors.Is.
//
// Kernel outputs are never filtered by the NaN/Inf policy: a zero-variance
// column turns into NaN correlations instead of an error.
package matrix
