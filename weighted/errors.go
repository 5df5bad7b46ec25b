// SPDX-License-Identifier: MIT
// Package weighted: sentinel error set.
// Every precondition failure of the engine is reported through one of these
// sentinels, wrapped with the failing operation and detail (index, value,
// expected vs actual length). Callers match with errors.Is. No partial Result
// is ever returned together with an error.

package weighted

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeightMode indicates a scalar weight other than 0 or 1.
	ErrInvalidWeightMode = errors.New("weighted: scalar weight must be 0 or 1")

	// ErrShapeMismatch indicates a weight vector whose length differs from the
	// number of observations (rows of X).
	ErrShapeMismatch = errors.New("weighted: weight vector length must equal the number of observations")

	// ErrInvalidWeightVector indicates negative, NaN or ±Inf weights, weights that
	// are not one-dimensional, or weights whose sum is zero or not finite.
	ErrInvalidWeightVector = errors.New("weighted: weights must be a 1-D vector of finite non-negative numbers with a positive sum")

	// ErrInvalidObservationMatrix indicates a nil, empty, ragged or non-finite X.
	ErrInvalidObservationMatrix = errors.New("weighted: observations must be a 2-D matrix of finite numbers")

	// ErrInvalidAlpha indicates a significance level outside the open interval (0, 1).
	ErrInvalidAlpha = errors.New("weighted: alpha must lie in (0, 1)")

	// ErrInvalidDecay indicates a non-positive or non-finite smoothing parameter,
	// or a non-positive observation count for a weight generator.
	ErrInvalidDecay = errors.New("weighted: decay parameter must be finite and > 0")
)

// Operation tags used in error wrapping.
const (
	opCompute            = "Compute"
	opComputeUnweighted  = "ComputeUnweighted"
	opComputeWeighted    = "ComputeWeighted"
	opObservationsFrom   = "ObservationsFromRows"
	opPValues            = "PValues"
	opSignificant        = "Significant"
	opExponentialWeights = "ExponentialWeights"
	opHalfLifeWeights    = "ExponentialWeightsHalfLife"
)

// engineErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// detailf attaches a formatted detail to a sentinel: "<sentinel>: <detail>".
func detailf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
