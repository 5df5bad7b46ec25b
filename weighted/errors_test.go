// SPDX-License-Identifier: MIT
// Package weighted_test: every precondition failure and the order in which
// the engine detects them.

package weighted_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wcorr/matrix"
	"github.com/katalvlaran/wcorr/weighted"
	"github.com/stretchr/testify/require"
)

func TestPreconditionFailures(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 2}, {2, 1}, {3, 5}, {4, 3}})
	nanX, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {math.NaN(), 1}, {3, 5}, {4, 3}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	square := mustRows(t, [][]float64{{1, 1}, {1, 1}})
	wide := mustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}})

	tests := []struct {
		name string
		X    matrix.Matrix
		w    weighted.Weights
		want error
		also error // optional second sentinel in the chain
	}{
		{"scalar 2", X, weighted.Scalar(2), weighted.ErrInvalidWeightMode, nil},
		{"scalar -1", X, weighted.Scalar(-1), weighted.ErrInvalidWeightMode, nil},
		{"scalar NaN", X, weighted.Scalar(math.NaN()), weighted.ErrInvalidWeightMode, nil},
		{"short vector", X, weighted.Vector([]float64{1, 1, 1}), weighted.ErrShapeMismatch, nil},
		{"nil vector", X, weighted.Vector(nil), weighted.ErrShapeMismatch, nil},
		{"negative weight", X, weighted.Vector([]float64{1, -0.5, 1, 1}), weighted.ErrInvalidWeightVector, nil},
		{"NaN weight", X, weighted.Vector([]float64{1, math.NaN(), 1, 1}), weighted.ErrInvalidWeightVector, nil},
		{"Inf weight", X, weighted.Vector([]float64{1, math.Inf(1), 1, 1}), weighted.ErrInvalidWeightVector, nil},
		{"zero sum", X, weighted.Vector([]float64{0, 0, 0, 0}), weighted.ErrInvalidWeightVector, nil},
		{"overflowing sum", X, weighted.Vector([]float64{math.MaxFloat64, math.MaxFloat64, 0, 0}), weighted.ErrInvalidWeightVector, nil},
		{"2-D weights", X, weighted.VectorFromMatrix(square), weighted.ErrInvalidWeightVector, nil},
		{"2-D weights wrong size", X, weighted.VectorFromMatrix(wide), weighted.ErrShapeMismatch, nil},
		{"nil weight matrix", X, weighted.VectorFromMatrix(nil), weighted.ErrInvalidWeightVector, nil},
		{"nil X", nil, weighted.Omitted(), weighted.ErrInvalidObservationMatrix, matrix.ErrNilMatrix},
		{"nil X with vector", nil, weighted.Vector([]float64{1}), weighted.ErrInvalidObservationMatrix, matrix.ErrNilMatrix},
		{"NaN in X", nanX, weighted.Omitted(), weighted.ErrInvalidObservationMatrix, matrix.ErrNaNInf},
		{"NaN in X weighted", nanX, weighted.Vector([]float64{1, 2, 3, 4}), weighted.ErrInvalidObservationMatrix, matrix.ErrNaNInf},
		// ordering: the earlier check wins
		{"mode before X", nil, weighted.Scalar(3), weighted.ErrInvalidWeightMode, nil},
		{"length before contents", X, weighted.Vector([]float64{-1, -1}), weighted.ErrShapeMismatch, nil},
		{"weights before X contents", nanX, weighted.Vector([]float64{1, -1, 1, 1}), weighted.ErrInvalidWeightVector, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := weighted.Compute(tc.X, tc.w)
			require.Nil(t, res, "no partial result on error")
			require.ErrorIs(t, err, tc.want)
			if tc.also != nil {
				require.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestExplicitEntryPointFailures(t *testing.T) {
	t.Parallel()
	X := mustRows(t, [][]float64{{1, 2}, {2, 1}, {3, 5}})

	_, err := weighted.ComputeWeighted(X, []float64{1, 2})
	require.ErrorIs(t, err, weighted.ErrShapeMismatch)
	require.Contains(t, err.Error(), "len(w)=2, nobs=3")

	_, err = weighted.ComputeWeighted(X, []float64{1, -2, 1})
	require.ErrorIs(t, err, weighted.ErrInvalidWeightVector)
	require.Contains(t, err.Error(), "w[1]=-2")

	_, err = weighted.ComputeUnweighted(nil, true)
	require.ErrorIs(t, err, weighted.ErrInvalidObservationMatrix)

	inf, err := matrix.NewDenseFromRows([][]float64{{1, math.Inf(-1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = weighted.ComputeUnweighted(inf, false)
	require.ErrorIs(t, err, weighted.ErrInvalidObservationMatrix)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestObservationsFromRows(t *testing.T) {
	t.Parallel()

	X, err := weighted.ObservationsFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, X.ToRows())

	_, err = weighted.ObservationsFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, weighted.ErrInvalidObservationMatrix)
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = weighted.ObservationsFromRows(nil)
	require.ErrorIs(t, err, weighted.ErrInvalidObservationMatrix)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = weighted.ObservationsFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, weighted.ErrInvalidObservationMatrix)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
