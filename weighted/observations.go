// SPDX-License-Identifier: MIT

package weighted

import (
	"fmt"

	"github.com/katalvlaran/wcorr/matrix"
)

// ObservationsFromRows builds an nobs×nvar observation matrix from row slices
// (rows[i] is observation i). Empty, ragged or non-finite input fails with
// ErrInvalidObservationMatrix; the matrix sentinel stays matchable as well.
func ObservationsFromRows(rows [][]float64) (*matrix.Dense, error) {
	X, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, engineErrorf(opObservationsFrom, invalidObservations(err))
	}

	return X, nil
}

// invalidObservations tags a matrix-level failure with ErrInvalidObservationMatrix.
func invalidObservations(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidObservationMatrix, cause)
}

// checkShape verifies X is present and has at least one row and one column.
// It runs before weight checks because the weight length depends on Rows(X).
func checkShape(X matrix.Matrix) (nobs, nvar int, err error) {
	if err = matrix.ValidateNotNil(X); err != nil {
		return 0, 0, invalidObservations(err)
	}
	nobs, nvar = X.Rows(), X.Cols()
	if nobs < 1 || nvar < 1 {
		return 0, 0, detailf(ErrInvalidObservationMatrix, "shape %dx%d", nobs, nvar)
	}

	return nobs, nvar, nil
}

// checkFinite rejects NaN/±Inf observations (last step of validation).
func checkFinite(X matrix.Matrix) error {
	if err := matrix.ValidateFinite(X); err != nil {
		return invalidObservations(err)
	}

	return nil
}
