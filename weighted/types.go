// SPDX-License-Identifier: MIT

package weighted

import "github.com/katalvlaran/wcorr/matrix"

// DOF selects the normalization of the reported standard deviations and covariance.
type DOF int

const (
	// NormalizeToNobsMinusOne applies the Bessel correction sqrt(nobs/(nobs−1))
	// to the standard deviations (scalar 0, omitted weights, ComputeUnweighted(X, true)).
	NormalizeToNobsMinusOne DOF = iota
	// NormalizeToNobs reports nobs-normalized moments (scalar 1, any weight vector).
	NormalizeToNobs
)

// String implements fmt.Stringer.
func (d DOF) String() string {
	switch d {
	case NormalizeToNobsMinusOne:
		return "nobs-1"
	case NormalizeToNobs:
		return "nobs"
	default:
		return "unknown"
	}
}

// Result bundles the outputs of one engine call. Every field is freshly
// allocated; a Result shares no storage with its inputs or with other Results.
//
// Invariant: Covariance = diag(StdDev)·Correlation·diag(StdDev).
type Result struct {
	// Correlation holds the weighted Pearson coefficients (nvar×nvar, symmetric, unit diagonal).
	Correlation *matrix.Dense
	// PValues holds the two-sided p-values of Correlation (nvar×nvar, in [0, 1]).
	PValues *matrix.Dense
	// Covariance holds the weighted covariance (nvar×nvar, symmetric PSD).
	Covariance *matrix.Dense
	// StdDev holds the weighted standard deviations (len nvar).
	StdDev []float64
	// Mean holds the weighted column means (len nvar).
	Mean []float64

	Nobs int // rows of X
	Nvar int // columns of X
	DOF  DOF // normalization used for StdDev and Covariance
}
