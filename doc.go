// Package wcorr computes weighted Pearson correlations for observation
// matrices whose rows carry non-negative relevance weights.
//
// 🚀 What is wcorr?
//
//	A small, stateless statistics toolkit that brings together:
//		• Weighted correlation: Pearson coefficients under row weights
//		• Significance: two-sided p-values from the Beta distribution
//		• Moments: weighted covariance, standard deviations and means
//		• Decay weights: exponential smoothing by theta or half-life
//		• CLI: CSV in, YAML or text tables out
//
// Under the hood, everything is organized under three packages:
//
//	matrix/     row-major Dense, kernels, broadcasts and weighted moments
//	weighted/   the correlation engine, weight selectors and p-values
//	cmd/wcorr/  command-line front end (cobra, zerolog, yaml.v3)
//
// Quick start:
//
//	X, _ := weighted.ObservationsFromRows([][]float64{{1, 2}, {2, 4}, {3, 5}})
//	res, err := weighted.ComputeWeighted(X, []float64{1, 2, 3})
//	if err != nil {
//		// errors.Is(err, weighted.ErrShapeMismatch), ...
//	}
//	fmt.Println(res.Correlation)
//
// Every call validates its inputs and allocates fresh outputs, so the
// engine is safe for concurrent use.
package wcorr
