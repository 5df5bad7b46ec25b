// Package weighted computes weighted Pearson correlation coefficients, their
// two-sided p-values, the weighted covariance matrix, weighted standard
// deviations and weighted means of an nobs×nvar observation matrix whose rows
// carry non-negative relevance weights.
//
// Use ComputeUnweighted for uniform weights (with or without the Bessel
// correction) and ComputeWeighted for explicit weights, for example the
// exponential-smoothing weights of ExponentialWeights. Compute accepts the
// overloaded selector form (omitted, scalar 0 or 1, or a vector).
//
// The engine is stateless: every call validates its inputs, allocates fresh
// outputs and is safe to run concurrently with other calls.
package weighted
