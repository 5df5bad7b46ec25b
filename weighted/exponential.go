// SPDX-License-Identifier: MIT

package weighted

import (
	"fmt"
	"math"
)

// ExponentialWeights returns exponential-smoothing weights for nobs
// chronologically ordered observations:
//
//	w_t = exp((t − nobs)/theta),  t = 1..nobs,
//
// so the most recent observation has weight 1 and older ones decay with
// characteristic time theta. Feed the result to ComputeWeighted.
//
// Errors: ErrInvalidDecay when nobs < 1 or theta is not finite and > 0.
func ExponentialWeights(nobs int, theta float64) ([]float64, error) {
	if nobs < 1 {
		return nil, engineErrorf(opExponentialWeights, fmt.Errorf("nobs=%d: %w", nobs, ErrInvalidDecay))
	}
	if !(theta > 0) || math.IsInf(theta, 1) {
		return nil, engineErrorf(opExponentialWeights, fmt.Errorf("theta=%g: %w", theta, ErrInvalidDecay))
	}
	w := make([]float64, nobs)
	for t := 1; t <= nobs; t++ {
		w[t-1] = math.Exp(float64(t-nobs) / theta)
	}

	return w, nil
}

// ExponentialWeightsHalfLife is ExponentialWeights parameterized by half-life:
// the weight halves every halfLife observations (theta = halfLife/ln 2).
func ExponentialWeightsHalfLife(nobs int, halfLife float64) ([]float64, error) {
	if !(halfLife > 0) || math.IsInf(halfLife, 1) {
		return nil, engineErrorf(opHalfLifeWeights, fmt.Errorf("halfLife=%g: %w", halfLife, ErrInvalidDecay))
	}
	w, err := ExponentialWeights(nobs, halfLife/math.Ln2)
	if err != nil {
		return nil, engineErrorf(opHalfLifeWeights, err)
	}

	return w, nil
}
