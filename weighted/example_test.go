// SPDX-License-Identifier: MIT
package weighted_test

import (
	"fmt"

	"github.com/katalvlaran/wcorr/weighted"
)

func ExampleComputeUnweighted() {
	X, _ := weighted.ObservationsFromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 8},
	})

	res, _ := weighted.ComputeUnweighted(X, true)
	fmt.Print(res.Correlation)
	fmt.Println("mean:", res.Mean)
	fmt.Println("dof:", res.DOF)
	// Output:
	// [1, 1]
	// [1, 1]
	// mean: [2.5 5]
	// dof: nobs-1
}

func ExampleComputeWeighted() {
	X, _ := weighted.ObservationsFromRows([][]float64{
		{1, 4},
		{2, 3},
		{3, 2},
		{4, 1},
	})
	w := []float64{1, 1, 2, 4}

	res, _ := weighted.ComputeWeighted(X, w)
	fmt.Printf("r = %.3f\n", res.Correlation.ToRows()[0][1])
	fmt.Printf("mean = %.3f %.3f\n", res.Mean[0], res.Mean[1])
	// Output:
	// r = -1.000
	// mean = 3.125 1.875
}

func ExampleExponentialWeightsHalfLife() {
	w, _ := weighted.ExponentialWeightsHalfLife(5, 2)
	for _, v := range w {
		fmt.Printf("%.4f ", v)
	}
	fmt.Println()
	// Output:
	// 0.2500 0.3536 0.5000 0.7071 1.0000
}
