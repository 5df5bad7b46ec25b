// SPDX-License-Identifier: MIT
package weighted_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wcorr/matrix"
	"github.com/katalvlaran/wcorr/weighted"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// studentTPValue is the textbook two-sided test of a Pearson coefficient:
// t = r·sqrt((n−2)/(1−r²)) with n−2 degrees of freedom.
func studentTPValue(r float64, n int) float64 {
	df := float64(n - 2)
	tStat := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return 2 * dist.CDF(-math.Abs(tStat))
}

func TestPValue_MatchesStudentT(t *testing.T) {
	t.Parallel()
	for _, n := range []int{3, 4, 7, 20, 101} {
		for _, r := range []float64{-0.95, -0.5, -0.1, 0.05, 0.3, 0.8, 0.999} {
			require.InDelta(t, studentTPValue(r, n), weighted.PValue(r, n), 1e-9, "r=%v n=%d", r, n)
		}
	}
}

func TestPValue_Boundaries(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0.0, weighted.PValue(1, 10))
	require.Equal(t, 0.0, weighted.PValue(-1, 10))
	require.Equal(t, 0.0, weighted.PValue(1+1e-15, 10), "rounding past 1 stays at 0")
	require.InDelta(t, 1.0, weighted.PValue(0, 10), 1e-12)
	require.LessOrEqual(t, weighted.PValue(0, 10), 1.0)
	require.Equal(t, weighted.PValue(0.4, 12), weighted.PValue(-0.4, 12), "two-sided")

	// Beta(1,1) is uniform: p = 1 − |r| for nobs = 4.
	require.InDelta(t, 0.7, weighted.PValue(0.3, 4), 1e-12)
}

func TestPValue_Degenerate(t *testing.T) {
	t.Parallel()
	require.True(t, math.IsNaN(weighted.PValue(math.NaN(), 10)))
	require.True(t, math.IsNaN(weighted.PValue(0.5, 2)), "shape 0")
	require.True(t, math.IsNaN(weighted.PValue(0.5, 1)), "negative shape")
	require.True(t, math.IsNaN(weighted.PValue(0.5, 0)))
}

func TestPValues_Elementwise(t *testing.T) {
	t.Parallel()
	R, err := matrix.NewDenseFromRows([][]float64{{1, 0.3}, {0.3, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	for _, m := range []matrix.Matrix{R, hide{R}} {
		P, err := weighted.PValues(m, 4)
		require.NoError(t, err)
		require.Equal(t, 0.0, at(t, P, 0, 0))
		require.InDelta(t, 0.7, at(t, P, 0, 1), 1e-12)
		require.InDelta(t, 0.7, at(t, P, 1, 0), 1e-12)
		require.True(t, math.IsNaN(at(t, P, 1, 1)))
	}

	_, err = weighted.PValues(nil, 4)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestResult_Significant(t *testing.T) {
	t.Parallel()
	X := randObservations(t, 60, 3, 21)
	res, err := weighted.ComputeUnweighted(X, true)
	require.NoError(t, err)

	mask, err := res.Significant(0.05)
	require.NoError(t, err)
	require.Len(t, mask, 3)
	for i := range mask {
		require.Len(t, mask[i], 3)
		require.True(t, mask[i][i], "diagonal p-value is 0")
		for j := range mask[i] {
			require.Equal(t, at(t, res.PValues, i, j) < 0.05, mask[i][j])
			require.Equal(t, mask[i][j], mask[j][i])
		}
	}

	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err = res.Significant(alpha)
		require.ErrorIs(t, err, weighted.ErrInvalidAlpha, "alpha=%v", alpha)
	}
}

func TestResult_SignificantNaNIsFalse(t *testing.T) {
	t.Parallel()
	X := mustRows(t, [][]float64{{1, 3}, {2, 3}, {3, 3}, {5, 3}})
	res, err := weighted.ComputeUnweighted(X, true)
	require.NoError(t, err)

	mask, err := res.Significant(0.5)
	require.NoError(t, err)
	require.True(t, mask[0][0])
	require.False(t, mask[0][1])
	require.False(t, mask[1][1])
}
