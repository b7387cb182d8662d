// Package spatial implements the unnormalized log-density potentials
// used by the spatial smoothing priors: the ICAR pairwise-difference
// term, the independent-effect ridge term, their Leroux combination and
// the soft sum-to-zero identifiability constraint.
package spatial

import (
	"math"

	"github.com/spatialepi/diseasemap/dist"
)

// DefaultSumZeroVariance is the variance of the soft sum-to-zero
// constraint. It is a tuning constant rather than a derived quantity and
// can be overridden per model.
const DefaultSumZeroVariance = 0.001

// PairwiseDiff returns the ICAR-style smoothing potential
//
//	-0.5 * rho * sum_k (phi[node1[k]] - phi[node2[k]])^2 .
//
// The edge lists enumerate directed edges, so every undirected pair is
// counted twice; the -0.5 coefficient folds the doubling back into the
// conventional ICAR log-density. Keep the coefficient and the doubled
// lists together, the two conventions are only equivalent when applied
// exactly once each.
func PairwiseDiff(rho float64, phi []float64, node1, node2 []int) float64 {
	if len(node1) != len(node2) {
		panic("edge lists must have equal length")
	}
	s := 0.0
	for k := range node1 {
		d := phi[node1[k]] - phi[node2[k]]
		s += d * d
	}
	return -0.5 * rho * s
}

// Ridge returns the independent-effect ridge potential
//
//	-0.5 * (1-rho) * sum_i phi[i]^2 .
func Ridge(rho float64, phi []float64) float64 {
	s := 0.0
	for _, v := range phi {
		s += v * v
	}
	return -0.5 * (1 - rho) * s
}

// Leroux returns the Leroux prior potential, the sum of the pairwise
// difference term scaled by rho and the ridge term scaled by 1-rho. At
// rho=1 it reduces to a pure ICAR prior, at rho=0 to an independent
// ridge prior; both terms are evaluated at every rho in between.
func Leroux(rho float64, phi []float64, node1, node2 []int) float64 {
	return PairwiseDiff(rho, phi, node1, node2) + Ridge(rho, phi)
}

// ICAR returns the pure ICAR potential, i.e. the pairwise difference
// term with rho fixed to 1.
func ICAR(phi []float64, node1, node2 []int) float64 {
	return PairwiseDiff(1, phi, node1, node2)
}

// SumZero returns the soft sum-to-zero constraint potential: the
// log-density of a zero-mean normal with the given variance evaluated at
// the sum of the vector. It penalizes, but does not forbid, nonzero
// sums; every unconstrained spatial-effect vector needs its own term to
// stay identifiable against the intercept.
func SumZero(phi []float64, variance float64) float64 {
	if variance <= 0 {
		panic("sum-to-zero variance must be > 0")
	}
	s := 0.0
	for _, v := range phi {
		s += v
	}
	return dist.NormalLogProb(0, math.Sqrt(variance), s)
}
